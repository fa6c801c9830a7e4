package seeding

// Stage is the campaign stage of an influencer within a seeding project.
type Stage string

const (
	// StageListed ...
	StageListed Stage = "listed"

	// StageContacted ...
	StageContacted Stage = "contacted"

	// StageAccepted ...
	StageAccepted Stage = "accepted"

	// StageShipped ...
	StageShipped Stage = "shipped"

	// StageGuideSent ...
	StageGuideSent Stage = "guide_sent"

	// StagePosted ...
	StagePosted Stage = "posted"

	// StageCompleted ...
	StageCompleted Stage = "completed"

	// StageRejected is a terminal side branch, excluded from the forward funnel
	StageRejected Stage = "rejected"
)

// forwardStages is the fixed funnel ordering. Cumulative counting and every
// derived flag depend on this order, so it must not be rearranged.
var forwardStages = []Stage{
	StageListed,
	StageContacted,
	StageAccepted,
	StageShipped,
	StageGuideSent,
	StagePosted,
	StageCompleted,
}

var forwardIndex = func() map[Stage]int {
	m := make(map[Stage]int, len(forwardStages))
	for i, s := range forwardStages {
		m[s] = i
	}
	return m
}()

// ForwardStages returns the forward funnel ordering, earliest first.
// The returned slice must not be modified.
func ForwardStages() []Stage {
	return forwardStages
}

// Index returns the position of a forward stage in the funnel ordering.
// The second result is false for StageRejected and unknown values.
func Index(s Stage) (int, bool) {
	idx, ok := forwardIndex[s]
	return idx, ok
}

// IsValid reports whether s is one of the eight stages.
func (s Stage) IsValid() bool {
	if s == StageRejected {
		return true
	}
	_, ok := forwardIndex[s]
	return ok
}

// IsReachedStage reports whether a record currently at `current` counts
// toward the funnel bucket of `target`.
//
// A rejected record never counts toward any forward stage, even though it
// necessarily passed through contacted before rejection. Rejections are
// reported only in their own bucket.
func IsReachedStage(current Stage, target Stage) bool {
	currentIdx, ok := forwardIndex[current]
	if !ok {
		return false
	}
	targetIdx, ok := forwardIndex[target]
	if !ok {
		return false
	}
	return currentIdx >= targetIdx
}
