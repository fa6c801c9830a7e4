package seeding

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestForwardStages(t *testing.T) {
	assert.Equal(t, []Stage{
		StageListed,
		StageContacted,
		StageAccepted,
		StageShipped,
		StageGuideSent,
		StagePosted,
		StageCompleted,
	}, ForwardStages())
}

func TestIndex(t *testing.T) {
	idx, ok := Index(StageListed)
	assert.Equal(t, true, ok)
	assert.Equal(t, 0, idx)

	idx, ok = Index(StageCompleted)
	assert.Equal(t, true, ok)
	assert.Equal(t, 6, idx)

	_, ok = Index(StageRejected)
	assert.Equal(t, false, ok)

	_, ok = Index(Stage("unknown"))
	assert.Equal(t, false, ok)
}

func TestStageIsValid(t *testing.T) {
	for _, s := range ForwardStages() {
		assert.Equal(t, true, s.IsValid())
	}
	assert.Equal(t, true, StageRejected.IsValid())
	assert.Equal(t, false, Stage("").IsValid())
	assert.Equal(t, false, Stage("pending").IsValid())
}

func TestIsReachedStage(t *testing.T) {
	table := []struct {
		name     string
		current  Stage
		target   Stage
		expected bool
	}{
		{name: "same-stage", current: StageListed, target: StageListed, expected: true},
		{name: "later-current", current: StagePosted, target: StageShipped, expected: true},
		{name: "earlier-current", current: StageContacted, target: StageAccepted, expected: false},
		{name: "completed-reaches-all", current: StageCompleted, target: StageListed, expected: true},
		{name: "rejected-not-listed", current: StageRejected, target: StageListed, expected: false},
		{name: "rejected-not-contacted", current: StageRejected, target: StageContacted, expected: false},
		{name: "rejected-not-completed", current: StageRejected, target: StageCompleted, expected: false},
		{name: "unknown-current", current: Stage("x"), target: StageListed, expected: false},
		{name: "rejected-target", current: StageCompleted, target: StageRejected, expected: false},
	}

	for _, e := range table {
		t.Run(e.name, func(t *testing.T) {
			assert.Equal(t, e.expected, IsReachedStage(e.current, e.target))
		})
	}
}

// a rejected record is excluded from every forward stage even though it
// passed through contacted before rejection
func TestIsReachedStage_RejectedExcludedEverywhere(t *testing.T) {
	for _, target := range ForwardStages() {
		assert.Equal(t, false, IsReachedStage(StageRejected, target))
	}
}
