package seeding

import "errors"

// ErrUnknownStage ...
var ErrUnknownStage = errors.New("seeding: unknown stage")

// ErrReasonRequired ...
var ErrReasonRequired = errors.New("seeding: rejection requires a reason")

// ErrRejectCompleted ...
var ErrRejectCompleted = errors.New("seeding: completed influencer can not be rejected")

// Transition describes a validated status change. StampStage names the stage
// whose timestamp must be set, once, if not already present; timestamps are
// never cleared, so backward corrections keep history intact.
type Transition struct {
	From Stage
	To   Stage

	StampStage Stage
	Reason     string
}

// PlanTransition validates a status change from current to target.
//
// Any move between forward stages is allowed (the dashboard permits both
// jumps and backward corrections). Rejection is allowed from every stage
// except completed and requires a reason.
func PlanTransition(current Stage, target Stage, reason string) (Transition, error) {
	if !current.IsValid() || !target.IsValid() {
		return Transition{}, ErrUnknownStage
	}

	if target == StageRejected {
		if current == StageCompleted {
			return Transition{}, ErrRejectCompleted
		}
		if reason == "" {
			return Transition{}, ErrReasonRequired
		}
		return Transition{
			From:       current,
			To:         StageRejected,
			StampStage: StageRejected,
			Reason:     reason,
		}, nil
	}

	return Transition{
		From:       current,
		To:         target,
		StampStage: target,
	}, nil
}
