package campaign

import (
	"context"
	"database/sql"
	"time"

	"go.uber.org/zap"

	"github.com/seedinglab/seedops/seeding"
)

// UpdateStatus moves one influencer to the target stage. The timestamp of
// the target stage is stamped once and never cleared; moving backward later
// leaves the history intact.
func (s *Service) UpdateStatus(ctx context.Context, id int64, target seeding.Stage, reason string) error {
	return s.provider.Transact(ctx, func(ctx context.Context) error {
		inf, err := s.influencerRepo.GetForUpdate(ctx, id)
		if err != nil {
			return mapNotFound(err, ErrInfluencerNotFound)
		}

		transition, err := seeding.PlanTransition(inf.Status, target, reason)
		if err != nil {
			return err
		}

		inf.Status = transition.To
		stamp := inf.StageTimestamp(transition.StampStage)
		if stamp != nil && !stamp.Valid {
			*stamp = sql.NullTime{Valid: true, Time: time.Now()}
		}
		if transition.To == seeding.StageRejected {
			inf.RejectionReason = sql.NullString{Valid: true, String: transition.Reason}
		}

		return s.influencerRepo.Update(ctx, inf)
	})
}

// BulkFailure ...
type BulkFailure struct {
	ID  int64  `json:"id"`
	Err string `json:"error"`
}

// BulkResult reports a batch of independent updates. There is no atomicity
// across the batch: failed items stay untouched, updated items stay updated.
type BulkResult struct {
	Updated int           `json:"updated"`
	Failed  []BulkFailure `json:"failed,omitempty"`
}

// BulkUpdateStatus applies the same transition to many influencers as N
// independent sequential updates, reporting partial failure per record.
func (s *Service) BulkUpdateStatus(
	ctx context.Context, ids []int64, target seeding.Stage, reason string,
) BulkResult {
	var result BulkResult
	for _, id := range ids {
		err := s.UpdateStatus(ctx, id, target, reason)
		if err != nil {
			result.Failed = append(result.Failed, BulkFailure{ID: id, Err: err.Error()})
			continue
		}
		result.Updated++
	}
	if len(result.Failed) > 0 {
		s.logger.Warn("bulk status update partially failed",
			zap.Int("updated", result.Updated),
			zap.Int("failed", len(result.Failed)),
		)
	}
	return result
}
