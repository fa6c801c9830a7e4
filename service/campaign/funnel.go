package campaign

import (
	"context"
	"io"

	"go.uber.org/zap"

	"github.com/seedinglab/seedops/csvio"
	"github.com/seedinglab/seedops/seeding"
)

// StageCount ...
type StageCount struct {
	Stage seeding.Stage `json:"stage"`
	Count int           `json:"count"`
}

// FunnelReport is the per-project funnel as the status tabs render it.
type FunnelReport struct {
	ProjectID int64        `json:"project_id"`
	Stages    []StageCount `json:"stages"`
	Rejected  int          `json:"rejected"`
	Accepted  int          `json:"accepted"`
	Total     int          `json:"total"`

	Completed            int  `json:"completed"`
	CompletedByTimestamp int  `json:"completed_by_timestamp"`
	Consistent           bool `json:"consistent"`
}

// FunnelReport computes the cumulative funnel of one project.
//
// Completed is counted twice on purpose, once from the stage and once from
// completed_at. Divergence means the dataset drifted and is logged; the
// report surfaces both numbers instead of hiding one.
func (s *Service) FunnelReport(ctx context.Context, projectID int64) (FunnelReport, error) {
	influencers, err := s.ListInfluencers(ctx, projectID)
	if err != nil {
		return FunnelReport{}, err
	}

	records := make([]seeding.Record, 0, len(influencers))
	for _, inf := range influencers {
		records = append(records, inf.FunnelRecord())
	}

	counts := seeding.Aggregate(records)
	if !counts.Consistent() {
		s.logger.Warn("completed counts diverge",
			zap.Int64("project_id", projectID),
			zap.Int("by_status", counts.Completed),
			zap.Int("by_timestamp", counts.CompletedByTimestamp),
		)
	}

	report := FunnelReport{
		ProjectID:            projectID,
		Rejected:             counts.Rejected,
		Accepted:             seeding.AcceptedCount(records),
		Total:                counts.Total,
		Completed:            counts.Completed,
		CompletedByTimestamp: counts.CompletedByTimestamp,
		Consistent:           counts.Consistent(),
	}
	for _, stage := range seeding.ForwardStages() {
		report.Stages = append(report.Stages, StageCount{
			Stage: stage,
			Count: counts.Stages[stage],
		})
	}
	return report, nil
}

// ExportCSV writes the project's influencers as the fixed CSV download.
func (s *Service) ExportCSV(ctx context.Context, projectID int64, w io.Writer) error {
	influencers, err := s.ListInfluencers(ctx, projectID)
	if err != nil {
		return err
	}
	return csvio.WriteInfluencers(w, influencers)
}
