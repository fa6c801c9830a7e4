package campaign

import (
	"context"

	"github.com/seedinglab/seedops/bulkimport"
)

// TrackingImportReport ...
type TrackingImportReport struct {
	Valid   int           `json:"valid"`
	Invalid int           `json:"invalid"`
	Updated int           `json:"updated"`
	Failed  []BulkFailure `json:"failed,omitempty"`
}

// ImportTracking applies pasted tracking numbers to a project's influencers.
//
// Lines match an influencer by account id when they carry one, else fall
// back to row order. Each update runs independently: a failing row does not
// roll back the rows before it.
func (s *Service) ImportTracking(ctx context.Context, projectID int64, text string) (TrackingImportReport, error) {
	influencers, err := s.ListInfluencers(ctx, projectID)
	if err != nil {
		return TrackingImportReport{}, err
	}

	existing := make([]bulkimport.ExistingRecord, 0, len(influencers))
	for _, inf := range influencers {
		existing = append(existing, bulkimport.ExistingRecord{
			ID:        inf.ID,
			AccountID: inf.AccountID,
		})
	}

	parsed := bulkimport.ParseLines(text, existing)
	report := TrackingImportReport{
		Valid:   parsed.Valid,
		Invalid: parsed.Invalid,
	}

	for _, row := range parsed.Parsed {
		err := s.applyTrackingRow(ctx, row)
		if err != nil {
			report.Failed = append(report.Failed, BulkFailure{ID: row.TargetID, Err: err.Error()})
			continue
		}
		report.Updated++
	}
	return report, nil
}

func (s *Service) applyTrackingRow(ctx context.Context, row bulkimport.Row) error {
	return s.provider.Transact(ctx, func(ctx context.Context) error {
		inf, err := s.influencerRepo.GetForUpdate(ctx, row.TargetID)
		if err != nil {
			return mapNotFound(err, ErrInfluencerNotFound)
		}

		inf.TrackingNumber = row.Fields[0]
		if len(row.Fields) > 1 && row.Fields[1] != "" {
			inf.Carrier = row.Fields[1]
		}

		return s.influencerRepo.Update(ctx, inf)
	})
}
