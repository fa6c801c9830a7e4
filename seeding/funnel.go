package seeding

import "time"

// Record is the funnel view of one influencer: the current stage plus the
// timestamps the aggregation rules look at. Services map model rows into
// this shape so the funnel stays a pure computation.
type Record struct {
	Status      Stage
	AcceptedAt  *time.Time
	CompletedAt *time.Time
}

// FunnelCounts holds the cumulative per-stage counts of one project.
//
// Completed and CompletedByTimestamp are computed independently: the first
// from stage membership, the second from the completed_at column. They are
// equal on a correctly maintained dataset and are deliberately not merged;
// callers compare them as a consistency check.
type FunnelCounts struct {
	Stages   map[Stage]int
	Rejected int
	Total    int

	Completed            int
	CompletedByTimestamp int
}

// Consistent reports whether the two completed counts agree.
func (c FunnelCounts) Consistent() bool {
	return c.Completed == c.CompletedByTimestamp
}

// Aggregate computes the funnel counts of a set of records.
//
// For each forward stage the count is cumulative: a record at stage X counts
// toward every stage at or before X. Rejected records count only in the
// rejected bucket and in the total.
func Aggregate(records []Record) FunnelCounts {
	counts := FunnelCounts{
		Stages: make(map[Stage]int, len(forwardStages)),
		Total:  len(records),
	}
	for _, stage := range forwardStages {
		counts.Stages[stage] = 0
	}

	for _, rec := range records {
		for _, stage := range forwardStages {
			if IsReachedStage(rec.Status, stage) {
				counts.Stages[stage]++
			}
		}
		if rec.Status == StageRejected {
			counts.Rejected++
		}
		if rec.CompletedAt != nil {
			counts.CompletedByTimestamp++
		}
	}

	counts.Completed = counts.Stages[StageCompleted]
	return counts
}

// AcceptedCount counts records accepted either by stage or by timestamp,
// matching the accepted tab of the dashboard.
func AcceptedCount(records []Record) int {
	count := 0
	for _, rec := range records {
		if IsAccepted(rec.Status, rec.AcceptedAt) {
			count++
		}
	}
	return count
}
