package seeding

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func statusRecords(stages ...Stage) []Record {
	records := make([]Record, 0, len(stages))
	for _, s := range stages {
		records = append(records, Record{Status: s})
	}
	return records
}

func TestAggregate_Empty(t *testing.T) {
	counts := Aggregate(nil)

	assert.Equal(t, 0, counts.Total)
	assert.Equal(t, 0, counts.Rejected)
	for _, s := range ForwardStages() {
		assert.Equal(t, 0, counts.Stages[s])
	}
	assert.Equal(t, true, counts.Consistent())
}

// the scenario from the dashboard status tabs
func TestAggregate_MixedStatuses(t *testing.T) {
	records := statusRecords(
		StageListed, StageContacted, StageAccepted, StageRejected, StageShipped,
	)

	counts := Aggregate(records)

	assert.Equal(t, 5, counts.Total)
	assert.Equal(t, 4, counts.Stages[StageListed])
	assert.Equal(t, 3, counts.Stages[StageContacted])
	assert.Equal(t, 2, counts.Stages[StageAccepted])
	assert.Equal(t, 1, counts.Stages[StageShipped])
	assert.Equal(t, 0, counts.Stages[StageGuideSent])
	assert.Equal(t, 0, counts.Stages[StagePosted])
	assert.Equal(t, 0, counts.Stages[StageCompleted])
	assert.Equal(t, 1, counts.Rejected)
}

func TestAggregate_Monotonic(t *testing.T) {
	records := statusRecords(
		StageListed, StageListed, StageContacted, StageAccepted, StageAccepted,
		StageShipped, StageGuideSent, StagePosted, StageCompleted, StageRejected,
	)

	counts := Aggregate(records)

	stages := ForwardStages()
	for i := 1; i < len(stages); i++ {
		assert.LessOrEqual(t, counts.Stages[stages[i]], counts.Stages[stages[i-1]])
	}
}

func TestAggregate_RejectedOnlyInOwnBucket(t *testing.T) {
	counts := Aggregate(statusRecords(StageRejected, StageRejected))

	assert.Equal(t, 2, counts.Total)
	assert.Equal(t, 2, counts.Rejected)
	for _, s := range ForwardStages() {
		assert.Equal(t, 0, counts.Stages[s])
	}
}

func TestAggregate_CompletedDualPath(t *testing.T) {
	now := time.Now()

	records := []Record{
		{Status: StageCompleted, CompletedAt: &now},
		{Status: StageCompleted, CompletedAt: &now},
		{Status: StagePosted},
	}
	counts := Aggregate(records)
	assert.Equal(t, 2, counts.Completed)
	assert.Equal(t, 2, counts.CompletedByTimestamp)
	assert.Equal(t, true, counts.Consistent())

	// a completed_at without the matching stage must surface as divergence
	records = append(records, Record{Status: StagePosted, CompletedAt: &now})
	counts = Aggregate(records)
	assert.Equal(t, 2, counts.Completed)
	assert.Equal(t, 3, counts.CompletedByTimestamp)
	assert.Equal(t, false, counts.Consistent())
}

func TestAcceptedCount(t *testing.T) {
	now := time.Now()

	records := []Record{
		{Status: StageListed},
		{Status: StageAccepted},
		{Status: StageShipped},
		// backdated acceptance, stage corrected backward
		{Status: StageContacted, AcceptedAt: &now},
		{Status: StageRejected},
	}
	assert.Equal(t, 3, AcceptedCount(records))
}
