package seeding

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDMSent(t *testing.T) {
	assert.Equal(t, false, DMSent(StageListed))

	assert.Equal(t, true, DMSent(StageContacted))
	assert.Equal(t, true, DMSent(StageAccepted))
	assert.Equal(t, true, DMSent(StageRejected))
	assert.Equal(t, true, DMSent(StageShipped))
	assert.Equal(t, true, DMSent(StageGuideSent))
	assert.Equal(t, true, DMSent(StagePosted))
	assert.Equal(t, true, DMSent(StageCompleted))
}

func TestResponseReceived(t *testing.T) {
	assert.Equal(t, false, ResponseReceived(StageListed))
	assert.Equal(t, false, ResponseReceived(StageContacted))

	assert.Equal(t, true, ResponseReceived(StageAccepted))
	assert.Equal(t, true, ResponseReceived(StageRejected))
	assert.Equal(t, true, ResponseReceived(StageShipped))
	assert.Equal(t, true, ResponseReceived(StageGuideSent))
	assert.Equal(t, true, ResponseReceived(StagePosted))
	assert.Equal(t, true, ResponseReceived(StageCompleted))
}

func TestIsShipped(t *testing.T) {
	assert.Equal(t, false, IsShipped(StageListed))
	assert.Equal(t, false, IsShipped(StageContacted))
	assert.Equal(t, false, IsShipped(StageAccepted))
	assert.Equal(t, false, IsShipped(StageRejected))

	assert.Equal(t, true, IsShipped(StageShipped))
	assert.Equal(t, true, IsShipped(StageGuideSent))
	assert.Equal(t, true, IsShipped(StagePosted))
	assert.Equal(t, true, IsShipped(StageCompleted))
}

func TestIsAccepted(t *testing.T) {
	now := time.Now()

	assert.Equal(t, false, IsAccepted(StageListed, nil))
	assert.Equal(t, false, IsAccepted(StageContacted, nil))

	assert.Equal(t, true, IsAccepted(StageAccepted, nil))
	assert.Equal(t, true, IsAccepted(StageCompleted, nil))

	// timestamp wins even when the stage was later corrected backward
	assert.Equal(t, true, IsAccepted(StageContacted, &now))
	assert.Equal(t, true, IsAccepted(StageRejected, &now))
}

// stage implications must hold transitively for every stage
func TestFlagImplicationChain(t *testing.T) {
	allStages := append([]Stage{}, ForwardStages()...)
	allStages = append(allStages, StageRejected)

	for _, s := range allStages {
		if IsShipped(s) {
			assert.Equal(t, true, ResponseReceived(s), "stage %s", s)
		}
		if ResponseReceived(s) {
			assert.Equal(t, true, DMSent(s), "stage %s", s)
		}
	}
}
