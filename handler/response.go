package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/seedinglab/seedops/seeding"
	"github.com/seedinglab/seedops/service/campaign"
	"github.com/seedinglab/seedops/service/catalog"
	"github.com/seedinglab/seedops/service/guide"
	"github.com/seedinglab/seedops/service/messaging"
)

var notFoundErrors = []error{
	campaign.ErrProjectNotFound,
	campaign.ErrInfluencerNotFound,
	messaging.ErrTemplateNotFound,
	guide.ErrGuideNotFound,
	catalog.ErrSKUNotFound,
}

var badRequestErrors = []error{
	seeding.ErrFeeRequired,
	seeding.ErrUnknownStage,
	seeding.ErrReasonRequired,
	seeding.ErrRejectCompleted,
}

// respondError maps service errors onto status codes; anything unrecognized
// is a 500 with the message passed through.
func respondError(c *gin.Context, err error) {
	for _, target := range notFoundErrors {
		if errors.Is(err, target) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
	}
	for _, target := range badRequestErrors {
		if errors.Is(err, target) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}

func respondBadRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
}
