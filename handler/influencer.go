package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/seedinglab/seedops/model"
	"github.com/seedinglab/seedops/seeding"
	"github.com/seedinglab/seedops/service/campaign"
)

// InfluencerHandler serves single influencers and their status transitions.
type InfluencerHandler struct {
	campaignService *campaign.Service
}

// NewInfluencerHandler ...
func NewInfluencerHandler(campaignService *campaign.Service) *InfluencerHandler {
	return &InfluencerHandler{campaignService: campaignService}
}

type addInfluencerRequest struct {
	AccountID      string `json:"account_id" binding:"required"`
	AccountName    string `json:"account_name"`
	Platform       string `json:"platform"`
	FollowerCount  string `json:"follower_count"`
	FollowingCount string `json:"following_count"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`

	SeedingType string `json:"seeding_type"`
	ContentType string `json:"content_type"`
	Fee         string `json:"fee"`

	ProductName  string `json:"product_name"`
	ProductPrice string `json:"product_price"`
	Notes        string `json:"notes"`
}

// Add lists a new influencer on the project. Follower counts arrive as
// free-form pasted text and are coerced, never rejected.
func (h *InfluencerHandler) Add(c *gin.Context) {
	projectID, ok := paramID(c)
	if !ok {
		return
	}
	var req addInfluencerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	inf := model.SeedingInfluencer{
		ProjectID:      projectID,
		AccountID:      req.AccountID,
		AccountName:    req.AccountName,
		Platform:       model.Platform(req.Platform),
		FollowerCount:  seeding.ParseCount(req.FollowerCount),
		FollowingCount: seeding.ParseCount(req.FollowingCount),
		Email:          req.Email,
		Phone:          req.Phone,
		SeedingType:    seeding.SeedingType(req.SeedingType),
		ContentType:    seeding.ContentType(req.ContentType),
		ProductName:    req.ProductName,
		Notes:          req.Notes,
	}
	if req.Fee != "" {
		fee, err := decimal.NewFromString(req.Fee)
		if err != nil {
			respondBadRequest(c, err)
			return
		}
		inf.Fee = fee
	}
	if req.ProductPrice != "" {
		price, err := decimal.NewFromString(req.ProductPrice)
		if err != nil {
			respondBadRequest(c, err)
			return
		}
		inf.ProductPrice = decimal.NullDecimal{Valid: true, Decimal: price}
	}

	created, err := h.campaignService.AddInfluencer(c.Request.Context(), inf)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"influencer": created})
}

// ListByProject ...
func (h *InfluencerHandler) ListByProject(c *gin.Context) {
	projectID, ok := paramID(c)
	if !ok {
		return
	}
	influencers, err := h.campaignService.ListInfluencers(c.Request.Context(), projectID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"influencers": influencers})
}

// Get ...
func (h *InfluencerHandler) Get(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	inf, err := h.campaignService.GetInfluencer(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"influencer": inf})
}

type updateInfluencerRequest struct {
	AccountName      *string `json:"account_name"`
	FollowerCount    *string `json:"follower_count"`
	FollowingCount   *string `json:"following_count"`
	Email            *string `json:"email"`
	Phone            *string `json:"phone"`
	SeedingType      *string `json:"seeding_type"`
	ContentType      *string `json:"content_type"`
	Fee              *string `json:"fee"`
	Notes            *string `json:"notes"`
	ProductName      *string `json:"product_name"`
	ProductPrice     *string `json:"product_price"`
	ExpectedUploadAt *string `json:"expected_upload_at"`

	Shipping    *model.ShippingInfo       `json:"shipping"`
	Performance *model.SeedingPerformance `json:"performance"`
}

// Update applies a partial update; absent fields stay untouched.
func (h *InfluencerHandler) Update(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var req updateInfluencerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	update := campaign.InfluencerUpdate{
		AccountName: req.AccountName,
		Email:       req.Email,
		Phone:       req.Phone,
		Notes:       req.Notes,
		ProductName: req.ProductName,
		Shipping:    req.Shipping,
		Performance: req.Performance,
	}
	if req.FollowerCount != nil {
		count := seeding.ParseCount(*req.FollowerCount)
		update.FollowerCount = &count
	}
	if req.FollowingCount != nil {
		count := seeding.ParseCount(*req.FollowingCount)
		update.FollowingCount = &count
	}
	if req.SeedingType != nil {
		st := seeding.SeedingType(*req.SeedingType)
		update.SeedingType = &st
	}
	if req.ContentType != nil {
		ct := seeding.ContentType(*req.ContentType)
		update.ContentType = &ct
	}
	if req.Fee != nil {
		fee, err := decimal.NewFromString(*req.Fee)
		if err != nil {
			respondBadRequest(c, err)
			return
		}
		update.Fee = &fee
	}
	if req.ProductPrice != nil {
		price, err := decimal.NewFromString(*req.ProductPrice)
		if err != nil {
			respondBadRequest(c, err)
			return
		}
		update.ProductPrice = &price
	}
	if req.ExpectedUploadAt != nil {
		t, err := time.Parse(dateLayout, *req.ExpectedUploadAt)
		if err != nil {
			respondBadRequest(c, err)
			return
		}
		update.ExpectedUploadAt = &t
	}

	inf, err := h.campaignService.UpdateInfluencer(c.Request.Context(), id, update)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"influencer": inf})
}

// Delete ...
func (h *InfluencerHandler) Delete(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	if err := h.campaignService.DeleteInfluencer(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

type updateStatusRequest struct {
	Status string `json:"status" binding:"required"`
	Reason string `json:"reason"`
}

// UpdateStatus moves one influencer to the requested stage.
func (h *InfluencerHandler) UpdateStatus(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var req updateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	err := h.campaignService.UpdateStatus(
		c.Request.Context(), id, seeding.Stage(req.Status), req.Reason)
	if err != nil {
		respondError(c, err)
		return
	}

	inf, err := h.campaignService.GetInfluencer(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"influencer": inf})
}

type bulkStatusRequest struct {
	IDs    []int64 `json:"ids" binding:"required"`
	Status string  `json:"status" binding:"required"`
	Reason string  `json:"reason"`
}

// BulkUpdateStatus applies one transition to many influencers and reports
// per-record failures; a failing record never rolls back the others.
func (h *InfluencerHandler) BulkUpdateStatus(c *gin.Context) {
	var req bulkStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	result := h.campaignService.BulkUpdateStatus(
		c.Request.Context(), req.IDs, seeding.Stage(req.Status), req.Reason)
	c.JSON(http.StatusOK, result)
}
