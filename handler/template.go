package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/seedinglab/seedops/model"
	"github.com/seedinglab/seedops/service/messaging"
)

// TemplateHandler serves outreach templates.
type TemplateHandler struct {
	messagingService *messaging.Service
}

// NewTemplateHandler ...
func NewTemplateHandler(messagingService *messaging.Service) *TemplateHandler {
	return &TemplateHandler{messagingService: messagingService}
}

type templateRequest struct {
	Name        string `json:"name" binding:"required"`
	Content     string `json:"content" binding:"required"`
	SeedingType string `json:"seeding_type"`
	ContentType string `json:"content_type"`
	Brand       string `json:"brand"`
}

// Create ...
func (h *TemplateHandler) Create(c *gin.Context) {
	var req templateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	tmpl, err := h.messagingService.Create(c.Request.Context(), model.OutreachTemplate{
		Name:        req.Name,
		Content:     req.Content,
		SeedingType: req.SeedingType,
		ContentType: req.ContentType,
		Brand:       req.Brand,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"template": tmpl})
}

// List returns templates matching the scope query params, most used first.
func (h *TemplateHandler) List(c *gin.Context) {
	templates, err := h.messagingService.List(c.Request.Context(), messaging.ListFilter{
		SeedingType: c.Query("seeding_type"),
		ContentType: c.Query("content_type"),
		Brand:       c.Query("brand"),
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"templates": templates})
}

// Get ...
func (h *TemplateHandler) Get(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	tmpl, err := h.messagingService.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"template": tmpl})
}

// Update ...
func (h *TemplateHandler) Update(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var req templateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	tmpl := model.OutreachTemplate{
		ID:          id,
		Name:        req.Name,
		Content:     req.Content,
		SeedingType: req.SeedingType,
		ContentType: req.ContentType,
		Brand:       req.Brand,
	}
	if err := h.messagingService.Update(c.Request.Context(), tmpl); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"template": tmpl})
}

// Delete ...
func (h *TemplateHandler) Delete(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	if err := h.messagingService.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Use records one copy action and returns the bumped template.
func (h *TemplateHandler) Use(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	tmpl, err := h.messagingService.Use(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"template": tmpl})
}

type renderRequest struct {
	InfluencerID int64  `json:"influencer_id" binding:"required"`
	AssigneeName string `json:"assignee_name"`
	GuideLink    string `json:"guide_link"`
}

// Render fills the template with one influencer's values.
func (h *TemplateHandler) Render(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var req renderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	result, err := h.messagingService.Render(
		c.Request.Context(), id, req.InfluencerID, messaging.RenderInput{
			AssigneeName: req.AssigneeName,
			GuideLink:    req.GuideLink,
		})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
