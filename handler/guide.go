package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/seedinglab/seedops/model"
	"github.com/seedinglab/seedops/service/guide"
)

// GuideHandler serves product guides, including the unauthenticated public
// view by slug.
type GuideHandler struct {
	guideService *guide.Service
}

// NewGuideHandler ...
func NewGuideHandler(guideService *guide.Service) *GuideHandler {
	return &GuideHandler{guideService: guideService}
}

type createGuideRequest struct {
	Brand       string   `json:"brand" binding:"required"`
	ProductName string   `json:"product_name"`
	Title       string   `json:"title" binding:"required"`
	Body        string   `json:"body"`
	Hashtags    []string `json:"hashtags"`
	Mentions    []string `json:"mentions"`
	Dos         []string `json:"dos"`
	Donts       []string `json:"donts"`
	KeyPoints   []string `json:"key_points"`
}

// Create ...
func (h *GuideHandler) Create(c *gin.Context) {
	var req createGuideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	created, err := h.guideService.Create(c.Request.Context(), model.ProductGuide{
		Brand:       req.Brand,
		ProductName: req.ProductName,
		Title:       req.Title,
		Body:        req.Body,
		Hashtags:    req.Hashtags,
		Mentions:    req.Mentions,
		Dos:         req.Dos,
		Donts:       req.Donts,
		KeyPoints:   req.KeyPoints,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"guide": created})
}

// List ...
func (h *GuideHandler) List(c *gin.Context) {
	guides, err := h.guideService.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"guides": guides})
}

// Get ...
func (h *GuideHandler) Get(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	g, err := h.guideService.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"guide": g})
}

type updateGuideRequest struct {
	Brand       *string   `json:"brand"`
	ProductName *string   `json:"product_name"`
	Title       *string   `json:"title"`
	Body        *string   `json:"body"`
	Hashtags    *[]string `json:"hashtags"`
	Mentions    *[]string `json:"mentions"`
	Dos         *[]string `json:"dos"`
	Donts       *[]string `json:"donts"`
	KeyPoints   *[]string `json:"key_points"`
}

func stringList(values *[]string) *model.StringList {
	if values == nil {
		return nil
	}
	list := model.StringList(*values)
	return &list
}

// Update applies a partial update; absent fields stay untouched.
func (h *GuideHandler) Update(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var req updateGuideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	g, err := h.guideService.Update(c.Request.Context(), id, guide.GuideUpdate{
		Brand:       req.Brand,
		ProductName: req.ProductName,
		Title:       req.Title,
		Body:        req.Body,
		Hashtags:    stringList(req.Hashtags),
		Mentions:    stringList(req.Mentions),
		Dos:         stringList(req.Dos),
		Donts:       stringList(req.Donts),
		KeyPoints:   stringList(req.KeyPoints),
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"guide": g})
}

// Delete ...
func (h *GuideHandler) Delete(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	if err := h.guideService.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Publish ...
func (h *GuideHandler) Publish(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	g, err := h.guideService.Publish(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"guide": g})
}

// Unpublish ...
func (h *GuideHandler) Unpublish(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	if err := h.guideService.Unpublish(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Public serves the public guide view by slug.
func (h *GuideHandler) Public(c *gin.Context) {
	g, err := h.guideService.GetPublicBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"guide": g})
}
