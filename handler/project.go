package handler

import (
	"database/sql"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/seedinglab/seedops/model"
	"github.com/seedinglab/seedops/service/campaign"
)

// ProjectHandler serves seeding projects and their project-scoped
// sub-resources (influencer list, funnel, CSV export, tracking import).
type ProjectHandler struct {
	campaignService *campaign.Service
}

// NewProjectHandler ...
func NewProjectHandler(campaignService *campaign.Service) *ProjectHandler {
	return &ProjectHandler{campaignService: campaignService}
}

const dateLayout = "2006-01-02"

func paramID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		respondBadRequest(c, err)
		return 0, false
	}
	return id, true
}

func parseDate(raw string) (sql.NullTime, error) {
	if raw == "" {
		return sql.NullTime{}, nil
	}
	t, err := time.Parse(dateLayout, raw)
	if err != nil {
		return sql.NullTime{}, err
	}
	return sql.NullTime{Valid: true, Time: t}, nil
}

type createProjectRequest struct {
	Name        string `json:"name" binding:"required"`
	Brand       string `json:"brand" binding:"required"`
	ProductName string `json:"product_name"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	TargetCount int64  `json:"target_count"`
	AssigneeID  *int64 `json:"assignee_id"`
}

// Create ...
func (h *ProjectHandler) Create(c *gin.Context) {
	var req createProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	project := model.SeedingProject{
		Name:        req.Name,
		Brand:       req.Brand,
		ProductName: req.ProductName,
		TargetCount: req.TargetCount,
	}
	var err error
	if project.StartDate, err = parseDate(req.StartDate); err != nil {
		respondBadRequest(c, err)
		return
	}
	if project.EndDate, err = parseDate(req.EndDate); err != nil {
		respondBadRequest(c, err)
		return
	}
	if req.AssigneeID != nil {
		project.AssigneeID = sql.NullInt64{Valid: true, Int64: *req.AssigneeID}
	}

	created, err := h.campaignService.CreateProject(c.Request.Context(), project)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"project": created})
}

// List ...
func (h *ProjectHandler) List(c *gin.Context) {
	projects, err := h.campaignService.ListProjects(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"projects": projects})
}

// Get ...
func (h *ProjectHandler) Get(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	project, err := h.campaignService.GetProject(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"project": project})
}

type updateProjectRequest struct {
	Name        *string `json:"name"`
	Brand       *string `json:"brand"`
	ProductName *string `json:"product_name"`
	StartDate   *string `json:"start_date"`
	EndDate     *string `json:"end_date"`
	TargetCount *int64  `json:"target_count"`
	Status      *string `json:"status"`
	AssigneeID  *int64  `json:"assignee_id"`
}

// Update applies a partial update; absent fields stay untouched.
func (h *ProjectHandler) Update(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var req updateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	update := campaign.ProjectUpdate{
		Name:        req.Name,
		Brand:       req.Brand,
		ProductName: req.ProductName,
		TargetCount: req.TargetCount,
		AssigneeID:  req.AssigneeID,
	}
	if req.StartDate != nil {
		t, err := time.Parse(dateLayout, *req.StartDate)
		if err != nil {
			respondBadRequest(c, err)
			return
		}
		update.StartDate = &t
	}
	if req.EndDate != nil {
		t, err := time.Parse(dateLayout, *req.EndDate)
		if err != nil {
			respondBadRequest(c, err)
			return
		}
		update.EndDate = &t
	}
	if req.Status != nil {
		status := model.ProjectStatus(*req.Status)
		update.Status = &status
	}

	project, err := h.campaignService.UpdateProject(c.Request.Context(), id, update)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"project": project})
}

// Delete removes the project and everything listed under it.
func (h *ProjectHandler) Delete(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	if err := h.campaignService.DeleteProject(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Funnel ...
func (h *ProjectHandler) Funnel(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	report, err := h.campaignService.FunnelReport(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

// Export streams the influencer table as a CSV download.
func (h *ProjectHandler) Export(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition",
		`attachment; filename="influencers-`+strconv.FormatInt(id, 10)+`.csv"`)

	err := h.campaignService.ExportCSV(c.Request.Context(), id, c.Writer)
	if err != nil {
		// headers are out already; all we can do is log through the middleware
		_ = c.Error(err)
	}
}

type trackingImportRequest struct {
	Text string `json:"text" binding:"required"`
}

// TrackingImport applies pasted tracking numbers to the project.
func (h *ProjectHandler) TrackingImport(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var req trackingImportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	report, err := h.campaignService.ImportTracking(c.Request.Context(), id, req.Text)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}
