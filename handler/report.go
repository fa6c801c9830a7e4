package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/seedinglab/seedops/service/report"
)

// ReportHandler serves the sales and profitability reports.
type ReportHandler struct {
	reportService *report.Service
}

// NewReportHandler ...
func NewReportHandler(reportService *report.Service) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

var errMissingReportRange = errors.New("brand, from and to query params are required")

func reportRange(c *gin.Context) (string, time.Time, time.Time, bool) {
	brand := c.Query("brand")
	fromRaw := c.Query("from")
	toRaw := c.Query("to")
	if brand == "" || fromRaw == "" || toRaw == "" {
		respondBadRequest(c, errMissingReportRange)
		return "", time.Time{}, time.Time{}, false
	}

	from, err := time.Parse(dateLayout, fromRaw)
	if err != nil {
		respondBadRequest(c, err)
		return "", time.Time{}, time.Time{}, false
	}
	to, err := time.Parse(dateLayout, toRaw)
	if err != nil {
		respondBadRequest(c, err)
		return "", time.Time{}, time.Time{}, false
	}
	return brand, from, to, true
}

// Monthly ...
func (h *ReportHandler) Monthly(c *gin.Context) {
	brand, from, to, ok := reportRange(c)
	if !ok {
		return
	}
	summaries, err := h.reportService.MonthlySummary(c.Request.Context(), brand, from, to)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"summaries": summaries})
}

// Channels ...
func (h *ReportHandler) Channels(c *gin.Context) {
	brand, from, to, ok := reportRange(c)
	if !ok {
		return
	}
	summaries, err := h.reportService.ChannelBreakdown(c.Request.Context(), brand, from, to)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"summaries": summaries})
}

// Products ...
func (h *ReportHandler) Products(c *gin.Context) {
	brand, from, to, ok := reportRange(c)
	if !ok {
		return
	}
	summaries, err := h.reportService.ProductBreakdown(c.Request.Context(), brand, from, to)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"summaries": summaries})
}
