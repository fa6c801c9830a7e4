package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/seedinglab/seedops/model"
	"github.com/seedinglab/seedops/service/catalog"
)

// SKUHandler serves the SKU cost master.
type SKUHandler struct {
	catalogService *catalog.Service
}

// NewSKUHandler ...
func NewSKUHandler(catalogService *catalog.Service) *SKUHandler {
	return &SKUHandler{catalogService: catalogService}
}

type skuRequest struct {
	Code         string `json:"code" binding:"required"`
	Name         string `json:"name" binding:"required"`
	Brand        string `json:"brand"`
	Category     string `json:"category"`
	CostPrice    string `json:"cost_price" binding:"required"`
	SellingPrice string `json:"selling_price" binding:"required"`
	Barcode      string `json:"barcode"`
	Supplier     string `json:"supplier"`
	MinStock     int64  `json:"min_stock"`
	CurrentStock int64  `json:"current_stock"`
	IsActive     bool   `json:"is_active"`
	Notes        string `json:"notes"`
}

// Upsert inserts or replaces the SKU keyed by its code.
func (h *SKUHandler) Upsert(c *gin.Context) {
	var req skuRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	cost, err := decimal.NewFromString(req.CostPrice)
	if err != nil {
		respondBadRequest(c, err)
		return
	}
	price, err := decimal.NewFromString(req.SellingPrice)
	if err != nil {
		respondBadRequest(c, err)
		return
	}

	sku := model.ProductCost{
		Code:         req.Code,
		Name:         req.Name,
		Brand:        req.Brand,
		Category:     req.Category,
		CostPrice:    cost,
		SellingPrice: price,
		Barcode:      req.Barcode,
		Supplier:     req.Supplier,
		MinStock:     req.MinStock,
		CurrentStock: req.CurrentStock,
		IsActive:     req.IsActive,
		Notes:        req.Notes,
	}
	if err := h.catalogService.Upsert(c.Request.Context(), sku); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"sku": sku})
}

// List ...
func (h *SKUHandler) List(c *gin.Context) {
	skus, err := h.catalogService.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"skus": skus})
}

// Get ...
func (h *SKUHandler) Get(c *gin.Context) {
	sku, err := h.catalogService.GetByCode(c.Request.Context(), c.Param("code"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"sku": sku})
}

// Delete ...
func (h *SKUHandler) Delete(c *gin.Context) {
	err := h.catalogService.Delete(c.Request.Context(), c.Param("code"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Import ingests an uploaded SKU master CSV. The body is the raw CSV; rows
// that fail to parse come back in the report instead of failing the upload.
func (h *SKUHandler) Import(c *gin.Context) {
	report, err := h.catalogService.ImportCSV(c.Request.Context(), c.Request.Body)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}
