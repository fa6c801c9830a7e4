package model

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

// ProjectStatus ...
type ProjectStatus string

const (
	// ProjectStatusPlanning ...
	ProjectStatusPlanning ProjectStatus = "planning"

	// ProjectStatusActive ...
	ProjectStatusActive ProjectStatus = "active"

	// ProjectStatusCompleted ...
	ProjectStatusCompleted ProjectStatus = "completed"

	// ProjectStatusPaused ...
	ProjectStatusPaused ProjectStatus = "paused"
)

// SeedingProject is one campaign container owning its influencers.
// Cost/selling prices are snapshotted from the product at creation.
type SeedingProject struct {
	ID    int64  `db:"id" json:"id"`
	Name  string `db:"name" json:"name"`
	Brand string `db:"brand" json:"brand"`

	ProductID   sql.NullInt64 `db:"product_id" json:"product_id"`
	ProductName string        `db:"product_name" json:"product_name"`

	StartDate   sql.NullTime `db:"start_date" json:"start_date"`
	EndDate     sql.NullTime `db:"end_date" json:"end_date"`
	TargetCount int64        `db:"target_count" json:"target_count"`

	CostPrice    decimal.NullDecimal `db:"cost_price" json:"cost_price"`
	SellingPrice decimal.NullDecimal `db:"selling_price" json:"selling_price"`

	Status     ProjectStatus `db:"status" json:"status"`
	AssigneeID sql.NullInt64 `db:"assignee_id" json:"assignee_id"`

	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}
