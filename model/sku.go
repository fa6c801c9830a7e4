package model

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

// ProductCost is one row of the SKU cost master used by profitability
// reporting. Code is the unique business key; imports upsert on it.
type ProductCost struct {
	ID       int64  `db:"id" json:"id"`
	Code     string `db:"code" json:"code"`
	Name     string `db:"name" json:"name"`
	Brand    string `db:"brand" json:"brand"`
	Category string `db:"category" json:"category"`

	CostPrice    decimal.Decimal `db:"cost_price" json:"cost_price"`
	SellingPrice decimal.Decimal `db:"selling_price" json:"selling_price"`

	EffectiveDate sql.NullTime `db:"effective_date" json:"effective_date"`
	Barcode       string       `db:"barcode" json:"barcode"`
	Supplier      string       `db:"supplier" json:"supplier"`
	MinStock      int64        `db:"min_stock" json:"min_stock"`
	CurrentStock  int64        `db:"current_stock" json:"current_stock"`
	IsActive      bool         `db:"is_active" json:"is_active"`
	Notes         string       `db:"notes" json:"notes"`

	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}
