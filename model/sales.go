package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// SalesRecord is one imported sales row of a brand/channel/product.
type SalesRecord struct {
	ID          int64  `db:"id" json:"id"`
	Brand       string `db:"brand" json:"brand"`
	Channel     string `db:"channel" json:"channel"`
	ProductCode string `db:"product_code" json:"product_code"`
	ProductName string `db:"product_name" json:"product_name"`

	Quantity int64           `db:"quantity" json:"quantity"`
	Revenue  decimal.Decimal `db:"revenue" json:"revenue"`
	Cost     decimal.Decimal `db:"cost" json:"cost"`

	SoldAt time.Time `db:"sold_at" json:"sold_at"`

	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// AdSpend is one ad platform spend row, bucketed by month in reports.
type AdSpend struct {
	ID      int64  `db:"id" json:"id"`
	Brand   string `db:"brand" json:"brand"`
	Channel string `db:"channel" json:"channel"`

	Amount decimal.Decimal `db:"amount" json:"amount"`

	SpentAt time.Time `db:"spent_at" json:"spent_at"`

	CreatedAt time.Time `db:"created_at" json:"created_at"`
}
