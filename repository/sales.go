package repository

import (
	"context"
	"time"

	"github.com/seedinglab/seedops/model"
)

// Sales ...
type Sales interface {
	InsertRecords(ctx context.Context, records []model.SalesRecord) error
	ListRecords(ctx context.Context, brand string, from, to time.Time) ([]model.SalesRecord, error)

	InsertAdSpends(ctx context.Context, spends []model.AdSpend) error
	ListAdSpends(ctx context.Context, brand string, from, to time.Time) ([]model.AdSpend, error)
}

type salesImpl struct {
}

// NewSales ...
func NewSales() Sales {
	return &salesImpl{}
}

// InsertRecords ...
func (r *salesImpl) InsertRecords(ctx context.Context, records []model.SalesRecord) error {
	if len(records) == 0 {
		return nil
	}
	query := `
INSERT INTO sales_record (
	brand, channel, product_code, product_name, quantity, revenue, cost, sold_at
) VALUES (
	:brand, :channel, :product_code, :product_name, :quantity, :revenue, :cost, :sold_at
)
`
	_, err := GetTx(ctx).NamedExecContext(ctx, query, records)
	return err
}

// ListRecords ...
func (r *salesImpl) ListRecords(
	ctx context.Context, brand string, from, to time.Time,
) ([]model.SalesRecord, error) {
	query := `
SELECT id, brand, channel, product_code, product_name, quantity, revenue, cost, sold_at, created_at
FROM sales_record
WHERE brand = ? AND sold_at >= ? AND sold_at < ?
ORDER BY sold_at
`
	var result []model.SalesRecord
	err := GetReadonly(ctx).SelectContext(ctx, &result, query, brand, from, to)
	return result, err
}

// InsertAdSpends ...
func (r *salesImpl) InsertAdSpends(ctx context.Context, spends []model.AdSpend) error {
	if len(spends) == 0 {
		return nil
	}
	query := `
INSERT INTO ad_spend (brand, channel, amount, spent_at)
VALUES (:brand, :channel, :amount, :spent_at)
`
	_, err := GetTx(ctx).NamedExecContext(ctx, query, spends)
	return err
}

// ListAdSpends ...
func (r *salesImpl) ListAdSpends(
	ctx context.Context, brand string, from, to time.Time,
) ([]model.AdSpend, error) {
	query := `
SELECT id, brand, channel, amount, spent_at, created_at
FROM ad_spend
WHERE brand = ? AND spent_at >= ? AND spent_at < ?
ORDER BY spent_at
`
	var result []model.AdSpend
	err := GetReadonly(ctx).SelectContext(ctx, &result, query, brand, from, to)
	return result, err
}
