package repository

import (
	"context"

	"github.com/seedinglab/seedops/model"
)

// SKU ...
type SKU interface {
	Upsert(ctx context.Context, sku model.ProductCost) error
	GetByCode(ctx context.Context, code string) (model.ProductCost, error)
	List(ctx context.Context) ([]model.ProductCost, error)
	Delete(ctx context.Context, code string) error
}

type skuImpl struct {
}

// NewSKU ...
func NewSKU() SKU {
	return &skuImpl{}
}

const skuColumns = `
id, code, name, brand, category, cost_price, selling_price,
effective_date, barcode, supplier, min_stock, current_stock,
is_active, notes, created_at, updated_at
`

// Upsert inserts or replaces the row keyed by the SKU code, so repeated
// CSV imports converge on the latest upload.
func (r *skuImpl) Upsert(ctx context.Context, sku model.ProductCost) error {
	query := `
INSERT INTO product_cost (
	code, name, brand, category, cost_price, selling_price,
	effective_date, barcode, supplier, min_stock, current_stock,
	is_active, notes
) VALUES (
	:code, :name, :brand, :category, :cost_price, :selling_price,
	:effective_date, :barcode, :supplier, :min_stock, :current_stock,
	:is_active, :notes
) AS NEW
ON DUPLICATE KEY UPDATE
	name = NEW.name,
	brand = NEW.brand,
	category = NEW.category,
	cost_price = NEW.cost_price,
	selling_price = NEW.selling_price,
	effective_date = NEW.effective_date,
	barcode = NEW.barcode,
	supplier = NEW.supplier,
	min_stock = NEW.min_stock,
	current_stock = NEW.current_stock,
	is_active = NEW.is_active,
	notes = NEW.notes
`
	_, err := GetTx(ctx).NamedExecContext(ctx, query, sku)
	return err
}

// GetByCode ...
func (r *skuImpl) GetByCode(ctx context.Context, code string) (model.ProductCost, error) {
	query := `SELECT ` + skuColumns + ` FROM product_cost WHERE code = ?`
	var result model.ProductCost
	err := GetReadonly(ctx).GetContext(ctx, &result, query, code)
	return result, err
}

// List ...
func (r *skuImpl) List(ctx context.Context) ([]model.ProductCost, error) {
	query := `SELECT ` + skuColumns + ` FROM product_cost ORDER BY code`
	var result []model.ProductCost
	err := GetReadonly(ctx).SelectContext(ctx, &result, query)
	return result, err
}

// Delete ...
func (r *skuImpl) Delete(ctx context.Context, code string) error {
	query := `DELETE FROM product_cost WHERE code = ?`
	_, err := GetTx(ctx).ExecContext(ctx, query, code)
	return err
}
