package catalog

import (
	"context"
	"database/sql"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seedinglab/seedops/model"
)

type fakeProvider struct {
}

func (p *fakeProvider) Transact(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (p *fakeProvider) Readonly(ctx context.Context) context.Context {
	return ctx
}

type fakeSKURepo struct {
	rows map[string]model.ProductCost
}

func newFakeSKURepo() *fakeSKURepo {
	return &fakeSKURepo{rows: map[string]model.ProductCost{}}
}

func (r *fakeSKURepo) Upsert(_ context.Context, sku model.ProductCost) error {
	r.rows[sku.Code] = sku
	return nil
}

func (r *fakeSKURepo) GetByCode(_ context.Context, code string) (model.ProductCost, error) {
	sku, ok := r.rows[code]
	if !ok {
		return model.ProductCost{}, sql.ErrNoRows
	}
	return sku, nil
}

func (r *fakeSKURepo) List(_ context.Context) ([]model.ProductCost, error) {
	var result []model.ProductCost
	for _, sku := range r.rows {
		result = append(result, sku)
	}
	return result, nil
}

func (r *fakeSKURepo) Delete(_ context.Context, code string) error {
	delete(r.rows, code)
	return nil
}

func newService() (*Service, *fakeSKURepo) {
	repo := newFakeSKURepo()
	return NewService(&fakeProvider{}, repo), repo
}

func TestGetByCode_NotFound(t *testing.T) {
	service, _ := newService()

	_, err := service.GetByCode(context.Background(), "LM-001")
	assert.Equal(t, ErrSKUNotFound, err)
}

func TestUpsert_ThenGet(t *testing.T) {
	service, _ := newService()
	ctx := context.Background()

	err := service.Upsert(ctx, model.ProductCost{
		Code:      "LM-001",
		Name:      "vitamin c serum",
		CostPrice: decimal.NewFromInt(4500),
	})
	require.NoError(t, err)

	sku, err := service.GetByCode(ctx, "LM-001")
	require.NoError(t, err)
	assert.Equal(t, "vitamin c serum", sku.Name)
}

const skuCSV = `code,name,brand,category,cost,price,effective,barcode,supplier,min,current,active,notes
LM-001,vitamin c serum,lumiere,skincare,4500,29000,2026-01-01,8801234567890,acme,10,120,Y,bestseller
LM-002,toner pad,lumiere,skincare,not-a-number,19000,,,,5,40,Y,
,nameless,lumiere,skincare,1000,2000,,,,1,1,N,
LM-003,cushion,velvete,makeup,8200,35000,,,acme,0,15,N,discontinued
`

func TestImportCSV(t *testing.T) {
	service, repo := newService()

	report, err := service.ImportCSV(context.Background(), strings.NewReader(skuCSV))
	require.NoError(t, err)

	assert.Equal(t, 2, report.Imported)
	require.Equal(t, 2, len(report.Skipped))
	assert.Equal(t, 3, report.Skipped[0].Line)
	assert.Equal(t, 4, report.Skipped[1].Line)

	sku, ok := repo.rows["LM-001"]
	require.Equal(t, true, ok)
	assert.Equal(t, "lumiere", sku.Brand)
	assert.Equal(t, true, sku.IsActive)
	assert.Equal(t, int64(120), sku.CurrentStock)
	assert.Equal(t, true, sku.EffectiveDate.Valid)

	sku, ok = repo.rows["LM-003"]
	require.Equal(t, true, ok)
	assert.Equal(t, false, sku.IsActive)
	assert.Equal(t, "discontinued", sku.Notes)
}

func TestImportCSV_Reimport(t *testing.T) {
	service, repo := newService()
	ctx := context.Background()

	_, err := service.ImportCSV(ctx, strings.NewReader(skuCSV))
	require.NoError(t, err)

	updated := strings.Replace(skuCSV, "4500", "4800", 1)
	report, err := service.ImportCSV(ctx, strings.NewReader(updated))
	require.NoError(t, err)
	assert.Equal(t, 2, report.Imported)

	sku := repo.rows["LM-001"]
	assert.Equal(t, "4800", sku.CostPrice.String())
}
