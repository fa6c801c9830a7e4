package report

import (
	"context"
	"testing"
	"time"

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

type fakeSalesRepo struct {
	records []model.SalesRecord
	spends  []model.AdSpend
}

func (r *fakeSalesRepo) InsertRecords(_ context.Context, records []model.SalesRecord) error {
	r.records = append(r.records, records...)
	return nil
}

func (r *fakeSalesRepo) ListRecords(
	_ context.Context, brand string, from, to time.Time,
) ([]model.SalesRecord, error) {
	var result []model.SalesRecord
	for _, rec := range r.records {
		if rec.Brand != brand || rec.SoldAt.Before(from) || !rec.SoldAt.Before(to) {
			continue
		}
		result = append(result, rec)
	}
	return result, nil
}

func (r *fakeSalesRepo) InsertAdSpends(_ context.Context, spends []model.AdSpend) error {
	r.spends = append(r.spends, spends...)
	return nil
}

func (r *fakeSalesRepo) ListAdSpends(
	_ context.Context, brand string, from, to time.Time,
) ([]model.AdSpend, error) {
	var result []model.AdSpend
	for _, spend := range r.spends {
		if spend.Brand != brand || spend.SpentAt.Before(from) || !spend.SpentAt.Before(to) {
			continue
		}
		result = append(result, spend)
	}
	return result, nil
}

func date(value string) time.Time {
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic(err)
	}
	return t
}

func newServiceTest(t *testing.T) *Service {
	service := NewService(&fakeProvider{}, &fakeSalesRepo{})
	ctx := context.Background()

	err := service.RecordSales(ctx, []model.SalesRecord{
		{
			Brand: "lumiere", Channel: "coupang", ProductCode: "LM-001",
			Quantity: 10, Revenue: decimal.NewFromInt(290000), Cost: decimal.NewFromInt(45000),
			SoldAt: date("2026-06-10"),
		},
		{
			Brand: "lumiere", Channel: "smartstore", ProductCode: "LM-001",
			Quantity: 5, Revenue: decimal.NewFromInt(145000), Cost: decimal.NewFromInt(22500),
			SoldAt: date("2026-06-20"),
		},
		{
			Brand: "lumiere", Channel: "coupang", ProductCode: "LM-002",
			Quantity: 3, Revenue: decimal.NewFromInt(57000), Cost: decimal.NewFromInt(15000),
			SoldAt: date("2026-07-02"),
		},
		{
			Brand: "velvete", Channel: "coupang", ProductCode: "VV-001",
			Quantity: 99, Revenue: decimal.NewFromInt(999), Cost: decimal.NewFromInt(1),
			SoldAt: date("2026-06-15"),
		},
	})
	require.NoError(t, err)

	err = service.RecordAdSpends(ctx, []model.AdSpend{
		{Brand: "lumiere", Channel: "coupang", Amount: decimal.NewFromInt(50000), SpentAt: date("2026-06-05")},
		{Brand: "lumiere", Channel: "meta", Amount: decimal.NewFromInt(30000), SpentAt: date("2026-07-01")},
	})
	require.NoError(t, err)

	return service
}

func TestMonthlySummary(t *testing.T) {
	service := newServiceTest(t)

	summaries, err := service.MonthlySummary(
		context.Background(), "lumiere", date("2026-06-01"), date("2026-08-01"))
	require.NoError(t, err)
	require.Equal(t, 2, len(summaries))

	june := summaries[0]
	assert.Equal(t, "2026-06", june.Key)
	assert.Equal(t, int64(15), june.Quantity)
	assert.Equal(t, "435000", june.Revenue.String())
	assert.Equal(t, "67500", june.Cost.String())
	assert.Equal(t, "50000", june.AdSpend.String())
	assert.Equal(t, "317500", june.Profit.String())
	assert.Equal(t, "72.99", june.Margin.String())

	july := summaries[1]
	assert.Equal(t, "2026-07", july.Key)
	assert.Equal(t, "57000", july.Revenue.String())
	assert.Equal(t, "30000", july.AdSpend.String())
	assert.Equal(t, "12000", july.Profit.String())
}

func TestMonthlySummary_BrandIsolation(t *testing.T) {
	service := newServiceTest(t)

	summaries, err := service.MonthlySummary(
		context.Background(), "velvete", date("2026-06-01"), date("2026-08-01"))
	require.NoError(t, err)
	require.Equal(t, 1, len(summaries))
	assert.Equal(t, "999", summaries[0].Revenue.String())
	assert.Equal(t, "0", summaries[0].AdSpend.String())
}

func TestChannelBreakdown(t *testing.T) {
	service := newServiceTest(t)

	summaries, err := service.ChannelBreakdown(
		context.Background(), "lumiere", date("2026-06-01"), date("2026-08-01"))
	require.NoError(t, err)
	require.Equal(t, 3, len(summaries))

	byKey := map[string]Summary{}
	for _, s := range summaries {
		byKey[s.Key] = s
	}

	assert.Equal(t, int64(13), byKey["coupang"].Quantity)
	assert.Equal(t, "347000", byKey["coupang"].Revenue.String())
	assert.Equal(t, "50000", byKey["coupang"].AdSpend.String())

	// spend-only channel still gets a bucket, with a zero margin
	meta := byKey["meta"]
	assert.Equal(t, "30000", meta.AdSpend.String())
	assert.Equal(t, "-30000", meta.Profit.String())
	assert.Equal(t, "0", meta.Margin.String())
}

func TestProductBreakdown(t *testing.T) {
	service := newServiceTest(t)

	summaries, err := service.ProductBreakdown(
		context.Background(), "lumiere", date("2026-06-01"), date("2026-08-01"))
	require.NoError(t, err)
	require.Equal(t, 2, len(summaries))

	assert.Equal(t, "LM-001", summaries[0].Key)
	assert.Equal(t, int64(15), summaries[0].Quantity)
	assert.Equal(t, "435000", summaries[0].Revenue.String())
	assert.Equal(t, "LM-002", summaries[1].Key)
	assert.Equal(t, "0", summaries[1].AdSpend.String())
}
