package report

import (
	"context"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/seedinglab/seedops/model"
	"github.com/seedinglab/seedops/repository"
)

// Service computes sales and profitability summaries over imported sales
// rows and ad spends. Aggregation is linear scans into maps; the row counts
// are dashboard-sized.
type Service struct {
	provider  repository.Provider
	salesRepo repository.Sales
}

// NewService ...
func NewService(provider repository.Provider, salesRepo repository.Sales) *Service {
	return &Service{
		provider:  provider,
		salesRepo: salesRepo,
	}
}

const monthLayout = "2006-01"

// Summary is one aggregation bucket (a month, a channel or a product).
type Summary struct {
	Key      string          `json:"key"`
	Quantity int64           `json:"quantity"`
	Revenue  decimal.Decimal `json:"revenue"`
	Cost     decimal.Decimal `json:"cost"`
	AdSpend  decimal.Decimal `json:"ad_spend"`
	Profit   decimal.Decimal `json:"profit"`
	Margin   decimal.Decimal `json:"margin"`
}

func newSummary(key string) *Summary {
	return &Summary{
		Key:     key,
		Revenue: decimal.Zero,
		Cost:    decimal.Zero,
		AdSpend: decimal.Zero,
	}
}

func (s *Summary) finalize() {
	s.Profit = s.Revenue.Sub(s.Cost).Sub(s.AdSpend)
	if s.Revenue.IsPositive() {
		s.Margin = s.Profit.Div(s.Revenue).Mul(decimal.NewFromInt(100)).Round(2)
	} else {
		s.Margin = decimal.Zero
	}
}

func sortedSummaries(buckets map[string]*Summary) []Summary {
	keys := make([]string, 0, len(buckets))
	for key := range buckets {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	result := make([]Summary, 0, len(keys))
	for _, key := range keys {
		buckets[key].finalize()
		result = append(result, *buckets[key])
	}
	return result
}

func bucket(buckets map[string]*Summary, key string) *Summary {
	b, ok := buckets[key]
	if !ok {
		b = newSummary(key)
		buckets[key] = b
	}
	return b
}

func (s *Service) load(
	ctx context.Context, brand string, from, to time.Time,
) ([]model.SalesRecord, []model.AdSpend, error) {
	readCtx := s.provider.Readonly(ctx)

	sales, err := s.salesRepo.ListRecords(readCtx, brand, from, to)
	if err != nil {
		return nil, nil, err
	}
	spends, err := s.salesRepo.ListAdSpends(readCtx, brand, from, to)
	if err != nil {
		return nil, nil, err
	}
	return sales, spends, nil
}

// MonthlySummary aggregates revenue, cost, ad spend and profit per month.
func (s *Service) MonthlySummary(
	ctx context.Context, brand string, from, to time.Time,
) ([]Summary, error) {
	sales, spends, err := s.load(ctx, brand, from, to)
	if err != nil {
		return nil, err
	}

	buckets := make(map[string]*Summary)
	for _, rec := range sales {
		b := bucket(buckets, rec.SoldAt.Format(monthLayout))
		b.Quantity += rec.Quantity
		b.Revenue = b.Revenue.Add(rec.Revenue)
		b.Cost = b.Cost.Add(rec.Cost)
	}
	for _, spend := range spends {
		b := bucket(buckets, spend.SpentAt.Format(monthLayout))
		b.AdSpend = b.AdSpend.Add(spend.Amount)
	}

	return sortedSummaries(buckets), nil
}

// ChannelBreakdown aggregates per sales channel; ad spend joins on channel.
func (s *Service) ChannelBreakdown(
	ctx context.Context, brand string, from, to time.Time,
) ([]Summary, error) {
	sales, spends, err := s.load(ctx, brand, from, to)
	if err != nil {
		return nil, err
	}

	buckets := make(map[string]*Summary)
	for _, rec := range sales {
		b := bucket(buckets, rec.Channel)
		b.Quantity += rec.Quantity
		b.Revenue = b.Revenue.Add(rec.Revenue)
		b.Cost = b.Cost.Add(rec.Cost)
	}
	for _, spend := range spends {
		b := bucket(buckets, spend.Channel)
		b.AdSpend = b.AdSpend.Add(spend.Amount)
	}

	return sortedSummaries(buckets), nil
}

// ProductBreakdown aggregates per product code. Ad spend is not attributable
// to a product and stays zero here.
func (s *Service) ProductBreakdown(
	ctx context.Context, brand string, from, to time.Time,
) ([]Summary, error) {
	sales, _, err := s.load(ctx, brand, from, to)
	if err != nil {
		return nil, err
	}

	buckets := make(map[string]*Summary)
	for _, rec := range sales {
		b := bucket(buckets, rec.ProductCode)
		b.Quantity += rec.Quantity
		b.Revenue = b.Revenue.Add(rec.Revenue)
		b.Cost = b.Cost.Add(rec.Cost)
	}

	return sortedSummaries(buckets), nil
}

// RecordSales stores imported sales rows.
func (s *Service) RecordSales(ctx context.Context, records []model.SalesRecord) error {
	return s.provider.Transact(ctx, func(ctx context.Context) error {
		return s.salesRepo.InsertRecords(ctx, records)
	})
}

// RecordAdSpends stores imported ad spend rows.
func (s *Service) RecordAdSpends(ctx context.Context, spends []model.AdSpend) error {
	return s.provider.Transact(ctx, func(ctx context.Context) error {
		return s.salesRepo.InsertAdSpends(ctx, spends)
	})
}
