package catalog

import (
	"context"
	"database/sql"
	"errors"
	"io"

	"github.com/seedinglab/seedops/csvio"
	"github.com/seedinglab/seedops/model"
	"github.com/seedinglab/seedops/repository"
)

// ErrSKUNotFound ...
var ErrSKUNotFound = errors.New("catalog: SKU not found")

// Service owns the SKU cost master backing profitability reports.
type Service struct {
	provider repository.Provider
	skuRepo  repository.SKU
}

// NewService ...
func NewService(provider repository.Provider, skuRepo repository.SKU) *Service {
	return &Service{
		provider: provider,
		skuRepo:  skuRepo,
	}
}

// Upsert ...
func (s *Service) Upsert(ctx context.Context, sku model.ProductCost) error {
	return s.provider.Transact(ctx, func(ctx context.Context) error {
		return s.skuRepo.Upsert(ctx, sku)
	})
}

// GetByCode ...
func (s *Service) GetByCode(ctx context.Context, code string) (model.ProductCost, error) {
	sku, err := s.skuRepo.GetByCode(s.provider.Readonly(ctx), code)
	if errors.Is(err, sql.ErrNoRows) {
		return model.ProductCost{}, ErrSKUNotFound
	}
	return sku, err
}

// List ...
func (s *Service) List(ctx context.Context) ([]model.ProductCost, error) {
	return s.skuRepo.List(s.provider.Readonly(ctx))
}

// Delete ...
func (s *Service) Delete(ctx context.Context, code string) error {
	return s.provider.Transact(ctx, func(ctx context.Context) error {
		return s.skuRepo.Delete(ctx, code)
	})
}

// ImportReport ...
type ImportReport struct {
	Imported int              `json:"imported"`
	Skipped  []csvio.RowError `json:"skipped,omitempty"`
}

// ImportCSV upserts every valid row of an uploaded SKU master CSV in one
// transaction and reports the skipped rows with their line numbers.
func (s *Service) ImportCSV(ctx context.Context, r io.Reader) (ImportReport, error) {
	parsed, err := csvio.ReadSKUMaster(r)
	if err != nil {
		return ImportReport{}, err
	}

	err = s.provider.Transact(ctx, func(ctx context.Context) error {
		for _, row := range parsed.Rows {
			if err := s.skuRepo.Upsert(ctx, row); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return ImportReport{}, err
	}

	return ImportReport{
		Imported: len(parsed.Rows),
		Skipped:  parsed.Skipped,
	}, nil
}
