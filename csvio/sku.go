package csvio

import (
	"database/sql"
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/seedinglab/seedops/model"
	"github.com/seedinglab/seedops/seeding"
)

// SKU master import column order. The header row is present and skipped.
const (
	skuColCode = iota
	skuColName
	skuColBrand
	skuColCategory
	skuColCost
	skuColPrice
	skuColEffectiveDate
	skuColBarcode
	skuColSupplier
	skuColMinStock
	skuColCurrentStock
	skuColActive
	skuColNotes
)

// RowError records one skipped import row.
type RowError struct {
	Line int
	Err  string
}

// SKUImportResult mirrors what the import dialog reports back.
type SKUImportResult struct {
	Rows    []model.ProductCost
	Skipped []RowError
}

// ReadSKUMaster parses an uploaded SKU cost master CSV. Malformed rows are
// collected into Skipped with their line number; only an unreadable stream
// returns an error.
func ReadSKUMaster(r io.Reader) (SKUImportResult, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	var result SKUImportResult

	line := 0
	for {
		record, err := cr.Read()
		if err == io.EOF {
			return result, nil
		}
		if err != nil {
			return result, err
		}
		line++
		if line == 1 {
			continue
		}

		row, rowErr := parseSKURow(record)
		if rowErr != "" {
			result.Skipped = append(result.Skipped, RowError{Line: line, Err: rowErr})
			continue
		}
		result.Rows = append(result.Rows, row)
	}
}

func parseSKURow(record []string) (model.ProductCost, string) {
	if len(record) < skuColActive+1 {
		return model.ProductCost{}, fmt.Sprintf("expected at least %d columns, got %d", skuColActive+1, len(record))
	}

	code := strings.TrimSpace(record[skuColCode])
	if code == "" {
		return model.ProductCost{}, "empty SKU code"
	}

	cost, err := decimal.NewFromString(strings.TrimSpace(record[skuColCost]))
	if err != nil {
		return model.ProductCost{}, "invalid cost price: " + record[skuColCost]
	}
	price, err := decimal.NewFromString(strings.TrimSpace(record[skuColPrice]))
	if err != nil {
		return model.ProductCost{}, "invalid selling price: " + record[skuColPrice]
	}

	var effective sql.NullTime
	if raw := strings.TrimSpace(record[skuColEffectiveDate]); raw != "" {
		t, err := time.Parse(dateLayout, raw)
		if err != nil {
			return model.ProductCost{}, "invalid effective date: " + raw
		}
		effective = sql.NullTime{Valid: true, Time: t}
	}

	row := model.ProductCost{
		Code:          code,
		Name:          strings.TrimSpace(record[skuColName]),
		Brand:         strings.TrimSpace(record[skuColBrand]),
		Category:      strings.TrimSpace(record[skuColCategory]),
		CostPrice:     cost,
		SellingPrice:  price,
		EffectiveDate: effective,
		Barcode:       strings.TrimSpace(record[skuColBarcode]),
		Supplier:      strings.TrimSpace(record[skuColSupplier]),
		MinStock:      seeding.ParseCount(record[skuColMinStock]),
		CurrentStock:  seeding.ParseCount(record[skuColCurrentStock]),
		IsActive:      strings.TrimSpace(record[skuColActive]) == "Y",
	}
	if len(record) > skuColNotes {
		row.Notes = strings.TrimSpace(record[skuColNotes])
	}
	return row, ""
}
