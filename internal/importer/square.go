package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/consign-dev/consign/internal/model"
)

// Required column names in a Square POS sales export, exact case.
const (
	colCategory = "Category"
	colNetSales = "Net Sales"
	colItem     = "Item"
	colQty      = "Qty"
	colDate     = "Date"
)

var requiredColumns = []string{colCategory, colNetSales, colItem, colQty, colDate}

// SchemaError reports required columns missing from an export's header row.
// It aborts the run before any row is processed.
type SchemaError struct {
	Missing []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("CSV is missing required columns: %s", strings.Join(e.Missing, ", "))
}

// SquareParser parses Square POS sales summary CSV exports.
//
// The export is header-driven: columns are located by name, unknown columns
// are ignored, and column order does not matter. Field values pass through
// untouched; coercion of money and quantity text happens downstream.
type SquareParser struct{}

// Format returns the parser name.
func (p *SquareParser) Format() string { return "square" }

// Parse reads a Square CSV and returns its raw rows. A missing required
// column returns a *SchemaError with the missing names sorted; no rows are
// returned alongside it.
func (p *SquareParser) Parse(r io.Reader) ([]model.RawRow, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // exports vary; short rows read as empty fields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading square CSV: %w", err)
	}

	if len(records) == 0 {
		return nil, nil
	}

	index, err := mapHeader(records[0])
	if err != nil {
		return nil, err
	}

	rows := make([]model.RawRow, 0, len(records)-1)
	for _, rec := range records[1:] {
		rows = append(rows, model.RawRow{
			Date:     field(rec, index[colDate]),
			Item:     field(rec, index[colItem]),
			Qty:      field(rec, index[colQty]),
			NetSales: field(rec, index[colNetSales]),
			Category: field(rec, index[colCategory]),
		})
	}
	return rows, nil
}

// mapHeader locates each required column in the header row.
func mapHeader(header []string) (map[string]int, error) {
	index := make(map[string]int, len(requiredColumns))
	for i, name := range header {
		index[name] = i
	}

	var missing []string
	for _, name := range requiredColumns {
		if _, ok := index[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return nil, &SchemaError{Missing: missing}
	}
	return index, nil
}

// field returns rec[i], or "" when the row is shorter than the header.
func field(rec []string, i int) string {
	if i >= len(rec) {
		return ""
	}
	return rec[i]
}
