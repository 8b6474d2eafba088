package model

import "github.com/shopspring/decimal"

// RawRow is one data row from a Square POS export, required fields only,
// values exactly as they appeared in the CSV. Extra columns are dropped at
// ingestion.
type RawRow struct {
	Date     string
	Item     string
	Qty      string
	NetSales string
	Category string
}

// SaleRecord is one line item attributed to an artist. Dates are kept as
// opaque strings; the exports use ISO-style dates so lexical order matches
// chronological order.
type SaleRecord struct {
	Date     string
	Item     string
	Qty      int
	NetSales decimal.Decimal // negative for returns and voids
}
