// Package normalize coerces the loosely formatted currency and quantity text
// found in Square POS exports into numeric values.
//
// Malformed input degrades to zero instead of erroring. POS exports are
// inconsistently formatted and a single bad cell must not abort a whole
// report run.
package normalize

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Dollar parses a dollar string like "$25.00", "-$2.00", or "1,250.50" into
// a decimal. Empty or non-numeric input returns zero.
func Dollar(text string) decimal.Decimal {
	cleaned := strings.ReplaceAll(text, "$", "")
	cleaned = strings.ReplaceAll(cleaned, ",", "")
	cleaned = strings.TrimSpace(cleaned)
	if cleaned == "" {
		return decimal.Zero
	}

	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// Quantity parses a quantity cell, accepting float renderings like "3.0" and
// truncating toward zero. Empty, unparseable, or negative input returns 0.
func Quantity(text string) int {
	cleaned := strings.TrimSpace(text)
	if cleaned == "" {
		return 0
	}

	f, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0
	}

	qty := int(f)
	if qty < 0 {
		return 0
	}
	return qty
}
