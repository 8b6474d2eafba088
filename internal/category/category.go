// Package category extracts consignor identity and commission rate from the
// free-text Category column of a Square POS export.
//
// Gallery staff encode the split as a trailing parenthetical percentage, e.g.
// "Jane Doe (25)". Categories without one fall back to the configured default
// rate. "None" and blank categories carry no artist at all.
package category

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// commissionRe matches a trailing "(NN)" percentage, tolerating whitespace
// after it.
var commissionRe = regexp.MustCompile(`\((\d+)\)\s*$`)

var hundred = decimal.NewFromInt(100)

// Parse returns the artist name and commission rate encoded in a category
// label. A blank category or the literal "none" (any case) returns ("", 0),
// the no-artist sentinel. A leading "#" on the name portion is stripped; some
// gallery categories use it as a marker prefix.
//
// Parse never fails: a category with a rate but no name returns an empty
// name, which the aggregator routes to the skipped bucket.
func Parse(label string, defaultRate decimal.Decimal) (string, decimal.Decimal) {
	trimmed := strings.TrimSpace(label)
	if trimmed == "" || strings.EqualFold(trimmed, "none") {
		return "", decimal.Zero
	}

	rate := defaultRate
	name := trimmed
	if m := commissionRe.FindStringSubmatchIndex(label); m != nil {
		pct, _ := strconv.ParseInt(label[m[2]:m[3]], 10, 64)
		rate = decimal.NewFromInt(pct).Div(hundred)
		name = strings.TrimSpace(label[:m[0]])
	}

	name = strings.TrimSpace(strings.TrimLeft(name, "#"))
	return name, rate
}
