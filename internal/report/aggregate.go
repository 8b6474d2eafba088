// Package report groups raw POS rows by consignor artist and derives the
// per-artist commission reports.
package report

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/consign-dev/consign/internal/category"
	"github.com/consign-dev/consign/internal/model"
	"github.com/consign-dev/consign/internal/normalize"
)

// Result holds one run's aggregated reports plus the rows that could not be
// attributed to any artist. Built once per run, read-only afterwards.
type Result struct {
	Artists map[string]*model.ArtistReport
	Skipped []model.RawRow
}

// Aggregate groups rows by artist in input order. Rows whose category yields
// no artist name go to Skipped. An artist's commission rate is fixed by the
// first row seen for that artist; later rows never override it. After
// accumulation each artist's sales are stably sorted ascending by date
// string, so ties keep input order.
//
// Aggregate never fails: malformed money and quantity text degrades to zero
// via the normalize package.
func Aggregate(rows []model.RawRow, defaultRate decimal.Decimal) *Result {
	res := &Result{Artists: make(map[string]*model.ArtistReport)}

	for _, row := range rows {
		name, rate := category.Parse(row.Category, defaultRate)
		if name == "" {
			res.Skipped = append(res.Skipped, row)
			continue
		}

		rep, ok := res.Artists[name]
		if !ok {
			rep = &model.ArtistReport{Name: name, CommissionRate: rate}
			res.Artists[name] = rep
		}

		rep.Sales = append(rep.Sales, model.SaleRecord{
			Date:     row.Date,
			Item:     row.Item,
			Qty:      normalize.Quantity(row.Qty),
			NetSales: normalize.Dollar(row.NetSales),
		})
	}

	for _, rep := range res.Artists {
		sort.SliceStable(rep.Sales, func(i, j int) bool {
			return rep.Sales[i].Date < rep.Sales[j].Date
		})
	}

	return res
}

// Names returns the artist names in ascending order.
func (r *Result) Names() []string {
	names := make([]string, 0, len(r.Artists))
	for name := range r.Artists {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Reports returns the artist reports in ascending name order.
func (r *Result) Reports() []*model.ArtistReport {
	reports := make([]*model.ArtistReport, 0, len(r.Artists))
	for _, name := range r.Names() {
		reports = append(reports, r.Artists[name])
	}
	return reports
}

// Empty reports whether the run saw no data rows at all, attributed or not.
func (r *Result) Empty() bool {
	return len(r.Artists) == 0 && len(r.Skipped) == 0
}
