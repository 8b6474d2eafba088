package model

import "github.com/shopspring/decimal"

// ArtistReport holds all sales attributed to one consignor artist plus the
// commission rate parsed from the first row seen for that artist.
//
// The three money totals are derived on every call rather than cached, so
// they can never drift from the underlying sales. Rounding is to 2 decimal
// places, half away from zero. Payout is computed as total minus commission,
// so TotalNetSales == GalleryCommission + ArtistPayout exactly.
type ArtistReport struct {
	Name           string
	CommissionRate decimal.Decimal // 0.20 means 20%
	Sales          []SaleRecord
}

// TotalNetSales returns the sum of net sales over all records, rounded to
// 2 decimal places.
func (r *ArtistReport) TotalNetSales() decimal.Decimal {
	total := decimal.Zero
	for _, s := range r.Sales {
		total = total.Add(s.NetSales)
	}
	return total.Round(2)
}

// GalleryCommission returns the gallery's cut of the total net sales.
func (r *ArtistReport) GalleryCommission() decimal.Decimal {
	return r.TotalNetSales().Mul(r.CommissionRate).Round(2)
}

// ArtistPayout returns what the artist is owed after commission.
func (r *ArtistReport) ArtistPayout() decimal.Decimal {
	return r.TotalNetSales().Sub(r.GalleryCommission())
}
