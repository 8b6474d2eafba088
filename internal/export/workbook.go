// Package export renders aggregated commission reports into per-artist
// workbooks and bundles them, with summary and skipped-row listings, into a
// single ZIP archive.
package export

import (
	"fmt"
	"strconv"

	"github.com/xuri/excelize/v2"

	"github.com/consign-dev/consign/internal/model"
)

const sheetName = "Sales"

// ArtistWorkbook renders one artist's sales and commission summary as an
// xlsx workbook.
func ArtistWorkbook(r *model.ArtistReport) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, fmt.Errorf("naming sheet: %w", err)
	}

	setCell := func(col, row int, value any) {
		cell, _ := excelize.CoordinatesToCellName(col, row)
		_ = f.SetCellValue(sheetName, cell, value)
	}

	// Title block.
	setCell(1, 1, r.Name)
	setCell(1, 2, "Commission Rate: "+FormatRate(r.CommissionRate))

	// Sales table.
	const tableTop = 4
	setCell(1, tableTop, "Date")
	setCell(2, tableTop, "Item")
	setCell(3, tableTop, "Qty")
	setCell(4, tableTop, "Net Sales")

	row := tableTop
	for _, sale := range r.Sales {
		row++
		setCell(1, row, sale.Date)
		setCell(2, row, sale.Item)
		setCell(3, row, strconv.Itoa(sale.Qty))
		setCell(4, row, FormatMoney(sale.NetSales))
	}

	row++
	setCell(2, row, "TOTAL")
	setCell(4, row, FormatMoney(r.TotalNetSales()))

	if err := styleWorkbook(f, tableTop, row); err != nil {
		return nil, err
	}

	// Commission summary.
	row += 2
	setCell(1, row, "Total Net Sales: "+FormatMoney(r.TotalNetSales()))
	setCell(1, row+1, fmt.Sprintf("Gallery Commission (%s): %s", FormatRate(r.CommissionRate), FormatMoney(r.GalleryCommission())))
	setCell(1, row+2, "Artist Payout: "+FormatMoney(r.ArtistPayout()))

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("writing workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func styleWorkbook(f *excelize.File, tableTop, totalRow int) error {
	title, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true, Size: 16}})
	if err != nil {
		return fmt.Errorf("creating title style: %w", err)
	}
	_ = f.SetCellStyle(sheetName, "A1", "A1", title)

	header, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"2C3E50"}},
	})
	if err != nil {
		return fmt.Errorf("creating header style: %w", err)
	}
	top, _ := excelize.CoordinatesToCellName(1, tableTop)
	end, _ := excelize.CoordinatesToCellName(4, tableTop)
	_ = f.SetCellStyle(sheetName, top, end, header)

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("creating total style: %w", err)
	}
	totalStart, _ := excelize.CoordinatesToCellName(1, totalRow)
	totalEnd, _ := excelize.CoordinatesToCellName(4, totalRow)
	_ = f.SetCellStyle(sheetName, totalStart, totalEnd, bold)

	_ = f.SetColWidth(sheetName, "A", "A", 14)
	_ = f.SetColWidth(sheetName, "B", "B", 42)
	_ = f.SetColWidth(sheetName, "C", "C", 8)
	_ = f.SetColWidth(sheetName, "D", "D", 14)
	return nil
}
