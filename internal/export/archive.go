package export

import (
	"archive/zip"
	"bytes"
	"encoding/csv"
	"fmt"

	"github.com/consign-dev/consign/internal/report"
)

// ArchiveDir is the folder inside the ZIP that holds every artifact.
const ArchiveDir = "commission_reports"

// SummaryHeader is the column order of summary.csv and the on-screen table.
var SummaryHeader = []string{"Artist", "Commission Rate", "Total Net Sales", "Gallery Commission", "Artist Payout"}

// skippedHeader is the column order of skipped_rows.csv.
var skippedHeader = []string{"Date", "Item", "Net Sales"}

// SummaryRecords returns one formatted row per artist in ascending name
// order, matching SummaryHeader.
func SummaryRecords(res *report.Result) [][]string {
	records := make([][]string, 0, len(res.Artists))
	for _, r := range res.Reports() {
		records = append(records, []string{
			r.Name,
			FormatRate(r.CommissionRate),
			FormatMoney(r.TotalNetSales()),
			FormatMoney(r.GalleryCommission()),
			FormatMoney(r.ArtistPayout()),
		})
	}
	return records
}

// SkippedRecords returns the unattributed rows formatted for follow-up,
// matching skippedHeader.
func SkippedRecords(res *report.Result) [][]string {
	records := make([][]string, 0, len(res.Skipped))
	for _, row := range res.Skipped {
		records = append(records, []string{row.Date, row.Item, row.NetSales})
	}
	return records
}

// BuildArchive bundles one workbook per artist, in ascending name order,
// under ArchiveDir, along with summary.csv and (when any rows were skipped)
// skipped_rows.csv.
func BuildArchive(res *report.Result) ([]byte, error) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	for _, r := range res.Reports() {
		wb, err := ArtistWorkbook(r)
		if err != nil {
			return nil, fmt.Errorf("rendering report for %s: %w", r.Name, err)
		}

		name := fmt.Sprintf("%s/%s.xlsx", ArchiveDir, SanitizeFilename(r.Name))
		w, err := zw.Create(name)
		if err != nil {
			return nil, fmt.Errorf("creating archive entry %s: %w", name, err)
		}
		if _, err := w.Write(wb); err != nil {
			return nil, fmt.Errorf("writing archive entry %s: %w", name, err)
		}
	}

	if err := writeCSVEntry(zw, ArchiveDir+"/summary.csv", SummaryHeader, SummaryRecords(res)); err != nil {
		return nil, err
	}

	if len(res.Skipped) > 0 {
		if err := writeCSVEntry(zw, ArchiveDir+"/skipped_rows.csv", skippedHeader, SkippedRecords(res)); err != nil {
			return nil, err
		}
	}

	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("closing archive: %w", err)
	}
	return buf.Bytes(), nil
}

func writeCSVEntry(zw *zip.Writer, name string, header []string, records [][]string) error {
	w, err := zw.Create(name)
	if err != nil {
		return fmt.Errorf("creating archive entry %s: %w", name, err)
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("writing %s header: %w", name, err)
	}
	for i, rec := range records {
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("writing %s row %d: %w", name, i+2, err)
		}
	}
	cw.Flush()
	return cw.Error()
}
