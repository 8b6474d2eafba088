package commands

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/consign-dev/consign/internal/config"
	"github.com/consign-dev/consign/internal/export"
	"github.com/consign-dev/consign/internal/importer"
	"github.com/consign-dev/consign/internal/report"
)

func newProcessCommand() *cobra.Command {
	var outPath string
	var configPath string

	cmd := &cobra.Command{
		Use:   "process <export.csv | directory>",
		Short: "Generate per-artist commission reports from a POS export",
		Long: `Process reads a Square POS sales export, groups line items by consignor
artist, and writes one workbook per artist into a ZIP archive alongside a
summary listing. Rows with no artist category are reported for follow-up.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			return runProcess(cmd.OutOrStdout(), cfg, args[0], outPath)
		},
	}

	cmd.Flags().StringVar(&outPath, "out", "", "archive path (defaults to the configured archive name)")
	cmd.Flags().StringVar(&configPath, "config", "consign.yaml", "path to consign.yaml")

	return cmd
}

func runProcess(out io.Writer, cfg *config.Config, input, outPath string) error {
	parser := importer.DefaultRegistry().Get(cfg.Export.Format)
	if parser == nil {
		return fmt.Errorf("unknown export format %q", cfg.Export.Format)
	}

	logger := slog.With(slog.String("run_id", uuid.NewString()))

	info, err := os.Stat(input)
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	if !info.IsDir() {
		if outPath == "" {
			outPath = cfg.Export.ArchiveName
		}
		return processFile(out, logger, parser, cfg, input, outPath)
	}

	// Directory mode: one archive per export, named after the input file.
	files, err := importer.Scan(input)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		fmt.Fprintf(out, "No CSV exports found in %s.\n", input)
		return nil
	}
	if outPath != "" {
		return fmt.Errorf("--out cannot be used with a directory input")
	}

	for _, f := range files {
		archive := archiveNameFor(f.Path)
		if err := processFile(out, logger, parser, cfg, f.Path, archive); err != nil {
			return fmt.Errorf("%s: %w", f.Name, err)
		}
	}
	return nil
}

func processFile(out io.Writer, logger *slog.Logger, parser importer.Parser, cfg *config.Config, path, outPath string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading export: %w", err)
	}

	rows, err := parser.Parse(strings.NewReader(importer.DecodeText(raw)))
	if err != nil {
		return err
	}

	logger.Info("processing export",
		slog.String("file", path),
		slog.String("format", parser.Format()),
		slog.Int("rows", len(rows)))

	res := report.Aggregate(rows, cfg.DefaultRate())

	if res.Empty() {
		fmt.Fprintln(out, "No data found in the export.")
		return nil
	}

	if len(res.Skipped) > 0 {
		fmt.Fprintf(out, "Warning: %d row(s) with no artist category, excluded from reports:\n", len(res.Skipped))
		printTable(out, []string{"Date", "Item", "Net Sales"}, export.SkippedRecords(res))
		fmt.Fprintln(out)
	}

	if len(res.Artists) == 0 {
		logger.Warn("no attributable rows in export", slog.String("file", path))
		return nil
	}

	fmt.Fprintln(out, "Commission Summary")
	printTable(out, export.SummaryHeader, export.SummaryRecords(res))

	archive, err := export.BuildArchive(res)
	if err != nil {
		return err
	}
	if err := os.WriteFile(outPath, archive, 0o644); err != nil {
		return fmt.Errorf("writing archive: %w", err)
	}

	logger.Info("wrote archive",
		slog.String("archive", outPath),
		slog.Int("artists", len(res.Artists)),
		slog.Int("skipped_rows", len(res.Skipped)))

	fmt.Fprintf(out, "\nWrote %d report(s) to %s\n", len(res.Artists), outPath)
	return nil
}

// loadConfig loads consign.yaml, falling back to defaults when the file is
// absent so process works without an initialized workspace. A config that
// exists but fails to parse is still an error. Fields a partial config leaves
// unset take the default values.
func loadConfig(path string) (*config.Config, error) {
	cfg, err := config.Load(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return config.Default(""), nil
		}
		return nil, err
	}

	defaults := config.Default(cfg.Gallery.Name)
	if cfg.Commission.DefaultRatePercent == 0 {
		cfg.Commission.DefaultRatePercent = defaults.Commission.DefaultRatePercent
	}
	if cfg.Export.ArchiveName == "" {
		cfg.Export.ArchiveName = defaults.Export.ArchiveName
	}
	if cfg.Export.Format == "" {
		cfg.Export.Format = defaults.Export.Format
	}
	return cfg, nil
}

// archiveNameFor maps import/january.csv to import/january_commission_reports.zip.
func archiveNameFor(csvPath string) string {
	base := strings.TrimSuffix(csvPath, filepath.Ext(csvPath))
	return base + "_commission_reports.zip"
}

func printTable(out io.Writer, header []string, records [][]string) {
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(header, "\t"))
	for _, rec := range records {
		fmt.Fprintln(tw, strings.Join(rec, "\t"))
	}
	_ = tw.Flush()
}
