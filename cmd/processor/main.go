// Command processor transforms the monthly extract files from the Office
// of Research into the per-market tables and chart JSON consumed by the
// Consumer Credit Trends front end. It runs once per invocation over a
// batch of files and exits; a failure in one file never aborts the batch.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/cfpb/consumer-credit-trends-data/internal/config"
	"github.com/cfpb/consumer-credit-trends-data/internal/dataprocessing"
	"github.com/cfpb/consumer-credit-trends-data/internal/errors"
	"github.com/cfpb/consumer-credit-trends-data/internal/exporter"
	"github.com/cfpb/consumer-credit-trends-data/internal/files"
	"github.com/cfpb/consumer-credit-trends-data/internal/infrastructure"
	"github.com/cfpb/consumer-credit-trends-data/internal/validation"
	"github.com/cfpb/consumer-credit-trends-data/pkg/contracts/domain"
)

func main() {
	inDir := flag.String("in", "", "input directory containing extract files (default: config paths.input_dir)")
	outDir := flag.String("out", "", "output root for processed data (default: config paths.output_dir)")
	snapshotPath := flag.String("snapshot", "", "output path for the data snapshot digest JSON; empty disables that artifact")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		slog.Warn("failed to load config, using defaults", "error", err)
		cfg = config.Default()
	}

	// Flags override config.
	if *inDir == "" {
		*inDir = cfg.Paths.InputDir
	}
	if *outDir == "" {
		*outDir = cfg.Paths.OutputDir
	}
	if *snapshotPath == "" {
		*snapshotPath = cfg.Paths.SnapshotPath
	}

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		slog.Warn("failed to initialize logger, using default", "error", err)
		logger = slog.Default()
	}
	defer infrastructure.CloseLogFile()

	ctx := infrastructure.WithRunID(context.Background(), uuid.NewString())

	inPath, err := files.ExpandPath(*inDir)
	if err != nil {
		logger.ErrorContext(ctx, "failed to resolve input path", slog.String("error", err.Error()))
		os.Exit(1)
	}
	outPath, err := files.ExpandPath(*outDir)
	if err != nil {
		logger.ErrorContext(ctx, "failed to resolve output path", slog.String("error", err.Error()))
		os.Exit(1)
	}

	validator := validation.NewFileValidator(logger)
	if err := validator.ValidateInputDirectory(inPath, "*.csv"); err != nil {
		logger.ErrorContext(ctx, "input directory validation failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if err := validator.ValidateOutputDirectory(outPath); err != nil {
		logger.ErrorContext(ctx, "output directory validation failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.InfoContext(ctx, "starting consumer credit trends processing",
		slog.String("input_dir", inPath),
		slog.String("output_dir", outPath),
		slog.Bool("snapshot_enabled", *snapshotPath != ""))

	successes, failures := run(ctx, logger, inPath, outPath, *snapshotPath)

	logger.InfoContext(ctx, "processed input data files",
		slog.Int("successes", successes))
	if failures > 0 {
		logger.WarnContext(ctx, "unable to process some input data files",
			slog.Int("failures", failures))
	}
}

// run processes every extract file under inPath and returns the batch tally.
// Failures are counted per file; the loop never aborts early.
func run(ctx context.Context, logger *slog.Logger, inPath, outPath, snapshotPath string) (successes, failures int) {
	discovery := files.NewDiscovery(inPath)
	inputFiles, err := discovery.FindExtractFiles(".")
	if err != nil {
		logger.ErrorContext(ctx, "failed to list input directory", slog.String("error", err.Error()))
		return 0, 0
	}

	logger.InfoContext(ctx, "discovered extract files",
		slog.Int("count", len(inputFiles)),
		slog.String("input_dir", inPath))
	if len(inputFiles) == 0 {
		logger.WarnContext(ctx, "no extract files found in input directory",
			slog.String("input_dir", inPath))
		return 0, 0
	}

	csvWriter := exporter.NewCSVWriter(outPath)
	jsonWriter := exporter.NewJSONWriter(outPath)

	for _, file := range inputFiles {
		market := dataprocessing.FindMarket(file.Name)

		if market == "" {
			if strings.Contains(file.Name, dataprocessing.SnapshotFilenameKey) {
				if snapshotPath == "" {
					logger.WarnContext(ctx, "data snapshot output path is not specified; skipping snapshot file",
						slog.String("filename", file.Name))
					continue
				}
				if err := processSnapshotFile(ctx, jsonWriter, file.Path, snapshotPath); err != nil {
					logger.ErrorContext(ctx, "failed to process data snapshot",
						slog.String("filename", file.Name),
						slog.String("error", err.Error()))
					failures++
					continue
				}
				logger.InfoContext(ctx, "saved data snapshot digest",
					slog.String("path", snapshotPath))
				successes++
				continue
			}

			logger.InfoContext(ctx, "ignoring file without a known market code",
				slog.String("filename", file.Name))
			failures++
			continue
		}

		result, err := dataprocessing.ProcessFile(file.Path)
		if err != nil {
			logger.ErrorContext(ctx, "failed to process extract file",
				slog.String("filename", file.Name),
				slog.String("error_type", string(errors.TypeOf(err))),
				slog.String("error", err.Error()))
			failures++
			continue
		}

		if len(result.Table) > 0 {
			target := filepath.Join(market, outputName(file.Name))
			if err := csvWriter.WriteTable(target, result.Table); err != nil {
				logger.ErrorContext(ctx, "failed to write output table",
					slog.String("filename", file.Name),
					slog.String("error", err.Error()))
				failures++
				continue
			}
			jsonTarget := strings.TrimSuffix(target, ".csv") + ".json"
			if err := jsonWriter.Write(jsonTarget, result.Chart); err != nil {
				logger.ErrorContext(ctx, "failed to write chart JSON",
					slog.String("filename", file.Name),
					slog.String("error", err.Error()))
				failures++
				continue
			}
			logger.DebugContext(ctx, "wrote output artifacts",
				slog.String("table", target),
				slog.String("chart", jsonTarget),
				slog.Int("row_count", len(result.Table)-1))
		} else {
			logger.InfoContext(ctx, "extract file produced no data rows",
				slog.String("filename", file.Name))
		}

		successes++
	}

	return successes, failures
}

// processSnapshotFile builds the cross-market digest from the data
// snapshot extract and writes it to snapshotPath.
func processSnapshotFile(ctx context.Context, jsonWriter *exporter.JSONWriter, inputPath, snapshotPath string) error {
	rows, err := dataprocessing.LoadRows(inputPath)
	if err != nil {
		return err
	}

	markets, err := dataprocessing.ProcessSnapshot(rows, filepath.Base(inputPath))
	if err != nil {
		return err
	}

	digest := domain.SnapshotDigest{
		DatePublished: time.Now().Format(dataprocessing.SnapshotDateLayout),
		RunID:         infrastructure.GetRunID(ctx),
		Markets:       markets,
	}

	target, err := files.ExpandPath(snapshotPath)
	if err != nil {
		return err
	}
	return jsonWriter.Write(target, digest)
}

// outputName converts an extract filename to its output table name;
// workbook deliveries re-emerge as .csv.
func outputName(name string) string {
	ext := filepath.Ext(name)
	if strings.EqualFold(ext, ".xlsx") {
		return strings.TrimSuffix(name, ext) + ".csv"
	}
	return name
}
