// Command cleaner runs the student performance cleaning pipeline:
// student_performance.csv in, student_performance_cleaned.csv out, with
// diagnostic reporting along the way. It is a one-shot batch job with no
// flags; any failure aborts the run without writing partial output.
package main

import (
	"context"
	"log/slog"
	"os"

	"studentperf/internal/cleaning"
	"studentperf/internal/config"
	"studentperf/internal/dataset"
	"studentperf/internal/exporter"
	"studentperf/internal/infrastructure"
	"studentperf/internal/profile"
	"studentperf/internal/validation"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	infrastructure.InitializeLogger(cfg.Logging)
	ctx := infrastructure.ContextWithRunID(context.Background())
	logger := infrastructure.LoggerWithContext(ctx)

	logger.InfoContext(ctx, "starting cleaning run",
		slog.String("input", config.InputFile),
		slog.String("output", config.OutputFile))

	table, err := dataset.Load(config.InputFile)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to load input dataset", "error", err)
		os.Exit(1)
	}

	profile.Describe(table).Log(ctx, logger, "before")

	cleaned, err := cleaning.NewPipeline().Run(ctx, table, cleaning.NewLogObserver(logger))
	if err != nil {
		logger.ErrorContext(ctx, "Cleaning pipeline failed", "error", err)
		os.Exit(1)
	}

	if err := validation.NewRecordValidator(logger).ValidateTable(cleaned); err != nil {
		logger.ErrorContext(ctx, "Cleaned table failed final verification", "error", err)
		os.Exit(1)
	}

	profile.Describe(cleaned).Log(ctx, logger, "after")

	writer := exporter.NewWriter(logger, cfg.Export)
	if err := writer.Save(config.OutputFile, cleaned); err != nil {
		logger.ErrorContext(ctx, "Failed to save cleaned dataset", "error", err)
		os.Exit(1)
	}

	rowsIn, _ := table.Shape()
	rowsOut, _ := cleaned.Shape()
	logger.InfoContext(ctx, "cleaning run complete",
		slog.Int("rows_in", rowsIn),
		slog.Int("rows_out", rowsOut),
		slog.String("output", config.OutputFile))
}
