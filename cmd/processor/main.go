package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/formulatehq/format-processor/internal/config"
	"github.com/formulatehq/format-processor/internal/csv"
	jsonproc "github.com/formulatehq/format-processor/internal/json"
	"github.com/formulatehq/format-processor/internal/processor"
	"github.com/rs/zerolog"
	"golang.org/x/xerrors"
)

func main() {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	if err := run(&logger, os.Stdout); err != nil {
		logger.Fatal().Err(err).Msg("Failed to run app")
	}
}

func run(logger *zerolog.Logger, out io.Writer) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return xerrors.Errorf("failed to load config: %w", err)
	}

	log := logger.Level(cfg.Level())

	dir, err := cfg.ResolveDataDir()
	if err != nil {
		return err
	}

	csvPath := cfg.CSVPath(dir)
	jsonPath := cfg.JSONPath(dir)

	fmt.Fprintf(out, "Script location: %s\n", dir)
	fmt.Fprintf(out, "Looking for CSV file at: %s\n", csvPath)
	fmt.Fprintf(out, "Looking for JSON file at: %s\n", jsonPath)

	pipeline := processor.NewPipeline(&log)

	rows, err := pipeline.Run(csv.NewProcessor(), csvPath)
	if err != nil {
		return err
	}
	if err := printResult(out, "Processed CSV Data", rows); err != nil {
		return err
	}

	doc, err := pipeline.Run(jsonproc.NewProcessor(), jsonPath)
	if err != nil {
		return err
	}
	if err := printResult(out, "Processed JSON Data", doc); err != nil {
		return err
	}

	log.Info().Str("csv", csvPath).Str("json", jsonPath).Msg("Processed data files")

	return nil
}

func printResult(out io.Writer, label string, result any) error {
	b, err := json.Marshal(result)
	if err != nil {
		return xerrors.Errorf("failed to render %s: %w", label, err)
	}

	_, err = fmt.Fprintf(out, "%s: %s\n", label, b)
	return err
}
