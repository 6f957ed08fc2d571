package main

import "go.uber.org/zap"

// Summary describes a finished conversion.
type Summary struct {
	InputPath  string
	OutputPath string
	Records    int
	Width      int // longest entropy sequence
	Columns    []string
	Rows       []Row
}

// Convert reads cfg.InputPath, flattens every record into the column
// schema and writes the result to cfg.OutputPath.
func Convert(cfg Config, logger *zap.Logger) (*Summary, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	// Pass 1: parse and measure
	records, width, err := ReadRecords(cfg.InputPath, logger)
	if err != nil {
		return nil, err
	}

	// Pass 2: build the schema and rows, then write
	columns := Columns(width)
	rows := Flatten(records, width)
	if err := WriteCSV(cfg.OutputPath, columns, rows, logger); err != nil {
		return nil, err
	}

	logger.Info("conversion complete",
		zap.String("input", cfg.InputPath),
		zap.String("output", cfg.OutputPath),
		zap.Int("records", len(records)),
		zap.Int("entropy_width", width),
	)

	return &Summary{
		InputPath:  cfg.InputPath,
		OutputPath: cfg.OutputPath,
		Records:    len(records),
		Width:      width,
		Columns:    columns,
		Rows:       rows,
	}, nil
}
