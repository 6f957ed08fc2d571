package main

import (
	"encoding/csv"
	"fmt"
	"os"

	"go.uber.org/zap"
)

// WriteCSV writes the header and rows to path, replacing any existing file.
// On failure the file may be left partially written.
func WriteCSV(path string, columns []string, rows []Row, logger *zap.Logger) (err error) {
	file, err := os.Create(path)
	if err != nil {
		return newIOError(path, err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = newIOError(path, cerr)
		}
	}()

	writer := csv.NewWriter(file)
	writer.UseCRLF = true

	if err := writer.Write(columns); err != nil {
		return newIOError(path, fmt.Errorf("write header: %w", err))
	}
	for i, row := range rows {
		if len(row) != len(columns) {
			return newInvalidError(path, 0, fmt.Errorf("row %d has %d cells, want %d", i+1, len(row), len(columns)))
		}
		if err := writer.Write(row); err != nil {
			return newIOError(path, fmt.Errorf("write row %d: %w", i+1, err))
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return newIOError(path, err)
	}

	logger.Debug("wrote csv",
		zap.String("path", path),
		zap.Int("columns", len(columns)),
		zap.Int("rows", len(rows)),
	)
	return nil
}
