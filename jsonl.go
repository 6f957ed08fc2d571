package main

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"os"

	"go.uber.org/zap"
)

// ReadRecords reads a JSONL file and returns its records in input order
// along with the longest entropy sequence seen across all of them.
// The first malformed line aborts the read. Lines have no length limit.
func ReadRecords(path string, logger *zap.Logger) ([]Record, int, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, 0, newIOError(path, err)
	}
	defer file.Close()

	logger.Debug("reading records", zap.String("path", path))

	var records []Record
	maxLen := 0
	reader := bufio.NewReaderSize(file, 64*1024)

	lineNum := 0
	for {
		line, readErr := reader.ReadBytes('\n')
		if readErr != nil && !errors.Is(readErr, io.EOF) {
			return nil, 0, newIOError(path, readErr)
		}
		if len(line) == 0 && readErr != nil {
			break
		}
		lineNum++

		if len(bytes.TrimSpace(line)) > 0 {
			record, err := decodeRecord(line)
			if err != nil {
				return nil, 0, newParseError(path, lineNum, err)
			}
			if err := record.normalizeEntropy(); err != nil {
				return nil, 0, newInvalidError(path, lineNum, err)
			}
			if n := len(record.Entropy()); n > maxLen {
				maxLen = n
			}
			records = append(records, record)
		}

		if readErr != nil {
			break
		}
	}

	logger.Debug("read records",
		zap.String("path", path),
		zap.Int("records", len(records)),
		zap.Int("max_entropy_len", maxLen),
	)

	return records, maxLen, nil
}
