package main

import "strconv"

// Row is one flattened record, one cell per schema column.
type Row []string

// Columns builds the output header for an entropy width of m.
func Columns(m int) []string {
	if m < 0 {
		m = 0
	}
	cols := make([]string, 0, 2+m)
	cols = append(cols, keyRun, keyType)
	for i := 0; i < m; i++ {
		cols = append(cols, entropyColumn(i))
	}
	return cols
}

func entropyColumn(i int) string {
	return keyEntropy + "_" + strconv.Itoa(i)
}

// Flatten turns records into rows of exactly len(Columns(m)) cells.
// Entropy sequences shorter than m are padded with empty cells; elements
// beyond m are dropped.
func Flatten(records []Record, m int) []Row {
	if m < 0 {
		m = 0
	}
	rows := make([]Row, 0, len(records))
	for _, rec := range records {
		row := make(Row, 2+m)
		row[0] = rec.Run()
		row[1] = rec.Type()

		entropy := rec.Entropy()
		for i := 0; i < m; i++ {
			if i < len(entropy) {
				row[2+i] = formatCell(entropy[i])
			}
		}
		rows = append(rows, row)
	}
	return rows
}

// Map returns the row keyed by column name.
func (r Row) Map(columns []string) map[string]string {
	m := make(map[string]string, len(columns))
	for i, col := range columns {
		if i < len(r) {
			m[col] = r[i]
		} else {
			m[col] = ""
		}
	}
	return m
}
