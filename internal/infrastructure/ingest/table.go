package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// RawTable is a parsed delimited file: trimmed headers plus data rows.
// Column access is by normalized (lowercased, trimmed) header name.
type RawTable struct {
	Headers []string
	Rows    [][]string

	index map[string]int
}

// ReadTable parses CSV content into a RawTable. Rows shorter than the
// header are padded so column lookups never go out of range.
func ReadTable(r io.Reader) (*RawTable, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading csv: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("empty file")
	}

	headers := make([]string, len(records[0]))
	index := make(map[string]int, len(records[0]))
	for i, h := range records[0] {
		headers[i] = strings.TrimSpace(h)
		index[strings.ToLower(headers[i])] = i
	}

	rows := make([][]string, 0, len(records)-1)
	for _, record := range records[1:] {
		if len(record) < len(headers) {
			padded := make([]string, len(headers))
			copy(padded, record)
			record = padded
		}
		rows = append(rows, record)
	}

	return &RawTable{Headers: headers, Rows: rows, index: index}, nil
}

// Cell returns the trimmed value of a row under the first matching column
// alias, or "" when none of the aliases exist.
func (t *RawTable) Cell(row []string, aliases ...string) string {
	for _, alias := range aliases {
		if i, ok := t.index[alias]; ok && i < len(row) {
			return strings.TrimSpace(row[i])
		}
	}
	return ""
}

// NumericCell parses a cell as a float, tolerating currency symbols and
// thousands separators.
func (t *RawTable) NumericCell(row []string, aliases ...string) (float64, error) {
	raw := t.Cell(row, aliases...)
	if raw == "" {
		return 0, fmt.Errorf("empty value")
	}
	cleaned := strings.NewReplacer("£", "", "$", "", ",", "", " ", "").Replace(raw)
	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, fmt.Errorf("not a number: %q", raw)
	}
	return v, nil
}
