package sheet

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

// ParseRows decodes a header-driven CSV table into rows addressed by
// column name. Ragged lines are tolerated (missing cells read as ""),
// fully empty lines are skipped, and every value is trimmed.
func ParseRows(r io.Reader) ([]Row, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("sheet is empty")
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	for i := range header {
		header[i] = strings.TrimSpace(strings.ToLower(header[i]))
	}

	var rows []Row
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read record: %w", err)
		}

		row := Row{}
		empty := true
		for i, col := range header {
			if col == "" {
				continue
			}
			var value string
			if i < len(record) {
				value = strings.TrimSpace(record[i])
			}
			if value != "" {
				empty = false
			}
			row[col] = value
		}

		if empty {
			continue
		}
		rows = append(rows, row)
	}

	return rows, nil
}
