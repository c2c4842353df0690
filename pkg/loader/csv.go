package loader

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
)

// loadCSV reads comma-separated input. The first record is the header.
// Records may have differing field counts.
func loadCSV(input string) (*Table, error) {
	r := csv.NewReader(strings.NewReader(input))
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true

	var t Table
	for {
		rec, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("invalid CSV: %w", err)
		}
		if t.Header == nil {
			t.Header = rec
			continue
		}
		t.Rows = append(t.Rows, rec)
	}
	if t.Header == nil {
		return nil, fmt.Errorf("no data found in input")
	}
	return &t, nil
}

// isLikelyCSV heuristic: at least two lines that all split into the same
// number (more than one) of fields, and a first line that does not read like
// a YAML mapping.
func isLikelyCSV(lines []string) bool {
	nonEmpty := make([]string, 0, len(lines))
	for _, line := range lines {
		if strings.TrimSpace(line) != "" {
			nonEmpty = append(nonEmpty, line)
		}
	}
	if len(nonEmpty) < 2 || strings.Contains(nonEmpty[0], ": ") || strings.HasPrefix(strings.TrimSpace(nonEmpty[0]), "- ") {
		return false
	}

	r := csv.NewReader(strings.NewReader(strings.Join(nonEmpty, "\n")))
	r.FieldsPerRecord = 0
	records, err := r.ReadAll()
	if err != nil || len(records) < 2 {
		return false
	}
	return len(records[0]) > 1
}
