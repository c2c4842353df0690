package loader

import (
	"encoding/json"
	"fmt"
	"os"
	"slices"
	"sort"
	"strconv"
)

// Header names used when the input has no natural column names.
const (
	KeyColumn   = "KEY"
	ValueColumn = "VALUE"
)

// Table is loaded input flattened into a header and string rows.
type Table struct {
	Header []string
	Rows   [][]string
}

// Records returns one map per row keyed by header name.
func (t *Table) Records() []any {
	out := make([]any, 0, len(t.Rows))
	for _, row := range t.Rows {
		rec := make(map[string]any, len(t.Header))
		for i, name := range t.Header {
			if i < len(row) {
				rec[name] = row[i]
			} else {
				rec[name] = ""
			}
		}
		out = append(out, rec)
	}
	return out
}

// LoadTable parses input in the given format and flattens it into a Table.
// CSV keeps its own column order; other formats go through ToTable.
func LoadTable(input string, format Format) (*Table, error) {
	if format == "" || format == FormatAuto {
		format = DetectFormat(input)
	}
	if format == FormatCSV {
		if t, err := loadCSV(normalizeNewlines(input)); err == nil {
			return t, nil
		}
	}
	docs, err := Load(input, format)
	if err != nil {
		return nil, err
	}
	return ToTable(docs), nil
}

// LoadTableFile reads path and loads it with LoadTable. An auto format is
// narrowed by the file extension.
func LoadTableFile(path string, format Format) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if format == "" || format == FormatAuto {
		format = FormatFromPath(path)
	}
	return LoadTable(string(data), format)
}

// ToTable flattens parsed documents into rows.
//
//   - A list of objects becomes one row per object. Columns are the union of
//     keys in first-seen order, each object's keys visited sorted.
//   - A list of lists becomes one row per inner list with no header.
//   - A single object becomes KEY/VALUE rows sorted by key.
//   - Scalars become rows of a single VALUE column.
//
// A single document holding a list is unwrapped first. Nested values are
// rendered as compact JSON.
func ToTable(docs []any) *Table {
	items := docs
	if len(docs) == 1 {
		switch v := docs[0].(type) {
		case []any:
			items = v
		case map[string]any:
			return keyValueTable(v)
		}
	}

	t := &Table{}
	if allLists(items) {
		for _, item := range items {
			list := item.([]any)
			row := make([]string, len(list))
			for i, cell := range list {
				row[i] = Stringify(cell)
			}
			t.Rows = append(t.Rows, row)
		}
		return t
	}

	index := map[string]int{}
	hasScalars := false
	for _, item := range items {
		m, ok := item.(map[string]any)
		if !ok {
			hasScalars = true
			continue
		}
		for _, k := range sortedKeys(m) {
			if _, seen := index[k]; !seen {
				index[k] = len(t.Header)
				t.Header = append(t.Header, k)
			}
		}
	}
	valueCol := -1
	if hasScalars {
		if i, ok := index[ValueColumn]; ok {
			valueCol = i
		} else {
			valueCol = len(t.Header)
			t.Header = append(t.Header, ValueColumn)
		}
	}

	for _, item := range items {
		row := make([]string, len(t.Header))
		if m, ok := item.(map[string]any); ok {
			for k, v := range m {
				row[index[k]] = Stringify(v)
			}
		} else {
			row[valueCol] = Stringify(item)
		}
		t.Rows = append(t.Rows, row)
	}
	return t
}

func keyValueTable(m map[string]any) *Table {
	t := &Table{Header: []string{KeyColumn, ValueColumn}}
	for _, k := range sortedKeys(m) {
		t.Rows = append(t.Rows, []string{k, Stringify(m[k])})
	}
	return t
}

func allLists(items []any) bool {
	if len(items) == 0 {
		return false
	}
	return !slices.ContainsFunc(items, func(item any) bool {
		_, ok := item.([]any)
		return !ok
	})
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Stringify renders a decoded value as cell text.
func Stringify(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case bool:
		return strconv.FormatBool(x)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(x), 'f', -1, 32)
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return fmt.Sprint(x)
	case map[string]any, []any:
		if b, err := json.Marshal(x); err == nil {
			return string(b)
		}
	}
	return fmt.Sprint(v)
}
