package loader

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Format names an input encoding.
type Format string

const (
	FormatAuto   Format = "auto"
	FormatJSON   Format = "json"
	FormatNDJSON Format = "ndjson"
	FormatYAML   Format = "yaml"
	FormatTOML   Format = "toml"
	FormatCSV    Format = "csv"
)

// Formats lists the accepted --format values.
var Formats = []Format{FormatAuto, FormatJSON, FormatNDJSON, FormatYAML, FormatTOML, FormatCSV}

// ParseFormat validates a format name. The empty string means auto.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case "":
		return FormatAuto, nil
	case "yml":
		return FormatYAML, nil
	case "jsonl":
		return FormatNDJSON, nil
	case FormatAuto, FormatJSON, FormatNDJSON, FormatYAML, FormatTOML, FormatCSV:
		return f, nil
	default:
		return "", fmt.Errorf("unknown input format %q (want one of %v)", s, Formats)
	}
}

// FormatFromPath guesses the format from a file extension. Unknown
// extensions yield FormatAuto.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON
	case ".ndjson", ".jsonl":
		return FormatNDJSON
	case ".yaml", ".yml":
		return FormatYAML
	case ".toml":
		return FormatTOML
	case ".csv":
		return FormatCSV
	default:
		return FormatAuto
	}
}

// DetectFormat applies the auto-detection heuristics to input.
func DetectFormat(input string) Format {
	input = strings.TrimSpace(normalizeNewlines(input))

	// Try multi-document YAML first (most restrictive)
	if strings.Contains(input, "\n---") || strings.HasPrefix(input, "---") {
		return FormatYAML
	}

	lines := strings.Split(input, "\n")
	if len(lines) > 1 && isLikelyNDJSON(lines) {
		return FormatNDJSON
	}

	// Check for TOML before JSON - TOML [section] headers look like JSON arrays
	// but are distinct (e.g., "[server]" vs "[1, 2, 3]")
	if isLikelyTOML(input) {
		return FormatTOML
	}

	if strings.HasPrefix(input, "{") || strings.HasPrefix(input, "[") {
		return FormatJSON
	}

	if isLikelyCSV(lines) {
		return FormatCSV
	}

	return FormatYAML
}

// LoadData loads structured data from a string, auto-detecting format.
// Supports:
// - Single JSON object/array
// - Newline-delimited JSON (NDJSON): one JSON object per line
// - YAML: single document or multi-document (separated by ---)
// - TOML
// - CSV, returned as one map per record keyed by the header line
//
// All formats return an []any where each element is a parsed document/object.
// For single-document inputs, the array contains one element.
func LoadData(input string) ([]any, error) {
	return Load(input, FormatAuto)
}

// Load parses input in the given format. Explicit formats that fail to parse
// fall back to auto-detection so a misleading extension still loads.
func Load(input string, format Format) ([]any, error) {
	input = strings.TrimSpace(normalizeNewlines(input))
	if input == "" {
		return nil, fmt.Errorf("empty input")
	}

	if format == "" || format == FormatAuto {
		detected := DetectFormat(input)
		docs, err := decode(input, detected)
		if err != nil && detected != FormatYAML {
			// YAML flow syntax accepts near-JSON such as {invalid}.
			if fallback, yerr := decode(input, FormatYAML); yerr == nil {
				return fallback, nil
			}
		}
		return docs, err
	}

	docs, err := decode(input, format)
	if err == nil {
		return docs, nil
	}
	if detected := DetectFormat(input); detected != format {
		if fallback, ferr := decode(input, detected); ferr == nil {
			return fallback, nil
		}
	}
	return nil, err
}

// LoadFile reads a file and parses it, using the extension as a format hint.
func LoadFile(path string) ([]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Load(string(data), FormatFromPath(path))
}

func decode(input string, format Format) ([]any, error) {
	switch format {
	case FormatJSON:
		return loadJSON(input)
	case FormatNDJSON:
		return loadNDJSON(input)
	case FormatTOML:
		return loadTOML(input)
	case FormatCSV:
		t, err := loadCSV(input)
		if err != nil {
			return nil, err
		}
		return t.Records(), nil
	case FormatYAML, FormatAuto:
		if strings.Contains(input, "\n---") || strings.HasPrefix(input, "---") {
			return loadMultiDocYAML(input)
		}
		return loadYAML(input)
	default:
		return nil, fmt.Errorf("unknown input format %q", format)
	}
}

// normalizeNewlines turns CRLF and lone CR into LF. CLI tools use a bare CR
// to redraw progress lines between JSON log records.
func normalizeNewlines(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}

// loadJSON parses a single JSON object or array and wraps it in []any
func loadJSON(input string) ([]any, error) {
	var data any
	if err := json.Unmarshal([]byte(input), &data); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}
	return []any{data}, nil
}

// loadYAML parses a single YAML document and wraps it in []any
func loadYAML(input string) ([]any, error) {
	var data any
	if err := yaml.Unmarshal([]byte(input), &data); err != nil {
		return nil, fmt.Errorf("invalid YAML: %w", err)
	}
	return []any{data}, nil
}

// loadMultiDocYAML parses YAML with multiple documents (separated by ---) and returns []any
func loadMultiDocYAML(input string) ([]any, error) {
	var results []any
	decoder := yaml.NewDecoder(strings.NewReader(input))

	for {
		var doc any
		if err := decoder.Decode(&doc); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("invalid multi-document YAML: %w", err)
		}
		if doc != nil {
			results = append(results, doc)
		}
	}

	if len(results) == 0 {
		return nil, fmt.Errorf("no documents found in multi-document YAML")
	}
	return results, nil
}

// loadNDJSON parses newline-delimited JSON and returns []any
// Lines that are valid JSON objects become map/array elements.
// Lines that are not valid JSON are treated as plain strings.
func loadNDJSON(input string) ([]any, error) {
	lines := strings.Split(input, "\n")
	results := make([]any, 0, len(lines))

	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		var obj any
		if err := json.Unmarshal([]byte(line), &obj); err != nil {
			results = append(results, line)
			continue
		}
		results = append(results, obj)
	}

	if len(results) == 0 {
		return nil, fmt.Errorf("no data found in input")
	}
	return results, nil
}

// isLikelyNDJSON heuristic: returns true if the input looks like newline-delimited JSON.
// A majority of non-empty lines must start with '{' or '[' so that YAML files
// with many bare list items are not misclassified.
func isLikelyNDJSON(lines []string) bool {
	jsonCount := 0
	nonEmptyCount := 0

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		nonEmptyCount++

		if strings.HasPrefix(trimmed, "{") || strings.HasPrefix(trimmed, "[") {
			jsonCount++
		}
	}

	return nonEmptyCount > 1 && jsonCount > nonEmptyCount/2
}

var (
	// TOML section headers: [server], [[items]], ["table name"], [database.credentials].
	// JSON arrays like [1, 2, 3] do not match.
	tomlSectionPattern = regexp.MustCompile(`^\[{1,2}(?:[a-zA-Z_][a-zA-Z0-9_-]*|"[^"]+"|'[^']+')+(?:\.(?:[a-zA-Z_][a-zA-Z0-9_-]*|"[^"]+"|'[^']+'))*\]{1,2}\s*$`)

	// TOML key = value (not key: value which is YAML).
	tomlKeyValuePattern = regexp.MustCompile(`^\s*(?:[a-zA-Z_][a-zA-Z0-9_-]*|"[^"]+"|'[^']+')+(?:\.(?:[a-zA-Z_][a-zA-Z0-9_-]*|"[^"]+"|'[^']+'))*\s*=\s*.+$`)
)

// isLikelyTOML heuristic: returns true if the input looks like TOML.
// Section headers must start at column zero; an indented ["x"] inside a YAML
// block scalar is not a section.
func isLikelyTOML(input string) bool {
	sectionCount := 0
	keyValueCount := 0
	nonEmptyCount := 0

	for _, line := range strings.Split(input, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		nonEmptyCount++

		if tomlSectionPattern.MatchString(line) {
			sectionCount++
		}
		if tomlKeyValuePattern.MatchString(line) {
			keyValueCount++
		}
	}

	if sectionCount > 0 {
		return true
	}
	return nonEmptyCount > 0 && keyValueCount > nonEmptyCount/2
}

// loadTOML parses TOML content and wraps it in []any
func loadTOML(input string) ([]any, error) {
	var data any
	if err := toml.Unmarshal([]byte(input), &data); err != nil {
		return nil, fmt.Errorf("invalid TOML: %w", err)
	}
	return []any{data}, nil
}
