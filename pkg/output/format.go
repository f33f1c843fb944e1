// Package output renders update results on stdout.
//
// The default key=value format is the stable machine-readable contract:
//
//	status=updated
//	old_revision=<previous>
//
// or
//
//	status=no-change
//
// JSON and table formats carry the same information plus the outcome detail
// that key=value output deliberately folds into "no-change".
package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/iancoleman/orderedmap"
)

// Format represents the output format type.
type Format string

const (
	// FormatKeyValue is the default line-oriented key=value output.
	FormatKeyValue Format = "kv"
	// FormatJSON outputs a single JSON object.
	FormatJSON Format = "json"
	// FormatTable outputs an aligned two-column table for humans.
	FormatTable Format = "table"
)

// Formats lists the accepted format names.
var Formats = []Format{FormatKeyValue, FormatJSON, FormatTable}

// ParseFormat parses a format name, case-insensitively.
//
// Parameters:
//   - s: Format name; empty selects FormatKeyValue
//
// Returns:
//   - Format: The parsed format
//   - error: When s names no known format
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "kv":
		return FormatKeyValue, nil
	case "json":
		return FormatJSON, nil
	case "table":
		return FormatTable, nil
	default:
		return "", fmt.Errorf("unknown output format %q (valid: kv, json, table)", s)
	}
}

// writeJSON encodes an ordered map as indented JSON without HTML escaping,
// so revisions containing "<" or "&" stay readable.
func writeJSON(w io.Writer, data *orderedmap.OrderedMap) error {
	data.SetEscapeHTML(false)

	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(data); err != nil {
		return err
	}

	_, err := w.Write(buf.Bytes())
	return err
}
