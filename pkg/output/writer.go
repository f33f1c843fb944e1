package output

import (
	"fmt"
	"io"

	"github.com/iancoleman/orderedmap"

	"github.com/ajxudir/westupdate/pkg/update"
)

// Status values of the key=value contract.
const (
	StatusUpdated  = "updated"
	StatusNoChange = "no-change"
)

// Status returns the contract status for a result: "updated" when the file
// was rewritten, "no-change" otherwise.
func Status(r update.Result) string {
	if r.Changed() {
		return StatusUpdated
	}
	return StatusNoChange
}

// WriteResult writes an update result in the given format.
//
// Parameters:
//   - w: Destination writer, normally stdout
//   - format: Output format
//   - r: The update result
//
// Returns:
//   - error: When format is unsupported or the write fails
func WriteResult(w io.Writer, format Format, r update.Result) error {
	switch format {
	case FormatKeyValue, "":
		return writeKeyValue(w, r)
	case FormatJSON:
		return writeJSON(w, resultMap(r))
	case FormatTable:
		return writeTable(w, r)
	default:
		return fmt.Errorf("unsupported format: %s", format)
	}
}

// writeKeyValue writes the status line, followed by old_revision only when
// the file changed and a previous non-empty revision existed.
func writeKeyValue(w io.Writer, r update.Result) error {
	if _, err := fmt.Fprintf(w, "status=%s\n", Status(r)); err != nil {
		return err
	}
	if r.Changed() && r.OldRevision != "" {
		if _, err := fmt.Fprintf(w, "old_revision=%s\n", r.OldRevision); err != nil {
			return err
		}
	}
	return nil
}

// resultMap builds the JSON document with a fixed key order.
func resultMap(r update.Result) *orderedmap.OrderedMap {
	m := orderedmap.New()
	m.Set("status", Status(r))
	m.Set("reason", r.Outcome.String())
	m.Set("repo_path", r.RepoPath)
	if r.OldRevision != "" {
		m.Set("old_revision", r.OldRevision)
	}
	if r.Changed() {
		m.Set("revision", r.NewRevision)
		m.Set("change", string(r.Change()))
	}
	return m
}
