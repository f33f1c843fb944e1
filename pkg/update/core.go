// Package update rewrites the pinned revision of one project in a west
// manifest file.
//
// UpdateRevision runs the whole pipeline: read the file, decode it, find the
// project by repo-path, set its revision and write the file back when
// something changed. Failures are returned as the typed errors of pkg/errors
// so callers can map them to exit codes.
package update

import (
	stderrors "errors"
	"io/fs"
	"os"

	"go.uber.org/zap"

	"github.com/ajxudir/westupdate/pkg/errors"
	"github.com/ajxudir/westupdate/pkg/manifest"
	"github.com/ajxudir/westupdate/pkg/utils"
	"github.com/ajxudir/westupdate/pkg/verbose"
	"github.com/ajxudir/westupdate/pkg/warnings"
)

var (
	readFileFunc  = os.ReadFile
	writeFileFunc = writeFilePreservingPermissions
	statFileFunc  = os.Stat
	encodeFunc    = (*manifest.Document).Encode
)

// Request names the manifest, the project and the revision to pin.
//
// Fields:
//   - Path: Manifest file to read and rewrite
//   - Identifier: Repository identifier, optionally namespace-qualified
//   - Revision: The new revision
type Request struct {
	Path       string
	Identifier string
	Revision   string
}

// Outcome is the result class of an update.
type Outcome int

const (
	// OutcomeNotFound means no project matched the lookup key.
	OutcomeNotFound Outcome = iota

	// OutcomeUpToDate means the project already had the requested revision.
	OutcomeUpToDate

	// OutcomeUpdated means the revision was changed and the file rewritten.
	OutcomeUpdated
)

// String returns the outcome name used in structured output.
func (o Outcome) String() string {
	switch o {
	case OutcomeUpdated:
		return "updated"
	case OutcomeUpToDate:
		return "up-to-date"
	default:
		return "not-found"
	}
}

// Result describes what UpdateRevision did.
//
// Fields:
//   - Outcome: Whether the file was updated, and if not, why
//   - RepoPath: The lookup key derived from the identifier
//   - OldRevision: The previous revision text; empty when absent or null
//   - HadRevision: Whether the project carried a non-null revision
//   - NewRevision: The requested revision
//   - Wrapped: Whether the manifest used a top-level "manifest" key
type Result struct {
	Outcome     Outcome
	RepoPath    string
	OldRevision string
	HadRevision bool
	NewRevision string
	Wrapped     bool
}

// Changed reports whether the manifest file was rewritten.
func (r Result) Changed() bool {
	return r.Outcome == OutcomeUpdated
}

// Change classifies the revision transition of an updated result.
func (r Result) Change() utils.Change {
	return utils.DescribeChange(r.OldRevision, r.NewRevision)
}

// UpdateRevision pins the revision of the project matching req.Identifier.
//
// It performs the following operations:
//   - Step 1: Load and decode the manifest at req.Path
//   - Step 2: Derive the lookup key and find the first matching project
//   - Step 3: Set the project's revision if it differs
//   - Step 4: Encode and write the manifest back, only when changed
//
// When nothing changes the file is not touched at all.
//
// Parameters:
//   - req: The manifest path, repository identifier and new revision
//
// Returns:
//   - Result: What happened; valid only when err is nil
//   - error: FileAccessError, FormatError or IOError
func UpdateRevision(req Request) (Result, error) {
	doc, modTime, err := load(req.Path)
	if err != nil {
		return Result{}, err
	}

	result := Result{
		RepoPath:    manifest.LookupKey(req.Identifier),
		NewRevision: req.Revision,
		Wrapped:     doc.Wrapped(),
	}

	if verbose.IsEnabled() {
		verbose.Debug("loaded manifest",
			zap.String("path", req.Path),
			zap.Bool("wrapped", result.Wrapped),
			zap.Int("projects", len(doc.Projects())))
	}

	project, ok := doc.FindProject(result.RepoPath)
	if !ok {
		verbose.Debug("no project matches",
			zap.String("identifier", req.Identifier),
			zap.String("repo_path", result.RepoPath))
		result.Outcome = OutcomeNotFound
		return result, nil
	}

	result.OldRevision, result.HadRevision = project.Revision()
	verbose.Debug("matched project",
		zap.String("repo_path", project.RepoPath),
		zap.Int("index", project.Index),
		zap.String("revision", result.OldRevision),
		zap.String("kind", string(utils.ClassifyRevision(result.OldRevision))))

	if !project.SetRevision(req.Revision) {
		verbose.Debug("revision already current", zap.String("revision", req.Revision))
		result.Outcome = OutcomeUpToDate
		return result, nil
	}

	content, err := encodeFunc(doc)
	if err != nil {
		return Result{}, &errors.IOError{Op: errors.OpWrite, Path: req.Path, Err: err}
	}

	warnIfModified(req.Path, modTime)

	if err := writeFileFunc(req.Path, content, 0o644); err != nil {
		return Result{}, &errors.IOError{Op: errors.OpWrite, Path: req.Path, Err: err}
	}

	result.Outcome = OutcomeUpdated
	verbose.Debug("revision updated",
		zap.String("from", result.OldRevision),
		zap.String("to", req.Revision),
		zap.String("change", string(result.Change())))

	return result, nil
}

// Load reads and decodes the manifest at path.
//
// Returns:
//   - *manifest.Document: The decoded manifest
//   - error: FileAccessError when path does not exist, IOError for any other
//     read failure, FormatError when the content is not valid YAML
func Load(path string) (*manifest.Document, error) {
	doc, _, err := load(path)
	return doc, err
}

// load reads and decodes path, returning the file's modification time as
// observed before the read (zero when unavailable).
func load(path string) (*manifest.Document, int64, error) {
	var modTime int64
	if info, err := statFileFunc(path); err == nil {
		modTime = info.ModTime().UnixNano()
	}

	content, err := readFileFunc(path)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return nil, 0, &errors.FileAccessError{Path: path, Err: err}
		}
		return nil, 0, &errors.IOError{Op: errors.OpRead, Path: path, Err: err}
	}

	doc, err := manifest.Parse(content)
	if err != nil {
		return nil, 0, &errors.FormatError{Path: path, Err: err}
	}

	return doc, modTime, nil
}

// warnIfModified warns when path changed on disk after it was read. The
// write still proceeds; concurrent edits are the caller's responsibility.
func warnIfModified(path string, readModTime int64) {
	if readModTime == 0 {
		return
	}
	info, err := statFileFunc(path)
	if err != nil {
		return
	}
	if info.ModTime().UnixNano() != readModTime {
		warnings.Warnf("%s was modified by another process during update", path)
	}
}

// writeFilePreservingPermissions overwrites path in place with content.
//
// The file keeps its existing permission bits; defaultMode is used only when
// the file no longer exists. The write is not atomic and no backup is kept.
func writeFilePreservingPermissions(path string, content []byte, defaultMode os.FileMode) error {
	mode := defaultMode
	if info, err := statFileFunc(path); err == nil {
		mode = info.Mode().Perm()
	}
	return os.WriteFile(path, content, mode)
}
