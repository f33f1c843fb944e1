package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// WestManifest is a representative unwrapped manifest used across tests.
const WestManifest = `projects:
  - name: zephyr
    remote: zephyrproject-rtos
    repo-path: zephyr
    revision: v3.5.0
    import: true
  - name: zephyr_boards
    remote: lhasystems
    repo-path: zephyr_boards
    revision: 1a2b3c4d
    path: modules/boards
  - name: hal_nordic
    repo-path: hal_nordic
    path: modules/hal/nordic
self:
  path: app
`

// WrappedWestManifest is WestManifest's shape nested under a top-level
// "manifest" key, as written by west itself.
const WrappedWestManifest = `manifest:
  defaults:
    remote: lhasystems
  remotes:
    - name: lhasystems
      url-base: https://github.com/lhasystems
  projects:
    - name: zephyr_boards
      repo-path: zephyr_boards
      revision: 1a2b3c4d
      path: modules/boards
    - name: hal_nordic
      repo-path: hal_nordic
      path: modules/hal/nordic
  self:
    path: app
`

// WriteManifest writes content to west.yml in a fresh temp directory.
//
// Parameters:
//   - t: Testing instance for helper marking and cleanup
//   - content: Manifest content
//
// Returns:
//   - string: Path of the written file
func WriteManifest(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "west.yml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write manifest: %v", err)
	}
	return path
}

// ReadFile returns the content of path, failing the test on error.
func ReadFile(t *testing.T, path string) string {
	t.Helper()

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return string(content)
}
