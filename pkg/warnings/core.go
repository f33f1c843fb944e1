// Package warnings writes non-fatal warnings to stderr.
//
// Warnings are shown regardless of --verbose and never go to stdout, so the
// key=value result contract stays machine-parseable.
package warnings

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
)

var (
	mu         sync.RWMutex
	warnWriter io.Writer = os.Stderr
)

// Warnf writes a formatted warning line prefixed with "Warning: ".
//
// A trailing newline is added when format does not end with one.
//
// Parameters:
//   - format: Printf-style format string for the warning message
//   - args: Arguments to format into the string
func Warnf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	if !strings.HasSuffix(msg, "\n") {
		msg += "\n"
	}

	mu.RLock()
	w := warnWriter
	mu.RUnlock()
	_, _ = io.WriteString(w, "Warning: "+msg)
}

// SetWarningWriter swaps the warning writer and returns a restore function.
//
// Parameters:
//   - w: The new io.Writer to use; if nil, defaults to os.Stderr
//
// Returns:
//   - func(): Restores the previous writer
func SetWarningWriter(w io.Writer) func() {
	mu.Lock()
	defer mu.Unlock()

	previous := warnWriter
	if w == nil {
		warnWriter = os.Stderr
	} else {
		warnWriter = w
	}

	return func() {
		mu.Lock()
		defer mu.Unlock()
		warnWriter = previous
	}
}
