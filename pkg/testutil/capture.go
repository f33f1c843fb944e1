// Package testutil provides shared test helpers for westupdate packages:
// manifest fixtures on disk and capture of the process output streams.
package testutil

import (
	"bytes"
	"io"
	"os"
	"testing"
)

// pipeCapture swaps *target for a pipe and drains it in the background so
// large outputs cannot block the writer.
type pipeCapture struct {
	saved *os.File
	w     *os.File
	done  chan string
}

func startCapture(t *testing.T, target **os.File) *pipeCapture {
	t.Helper()

	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("create pipe: %v", err)
	}

	c := &pipeCapture{saved: *target, w: w, done: make(chan string, 1)}
	*target = w

	go func() {
		var buf bytes.Buffer
		_, _ = io.Copy(&buf, r)
		_ = r.Close()
		c.done <- buf.String()
	}()

	return c
}

func (c *pipeCapture) stop(target **os.File) string {
	_ = c.w.Close()
	*target = c.saved
	return <-c.done
}

// CaptureStdout runs fn with os.Stdout redirected and returns what was written.
func CaptureStdout(t *testing.T, fn func()) string {
	t.Helper()

	c := startCapture(t, &os.Stdout)
	fn()
	return c.stop(&os.Stdout)
}

// CaptureStderr runs fn with os.Stderr redirected and returns what was written.
func CaptureStderr(t *testing.T, fn func()) string {
	t.Helper()

	c := startCapture(t, &os.Stderr)
	fn()
	return c.stop(&os.Stderr)
}

// CaptureOutput runs fn with both os.Stdout and os.Stderr redirected.
//
// Returns:
//   - stdout: All content written to stdout during fn
//   - stderr: All content written to stderr during fn
func CaptureOutput(t *testing.T, fn func()) (stdout, stderr string) {
	t.Helper()

	out := startCapture(t, &os.Stdout)
	errc := startCapture(t, &os.Stderr)
	fn()
	stderr = errc.stop(&os.Stderr)
	stdout = out.stop(&os.Stdout)
	return stdout, stderr
}
