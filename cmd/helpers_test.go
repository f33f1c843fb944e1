package cmd

import (
	"bytes"
	"os"
	"testing"

	"github.com/ajxudir/westupdate/pkg/verbose"
)

// cliRun holds what one invocation of the root command produced.
type cliRun struct {
	stdout string
	stderr string
	code   int
}

// resetGlobals restores flag variables and command streams after a test.
func resetGlobals(t *testing.T) {
	t.Helper()

	verboseFlag = false
	versionFlag = false
	skipBuildChecksFlag = false
	outputFlag = "kv"

	t.Cleanup(func() {
		verboseFlag = false
		versionFlag = false
		skipBuildChecksFlag = false
		outputFlag = "kv"
		rootCmd.SetArgs(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		verbose.Disable()
		verbose.SetWriter(os.Stderr)
	})
}

// runRaw executes the root command through Execute with exactly args,
// capturing output streams and the exit code.
func runRaw(t *testing.T, args ...string) cliRun {
	t.Helper()
	resetGlobals(t)

	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(args)
	verbose.SetWriter(&stderr)

	code := 0
	origExit := exitFunc
	exitFunc = func(c int) { code = c }
	defer func() { exitFunc = origExit }()

	Execute()

	return cliRun{stdout: stdout.String(), stderr: stderr.String(), code: code}
}

// runCLI is runRaw with build warnings suppressed.
func runCLI(t *testing.T, args ...string) cliRun {
	t.Helper()
	return runRaw(t, append([]string{"--skip-build-checks"}, args...)...)
}
