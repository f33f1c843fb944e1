// Package cmd implements the command-line interface for westupdate.
//
// The root command takes exactly three positional arguments, updates the
// matching project's revision and reports the outcome on stdout as
// key=value lines.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ajxudir/westupdate/pkg/errors"
	"github.com/ajxudir/westupdate/pkg/output"
	"github.com/ajxudir/westupdate/pkg/update"
	"github.com/ajxudir/westupdate/pkg/verbose"
)

const usageLine = "westupdate [flags] <manifest-path> <repo-identifier> <new-revision>"

var exitFunc = os.Exit
var verboseFlag bool
var versionFlag bool
var skipBuildChecksFlag bool
var outputFlag string

var rootCmd = &cobra.Command{
	Use:   "westupdate <manifest-path> <repo-identifier> <new-revision>",
	Short: "Pin a project revision in a west manifest",
	Long: `Set the revision of one project in a west manifest.

The project is the first entry of "projects" whose repo-path equals the last
path segment of <repo-identifier>, so "lhasystems/zephyr_boards" and
"zephyr_boards" select the same project. Manifests wrapped under a top-level
"manifest" key are handled transparently.

Put -- before the positional arguments when a revision starts with "-":
  westupdate -- west.yml zephyr_boards -1

Output (stdout):
  status=updated
  old_revision=<previous>   only when a previous revision existed
or
  status=no-change

Exit codes: 0 success, 1 manifest read/parse/write failure, 2 usage error.`,
	Args:          validateArgs,
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verboseFlag {
			verbose.Enable()
		}
		if !skipBuildChecksFlag {
			if warnings := GetBuildWarnings(); warnings != "" {
				fmt.Fprint(cmd.ErrOrStderr(), warnings)
			}
		}
	},
	RunE: runUpdate,
}

// Execute runs the root command and exits with the mapped code on error:
//   - 0: Updated or no change
//   - 1: Manifest could not be read, parsed or written
//   - 2: Usage error
func Execute() {
	err := rootCmd.Execute()
	verbose.Sync()
	if err == nil {
		return
	}

	errors.PrintErrorWithHints(rootCmd.ErrOrStderr(), []error{err}, verbose.IsEnabled())
	code := errors.GetExitCode(err)
	verbose.Infof("exit code %d: %v", code, err)
	exitFunc(code)
}

// ExecuteTest runs the root command for testing (returns error instead of exiting).
func ExecuteTest() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&verboseFlag, "verbose", false, "Enable verbose debug output on stderr")
	rootCmd.PersistentFlags().BoolVar(&skipBuildChecksFlag, "skip-build-checks", false, "Skip build validation warnings (dev build, arch mismatch)")
	rootCmd.Flags().StringVarP(&outputFlag, "output", "o", string(output.FormatKeyValue), "Output format: kv, json, table")
	rootCmd.Flags().BoolVarP(&versionFlag, "version", "v", false, "Show version information")

	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return errors.NewUsageError(usageLine, err.Error())
	})
}

// validateArgs requires exactly three positional arguments, or none with
// --version. It runs before any file is touched.
func validateArgs(_ *cobra.Command, args []string) error {
	if versionFlag {
		if len(args) != 0 {
			return errors.NewUsageError(usageLine, fmt.Sprintf("--version takes no arguments, got %d", len(args)))
		}
		return nil
	}
	if len(args) != 3 {
		return errors.NewUsageError(usageLine, fmt.Sprintf("expected 3 arguments, got %d", len(args)))
	}
	return nil
}

// runUpdate executes the update and writes the result to stdout.
func runUpdate(cmd *cobra.Command, args []string) error {
	if versionFlag {
		printVersionOutput(cmd.OutOrStdout())
		return nil
	}

	format, err := output.ParseFormat(outputFlag)
	if err != nil {
		return errors.NewUsageError(usageLine, err.Error())
	}

	req := update.Request{Path: args[0], Identifier: args[1], Revision: args[2]}
	verbose.Printf("updating %s: %s -> %s", req.Path, req.Identifier, req.Revision)

	result, err := update.UpdateRevision(req)
	if err != nil {
		return err
	}

	if err := output.WriteResult(cmd.OutOrStdout(), format, result); err != nil {
		return errors.NewExitError(errors.ExitFailure, fmt.Errorf("write result: %w", err))
	}
	return nil
}
