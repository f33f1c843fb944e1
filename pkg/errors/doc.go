// Package errors provides the error taxonomy and error display for westupdate.
//
// Every failure the tool can hit maps to one of four types:
//   - UsageError: wrong number of arguments or an unknown flag
//   - FileAccessError: the manifest path does not exist
//   - FormatError: the manifest is not valid YAML
//   - IOError: any other read or write failure
//
// Error Display:
//
// Errors are printed once to stderr with an actionable hint when one is known:
//
//	errors.PrintErrorWithHints(os.Stderr, []error{err}, verbose)
//
// Exit Codes:
//
// Exit codes are stable for scripting:
//   - ExitSuccess (0): manifest updated or already current
//   - ExitFailure (1): the manifest could not be read, parsed or written
//   - ExitUsage (2): the command line was invalid
package errors
