package errors

import (
	"fmt"
	"io"
)

// PrintErrorWithHints prints errors with actionable hints to the writer.
//
// This is the single implementation for error display. Usage errors are
// printed as-is so the usage line stays copyable; everything else is
// prefixed with "Error:" and followed by a hint when one matches.
//
// Parameters:
//   - w: Writer to output to (typically os.Stderr)
//   - errs: Errors to display; nil entries are skipped
//   - verbose: If true, includes the underlying cause of wrapped errors
//
// Output format:
//
//	Error: <error message>
//	  Hint: <actionable hint if available>
func PrintErrorWithHints(w io.Writer, errs []error, verbose bool) {
	for _, err := range errs {
		printSingleError(w, err, verbose)
	}
}

// printSingleError prints a single error with appropriate formatting.
func printSingleError(w io.Writer, err error, verbose bool) {
	if err == nil {
		return
	}

	if ue, ok := IsUsageError(err); ok {
		printUsageError(w, ue)
		return
	}

	_, _ = fmt.Fprintf(w, "Error: %s\n", EnhanceErrorWithHint(err))

	if verbose {
		if cause := causeOf(err); cause != nil {
			_, _ = fmt.Fprintf(w, "  Cause: %T: %v\n", cause, cause)
		}
	}
}

// printUsageError prints the reason (if any) followed by the usage line.
func printUsageError(w io.Writer, err *UsageError) {
	if err.Reason != "" {
		_, _ = fmt.Fprintf(w, "Error: %s\n", err.Reason)
	}
	_, _ = fmt.Fprintf(w, "usage: %s\n", err.Usage)
}

// causeOf returns the error wrapped by one of the taxonomy types, if any.
func causeOf(err error) error {
	if fe, ok := IsFileAccessError(err); ok {
		return fe.Err
	}
	if fe, ok := IsFormatError(err); ok {
		return fe.Err
	}
	if ie, ok := IsIOError(err); ok {
		return ie.Err
	}
	return nil
}
