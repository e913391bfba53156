package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/Fuabioo/webfetch/internal/errors"
	"golang.org/x/term"
)

// outputJSON marshals and prints JSON to stdout.
func outputJSON(v interface{}) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(v); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}

// isTerminal checks if the given file descriptor is a TTY.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// getExitCode maps error codes to CLI exit codes.
func getExitCode(err error) int {
	if err == nil {
		return 0
	}

	code := errors.Code(err)
	switch code {
	case errors.CodeInvalidURL, errors.CodeMissingArgument:
		return 2 // Bad input
	case errors.CodeFetchFailed:
		return 3 // Transport failure
	case errors.CodeUpstreamHTTPError:
		return 4 // Upstream error status
	case errors.CodeLimitExceeded:
		return 5 // Response too large
	case "":
		// Not a webfetch error - could be usage error
		return 1 // General error
	default:
		return 1 // General error
	}
}

// printError prints an error to stderr with appropriate formatting.
func printError(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
}
