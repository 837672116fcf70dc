package errors

import (
	stderrors "errors"
	"fmt"
	"os"

	"github.com/charmbracelet/huh"

	"github.com/julianstephens/daylog/internal/logger"
)

// ExitAborted is the exit status used when the user cancels a prompt
const ExitAborted = 130

// Format formats an error message with a consistent "Error: " prefix
func Format(err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Error: %v", err)
}

// Formatf formats an error message with a consistent "Error: " prefix using a format string
func Formatf(format string, args ...any) string {
	return fmt.Sprintf("Error: "+format, args...)
}

// IsAborted reports whether err comes from the user cancelling an interactive form.
func IsAborted(err error) bool {
	return stderrors.Is(err, huh.ErrUserAborted)
}

// ExitCode maps a command error to the process exit status.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case IsAborted(err):
		return ExitAborted
	default:
		return 1
	}
}

// Fatal logs err and exits with its exit code. A nil err is a no-op and a
// cancelled prompt exits without printing an error.
func Fatal(err error) {
	if err == nil {
		return
	}
	if IsAborted(err) {
		logger.Info("Command cancelled by user")
		os.Exit(ExitAborted)
	}
	logger.Error("Command execution failed", "error", err)
	fmt.Fprintln(os.Stderr, Format(err))
	os.Exit(ExitCode(err))
}
