package errors

import (
	stderrors "errors"
	"fmt"
	"os"

	"github.com/julianstephens/orbit/internal/logger"
)

var (
	// ErrStorageUnavailable is returned when the key-value backend cannot be read or written
	ErrStorageUnavailable = stderrors.New("storage unavailable")
	// ErrCorruptData is returned when a persisted value cannot be decoded
	ErrCorruptData = stderrors.New("stored data is corrupt")
	// ErrInvalidEvent is returned when a recorder rejects raw activity
	ErrInvalidEvent = stderrors.New("invalid event")
	// ErrNotFound is returned when a task or entry does not exist
	ErrNotFound = stderrors.New("not found")
	// ErrAnalysisUnavailable is returned when mood analysis cannot produce a result
	ErrAnalysisUnavailable = stderrors.New("mood analysis unavailable")
)

// UserMessage turns an error into the short message shown in place of data.
// Failures degrade to "no data" style messages instead of raw error text.
func UserMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case stderrors.Is(err, ErrAnalysisUnavailable):
		return "Mood analysis unavailable right now. You can still log a mood by hand."
	case stderrors.Is(err, ErrStorageUnavailable), stderrors.Is(err, ErrCorruptData):
		return "No data yet."
	case stderrors.Is(err, ErrNotFound):
		return fmt.Sprintf("Nothing found: %v", err)
	case stderrors.Is(err, ErrInvalidEvent):
		return fmt.Sprintf("Not recorded: %v", err)
	default:
		return Format(err)
	}
}

// IsDegradable reports whether err should be shown as missing data instead
// of failing the command.
func IsDegradable(err error) bool {
	return stderrors.Is(err, ErrAnalysisUnavailable) ||
		stderrors.Is(err, ErrStorageUnavailable) ||
		stderrors.Is(err, ErrCorruptData)
}

// Format formats an error message with a consistent "Error: " prefix
func Format(err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Error: %v", err)
}

// Fatal logs an error and exits the program with exit code 1
func Fatal(err error) {
	if err != nil {
		logger.Error("Command execution failed", "error", err)
		fmt.Fprintf(os.Stderr, "%s\n", UserMessage(err))
		os.Exit(1)
	}
}
