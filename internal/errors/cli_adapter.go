package errors

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"git.home.luguber.info/inful/datebuilder"
)

// CLIErrorAdapter handles error presentation and exit code determination for
// the CLI.
type CLIErrorAdapter struct {
	verbose bool
	logger  *slog.Logger
}

// NewCLIErrorAdapter creates a new CLI error adapter.
func NewCLIErrorAdapter(verbose bool, logger *slog.Logger) *CLIErrorAdapter {
	if logger == nil {
		logger = slog.Default()
	}
	return &CLIErrorAdapter{
		verbose: verbose,
		logger:  logger,
	}
}

// ExitCodeFor determines the appropriate exit code for an error.
func (a *CLIErrorAdapter) ExitCodeFor(err error) int {
	if err == nil {
		return 0
	}

	var te *ToolError
	if errors.As(err, &te) {
		return a.exitCodeFromTool(te)
	}

	// Library errors carry no category; invalid input maps to usage failure.
	if errors.Is(err, datebuilder.ErrInvalidArgument) {
		return 2
	}

	return 1
}

// exitCodeFromTool maps ToolError to exit codes.
func (a *CLIErrorAdapter) exitCodeFromTool(err *ToolError) int {
	switch err.Category {
	case CategoryValidation:
		return 2 // Invalid usage
	case CategoryConfig:
		return 7 // Configuration error
	case CategoryInternal:
		return 10 // Internal error
	default:
		return 1 // General error
	}
}

// FormatError formats an error for user-friendly display.
func (a *CLIErrorAdapter) FormatError(err error) string {
	if err == nil {
		return ""
	}

	var te *ToolError
	if errors.As(err, &te) {
		return a.formatTool(te)
	}

	return fmt.Sprintf("Error: %v", err)
}

// formatTool formats a ToolError for display.
func (a *CLIErrorAdapter) formatTool(err *ToolError) string {
	if a.verbose {
		return err.Error()
	}

	switch err.Category {
	case CategoryConfig, CategoryValidation:
		return err.Message
	default:
		return fmt.Sprintf("%s: %s", err.Category, err.Message)
	}
}

// HandleError processes an error and exits the program with appropriate code.
func (a *CLIErrorAdapter) HandleError(err error) {
	if err == nil {
		return
	}

	exitCode := a.ExitCodeFor(err)
	message := a.FormatError(err)

	if a.shouldLog(err) {
		a.logError(err)
	}

	fmt.Fprintf(os.Stderr, "%s\n", message)
	os.Exit(exitCode)
}

// shouldLog determines if an error should be logged.
func (a *CLIErrorAdapter) shouldLog(err error) bool {
	if a.verbose {
		return true
	}

	var te *ToolError
	if errors.As(err, &te) {
		return te.Category == CategoryInternal || te.Severity == SeverityFatal
	}

	return true
}

// logError logs an error with category context when available.
func (a *CLIErrorAdapter) logError(err error) {
	var te *ToolError
	if errors.As(err, &te) {
		attrs := []any{"category", string(te.Category), "severity", string(te.Severity)}
		if te.Cause != nil {
			attrs = append(attrs, "cause", te.Cause.Error())
		}
		a.logger.Error(te.Message, attrs...)
		return
	}

	a.logger.Error(err.Error())
}
