package cli

import (
	"errors"
	"log/slog"

	"github.com/aretw0/geomass/pkg/domain"
)

// Process exit codes.
const (
	ExitOK            = 0
	ExitFailure       = 1
	ExitInputNotFound = 2
)

// ExitCode maps a command error to the process exit code.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, domain.ErrInputNotFound):
		return ExitInputNotFound
	default:
		return ExitFailure
	}
}

// ReportError logs err once, with a message naming the failure class.
func ReportError(logger *slog.Logger, err error) {
	if err == nil {
		return
	}

	var symErr *domain.UnrecognizedSymbolError
	switch {
	case errors.Is(err, domain.ErrInputNotFound):
		logger.Error("input file not found", "error", err)
	case errors.Is(err, domain.ErrBlockNotFound):
		logger.Error("failed to locate geometry block", "error", err)
	case errors.As(err, &symErr):
		logger.Error("unrecognized atomic symbol in geometry block",
			"token", symErr.Token,
			"line", symErr.Line,
			"error", err,
		)
	default:
		logger.Error("command failed", "error", err)
	}
}
