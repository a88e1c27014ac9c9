package cli

import (
	"errors"

	"github.com/vk/argrid/internal/opts"
)

// Process exit codes for parse failures.
const (
	ExitOK               = 0
	ExitUnknownOption    = 1
	ExitMissingOptionArg = 2
	// ExitForbiddenArg is reserved for an option given an argument it
	// forbids; the parser currently never produces it.
	ExitForbiddenArg   = 3
	ExitBadShortDecl   = 4
	ExitArgvUnreadable = 5
	ExitUnspecified    = -1
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// ExitCode maps an error to its process exit code.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	var (
		exitErr  *ExitError
		unknown  *opts.UnknownOptionError
		missing  *opts.MissingArgError
		badShort *opts.ShortDeclError
		argv     *opts.ArgvError
	)
	switch {
	case errors.As(err, &exitErr):
		return exitErr.Code
	case errors.As(err, &unknown):
		return ExitUnknownOption
	case errors.As(err, &missing):
		return ExitMissingOptionArg
	case errors.As(err, &badShort):
		return ExitBadShortDecl
	case errors.As(err, &argv):
		return ExitArgvUnreadable
	}
	return ExitUnspecified
}
