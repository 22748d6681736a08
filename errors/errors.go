package errors

import "errors"

// Library-wide error messages are here.
var (
	// ErrGradingFailed reports a run that completed without passing. The
	// reports already say why, so callers only need to set the exit status.
	ErrGradingFailed    = errors.New("grading failed")
	ErrAlreadyExecuted  = errors.New("tests have already been executed")
	ErrNoArtifactWriter = errors.New("no artifact writer was configured")
	ErrInvalidSuite     = errors.New("invalid suite")
)
