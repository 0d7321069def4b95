package demo

import (
	"errors"
	"fmt"
)

// RunErrorCode categorizes runner errors.
type RunErrorCode string

const (
	// ErrCodeUnknownDemo indicates a demo name outside the registry.
	ErrCodeUnknownDemo RunErrorCode = "UNKNOWN_DEMO"

	// ErrCodeDemoFailed indicates a demo returned an error while running.
	ErrCodeDemoFailed RunErrorCode = "DEMO_FAILED"
)

// RunError is an error detected by the demo runner.
type RunError struct {
	// Code identifies the error category.
	Code RunErrorCode

	// Demo is the demo name the error relates to.
	Demo string

	// Err is the underlying error, if any.
	Err error
}

// Error implements the error interface.
func (e *RunError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: demo %q: %v", e.Code, e.Demo, e.Err)
	}
	return fmt.Sprintf("%s: demo %q", e.Code, e.Demo)
}

// Unwrap returns the underlying error.
func (e *RunError) Unwrap() error {
	return e.Err
}

// IsUnknownDemo reports whether err is an unknown-demo error.
// Uses errors.As to handle wrapped errors.
func IsUnknownDemo(err error) bool {
	var re *RunError
	if errors.As(err, &re) {
		return re.Code == ErrCodeUnknownDemo
	}
	return false
}
