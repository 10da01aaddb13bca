package errors

import (
	stderrors "errors"
	"fmt"
	"os"

	"github.com/thatappguy71/EvolvAssistant-sub000/internal/logger"
)

var (
	// ErrInvalidInput marks a request rejected before any computation.
	ErrInvalidInput = stderrors.New("invalid input")
	// ErrNotFound marks a missing user, habit, completion or metrics row.
	ErrNotFound = stderrors.New("not found")
	// ErrUpstreamUnavailable marks a failed store read or write. It is retryable.
	ErrUpstreamUnavailable = stderrors.New("upstream unavailable")
)

// OpError records the operation and resource that failed.
type OpError struct {
	Op       string
	Resource string
	ID       string
	Err      error
}

func (e *OpError) Error() string {
	if e == nil {
		return ""
	}
	if e.ID != "" {
		return fmt.Sprintf("%s %s %s: %v", e.Op, e.Resource, e.ID, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Resource, e.Err)
}

func (e *OpError) Unwrap() error { return e.Err }

// upstreamError joins a store failure with ErrUpstreamUnavailable so that
// both errors.Is(err, ErrUpstreamUnavailable) and errors.Is(err, cause) hold.
type upstreamError struct {
	op    string
	cause error
}

func (e *upstreamError) Error() string {
	return fmt.Sprintf("%s: %v: %v", e.op, ErrUpstreamUnavailable, e.cause)
}

func (e *upstreamError) Unwrap() []error { return []error{ErrUpstreamUnavailable, e.cause} }

// Upstream wraps a store failure as a retryable error. A nil err yields nil.
func Upstream(op string, err error) error {
	if err == nil {
		return nil
	}
	return &upstreamError{op: op, cause: err}
}

// Invalid builds an ErrInvalidInput error with a formatted reason.
func Invalid(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}

// NotFound builds an ErrNotFound error for a resource.
func NotFound(resource, id string) error {
	return &OpError{Op: "find", Resource: resource, ID: id, Err: ErrNotFound}
}

// IsRetryable reports whether the caller may retry the failed request.
func IsRetryable(err error) bool {
	return stderrors.Is(err, ErrUpstreamUnavailable)
}

// IsInvalid reports whether err is a client input error.
func IsInvalid(err error) bool {
	return stderrors.Is(err, ErrInvalidInput)
}

// IsNotFound reports whether err describes a missing resource.
func IsNotFound(err error) bool {
	return stderrors.Is(err, ErrNotFound)
}

// Format formats an error message with a consistent "Error: " prefix
func Format(err error) string {
	if err == nil {
		return ""
	}
	if IsRetryable(err) {
		return fmt.Sprintf("Error: %v (temporary failure, try again)", err)
	}
	return fmt.Sprintf("Error: %v", err)
}

// Formatf formats an error message with a consistent "Error: " prefix using a format string
func Formatf(format string, args ...interface{}) string {
	return fmt.Sprintf("Error: "+format, args...)
}

// Fatal logs an error and exits the program with exit code 1
func Fatal(err error) {
	if err != nil {
		logger.Error("Command execution failed", "error", err)
		fmt.Fprintf(os.Stderr, "%s\n", Format(err))
		os.Exit(1)
	}
}
