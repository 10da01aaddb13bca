package errors

import (
	stderrors "errors"
	"fmt"
	"testing"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "nil error",
			err:      nil,
			expected: "",
		},
		{
			name:     "simple error",
			err:      stderrors.New("something went wrong"),
			expected: "Error: something went wrong",
		},
		{
			name:     "retryable error",
			err:      Upstream("list habits", stderrors.New("database is locked")),
			expected: "Error: list habits: upstream unavailable: database is locked (temporary failure, try again)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := Format(tt.err); result != tt.expected {
				t.Errorf("Format(%v) = %q, want %q", tt.err, result, tt.expected)
			}
		})
	}
}

func TestFormatf(t *testing.T) {
	if got := Formatf("failed to load %s", "habits"); got != "Error: failed to load habits" {
		t.Errorf("Formatf() = %q", got)
	}
}

func TestUpstream(t *testing.T) {
	if Upstream("op", nil) != nil {
		t.Error("Upstream(nil) should be nil")
	}

	cause := stderrors.New("connection refused")
	err := Upstream("read completions", cause)
	if !IsRetryable(err) {
		t.Error("expected upstream error to be retryable")
	}
	if !stderrors.Is(err, cause) {
		t.Error("expected upstream error to wrap its cause")
	}

	wrapped := fmt.Errorf("dashboard: %w", err)
	if !IsRetryable(wrapped) {
		t.Error("expected wrapped upstream error to stay retryable")
	}
	if IsInvalid(wrapped) {
		t.Error("upstream error must not be an input error")
	}
}

func TestInvalid(t *testing.T) {
	err := Invalid("user id %q is not a UUID", "abc")
	if !IsInvalid(err) {
		t.Error("expected input error")
	}
	if IsRetryable(err) {
		t.Error("input errors are not retryable")
	}
	want := `invalid input: user id "abc" is not a UUID`
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestOpError(t *testing.T) {
	err := NotFound("habit", "h-1")
	if !IsNotFound(err) {
		t.Error("expected not found")
	}
	if err.Error() != "find habit h-1: not found" {
		t.Errorf("Error() = %q", err.Error())
	}

	var op *OpError
	if !stderrors.As(err, &op) || op.Resource != "habit" {
		t.Errorf("expected OpError for habit, got %#v", op)
	}

	noID := &OpError{Op: "list", Resource: "users", Err: ErrNotFound}
	if noID.Error() != "list users: not found" {
		t.Errorf("Error() = %q", noID.Error())
	}
}
