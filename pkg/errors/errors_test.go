package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeInvalidDimension, "front width must be positive, got %g", -1.0)

	if err.Code != ErrCodeInvalidDimension {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeInvalidDimension)
	}

	if err.Message != "front width must be positive, got -1" {
		t.Errorf("Message = %v, want %v", err.Message, "front width must be positive, got -1")
	}

	expected := "INVALID_DIMENSION: front width must be positive, got -1"
	if err.Error() != expected {
		t.Errorf("Error() = %v, want %v", err.Error(), expected)
	}
}

func TestWrap(t *testing.T) {
	cause := errors.New("disk full")
	err := Wrap(ErrCodeExportFailure, cause, "write %s", "out.svg")

	if err.Code != ErrCodeExportFailure {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeExportFailure)
	}

	if err.Cause != cause {
		t.Errorf("Cause = %v, want %v", err.Cause, cause)
	}

	if unwrapped := errors.Unwrap(err); unwrapped != cause {
		t.Errorf("Unwrap() = %v, want %v", unwrapped, cause)
	}

	if !errors.Is(err, cause) {
		t.Error("errors.Is(err, cause) = false, want true")
	}
}

func TestIs(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		code     Code
		expected bool
	}{
		{
			name:     "matching code",
			err:      New(ErrCodeInvalidInput, "test"),
			code:     ErrCodeInvalidInput,
			expected: true,
		},
		{
			name:     "non-matching code",
			err:      New(ErrCodeInvalidInput, "test"),
			code:     ErrCodeExportFailure,
			expected: false,
		},
		{
			name:     "wrapped error",
			err:      Wrap(ErrCodeExportFailure, New(ErrCodeInvalidInput, "inner"), "outer"),
			code:     ErrCodeExportFailure,
			expected: true,
		},
		{
			name:     "fmt wrapped",
			err:      fmt.Errorf("geometry: %w", New(ErrCodeInvalidDimension, "inner")),
			code:     ErrCodeInvalidDimension,
			expected: true,
		},
		{
			name:     "draw length error",
			err:      fmt.Errorf("compute: %w", &DrawLengthError{MaxDraw: 10, MinDraw: 29}),
			code:     ErrCodeInsufficientDraw,
			expected: true,
		},
		{
			name:     "non-Error type",
			err:      errors.New("plain error"),
			code:     ErrCodeInvalidInput,
			expected: false,
		},
		{
			name:     "nil error",
			err:      nil,
			code:     ErrCodeInvalidInput,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Is(tt.err, tt.code); got != tt.expected {
				t.Errorf("Is() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestGetCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected Code
	}{
		{"Error type", New(ErrCodeUnsupportedFormat, "test"), ErrCodeUnsupportedFormat},
		{"draw length", &DrawLengthError{MaxDraw: 1, MinDraw: 2}, ErrCodeInsufficientDraw},
		{"plain error", errors.New("plain"), ""},
		{"nil", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetCode(tt.err); got != tt.expected {
				t.Errorf("GetCode() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestUserMessage(t *testing.T) {
	if got := UserMessage(New(ErrCodeInvalidInput, "bad color %q", "mauve")); got != `bad color "mauve"` {
		t.Errorf("UserMessage() = %q", got)
	}
	if got := UserMessage(errors.New("plain")); got != "plain" {
		t.Errorf("UserMessage() = %q, want plain", got)
	}
}

func TestDrawLengthErrorMessage(t *testing.T) {
	err := &DrawLengthError{MaxDraw: 20, MinDraw: 29}
	msg := err.Error()
	for _, want := range []string{"INSUFFICIENT_DRAW_LENGTH", "20.00mm", "29.00mm"} {
		if !strings.Contains(msg, want) {
			t.Errorf("Error() = %q, missing %q", msg, want)
		}
	}
}
