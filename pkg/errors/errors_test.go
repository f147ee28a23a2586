package errors

import (
	"errors"
	"io/fs"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeInvalidAttribute, "bad token: %s", "fill")

	if err.Code != ErrCodeInvalidAttribute {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeInvalidAttribute)
	}

	if err.Message != "bad token: fill" {
		t.Errorf("Message = %v, want %v", err.Message, "bad token: fill")
	}

	expected := "INVALID_ATTRIBUTE: bad token: fill"
	if err.Error() != expected {
		t.Errorf("Error() = %v, want %v", err.Error(), expected)
	}
}

func TestWrap(t *testing.T) {
	cause := fs.ErrNotExist
	err := Wrap(ErrCodeFileNotFound, cause, "open scene.toml")

	if err.Cause != cause {
		t.Errorf("Cause = %v, want %v", err.Cause, cause)
	}
	if errors.Unwrap(err) != cause {
		t.Errorf("Unwrap() = %v, want %v", errors.Unwrap(err), cause)
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Error("errors.Is(err, fs.ErrNotExist) = false, want true")
	}

	expected := "FILE_NOT_FOUND: open scene.toml: file does not exist"
	if err.Error() != expected {
		t.Errorf("Error() = %q, want %q", err.Error(), expected)
	}
}

func TestIs(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		code     Code
		expected bool
	}{
		{"matching code", New(ErrCodeUnbalancedGroup, "x"), ErrCodeUnbalancedGroup, true},
		{"non-matching code", New(ErrCodeUnbalancedGroup, "x"), ErrCodeFinalized, false},
		{"outermost code wins", Wrap(ErrCodeInvalidScene, New(ErrCodeInvalidAttribute, "inner"), "outer"), ErrCodeInvalidScene, true},
		{"plain error", errors.New("plain"), ErrCodeInvalidFormat, false},
		{"nil error", nil, ErrCodeInvalidFormat, false},
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
		{"Error type", New(ErrCodeFinalized, "done"), ErrCodeFinalized},
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
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{"Error type", New(ErrCodeInvalidScene, "unknown kind %q", "hexagon"), `unknown kind "hexagon"`},
		{"wrapped", Wrap(ErrCodeInvalidScene, errors.New("line 3"), "decode"), "decode: line 3"},
		{"plain error", errors.New("plain error"), "plain error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := UserMessage(tt.err); got != tt.expected {
				t.Errorf("UserMessage() = %q, want %q", got, tt.expected)
			}
		})
	}
}
