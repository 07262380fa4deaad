package errors

import (
	"errors"
	"testing"
)

func TestWrapExtractErrorUnwrap(t *testing.T) {
	err := WrapExtractError("Valve", "parse", ErrNoCaseStatement)
	if !errors.Is(err, ErrNoCaseStatement) {
		t.Error("expected errors.Is to see through ExtractError to the sentinel")
	}
}

func TestWrapExtractErrorNil(t *testing.T) {
	if WrapExtractError("Valve", "parse", nil) != nil {
		t.Error("expected a nil cause to produce a nil error")
	}
}

func TestNewFunctionBlockNotFoundError(t *testing.T) {
	err := NewFunctionBlockNotFoundError("Missing")
	if !errors.Is(err, ErrFunctionBlockNotFound) {
		t.Error("expected the constructed error to wrap ErrFunctionBlockNotFound")
	}
	if !IsNotFoundError(err) {
		t.Error("expected IsNotFoundError to recognize it")
	}
}

func TestConfigError(t *testing.T) {
	err := NewConfigError("log_level", errors.New("unknown level"))
	if !errors.Is(err, ErrInvalidConfig) {
		t.Error("expected the config error to wrap ErrInvalidConfig")
	}
}
