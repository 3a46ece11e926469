package sysexits

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrOutOfRange(t *testing.T) {
	assert.Equal(t, "value is out of range", ErrOutOfRange.Error())
	wrapped := fmt.Errorf("parsing status: %w", ErrOutOfRange)
	assert.ErrorIs(t, wrapped, ErrOutOfRange)
}

func TestStatusError_Error(t *testing.T) {
	tests := []struct {
		name string
		se   *StatusError
		want string
	}{
		{"unrecognized code", &StatusError{Code: 79, Exited: true}, "invalid exit code 79"},
		{"negative code", &StatusError{Code: -1, Exited: true}, "invalid exit code -1"},
		{"no code", &StatusError{Code: -1}, "exit code is unknown"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.se.Error())
		})
	}
}

func TestStatusError_ExitCode(t *testing.T) {
	code, ok := (&StatusError{Code: 79, Exited: true}).ExitCode()
	assert.True(t, ok)
	assert.Equal(t, 79, code)

	code, ok = (&StatusError{Code: -1}).ExitCode()
	assert.False(t, ok)
	assert.Equal(t, -1, code)
}

func TestStatusError_As(t *testing.T) {
	err := fmt.Errorf("wait: %w", &StatusError{Code: 79, Exited: true})
	var se *StatusError
	if !errors.As(err, &se) {
		t.Fatalf("errors.As() = false for %v", err)
	}
	assert.Equal(t, 79, se.Code)
}
