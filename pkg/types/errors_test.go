package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		contains string
	}{
		{
			name: "with message",
			err: &Error{
				Op:      "engine.AddDocument",
				Kind:    ErrInvalidInput,
				Message: "negative document id",
			},
			contains: "engine.AddDocument",
		},
		{
			name: "with underlying error",
			err: &Error{
				Op:   "engine.MatchDocument",
				Kind: ErrNotFound,
				Err:  ErrNotFound,
			},
			contains: "not found",
		},
		{
			name: "kind only",
			err: &Error{
				Op:   "engine.AddDocument",
				Kind: ErrInvalidInput,
			},
			contains: "invalid input",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			assert.NotEmpty(t, msg)
			assert.Contains(t, msg, tt.contains)
		})
	}
}

func TestError_Is(t *testing.T) {
	err := &Error{
		Op:   "engine.MatchDocument",
		Kind: ErrNotFound,
	}

	assert.ErrorIs(t, err, ErrNotFound)
	assert.NotErrorIs(t, err, ErrInvalidInput)
}

func TestError_Unwrap(t *testing.T) {
	inner := ErrInvalidInput
	err := &Error{
		Op:   "engine.AddDocument",
		Kind: ErrInvalidInput,
		Err:  inner,
	}

	assert.Equal(t, inner, errUnwrap(err))
}

func errUnwrap(e *Error) error {
	return e.Unwrap()
}

func TestErrorf(t *testing.T) {
	err := Errorf("engine.AddDocument", ErrInvalidInput, "document %d already indexed", 42)
	require.Error(t, err)

	var e *Error
	require.ErrorAs(t, err, &e)
	assert.Equal(t, "engine.AddDocument", e.Op)
	assert.ErrorIs(t, e, ErrInvalidInput)
}

func TestWrapError(t *testing.T) {
	inner := ErrNotFound
	err := WrapError("engine.MatchDocument", ErrNotFound, inner)

	var e *Error
	require.ErrorAs(t, err, &e)
	assert.Equal(t, inner, e.Err)
}
