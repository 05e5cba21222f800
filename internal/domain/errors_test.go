package domain

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorMessages(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"no quotes yet", NewNotFoundError("quote", 42), "no quote found in community 42"},
		{"field rule", NewValidationError("text", "must not be empty"), "validation failed for text: must not be empty"},
		{"general rule", NewValidationError("", "community id must be positive"), "validation failed: community id must be positive"},
		{"store down", NewUnavailableError("sqlite", "database is locked"), `service "sqlite" unavailable: database is locked`},
		{"store down quietly", NewUnavailableError("redis", ""), `service "redis" unavailable`},
		{
			"wrapped driver error",
			WrapUnavailable("postgres", "apply delta", errors.New("dial tcp: connection refused")),
			`service "postgres" unavailable: apply delta: dial tcp: connection refused`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.EqualError(t, tt.err, tt.want)
		})
	}
}

func TestErrorKinds(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		notFound    bool
		validation  bool
		unavailable bool
	}{
		{name: "nil"},
		{name: "plain", err: errors.New("woof")},
		{name: "not found", err: NewNotFoundError("quote", 1), notFound: true},
		{name: "not found sentinel", err: ErrNotFound, notFound: true},
		{name: "validation", err: NewValidationError("text", "empty"), validation: true},
		{name: "validation with value", err: NewValidationErrorWithValue("dice", "expected NdS", "3x6"), validation: true},
		{name: "unavailable", err: NewUnavailableError("db", "timeout"), unavailable: true},
		{name: "wrapped unavailable", err: WrapUnavailable("redis", "zincrby", errors.New("eof")), unavailable: true},
		{
			name:       "deeply wrapped validation",
			err:        fmt.Errorf("mention: %w", fmt.Errorf("scoring: %w", NewValidationError("magnitude", "too big"))),
			validation: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.notFound, IsNotFound(tt.err), "IsNotFound")
			assert.Equal(t, tt.validation, IsValidation(tt.err), "IsValidation")
			assert.Equal(t, tt.unavailable, IsUnavailable(tt.err), "IsUnavailable")
		})
	}
}

func TestNotFoundError_As(t *testing.T) {
	err := fmt.Errorf("recalling quote: %w", NewNotFoundError("quote", 7))

	var nf *NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, "quote", nf.Entity)
	assert.Equal(t, int64(7), nf.CommunityID)
}

func TestValidationError_As(t *testing.T) {
	err := NewValidationErrorWithValue("dice", "expected NdS", "3x6")

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "dice", ve.Field)
	assert.Equal(t, "expected NdS", ve.Message)
	assert.Equal(t, "3x6", ve.Value)
}

func TestWrapUnavailable(t *testing.T) {
	assert.NoError(t, WrapUnavailable("sqlite", "ping", nil))

	err := fmt.Errorf("applying delta: %w", WrapUnavailable("redis", "get score", context.DeadlineExceeded))

	require.ErrorIs(t, err, ErrUnavailable)
	require.ErrorIs(t, err, context.DeadlineExceeded, "the driver cause stays reachable")

	var ue *UnavailableError
	require.ErrorAs(t, err, &ue)
	assert.Equal(t, "redis", ue.Service)
	assert.Equal(t, "get score: context deadline exceeded", ue.Reason)
}

func TestSentinels_AreDistinct(t *testing.T) {
	all := []error{ErrNotFound, ErrValidation, ErrUnavailable}

	for i, a := range all {
		for j, b := range all {
			if i != j {
				assert.NotErrorIs(t, a, b)
			}
		}
	}
}
