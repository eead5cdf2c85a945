package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{name: "validation", err: NewErrCannotFollowSelf(), want: KindValidation},
		{name: "wrapped not found", err: fmt.Errorf("follow: %w", NewErrNotFollowing()), want: KindNotFound},
		{name: "conflict", err: NewErrAlreadyFollowing(), want: KindConflict},
		{name: "unauthorized", err: NewErrInvalidCredentials(), want: KindUnauthorized},
		{name: "plain error", err: errors.New("boom"), want: KindInternal},
		{name: "nil", err: nil, want: KindInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, KindOf(tt.err))
		})
	}
}

func TestKind_HTTPStatus(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, KindValidation.HTTPStatus())
	assert.Equal(t, http.StatusNotFound, KindNotFound.HTTPStatus())
	assert.Equal(t, http.StatusConflict, KindConflict.HTTPStatus())
	assert.Equal(t, http.StatusUnauthorized, KindUnauthorized.HTTPStatus())
	assert.Equal(t, http.StatusTooManyRequests, KindRateLimited.HTTPStatus())
	assert.Equal(t, http.StatusInternalServerError, KindInternal.HTTPStatus())
	assert.Equal(t, "rate_limited", NewErrTooManyRequests().Kind.String())
}

func TestNewErrInternalServerError_HidesCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := NewErrInternalServerError(cause)

	assert.NotContains(t, err.Message, "connection refused")
	assert.ErrorIs(t, err, cause)

	apiErr, ok := As(fmt.Errorf("wrapped: %w", err))
	require.True(t, ok)
	assert.Equal(t, CodeInternal, apiErr.Code)
}

func TestAPIError_Error(t *testing.T) {
	err := NewErrInvalidLimit(100)
	assert.Equal(t, "[INVALID_PAGINATION] Limit must be between 1 and 100", err.Error())
}
