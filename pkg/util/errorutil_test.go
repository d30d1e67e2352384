package util

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/ops-console/internal/workflow"
)

func TestToDomainError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantCode   string
		wantStatus int
	}{
		{
			name:       "invalid transition",
			err:        fmt.Errorf("%w: merchant active -> pending", workflow.ErrInvalidTransition),
			wantCode:   "INVALID_TRANSITION",
			wantStatus: http.StatusConflict,
		},
		{
			name:       "no further transition",
			err:        fmt.Errorf("%w: order is delivered", workflow.ErrNoFurtherTransition),
			wantCode:   "NO_FURTHER_TRANSITION",
			wantStatus: http.StatusConflict,
		},
		{
			name:       "wizard validation",
			err:        fmt.Errorf("%w: missing businessType", workflow.ErrValidation),
			wantCode:   "VALIDATION_FAILED",
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "no rows is not found",
			err:        pgx.ErrNoRows,
			wantCode:   "NOT_FOUND",
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "deadline is collaborator unavailable",
			err:        context.DeadlineExceeded,
			wantCode:   "COLLABORATOR_UNAVAILABLE",
			wantStatus: http.StatusServiceUnavailable,
		},
		{
			name:       "anything else is internal",
			err:        errors.New("boom"),
			wantCode:   "INTERNAL_ERROR",
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			domainErr := ToDomainError(tt.err)
			require.NotNil(t, domainErr)
			assert.Equal(t, tt.wantCode, domainErr.Code)
			assert.Equal(t, tt.wantStatus, domainErr.HTTPStatus)
		})
	}
}

func TestToDomainErrorPassesThrough(t *testing.T) {
	original := NewInvalidCredentials()
	mapped := ToDomainError(original)
	assert.Equal(t, "INVALID_CREDENTIALS", mapped.Code)
	assert.Equal(t, http.StatusUnauthorized, mapped.HTTPStatus)

	// wrapping does not lose the domain error
	wrapped := fmt.Errorf("login: %w", original)
	assert.Equal(t, "INVALID_CREDENTIALS", ToDomainError(wrapped).Code)
}

func TestToDomainErrorNil(t *testing.T) {
	assert.Nil(t, ToDomainError(nil))
}

func TestDomainErrorUnwrap(t *testing.T) {
	cause := errors.New("socket closed")
	err := NewInternalError(cause)
	assert.ErrorIs(t, err, cause)
}
