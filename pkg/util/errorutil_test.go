package util

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToDomainError_Passthrough(t *testing.T) {
	t.Parallel()

	original := NewInvalidCredentials()
	mapped := ToDomainError(original)
	assert.Equal(t, "INVALID_CREDENTIALS", mapped.Code)
	assert.Equal(t, http.StatusUnauthorized, mapped.HTTPStatus)

	wrapped := fmt.Errorf("sign-in: %w", original)
	assert.Equal(t, "INVALID_CREDENTIALS", ToDomainError(wrapped).Code)
}

func TestToDomainError_NoRows(t *testing.T) {
	t.Parallel()

	mapped := ToDomainError(pgx.ErrNoRows)
	assert.Equal(t, "NOT_FOUND", mapped.Code)
	assert.Equal(t, http.StatusNotFound, mapped.HTTPStatus)
}

func TestToDomainError_Generic(t *testing.T) {
	t.Parallel()

	mapped := ToDomainError(errors.New("boom"))
	assert.Equal(t, "INTERNAL_ERROR", mapped.Code)
	assert.Equal(t, http.StatusInternalServerError, mapped.HTTPStatus)
	// The wrapped cause stays available for logging.
	require.Error(t, mapped.Unwrap())
}

func TestToDomainError_Nil(t *testing.T) {
	t.Parallel()

	assert.Nil(t, ToDomainError(nil))
}

func TestAuthErrorShapes(t *testing.T) {
	t.Parallel()

	invalid := ToDomainError(NewInvalidCredentials())
	// The message must not say which of email or password was wrong.
	assert.Equal(t, "invalid credentials", invalid.Message)

	dup := ToDomainError(NewDuplicateUser())
	assert.Equal(t, "DUPLICATE_USER", dup.Code)
	assert.Equal(t, http.StatusConflict, dup.HTTPStatus)

	unauth := ToDomainError(NewUnauthorized("authentication required"))
	forbidden := ToDomainError(NewForbidden("admin access required"))
	assert.Equal(t, http.StatusUnauthorized, unauth.HTTPStatus)
	assert.Equal(t, http.StatusForbidden, forbidden.HTTPStatus)
	assert.NotEqual(t, unauth.Code, forbidden.Code)
}
