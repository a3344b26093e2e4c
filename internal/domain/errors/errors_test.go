package errors

import (
	"net/http"
	"testing"

	pkgerrors "github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDatabaseExecuteError(t *testing.T) {
	cause := pkgerrors.New("connection reset by peer")
	err := NewDatabaseExecuteError(cause, "failed to create user")

	assert.Equal(t, http.StatusInternalServerError, err.HTTPCode())
	assert.Equal(t, "DATABASE_EXECUTE_FAILED", err.ErrorCode())
	assert.Contains(t, err.Error(), "database execution failed")
	assert.Contains(t, err.Error(), "connection reset by peer")

	// The client message stays opaque; the cause lives in Details for logs.
	assert.Equal(t, "Internal server error", err.Message())
	assert.Equal(t, "failed to create user", err.Details())
}

func TestDatabaseExecuteError_AsAppError(t *testing.T) {
	// Repository layers wrap write failures in this type; the error handler
	// must still recognize it through further wrapping.
	wrapped := pkgerrors.Wrap(NewDatabaseExecuteError(pkgerrors.New("boom"), "failed to update user"), "register")

	var appErr AppError
	require.ErrorAs(t, wrapped, &appErr)
	assert.Equal(t, http.StatusInternalServerError, appErr.HTTPCode())
	assert.Equal(t, "failed to update user", appErr.Details())
}
