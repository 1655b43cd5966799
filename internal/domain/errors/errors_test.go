package errors

import (
	stderrors "errors"
	"net/http"
	"testing"

	"pixelforge/internal/errors"

	"github.com/stretchr/testify/assert"
)

func TestBaseError_WrapMessageKeepsIdentity(t *testing.T) {
	wrapped := ErrDuplicateEmail.WrapMessage("register failed")

	assert.True(t, errors.Is(wrapped, ErrDuplicateEmail))

	var appErr AppError
	assert.True(t, errors.As(wrapped, &appErr))
	assert.Equal(t, http.StatusConflict, appErr.HTTPCode())
	assert.Equal(t, "DUPLICATE_EMAIL", appErr.ErrorCode())
}

func TestMessageOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"app error", ErrUserNotFound, "User not found"},
		{"wrapped app error", errors.Wrap(ErrUnsupportedPlan, "upgrade"), "Unsupported subscription type"},
		{"infrastructure error", stderrors.New("dial tcp: connection refused"), "fallback"},
		{"database error", NewDatabaseExecuteError(stderrors.New("boom"), "x"), "Database execution failed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MessageOf(tt.err, "fallback"))
		})
	}
}

func TestAsAppError(t *testing.T) {
	appErr, ok := AsAppError(errors.Wrap(ErrInvalidImage.WrapMessage("decode"), "upload"))
	assert.True(t, ok)
	assert.Equal(t, "INVALID_IMAGE", appErr.ErrorCode())

	_, ok = AsAppError(stderrors.New("boom"))
	assert.False(t, ok)
}
