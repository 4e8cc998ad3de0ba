package errors

import (
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppErrorWrapping(t *testing.T) {
	inner := New("connection refused")
	appErr := NewAppError(ErrInternal, "failed to reach database", inner)

	assert.Equal(t, ErrInternal, appErr.Code())
	assert.Equal(t, "failed to reach database: connection refused", appErr.Error())
	assert.ErrorIs(t, appErr, inner)
}

func TestWrapPreservesCode(t *testing.T) {
	notFound := NewAppError(ErrNotFound, "sync log not found", nil)
	wrapped := Wrap(notFound, "status lookup failed")

	var appErr *AppError
	require.ErrorAs(t, wrapped, &appErr)
	assert.Equal(t, ErrNotFound, appErr.Code())
}

func TestWrapPlainErrorDefaultsToInternal(t *testing.T) {
	wrapped := Wrap(New("boom"), "something broke")

	var appErr *AppError
	require.ErrorAs(t, wrapped, &appErr)
	assert.Equal(t, ErrInternal, appErr.Code())
}

func TestToHTTPError(t *testing.T) {
	tests := []struct {
		code       string
		wantStatus int
	}{
		{ErrNotFound, http.StatusNotFound},
		{ErrInvalidArgument, http.StatusBadRequest},
		{ErrUnauthenticated, http.StatusUnauthorized},
		{ErrUnauthorized, http.StatusForbidden},
		{ErrConflict, http.StatusConflict},
		{ErrNotImplemented, http.StatusNotImplemented},
		{ErrInternal, http.StatusInternalServerError},
		{"SOMETHING_UNKNOWN", http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			httpErr := ToHTTPError(NewAppError(tt.code, "msg", nil))
			assert.Equal(t, tt.wantStatus, httpErr.Code)
		})
	}
}

func TestToHTTPErrorPassesThroughEchoErrors(t *testing.T) {
	echoErr := echo.NewHTTPError(http.StatusBadRequest, "bad input")
	assert.Same(t, echoErr, ToHTTPError(echoErr))
}

func TestToHTTPErrorPlainError(t *testing.T) {
	httpErr := ToHTTPError(New("boom"))
	assert.Equal(t, http.StatusInternalServerError, httpErr.Code)
}
