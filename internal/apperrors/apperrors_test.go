package apperrors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusDerivation(t *testing.T) {
	assert.Equal(t, "fail", New("nope", http.StatusConflict).Status)
	assert.Equal(t, "fail", New("nope", http.StatusBadRequest).Status)
	assert.Equal(t, "error", New("boom", http.StatusInternalServerError).Status)
	assert.Equal(t, "error", New("hop", http.StatusBadGateway).Status)
}

func TestConstructorsCarryDefaults(t *testing.T) {
	cases := []struct {
		err        *AppError
		statusCode int
		message    string
	}{
		{Forbidden(""), http.StatusForbidden, "Forbidden access"},
		{Unauthorized(""), http.StatusUnauthorized, "Unauthorized access"},
		{Validation(""), http.StatusBadRequest, "Validation error"},
		{NotFound(""), http.StatusNotFound, "Resource not found"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.statusCode, tc.err.StatusCode)
		assert.Equal(t, tc.message, tc.err.Message)
		assert.Equal(t, "fail", tc.err.Status)
		assert.True(t, tc.err.Operational)
	}
}

func TestConstructorsKeepCustomMessage(t *testing.T) {
	err := NotFound("Product not found")
	assert.Equal(t, "Product not found", err.Message)
	assert.Equal(t, "Product not found", err.Error())
}

func TestUnwrapsThroughWrapping(t *testing.T) {
	wrapped := fmt.Errorf("update failed: %w", Forbidden(""))

	var appErr *AppError
	require.True(t, errors.As(wrapped, &appErr))
	assert.Equal(t, http.StatusForbidden, appErr.StatusCode)
}
