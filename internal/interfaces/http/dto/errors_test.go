package dto

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetHTTPStatus(t *testing.T) {
	tests := []struct {
		code     string
		expected int
	}{
		{"VALIDATION_ERROR", http.StatusBadRequest},
		{"UNAUTHORIZED", http.StatusUnauthorized},
		{"NOT_FOUND", http.StatusNotFound},
		{"LOT_ALREADY_SOLD", http.StatusConflict},
		{"INGREDIENT_UNAVAILABLE", http.StatusUnprocessableEntity},
		{"CODE_GENERATION_FAILED", http.StatusServiceUnavailable},
		{"STORE_UNAVAILABLE", http.StatusServiceUnavailable},
		{"STORE_WRITE_FAILED", http.StatusServiceUnavailable},
		{"INTERNAL_ERROR", http.StatusInternalServerError},
		{"SOMETHING_UNKNOWN", http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			assert.Equal(t, tt.expected, GetHTTPStatus(tt.code))
		})
	}
}

func TestErrorResponses(t *testing.T) {
	resp := NewErrorResponse("NOT_FOUND", "Lot not found")
	assert.False(t, resp.Success)
	assert.Equal(t, "NOT_FOUND", resp.Error.Code)
	assert.Empty(t, resp.Error.RequestID)

	resp = NewErrorResponseWithRequestID("NOT_FOUND", "Lot not found", "req-1")
	assert.Equal(t, "req-1", resp.Error.RequestID)

	ok := NewSuccessResponse(map[string]string{"id": "123"})
	assert.True(t, ok.Success)
	assert.Nil(t, ok.Error)
}
