package dto

import "net/http"

// Transport-level error codes. Domain operations surface their own
// codes (NOT_FOUND, LOT_ALREADY_SOLD, ...) unchanged; these cover
// failures that never reach a domain service.
const (
	// ErrCodeInternal is used for internal server errors
	ErrCodeInternal = "INTERNAL_ERROR"
	// ErrCodeBadRequest is used for malformed requests
	ErrCodeBadRequest = "BAD_REQUEST"
	// ErrCodeInvalidJSON is used when body parsing fails
	ErrCodeInvalidJSON = "INVALID_JSON"
	// ErrCodeUnauthorized is used when authentication is required but missing/invalid
	ErrCodeUnauthorized = "UNAUTHORIZED"
	// ErrCodeNotFound is used when a resource is not found
	ErrCodeNotFound = "NOT_FOUND"
	// ErrCodeValidation is used for input validation failures
	ErrCodeValidation = "VALIDATION_ERROR"
)

// ErrorCodeHTTPStatus maps error codes to HTTP status codes
var ErrorCodeHTTPStatus = map[string]int{
	ErrCodeInternal:    http.StatusInternalServerError,
	ErrCodeBadRequest:  http.StatusBadRequest,
	ErrCodeInvalidJSON: http.StatusBadRequest,

	"VALIDATION_ERROR": http.StatusBadRequest,
	"UNAUTHORIZED":     http.StatusUnauthorized,
	"NOT_FOUND":        http.StatusNotFound,

	// A lot can be sold once; the losing writer sees a conflict.
	"LOT_ALREADY_SOLD": http.StatusConflict,

	// Business rule violations -> 422 Unprocessable Entity
	"INGREDIENT_UNAVAILABLE": http.StatusUnprocessableEntity,

	// Store-side failures -> 503 Service Unavailable
	"CODE_GENERATION_FAILED": http.StatusServiceUnavailable,
	"STORE_UNAVAILABLE":      http.StatusServiceUnavailable,
	"STORE_WRITE_FAILED":     http.StatusServiceUnavailable,
}

// GetHTTPStatus returns the HTTP status code for an error code
// Returns 500 Internal Server Error if the error code is not found
func GetHTTPStatus(code string) int {
	if status, ok := ErrorCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}
