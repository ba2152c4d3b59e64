package dto

import (
	"net/http"
	"strings"
)

// Common error codes used directly by handlers and middleware.
const (
	ErrCodeBadRequest   = "BAD_REQUEST"
	ErrCodeUnauthorized = "UNAUTHORIZED"
	ErrCodeForbidden    = "FORBIDDEN"
	ErrCodeNotFound     = "NOT_FOUND"
	ErrCodeConflict     = "CONFLICT"
	ErrCodeInternal     = "INTERNAL_ERROR"
	ErrCodeUnavailable  = "UNAVAILABLE"
	ErrCodeRateLimited  = "RATE_LIMITED"
)

// errorCodeHTTPStatus maps domain error codes to HTTP status codes.
// Codes not listed here fall through to status heuristics in GetHTTPStatus.
var errorCodeHTTPStatus = map[string]int{
	ErrCodeBadRequest:     http.StatusBadRequest,
	"INVALID_INPUT":       http.StatusBadRequest,
	"VALIDATION_ERROR":    http.StatusBadRequest,
	ErrCodeUnauthorized:   http.StatusUnauthorized,
	"INVALID_CREDENTIALS": http.StatusUnauthorized,
	"ACCOUNT_INACTIVE":    http.StatusUnauthorized,
	"TOKEN_EXPIRED":       http.StatusUnauthorized,
	"TOKEN_INVALID":       http.StatusUnauthorized,
	"TOKEN_REVOKED":       http.StatusUnauthorized,
	"TOKEN_MAX_REFRESH":   http.StatusUnauthorized,
	ErrCodeForbidden:      http.StatusForbidden,
	ErrCodeNotFound:       http.StatusNotFound,
	ErrCodeConflict:       http.StatusConflict,
	"ALREADY_EXISTS":      http.StatusConflict,
	"INVALID_STATE":       http.StatusUnprocessableEntity,
	"HAS_CHILDREN":        http.StatusUnprocessableEntity,
	"HAS_PRODUCTS":        http.StatusUnprocessableEntity,
	ErrCodeRateLimited:    http.StatusTooManyRequests,
	ErrCodeInternal:       http.StatusInternalServerError,
	ErrCodeUnavailable:    http.StatusServiceUnavailable,
}

// GetHTTPStatus returns the HTTP status code for a domain error code.
// Unknown codes that look like validation failures map to 400,
// anything else maps to 500.
func GetHTTPStatus(code string) int {
	if status, ok := errorCodeHTTPStatus[code]; ok {
		return status
	}
	if strings.HasPrefix(code, "INVALID_") || strings.HasPrefix(code, "MISSING_") {
		return http.StatusBadRequest
	}
	if strings.HasSuffix(code, "_NOT_FOUND") {
		return http.StatusNotFound
	}
	if strings.HasSuffix(code, "_EXISTS") {
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}

// IsClientError reports whether the code maps to a 4xx status.
func IsClientError(code string) bool {
	status := GetHTTPStatus(code)
	return status >= 400 && status < 500
}
