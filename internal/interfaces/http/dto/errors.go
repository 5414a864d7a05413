package dto

import (
	"net/http"
	"strings"
)

// Error codes returned in the response envelope. The first block mirrors
// the domain error codes; the rest are raised at the HTTP boundary.
const (
	CodeNotFound      = "NOT_FOUND"
	CodeAlreadyExists = "ALREADY_EXISTS"
	CodeInvalidInput  = "INVALID_INPUT"
	CodeUnauthorized  = "UNAUTHORIZED"
	CodeForbidden     = "FORBIDDEN"
	CodeProtected     = "PROTECTED"

	CodeThrottled = "THROTTLED"
	CodeInternal  = "INTERNAL_ERROR"
)

// statusByCode maps application error codes to HTTP status codes
var statusByCode = map[string]int{
	CodeNotFound:      http.StatusNotFound,
	CodeAlreadyExists: http.StatusBadRequest,
	CodeInvalidInput:  http.StatusBadRequest,
	CodeUnauthorized:  http.StatusUnauthorized,
	CodeForbidden:     http.StatusForbidden,
	CodeProtected:     http.StatusConflict,
	CodeThrottled:     http.StatusTooManyRequests,
	CodeInternal:      http.StatusInternalServerError,

	"MENU_ITEM_EXISTS":   http.StatusBadRequest,
	"CATEGORY_EXISTS":    http.StatusBadRequest,
	"CATEGORY_NOT_FOUND": http.StatusBadRequest,
	"USERNAME_TAKEN":     http.StatusBadRequest,
}

// StatusForCode resolves the HTTP status for an error code. Domain
// validation codes all carry the INVALID_ prefix, so any such code maps
// to 400 even without an explicit entry; everything else unrecognized
// falls back to 500.
func StatusForCode(code string) int {
	if status, ok := statusByCode[code]; ok {
		return status
	}
	if strings.HasPrefix(code, "INVALID_") {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
