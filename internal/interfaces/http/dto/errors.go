package dto

import (
	"net/http"
	"strings"
)

// General error codes
const (
	ErrCodeInternal = "INTERNAL_ERROR"
)

// Input error codes
const (
	// ErrCodeValidation is used when request binding or field validation fails
	ErrCodeValidation = "VALIDATION_ERROR"
	// ErrCodeInvalidInput is used for invalid input data
	ErrCodeInvalidInput = "INVALID_INPUT"
	// ErrCodeInvalidID is used when a path id is not a UUID
	ErrCodeInvalidID = "INVALID_ID"
	// ErrCodeIDMismatch is used when a payload id differs from the path id
	ErrCodeIDMismatch = "ID_MISMATCH"
	// ErrCodeMalformedRequest is used when a login body misses required fields
	ErrCodeMalformedRequest = "MALFORMED_REQUEST"
	// ErrCodeReferenceNotFound is used when a sale names an unknown client or product
	ErrCodeReferenceNotFound = "REFERENCE_NOT_FOUND"
	// ErrCodeRequestTooLarge is used when the body exceeds the configured limit
	ErrCodeRequestTooLarge = "REQUEST_TOO_LARGE"
)

// Authentication error codes
const (
	ErrCodeUnauthorized          = "UNAUTHORIZED"
	ErrCodeInvalidCredentials    = "INVALID_CREDENTIALS"
	ErrCodeTokenMissing          = "TOKEN_MISSING"
	ErrCodeTokenMalformed        = "TOKEN_MALFORMED"
	ErrCodeTokenInvalidSignature = "TOKEN_INVALID_SIGNATURE"
	ErrCodeTokenExpired          = "TOKEN_EXPIRED"
	ErrCodeForbidden             = "FORBIDDEN"
)

// Resource error codes
const (
	ErrCodeNotFound       = "NOT_FOUND"
	ErrCodeAlreadyExists  = "ALREADY_EXISTS"
	ErrCodeReferenceInUse = "REFERENCE_IN_USE"
)

// ErrCodeRateLimited is used when a client exceeds the login rate limit
const ErrCodeRateLimited = "RATE_LIMITED"

// ErrorCodeHTTPStatus maps error codes to HTTP status codes
var ErrorCodeHTTPStatus = map[string]int{
	ErrCodeInternal: http.StatusInternalServerError,

	// Input errors -> 400 Bad Request
	ErrCodeValidation:        http.StatusBadRequest,
	ErrCodeInvalidInput:      http.StatusBadRequest,
	ErrCodeInvalidID:         http.StatusBadRequest,
	ErrCodeIDMismatch:        http.StatusBadRequest,
	ErrCodeMalformedRequest:  http.StatusBadRequest,
	ErrCodeReferenceNotFound: http.StatusBadRequest,
	ErrCodeRequestTooLarge:   http.StatusRequestEntityTooLarge,

	// Auth errors -> 401 Unauthorized
	ErrCodeUnauthorized:          http.StatusUnauthorized,
	ErrCodeInvalidCredentials:    http.StatusUnauthorized,
	ErrCodeTokenMissing:          http.StatusUnauthorized,
	ErrCodeTokenMalformed:        http.StatusUnauthorized,
	ErrCodeTokenInvalidSignature: http.StatusUnauthorized,
	ErrCodeTokenExpired:          http.StatusUnauthorized,
	ErrCodeForbidden:             http.StatusForbidden,

	// Resource errors
	ErrCodeNotFound:       http.StatusNotFound,
	ErrCodeAlreadyExists:  http.StatusConflict,
	ErrCodeReferenceInUse: http.StatusConflict,

	ErrCodeRateLimited: http.StatusTooManyRequests,
}

// GetHTTPStatus returns the HTTP status code for an error code.
// Field-level domain codes (INVALID_NAME, INVALID_PRICE, ...) are 400;
// anything else unknown is 500.
func GetHTTPStatus(code string) int {
	if status, ok := ErrorCodeHTTPStatus[code]; ok {
		return status
	}
	if strings.HasPrefix(code, "INVALID_") {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
