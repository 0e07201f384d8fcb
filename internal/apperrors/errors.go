package apperrors

import (
	"errors"
	"net/http"
)

// Error kinds shared by repositories, services and handlers.
// Wrap them with fmt.Errorf("%w: ...") and match with errors.Is.
var (
	ErrValidation         = errors.New("validation error")
	ErrConflict           = errors.New("already exists")
	ErrStorageUnavailable = errors.New("storage unavailable")
	ErrProfileWriteFailed = errors.New("student profile write failed")
	ErrDecode             = errors.New("decode error")
	ErrRateLimited        = errors.New("rate limit exceeded")
	ErrPayloadTooLarge    = errors.New("payload too large")
)

// Stable error codes returned to clients.
const (
	CodeValidation         = "VALIDATION_ERROR"
	CodeConflict           = "CONFLICT"
	CodeStorageUnavailable = "STORAGE_UNAVAILABLE"
	CodeProfileWriteFailed = "PROFILE_WRITE_FAILED"
	CodeDecode             = "DECODE_ERROR"
	CodeRateLimited        = "RATE_LIMITED"
	CodePayloadTooLarge    = "PAYLOAD_TOO_LARGE"
	CodeInternal           = "INTERNAL"
)

type kind struct {
	err    error
	code   string
	status int
}

// Checked in order: ErrProfileWriteFailed wraps the underlying storage
// error, so it must win over ErrStorageUnavailable.
var kinds = []kind{
	{ErrValidation, CodeValidation, http.StatusBadRequest},
	{ErrConflict, CodeConflict, http.StatusConflict},
	{ErrProfileWriteFailed, CodeProfileWriteFailed, http.StatusInternalServerError},
	{ErrDecode, CodeDecode, http.StatusInternalServerError},
	{ErrRateLimited, CodeRateLimited, http.StatusTooManyRequests},
	{ErrPayloadTooLarge, CodePayloadTooLarge, http.StatusRequestEntityTooLarge},
	{ErrStorageUnavailable, CodeStorageUnavailable, http.StatusInternalServerError},
}

// Code maps an error to its stable client-facing code.
func Code(err error) string {
	for _, k := range kinds {
		if errors.Is(err, k.err) {
			return k.code
		}
	}
	return CodeInternal
}

// HTTPStatus maps an error to the HTTP status code it is reported with.
func HTTPStatus(err error) int {
	for _, k := range kinds {
		if errors.Is(err, k.err) {
			return k.status
		}
	}
	return http.StatusInternalServerError
}
