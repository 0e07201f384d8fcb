package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/sbilibin2017/gw-recipe-accounts/internal/apperrors"
	"github.com/sbilibin2017/gw-recipe-accounts/internal/logger"
)

// ErrorResponse is the body of every non-2xx response
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Stable error code
	// default: VALIDATION_ERROR
	Code string `json:"code"`

	// Human-readable detail
	// default: email is required
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Log.Errorw("failed to encode response", "err", err)
	}
}

// writeError reports err with the status and code of its kind.
// Unclassified errors are logged and hidden behind a generic message.
func writeError(w http.ResponseWriter, err error) {
	status := apperrors.HTTPStatus(err)
	code := apperrors.Code(err)

	msg := err.Error()
	if code == apperrors.CodeInternal {
		logger.Log.Errorw("internal server error", "err", err)
		msg = "Internal server error"
	}

	writeJSON(w, status, ErrorResponse{Code: code, Error: msg})
}

// decodeJSON reads the request body into dst. Malformed JSON is a
// validation error and a body over the MaxBytesReader limit is reported as
// apperrors.ErrPayloadTooLarge.
func decodeJSON(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return fmt.Errorf("%w: %v", apperrors.ErrPayloadTooLarge, err)
		}
		return fmt.Errorf("%w: invalid request body", apperrors.ErrValidation)
	}
	return nil
}
