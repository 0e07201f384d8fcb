package middlewares

import (
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/gw-recipe-accounts/internal/apperrors"
)

// writeError writes the same {"code","error"} body the handlers use.
func writeError(w http.ResponseWriter, status int, code, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"code": code, "error": msg})
}

func writeKnownError(w http.ResponseWriter, err error) {
	writeError(w, apperrors.HTTPStatus(err), apperrors.Code(err), err.Error())
}
