package middlewares

import (
	"net/http"
	"runtime/debug"

	"github.com/sbilibin2017/gw-recipe-accounts/internal/apperrors"
	"github.com/sbilibin2017/gw-recipe-accounts/internal/logger"
)

// RecoverMiddleware turns a panic in next into a JSON 500 response.
func RecoverMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}

			logger.Log.Errorw("panic recovered",
				"request_id", RequestIDFromContext(r.Context()),
				"panic", rec,
				"stack", string(debug.Stack()),
			)
			writeError(w, http.StatusInternalServerError, apperrors.CodeInternal, "Internal server error")
		}()

		next.ServeHTTP(w, r)
	})
}
