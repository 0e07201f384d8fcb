package middlewares

import (
	"context"
	"fmt"
	"net"
	"net/http"

	"github.com/sbilibin2017/gw-recipe-accounts/internal/apperrors"
	"github.com/sbilibin2017/gw-recipe-accounts/internal/logger"
)

//go:generate mockgen -source=rate_limit.go -destination=mock_rate_limit.go -package=middlewares

// RateLimiter counts requests per scope and client.
type RateLimiter interface {
	Allow(ctx context.Context, scope, clientID string) (bool, error)
}

// RateLimitMiddleware rejects requests over the limiter's budget with 429.
// Limiter errors let the request through. A nil limiter disables limiting.
func RateLimitMiddleware(limiter RateLimiter, scope string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if limiter == nil {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			client := clientIP(r)

			allowed, err := limiter.Allow(r.Context(), scope, client)
			if err != nil {
				logger.Log.Warnw("rate limiter unavailable, allowing request",
					"scope", scope, "client", client, "error", err)
				next.ServeHTTP(w, r)
				return
			}
			if !allowed {
				logger.Log.Infow("rate limit exceeded", "scope", scope, "client", client)
				writeKnownError(w, fmt.Errorf("%w: too many requests for %s", apperrors.ErrRateLimited, scope))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// clientIP strips the port from RemoteAddr. Forwarding headers are only
// honoured when chi's RealIP middleware is mounted in front.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
