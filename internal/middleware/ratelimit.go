package middleware

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"net"
	"net/http"
	"strings"

	"github.com/coolurl/coolurl/internal/ratelimit"
	"github.com/danielgtaylor/huma/v2"
	"go.uber.org/zap"
)

// errNoClientAddress indicates the request carried no usable client address.
var errNoClientAddress = errors.New("no usable client address")

// RateLimiter returns a Huma middleware that admits requests through the
// sliding-window limiter, keyed by a hash of the client address.
//
// A request with no parseable client address fails closed with an internal
// error: an unidentifiable client must not bypass limiting. Endpoints can opt
// out via ratelimit.EndpointConfig in their operation metadata, which the
// click path uses.
func RateLimiter(api huma.API, limiter ratelimit.Limiter, logger *zap.Logger) func(ctx huma.Context, next func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		if cfg := ratelimit.GetEndpointConfig(ctx); cfg != nil && cfg.Disabled {
			next(ctx)

			return
		}

		hash, err := ClientHash(ctx)
		if err != nil {
			logger.Error("client identification failed", zap.Error(err))
			_ = huma.WriteErr(api, ctx, http.StatusInternalServerError, "internal service error")

			return
		}

		if err := limiter.Admit(ctx.Context(), hash); err != nil {
			if errors.Is(err, ratelimit.ErrLimitExceeded) {
				_ = huma.WriteErr(api, ctx, http.StatusTooManyRequests, "too many requests")

				return
			}

			logger.Error("rate limit check failed", zap.Error(err))
			_ = huma.WriteErr(api, ctx, http.StatusInternalServerError, "internal service error")

			return
		}

		next(ctx)
	}
}

// ClientHash derives the rate-limit partition key: a SHA-256 digest of the
// best-available client IP. The raw address never reaches the store.
func ClientHash(ctx huma.Context) (string, error) {
	ip := clientIP(ctx)
	if net.ParseIP(ip) == nil {
		return "", errNoClientAddress
	}

	sum := sha256.Sum256([]byte(ip))

	return hex.EncodeToString(sum[:]), nil
}

// clientIP extracts the client IP from the request, considering proxies.
func clientIP(ctx huma.Context) string {
	if xff := ctx.Header("X-Forwarded-For"); xff != "" {
		// Take the first IP (original client)
		if idx := strings.Index(xff, ","); idx != -1 {
			return strings.TrimSpace(xff[:idx])
		}

		return strings.TrimSpace(xff)
	}

	if xri := ctx.Header("X-Real-IP"); xri != "" {
		return xri
	}

	addr := ctx.RemoteAddr()

	ip, _, err := net.SplitHostPort(addr)
	if err != nil {
		return addr
	}

	return ip
}
