package middleware

import (
	"fmt"
	"net"
	"net/http"

	"github.com/sembang-dev/sembang/shared/middleware/ratelimiter"
	"github.com/sembang-dev/sembang/shared/utils"
)

// RateLimit rejects a request with 429 once its identity has spent its tokens.
func RateLimit(rl *ratelimiter.KeyedLimiter, getIdentity func(r *http.Request) (string, error)) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity, err := getIdentity(r)
			if err != nil {
				utils.WriteError(w, err)
				return
			}
			if !rl.Allow(identity) {
				utils.WriteJSON(w, http.StatusTooManyRequests, map[string]string{
					"status":  "fail",
					"message": "rate limit exceeded, try again later",
				})
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// UserIdentity keys by the authenticated user and falls back to the client IP.
func UserIdentity(r *http.Request) (string, error) {
	if user := GetUserFromContext(r); user != nil {
		return user.Id, nil
	}
	ip, err := GetIP(r)
	if err != nil {
		return "", err
	}
	return "ip:" + ip, nil
}

// GetIP extracts the client IP from RemoteAddr. Proxy headers are honoured
// only through chi's RealIP middleware, which rewrites RemoteAddr.
func GetIP(r *http.Request) (string, error) {
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		// Fallback: if RemoteAddr doesn't have port, use it directly
		ip = r.RemoteAddr
	}

	if net.ParseIP(ip) == nil {
		return "", fmt.Errorf("invalid IP address: %s", ip)
	}
	return ip, nil
}
