package http

import (
	"context"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/shrutigoyal04/V-Market/internal/auth"
)

type shopkeeperKey struct{}

// RequireAuth validates the bearer token and puts the acting shopkeeper id on
// the request context. Every route behind it can assume an authenticated
// caller.
func RequireAuth(jwtSecret string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			writeError(w, http.StatusUnauthorized, codeUnauthorized, "missing bearer token")
			return
		}

		claims, err := auth.ValidateToken(jwtSecret, token)
		if err != nil {
			writeError(w, http.StatusUnauthorized, codeUnauthorized, "invalid token")
			return
		}

		ctx := context.WithValue(r.Context(), shopkeeperKey{}, claims.ShopkeeperID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// shopkeeperID returns the authenticated caller set by RequireAuth.
func shopkeeperID(r *http.Request) string {
	id, _ := r.Context().Value(shopkeeperKey{}).(string)
	return id
}

// RequestLogger logs basic request details and latency.
func RequestLogger(next http.Handler, logger *zap.Logger) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)

		logger.Info("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", rec.status),
			zap.Duration("duration", time.Since(start)),
		)
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (r *statusRecorder) Flush() {
	if f, ok := r.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}
