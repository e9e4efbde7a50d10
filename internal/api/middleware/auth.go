package middleware

import (
	"context"
	"net/http"
	"strconv"
)

// StaffIDHeader identifies the staff member on protected routes. The API
// gateway terminates the real authentication and forwards the identity in
// this header.
const StaffIDHeader = "X-Staff-ID"

type contextKey string

const staffIDKey contextKey = "staffID"

// Logger logging contract
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Auth requires a valid X-Staff-ID header and puts the staff id into the
// request context.
func Auth(logger Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := r.Header.Get(StaffIDHeader)
			if raw == "" {
				logger.Warn("Auth: missing %s header for %s %s", StaffIDHeader, r.Method, r.URL.Path)
				respondUnauthorized(w)
				return
			}

			staffID, err := strconv.ParseInt(raw, 10, 64)
			if err != nil || staffID <= 0 {
				logger.Warn("Auth: invalid %s header %q for %s %s", StaffIDHeader, raw, r.Method, r.URL.Path)
				respondUnauthorized(w)
				return
			}

			ctx := context.WithValue(r.Context(), staffIDKey, staffID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetStaffID extracts the staff id placed into the context by Auth
func GetStaffID(ctx context.Context) (int64, bool) {
	staffID, ok := ctx.Value(staffIDKey).(int64)
	return staffID, ok
}

func respondUnauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_, _ = w.Write([]byte(`{"code":401,"message":"autentificare necesara"}`))
}
