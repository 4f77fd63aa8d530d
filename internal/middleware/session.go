package middleware

import (
	"net/http"

	"Mintopia/internal/cli/session"
)

// WithSession binds st to every request context, so handlers can reach it
// through session.MustFrom.
func WithSession[U any](st *session.Store[U]) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(session.WithStore(r.Context(), st)))
		})
	}
}
