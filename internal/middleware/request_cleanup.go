package middleware

import (
	"io"
	"net/http"
)

// DrainAndCloseRequest empties and closes the request body once the
// handler has run. Set-logging clients hammer the same keep-alive
// connection; a half-read body would prevent its reuse.
func DrainAndCloseRequest() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r)
			if r.Body == nil {
				return
			}
			_, _ = io.Copy(io.Discard, r.Body)
			_ = r.Body.Close()
		})
	}
}
