package middleware

import (
	"io"
	"net/http"
)

// LimitAndDrainRequestBody caps the request body at maxBytes for the handler,
// then drains whatever it left unread and closes the body so the connection can be reused.
// A non positive maxBytes leaves the body unbounded.
func LimitAndDrainRequestBody(maxBytes int64) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Body != nil && maxBytes > 0 {
				r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
			}
			next.ServeHTTP(w, r)
			if r.Body != nil {
				_, _ = io.Copy(io.Discard, r.Body)
				_ = r.Body.Close()
			}
		})
	}
}
