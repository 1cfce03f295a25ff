package middlewares

import (
	"fmt"
	"net/http"
)

// DefaultMaxRequestSize bounds JSON request bodies; watch events and catalog entries are small
const DefaultMaxRequestSize int64 = 64 << 10

// RequestSizeLimitMiddleware caps request bodies at maxRequestSize bytes.
//
// Bodies that declare a larger Content-Length are refused before the handler runs;
// bodies of unknown length fail while being read once they pass the cap.
func RequestSizeLimitMiddleware(maxRequestSize int64) func(http.Handler) http.Handler {
	tooLarge := fmt.Sprintf("request body exceeds %d bytes", maxRequestSize)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Body == nil || r.Body == http.NoBody {
				next.ServeHTTP(w, r)
				return
			}
			if r.ContentLength > maxRequestSize {
				writeError(w, r, http.StatusRequestEntityTooLarge, tooLarge)
				return
			}

			r.Body = http.MaxBytesReader(w, r.Body, maxRequestSize)
			next.ServeHTTP(w, r)
		})
	}
}
