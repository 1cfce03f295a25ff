package middlewares

import (
	"encoding/json"
	"net/http"
)

// errorResponse is the body middlewares answer with when they stop a request
type errorResponse struct {
	Error     string `json:"error"`
	RequestID string `json:"requestId,omitempty"`
}

// writeError writes a JSON error carrying the request ID, so clients can quote it when reporting failures
func writeError(w http.ResponseWriter, r *http.Request, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(errorResponse{
		Error:     message,
		RequestID: GetRequestID(r.Context()),
	})
}
