package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/chefacademy/backend/internal/middlewares"
	"github.com/chefacademy/backend/internal/models"
	"go.uber.org/zap"
)

// BaseHandler provides common handler functionality
type BaseHandler struct {
	Logger *zap.Logger
}

// RespondJSON sends a JSON response
func (h *BaseHandler) RespondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.Logger.Error("failed to encode JSON response", zap.Error(err))
	}
}

// RespondError sends an error JSON response
func (h *BaseHandler) RespondError(w http.ResponseWriter, status int, message string) {
	h.RespondJSON(w, status, map[string]string{"error": message})
}

// RespondServiceError maps a service error onto an HTTP status and logs server-side failures.
//
// Client errors carry the service message; everything unexpected is reported as a generic 500.
func (h *BaseHandler) RespondServiceError(w http.ResponseWriter, r *http.Request, err error, action string) {
	switch {
	case errors.Is(err, models.ErrLearnerNotFound), errors.Is(err, models.ErrLessonNotFound):
		h.RespondError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, models.ErrInvalidArgument):
		h.RespondError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, models.ErrDuplicate):
		h.RespondError(w, http.StatusConflict, err.Error())
	case errors.Is(err, models.ErrWriteConflict):
		h.Logger.Warn(action+" gave up on write conflicts",
			zap.String("request_id", middlewares.GetRequestID(r.Context())), zap.Error(err))
		w.Header().Set("Retry-After", "1")
		h.RespondError(w, http.StatusServiceUnavailable, "concurrent update, please retry")
	default:
		h.Logger.Error("failed to "+action,
			zap.String("request_id", middlewares.GetRequestID(r.Context())), zap.Error(err))
		h.RespondError(w, http.StatusInternalServerError, "failed to "+action)
	}
}

// decodeJSON decodes the request body into dst, rejecting unknown fields
func decodeJSON(r *http.Request, dst any) error {
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	return decoder.Decode(dst)
}

// queryInt parses an optional positive integer query parameter, returning fallback when absent or invalid
func queryInt(r *http.Request, name string, fallback int) int {
	if v := r.URL.Query().Get(name); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return fallback
}
