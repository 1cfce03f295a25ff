package handlers

import (
	"context"
	"net/http"

	"github.com/chefacademy/backend/internal/auth"
	"github.com/chefacademy/backend/internal/models"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// ProgressService is the interface that wraps methods for watch-progress tracking
type ProgressService interface {
	// RecordWatch credits a learner for a watched lesson
	//
	// "ctx" is the context for the request.
	// "learnerID" is the ID of the learner.
	// "lessonID" is the ID of the watched lesson.
	// "departmentLabel" is the department label of the lesson, normalized by the service.
	//
	// Returns the learner snapshot after recording and an error if any.
	RecordWatch(ctx context.Context, learnerID, lessonID, departmentLabel string) (*models.WatchResult, error)
	// GetSnapshot retrieves the watch state of a learner
	//
	// "ctx" is the context for the request.
	// "learnerID" is the ID of the learner.
	//
	// Returns the learner snapshot and an error if any.
	GetSnapshot(ctx context.Context, learnerID string) (*models.LearnerSnapshot, error)
	// GetProgress retrieves percent complete and certificate eligibility per department
	//
	// "ctx" is the context for the request.
	// "learnerID" is the ID of the learner.
	//
	// Returns the progress report and an error if any.
	GetProgress(ctx context.Context, learnerID string) (*models.ProgressReport, error)
}

// ProgressHandler handles HTTP requests for watch progress
type ProgressHandler struct {
	BaseHandler
	service ProgressService
}

// NewProgressHandler creates a new progress handler
func NewProgressHandler(svc ProgressService, logger *zap.Logger) *ProgressHandler {
	return &ProgressHandler{
		service:     svc,
		BaseHandler: BaseHandler{Logger: logger},
	}
}

// RegisterRoutes registers the learner-facing progress routes
func (h *ProgressHandler) RegisterRoutes(r chi.Router, authMiddleware func(http.Handler) http.Handler) {
	r.Route("/progress", func(r chi.Router) {
		r.Use(authMiddleware)
		r.Get("/", h.GetProgress)
		r.Get("/snapshot", h.GetSnapshot)
		r.Post("/watch", h.RecordWatch)
	})
}

// RegisterInternalRoutes registers the service-to-service progress routes
func (h *ProgressHandler) RegisterInternalRoutes(r chi.Router, apiKeyMiddleware func(http.Handler) http.Handler) {
	r.Route("/internal/progress", func(r chi.Router) {
		r.Use(apiKeyMiddleware)
		r.Post("/watch", h.RecordWatchInternal)
	})
}

// RecordWatch handles POST /progress/watch
// @Summary Record a watched lesson
// @Description Credit the authenticated learner for watching a lesson. Repeating the call for the same lesson changes nothing.
// @Tags progress
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.RecordWatchRequest true "Watched lesson"
// @Success 200 {object} models.WatchResult "Learner snapshot after recording"
// @Failure 400 {object} map[string]string "Bad request"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Learner not found"
// @Failure 503 {object} map[string]string "Concurrent update, retry"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /progress/watch [post]
func (h *ProgressHandler) RecordWatch(w http.ResponseWriter, r *http.Request) {
	learnerID, ok := auth.GetLearnerID(r.Context())
	if !ok {
		h.RespondError(w, http.StatusUnauthorized, "learner ID not found in context")
		return
	}

	var req models.RecordWatchRequest
	if err := decodeJSON(r, &req); err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	h.recordWatch(w, r, learnerID, req)
}

// RecordWatchInternal handles POST /internal/progress/watch
// @Summary Record a watched lesson for any learner
// @Description Service-to-service variant of the watch recording, authenticated with an API key.
// @Tags internal
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body models.InternalRecordWatchRequest true "Learner and watched lesson"
// @Success 200 {object} models.WatchResult "Learner snapshot after recording"
// @Failure 400 {object} map[string]string "Bad request"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Learner not found"
// @Failure 503 {object} map[string]string "Concurrent update, retry"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /internal/progress/watch [post]
func (h *ProgressHandler) RecordWatchInternal(w http.ResponseWriter, r *http.Request) {
	var req models.InternalRecordWatchRequest
	if err := decodeJSON(r, &req); err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	h.recordWatch(w, r, req.LearnerID, req.RecordWatchRequest)
}

func (h *ProgressHandler) recordWatch(w http.ResponseWriter, r *http.Request, learnerID string, req models.RecordWatchRequest) {
	result, err := h.service.RecordWatch(r.Context(), learnerID, req.LessonID, req.Department)
	if err != nil {
		h.RespondServiceError(w, r, err, "record watch")
		return
	}

	h.RespondJSON(w, http.StatusOK, result)
}

// GetSnapshot handles GET /progress/snapshot
// @Summary Get watched lessons
// @Description Get the watched lesson sets and counters of the authenticated learner
// @Tags progress
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.LearnerSnapshot
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Learner not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /progress/snapshot [get]
func (h *ProgressHandler) GetSnapshot(w http.ResponseWriter, r *http.Request) {
	learnerID, ok := auth.GetLearnerID(r.Context())
	if !ok {
		h.RespondError(w, http.StatusUnauthorized, "learner ID not found in context")
		return
	}

	snapshot, err := h.service.GetSnapshot(r.Context(), learnerID)
	if err != nil {
		h.RespondServiceError(w, r, err, "get snapshot")
		return
	}

	h.RespondJSON(w, http.StatusOK, snapshot)
}

// GetProgress handles GET /progress
// @Summary Get department progress
// @Description Get percent complete and certificate eligibility per department for the authenticated learner
// @Tags progress
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ProgressReport
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Learner not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /progress [get]
func (h *ProgressHandler) GetProgress(w http.ResponseWriter, r *http.Request) {
	learnerID, ok := auth.GetLearnerID(r.Context())
	if !ok {
		h.RespondError(w, http.StatusUnauthorized, "learner ID not found in context")
		return
	}

	report, err := h.service.GetProgress(r.Context(), learnerID)
	if err != nil {
		h.RespondServiceError(w, r, err, "get progress")
		return
	}

	h.RespondJSON(w, http.StatusOK, report)
}
