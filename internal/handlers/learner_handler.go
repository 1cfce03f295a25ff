package handlers

import (
	"context"
	"net/http"

	"github.com/chefacademy/backend/internal/models"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// LearnerService is the interface that wraps methods for learner account administration
type LearnerService interface {
	// Create registers a new learner account with zeroed progress
	//
	// "ctx" is the context for the request.
	// "req" carries the username, email and optional role.
	//
	// Returns the created learner and an error if any.
	Create(ctx context.Context, req *models.CreateLearnerRequest) (*models.Learner, error)
	// GetByID retrieves a learner account
	GetByID(ctx context.Context, id string) (*models.Learner, error)
	// GetAll retrieves a page of learner accounts
	//
	// "page" is the page number to retrieve.
	// "count" is the number of items per page.
	GetAll(ctx context.Context, page, count int) ([]models.Learner, error)
	// Delete removes a learner account and its progress
	Delete(ctx context.Context, id string) error
}

// ProgressReader is the interface that wraps read access to learner progress
type ProgressReader interface {
	// GetProgress retrieves percent complete and certificate eligibility per department
	GetProgress(ctx context.Context, learnerID string) (*models.ProgressReport, error)
}

// AdminLearnerHandler handles HTTP requests for learner administration
type AdminLearnerHandler struct {
	BaseHandler
	service  LearnerService
	progress ProgressReader
}

// NewAdminLearnerHandler creates a new admin learner handler
func NewAdminLearnerHandler(svc LearnerService, progress ProgressReader, logger *zap.Logger) *AdminLearnerHandler {
	return &AdminLearnerHandler{
		service:     svc,
		progress:    progress,
		BaseHandler: BaseHandler{Logger: logger},
	}
}

// RegisterRoutes registers all admin learner routes
func (h *AdminLearnerHandler) RegisterRoutes(r chi.Router, adminMiddleware func(http.Handler) http.Handler) {
	r.Route("/admin/learners", func(r chi.Router) {
		r.Use(adminMiddleware)
		r.Get("/", h.GetAll)
		r.Post("/", h.Create)
		r.Get("/{id}", h.GetByID)
		r.Get("/{id}/progress", h.GetProgress)
		r.Delete("/{id}", h.Delete)
	})
}

// Create handles POST /admin/learners
// @Summary Create learner
// @Description Create a learner account with empty watch progress
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.CreateLearnerRequest true "Learner account"
// @Success 201 {object} models.Learner
// @Failure 400 {object} map[string]string "Bad request"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 409 {object} map[string]string "Email already taken"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /admin/learners [post]
func (h *AdminLearnerHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateLearnerRequest
	if err := decodeJSON(r, &req); err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	learner, err := h.service.Create(r.Context(), &req)
	if err != nil {
		h.RespondServiceError(w, r, err, "create learner")
		return
	}

	h.RespondJSON(w, http.StatusCreated, learner)
}

// GetAll handles GET /admin/learners
// @Summary List learners
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number (default: 1)"
// @Param count query int false "Items per page (default: 20)"
// @Success 200 {array} models.Learner
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /admin/learners [get]
func (h *AdminLearnerHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	learners, err := h.service.GetAll(r.Context(), queryInt(r, "page", 1), queryInt(r, "count", 20))
	if err != nil {
		h.RespondServiceError(w, r, err, "get learners")
		return
	}

	h.RespondJSON(w, http.StatusOK, learners)
}

// GetByID handles GET /admin/learners/{id}
// @Summary Get learner
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Learner ID"
// @Success 200 {object} models.Learner
// @Failure 404 {object} map[string]string "Learner not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /admin/learners/{id} [get]
func (h *AdminLearnerHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	learner, err := h.service.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.RespondServiceError(w, r, err, "get learner")
		return
	}

	h.RespondJSON(w, http.StatusOK, learner)
}

// GetProgress handles GET /admin/learners/{id}/progress
// @Summary Get learner progress
// @Description Get percent complete and certificate eligibility per department for any learner
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Learner ID"
// @Success 200 {object} models.ProgressReport
// @Failure 404 {object} map[string]string "Learner not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /admin/learners/{id}/progress [get]
func (h *AdminLearnerHandler) GetProgress(w http.ResponseWriter, r *http.Request) {
	report, err := h.progress.GetProgress(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.RespondServiceError(w, r, err, "get progress")
		return
	}

	h.RespondJSON(w, http.StatusOK, report)
}

// Delete handles DELETE /admin/learners/{id}
// @Summary Delete learner
// @Description Delete a learner account together with its watch progress
// @Tags admin
// @Security BearerAuth
// @Param id path string true "Learner ID"
// @Success 204 "No content"
// @Failure 404 {object} map[string]string "Learner not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /admin/learners/{id} [delete]
func (h *AdminLearnerHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.RespondServiceError(w, r, err, "delete learner")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
