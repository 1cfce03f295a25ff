package handlers

import (
	"context"
	"net/http"

	"github.com/chefacademy/backend/internal/models"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// LessonService is the interface that wraps methods for lesson catalog operations
type LessonService interface {
	// Create adds a lesson to the catalog
	//
	// "ctx" is the context for the request.
	// "req" carries the title, kind and department label; the label must normalize to a department.
	//
	// Returns the created lesson and an error if any.
	Create(ctx context.Context, req *models.CreateLessonRequest) (*models.Lesson, error)
	// GetByID retrieves a lesson
	GetByID(ctx context.Context, id string) (*models.Lesson, error)
	// GetAll lists lessons
	//
	// "departmentLabel" optionally restricts the list to one department; empty lists all lessons.
	GetAll(ctx context.Context, departmentLabel string) ([]models.Lesson, error)
	// Delete removes a lesson from the catalog
	Delete(ctx context.Context, id string) error
	// CountByDepartment returns the number of lessons available per department
	CountByDepartment(ctx context.Context) (models.DepartmentTotals, error)
}

// LessonHandler handles HTTP requests for the lesson catalog
type LessonHandler struct {
	BaseHandler
	service LessonService
}

// NewLessonHandler creates a new lesson handler
func NewLessonHandler(svc LessonService, logger *zap.Logger) *LessonHandler {
	return &LessonHandler{
		service:     svc,
		BaseHandler: BaseHandler{Logger: logger},
	}
}

// RegisterRoutes registers the learner-facing catalog route and the admin catalog routes
func (h *LessonHandler) RegisterRoutes(r chi.Router, authMiddleware, adminMiddleware func(http.Handler) http.Handler) {
	r.With(authMiddleware).Get("/lessons/counts", h.CountByDepartment)

	r.Route("/admin/lessons", func(r chi.Router) {
		r.Use(adminMiddleware)
		r.Get("/", h.GetAll)
		r.Post("/", h.Create)
		r.Get("/{id}", h.GetByID)
		r.Delete("/{id}", h.Delete)
	})
}

// CountByDepartment handles GET /lessons/counts
// @Summary Lesson totals per department
// @Tags lessons
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.DepartmentTotals
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /lessons/counts [get]
func (h *LessonHandler) CountByDepartment(w http.ResponseWriter, r *http.Request) {
	totals, err := h.service.CountByDepartment(r.Context())
	if err != nil {
		h.RespondServiceError(w, r, err, "count lessons")
		return
	}

	h.RespondJSON(w, http.StatusOK, totals)
}

// Create handles POST /admin/lessons
// @Summary Create lesson
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.CreateLessonRequest true "Lesson"
// @Success 201 {object} models.Lesson
// @Failure 400 {object} map[string]string "Bad request"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /admin/lessons [post]
func (h *LessonHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateLessonRequest
	if err := decodeJSON(r, &req); err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	lesson, err := h.service.Create(r.Context(), &req)
	if err != nil {
		h.RespondServiceError(w, r, err, "create lesson")
		return
	}

	h.RespondJSON(w, http.StatusCreated, lesson)
}

// GetAll handles GET /admin/lessons
// @Summary List lessons
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param department query string false "Department label, normalized (e.g. Kitchen, bakery, Butchery & Fish)"
// @Success 200 {array} models.Lesson
// @Failure 400 {object} map[string]string "Unknown department"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /admin/lessons [get]
func (h *LessonHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	lessons, err := h.service.GetAll(r.Context(), r.URL.Query().Get("department"))
	if err != nil {
		h.RespondServiceError(w, r, err, "get lessons")
		return
	}

	h.RespondJSON(w, http.StatusOK, lessons)
}

// GetByID handles GET /admin/lessons/{id}
// @Summary Get lesson
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Lesson ID"
// @Success 200 {object} models.Lesson
// @Failure 404 {object} map[string]string "Lesson not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /admin/lessons/{id} [get]
func (h *LessonHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	lesson, err := h.service.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.RespondServiceError(w, r, err, "get lesson")
		return
	}

	h.RespondJSON(w, http.StatusOK, lesson)
}

// Delete handles DELETE /admin/lessons/{id}
// @Summary Delete lesson
// @Description Remove a lesson from the catalog. Learners keep credit for it.
// @Tags admin
// @Security BearerAuth
// @Param id path string true "Lesson ID"
// @Success 204 "No content"
// @Failure 404 {object} map[string]string "Lesson not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /admin/lessons/{id} [delete]
func (h *LessonHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.RespondServiceError(w, r, err, "delete lesson")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
