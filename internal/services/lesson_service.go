package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/chefacademy/backend/internal/models"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// LessonRepository is the interface that wraps methods for lessons table data access
type LessonRepository interface {
	LessonCatalog
	// Method Create inserts a new lesson.
	Create(ctx context.Context, lesson *models.Lesson) error
	// Method GetByID retrieves a lesson by ID.
	//
	// If lesson with such ID does not exist, models.ErrLessonNotFound will be returned together with "nil" value.
	GetByID(ctx context.Context, id string) (*models.Lesson, error)
	// Method GetAll retrieves all lessons.
	//
	// "department" restricts the result to lessons whose label normalizes to it;
	// models.DepartmentUnrecognized disables the filter.
	GetAll(ctx context.Context, department models.Department) ([]models.Lesson, error)
	// Method Delete deletes a lesson.
	//
	// If lesson with such ID does not exist, models.ErrLessonNotFound will be returned.
	Delete(ctx context.Context, id string) error
}

type lessonService struct {
	repo   LessonRepository
	logger *zap.Logger
}

// NewLessonService creates a new lesson catalog service
func NewLessonService(repo LessonRepository, logger *zap.Logger) *lessonService {
	return &lessonService{
		repo:   repo,
		logger: logger,
	}
}

// Create adds a lesson to the catalog.
//
// The department label is stored as entered but must normalize to a canonical department.
func (s *lessonService) Create(ctx context.Context, req *models.CreateLessonRequest) (*models.Lesson, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, fmt.Errorf("%w: title is required", models.ErrInvalidArgument)
	}
	switch req.Kind {
	case models.LessonKindRecipe, models.LessonKindTool, models.LessonKindTheory, models.LessonKindVideo:
	default:
		return nil, fmt.Errorf("%w: invalid kind %q", models.ErrInvalidArgument, req.Kind)
	}
	if !models.NormalizeDepartment(req.Department).IsValid() {
		return nil, fmt.Errorf("%w: unknown department %q", models.ErrInvalidArgument, req.Department)
	}

	lesson := &models.Lesson{
		ID:         uuid.New().String(),
		Title:      title,
		Kind:       req.Kind,
		Department: strings.TrimSpace(req.Department),
	}
	if err := s.repo.Create(ctx, lesson); err != nil {
		return nil, err
	}

	s.logger.Info("Lesson created", zap.String("lesson_id", lesson.ID), zap.String("department", lesson.Department))
	return lesson, nil
}

// GetByID retrieves a lesson
func (s *lessonService) GetByID(ctx context.Context, id string) (*models.Lesson, error) {
	if strings.TrimSpace(id) == "" {
		return nil, fmt.Errorf("%w: lesson id is required", models.ErrInvalidArgument)
	}
	return s.repo.GetByID(ctx, id)
}

// GetAll lists catalog lessons. An empty departmentLabel lists every lesson;
// otherwise the label is normalized and must name a known department.
func (s *lessonService) GetAll(ctx context.Context, departmentLabel string) ([]models.Lesson, error) {
	department := models.DepartmentUnrecognized
	if strings.TrimSpace(departmentLabel) != "" {
		department = models.NormalizeDepartment(departmentLabel)
		if !department.IsValid() {
			return nil, fmt.Errorf("%w: unknown department %q", models.ErrInvalidArgument, departmentLabel)
		}
	}
	return s.repo.GetAll(ctx, department)
}

// Delete removes a lesson from the catalog
func (s *lessonService) Delete(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("%w: lesson id is required", models.ErrInvalidArgument)
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("Lesson deleted", zap.String("lesson_id", id))
	return nil
}

// CountByDepartment returns the number of lessons available per department
func (s *lessonService) CountByDepartment(ctx context.Context) (models.DepartmentTotals, error) {
	return s.repo.CountByDepartment(ctx)
}
