package services

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/chefacademy/backend/internal/models"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// LearnerRepository is the interface that wraps methods for learners table data access
type LearnerRepository interface {
	// Method Create inserts a new learner with zeroed watch counters.
	//
	// "learner" parameter must carry a generated ID.
	// If the email is already taken models.ErrDuplicate is returned.
	Create(ctx context.Context, learner *models.Learner) error
	// Method GetByID retrieves a learner by ID.
	//
	// If learner with such ID does not exist, models.ErrLearnerNotFound will be returned together with "nil" value.
	GetByID(ctx context.Context, id string) (*models.Learner, error)
	// Method GetAll retrieves a paginated list of learners.
	//
	// "page" parameter is used for pagination, starting at 1.
	// "count" parameter is used for page size.
	GetAll(ctx context.Context, page, count int) ([]models.Learner, error)
	// Method Delete deletes a learner together with their watched lessons.
	//
	// If learner with such ID does not exist, models.ErrLearnerNotFound will be returned.
	Delete(ctx context.Context, id string) error
}

const defaultPageSize = 20

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

type learnerService struct {
	repo   LearnerRepository
	logger *zap.Logger
}

// NewLearnerService creates a new learner administration service
func NewLearnerService(repo LearnerRepository, logger *zap.Logger) *learnerService {
	return &learnerService{
		repo:   repo,
		logger: logger,
	}
}

// Create registers a new learner account and returns it
func (s *learnerService) Create(ctx context.Context, req *models.CreateLearnerRequest) (*models.Learner, error) {
	username := strings.TrimSpace(req.Username)
	email := strings.ToLower(strings.TrimSpace(req.Email))

	if username == "" {
		return nil, fmt.Errorf("%w: username is required", models.ErrInvalidArgument)
	}
	if !emailRegex.MatchString(email) {
		return nil, fmt.Errorf("%w: invalid email", models.ErrInvalidArgument)
	}

	role := req.Role
	if role == 0 {
		role = models.RoleLearner
	}
	if role != models.RoleLearner && role != models.RoleAdmin {
		return nil, fmt.Errorf("%w: invalid role %d", models.ErrInvalidArgument, role)
	}

	learner := &models.Learner{
		ID:       uuid.New().String(),
		Username: username,
		Email:    email,
		Role:     role,
	}
	if err := s.repo.Create(ctx, learner); err != nil {
		return nil, err
	}

	s.logger.Info("Learner created", zap.String("learner_id", learner.ID))
	return learner, nil
}

// GetByID retrieves a learner account
func (s *learnerService) GetByID(ctx context.Context, id string) (*models.Learner, error) {
	if strings.TrimSpace(id) == "" {
		return nil, fmt.Errorf("%w: learner id is required", models.ErrInvalidArgument)
	}
	return s.repo.GetByID(ctx, id)
}

// GetAll retrieves a page of learner accounts, defaulting to the first page of 20
func (s *learnerService) GetAll(ctx context.Context, page, count int) ([]models.Learner, error) {
	if page < 1 {
		page = 1
	}
	if count < 1 {
		count = defaultPageSize
	}
	return s.repo.GetAll(ctx, page, count)
}

// Delete removes a learner account and all of its progress
func (s *learnerService) Delete(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("%w: learner id is required", models.ErrInvalidArgument)
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("Learner deleted", zap.String("learner_id", id))
	return nil
}
