package services

import (
	"context"
	"fmt"

	"github.com/chefacademy/backend/internal/models"
	"github.com/chefacademy/backend/internal/tasks"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// WatchTracker is the interface that wraps the watch-progress tracker operations
type WatchTracker interface {
	// Method RecordWatch credits a learner for a watched lesson, see watchTracker.RecordWatch.
	RecordWatch(ctx context.Context, learnerID, lessonID, departmentLabel string) (*models.WatchResult, error)
	// Method GetSnapshot returns the learner's current watch state.
	GetSnapshot(ctx context.Context, learnerID string) (*models.LearnerSnapshot, error)
	// Method GetProgress returns the learner's percent complete per department.
	GetProgress(ctx context.Context, learnerID string) (*models.ProgressReport, error)
}

// LearnerDirectory is the interface that wraps learner account lookup
type LearnerDirectory interface {
	// Method GetByID retrieves a learner account.
	//
	// If the learner does not exist models.ErrLearnerNotFound is returned together with "nil" value.
	GetByID(ctx context.Context, id string) (*models.Learner, error)
}

// TaskEnqueuer is the interface that wraps asynq task submission. *asynq.Client implements it.
type TaskEnqueuer interface {
	Enqueue(task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

type progressService struct {
	tracker  WatchTracker
	learners LearnerDirectory
	enqueuer TaskEnqueuer
	logger   *zap.Logger
}

// NewProgressService creates the service behind the progress endpoints.
// enqueuer may be nil, in which case no completion notifications are sent.
func NewProgressService(tracker WatchTracker, learners LearnerDirectory, enqueuer TaskEnqueuer, logger *zap.Logger) *progressService {
	return &progressService{
		tracker:  tracker,
		learners: learners,
		enqueuer: enqueuer,
		logger:   logger,
	}
}

// RecordWatch records the watch and, when it completes a department, schedules the
// congratulation email. Notification failures are logged and never fail the recording.
func (s *progressService) RecordWatch(ctx context.Context, learnerID, lessonID, departmentLabel string) (*models.WatchResult, error) {
	result, err := s.tracker.RecordWatch(ctx, learnerID, lessonID, departmentLabel)
	if err != nil {
		return nil, err
	}

	if result.Recorded && s.enqueuer != nil {
		s.notifyIfCompleted(ctx, learnerID, models.NormalizeDepartment(departmentLabel))
	}

	return result, nil
}

// GetSnapshot returns the learner's current watch state
func (s *progressService) GetSnapshot(ctx context.Context, learnerID string) (*models.LearnerSnapshot, error) {
	return s.tracker.GetSnapshot(ctx, learnerID)
}

// GetProgress returns the learner's progress report
func (s *progressService) GetProgress(ctx context.Context, learnerID string) (*models.ProgressReport, error) {
	return s.tracker.GetProgress(ctx, learnerID)
}

func (s *progressService) notifyIfCompleted(ctx context.Context, learnerID string, d models.Department) {
	report, err := s.tracker.GetProgress(ctx, learnerID)
	if err != nil {
		s.logger.Warn("failed to compute progress for completion check",
			zap.String("learner_id", learnerID), zap.Error(err))
		return
	}
	if !report.CertificateEligible[d] {
		return
	}

	if err := s.enqueueCompletion(ctx, learnerID, d); err != nil {
		s.logger.Error("failed to enqueue completion notification",
			zap.String("learner_id", learnerID),
			zap.String("department", string(d)),
			zap.Error(err))
		return
	}

	s.logger.Info("Department completed",
		zap.String("learner_id", learnerID),
		zap.String("department", string(d)))
}

func (s *progressService) enqueueCompletion(ctx context.Context, learnerID string, d models.Department) error {
	learner, err := s.learners.GetByID(ctx, learnerID)
	if err != nil {
		return fmt.Errorf("failed to get learner: %w", err)
	}

	task, err := tasks.NewDepartmentCompletedTask(tasks.DepartmentCompletedPayload{
		LearnerID:  learner.ID,
		Email:      learner.Email,
		Username:   learner.Username,
		Department: d,
	})
	if err != nil {
		return err
	}

	if _, err := s.enqueuer.Enqueue(task); err != nil {
		return fmt.Errorf("failed to enqueue task: %w", err)
	}

	return nil
}
