package services

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/chefacademy/backend/internal/models"
)

// LearnerStore is the interface that wraps the atomic learner progress operations
type LearnerStore interface {
	// Method GetSnapshot reads the learner's watched sets and counters as one consistent copy.
	//
	// "ctx" is the context of the request.
	// "learnerID" is the opaque learner identifier.
	// If the learner does not exist models.ErrLearnerNotFound is returned together with "nil" value.
	GetSnapshot(ctx context.Context, learnerID string) (*models.LearnerSnapshot, error)
	// Method AddWatchedLesson credits "lessonID" under department "d" unless the learner
	// was already credited for it, and increments the department and total counters in the
	// same atomic operation.
	//
	// The returned bool is true when the lesson was added, false when it was already present.
	// models.ErrWriteConflict is returned when the storage aborted the write because of a
	// concurrent one; no partial update is left behind in that case.
	AddWatchedLesson(ctx context.Context, learnerID, lessonID string, d models.Department) (*models.LearnerSnapshot, bool, error)
}

// LessonCatalog is the interface that wraps read access to lesson totals
type LessonCatalog interface {
	// Method CountByDepartment returns the number of lessons currently available per canonical department.
	//
	// Every canonical department is present in the result, with 0 when it has no lessons.
	CountByDepartment(ctx context.Context) (models.DepartmentTotals, error)
}

const (
	// DefaultMaxRetries is the number of attempts RecordWatch makes on write conflicts
	DefaultMaxRetries = 3
	retryBackoff      = 10 * time.Millisecond
)

type watchTracker struct {
	store      LearnerStore
	catalog    LessonCatalog
	maxRetries int
	backoff    time.Duration
}

// NewWatchTracker creates a watch-progress tracker.
// A non-positive maxRetries falls back to DefaultMaxRetries.
func NewWatchTracker(store LearnerStore, catalog LessonCatalog, maxRetries int) *watchTracker {
	if maxRetries <= 0 {
		maxRetries = DefaultMaxRetries
	}
	return &watchTracker{
		store:      store,
		catalog:    catalog,
		maxRetries: maxRetries,
		backoff:    retryBackoff,
	}
}

// RecordWatch credits a learner for watching a lesson in the department named by departmentLabel.
//
// Recording a lesson the learner was already credited for, under any department, changes
// nothing and returns the current snapshot with Recorded set to false.
// Write conflicts are retried up to the configured number of attempts before being returned.
func (t *watchTracker) RecordWatch(ctx context.Context, learnerID, lessonID, departmentLabel string) (*models.WatchResult, error) {
	// A blank ID cannot identify any learner.
	if strings.TrimSpace(learnerID) == "" {
		return nil, models.ErrLearnerNotFound
	}
	if strings.TrimSpace(lessonID) == "" {
		return nil, fmt.Errorf("%w: lessonId is required", models.ErrInvalidArgument)
	}
	if len(lessonID) > models.MaxLessonIDLength {
		return nil, fmt.Errorf("%w: lessonId must be at most %d bytes", models.ErrInvalidArgument, models.MaxLessonIDLength)
	}
	department := models.NormalizeDepartment(departmentLabel)
	if !department.IsValid() {
		return nil, fmt.Errorf("%w: unknown department %q", models.ErrInvalidArgument, departmentLabel)
	}

	var lastErr error
	for attempt := 1; attempt <= t.maxRetries; attempt++ {
		snapshot, recorded, err := t.store.AddWatchedLesson(ctx, learnerID, lessonID, department)
		if err == nil {
			return &models.WatchResult{LearnerSnapshot: *snapshot, Recorded: recorded}, nil
		}
		if !errors.Is(err, models.ErrWriteConflict) {
			return nil, err
		}
		lastErr = err

		if attempt < t.maxRetries {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(time.Duration(attempt) * t.backoff):
			}
		}
	}

	return nil, fmt.Errorf("failed to record watch after %d attempts: %w", t.maxRetries, lastErr)
}

// GetSnapshot returns the learner's current watch state
func (t *watchTracker) GetSnapshot(ctx context.Context, learnerID string) (*models.LearnerSnapshot, error) {
	if strings.TrimSpace(learnerID) == "" {
		return nil, models.ErrLearnerNotFound
	}
	return t.store.GetSnapshot(ctx, learnerID)
}

// GetProgress reads the learner's snapshot and the current catalog totals and derives
// percent complete and certificate eligibility per department
func (t *watchTracker) GetProgress(ctx context.Context, learnerID string) (*models.ProgressReport, error) {
	snapshot, err := t.GetSnapshot(ctx, learnerID)
	if err != nil {
		return nil, err
	}

	totals, err := t.catalog.CountByDepartment(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count lessons: %w", err)
	}

	percent := ComputeProgress(snapshot, totals)
	eligible := make(map[models.Department]bool, len(models.Departments))
	for _, d := range models.Departments {
		eligible[d] = percent[d] == 100
	}

	return &models.ProgressReport{
		Snapshot:            snapshot,
		Totals:              totals,
		Percent:             percent,
		CertificateEligible: eligible,
	}, nil
}

// ComputeProgress returns the integer percent complete of each canonical department.
//
// A department with no available lessons is 0 percent. Learners keep credit for lessons
// removed from the catalog, so the result is clamped to 100.
func ComputeProgress(snapshot *models.LearnerSnapshot, totals models.DepartmentTotals) models.DepartmentProgress {
	progress := make(models.DepartmentProgress, len(models.Departments))
	for _, d := range models.Departments {
		total := totals[d]
		if total <= 0 || snapshot == nil {
			progress[d] = 0
			continue
		}
		watched := snapshot.WatchCounters.Get(d)
		progress[d] = min(100, int(math.Round(100*float64(watched)/float64(total))))
	}
	return progress
}
