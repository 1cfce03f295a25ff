package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/chefacademy/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memoryStore is an in-memory LearnerStore with the same atomicity as the MySQL one:
// the whole check-add-increment runs under one lock.
type memoryStore struct {
	mu        sync.Mutex
	learners  map[string]*models.LearnerSnapshot
	conflicts int // number of upcoming AddWatchedLesson calls that fail with a write conflict
	err       error
	calls     int
}

func newMemoryStore(learnerIDs ...string) *memoryStore {
	s := &memoryStore{learners: map[string]*models.LearnerSnapshot{}}
	for _, id := range learnerIDs {
		s.learners[id] = &models.LearnerSnapshot{
			LearnerID: id,
			WatchedLessons: models.WatchedLessons{
				Kitchen:  []string{},
				Bakery:   []string{},
				Butchery: []string{},
				All:      []string{},
			},
		}
	}
	return s
}

func (s *memoryStore) GetSnapshot(ctx context.Context, learnerID string) (*models.LearnerSnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	learner, ok := s.learners[learnerID]
	if !ok {
		return nil, models.ErrLearnerNotFound
	}
	return copySnapshot(learner), nil
}

func (s *memoryStore) AddWatchedLesson(ctx context.Context, learnerID, lessonID string, d models.Department) (*models.LearnerSnapshot, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.calls++
	if s.err != nil {
		return nil, false, s.err
	}
	if s.conflicts > 0 {
		s.conflicts--
		return nil, false, fmt.Errorf("deadlock: %w", models.ErrWriteConflict)
	}

	learner, ok := s.learners[learnerID]
	if !ok {
		return nil, false, models.ErrLearnerNotFound
	}
	if learner.HasWatched(d, lessonID) {
		return copySnapshot(learner), false, nil
	}

	learner.WatchedLessons.Add(d, lessonID)
	switch d {
	case models.DepartmentKitchen:
		learner.WatchCounters.Kitchen++
	case models.DepartmentBakery:
		learner.WatchCounters.Bakery++
	case models.DepartmentButchery:
		learner.WatchCounters.Butchery++
	}
	learner.WatchCounters.Total++

	return copySnapshot(learner), true, nil
}

func copySnapshot(s *models.LearnerSnapshot) *models.LearnerSnapshot {
	c := *s
	c.WatchedLessons = models.WatchedLessons{
		Kitchen:  append([]string{}, s.WatchedLessons.Kitchen...),
		Bakery:   append([]string{}, s.WatchedLessons.Bakery...),
		Butchery: append([]string{}, s.WatchedLessons.Butchery...),
		All:      append([]string{}, s.WatchedLessons.All...),
	}
	return &c
}

// mockCatalog is a mock implementation of LessonCatalog
type mockCatalog struct {
	totals models.DepartmentTotals
	err    error
}

func (m *mockCatalog) CountByDepartment(ctx context.Context) (models.DepartmentTotals, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.totals, nil
}

func newTestTracker(store LearnerStore, catalog LessonCatalog) *watchTracker {
	tracker := NewWatchTracker(store, catalog, DefaultMaxRetries)
	tracker.backoff = 0
	return tracker
}

func assertCountersConsistent(t *testing.T, s *models.LearnerSnapshot) {
	t.Helper()
	for _, d := range models.Departments {
		assert.Equal(t, len(s.WatchedLessons.Get(d)), s.WatchCounters.Get(d), string(d))
	}
	assert.Equal(t, s.WatchCounters.Kitchen+s.WatchCounters.Bakery+s.WatchCounters.Butchery, s.WatchCounters.Total)
	assert.Len(t, s.WatchedLessons.All, s.WatchCounters.Total)
}

func TestNewWatchTracker(t *testing.T) {
	store := newMemoryStore()
	catalog := &mockCatalog{}

	tracker := NewWatchTracker(store, catalog, 0)

	assert.NotNil(t, tracker)
	assert.Equal(t, store, tracker.store)
	assert.Equal(t, catalog, tracker.catalog)
	assert.Equal(t, DefaultMaxRetries, tracker.maxRetries)
}

func TestWatchTracker_RecordWatch(t *testing.T) {
	tests := []struct {
		name             string
		learnerID        string
		lessonID         string
		department       string
		store            *memoryStore
		expectedError    error
		expectedCounters models.WatchCounters
		expectedRecorded bool
	}{
		{
			name:             "first watch is recorded",
			learnerID:        "L",
			lessonID:         "lessonA",
			department:       "Hot & Cold Kitchen",
			store:            newMemoryStore("L"),
			expectedCounters: models.WatchCounters{Kitchen: 1, Total: 1},
			expectedRecorded: true,
		},
		{
			name:          "empty department label",
			learnerID:     "L",
			lessonID:      "x",
			department:    "",
			store:         newMemoryStore("L"),
			expectedError: models.ErrInvalidArgument,
		},
		{
			name:          "label that does not normalize",
			learnerID:     "L",
			lessonID:      "x",
			department:    "Pastry Shop",
			store:         newMemoryStore("L"),
			expectedError: models.ErrInvalidArgument,
		},
		{
			name:          "empty lesson id",
			learnerID:     "L",
			lessonID:      " ",
			department:    "Kitchen",
			store:         newMemoryStore("L"),
			expectedError: models.ErrInvalidArgument,
		},
		{
			name:          "empty learner id identifies no learner",
			learnerID:     "",
			lessonID:      "x",
			department:    "Kitchen",
			store:         newMemoryStore("L"),
			expectedError: models.ErrLearnerNotFound,
		},
		{
			name:          "lesson id longer than the limit",
			learnerID:     "L",
			lessonID:      strings.Repeat("a", models.MaxLessonIDLength+1),
			department:    "Kitchen",
			store:         newMemoryStore("L"),
			expectedError: models.ErrInvalidArgument,
		},
		{
			name:             "lesson id at the limit",
			learnerID:        "L",
			lessonID:         strings.Repeat("a", models.MaxLessonIDLength),
			department:       "Bakery",
			store:            newMemoryStore("L"),
			expectedCounters: models.WatchCounters{Bakery: 1, Total: 1},
			expectedRecorded: true,
		},
		{
			name:          "unknown learner",
			learnerID:     "nonexistent-id",
			lessonID:      "x",
			department:    "Kitchen",
			store:         newMemoryStore("L"),
			expectedError: models.ErrLearnerNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tracker := newTestTracker(tt.store, &mockCatalog{})

			result, err := tracker.RecordWatch(context.Background(), tt.learnerID, tt.lessonID, tt.department)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, result)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expectedRecorded, result.Recorded)
			assert.Equal(t, tt.expectedCounters, result.WatchCounters)
			assertCountersConsistent(t, &result.LearnerSnapshot)
		})
	}
}

func TestWatchTracker_RecordWatch_InvalidArgumentNamesField(t *testing.T) {
	tracker := newTestTracker(newMemoryStore("L"), &mockCatalog{})

	_, err := tracker.RecordWatch(context.Background(), "L", "", "Kitchen")
	assert.ErrorContains(t, err, "lessonId")

	_, err = tracker.RecordWatch(context.Background(), "L", "x", "Sommelier")
	assert.ErrorContains(t, err, "unknown department")

	_, err = tracker.RecordWatch(context.Background(), "L", strings.Repeat("x", models.MaxLessonIDLength+1), "Kitchen")
	assert.ErrorContains(t, err, "lessonId")
}

func TestWatchTracker_RecordWatch_LessonIDsAreCaseSensitive(t *testing.T) {
	store := newMemoryStore("L")
	tracker := newTestTracker(store, &mockCatalog{})
	ctx := context.Background()

	for _, lessonID := range []string{"lessonA", "lessona", "lessona "} {
		result, err := tracker.RecordWatch(ctx, "L", lessonID, "Kitchen")
		require.NoError(t, err)
		assert.True(t, result.Recorded, lessonID)
	}

	snapshot, err := tracker.GetSnapshot(ctx, "L")
	require.NoError(t, err)
	assert.Equal(t, models.WatchCounters{Kitchen: 3, Total: 3}, snapshot.WatchCounters)
	assertCountersConsistent(t, snapshot)
}

func TestWatchTracker_GetSnapshot_EmptyLearnerID(t *testing.T) {
	store := newMemoryStore("L")
	tracker := newTestTracker(store, &mockCatalog{})

	_, err := tracker.GetSnapshot(context.Background(), "  ")
	assert.ErrorIs(t, err, models.ErrLearnerNotFound)

	_, err = tracker.GetProgress(context.Background(), "")
	assert.ErrorIs(t, err, models.ErrLearnerNotFound)
}

func TestWatchTracker_RecordWatch_Idempotent(t *testing.T) {
	store := newMemoryStore("L")
	tracker := newTestTracker(store, &mockCatalog{})
	ctx := context.Background()

	first, err := tracker.RecordWatch(ctx, "L", "lessonA", "Hot & Cold Kitchen")
	require.NoError(t, err)
	second, err := tracker.RecordWatch(ctx, "L", "lessonA", "Hot & Cold Kitchen")
	require.NoError(t, err)

	assert.True(t, first.Recorded)
	assert.False(t, second.Recorded)
	assert.Equal(t, first.WatchCounters, second.WatchCounters)
	assert.Equal(t, first.WatchedLessons, second.WatchedLessons)
	assert.Equal(t, models.WatchCounters{Kitchen: 1, Total: 1}, second.WatchCounters)
}

func TestWatchTracker_RecordWatch_DifferentLabelSameDepartment(t *testing.T) {
	tracker := newTestTracker(newMemoryStore("L"), &mockCatalog{})
	ctx := context.Background()

	_, err := tracker.RecordWatch(ctx, "L", "lessonB", "Butchery & Fish")
	require.NoError(t, err)
	result, err := tracker.RecordWatch(ctx, "L", "lessonB", "butchry")
	require.NoError(t, err)
	result, err = tracker.RecordWatch(ctx, "L", "lessonB", "BUTCH")
	require.NoError(t, err)

	assert.False(t, result.Recorded)
	assert.Equal(t, models.WatchCounters{Butchery: 1, Total: 1}, result.WatchCounters)
}

func TestWatchTracker_RecordWatch_ReclassifiedLessonIsNotCountedTwice(t *testing.T) {
	tracker := newTestTracker(newMemoryStore("L"), &mockCatalog{})
	ctx := context.Background()

	_, err := tracker.RecordWatch(ctx, "L", "lessonC", "Kitchen")
	require.NoError(t, err)
	result, err := tracker.RecordWatch(ctx, "L", "lessonC", "Bakery")
	require.NoError(t, err)

	assert.False(t, result.Recorded)
	assert.Equal(t, models.WatchCounters{Kitchen: 1, Total: 1}, result.WatchCounters)
	assert.Empty(t, result.WatchedLessons.Bakery)
}

func TestWatchTracker_RecordWatch_CounterConsistency(t *testing.T) {
	tracker := newTestTracker(newMemoryStore("L"), &mockCatalog{})
	ctx := context.Background()

	events := []struct{ lesson, label string }{
		{"a", "Kitchen"}, {"b", "Bakery & Pastry"}, {"a", "kitchen"}, {"c", "Butchery"},
		{"d", "Hot & Cold Kitchen"}, {"b", "bakery"}, {"e", "Butch"}, {"c", "Kitchen"},
	}
	var last *models.WatchResult
	for _, e := range events {
		result, err := tracker.RecordWatch(ctx, "L", e.lesson, e.label)
		require.NoError(t, err)
		assertCountersConsistent(t, &result.LearnerSnapshot)
		last = result
	}

	assert.Equal(t, models.WatchCounters{Kitchen: 2, Bakery: 1, Butchery: 2, Total: 5}, last.WatchCounters)
}

func TestWatchTracker_RecordWatch_ConcurrentDifferentLessons(t *testing.T) {
	store := newMemoryStore("L")
	tracker := newTestTracker(store, &mockCatalog{})

	const workers = 50
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			label := []string{"Kitchen", "Bakery", "Butchery"}[i%3]
			_, err := tracker.RecordWatch(context.Background(), "L", fmt.Sprintf("lesson-%d", i), label)
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	snapshot, err := tracker.GetSnapshot(context.Background(), "L")
	require.NoError(t, err)
	assert.Equal(t, workers, snapshot.WatchCounters.Total)
	assertCountersConsistent(t, snapshot)
}

func TestWatchTracker_RecordWatch_ConcurrentSameLesson(t *testing.T) {
	store := newMemoryStore("L")
	tracker := newTestTracker(store, &mockCatalog{})

	const workers = 20
	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		recorded int
	)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			result, err := tracker.RecordWatch(context.Background(), "L", "same", "Bakery")
			if assert.NoError(t, err) && result.Recorded {
				mu.Lock()
				recorded++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	snapshot, err := tracker.GetSnapshot(context.Background(), "L")
	require.NoError(t, err)
	assert.Equal(t, 1, recorded)
	assert.Equal(t, models.WatchCounters{Bakery: 1, Total: 1}, snapshot.WatchCounters)
}

func TestWatchTracker_RecordWatch_Retries(t *testing.T) {
	tests := []struct {
		name          string
		conflicts     int
		storeErr      error
		expectedCalls int
		expectedError error
	}{
		{name: "conflict then success", conflicts: 2, expectedCalls: 3},
		{name: "conflicts exhaust retries", conflicts: 5, expectedCalls: DefaultMaxRetries, expectedError: models.ErrWriteConflict},
		{name: "other errors are not retried", storeErr: errors.New("connection refused"), expectedCalls: 1, expectedError: errors.New("connection refused")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newMemoryStore("L")
			store.conflicts = tt.conflicts
			store.err = tt.storeErr
			tracker := newTestTracker(store, &mockCatalog{})

			result, err := tracker.RecordWatch(context.Background(), "L", "lessonA", "Kitchen")

			assert.Equal(t, tt.expectedCalls, store.calls)
			if tt.expectedError != nil {
				require.Error(t, err)
				if errors.Is(tt.expectedError, models.ErrWriteConflict) {
					assert.ErrorIs(t, err, models.ErrWriteConflict)
				}
				assert.Nil(t, result)
				return
			}
			require.NoError(t, err)
			assert.True(t, result.Recorded)
		})
	}
}

func TestWatchTracker_RecordWatch_CanceledDuringRetry(t *testing.T) {
	store := newMemoryStore("L")
	store.conflicts = 10
	tracker := NewWatchTracker(store, &mockCatalog{}, 5)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := tracker.RecordWatch(ctx, "L", "lessonA", "Kitchen")

	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, store.calls)
}

func TestComputeProgress(t *testing.T) {
	tests := []struct {
		name     string
		counters models.WatchCounters
		totals   models.DepartmentTotals
		expected models.DepartmentProgress
	}{
		{
			name:     "partial progress",
			counters: models.WatchCounters{Kitchen: 1, Total: 1},
			totals:   models.DepartmentTotals{models.DepartmentKitchen: 10, models.DepartmentBakery: 5, models.DepartmentButchery: 0},
			expected: models.DepartmentProgress{models.DepartmentKitchen: 10, models.DepartmentBakery: 0, models.DepartmentButchery: 0},
		},
		{
			name:     "rounding",
			counters: models.WatchCounters{Kitchen: 1, Bakery: 2, Butchery: 1, Total: 4},
			totals:   models.DepartmentTotals{models.DepartmentKitchen: 3, models.DepartmentBakery: 3, models.DepartmentButchery: 8},
			expected: models.DepartmentProgress{models.DepartmentKitchen: 33, models.DepartmentBakery: 67, models.DepartmentButchery: 13},
		},
		{
			name:     "complete",
			counters: models.WatchCounters{Kitchen: 10, Total: 10},
			totals:   models.DepartmentTotals{models.DepartmentKitchen: 10},
			expected: models.DepartmentProgress{models.DepartmentKitchen: 100, models.DepartmentBakery: 0, models.DepartmentButchery: 0},
		},
		{
			name:     "clamped when catalog shrinks",
			counters: models.WatchCounters{Kitchen: 10, Total: 10},
			totals:   models.DepartmentTotals{models.DepartmentKitchen: 9},
			expected: models.DepartmentProgress{models.DepartmentKitchen: 100, models.DepartmentBakery: 0, models.DepartmentButchery: 0},
		},
		{
			name:     "zero totals",
			counters: models.WatchCounters{Kitchen: 3, Bakery: 2, Butchery: 1, Total: 6},
			totals:   models.DepartmentTotals{},
			expected: models.DepartmentProgress{models.DepartmentKitchen: 0, models.DepartmentBakery: 0, models.DepartmentButchery: 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snapshot := &models.LearnerSnapshot{WatchCounters: tt.counters}

			progress := ComputeProgress(snapshot, tt.totals)

			assert.Equal(t, tt.expected, progress)
			for d, p := range progress {
				assert.GreaterOrEqual(t, p, 0, string(d))
				assert.LessOrEqual(t, p, 100, string(d))
			}
		})
	}
}

func TestWatchTracker_Scenarios(t *testing.T) {
	ctx := context.Background()

	t.Run("single kitchen lesson", func(t *testing.T) {
		catalog := &mockCatalog{totals: models.DepartmentTotals{
			models.DepartmentKitchen: 10, models.DepartmentBakery: 5, models.DepartmentButchery: 0,
		}}
		tracker := newTestTracker(newMemoryStore("L"), catalog)

		result, err := tracker.RecordWatch(ctx, "L", "lessonA", "Hot & Cold Kitchen")
		require.NoError(t, err)
		assert.Equal(t, models.WatchCounters{Kitchen: 1, Total: 1}, result.WatchCounters)

		result, err = tracker.RecordWatch(ctx, "L", "lessonA", "Hot & Cold Kitchen")
		require.NoError(t, err)
		assert.Equal(t, models.WatchCounters{Kitchen: 1, Total: 1}, result.WatchCounters)

		report, err := tracker.GetProgress(ctx, "L")
		require.NoError(t, err)
		assert.Equal(t, models.DepartmentProgress{
			models.DepartmentKitchen: 10, models.DepartmentBakery: 0, models.DepartmentButchery: 0,
		}, report.Percent)
	})

	t.Run("catalog loses a lesson after completion", func(t *testing.T) {
		catalog := &mockCatalog{totals: models.DepartmentTotals{models.DepartmentKitchen: 10}}
		tracker := newTestTracker(newMemoryStore("L"), catalog)

		for i := 0; i < 10; i++ {
			_, err := tracker.RecordWatch(ctx, "L", fmt.Sprintf("k%d", i), "Kitchen")
			require.NoError(t, err)
		}

		report, err := tracker.GetProgress(ctx, "L")
		require.NoError(t, err)
		assert.Equal(t, 100, report.Percent[models.DepartmentKitchen])
		assert.True(t, report.CertificateEligible[models.DepartmentKitchen])
		assert.False(t, report.CertificateEligible[models.DepartmentBakery])

		catalog.totals = models.DepartmentTotals{models.DepartmentKitchen: 9}
		report, err = tracker.GetProgress(ctx, "L")
		require.NoError(t, err)
		assert.Equal(t, 100, report.Percent[models.DepartmentKitchen])
	})

	t.Run("empty department label", func(t *testing.T) {
		tracker := newTestTracker(newMemoryStore("L"), &mockCatalog{})
		_, err := tracker.RecordWatch(ctx, "L", "x", "")
		assert.ErrorIs(t, err, models.ErrInvalidArgument)
	})

	t.Run("nonexistent learner", func(t *testing.T) {
		tracker := newTestTracker(newMemoryStore("L"), &mockCatalog{})
		_, err := tracker.RecordWatch(ctx, "nonexistent-id", "x", "Kitchen")
		assert.ErrorIs(t, err, models.ErrLearnerNotFound)
	})
}

func TestWatchTracker_GetProgress(t *testing.T) {
	t.Run("unknown learner", func(t *testing.T) {
		tracker := newTestTracker(newMemoryStore(), &mockCatalog{})
		report, err := tracker.GetProgress(context.Background(), "missing")
		assert.ErrorIs(t, err, models.ErrLearnerNotFound)
		assert.Nil(t, report)
	})

	t.Run("catalog error", func(t *testing.T) {
		tracker := newTestTracker(newMemoryStore("L"), &mockCatalog{err: errors.New("catalog down")})
		report, err := tracker.GetProgress(context.Background(), "L")
		assert.Error(t, err)
		assert.Nil(t, report)
	})
}
