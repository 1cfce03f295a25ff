package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/chefacademy/backend/internal/models"
	"github.com/go-sql-driver/mysql"
)

// MySQL server error numbers the repositories translate
const (
	mysqlErrDuplicateEntry  = 1062
	mysqlErrLockWaitTimeout = 1205
	mysqlErrDataTooLong     = 1406
	mysqlErrDeadlock        = 1213
)

// queryer is satisfied by both *sql.DB and *sql.Tx
type queryer interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type learnerRepository struct {
	db *sql.DB
}

// NewLearnerRepository creates a new learner repository
func NewLearnerRepository(db *sql.DB) *learnerRepository {
	return &learnerRepository{
		db: db,
	}
}

// Create inserts a new learner with all watch counters at zero
func (r *learnerRepository) Create(ctx context.Context, learner *models.Learner) error {
	query := `
		INSERT INTO learners (id, username, email, role)
		VALUES (?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query,
		learner.ID,
		learner.Username,
		learner.Email,
		learner.Role,
	)
	if err != nil {
		return fmt.Errorf("failed to create learner: %w", translateError(err))
	}

	return nil
}

// GetByID retrieves a learner account by ID
func (r *learnerRepository) GetByID(ctx context.Context, id string) (*models.Learner, error) {
	query := `
		SELECT id, username, email, role, created_at
		FROM learners
		WHERE id = ?
	`

	var learner models.Learner
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&learner.ID,
		&learner.Username,
		&learner.Email,
		&learner.Role,
		&learner.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrLearnerNotFound
		}
		return nil, fmt.Errorf("failed to query learner: %w", err)
	}

	return &learner, nil
}

// GetAll retrieves a page of learner accounts ordered by creation time
func (r *learnerRepository) GetAll(ctx context.Context, page, count int) ([]models.Learner, error) {
	query := `
		SELECT id, username, email, role, created_at
		FROM learners
		ORDER BY created_at, id
		LIMIT ? OFFSET ?
	`

	rows, err := r.db.QueryContext(ctx, query, count, (page-1)*count)
	if err != nil {
		return nil, fmt.Errorf("failed to query learners: %w", err)
	}
	defer rows.Close()

	learners := []models.Learner{}
	for rows.Next() {
		var learner models.Learner
		if err := rows.Scan(&learner.ID, &learner.Username, &learner.Email, &learner.Role, &learner.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan learner: %w", err)
		}
		learners = append(learners, learner)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return learners, nil
}

// Delete removes a learner account; watched lessons go with it through the foreign key
func (r *learnerRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM learners WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete learner: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return models.ErrLearnerNotFound
	}

	return nil
}

// GetSnapshot reads the learner's counters and watched sets as one consistent point-in-time copy
func (r *learnerRepository) GetSnapshot(ctx context.Context, learnerID string) (*models.LearnerSnapshot, error) {
	tx, err := r.db.BeginTx(ctx, &sql.TxOptions{ReadOnly: true})
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		SELECT kitchen_watched, bakery_watched, butchery_watched, total_watched
		FROM learners
		WHERE id = ?
	`
	snapshot, err := loadSnapshot(ctx, tx, query, learnerID)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return snapshot, nil
}

// AddWatchedLesson credits lessonID to the learner under department d exactly once.
//
// The learner row is locked for the duration of the transaction so that concurrent
// calls for the same learner are serialized. The lesson is inserted into the
// learner's watched set keyed by (learner_id, lesson_id); only when the insert
// changed membership are the department and total counters incremented, in the
// same transaction. The returned bool reports whether anything changed.
func (r *learnerRepository) AddWatchedLesson(ctx context.Context, learnerID, lessonID string, d models.Department) (*models.LearnerSnapshot, bool, error) {
	column, err := counterColumn(d)
	if err != nil {
		return nil, false, err
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, false, fmt.Errorf("failed to begin transaction: %w", translateError(err))
	}
	defer tx.Rollback()

	lockQuery := `
		SELECT kitchen_watched, bakery_watched, butchery_watched, total_watched
		FROM learners
		WHERE id = ?
		FOR UPDATE
	`
	var counters models.WatchCounters
	err = tx.QueryRowContext(ctx, lockQuery, learnerID).Scan(
		&counters.Kitchen,
		&counters.Bakery,
		&counters.Butchery,
		&counters.Total,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, false, models.ErrLearnerNotFound
		}
		return nil, false, fmt.Errorf("failed to lock learner: %w", translateError(err))
	}

	// A duplicate (learner_id, lesson_id) affects 0 rows: the lesson is already
	// in the aggregate set, whichever department it was credited under.
	insertQuery := `
		INSERT INTO learner_watched_lessons (learner_id, lesson_id, department)
		VALUES (?, ?, ?)
		ON DUPLICATE KEY UPDATE learner_id = learner_id
	`
	result, err := tx.ExecContext(ctx, insertQuery, learnerID, lessonID, d)
	if err != nil {
		return nil, false, fmt.Errorf("failed to insert watched lesson: %w", translateError(err))
	}
	inserted, err := result.RowsAffected()
	if err != nil {
		return nil, false, fmt.Errorf("failed to get rows affected: %w", err)
	}

	if inserted == 1 {
		updateQuery := fmt.Sprintf(`
			UPDATE learners
			SET %[1]s = %[1]s + 1, total_watched = total_watched + 1
			WHERE id = ?
		`, column)
		if _, err := tx.ExecContext(ctx, updateQuery, learnerID); err != nil {
			return nil, false, fmt.Errorf("failed to increment watch counters: %w", translateError(err))
		}
		incrementCounter(&counters, d)
	}

	watched, err := loadWatchedLessons(ctx, tx, learnerID)
	if err != nil {
		return nil, false, err
	}

	if err := tx.Commit(); err != nil {
		return nil, false, fmt.Errorf("failed to commit transaction: %w", translateError(err))
	}

	return &models.LearnerSnapshot{
		LearnerID:      learnerID,
		WatchedLessons: watched,
		WatchCounters:  counters,
	}, inserted == 1, nil
}

// loadSnapshot scans the counters returned by counterQuery and the learner's watched sets
func loadSnapshot(ctx context.Context, q queryer, counterQuery, learnerID string) (*models.LearnerSnapshot, error) {
	snapshot := &models.LearnerSnapshot{LearnerID: learnerID}
	err := q.QueryRowContext(ctx, counterQuery, learnerID).Scan(
		&snapshot.WatchCounters.Kitchen,
		&snapshot.WatchCounters.Bakery,
		&snapshot.WatchCounters.Butchery,
		&snapshot.WatchCounters.Total,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrLearnerNotFound
		}
		return nil, fmt.Errorf("failed to query learner counters: %w", err)
	}

	watched, err := loadWatchedLessons(ctx, q, learnerID)
	if err != nil {
		return nil, err
	}
	snapshot.WatchedLessons = watched

	return snapshot, nil
}

// loadWatchedLessons reads the learner's watched set and splits it by department
func loadWatchedLessons(ctx context.Context, q queryer, learnerID string) (models.WatchedLessons, error) {
	query := `
		SELECT lesson_id, department
		FROM learner_watched_lessons
		WHERE learner_id = ?
		ORDER BY watched_at, lesson_id
	`

	watched := models.WatchedLessons{
		Kitchen:  []string{},
		Bakery:   []string{},
		Butchery: []string{},
		All:      []string{},
	}

	rows, err := q.QueryContext(ctx, query, learnerID)
	if err != nil {
		return watched, fmt.Errorf("failed to query watched lessons: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var lessonID string
		var department models.Department
		if err := rows.Scan(&lessonID, &department); err != nil {
			return watched, fmt.Errorf("failed to scan watched lesson: %w", err)
		}
		watched.Add(department, lessonID)
	}

	if err := rows.Err(); err != nil {
		return watched, fmt.Errorf("error iterating rows: %w", err)
	}

	return watched, nil
}

// counterColumn returns the learners column caching the size of department d's watched set
func counterColumn(d models.Department) (string, error) {
	switch d {
	case models.DepartmentKitchen:
		return "kitchen_watched", nil
	case models.DepartmentBakery:
		return "bakery_watched", nil
	case models.DepartmentButchery:
		return "butchery_watched", nil
	default:
		return "", fmt.Errorf("%w: unknown department %q", models.ErrInvalidArgument, d)
	}
}

func incrementCounter(c *models.WatchCounters, d models.Department) {
	switch d {
	case models.DepartmentKitchen:
		c.Kitchen++
	case models.DepartmentBakery:
		c.Bakery++
	case models.DepartmentButchery:
		c.Butchery++
	}
	c.Total++
}

// translateError maps MySQL server errors onto the model error taxonomy
func translateError(err error) error {
	var mysqlErr *mysql.MySQLError
	if !errors.As(err, &mysqlErr) {
		return err
	}

	switch mysqlErr.Number {
	case mysqlErrDuplicateEntry:
		return fmt.Errorf("%w: %w", models.ErrDuplicate, err)
	case mysqlErrDeadlock, mysqlErrLockWaitTimeout:
		return fmt.Errorf("%w: %w", models.ErrWriteConflict, err)
	case mysqlErrDataTooLong:
		return fmt.Errorf("%w: %w", models.ErrInvalidArgument, err)
	}

	return err
}
