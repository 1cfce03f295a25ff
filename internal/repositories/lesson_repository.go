package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/chefacademy/backend/internal/models"
)

type lessonRepository struct {
	db *sql.DB
}

// NewLessonRepository creates a new lesson catalog repository
func NewLessonRepository(db *sql.DB) *lessonRepository {
	return &lessonRepository{
		db: db,
	}
}

// Create adds a lesson to the catalog
func (r *lessonRepository) Create(ctx context.Context, lesson *models.Lesson) error {
	query := `
		INSERT INTO lessons (id, title, kind, department)
		VALUES (?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query,
		lesson.ID,
		lesson.Title,
		lesson.Kind,
		lesson.Department,
	)
	if err != nil {
		return fmt.Errorf("failed to create lesson: %w", translateError(err))
	}

	return nil
}

// GetByID retrieves a lesson by ID
func (r *lessonRepository) GetByID(ctx context.Context, id string) (*models.Lesson, error) {
	query := `
		SELECT id, title, kind, department, created_at
		FROM lessons
		WHERE id = ?
	`

	var lesson models.Lesson
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&lesson.ID,
		&lesson.Title,
		&lesson.Kind,
		&lesson.Department,
		&lesson.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrLessonNotFound
		}
		return nil, fmt.Errorf("failed to query lesson: %w", err)
	}

	return &lesson, nil
}

// GetAll retrieves catalog lessons, optionally restricted to one canonical department.
//
// Department labels are free text, so filtering happens after normalization
// rather than in SQL.
func (r *lessonRepository) GetAll(ctx context.Context, department models.Department) ([]models.Lesson, error) {
	query := `
		SELECT id, title, kind, department, created_at
		FROM lessons
		ORDER BY created_at, id
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query lessons: %w", err)
	}
	defer rows.Close()

	lessons := []models.Lesson{}
	for rows.Next() {
		var lesson models.Lesson
		if err := rows.Scan(&lesson.ID, &lesson.Title, &lesson.Kind, &lesson.Department, &lesson.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan lesson: %w", err)
		}
		if department != models.DepartmentUnrecognized && models.NormalizeDepartment(lesson.Department) != department {
			continue
		}
		lessons = append(lessons, lesson)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return lessons, nil
}

// Delete removes a lesson from the catalog. Learners keep credit for it.
func (r *lessonRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM lessons WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete lesson: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return models.ErrLessonNotFound
	}

	return nil
}

// CountByDepartment returns the current number of lessons per canonical department.
// Lessons whose label does not normalize are not counted anywhere.
func (r *lessonRepository) CountByDepartment(ctx context.Context) (models.DepartmentTotals, error) {
	query := `
		SELECT department, COUNT(*)
		FROM lessons
		GROUP BY department
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to count lessons: %w", err)
	}
	defer rows.Close()

	totals := models.DepartmentTotals{}
	for _, d := range models.Departments {
		totals[d] = 0
	}
	for rows.Next() {
		var label string
		var count int
		if err := rows.Scan(&label, &count); err != nil {
			return nil, fmt.Errorf("failed to scan lesson count: %w", err)
		}
		if d := models.NormalizeDepartment(label); d.IsValid() {
			totals[d] += count
		}
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return totals, nil
}
