package models

import "errors"

var (
	ErrLearnerNotFound = errors.New("learner not found")
	ErrLessonNotFound  = errors.New("lesson not found")
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrDuplicate is returned when a unique key (learner email, lesson id) is already taken
	ErrDuplicate = errors.New("already exists")
	// ErrWriteConflict is returned when the database aborted a write because of a concurrent one.
	// Operations failing with it are safe to retry.
	ErrWriteConflict = errors.New("concurrent write conflict")
)
