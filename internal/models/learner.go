package models

import (
	"slices"
	"time"
)

// Role represents the access level of a learner account
type Role int

const (
	RoleLearner Role = 1
	RoleAdmin   Role = 2
)

// Learner represents a registered user of the academy
type Learner struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

// CreateLearnerRequest represents a request to create a learner account
type CreateLearnerRequest struct {
	Username string `json:"username" example:"gordon"`
	Email    string `json:"email" example:"gordon@example.com"`
	Role     Role   `json:"role,omitempty" example:"1"`
}

// WatchCounters holds the number of distinct lessons watched per department
type WatchCounters struct {
	Kitchen  int `json:"kitchen"`
	Bakery   int `json:"bakery"`
	Butchery int `json:"butchery"`
	Total    int `json:"total"`
}

// Get returns the counter of the given department, 0 for unrecognized ones
func (c WatchCounters) Get(d Department) int {
	switch d {
	case DepartmentKitchen:
		return c.Kitchen
	case DepartmentBakery:
		return c.Bakery
	case DepartmentButchery:
		return c.Butchery
	}
	return 0
}

// WatchedLessons holds lesson IDs a learner has been credited for, per department and in aggregate
type WatchedLessons struct {
	Kitchen  []string `json:"kitchen"`
	Bakery   []string `json:"bakery"`
	Butchery []string `json:"butchery"`
	All      []string `json:"all"`
}

// Get returns the watched set of the given department
func (w WatchedLessons) Get(d Department) []string {
	switch d {
	case DepartmentKitchen:
		return w.Kitchen
	case DepartmentBakery:
		return w.Bakery
	case DepartmentButchery:
		return w.Butchery
	}
	return nil
}

// Add appends lessonID to the set of department d and to the aggregate set
func (w *WatchedLessons) Add(d Department, lessonID string) {
	switch d {
	case DepartmentKitchen:
		w.Kitchen = append(w.Kitchen, lessonID)
	case DepartmentBakery:
		w.Bakery = append(w.Bakery, lessonID)
	case DepartmentButchery:
		w.Butchery = append(w.Butchery, lessonID)
	default:
		return
	}
	w.All = append(w.All, lessonID)
}

// LearnerSnapshot is a read-only point-in-time copy of a learner's watch state
type LearnerSnapshot struct {
	LearnerID      string         `json:"learnerId"`
	WatchedLessons WatchedLessons `json:"watchedLessons"`
	WatchCounters  WatchCounters  `json:"watchCounters"`
}

// HasWatched reports whether lessonID is already credited in department d or in the aggregate set
func (s *LearnerSnapshot) HasWatched(d Department, lessonID string) bool {
	return slices.Contains(s.WatchedLessons.Get(d), lessonID) || slices.Contains(s.WatchedLessons.All, lessonID)
}

// MaxLessonIDLength is the longest lesson ID, in bytes, a learner can be credited for.
// Lesson IDs are compared byte for byte.
const MaxLessonIDLength = 64

// RecordWatchRequest represents a lesson completion event sent by a client
type RecordWatchRequest struct {
	LessonID   string `json:"lessonId" example:"5f1c0e1a-0a54-4a4a-9d8e-3c1a0f5e2b11"`
	Department string `json:"department" example:"Hot & Cold Kitchen"`
}

// InternalRecordWatchRequest represents a lesson completion event forwarded by another service
type InternalRecordWatchRequest struct {
	LearnerID string `json:"learnerId"`
	RecordWatchRequest
}

// WatchResult is returned after a completion event was processed
type WatchResult struct {
	LearnerSnapshot
	// Recorded is false when the lesson had already been credited and nothing changed
	Recorded bool `json:"recorded"`
}
