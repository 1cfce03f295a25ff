package models

import "time"

// LessonKind represents the type of content a lesson presents
type LessonKind string

const (
	LessonKindRecipe LessonKind = "recipe"
	LessonKindTool   LessonKind = "tool"
	LessonKindTheory LessonKind = "theory"
	LessonKindVideo  LessonKind = "video"
)

// Lesson represents a piece of learnable content in the catalog
type Lesson struct {
	ID    string     `json:"id"`
	Title string     `json:"title"`
	Kind  LessonKind `json:"kind"`
	// Department is the label entered by content authors, see NormalizeDepartment
	Department string    `json:"department"`
	CreatedAt  time.Time `json:"createdAt"`
}

// CreateLessonRequest represents a request to add a lesson to the catalog
type CreateLessonRequest struct {
	Title      string     `json:"title" example:"Knife skills"`
	Kind       LessonKind `json:"kind" example:"video"`
	Department string     `json:"department" example:"Hot & Cold Kitchen"`
}
