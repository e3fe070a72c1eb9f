package model

import (
	"time"

	"github.com/google/uuid"
)

// Note is a saved AI-generated study note belonging to a student.
type Note struct {
	ID        uuid.UUID `json:"id"`
	StudentID int       `json:"student_id"`
	Topic     string    `json:"topic"`
	Subject   string    `json:"subject"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// GenerateNotesRequest asks the text-generation collaborator for study notes.
type GenerateNotesRequest struct {
	Topic   string `json:"topic" binding:"required,min=2,max=200"`
	Subject string `json:"subject" binding:"required,min=2,max=100"`
}

// AskQuestionRequest asks the text-generation collaborator a free-form
// question, optionally with surrounding context (e.g. the note the
// student is reading).
type AskQuestionRequest struct {
	Question string `json:"question" binding:"required,min=2,max=2000"`
	Context  string `json:"context" binding:"omitempty,max=8000"`
}

// SaveNoteRequest persists a generated note for later review.
type SaveNoteRequest struct {
	Topic   string `json:"topic" binding:"required,min=2,max=200"`
	Subject string `json:"subject" binding:"required,min=2,max=100"`
	Content string `json:"content" binding:"required,min=1"`
}
