package model

import (
	"time"

	"github.com/google/uuid"
)

// Question is a single multiple-choice question embedded in an exam.
// CorrectAnswer must equal one of Options exactly.
type Question struct {
	QuestionText  string   `json:"question_text"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correct_answer"`
}

// Exam represents an exam entity. Questions are embedded in the exam
// document; there is no separate question store.
type Exam struct {
	ID            uuid.UUID  `json:"id"`
	Name          string     `json:"name"`
	Subject       string     `json:"subject"`
	ClassLabel    string     `json:"class_label"`
	Date          time.Time  `json:"date"`
	FullMarks     int        `json:"full_marks"`
	PassMarks     int        `json:"pass_marks"`
	Questions     []Question `json:"questions"`
	CreatedBy     int        `json:"created_by"`
	CreatedByName string     `json:"created_by_name,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// QuestionView is a question as shown to students. It has no answer field
// at all, so a view can never carry the answer key by construction.
type QuestionView struct {
	QuestionText string   `json:"question_text"`
	Options      []string `json:"options"`
}

// ExamView is an answer-key-redacted exam as distributed to students.
type ExamView struct {
	ID            uuid.UUID      `json:"id"`
	Name          string         `json:"name"`
	Subject       string         `json:"subject"`
	ClassLabel    string         `json:"class_label"`
	Date          time.Time      `json:"date"`
	FullMarks     int            `json:"full_marks"`
	PassMarks     int            `json:"pass_marks"`
	Questions     []QuestionView `json:"questions"`
	CreatedByName string         `json:"created_by_name,omitempty"`
}

// QuestionPayload is a question supplied when creating or updating an exam.
type QuestionPayload struct {
	QuestionText  string   `json:"question_text" binding:"required,min=1,max=2000"`
	Options       []string `json:"options" binding:"required,min=2,dive,required"`
	CorrectAnswer string   `json:"correct_answer" binding:"required"`
}

// CreateExamRequest is the payload for creating a new exam.
type CreateExamRequest struct {
	Name       string            `json:"name" binding:"required,min=1,max=255"`
	Subject    string            `json:"subject" binding:"required,min=1,max=100"`
	ClassLabel string            `json:"class_label" binding:"required,min=1,max=30"`
	Date       time.Time         `json:"date" binding:"required"`
	FullMarks  int               `json:"full_marks" binding:"required,min=1"`
	PassMarks  int               `json:"pass_marks" binding:"min=0,ltefield=FullMarks"`
	Questions  []QuestionPayload `json:"questions" binding:"required,min=1,dive"`
}

// UpdateExamRequest is the payload for partially updating an exam.
// Nil pointers mean "leave unchanged"; a present field replaces the stored
// value, so omitting a field and clearing it are distinguishable.
type UpdateExamRequest struct {
	Name       *string           `json:"name" binding:"omitnil,min=1,max=255"`
	Subject    *string           `json:"subject" binding:"omitnil,min=1,max=100"`
	ClassLabel *string           `json:"class_label" binding:"omitnil,min=1,max=30"`
	Date       *time.Time        `json:"date"`
	FullMarks  *int              `json:"full_marks" binding:"omitnil,min=1"`
	PassMarks  *int              `json:"pass_marks" binding:"omitnil,min=0"`
	Questions  []QuestionPayload `json:"questions" binding:"omitempty,min=1,dive"`
}
