package model

import (
	"time"

	"github.com/google/uuid"
)

// Result records one student's marks for one exam. At most one Result
// exists per (exam, student) pair; the results table enforces this with a
// unique index.
type Result struct {
	ID            uuid.UUID `json:"id"`
	ExamID        uuid.UUID `json:"exam_id"`
	StudentID     int       `json:"student_id"`
	MarksObtained int       `json:"marks_obtained"`
	CreatedAt     time.Time `json:"created_at"`
}

// SubmitExamRequest carries a student's answers in question order.
// Answers[i] is graded against Questions[i].
type SubmitExamRequest struct {
	Answers []string `json:"answers" binding:"required"`
}

// SubmissionOutcome is returned to the student after scoring.
type SubmissionOutcome struct {
	Score  int  `json:"score"`
	Total  int  `json:"total"`
	Passed bool `json:"passed"`
}

// PublishResultRequest is the teacher's manual publish/override payload.
type PublishResultRequest struct {
	ExamID    uuid.UUID `json:"exam_id" binding:"required"`
	StudentID int       `json:"student_id" binding:"required"`
	Marks     int       `json:"marks" binding:"min=0"`
}

// ExamResultRow is one leaderboard entry for a teacher's per-exam view,
// with student display fields joined in.
type ExamResultRow struct {
	ResultID      uuid.UUID `json:"result_id"`
	StudentID     int       `json:"student_id"`
	StudentExtID  string    `json:"student_ext_id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	MarksObtained int       `json:"marks_obtained"`
	FullMarks     int       `json:"full_marks"`
	PassMarks     int       `json:"pass_marks"`
	CreatedAt     time.Time `json:"created_at"`
}

// StudentResultRow is one entry in a student's own result history.
// Exam display fields are nullable: the referenced exam may have been
// deleted after the result was recorded.
type StudentResultRow struct {
	ResultID      uuid.UUID  `json:"result_id"`
	ExamID        uuid.UUID  `json:"exam_id"`
	ExamName      *string    `json:"exam_name,omitempty"`
	Subject       *string    `json:"subject,omitempty"`
	Date          *time.Time `json:"date,omitempty"`
	FullMarks     *int       `json:"full_marks,omitempty"`
	PassMarks     *int       `json:"pass_marks,omitempty"`
	MarksObtained int        `json:"marks_obtained"`
	CreatedAt     time.Time  `json:"created_at"`
}
