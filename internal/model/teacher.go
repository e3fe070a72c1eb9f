package model

import "time"

// Teacher represents a teacher account.
type Teacher struct {
	ID           int       `json:"id"`
	TeacherID    string    `json:"teacher_id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Subject      string    `json:"subject"`
	ClassLabel   string    `json:"class_label"`
	PasswordHash string    `json:"-"`
	ProfileImage *string   `json:"profile_image,omitempty"`
	IsSuspended  bool      `json:"is_suspended"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// CreateTeacherRequest is the payload for adding a teacher.
// The initial password is the teacher's external ID (roster policy).
type CreateTeacherRequest struct {
	TeacherID  string `json:"teacher_id" binding:"required,min=2,max=30"`
	Name       string `json:"name" binding:"required,min=2,max=100"`
	Email      string `json:"email" binding:"required,email,max=255"`
	Subject    string `json:"subject" binding:"required,min=1,max=100"`
	ClassLabel string `json:"class_label" binding:"omitempty,max=30"`
}

// UpdateTeacherRequest is the payload for updating a teacher.
// Omitted fields are left unchanged.
type UpdateTeacherRequest struct {
	Name       string `json:"name" binding:"omitempty,min=2,max=100"`
	Email      string `json:"email" binding:"omitempty,email,max=255"`
	Subject    string `json:"subject" binding:"omitempty,min=1,max=100"`
	ClassLabel string `json:"class_label" binding:"omitempty,max=30"`
}
