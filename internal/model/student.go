package model

import "time"

// Student represents a student account.
type Student struct {
	ID           int       `json:"id"`
	StudentID    string    `json:"student_id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	ClassLabel   string    `json:"class_label"`
	Section      string    `json:"section,omitempty"`
	PasswordHash string    `json:"-"`
	ProfileImage *string   `json:"profile_image,omitempty"`
	IsSuspended  bool      `json:"is_suspended"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// CreateStudentRequest is the payload for adding a student.
// If Password is empty the student's external ID is used (roster policy).
type CreateStudentRequest struct {
	StudentID  string `json:"student_id" binding:"required,min=2,max=30"`
	Name       string `json:"name" binding:"required,min=2,max=100"`
	Email      string `json:"email" binding:"required,email,max=255"`
	ClassLabel string `json:"class_label" binding:"required,min=1,max=30"`
	Section    string `json:"section" binding:"omitempty,max=30"`
	Password   string `json:"password" binding:"omitempty,min=4,max=128"`
}

// UpdateStudentRequest is the payload for updating a student.
// Omitted fields are left unchanged.
type UpdateStudentRequest struct {
	Name       string `json:"name" binding:"omitempty,min=2,max=100"`
	Email      string `json:"email" binding:"omitempty,email,max=255"`
	ClassLabel string `json:"class_label" binding:"omitempty,min=1,max=30"`
	Section    string `json:"section" binding:"omitempty,max=30"`
}
