package repository

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func uniqueErr(constraint string) error {
	return &pgconn.PgError{Code: uniqueViolation, ConstraintName: constraint}
}

func TestConstraintOf(t *testing.T) {
	assert.Equal(t, "results_exam_student_key", constraintOf(uniqueErr("results_exam_student_key")))
	assert.Equal(t, "", constraintOf(nil))
	assert.Equal(t, "", constraintOf(errors.New("plain error")))
	assert.Equal(t, "", constraintOf(&pgconn.PgError{Code: "23503", ConstraintName: "some_fk"}))
}

func TestConstraintOfUnwraps(t *testing.T) {
	wrapped := fmt.Errorf("insert: %w", uniqueErr("teachers_email_key"))
	assert.Equal(t, "teachers_email_key", constraintOf(wrapped))
}

func TestMapTeacherConstraint(t *testing.T) {
	assert.ErrorIs(t, mapTeacherConstraint(uniqueErr("teachers_teacher_id_key")), ErrDuplicateTeacherID)
	assert.ErrorIs(t, mapTeacherConstraint(uniqueErr("teachers_email_key")), ErrDuplicateEmail)
	assert.NoError(t, mapTeacherConstraint(nil))

	plain := errors.New("connection reset")
	assert.Equal(t, plain, mapTeacherConstraint(plain))
}

func TestMapStudentConstraint(t *testing.T) {
	assert.ErrorIs(t, mapStudentConstraint(uniqueErr("students_student_id_key")), ErrDuplicateStudentID)
	assert.ErrorIs(t, mapStudentConstraint(uniqueErr("students_email_key")), ErrDuplicateEmail)
	assert.NoError(t, mapStudentConstraint(nil))
}
