package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// Sentinel errors surfaced by repositories.
var (
	ErrDuplicateEmail     = errors.New("an account with this email already exists")
	ErrDuplicateTeacherID = errors.New("teacher with this teacher ID already exists")
	ErrDuplicateStudentID = errors.New("student with this student ID already exists")
	ErrDuplicateResult    = errors.New("a result already exists for this exam and student")
)

// uniqueViolation is the PostgreSQL error code for unique constraint violations.
const uniqueViolation = "23505"

// constraintOf returns the violated constraint name if err is a unique
// violation, or "" otherwise.
func constraintOf(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return pgErr.ConstraintName
	}
	return ""
}
