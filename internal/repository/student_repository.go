package repository

import (
	"context"
	"strings"

	"github.com/classhub/classhub-backend/internal/model"
	"github.com/jackc/pgx/v5/pgxpool"
)

// StudentRepository handles student data access.
type StudentRepository struct {
	pool *pgxpool.Pool
}

// NewStudentRepository creates a new StudentRepository.
func NewStudentRepository(pool *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{pool: pool}
}

const studentColumns = `id, student_id, name, email, class_label, section,
	password_hash, profile_image, is_suspended, created_at, updated_at`

func scanStudent(row interface{ Scan(...any) error }) (*model.Student, error) {
	s := &model.Student{}
	err := row.Scan(&s.ID, &s.StudentID, &s.Name, &s.Email, &s.ClassLabel, &s.Section,
		&s.PasswordHash, &s.ProfileImage, &s.IsSuspended, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// GetByID retrieves a student by internal ID.
func (r *StudentRepository) GetByID(ctx context.Context, id int) (*model.Student, error) {
	return scanStudent(r.pool.QueryRow(ctx,
		`SELECT `+studentColumns+` FROM students WHERE id = $1`, id))
}

// GetByEmail retrieves a student by email (stored lowercase).
func (r *StudentRepository) GetByEmail(ctx context.Context, email string) (*model.Student, error) {
	return scanStudent(r.pool.QueryRow(ctx,
		`SELECT `+studentColumns+` FROM students WHERE email = $1`, email))
}

// List retrieves students ordered by name, optionally filtered by the
// suspension flag.
func (r *StudentRepository) List(ctx context.Context, suspended *bool) ([]model.Student, error) {
	query := `SELECT ` + studentColumns + ` FROM students`
	var args []any
	if suspended != nil {
		query += ` WHERE is_suspended = $1`
		args = append(args, *suspended)
	}
	query += ` ORDER BY name`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var students []model.Student
	for rows.Next() {
		s, err := scanStudent(rows)
		if err != nil {
			return nil, err
		}
		students = append(students, *s)
	}
	return students, rows.Err()
}

// Create inserts a new student.
func (r *StudentRepository) Create(ctx context.Context, s *model.Student) error {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO students (student_id, name, email, class_label, section, password_hash)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id, created_at, updated_at`,
		s.StudentID, s.Name, s.Email, s.ClassLabel, s.Section, s.PasswordHash,
	).Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)
	return mapStudentConstraint(err)
}

// Update writes a student's mutable fields.
func (r *StudentRepository) Update(ctx context.Context, s *model.Student) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE students
		 SET name = $1, email = $2, class_label = $3, section = $4,
		     profile_image = $5, updated_at = NOW()
		 WHERE id = $6`,
		s.Name, s.Email, s.ClassLabel, s.Section, s.ProfileImage, s.ID)
	return mapStudentConstraint(err)
}

// SetSuspended flips the reversible suspension flag.
func (r *StudentRepository) SetSuspended(ctx context.Context, id int, suspended bool) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE students SET is_suspended = $1, updated_at = NOW() WHERE id = $2`,
		suspended, id)
	return err
}

// Delete removes a student permanently (termination).
func (r *StudentRepository) Delete(ctx context.Context, id int) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM students WHERE id = $1`, id)
	return err
}

func mapStudentConstraint(err error) error {
	switch c := constraintOf(err); {
	case c == "":
		return err
	case strings.Contains(c, "student_id"):
		return ErrDuplicateStudentID
	default:
		return ErrDuplicateEmail
	}
}
