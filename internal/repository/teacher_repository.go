package repository

import (
	"context"
	"strings"

	"github.com/classhub/classhub-backend/internal/model"
	"github.com/jackc/pgx/v5/pgxpool"
)

// TeacherRepository handles teacher data access.
type TeacherRepository struct {
	pool *pgxpool.Pool
}

// NewTeacherRepository creates a new TeacherRepository.
func NewTeacherRepository(pool *pgxpool.Pool) *TeacherRepository {
	return &TeacherRepository{pool: pool}
}

const teacherColumns = `id, teacher_id, name, email, subject, class_label,
	password_hash, profile_image, is_suspended, created_at, updated_at`

func scanTeacher(row interface{ Scan(...any) error }) (*model.Teacher, error) {
	t := &model.Teacher{}
	err := row.Scan(&t.ID, &t.TeacherID, &t.Name, &t.Email, &t.Subject, &t.ClassLabel,
		&t.PasswordHash, &t.ProfileImage, &t.IsSuspended, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return t, nil
}

// GetByID retrieves a teacher by internal ID.
func (r *TeacherRepository) GetByID(ctx context.Context, id int) (*model.Teacher, error) {
	return scanTeacher(r.pool.QueryRow(ctx,
		`SELECT `+teacherColumns+` FROM teachers WHERE id = $1`, id))
}

// GetByEmail retrieves a teacher by email (stored lowercase).
func (r *TeacherRepository) GetByEmail(ctx context.Context, email string) (*model.Teacher, error) {
	return scanTeacher(r.pool.QueryRow(ctx,
		`SELECT `+teacherColumns+` FROM teachers WHERE email = $1`, email))
}

// List retrieves all teachers ordered by name.
func (r *TeacherRepository) List(ctx context.Context) ([]model.Teacher, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+teacherColumns+` FROM teachers ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var teachers []model.Teacher
	for rows.Next() {
		t, err := scanTeacher(rows)
		if err != nil {
			return nil, err
		}
		teachers = append(teachers, *t)
	}
	return teachers, rows.Err()
}

// Create inserts a new teacher.
func (r *TeacherRepository) Create(ctx context.Context, t *model.Teacher) error {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO teachers (teacher_id, name, email, subject, class_label, password_hash)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id, created_at, updated_at`,
		t.TeacherID, t.Name, t.Email, t.Subject, t.ClassLabel, t.PasswordHash,
	).Scan(&t.ID, &t.CreatedAt, &t.UpdatedAt)
	return mapTeacherConstraint(err)
}

// Update writes a teacher's mutable fields.
func (r *TeacherRepository) Update(ctx context.Context, t *model.Teacher) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE teachers
		 SET name = $1, email = $2, subject = $3, class_label = $4,
		     profile_image = $5, updated_at = NOW()
		 WHERE id = $6`,
		t.Name, t.Email, t.Subject, t.ClassLabel, t.ProfileImage, t.ID)
	return mapTeacherConstraint(err)
}

// SetSuspended flips the reversible suspension flag.
func (r *TeacherRepository) SetSuspended(ctx context.Context, id int, suspended bool) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE teachers SET is_suspended = $1, updated_at = NOW() WHERE id = $2`,
		suspended, id)
	return err
}

// Delete removes a teacher permanently (termination).
func (r *TeacherRepository) Delete(ctx context.Context, id int) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM teachers WHERE id = $1`, id)
	return err
}

func mapTeacherConstraint(err error) error {
	switch c := constraintOf(err); {
	case c == "":
		return err
	case strings.Contains(c, "teacher_id"):
		return ErrDuplicateTeacherID
	default:
		return ErrDuplicateEmail
	}
}
