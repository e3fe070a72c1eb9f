package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/classhub/classhub-backend/internal/model"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ExamRepository handles exam data access. Questions are embedded in the
// exam row as a JSONB column; there is no separate question table.
type ExamRepository struct {
	pool *pgxpool.Pool
}

// NewExamRepository creates a new ExamRepository.
func NewExamRepository(pool *pgxpool.Pool) *ExamRepository {
	return &ExamRepository{pool: pool}
}

// GetByID retrieves an exam by its UUID, questions included.
func (r *ExamRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Exam, error) {
	e := &model.Exam{}
	var questionsJSON []byte
	err := r.pool.QueryRow(ctx,
		`SELECT id, name, subject, class_label, exam_date, full_marks, pass_marks,
		        questions, created_by, created_at, updated_at
		 FROM exams WHERE id = $1`, id,
	).Scan(&e.ID, &e.Name, &e.Subject, &e.ClassLabel, &e.Date, &e.FullMarks, &e.PassMarks,
		&questionsJSON, &e.CreatedBy, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(questionsJSON, &e.Questions); err != nil {
		return nil, fmt.Errorf("decode questions: %w", err)
	}
	return e, nil
}

// ListByCreator retrieves all exams created by the given teacher.
func (r *ExamRepository) ListByCreator(ctx context.Context, teacherID int) ([]model.Exam, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, name, subject, class_label, exam_date, full_marks, pass_marks,
		        questions, created_by, created_at, updated_at
		 FROM exams WHERE created_by = $1
		 ORDER BY created_at`, teacherID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectExams(rows)
}

// ListByClass retrieves all exams scheduled for the given class label.
func (r *ExamRepository) ListByClass(ctx context.Context, classLabel string) ([]model.Exam, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, name, subject, class_label, exam_date, full_marks, pass_marks,
		        questions, created_by, created_at, updated_at
		 FROM exams WHERE class_label = $1
		 ORDER BY created_at`, classLabel)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectExams(rows)
}

// ListAll retrieves every exam with the creator's display name joined in.
// The join is LEFT: a terminated teacher leaves the name empty.
func (r *ExamRepository) ListAll(ctx context.Context) ([]model.Exam, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT e.id, e.name, e.subject, e.class_label, e.exam_date, e.full_marks,
		        e.pass_marks, e.questions, e.created_by, e.created_at, e.updated_at,
		        COALESCE(t.name, '')
		 FROM exams e
		 LEFT JOIN teachers t ON e.created_by = t.id
		 ORDER BY e.created_at`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var exams []model.Exam
	for rows.Next() {
		var e model.Exam
		var questionsJSON []byte
		if err := rows.Scan(&e.ID, &e.Name, &e.Subject, &e.ClassLabel, &e.Date, &e.FullMarks,
			&e.PassMarks, &questionsJSON, &e.CreatedBy, &e.CreatedAt, &e.UpdatedAt,
			&e.CreatedByName); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(questionsJSON, &e.Questions); err != nil {
			return nil, fmt.Errorf("decode questions: %w", err)
		}
		exams = append(exams, e)
	}
	return exams, rows.Err()
}

// Create inserts a new exam with its embedded question list.
func (r *ExamRepository) Create(ctx context.Context, e *model.Exam) error {
	questionsJSON, err := json.Marshal(e.Questions)
	if err != nil {
		return fmt.Errorf("encode questions: %w", err)
	}
	return r.pool.QueryRow(ctx,
		`INSERT INTO exams (name, subject, class_label, exam_date, full_marks, pass_marks, questions, created_by)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING id, created_at, updated_at`,
		e.Name, e.Subject, e.ClassLabel, e.Date, e.FullMarks, e.PassMarks, questionsJSON, e.CreatedBy,
	).Scan(&e.ID, &e.CreatedAt, &e.UpdatedAt)
}

// Update rewrites an exam's definition, questions included.
func (r *ExamRepository) Update(ctx context.Context, e *model.Exam) error {
	questionsJSON, err := json.Marshal(e.Questions)
	if err != nil {
		return fmt.Errorf("encode questions: %w", err)
	}
	_, err = r.pool.Exec(ctx,
		`UPDATE exams
		 SET name = $1, subject = $2, class_label = $3, exam_date = $4,
		     full_marks = $5, pass_marks = $6, questions = $7, updated_at = NOW()
		 WHERE id = $8`,
		e.Name, e.Subject, e.ClassLabel, e.Date, e.FullMarks, e.PassMarks, questionsJSON, e.ID)
	return err
}

// Delete hard-deletes an exam. Results referencing it are left in place.
func (r *ExamRepository) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM exams WHERE id = $1`, id)
	return err
}

func collectExams(rows interface {
	Next() bool
	Scan(...any) error
	Err() error
}) ([]model.Exam, error) {
	var exams []model.Exam
	for rows.Next() {
		var e model.Exam
		var questionsJSON []byte
		if err := rows.Scan(&e.ID, &e.Name, &e.Subject, &e.ClassLabel, &e.Date, &e.FullMarks,
			&e.PassMarks, &questionsJSON, &e.CreatedBy, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(questionsJSON, &e.Questions); err != nil {
			return nil, fmt.Errorf("decode questions: %w", err)
		}
		exams = append(exams, e)
	}
	return exams, rows.Err()
}
