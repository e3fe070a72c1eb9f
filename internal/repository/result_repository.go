package repository

import (
	"context"

	"github.com/classhub/classhub-backend/internal/model"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ResultRepository handles result data access. The results table carries a
// unique index on (exam_id, student_id); Insert surfaces a violation as
// ErrDuplicateResult so the scoring engine can treat a lost race exactly
// like a failed pre-check.
type ResultRepository struct {
	pool *pgxpool.Pool
}

// NewResultRepository creates a new ResultRepository.
func NewResultRepository(pool *pgxpool.Pool) *ResultRepository {
	return &ResultRepository{pool: pool}
}

// GetByExamAndStudent retrieves the result for one (exam, student) pair.
func (r *ResultRepository) GetByExamAndStudent(ctx context.Context, examID uuid.UUID, studentID int) (*model.Result, error) {
	res := &model.Result{}
	err := r.pool.QueryRow(ctx,
		`SELECT id, exam_id, student_id, marks_obtained, created_at
		 FROM results WHERE exam_id = $1 AND student_id = $2`, examID, studentID,
	).Scan(&res.ID, &res.ExamID, &res.StudentID, &res.MarksObtained, &res.CreatedAt)
	if err != nil {
		return nil, err
	}
	return res, nil
}

// Insert creates a new result. Returns ErrDuplicateResult if one already
// exists for the pair, whether detected here or by a concurrent insert.
func (r *ResultRepository) Insert(ctx context.Context, res *model.Result) error {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO results (exam_id, student_id, marks_obtained)
		 VALUES ($1, $2, $3)
		 RETURNING id, created_at`,
		res.ExamID, res.StudentID, res.MarksObtained,
	).Scan(&res.ID, &res.CreatedAt)
	if constraintOf(err) != "" {
		return ErrDuplicateResult
	}
	return err
}

// Upsert creates a result or overwrites its marks. This is the teacher's
// manual publish/override path; it deliberately bypasses the uniqueness
// rejection that Insert applies.
func (r *ResultRepository) Upsert(ctx context.Context, res *model.Result) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO results (exam_id, student_id, marks_obtained)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (exam_id, student_id)
		 DO UPDATE SET marks_obtained = EXCLUDED.marks_obtained
		 RETURNING id, created_at`,
		res.ExamID, res.StudentID, res.MarksObtained,
	).Scan(&res.ID, &res.CreatedAt)
}

// TakenExamIDs returns the set of exam IDs the student has a result for.
func (r *ResultRepository) TakenExamIDs(ctx context.Context, studentID int) (map[uuid.UUID]struct{}, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT exam_id FROM results WHERE student_id = $1`, studentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	taken := make(map[uuid.UUID]struct{})
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		taken[id] = struct{}{}
	}
	return taken, rows.Err()
}

// ListByExam retrieves all results for an exam with student display fields
// and the exam's pass/full marks joined in, highest marks first.
func (r *ResultRepository) ListByExam(ctx context.Context, examID uuid.UUID) ([]model.ExamResultRow, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT r.id, r.student_id, COALESCE(s.student_id, ''), COALESCE(s.name, ''),
		        COALESCE(s.email, ''), r.marks_obtained, e.full_marks, e.pass_marks, r.created_at
		 FROM results r
		 LEFT JOIN students s ON r.student_id = s.id
		 JOIN exams e ON r.exam_id = e.id
		 WHERE r.exam_id = $1
		 ORDER BY r.marks_obtained DESC`, examID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []model.ExamResultRow
	for rows.Next() {
		var row model.ExamResultRow
		if err := rows.Scan(&row.ResultID, &row.StudentID, &row.StudentExtID, &row.Name,
			&row.Email, &row.MarksObtained, &row.FullMarks, &row.PassMarks, &row.CreatedAt); err != nil {
			return nil, err
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// ListByStudent retrieves a student's results in insertion order with exam
// display fields joined in. The join is LEFT: a deleted exam leaves the
// display fields null and the result still listed.
func (r *ResultRepository) ListByStudent(ctx context.Context, studentID int) ([]model.StudentResultRow, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT r.id, r.exam_id, e.name, e.subject, e.exam_date, e.full_marks, e.pass_marks,
		        r.marks_obtained, r.created_at
		 FROM results r
		 LEFT JOIN exams e ON r.exam_id = e.id
		 WHERE r.student_id = $1
		 ORDER BY r.created_at`, studentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []model.StudentResultRow
	for rows.Next() {
		var row model.StudentResultRow
		if err := rows.Scan(&row.ResultID, &row.ExamID, &row.ExamName, &row.Subject, &row.Date,
			&row.FullMarks, &row.PassMarks, &row.MarksObtained, &row.CreatedAt); err != nil {
			return nil, err
		}
		results = append(results, row)
	}
	return results, rows.Err()
}
