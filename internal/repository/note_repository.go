package repository

import (
	"context"

	"github.com/classhub/classhub-backend/internal/model"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NoteRepository handles saved study-note data access.
type NoteRepository struct {
	pool *pgxpool.Pool
}

// NewNoteRepository creates a new NoteRepository.
func NewNoteRepository(pool *pgxpool.Pool) *NoteRepository {
	return &NoteRepository{pool: pool}
}

// Create inserts a new saved note.
func (r *NoteRepository) Create(ctx context.Context, n *model.Note) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO notes (student_id, topic, subject, content)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at`,
		n.StudentID, n.Topic, n.Subject, n.Content,
	).Scan(&n.ID, &n.CreatedAt)
}

// ListByStudent retrieves a student's saved notes, newest first.
func (r *NoteRepository) ListByStudent(ctx context.Context, studentID int) ([]model.Note, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, student_id, topic, subject, content, created_at
		 FROM notes WHERE student_id = $1
		 ORDER BY created_at DESC`, studentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var notes []model.Note
	for rows.Next() {
		var n model.Note
		if err := rows.Scan(&n.ID, &n.StudentID, &n.Topic, &n.Subject, &n.Content, &n.CreatedAt); err != nil {
			return nil, err
		}
		notes = append(notes, n)
	}
	return notes, rows.Err()
}
