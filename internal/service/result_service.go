package service

import (
	"context"
	"fmt"

	"github.com/classhub/classhub-backend/internal/model"
	"github.com/classhub/classhub-backend/internal/repository"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// ResultService serves the aggregation views over recorded results and the
// teacher's manual publish/override path.
type ResultService struct {
	resultRepo *repository.ResultRepository
	exams      *ExamService
	log        zerolog.Logger
}

// NewResultService creates a new ResultService.
func NewResultService(
	resultRepo *repository.ResultRepository,
	exams *ExamService,
	log zerolog.Logger,
) *ResultService {
	return &ResultService{
		resultRepo: resultRepo,
		exams:      exams,
		log:        log.With().Str("component", "result_service").Logger(),
	}
}

// ForExam lists one exam's results with student display fields joined,
// ordered by marks descending. Only the exam's creator may view them.
func (s *ResultService) ForExam(ctx context.Context, teacherID int, examID uuid.UUID) ([]model.ExamResultRow, error) {
	if _, err := s.exams.getOwned(ctx, teacherID, examID); err != nil {
		return nil, err
	}
	rows, err := s.resultRepo.ListByExam(ctx, examID)
	if err != nil {
		return nil, fmt.Errorf("list exam results: %w", err)
	}
	return rows, nil
}

// ForStudent lists a student's own result history with exam display
// fields joined. Deleted exams show up with the display fields nulled.
func (s *ResultService) ForStudent(ctx context.Context, studentID int) ([]model.StudentResultRow, error) {
	rows, err := s.resultRepo.ListByStudent(ctx, studentID)
	if err != nil {
		return nil, fmt.Errorf("list student results: %w", err)
	}
	return rows, nil
}

// Publish records or overwrites a result with teacher-assigned marks.
// Unlike student submission this path upserts: a teacher may correct an
// already-recorded score. Only the exam's creator may publish.
func (s *ResultService) Publish(ctx context.Context, teacherID int, req model.PublishResultRequest) (*model.Result, error) {
	exam, err := s.exams.getOwned(ctx, teacherID, req.ExamID)
	if err != nil {
		return nil, err
	}
	if req.Marks > exam.FullMarks {
		return nil, ErrMarksRange
	}

	result := &model.Result{
		ExamID:        req.ExamID,
		StudentID:     req.StudentID,
		MarksObtained: req.Marks,
	}
	if err := s.resultRepo.Upsert(ctx, result); err != nil {
		return nil, fmt.Errorf("upsert result: %w", err)
	}

	s.log.Info().
		Str("exam_id", req.ExamID.String()).
		Int("student_id", req.StudentID).
		Int("marks", req.Marks).
		Msg("Result published")
	return result, nil
}
