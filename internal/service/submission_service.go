package service

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/classhub/classhub-backend/internal/model"
	"github.com/classhub/classhub-backend/internal/repository"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

// Submission errors.
var (
	ErrExamNotFound     = errors.New("exam not found")
	ErrExamAlreadyTaken = errors.New("you have already taken this exam")
)

// SubmissionService accepts a student's answer set for one exam, enforces
// the single-attempt rule, scores it against the live answer key, and
// persists exactly one Result.
type SubmissionService struct {
	examRepo   *repository.ExamRepository
	resultRepo *repository.ResultRepository
	log        zerolog.Logger
}

// NewSubmissionService creates a new SubmissionService.
func NewSubmissionService(
	examRepo *repository.ExamRepository,
	resultRepo *repository.ResultRepository,
	log zerolog.Logger,
) *SubmissionService {
	return &SubmissionService{
		examRepo:   examRepo,
		resultRepo: resultRepo,
		log:        log.With().Str("component", "submission_service").Logger(),
	}
}

// Submit scores one attempt and records the result.
//
// The existence pre-check and the insert are two separate store round
// trips, so two concurrent submissions can both pass the pre-check. The
// unique index on results(exam_id, student_id) is the backstop: the
// losing insert comes back as ErrDuplicateResult and is surfaced exactly
// like the pre-check failure. A failed submit never leaves a Result.
func (s *SubmissionService) Submit(ctx context.Context, studentID int, examID uuid.UUID, answers []string) (*model.SubmissionOutcome, error) {
	exam, err := s.examRepo.GetByID(ctx, examID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrExamNotFound
		}
		return nil, fmt.Errorf("get exam: %w", err)
	}

	if _, err := s.resultRepo.GetByExamAndStudent(ctx, examID, studentID); err == nil {
		return nil, ErrExamAlreadyTaken
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("check existing result: %w", err)
	}

	marks := scoreExam(exam.Questions, answers, exam.FullMarks)

	result := &model.Result{
		ExamID:        examID,
		StudentID:     studentID,
		MarksObtained: marks,
	}
	if err := s.resultRepo.Insert(ctx, result); err != nil {
		if errors.Is(err, repository.ErrDuplicateResult) {
			// Lost the race against a concurrent submission.
			return nil, ErrExamAlreadyTaken
		}
		return nil, fmt.Errorf("persist result: %w", err)
	}

	s.log.Info().
		Str("exam_id", examID.String()).
		Int("student_id", studentID).
		Int("marks", marks).
		Msg("Exam submitted")

	return buildOutcome(exam, marks), nil
}

// buildOutcome packages the scored marks. Passing is inclusive: marks
// equal to the pass mark pass.
func buildOutcome(exam *model.Exam, marks int) *model.SubmissionOutcome {
	return &model.SubmissionOutcome{
		Score:  marks,
		Total:  exam.FullMarks,
		Passed: marks >= exam.PassMarks,
	}
}

// scoreExam grades answers positionally against the question list and
// returns the rounded marks.
//
// Each question is worth fullMarks/N so the maximum always equals
// fullMarks even when N does not divide it evenly. Comparison is exact,
// case-sensitive string equality of answers[i] against questions[i];
// answers are never matched by content across positions. Missing answers
// score zero, extra answers are ignored, and an exam with no questions
// scores zero. The sum is rounded once at the end, half away from zero.
func scoreExam(questions []model.Question, answers []string, fullMarks int) int {
	n := len(questions)
	if n == 0 {
		return 0
	}

	perQuestion := float64(fullMarks) / float64(n)
	raw := 0.0
	for i, q := range questions {
		if i < len(answers) && answers[i] == q.CorrectAnswer {
			raw += perQuestion
		}
	}

	return int(math.Floor(raw + 0.5))
}
