package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/classhub/classhub-backend/internal/model"
	"github.com/classhub/classhub-backend/internal/repository"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

// Exam catalog errors.
var (
	ErrNotExamOwner     = errors.New("not the creator of this exam")
	ErrAnswerKeyInvalid = errors.New("correct answer must be one of the question's options")
	ErrMarksRange       = errors.New("pass marks must not exceed full marks")
)

// ExamService owns the exam catalog (teacher-facing CRUD) and exam
// distribution (the answer-key-redacted student view).
type ExamService struct {
	examRepo    *repository.ExamRepository
	resultRepo  *repository.ResultRepository
	studentRepo *repository.StudentRepository
	log         zerolog.Logger
}

// NewExamService creates a new ExamService.
func NewExamService(
	examRepo *repository.ExamRepository,
	resultRepo *repository.ResultRepository,
	studentRepo *repository.StudentRepository,
	log zerolog.Logger,
) *ExamService {
	return &ExamService{
		examRepo:    examRepo,
		resultRepo:  resultRepo,
		studentRepo: studentRepo,
		log:         log.With().Str("component", "exam_service").Logger(),
	}
}

// Create validates and persists a new exam owned by the calling teacher.
func (s *ExamService) Create(ctx context.Context, teacherID int, req model.CreateExamRequest) (*model.Exam, error) {
	questions, err := buildQuestions(req.Questions)
	if err != nil {
		return nil, err
	}

	exam := &model.Exam{
		Name:       req.Name,
		Subject:    req.Subject,
		ClassLabel: req.ClassLabel,
		Date:       req.Date,
		FullMarks:  req.FullMarks,
		PassMarks:  req.PassMarks,
		Questions:  questions,
		CreatedBy:  teacherID,
	}
	if err := s.examRepo.Create(ctx, exam); err != nil {
		return nil, fmt.Errorf("create exam: %w", err)
	}

	s.log.Info().
		Str("exam_id", exam.ID.String()).
		Int("teacher_id", teacherID).
		Int("questions", len(questions)).
		Msg("Exam created")
	return exam, nil
}

// Update merges the supplied fields into an existing exam. Nil fields are
// left unchanged; present fields replace the stored value. Only the
// creator may update.
func (s *ExamService) Update(ctx context.Context, teacherID int, examID uuid.UUID, req model.UpdateExamRequest) (*model.Exam, error) {
	exam, err := s.getOwned(ctx, teacherID, examID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		exam.Name = *req.Name
	}
	if req.Subject != nil {
		exam.Subject = *req.Subject
	}
	if req.ClassLabel != nil {
		exam.ClassLabel = *req.ClassLabel
	}
	if req.Date != nil {
		exam.Date = *req.Date
	}
	if req.FullMarks != nil {
		exam.FullMarks = *req.FullMarks
	}
	if req.PassMarks != nil {
		exam.PassMarks = *req.PassMarks
	}
	if req.Questions != nil {
		questions, err := buildQuestions(req.Questions)
		if err != nil {
			return nil, err
		}
		exam.Questions = questions
	}

	if exam.PassMarks > exam.FullMarks {
		return nil, ErrMarksRange
	}

	if err := s.examRepo.Update(ctx, exam); err != nil {
		return nil, fmt.Errorf("update exam: %w", err)
	}
	return exam, nil
}

// Delete hard-deletes an exam. Results referencing it are deliberately
// kept; the aggregation views tolerate the orphaned reference. Only the
// creator may delete.
func (s *ExamService) Delete(ctx context.Context, teacherID int, examID uuid.UUID) error {
	if _, err := s.getOwned(ctx, teacherID, examID); err != nil {
		return err
	}
	if err := s.examRepo.Delete(ctx, examID); err != nil {
		return fmt.Errorf("delete exam: %w", err)
	}
	s.log.Info().Str("exam_id", examID.String()).Msg("Exam deleted")
	return nil
}

// ListByTeacher retrieves the calling teacher's exams.
func (s *ExamService) ListByTeacher(ctx context.Context, teacherID int) ([]model.Exam, error) {
	return s.examRepo.ListByCreator(ctx, teacherID)
}

// ListAll retrieves every exam with creator names joined (admin view).
func (s *ExamService) ListAll(ctx context.Context) ([]model.Exam, error) {
	return s.examRepo.ListAll(ctx)
}

// ListAvailable computes the exams a student may still take: exams for
// the student's class, minus any the student already has a result for,
// with the answer key stripped from every question. Read-only.
func (s *ExamService) ListAvailable(ctx context.Context, studentID int) ([]model.ExamView, error) {
	student, err := s.studentRepo.GetByID(ctx, studentID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrAccountNotFound
		}
		return nil, fmt.Errorf("get student: %w", err)
	}

	exams, err := s.examRepo.ListByClass(ctx, student.ClassLabel)
	if err != nil {
		return nil, fmt.Errorf("list exams for class: %w", err)
	}

	taken, err := s.resultRepo.TakenExamIDs(ctx, studentID)
	if err != nil {
		return nil, fmt.Errorf("list taken exams: %w", err)
	}

	views := make([]model.ExamView, 0, len(exams))
	for i := range exams {
		if _, done := taken[exams[i].ID]; done {
			continue
		}
		views = append(views, RedactExam(&exams[i]))
	}
	return views, nil
}

// RedactExam converts an exam into its student-facing view. The view's
// question type has no answer field, so the key cannot leak through any
// serialization of the result.
func RedactExam(e *model.Exam) model.ExamView {
	questions := make([]model.QuestionView, len(e.Questions))
	for i, q := range e.Questions {
		questions[i] = model.QuestionView{
			QuestionText: q.QuestionText,
			Options:      q.Options,
		}
	}
	return model.ExamView{
		ID:            e.ID,
		Name:          e.Name,
		Subject:       e.Subject,
		ClassLabel:    e.ClassLabel,
		Date:          e.Date,
		FullMarks:     e.FullMarks,
		PassMarks:     e.PassMarks,
		Questions:     questions,
		CreatedByName: e.CreatedByName,
	}
}

// getOwned fetches an exam and enforces the creator-only ownership rule
// shared by update, delete, and the result views.
func (s *ExamService) getOwned(ctx context.Context, teacherID int, examID uuid.UUID) (*model.Exam, error) {
	exam, err := s.examRepo.GetByID(ctx, examID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrExamNotFound
		}
		return nil, fmt.Errorf("get exam: %w", err)
	}
	if exam.CreatedBy != teacherID {
		return nil, ErrNotExamOwner
	}
	return exam, nil
}

// buildQuestions converts question payloads into domain questions,
// checking that each answer key is one of the offered options.
func buildQuestions(payloads []model.QuestionPayload) ([]model.Question, error) {
	questions := make([]model.Question, len(payloads))
	for i, p := range payloads {
		found := false
		for _, opt := range p.Options {
			if opt == p.CorrectAnswer {
				found = true
				break
			}
		}
		if !found {
			return nil, ErrAnswerKeyInvalid
		}
		questions[i] = model.Question{
			QuestionText:  p.QuestionText,
			Options:       p.Options,
			CorrectAnswer: p.CorrectAnswer,
		}
	}
	return questions, nil
}
