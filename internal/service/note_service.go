package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/classhub/classhub-backend/internal/config"
	"github.com/classhub/classhub-backend/internal/genai"
	"github.com/classhub/classhub-backend/internal/model"
	"github.com/classhub/classhub-backend/internal/repository"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// ErrGenAIUnavailable wraps any failure of the text-generation backend so
// handlers can map it to a single upstream-error response.
var ErrGenAIUnavailable = errors.New("text generation is currently unavailable")

// NoteService proxies the AI study-note collaborator and stores notes the
// student chooses to keep. Generated notes are cached in Redis keyed by
// (subject, topic) so repeated requests skip the upstream call.
type NoteService struct {
	cfg      *config.Config
	rdb      *redis.Client
	client   *genai.Client
	noteRepo *repository.NoteRepository
	log      zerolog.Logger
}

// NewNoteService creates a new NoteService.
func NewNoteService(
	cfg *config.Config,
	rdb *redis.Client,
	client *genai.Client,
	noteRepo *repository.NoteRepository,
	log zerolog.Logger,
) *NoteService {
	return &NoteService{
		cfg:      cfg,
		rdb:      rdb,
		client:   client,
		noteRepo: noteRepo,
		log:      log.With().Str("component", "note_service").Logger(),
	}
}

// Generate produces study notes for a topic, serving from cache when the
// same (subject, topic) pair was generated recently.
func (s *NoteService) Generate(ctx context.Context, req model.GenerateNotesRequest) (string, error) {
	cacheKey := config.CacheKey.GeneratedNoteKey(req.Subject, req.Topic)
	if cached, err := s.rdb.Get(ctx, cacheKey).Result(); err == nil && cached != "" {
		s.log.Debug().Str("topic", req.Topic).Msg("Note cache hit")
		return cached, nil
	} else if err != nil && !errors.Is(err, redis.Nil) {
		s.log.Warn().Err(err).Msg("Note cache read failed")
	}

	prompt := fmt.Sprintf(
		"You are a helpful teaching assistant. Write clear, well-structured study notes on the topic %q for the subject %q. Use headings and bullet points where appropriate.",
		req.Topic, req.Subject,
	)
	text, err := s.client.Generate(ctx, prompt)
	if err != nil {
		s.log.Error().Err(err).Str("topic", req.Topic).Msg("Note generation failed")
		return "", ErrGenAIUnavailable
	}

	if err := s.rdb.Set(ctx, cacheKey, text, s.cfg.NoteCacheTTL).Err(); err != nil {
		s.log.Warn().Err(err).Msg("Note cache write failed")
	}
	return text, nil
}

// Ask forwards a free-form question to the collaborator. Responses are not
// cached; unlike topic notes, questions rarely repeat verbatim.
func (s *NoteService) Ask(ctx context.Context, req model.AskQuestionRequest) (string, error) {
	prompt := fmt.Sprintf(
		"You are a helpful teaching assistant answering a student's question. Answer concisely and accurately.\n\nQuestion: %s",
		req.Question,
	)
	if req.Context != "" {
		prompt += "\n\nContext:\n" + req.Context
	}
	text, err := s.client.Generate(ctx, prompt)
	if err != nil {
		s.log.Error().Err(err).Msg("Question answering failed")
		return "", ErrGenAIUnavailable
	}
	return text, nil
}

// Save persists a note the student wants to keep.
func (s *NoteService) Save(ctx context.Context, studentID int, req model.SaveNoteRequest) (*model.Note, error) {
	note := &model.Note{
		StudentID: studentID,
		Topic:     req.Topic,
		Subject:   req.Subject,
		Content:   req.Content,
	}
	if err := s.noteRepo.Create(ctx, note); err != nil {
		return nil, fmt.Errorf("save note: %w", err)
	}
	return note, nil
}

// List retrieves a student's saved notes, newest first.
func (s *NoteService) List(ctx context.Context, studentID int) ([]model.Note, error) {
	return s.noteRepo.ListByStudent(ctx, studentID)
}
