package service

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/classhub/classhub-backend/internal/model"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedactExamStripsAnswerKey(t *testing.T) {
	exam := &model.Exam{
		ID:         uuid.New(),
		Name:       "Midterm",
		Subject:    "Physics",
		ClassLabel: "11B",
		Date:       time.Now(),
		FullMarks:  100,
		PassMarks:  40,
		Questions: []model.Question{
			{QuestionText: "q1", Options: []string{"A", "B"}, CorrectAnswer: "A"},
			{QuestionText: "q2", Options: []string{"C", "D"}, CorrectAnswer: "D"},
		},
	}

	view := RedactExam(exam)

	require.Len(t, view.Questions, 2)
	assert.Equal(t, exam.Questions[0].QuestionText, view.Questions[0].QuestionText)
	assert.Equal(t, exam.Questions[1].Options, view.Questions[1].Options)

	// The serialized view must not carry the key under any name.
	raw, err := json.Marshal(view)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "correct_answer")
}

func TestRedactExamPreservesQuestionOrder(t *testing.T) {
	exam := &model.Exam{
		Questions: []model.Question{
			{QuestionText: "first", Options: []string{"A"}, CorrectAnswer: "A"},
			{QuestionText: "second", Options: []string{"A"}, CorrectAnswer: "A"},
			{QuestionText: "third", Options: []string{"A"}, CorrectAnswer: "A"},
		},
	}

	view := RedactExam(exam)

	require.Len(t, view.Questions, 3)
	assert.Equal(t, "first", view.Questions[0].QuestionText)
	assert.Equal(t, "second", view.Questions[1].QuestionText)
	assert.Equal(t, "third", view.Questions[2].QuestionText)
}

func TestBuildQuestionsRejectsKeyOutsideOptions(t *testing.T) {
	_, err := buildQuestions([]model.QuestionPayload{
		{QuestionText: "q", Options: []string{"A", "B"}, CorrectAnswer: "C"},
	})
	assert.ErrorIs(t, err, ErrAnswerKeyInvalid)
}

func TestBuildQuestionsAcceptsValidPayload(t *testing.T) {
	questions, err := buildQuestions([]model.QuestionPayload{
		{QuestionText: "q1", Options: []string{"A", "B"}, CorrectAnswer: "B"},
		{QuestionText: "q2", Options: []string{"yes", "no"}, CorrectAnswer: "no"},
	})
	require.NoError(t, err)
	require.Len(t, questions, 2)
	assert.Equal(t, "B", questions[0].CorrectAnswer)
	assert.Equal(t, "no", questions[1].CorrectAnswer)
}

func TestBuildQuestionsKeyComparisonIsExact(t *testing.T) {
	_, err := buildQuestions([]model.QuestionPayload{
		{QuestionText: "q", Options: []string{"A", "B"}, CorrectAnswer: "a"},
	})
	assert.ErrorIs(t, err, ErrAnswerKeyInvalid)
}
