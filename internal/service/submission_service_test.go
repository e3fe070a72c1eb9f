package service

import (
	"testing"

	"github.com/classhub/classhub-backend/internal/model"
	"github.com/stretchr/testify/assert"
)

func mcq(answers ...string) []model.Question {
	questions := make([]model.Question, len(answers))
	for i, a := range answers {
		questions[i] = model.Question{
			QuestionText:  "q",
			Options:       []string{"A", "B", "C", "D", a},
			CorrectAnswer: a,
		}
	}
	return questions
}

func TestScoreExam(t *testing.T) {
	tests := []struct {
		name      string
		questions []model.Question
		answers   []string
		fullMarks int
		want      int
	}{
		{
			name:      "all correct scores full marks",
			questions: mcq("B", "D"),
			answers:   []string{"B", "D"},
			fullMarks: 100,
			want:      100,
		},
		{
			name:      "half correct scores half",
			questions: mcq("B", "D"),
			answers:   []string{"B", "A"},
			fullMarks: 100,
			want:      50,
		},
		{
			name:      "all wrong scores zero",
			questions: mcq("B", "D"),
			answers:   []string{"A", "A"},
			fullMarks: 100,
			want:      0,
		},
		{
			name:      "answers are graded positionally not by content",
			questions: mcq("B", "D"),
			answers:   []string{"D", "B"},
			fullMarks: 100,
			want:      0,
		},
		{
			name:      "uneven weight rounds once at the end",
			questions: mcq("A", "B", "C"),
			answers:   []string{"A", "B", "X"},
			fullMarks: 10,
			// 2 * 10/3 = 6.66..., rounded half up to 7.
			want: 7,
		},
		{
			name:      "missing trailing answers score zero",
			questions: mcq("A", "B", "C"),
			answers:   []string{"A"},
			fullMarks: 30,
			want:      10,
		},
		{
			name:      "extra answers are ignored",
			questions: mcq("A"),
			answers:   []string{"A", "B", "C"},
			fullMarks: 50,
			want:      50,
		},
		{
			name:      "comparison is case sensitive",
			questions: mcq("B"),
			answers:   []string{"b"},
			fullMarks: 100,
			want:      0,
		},
		{
			name:      "no questions scores zero",
			questions: nil,
			answers:   []string{"A"},
			fullMarks: 100,
			want:      0,
		},
		{
			name:      "no answers scores zero",
			questions: mcq("A", "B"),
			answers:   nil,
			fullMarks: 100,
			want:      0,
		},
		{
			name:      "seven of ten at uneven weight",
			questions: mcq("A", "B", "C", "D", "A", "B", "C"),
			answers:   []string{"A", "B", "C", "D", "A", "X", "X"},
			fullMarks: 10,
			// 5 * 10/7 = 7.142..., rounds to 7.
			want: 7,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := scoreExam(tt.questions, tt.answers, tt.fullMarks)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBuildOutcomePassBoundaryIsInclusive(t *testing.T) {
	exam := &model.Exam{FullMarks: 100, PassMarks: 40}

	assert.True(t, buildOutcome(exam, 40).Passed)
	assert.False(t, buildOutcome(exam, 39).Passed)
	assert.True(t, buildOutcome(exam, 100).Passed)
	assert.Equal(t, 100, buildOutcome(exam, 40).Total)
}

func TestScoreExamMaxNeverExceedsFullMarks(t *testing.T) {
	for n := 1; n <= 13; n++ {
		questions := make([]model.Question, n)
		answers := make([]string, n)
		for i := range questions {
			questions[i] = model.Question{Options: []string{"A"}, CorrectAnswer: "A"}
			answers[i] = "A"
		}
		assert.Equal(t, 100, scoreExam(questions, answers, 100), "n=%d", n)
	}
}
