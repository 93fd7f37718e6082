package service

import (
	"context"
	"fmt"
	"math/rand"
	"testing"

	"edulift_backend/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeSessionStore keeps adaptive histories in memory, keyed by user+test.
type fakeSessionStore struct {
	histories map[string][]model.AnswerRecord
}

func newFakeSessionStore() *fakeSessionStore {
	return &fakeSessionStore{histories: make(map[string][]model.AnswerRecord)}
}

func (f *fakeSessionStore) key(userID uint, testID string) string {
	return fmt.Sprintf("%d:%s", userID, testID)
}

func (f *fakeSessionStore) History(_ context.Context, userID uint, testID string) ([]model.AnswerRecord, error) {
	return f.histories[f.key(userID, testID)], nil
}

func (f *fakeSessionStore) Append(_ context.Context, userID uint, testID string, records []model.AnswerRecord) error {
	k := f.key(userID, testID)
	f.histories[k] = append(f.histories[k], records...)
	return nil
}

func (f *fakeSessionStore) Reset(_ context.Context, userID uint, testID string) error {
	delete(f.histories, f.key(userID, testID))
	return nil
}

func newSamplingService(seed int64) *TestService {
	return NewTestService(nil, nil, rand.New(rand.NewSource(seed)))
}

func TestSampleQuestionsDrawsWithoutReplacement(t *testing.T) {
	svc := newSamplingService(1)
	pool := questionPool()

	selected := svc.sampleQuestions(pool, 3)
	require.Len(t, selected, 3)

	seen := make(map[string]struct{}, len(selected))
	for _, q := range selected {
		_, dup := seen[q.Question]
		assert.False(t, dup, q.Question)
		seen[q.Question] = struct{}{}
	}
}

func TestSampleQuestionsClampsToPoolSize(t *testing.T) {
	svc := newSamplingService(1)
	pool := questionPool()

	assert.Len(t, svc.sampleQuestions(pool, 100), len(pool))
	assert.Empty(t, svc.sampleQuestions(nil, 5))
	assert.Empty(t, svc.sampleQuestions(pool, 0))
}

func TestSampleQuestionsDeterministicPerSeed(t *testing.T) {
	pool := questionPool()

	first := newSamplingService(42).sampleQuestions(pool, 2)
	second := newSamplingService(42).sampleQuestions(pool, 2)
	assert.Equal(t, first, second)
}

func TestScoreRatioGuardsZeroPoints(t *testing.T) {
	assert.Equal(t, 0.0, scoreRatio(model.TestResult{Score: 3, TotalPoints: 0}))
	assert.Equal(t, 0.75, scoreRatio(model.TestResult{Score: 3, TotalPoints: 4}))
}

func TestNewTestFromRequestDefaults(t *testing.T) {
	test := newTestFromRequest(TestRequest{Title: "Algebra basics", Subject: "Mathematics"})

	assert.Equal(t, model.TestDraft, test.Status)
	assert.Equal(t, 60, test.Duration)
	assert.Equal(t, 5, test.TotalQuestions)
	assert.Equal(t, model.DifficultyMedium, test.DifficultyLevel)
	assert.True(t, test.Adaptive)
}

func TestNewTestFromRequestHonorsExplicitFields(t *testing.T) {
	adaptive := false
	test := newTestFromRequest(TestRequest{
		Title:           "Midterm",
		Subject:         "Physics",
		Duration:        90,
		TotalQuestions:  10,
		DifficultyLevel: model.DifficultyHard,
		Adaptive:        &adaptive,
		Status:          model.TestPublished,
	})

	assert.Equal(t, model.TestPublished, test.Status)
	assert.Equal(t, 90, test.Duration)
	assert.Equal(t, 10, test.TotalQuestions)
	assert.Equal(t, model.DifficultyHard, test.DifficultyLevel)
	assert.False(t, test.Adaptive)
}

func gradedQuestionBank() []model.Question {
	return []model.Question{
		{
			UUIDBase:      model.UUIDBase{ID: "q-mc"},
			Question:      "2+2?",
			Type:          model.MultipleChoice,
			CorrectAnswer: "4",
			Difficulty:    model.DifficultyEasy,
			Subject:       "Mathematics",
			Topic:         "Arithmetic",
			Points:        2,
		},
		{
			UUIDBase:      model.UUIDBase{ID: "q-tf"},
			Question:      "Zero is even.",
			Type:          model.TrueFalse,
			CorrectAnswer: "true",
			Difficulty:    model.DifficultyMedium,
			Subject:       "Mathematics",
			Topic:         "Number theory",
			Points:        1,
		},
		{
			UUIDBase:      model.UUIDBase{ID: "q-num"},
			Question:      "Approximate sqrt(2) * 100",
			Type:          model.ShortAnswer,
			CorrectAnswer: "141.4",
			Difficulty:    model.DifficultyMedium,
			Subject:       "Mathematics",
			Topic:         "Estimation",
			Points:        3,
		},
		{
			UUIDBase:      model.UUIDBase{ID: "q-kw"},
			Question:      "What drives market prices?",
			Type:          model.ShortAnswer,
			CorrectAnswer: "supply and demand",
			Difficulty:    model.DifficultyHard,
			Subject:       "Mathematics",
			Topic:         "Applications",
			Points:        2,
		},
	}
}

func TestGradeSubmissionScoreIsSumOfPointsEarned(t *testing.T) {
	questions := gradedQuestionBank()

	tests := []struct {
		name         string
		answers      []SubmittedAnswer
		wantScore    float64
		wantPoints   int
		wantAccuracy float64
		wantAnswered int
	}{
		{
			name: "all correct",
			answers: []SubmittedAnswer{
				{QuestionID: "q-mc", Answer: "4"},
				{QuestionID: "q-tf", Answer: "True"},
				{QuestionID: "q-num", Answer: "145"}, // within 10% of 141.4
			},
			wantScore:    6,
			wantPoints:   6,
			wantAccuracy: 1,
			wantAnswered: 3,
		},
		{
			name: "partial credit below correctness threshold",
			answers: []SubmittedAnswer{
				{QuestionID: "q-mc", Answer: "4"},
				{QuestionID: "q-kw", Answer: "demand"}, // 1/3 keyword overlap: 0.7 of 2 points
			},
			wantScore:    2.7,
			wantPoints:   4,
			wantAccuracy: 0.5,
			wantAnswered: 2,
		},
		{
			name: "unknown question ids are skipped",
			answers: []SubmittedAnswer{
				{QuestionID: "q-tf", Answer: "false"},
				{QuestionID: "q-missing", Answer: "anything"},
			},
			wantScore:    0,
			wantPoints:   1,
			wantAccuracy: 0,
			wantAnswered: 1,
		},
		{
			name:         "no answers",
			answers:      nil,
			wantScore:    0,
			wantPoints:   0,
			wantAccuracy: 0,
			wantAnswered: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			grades := gradeSubmission(questions, tt.answers)

			assert.InDelta(t, tt.wantScore, grades.Score, 1e-9)
			assert.Equal(t, tt.wantPoints, grades.TotalPoints)
			assert.InDelta(t, tt.wantAccuracy, grades.Accuracy, 1e-9)
			require.Len(t, grades.Graded, tt.wantAnswered)
			require.Len(t, grades.Performance, tt.wantAnswered)
			require.Len(t, grades.Progression, tt.wantAnswered)

			sum := 0.0
			for _, g := range grades.Graded {
				sum += g.PointsEarned
			}
			assert.InDelta(t, grades.Score, sum, 1e-9)
		})
	}
}

func TestGradeSubmissionPreservesSubmissionOrder(t *testing.T) {
	questions := gradedQuestionBank()
	answers := []SubmittedAnswer{
		{QuestionID: "q-kw", Answer: "supply and demand"},
		{QuestionID: "q-mc", Answer: "5"},
		{QuestionID: "q-num", Answer: "141.4"},
	}

	grades := gradeSubmission(questions, answers)

	require.Len(t, grades.Progression, 3)
	assert.Equal(t, []model.Difficulty{
		model.DifficultyHard,
		model.DifficultyEasy,
		model.DifficultyMedium,
	}, grades.Progression)

	// Performance mirrors the graded answers so the insight generator sees the
	// same recency window the student produced.
	for i, g := range grades.Graded {
		assert.Equal(t, g.Correct, grades.Performance[i].Correct)
	}

	insights := GenerateLearningInsights(grades.Performance)
	assert.NotEmpty(t, insights)
}

func TestBeginAttemptClearsAdaptiveHistory(t *testing.T) {
	ctx := context.Background()
	sessions := newFakeSessionStore()
	svc := NewTestService(nil, sessions, rand.New(rand.NewSource(1)))

	require.NoError(t, sessions.Append(ctx, 7, "test-1", history(true, true, true, true, true)))
	require.NoError(t, sessions.Append(ctx, 7, "test-2", history(true)))

	require.NoError(t, svc.BeginAttempt(ctx, "test-1", 7))

	cleared, err := sessions.History(ctx, 7, "test-1")
	require.NoError(t, err)
	assert.Empty(t, cleared, "a new attempt starts with no history, so delivery begins on the easy tier")

	// Other attempts keep their histories.
	kept, err := sessions.History(ctx, 7, "test-2")
	require.NoError(t, err)
	assert.Len(t, kept, 1)
}
