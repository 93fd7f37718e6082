package service

import (
	"testing"

	"edulift_backend/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func history(outcomes ...bool) []model.AnswerRecord {
	records := make([]model.AnswerRecord, len(outcomes))
	for i, correct := range outcomes {
		records[i] = model.AnswerRecord{Correct: correct, Difficulty: model.DifficultyEasy}
	}
	return records
}

func TestNextDifficultyPromotesAtEightyPercent(t *testing.T) {
	h := history(true, true, true, true, false) // 0.8

	assert.Equal(t, model.DifficultyMedium, NextDifficulty(model.DifficultyEasy, h))
	assert.Equal(t, model.DifficultyHard, NextDifficulty(model.DifficultyMedium, h))
	assert.Equal(t, model.DifficultyHard, NextDifficulty(model.DifficultyHard, h))
}

func TestNextDifficultyDemotesBelowFiftyPercent(t *testing.T) {
	h := history(true, false, false, false, false) // 0.2

	assert.Equal(t, model.DifficultyMedium, NextDifficulty(model.DifficultyHard, h))
	assert.Equal(t, model.DifficultyEasy, NextDifficulty(model.DifficultyMedium, h))
	assert.Equal(t, model.DifficultyEasy, NextDifficulty(model.DifficultyEasy, h))
}

func TestNextDifficultyHoldsInBetween(t *testing.T) {
	h := history(true, true, true, false, false) // 0.6

	assert.Equal(t, model.DifficultyMedium, NextDifficulty(model.DifficultyMedium, h))
}

func TestNextDifficultyEmptyHistoryKeepsCurrent(t *testing.T) {
	assert.Equal(t, model.DifficultyHard, NextDifficulty(model.DifficultyHard, nil))
}

func questionPool() []model.Question {
	return []model.Question{
		{Question: "e1", Difficulty: model.DifficultyEasy, Subject: "Mathematics"},
		{Question: "e2", Difficulty: model.DifficultyEasy, Subject: "Mathematics"},
		{Question: "m1", Difficulty: model.DifficultyMedium, Subject: "Mathematics"},
		{Question: "h1", Difficulty: model.DifficultyHard, Subject: "Mathematics"},
	}
}

func TestSelectAdaptiveQuestionsStartsEasy(t *testing.T) {
	selected := SelectAdaptiveQuestions(questionPool(), model.DifficultyMedium, nil)

	require.Len(t, selected, 2)
	for _, q := range selected {
		assert.Equal(t, model.DifficultyEasy, q.Difficulty)
	}
}

func TestSelectAdaptiveQuestionsNoFallbackWithoutHistory(t *testing.T) {
	pool := []model.Question{
		{Question: "m1", Difficulty: model.DifficultyMedium},
		{Question: "h1", Difficulty: model.DifficultyHard},
	}

	// The initial easy tier is not subject to the fallback; a pool without
	// easy questions yields nothing for a fresh session.
	assert.Empty(t, SelectAdaptiveQuestions(pool, model.DifficultyMedium, nil))
}

func TestSelectAdaptiveQuestionsPromotesWithStrongHistory(t *testing.T) {
	h := history(true, true, true, true, false)

	selected := SelectAdaptiveQuestions(questionPool(), model.DifficultyEasy, h)

	require.Len(t, selected, 1)
	assert.Equal(t, model.DifficultyMedium, selected[0].Difficulty)
}

func TestSelectAdaptiveQuestionsFallsBackToWholePool(t *testing.T) {
	pool := []model.Question{
		{Question: "e1", Difficulty: model.DifficultyEasy},
		{Question: "m1", Difficulty: model.DifficultyMedium},
	}
	h := history(true, true, true, true, true)

	// Target tier is hard but the pool has none; the whole pool comes back.
	selected := SelectAdaptiveQuestions(pool, model.DifficultyMedium, h)
	assert.Len(t, selected, 2)
}

func TestGenerateLearningInsightsEmptyHistory(t *testing.T) {
	insights := GenerateLearningInsights(nil)

	require.Len(t, insights, 1)
	assert.Equal(t, "Complete more questions to receive personalized insights.", insights[0])
}

func TestGenerateLearningInsightsHardMastery(t *testing.T) {
	h := []model.AnswerRecord{
		{Correct: true, Difficulty: model.DifficultyHard},
		{Correct: true, Difficulty: model.DifficultyHard},
		{Correct: true, Difficulty: model.DifficultyHard},
	}

	insights := GenerateLearningInsights(h)
	assert.Contains(t, insights, "Exceptional performance on challenging questions!")
	assert.Contains(t, insights, "Your recent performance shows consistent improvement!")
}

func TestGenerateLearningInsightsStrugglingTrend(t *testing.T) {
	h := []model.AnswerRecord{
		{Correct: true, Difficulty: model.DifficultyEasy},
		{Correct: false, Difficulty: model.DifficultyEasy},
		{Correct: false, Difficulty: model.DifficultyEasy},
		{Correct: false, Difficulty: model.DifficultyEasy},
	}

	insights := GenerateLearningInsights(h)
	assert.Contains(t, insights, "Focus on strengthening fundamental concepts before advancing.")
	assert.Contains(t, insights, "Consider reviewing recent topics or seeking additional support.")
}

func TestGenerateLearningInsightsGenericFallback(t *testing.T) {
	// Middling easy performance between both thresholds triggers no tier or
	// trend message.
	h := []model.AnswerRecord{
		{Correct: true, Difficulty: model.DifficultyEasy},
		{Correct: true, Difficulty: model.DifficultyEasy},
		{Correct: true, Difficulty: model.DifficultyEasy},
		{Correct: false, Difficulty: model.DifficultyEasy},
	}

	insights := GenerateLearningInsights(h)
	require.Len(t, insights, 1)
	assert.Equal(t, "Continue practicing to receive more detailed insights.", insights[0])
}
