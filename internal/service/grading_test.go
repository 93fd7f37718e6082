package service

import (
	"testing"

	"edulift_backend/internal/model"

	"github.com/stretchr/testify/assert"
)

func mcQuestion(correct string, points int) model.Question {
	return model.Question{Type: model.MultipleChoice, CorrectAnswer: correct, Points: points}
}

func saQuestion(correct string, points int) model.Question {
	return model.Question{Type: model.ShortAnswer, CorrectAnswer: correct, Points: points}
}

func TestGradeAnswerMultipleChoice(t *testing.T) {
	q := mcQuestion("HTTPS", 2)

	result := GradeAnswer(q, "  https ")
	assert.True(t, result.Correct)
	assert.Equal(t, 2.0, result.PointsEarned)
	assert.Equal(t, 2, result.MaxPoints)

	result = GradeAnswer(q, "HTTP")
	assert.False(t, result.Correct)
	assert.Equal(t, 0.0, result.PointsEarned)
}

func TestGradeAnswerTrueFalseCaseInsensitive(t *testing.T) {
	q := model.Question{Type: model.TrueFalse, CorrectAnswer: "true", Points: 2}

	assert.True(t, GradeAnswer(q, "True").Correct)
	assert.True(t, GradeAnswer(q, true).Correct)
	assert.False(t, GradeAnswer(q, "false").Correct)
}

func TestGradeAnswerNumericTolerance(t *testing.T) {
	q := saQuestion("100", 3)

	// 10% relative tolerance, boundary inclusive.
	assert.True(t, GradeAnswer(q, "110").Correct)
	assert.True(t, GradeAnswer(q, "90").Correct)
	assert.False(t, GradeAnswer(q, "111").Correct)
	assert.Equal(t, 0.0, GradeAnswer(q, "111").PointsEarned)
}

func TestGradeAnswerNumericFromJSONNumber(t *testing.T) {
	q := saQuestion("78.5", 3)

	result := GradeAnswer(q, 78.5)
	assert.True(t, result.Correct)
	assert.Equal(t, 3.0, result.PointsEarned)
}

func TestGradeAnswerKeywordPartialCredit(t *testing.T) {
	q := saQuestion("Gravitational force", 2)

	// One of two keywords: half credit, below the correctness threshold.
	result := GradeAnswer(q, "force")
	assert.False(t, result.Correct)
	assert.Equal(t, 1.0, result.PointsEarned)

	// Full keyword coverage counts as correct regardless of word order.
	result = GradeAnswer(q, "force gravitational")
	assert.True(t, result.Correct)
	assert.Equal(t, 2.0, result.PointsEarned)

	// No overlap earns nothing.
	result = GradeAnswer(q, "magnetism")
	assert.False(t, result.Correct)
	assert.Equal(t, 0.0, result.PointsEarned)
}

func TestGradeAnswerUnknownTypeEarnsZero(t *testing.T) {
	q := model.Question{Type: "essay", CorrectAnswer: "anything", Points: 5}

	result := GradeAnswer(q, "anything")
	assert.False(t, result.Correct)
	assert.Equal(t, 0.0, result.PointsEarned)
	assert.Equal(t, 5, result.MaxPoints)
}

func TestGradeAnswerIsPure(t *testing.T) {
	q := saQuestion("Gravitational force", 2)

	first := GradeAnswer(q, "force")
	second := GradeAnswer(q, "force")
	assert.Equal(t, first, second)
}
