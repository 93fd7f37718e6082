package service

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"edulift_backend/internal/model"
)

const (
	// Relative tolerance for numeric short answers, boundary inclusive.
	numericTolerance = 0.1
	// Keyword coverage a partial-credit answer needs to count as correct.
	keywordCorrectThreshold = 0.7
)

// GradingResult is the outcome of grading one answer.
type GradingResult struct {
	Correct      bool    `json:"correct"`
	PointsEarned float64 `json:"points_earned"`
	MaxPoints    int     `json:"max_points"`
}

// GradeAnswer grades one submitted answer against a question. It is a pure
// function: identical inputs always produce identical results. Answers of
// unknown question types earn zero rather than failing.
func GradeAnswer(question model.Question, studentAnswer interface{}) GradingResult {
	result := GradingResult{MaxPoints: question.Points}

	student := normalizeAnswer(studentAnswer)
	correct := normalizeAnswer(question.CorrectAnswer)

	switch question.Type {
	case model.MultipleChoice, model.TrueFalse:
		if student == correct {
			result.Correct = true
			result.PointsEarned = float64(question.Points)
		}

	case model.ShortAnswer:
		if student == correct {
			result.Correct = true
			result.PointsEarned = float64(question.Points)
			break
		}

		studentNum, studentErr := strconv.ParseFloat(student, 64)
		correctNum, correctErr := strconv.ParseFloat(correct, 64)
		if studentErr == nil && correctErr == nil {
			if math.Abs(studentNum-correctNum) <= math.Abs(correctNum*numericTolerance) {
				result.Correct = true
				result.PointsEarned = float64(question.Points)
			}
			break
		}

		// Non-numeric mismatch: partial credit by keyword overlap. The score
		// is awarded even when the coverage threshold for "correct" is missed.
		correctWords := wordSet(correct)
		studentWords := wordSet(student)
		overlap := 0
		for word := range correctWords {
			if _, ok := studentWords[word]; ok {
				overlap++
			}
		}
		if overlap > 0 && len(correctWords) > 0 {
			partial := float64(overlap) / float64(len(correctWords)) * float64(question.Points)
			result.Correct = partial >= keywordCorrectThreshold*float64(question.Points)
			result.PointsEarned = math.Round(partial*10) / 10
		}
	}

	return result
}

func normalizeAnswer(answer interface{}) string {
	return strings.ToLower(strings.TrimSpace(fmt.Sprint(answer)))
}

func wordSet(s string) map[string]struct{} {
	words := make(map[string]struct{})
	for _, w := range strings.Fields(s) {
		words[w] = struct{}{}
	}
	return words
}
