package service

import (
	"edulift_backend/internal/model"
)

const (
	promoteAccuracy = 0.8
	demoteAccuracy  = 0.5
)

// NextDifficulty evaluates the difficulty state machine once: promote a tier
// when accuracy over the whole history reaches 0.8, demote below 0.5, hold
// otherwise. The tiers saturate at easy and hard.
func NextDifficulty(current model.Difficulty, history []model.AnswerRecord) model.Difficulty {
	if len(history) == 0 {
		return current
	}

	correct := 0
	for _, record := range history {
		if record.Correct {
			correct++
		}
	}
	accuracy := float64(correct) / float64(len(history))

	switch {
	case accuracy >= promoteAccuracy:
		switch current {
		case model.DifficultyEasy:
			return model.DifficultyMedium
		case model.DifficultyMedium:
			return model.DifficultyHard
		default:
			return model.DifficultyHard
		}
	case accuracy < demoteAccuracy:
		switch current {
		case model.DifficultyHard:
			return model.DifficultyMedium
		case model.DifficultyMedium:
			return model.DifficultyEasy
		default:
			return model.DifficultyEasy
		}
	default:
		return current
	}
}

// SelectAdaptiveQuestions filters a subject's question pool to the difficulty
// tier the performance history calls for. With no history the session starts
// on easy questions. If the target tier has no questions the whole pool is
// returned rather than nothing.
func SelectAdaptiveQuestions(pool []model.Question, current model.Difficulty, history []model.AnswerRecord) []model.Question {
	if len(history) == 0 {
		return filterByDifficulty(pool, model.DifficultyEasy)
	}

	target := NextDifficulty(current, history)

	suitable := filterByDifficulty(pool, target)
	if len(suitable) == 0 {
		return pool
	}
	return suitable
}

func filterByDifficulty(pool []model.Question, difficulty model.Difficulty) []model.Question {
	filtered := make([]model.Question, 0, len(pool))
	for _, q := range pool {
		if q.Difficulty == difficulty {
			filtered = append(filtered, q)
		}
	}
	return filtered
}

// Per-tier accuracy thresholds for insight messages.
const (
	easyHighRate   = 0.9
	easyLowRate    = 0.7
	mediumHighRate = 0.8
	mediumLowRate  = 0.6
	hardHighRate   = 0.7

	trendWindow   = 3
	trendHighRate = 0.8
	trendLowRate  = 0.5
)

// GenerateLearningInsights derives feedback strings from a completed session's
// performance history. All qualifying messages are emitted; they are not
// mutually exclusive.
func GenerateLearningInsights(history []model.AnswerRecord) []string {
	if len(history) == 0 {
		return []string{"Complete more questions to receive personalized insights."}
	}

	var insights []string

	easyCorrect, easyTotal := tierCounts(history, model.DifficultyEasy)
	mediumCorrect, mediumTotal := tierCounts(history, model.DifficultyMedium)
	hardCorrect, hardTotal := tierCounts(history, model.DifficultyHard)

	if easyTotal > 0 {
		rate := float64(easyCorrect) / float64(easyTotal)
		if rate >= easyHighRate {
			insights = append(insights, "Excellent performance on basic concepts! Ready for more challenging material.")
		} else if rate < easyLowRate {
			insights = append(insights, "Focus on strengthening fundamental concepts before advancing.")
		}
	}

	if mediumTotal > 0 {
		rate := float64(mediumCorrect) / float64(mediumTotal)
		if rate >= mediumHighRate {
			insights = append(insights, "Strong grasp of intermediate concepts. Consider advanced topics.")
		} else if rate < mediumLowRate {
			insights = append(insights, "Practice more intermediate-level problems to improve understanding.")
		}
	}

	if hardTotal > 0 {
		rate := float64(hardCorrect) / float64(hardTotal)
		if rate >= hardHighRate {
			insights = append(insights, "Exceptional performance on challenging questions!")
		} else {
			insights = append(insights, "Advanced concepts need more practice. Consider seeking additional help.")
		}
	}

	if len(history) >= trendWindow {
		recent := history[len(history)-trendWindow:]
		recentCorrect := 0
		for _, record := range recent {
			if record.Correct {
				recentCorrect++
			}
		}
		recentAccuracy := float64(recentCorrect) / float64(len(recent))

		if recentAccuracy > trendHighRate {
			insights = append(insights, "Your recent performance shows consistent improvement!")
		} else if recentAccuracy < trendLowRate {
			insights = append(insights, "Consider reviewing recent topics or seeking additional support.")
		}
	}

	if len(insights) == 0 {
		return []string{"Continue practicing to receive more detailed insights."}
	}
	return insights
}

func tierCounts(history []model.AnswerRecord, difficulty model.Difficulty) (correct, total int) {
	for _, record := range history {
		if record.Difficulty != difficulty {
			continue
		}
		total++
		if record.Correct {
			correct++
		}
	}
	return correct, total
}
