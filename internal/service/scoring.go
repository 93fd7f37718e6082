package service

import (
	"edulift_backend/internal/knowledge"
)

// SkillRating is one self-assessed skill level (1-5) in a fixed category.
type SkillRating struct {
	Category knowledge.SkillCategory `json:"category" binding:"required"`
	Level    int                     `json:"level" binding:"required,min=1,max=5"`
}

// AptitudeResult is one graded aptitude test answer.
type AptitudeResult struct {
	Type    knowledge.AptitudeType `json:"type" binding:"required"`
	Correct bool                   `json:"correct"`
}

// IntelligenceRating is one self-reported intelligence score (1-5).
type IntelligenceRating struct {
	Type  string `json:"type" binding:"required"`
	Score int    `json:"score" binding:"required,min=1,max=5"`
}

// personalityQuestionTrait maps the ten fixed questionnaire ids to Big Five
// traits. Two questions feed each trait.
var personalityQuestionTrait = map[string]string{
	"1": knowledge.TraitOpenness, "2": knowledge.TraitConscientiousness, "3": knowledge.TraitExtraversion,
	"4": knowledge.TraitAgreeableness, "5": knowledge.TraitNeuroticism, "6": knowledge.TraitOpenness,
	"7": knowledge.TraitConscientiousness, "8": knowledge.TraitExtraversion, "9": knowledge.TraitAgreeableness,
	"10": knowledge.TraitNeuroticism,
}

// reverseScoredQuestion measures calm-vs-anxious framing, so its Likert value
// is flipped (6 - raw) before accumulation.
const reverseScoredQuestion = "10"

// NormalizePersonality converts raw 1-5 Likert answers keyed by question id
// into [0,1] trait scores. Each trait is the sum of its two questions divided
// by the fixed maximum of 10; unknown question ids are ignored. All five traits
// are always present in the result.
func NormalizePersonality(answers map[string]int) map[string]float64 {
	scores := make(map[string]float64, len(knowledge.PersonalityTraits))
	for _, trait := range knowledge.PersonalityTraits {
		scores[trait] = 0
	}

	for questionID, raw := range answers {
		trait, ok := personalityQuestionTrait[questionID]
		if !ok {
			continue
		}
		score := raw
		if questionID == reverseScoredQuestion {
			score = 6 - raw
		}
		scores[trait] += float64(score)
	}

	for trait := range scores {
		scores[trait] /= 10.0
	}

	return scores
}

// NormalizeSkills averages the 1-5 levels reported per category and rescales
// to [0,1]. Categories with no contributing skills score 0.
func NormalizeSkills(skills []SkillRating) map[knowledge.SkillCategory]float64 {
	sums := make(map[knowledge.SkillCategory]float64, len(knowledge.SkillCategories))
	counts := make(map[knowledge.SkillCategory]int, len(knowledge.SkillCategories))

	for _, s := range skills {
		sums[s.Category] += float64(s.Level)
		counts[s.Category]++
	}

	scores := make(map[knowledge.SkillCategory]float64, len(knowledge.SkillCategories))
	for _, category := range knowledge.SkillCategories {
		if counts[category] > 0 {
			scores[category] = sums[category] / float64(counts[category]) / 5.0
		} else {
			scores[category] = 0
		}
	}

	return scores
}

// NormalizeAptitude scores each aptitude type as correct/attempted. Types with
// no attempts score 0.
func NormalizeAptitude(results []AptitudeResult) map[knowledge.AptitudeType]float64 {
	correct := make(map[knowledge.AptitudeType]int, len(knowledge.AptitudeTypes))
	attempted := make(map[knowledge.AptitudeType]int, len(knowledge.AptitudeTypes))

	for _, r := range results {
		if _, known := knownAptitudeTypes[r.Type]; !known {
			continue
		}
		attempted[r.Type]++
		if r.Correct {
			correct[r.Type]++
		}
	}

	scores := make(map[knowledge.AptitudeType]float64, len(knowledge.AptitudeTypes))
	for _, t := range knowledge.AptitudeTypes {
		if attempted[t] > 0 {
			scores[t] = float64(correct[t]) / float64(attempted[t])
		} else {
			scores[t] = 0
		}
	}

	return scores
}

var knownAptitudeTypes = func() map[knowledge.AptitudeType]struct{} {
	m := make(map[knowledge.AptitudeType]struct{}, len(knowledge.AptitudeTypes))
	for _, t := range knowledge.AptitudeTypes {
		m[t] = struct{}{}
	}
	return m
}()

// NormalizeIntelligence rescales 1-5 intelligence ratings linearly to [0,1].
// Unlike the other normalizers the result is sparse: an unreported type is
// absent, meaning "no signal", and stays out of the matcher's averaging
// denominator for entries that declare it.
func NormalizeIntelligence(results []IntelligenceRating) map[string]float64 {
	scores := make(map[string]float64, len(results))
	for _, r := range results {
		if r.Score > 0 {
			scores[r.Type] = float64(r.Score-1) / 4.0
		} else {
			scores[r.Type] = 0
		}
	}
	return scores
}

// NormalizePreferences averages the 1-10 ratings of each category's labels and
// rescales to [0,1]. Categories with no rated label score 0.
func NormalizePreferences(preferences map[string]int) map[string]float64 {
	scores := make(map[string]float64, len(knowledge.PreferenceCategories))

	for _, category := range knowledge.PreferenceCategories {
		total := 0
		count := 0
		for _, label := range knowledge.PreferenceGroups[category] {
			if rating, ok := preferences[label]; ok {
				total += rating
				count++
			}
		}
		if count > 0 {
			scores[category] = (float64(total)/float64(count) - 1) / 9.0
		} else {
			scores[category] = 0
		}
	}

	return scores
}
