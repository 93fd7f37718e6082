package service

import (
	"testing"

	"edulift_backend/internal/knowledge"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizePersonalityAlwaysReturnsAllTraits(t *testing.T) {
	scores := NormalizePersonality(map[string]int{})

	require.Len(t, scores, len(knowledge.PersonalityTraits))
	for _, trait := range knowledge.PersonalityTraits {
		assert.Equal(t, 0.0, scores[trait])
	}
}

func TestNormalizePersonalityRange(t *testing.T) {
	answers := map[string]int{
		"1": 5, "2": 4, "3": 3, "4": 2, "5": 1,
		"6": 5, "7": 4, "8": 3, "9": 2, "10": 1,
	}
	scores := NormalizePersonality(answers)

	for trait, score := range scores {
		assert.GreaterOrEqual(t, score, 0.0, trait)
		assert.LessOrEqual(t, score, 1.0, trait)
	}
	assert.Equal(t, 1.0, scores[knowledge.TraitOpenness])
	assert.Equal(t, 0.8, scores[knowledge.TraitConscientiousness])
}

func TestNormalizePersonalityReverseScoresQuestionTen(t *testing.T) {
	// Question 10 measures calmness, so a raw 1 counts as 5 toward
	// neuroticism and a raw 5 counts as 1.
	low := NormalizePersonality(map[string]int{"10": 1})
	high := NormalizePersonality(map[string]int{"10": 5})

	assert.Equal(t, 0.5, low[knowledge.TraitNeuroticism])
	assert.Equal(t, 0.1, high[knowledge.TraitNeuroticism])
}

func TestNormalizePersonalityIgnoresUnknownQuestions(t *testing.T) {
	scores := NormalizePersonality(map[string]int{"99": 5, "1": 3})

	assert.Equal(t, 0.3, scores[knowledge.TraitOpenness])
	assert.Equal(t, 0.0, scores[knowledge.TraitNeuroticism])
}

func TestNormalizeSkillsAveragesPerCategory(t *testing.T) {
	scores := NormalizeSkills([]SkillRating{
		{Category: knowledge.SkillTechnical, Level: 4},
		{Category: knowledge.SkillTechnical, Level: 2},
		{Category: knowledge.SkillCreative, Level: 5},
	})

	require.Len(t, scores, len(knowledge.SkillCategories))
	assert.Equal(t, 0.6, scores[knowledge.SkillTechnical])
	assert.Equal(t, 1.0, scores[knowledge.SkillCreative])
	assert.Equal(t, 0.0, scores[knowledge.SkillAnalytical])
}

func TestNormalizeAptitudeScoresCorrectOverAttempted(t *testing.T) {
	scores := NormalizeAptitude([]AptitudeResult{
		{Type: knowledge.AptitudeLogical, Correct: true},
		{Type: knowledge.AptitudeLogical, Correct: false},
		{Type: knowledge.AptitudeVerbal, Correct: true},
		{Type: "telepathy", Correct: true},
	})

	require.Len(t, scores, len(knowledge.AptitudeTypes))
	assert.Equal(t, 0.5, scores[knowledge.AptitudeLogical])
	assert.Equal(t, 1.0, scores[knowledge.AptitudeVerbal])
	assert.Equal(t, 0.0, scores[knowledge.AptitudeSpatial])
	assert.NotContains(t, scores, knowledge.AptitudeType("telepathy"))
}

func TestNormalizeIntelligenceIsSparse(t *testing.T) {
	scores := NormalizeIntelligence([]IntelligenceRating{
		{Type: "Musical", Score: 1},
		{Type: "Spatial", Score: 5},
		{Type: "Linguistic", Score: 3},
	})

	require.Len(t, scores, 3)
	assert.Equal(t, 0.0, scores["Musical"])
	assert.Equal(t, 1.0, scores["Spatial"])
	assert.Equal(t, 0.5, scores["Linguistic"])
	assert.NotContains(t, scores, "Logical-Mathematical")
}

func TestNormalizePreferencesAveragesGroups(t *testing.T) {
	scores := NormalizePreferences(map[string]int{
		"Arts & Creativity":   10,
		"Music & Performance": 1,
	})

	require.Len(t, scores, len(knowledge.PreferenceCategories))
	// Group mean 5.5 rescaled: (5.5-1)/9.
	assert.InDelta(t, 0.5, scores["Creative"], 1e-9)
	for _, category := range knowledge.PreferenceCategories {
		if category == "Creative" {
			continue
		}
		assert.Equal(t, 0.0, scores[category], category)
	}
}

func TestNormalizePreferencesSharedLabelFeedsBothCategories(t *testing.T) {
	// "Research & Analysis" contributes to STEM and Academic alike.
	scores := NormalizePreferences(map[string]int{"Research & Analysis": 10})

	assert.Equal(t, 1.0, scores["Academic"])
	assert.Equal(t, 1.0, scores["STEM"])
}
