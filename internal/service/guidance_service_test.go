package service

import (
	"strings"
	"testing"

	"edulift_backend/internal/knowledge"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func uniformTraits(score float64) map[string]float64 {
	scores := make(map[string]float64, len(knowledge.PersonalityTraits))
	for _, trait := range knowledge.PersonalityTraits {
		scores[trait] = score
	}
	return scores
}

func uniformSkills(score float64) map[knowledge.SkillCategory]float64 {
	scores := make(map[knowledge.SkillCategory]float64, len(knowledge.SkillCategories))
	for _, category := range knowledge.SkillCategories {
		scores[category] = score
	}
	return scores
}

func TestMatchCareersReturnsTopFiveSorted(t *testing.T) {
	recommendations := MatchCareers(uniformTraits(0.7), uniformSkills(0.8), []string{"Technology"})

	require.Len(t, recommendations, maxRecommendations)
	for i := 1; i < len(recommendations); i++ {
		assert.GreaterOrEqual(t, recommendations[i-1].MatchPercentage, recommendations[i].MatchPercentage)
	}
	for _, r := range recommendations {
		assert.GreaterOrEqual(t, r.MatchPercentage, 0.0)
		assert.LessOrEqual(t, r.MatchPercentage, 100.0)
	}
}

func TestMatchCareersMonotonicInProfile(t *testing.T) {
	weak := MatchCareers(uniformTraits(0.2), uniformSkills(0.2), nil)
	strong := MatchCareers(uniformTraits(0.9), uniformSkills(0.9), nil)

	assert.Greater(t, strong[0].MatchPercentage, weak[0].MatchPercentage)
}

func TestMatchCareersZeroProfile(t *testing.T) {
	recommendations := MatchCareers(map[string]float64{}, map[knowledge.SkillCategory]float64{}, nil)

	require.Len(t, recommendations, maxRecommendations)
	for _, r := range recommendations {
		assert.Equal(t, 0.0, r.MatchPercentage)
	}
}

func TestMatchCareersAppendsDominantTraits(t *testing.T) {
	recommendations := MatchCareers(uniformTraits(0.9), uniformSkills(0.5), nil)

	for _, r := range recommendations {
		assert.Contains(t, r.PersonalityFit, "Your strong")
		assert.Contains(t, r.PersonalityFit, strings.ToLower(knowledge.TraitOpenness))
	}
}

func TestMatchCareersOmitsFitSuffixWithoutDominantTraits(t *testing.T) {
	recommendations := MatchCareers(uniformTraits(0.5), uniformSkills(0.5), nil)

	for _, r := range recommendations {
		assert.NotContains(t, r.PersonalityFit, "Your strong")
	}
}

func TestAnalyzeProfileWiresNormalizersAndMatcher(t *testing.T) {
	svc := NewGuidanceService()

	result := svc.AnalyzeProfile(CareerAnalysisRequest{
		PersonalityAnswers: map[string]int{"1": 5, "6": 5},
		Skills:             []SkillRating{{Category: knowledge.SkillTechnical, Level: 5}},
		Interests:          []string{"Technology", "Problem Solving"},
	})

	assert.Equal(t, 1.0, result.PersonalityScores[knowledge.TraitOpenness])
	assert.Equal(t, 1.0, result.SkillScores[knowledge.SkillTechnical])
	require.Len(t, result.Recommendations, maxRecommendations)
}

func TestListCareersCoversCatalog(t *testing.T) {
	svc := NewGuidanceService()

	careers := svc.ListCareers()
	assert.Len(t, careers, len(knowledge.Careers()))
	for _, c := range careers {
		assert.NotEmpty(t, c.Title)
		assert.NotEmpty(t, c.RequiredSkills)
	}
}
