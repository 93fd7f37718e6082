package service

import (
	"testing"

	"edulift_backend/internal/knowledge"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func uniformAptitudes(score float64) map[knowledge.AptitudeType]float64 {
	scores := make(map[knowledge.AptitudeType]float64, len(knowledge.AptitudeTypes))
	for _, t := range knowledge.AptitudeTypes {
		scores[t] = score
	}
	return scores
}

func TestMatchTalentsReturnsTopFiveSorted(t *testing.T) {
	intelligences := map[string]float64{
		"Logical-Mathematical": 0.9,
		"Spatial-Visual":       0.8,
		"Linguistic":           0.7,
	}
	preferences := map[string]float64{"STEM": 0.9, "Academic": 0.8}

	recommendations := MatchTalents(uniformAptitudes(0.8), intelligences, preferences)

	require.Len(t, recommendations, maxRecommendations)
	for i := 1; i < len(recommendations); i++ {
		assert.GreaterOrEqual(t, recommendations[i-1].StrengthPercentage, recommendations[i].StrengthPercentage)
	}
	for _, r := range recommendations {
		assert.GreaterOrEqual(t, r.StrengthPercentage, 0.0)
		assert.LessOrEqual(t, r.StrengthPercentage, 100.0)
	}
}

func TestMatchTalentsSparseIntelligenceContributesNothing(t *testing.T) {
	// An empty intelligence map leaves only aptitude and preference weight on
	// the table.
	withSignal := MatchTalents(uniformAptitudes(1), map[string]float64{"Logical-Mathematical": 1, "Spatial-Visual": 1}, nil)
	withoutSignal := MatchTalents(uniformAptitudes(1), nil, nil)

	assert.Greater(t, withSignal[0].StrengthPercentage, withoutSignal[0].StrengthPercentage)
	// Aptitude alone caps the composite at its 0.3 weight.
	assert.LessOrEqual(t, withoutSignal[0].StrengthPercentage, 30.0)
}

func TestAnalyzeTalentProfileZeroFills(t *testing.T) {
	svc := NewTalentService()

	result := svc.AnalyzeProfile(TalentAnalysisRequest{})

	assert.Len(t, result.AptitudeScores, len(knowledge.AptitudeTypes))
	assert.Len(t, result.PreferenceScores, len(knowledge.PreferenceCategories))
	assert.Empty(t, result.IntelligenceScores)
	require.Len(t, result.Recommendations, maxRecommendations)
	for _, r := range result.Recommendations {
		assert.Equal(t, 0.0, r.StrengthPercentage)
	}
}

func TestListTalentAreasCoversCatalog(t *testing.T) {
	svc := NewTalentService()

	areas := svc.ListTalentAreas()
	assert.Len(t, areas, len(knowledge.TalentAreas()))
	for _, a := range areas {
		assert.NotEmpty(t, a.Name)
		assert.NotEmpty(t, a.PrimaryIntelligences)
	}
}

func TestAptitudeQuestionCatalog(t *testing.T) {
	svc := NewTalentService()

	questions := svc.AptitudeQuestions()
	require.NotEmpty(t, questions)
	for _, q := range questions {
		assert.Contains(t, knowledge.AptitudeTypes, q.Type)
		assert.GreaterOrEqual(t, q.CorrectAnswer, 0)
		assert.Less(t, q.CorrectAnswer, len(q.Options))
	}
}
