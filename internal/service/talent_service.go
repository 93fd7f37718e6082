package service

import (
	"sort"

	"edulift_backend/internal/knowledge"
	"edulift_backend/pkg/logger"

	"go.uber.org/zap"
)

const (
	talentIntelligenceWeight = 0.5
	talentAptitudeWeight     = 0.3
	talentPreferenceWeight   = 0.2
)

// TalentService ranks the static talent-area catalog against normalized
// aptitude, intelligence and preference scores. Stateless, safe for
// concurrent use.
type TalentService struct{}

func NewTalentService() *TalentService {
	return &TalentService{}
}

type TalentAnalysisRequest struct {
	AptitudeResults     []AptitudeResult     `json:"aptitude_results"`
	IntelligenceScores  []IntelligenceRating `json:"intelligence_scores"`
	PersonalPreferences map[string]int       `json:"personal_preferences"`
}

type TalentRecommendation struct {
	TalentArea             string   `json:"talent_area"`
	StrengthPercentage     float64  `json:"strength_percentage"`
	Description            string   `json:"description"`
	DevelopmentSuggestions []string `json:"development_suggestions"`
	CareerOpportunities    []string `json:"career_opportunities"`
	LearningResources      []string `json:"learning_resources"`
	IntelligenceTypes      []string `json:"intelligence_types"`
}

type TalentAnalysisResult struct {
	AptitudeScores     map[knowledge.AptitudeType]float64 `json:"aptitude_scores"`
	IntelligenceScores map[string]float64                 `json:"intelligence_scores"`
	PreferenceScores   map[string]float64                 `json:"preference_scores"`
	Recommendations    []TalentRecommendation             `json:"recommendations"`
}

// TalentAreaInfo is the public catalog view.
type TalentAreaInfo struct {
	Name                 string   `json:"name"`
	Description          string   `json:"description"`
	PrimaryIntelligences []string `json:"primary_intelligences"`
	CareerOpportunities  []string `json:"career_opportunities"`
}

func (s *TalentService) AnalyzeProfile(req TalentAnalysisRequest) *TalentAnalysisResult {
	aptitudeScores := NormalizeAptitude(req.AptitudeResults)
	intelligenceScores := NormalizeIntelligence(req.IntelligenceScores)
	preferenceScores := NormalizePreferences(req.PersonalPreferences)
	recommendations := MatchTalents(aptitudeScores, intelligenceScores, preferenceScores)

	logger.Log.Debug("talent profile analyzed",
		zap.Int("aptitude_results", len(req.AptitudeResults)),
		zap.Int("intelligence_scores", len(req.IntelligenceScores)),
		zap.Int("preferences", len(req.PersonalPreferences)),
	)

	return &TalentAnalysisResult{
		AptitudeScores:     aptitudeScores,
		IntelligenceScores: intelligenceScores,
		PreferenceScores:   preferenceScores,
		Recommendations:    recommendations,
	}
}

// MatchTalents scores every talent area with the weighted composite
// 0.5*intelligences + 0.3*aptitudes + 0.2*preferences and returns the top
// five. Ties keep catalog order.
func MatchTalents(aptitudeScores map[knowledge.AptitudeType]float64, intelligenceScores map[string]float64, preferenceScores map[string]float64) []TalentRecommendation {
	recommendations := make([]TalentRecommendation, 0, len(knowledge.TalentAreas()))

	for _, area := range knowledge.TalentAreas() {
		strengthScore := 0.0

		// Intelligence scores are sparse: a type the user never reported adds
		// nothing to the sum but still counts in the denominator, matching the
		// "no signal means zero contribution" reading for declared
		// intelligences.
		intelligenceMatch := 0.0
		for _, intelligence := range area.PrimaryIntelligences {
			if score, ok := intelligenceScores[intelligence]; ok {
				intelligenceMatch += score
			}
		}
		if len(area.PrimaryIntelligences) > 0 {
			intelligenceMatch /= float64(len(area.PrimaryIntelligences))
		}
		strengthScore += intelligenceMatch * talentIntelligenceWeight

		aptitudeMatch := 0.0
		for _, aptitude := range area.AptitudeTypes {
			aptitudeMatch += aptitudeScores[aptitude]
		}
		if len(area.AptitudeTypes) > 0 {
			aptitudeMatch /= float64(len(area.AptitudeTypes))
		}
		strengthScore += aptitudeMatch * talentAptitudeWeight

		preferenceMatch := 0.0
		for _, category := range area.PreferenceCategories {
			preferenceMatch += preferenceScores[category]
		}
		if len(area.PreferenceCategories) > 0 {
			preferenceMatch /= float64(len(area.PreferenceCategories))
		}
		strengthScore += preferenceMatch * talentPreferenceWeight

		recommendations = append(recommendations, TalentRecommendation{
			TalentArea:             area.Name,
			StrengthPercentage:     toPercentage(strengthScore),
			Description:            area.Description,
			DevelopmentSuggestions: area.DevelopmentSuggestions,
			CareerOpportunities:    area.CareerOpportunities,
			LearningResources:      area.LearningResources,
			IntelligenceTypes:      area.PrimaryIntelligences,
		})
	}

	sort.SliceStable(recommendations, func(i, j int) bool {
		return recommendations[i].StrengthPercentage > recommendations[j].StrengthPercentage
	})

	if len(recommendations) > maxRecommendations {
		recommendations = recommendations[:maxRecommendations]
	}
	return recommendations
}

func (s *TalentService) ListTalentAreas() []TalentAreaInfo {
	areas := make([]TalentAreaInfo, 0, len(knowledge.TalentAreas()))
	for _, a := range knowledge.TalentAreas() {
		areas = append(areas, TalentAreaInfo{
			Name:                 a.Name,
			Description:          a.Description,
			PrimaryIntelligences: a.PrimaryIntelligences,
			CareerOpportunities:  a.CareerOpportunities,
		})
	}
	return areas
}

func (s *TalentService) AptitudeQuestions() []knowledge.AptitudeQuestion {
	return knowledge.AptitudeQuestions()
}

func (s *TalentService) IntelligenceTypes() []knowledge.IntelligenceType {
	return knowledge.IntelligenceTypes()
}
