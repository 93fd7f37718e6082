package service

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"edulift_backend/internal/knowledge"
	"edulift_backend/pkg/logger"

	"go.uber.org/zap"
)

const (
	careerPersonalityWeight = 0.4
	careerSkillsWeight      = 0.4
	careerInterestsWeight   = 0.2

	// Normalized trait scores above this mark a trait as dominant in the fit
	// explanation.
	dominantTraitThreshold = 0.6

	maxRecommendations = 5
)

// GuidanceService ranks the static career catalog against a normalized user
// profile. It keeps no state and is safe for concurrent use.
type GuidanceService struct{}

func NewGuidanceService() *GuidanceService {
	return &GuidanceService{}
}

type CareerAnalysisRequest struct {
	PersonalityAnswers map[string]int `json:"personality_answers" binding:"required"`
	Skills             []SkillRating  `json:"skills"`
	Interests          []string       `json:"interests"`
}

// CareerRecommendation is one ranked catalog entry with a personalized fit
// explanation. Built fresh on every request, never cached.
type CareerRecommendation struct {
	Title           string   `json:"title"`
	MatchPercentage float64  `json:"match_percentage"`
	Description     string   `json:"description"`
	RequiredSkills  []string `json:"required_skills"`
	SalaryRange     string   `json:"salary_range"`
	GrowthProspects string   `json:"growth_prospects"`
	EducationPath   []string `json:"education_path"`
	PersonalityFit  string   `json:"personality_fit"`
}

type CareerAnalysisResult struct {
	PersonalityScores map[string]float64                  `json:"personality_scores"`
	SkillScores       map[knowledge.SkillCategory]float64 `json:"skill_scores"`
	Recommendations   []CareerRecommendation              `json:"recommendations"`
}

// CareerInfo is the public catalog view without fit text.
type CareerInfo struct {
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	RequiredSkills  []string `json:"required_skills"`
	SalaryRange     string   `json:"salary_range"`
	GrowthProspects string   `json:"growth_prospects"`
	EducationPath   []string `json:"education_path"`
}

func (s *GuidanceService) AnalyzeProfile(req CareerAnalysisRequest) *CareerAnalysisResult {
	personalityScores := NormalizePersonality(req.PersonalityAnswers)
	skillScores := NormalizeSkills(req.Skills)
	recommendations := MatchCareers(personalityScores, skillScores, req.Interests)

	logger.Log.Debug("career profile analyzed",
		zap.Int("answers", len(req.PersonalityAnswers)),
		zap.Int("skills", len(req.Skills)),
		zap.Int("interests", len(req.Interests)),
	)

	return &CareerAnalysisResult{
		PersonalityScores: personalityScores,
		SkillScores:       skillScores,
		Recommendations:   recommendations,
	}
}

// MatchCareers scores every catalog entry with the weighted composite
// 0.4*traits + 0.4*skills + 0.2*interests and returns the top five. Ties keep
// catalog order.
func MatchCareers(personalityScores map[string]float64, skillScores map[knowledge.SkillCategory]float64, interests []string) []CareerRecommendation {
	interestSet := make(map[string]struct{}, len(interests))
	for _, interest := range interests {
		interestSet[interest] = struct{}{}
	}

	recommendations := make([]CareerRecommendation, 0, len(knowledge.Careers()))
	for _, career := range knowledge.Careers() {
		matchScore := 0.0

		personalityMatch := 0.0
		for _, trait := range career.PersonalityTraits {
			personalityMatch += personalityScores[trait]
		}
		if len(career.PersonalityTraits) > 0 {
			personalityMatch /= float64(len(career.PersonalityTraits))
		}
		matchScore += personalityMatch * careerPersonalityWeight

		skillsMatch := 0.0
		for _, skill := range career.RequiredSkills {
			skillsMatch += skillScores[knowledge.SkillCategoryFor(skill)]
		}
		if len(career.RequiredSkills) > 0 {
			skillsMatch /= float64(len(career.RequiredSkills))
		}
		matchScore += skillsMatch * careerSkillsWeight

		interestMatch := 0.0
		if len(career.InterestTags) > 0 {
			common := 0
			for _, tag := range career.InterestTags {
				if _, ok := interestSet[tag]; ok {
					common++
				}
			}
			interestMatch = float64(common) / float64(len(career.InterestTags))
		}
		matchScore += interestMatch * careerInterestsWeight

		recommendations = append(recommendations, CareerRecommendation{
			Title:           career.Title,
			MatchPercentage: toPercentage(matchScore),
			Description:     career.Description,
			RequiredSkills:  career.RequiredSkills,
			SalaryRange:     career.SalaryRange,
			GrowthProspects: career.GrowthProspects,
			EducationPath:   career.EducationPath,
			PersonalityFit:  personalityFitText(career.PersonalityFit, personalityScores),
		})
	}

	sort.SliceStable(recommendations, func(i, j int) bool {
		return recommendations[i].MatchPercentage > recommendations[j].MatchPercentage
	})

	if len(recommendations) > maxRecommendations {
		recommendations = recommendations[:maxRecommendations]
	}
	return recommendations
}

func (s *GuidanceService) ListCareers() []CareerInfo {
	careers := make([]CareerInfo, 0, len(knowledge.Careers()))
	for _, c := range knowledge.Careers() {
		careers = append(careers, CareerInfo{
			Title:           c.Title,
			Description:     c.Description,
			RequiredSkills:  c.RequiredSkills,
			SalaryRange:     c.SalaryRange,
			GrowthProspects: c.GrowthProspects,
			EducationPath:   c.EducationPath,
		})
	}
	return careers
}

func (s *GuidanceService) SkillOptions() []knowledge.SkillOption {
	return knowledge.SkillOptions()
}

// personalityFitText appends the user's dominant traits to the entry's static
// fit text, in declared trait order.
func personalityFitText(base string, personalityScores map[string]float64) string {
	var dominant []string
	for _, trait := range knowledge.PersonalityTraits {
		if personalityScores[trait] > dominantTraitThreshold {
			dominant = append(dominant, strings.ToLower(trait))
		}
	}
	if len(dominant) == 0 {
		return base
	}
	return base + fmt.Sprintf(" Your strong %s traits align well with this role.", strings.Join(dominant, ", "))
}

// toPercentage clamps a composite score to [0,100] percent, one decimal.
func toPercentage(score float64) float64 {
	pct := score * 100
	if pct > 100 {
		pct = 100
	}
	if pct < 0 {
		pct = 0
	}
	return math.Round(pct*10) / 10
}
