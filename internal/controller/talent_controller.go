package controller

import (
	"edulift_backend/internal/service"
	"edulift_backend/internal/util"
	"edulift_backend/pkg/tracing"

	"github.com/gin-gonic/gin"
)

type TalentController struct {
	TalentService *service.TalentService
}

func NewTalentController(talentService *service.TalentService) *TalentController {
	return &TalentController{TalentService: talentService}
}

// AnalyzeTalent godoc
// @Summary Analyze a talent profile
// @Description Normalizes aptitude results, intelligence ratings and preferences, then ranks talent areas
// @Tags talent
// @Accept  json
// @Produce  json
// @Param   body body service.TalentAnalysisRequest true "Assessment answers"
// @Success 200 {object} util.Response{data=service.TalentAnalysisResult}
// @Failure 400 {object} util.Response "Invalid request payload"
// @Router /api/talent/analyze [post]
func (c *TalentController) AnalyzeTalent(ctx *gin.Context) {
	var req service.TalentAnalysisRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	_, span := tracing.Tracer.Start(ctx.Request.Context(), "talent.analyze")
	result := c.TalentService.AnalyzeProfile(req)
	span.End()

	util.Success(ctx, result)
}

// ListTalentAreas godoc
// @Summary List the talent-area catalog
// @Tags talent
// @Produce  json
// @Success 200 {object} util.Response{data=[]service.TalentAreaInfo}
// @Router /api/talent/areas [get]
func (c *TalentController) ListTalentAreas(ctx *gin.Context) {
	util.Success(ctx, c.TalentService.ListTalentAreas())
}

// AptitudeQuestions godoc
// @Summary List aptitude test questions
// @Tags talent
// @Produce  json
// @Success 200 {object} util.Response{data=[]knowledge.AptitudeQuestion}
// @Router /api/talent/aptitude-questions [get]
func (c *TalentController) AptitudeQuestions(ctx *gin.Context) {
	util.Success(ctx, c.TalentService.AptitudeQuestions())
}

// IntelligenceTypes godoc
// @Summary List multiple-intelligence types
// @Tags talent
// @Produce  json
// @Success 200 {object} util.Response{data=[]knowledge.IntelligenceType}
// @Router /api/talent/intelligence-types [get]
func (c *TalentController) IntelligenceTypes(ctx *gin.Context) {
	util.Success(ctx, c.TalentService.IntelligenceTypes())
}
