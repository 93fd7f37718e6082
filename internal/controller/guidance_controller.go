package controller

import (
	"edulift_backend/internal/service"
	"edulift_backend/internal/util"
	"edulift_backend/pkg/tracing"

	"github.com/gin-gonic/gin"
)

type GuidanceController struct {
	GuidanceService *service.GuidanceService
}

func NewGuidanceController(guidanceService *service.GuidanceService) *GuidanceController {
	return &GuidanceController{GuidanceService: guidanceService}
}

// AnalyzeCareer godoc
// @Summary Analyze a career profile
// @Description Normalizes personality answers, skill self-ratings and interests, then ranks matching careers
// @Tags guidance
// @Accept  json
// @Produce  json
// @Param   body body service.CareerAnalysisRequest true "Assessment answers"
// @Success 200 {object} util.Response{data=service.CareerAnalysisResult}
// @Failure 400 {object} util.Response "Invalid request payload"
// @Router /api/guidance/analyze [post]
func (c *GuidanceController) AnalyzeCareer(ctx *gin.Context) {
	var req service.CareerAnalysisRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	_, span := tracing.Tracer.Start(ctx.Request.Context(), "guidance.analyze")
	result := c.GuidanceService.AnalyzeProfile(req)
	span.End()

	util.Success(ctx, result)
}

// ListCareers godoc
// @Summary List the career catalog
// @Tags guidance
// @Produce  json
// @Success 200 {object} util.Response{data=[]service.CareerInfo}
// @Router /api/guidance/careers [get]
func (c *GuidanceController) ListCareers(ctx *gin.Context) {
	util.Success(ctx, c.GuidanceService.ListCareers())
}

// SkillOptions godoc
// @Summary List rateable skills
// @Description Returns the skills users can self-rate, with their categories
// @Tags guidance
// @Produce  json
// @Success 200 {object} util.Response{data=[]knowledge.SkillOption}
// @Router /api/guidance/skills [get]
func (c *GuidanceController) SkillOptions(ctx *gin.Context) {
	util.Success(ctx, c.GuidanceService.SkillOptions())
}
