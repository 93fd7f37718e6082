package controller

import (
	"errors"

	"edulift_backend/internal/service"
	"edulift_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type TestController struct {
	TestService *service.TestService
}

func NewTestController(testService *service.TestService) *TestController {
	return &TestController{TestService: testService}
}

// ListTests godoc
// @Summary List tests
// @Tags tests
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=[]model.Test}
// @Router /api/tests [get]
func (c *TestController) ListTests(ctx *gin.Context) {
	tests, err := c.TestService.ListTests()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, tests)
}

// CreateTest godoc
// @Summary Create a test
// @Tags tests
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   body body service.TestRequest true "Test definition"
// @Success 201 {object} util.Response{data=model.Test}
// @Failure 400 {object} util.Response "Invalid request payload"
// @Failure 403 {object} util.Response "Forbidden"
// @Router /api/tests [post]
func (c *TestController) CreateTest(ctx *gin.Context) {
	var req service.TestRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	test, err := c.TestService.CreateTest(req)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Created(ctx, test)
}

// PublishTest godoc
// @Summary Publish a draft test
// @Description Makes the test deliverable to students; publishing an already published test is a no-op
// @Tags tests
// @Produce  json
// @Security BearerAuth
// @Param   id path string true "Test id"
// @Success 200 {object} util.Response{data=model.Test}
// @Failure 403 {object} util.Response "Forbidden"
// @Failure 404 {object} util.Response "Test not found"
// @Router /api/tests/{id}/publish [patch]
func (c *TestController) PublishTest(ctx *gin.Context) {
	test, err := c.TestService.PublishTest(ctx.Param("id"))
	if err != nil {
		if errors.Is(err, util.ErrTestNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, test)
}

// ListQuestions godoc
// @Summary List the question bank
// @Tags tests
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=[]model.Question}
// @Router /api/questions [get]
func (c *TestController) ListQuestions(ctx *gin.Context) {
	questions, err := c.TestService.ListQuestions()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, questions)
}

// CreateQuestion godoc
// @Summary Add a question to the bank
// @Tags tests
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   body body service.QuestionRequest true "Question definition"
// @Success 201 {object} util.Response{data=model.Question}
// @Failure 400 {object} util.Response "Invalid request payload"
// @Failure 403 {object} util.Response "Forbidden"
// @Router /api/questions [post]
func (c *TestController) CreateQuestion(ctx *gin.Context) {
	var req service.QuestionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	question, err := c.TestService.CreateQuestion(req)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Created(ctx, question)
}

// GetTestQuestions godoc
// @Summary Get the questions for a test attempt
// @Description Adaptive tests pick the difficulty tier from the caller's session history; correct answers are never included
// @Tags tests
// @Produce  json
// @Security BearerAuth
// @Param   id path string true "Test id"
// @Success 200 {object} util.Response{data=object}
// @Failure 404 {object} util.Response "Test not found"
// @Router /api/tests/{id}/questions [get]
func (c *TestController) GetTestQuestions(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	questions, adaptive, err := c.TestService.GetTestQuestions(ctx.Request.Context(), ctx.Param("id"), claims.UserID)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrTestNotFound):
			util.NotFound(ctx)
		case errors.Is(err, util.ErrTestNotPublished):
			util.Forbidden(ctx)
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, gin.H{
		"questions": questions,
		"adaptive":  adaptive,
	})
}

// StartAttempt godoc
// @Summary Start a fresh test attempt
// @Description Clears the caller's adaptive session history for the test and returns the opening question set
// @Tags tests
// @Produce  json
// @Security BearerAuth
// @Param   id path string true "Test id"
// @Success 200 {object} util.Response{data=object}
// @Failure 404 {object} util.Response "Test not found"
// @Router /api/tests/{id}/start [post]
func (c *TestController) StartAttempt(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	testID := ctx.Param("id")
	if err := c.TestService.BeginAttempt(ctx.Request.Context(), testID, claims.UserID); err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	questions, adaptive, err := c.TestService.GetTestQuestions(ctx.Request.Context(), testID, claims.UserID)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrTestNotFound):
			util.NotFound(ctx)
		case errors.Is(err, util.ErrTestNotPublished):
			util.Forbidden(ctx)
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, gin.H{
		"questions": questions,
		"adaptive":  adaptive,
	})
}

// SubmitTest godoc
// @Summary Submit answers for grading
// @Description Grades every answer, stores the result with learning insights and extends the adaptive session history
// @Tags tests
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   body body service.SubmitTestRequest true "Submitted answers"
// @Success 201 {object} util.Response{data=model.TestResult}
// @Failure 400 {object} util.Response "Invalid request payload"
// @Failure 404 {object} util.Response "Test not found"
// @Router /api/tests/submit [post]
func (c *TestController) SubmitTest(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.SubmitTestRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	result, err := c.TestService.SubmitTest(ctx.Request.Context(), claims.UserID, req)
	if err != nil {
		if errors.Is(err, util.ErrTestNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Created(ctx, result)
}

// ListResults godoc
// @Summary List all test results
// @Tags tests
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=[]model.TestResult}
// @Router /api/results [get]
func (c *TestController) ListResults(ctx *gin.Context) {
	results, err := c.TestService.ListResults()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, results)
}

// GetTestResults godoc
// @Summary Results and analytics for one test
// @Tags tests
// @Produce  json
// @Security BearerAuth
// @Param   id path string true "Test id"
// @Success 200 {object} util.Response{data=service.TestResultsResponse}
// @Router /api/tests/{id}/results [get]
func (c *TestController) GetTestResults(ctx *gin.Context) {
	resp, err := c.TestService.GetTestResults(ctx.Param("id"))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, resp)
}

// GetAnalytics godoc
// @Summary Platform-wide performance analytics
// @Tags tests
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=service.OverallAnalytics}
// @Failure 403 {object} util.Response "Forbidden"
// @Router /api/analytics [get]
func (c *TestController) GetAnalytics(ctx *gin.Context) {
	analytics, err := c.TestService.GetAnalytics()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, analytics)
}
