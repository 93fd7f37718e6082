package app

import (
	"edulift_backend/docs"
	"edulift_backend/internal/config"
	"edulift_backend/internal/middleware"
	"edulift_backend/internal/model"
	"edulift_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, repos *repositories, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	// Public routes: health, auth and both assessment engines. Assessments are
	// anonymous; they keep no per-user state.
	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)
		public.POST("/auth/register", c.auth.Register)
		public.POST("/auth/login", c.auth.Login)

		guidance := public.Group("/guidance")
		{
			guidance.POST("/analyze", c.guidance.AnalyzeCareer)
			guidance.GET("/careers", c.guidance.ListCareers)
			guidance.GET("/skills", c.guidance.SkillOptions)
		}

		talent := public.Group("/talent")
		{
			talent.POST("/analyze", c.talent.AnalyzeTalent)
			talent.GET("/areas", c.talent.ListTalentAreas)
			talent.GET("/aptitude-questions", c.talent.AptitudeQuestions)
			talent.GET("/intelligence-types", c.talent.IntelligenceTypes)
		}
	}

	// Authorized routes: test taking needs a user identity for the adaptive
	// session history.
	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(cfg), middleware.ActivityMiddleware(repos.user))
	{
		authGroup.GET("/auth/me", c.auth.Me)

		authGroup.GET("/tests", c.test.ListTests)
		authGroup.POST("/tests/:id/start", c.test.StartAttempt)
		authGroup.GET("/tests/:id/questions", c.test.GetTestQuestions)
		authGroup.POST("/tests/submit", c.test.SubmitTest)
		authGroup.GET("/tests/:id/results", c.test.GetTestResults)
		authGroup.GET("/questions", c.test.ListQuestions)
		authGroup.GET("/results", c.test.ListResults)

		// Authoring and analytics are for staff.
		staff := authGroup.Group("/")
		staff.Use(middleware.RoleMiddleware(model.Teacher, model.Admin))
		{
			staff.POST("/tests", c.test.CreateTest)
			staff.PATCH("/tests/:id/publish", c.test.PublishTest)
			staff.POST("/questions", c.test.CreateQuestion)
			staff.GET("/analytics", c.test.GetAnalytics)
		}
	}
}
