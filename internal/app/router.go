package app

import (
	"trivia_api/docs"
	"trivia_api/internal/util"
	"trivia_api/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers) {
	docs.SwaggerInfo.BasePath = "/"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())
	router.GET("/health", c.health.HealthCheck)

	categories := router.Group("/categories")
	{
		categories.GET("", c.category.ListCategories)
		categories.GET("/:id/questions", c.category.QuestionsByCategory)
	}

	questions := router.Group("/questions")
	{
		questions.GET("", c.question.ListQuestions)
		questions.POST("", c.question.CreateQuestion)
		questions.POST("/search", c.question.SearchQuestions)
		questions.DELETE("/:id", c.question.DeleteQuestion)
	}

	router.POST("/quizzes", c.quiz.NextQuestion)

	router.NoRoute(util.NotFound)
	router.NoMethod(util.MethodNotAllowed)
}
