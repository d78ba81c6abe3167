package app

import (
	"ai900_study_backend/docs"
	"ai900_study_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())
	router.GET("/health", c.health.HealthCheck)

	// 所有学习接口都挂会话中间件：无Cookie时惰性建会话
	api := router.Group("/api")
	api.Use(a.sessions.Middleware())
	{
		// 学习内容
		api.GET("/outline", c.content.GetOutline)
		api.GET("/topics/:num", c.content.StudyTopic)
		api.GET("/review", c.content.Review)

		// 测验
		api.GET("/quiz/:type", c.content.GetQuiz)
		api.POST("/quiz/submit", c.progress.SubmitQuiz)
		api.GET("/exam", c.content.PracticeExam)

		// 闪卡
		api.GET("/flashcards", c.content.GetFlashcards)
		api.POST("/flashcards/response", c.flashcard.Respond)
		api.GET("/flashcards/stats", c.flashcard.Stats)

		// 进度、笔记、书签
		api.GET("/progress", c.progress.GetProgress)
		api.POST("/progress", c.progress.UpdateProgress)
		api.GET("/notes", c.progress.GetNotes)
		api.POST("/notes", c.progress.SaveNote)
		api.POST("/bookmarks/toggle", c.progress.ToggleBookmark)

		// 分析
		api.GET("/dashboard", c.analytics.Dashboard)
		api.GET("/analytics", c.analytics.Analytics)
		api.GET("/weak-areas", c.analytics.WeakAreas)
	}
}
