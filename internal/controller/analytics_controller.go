package controller

import (
	"ai900_study_backend/internal/service"
	"ai900_study_backend/internal/session"
	"ai900_study_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type AnalyticsController struct {
	Service *service.AnalyticsService
}

func NewAnalyticsController(analytics *service.AnalyticsService) *AnalyticsController {
	return &AnalyticsController{Service: analytics}
}

// @Summary 学习主页数据
// @Tags 分析
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/dashboard [get]
func (c *AnalyticsController) Dashboard(ctx *gin.Context) {
	progress := session.Progress(ctx)

	completionPercentage := float64(len(progress.TopicsCompleted)) / 5 * 100

	util.Success(ctx, gin.H{
		"progress":              progress,
		"completion_percentage": completionPercentage,
		"readiness":             c.Service.CalculateReadiness(progress),
	})
}

// @Summary 成绩分析与备考就绪度
// @Tags 分析
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/analytics [get]
func (c *AnalyticsController) Analytics(ctx *gin.Context) {
	progress := session.Progress(ctx)

	util.Success(ctx, gin.H{
		"readiness":    c.Service.CalculateReadiness(progress),
		"quiz_history": c.Service.QuizHistory(progress),
		"progress":     progress,
	})
}

// @Summary 弱项分析与学习计划
// @Tags 分析
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/weak-areas [get]
func (c *AnalyticsController) WeakAreas(ctx *gin.Context) {
	progress := session.Progress(ctx)

	weakTopics := c.Service.AnalyzeWeakAreas(progress)

	util.Success(ctx, gin.H{
		"weak_topics": weakTopics,
		"study_plan":  c.Service.GenerateStudyPlan(weakTopics),
	})
}
