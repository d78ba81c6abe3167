package controller

import (
	"net/http"

	"ai900_study_backend/internal/model"

	"github.com/gin-gonic/gin"
)

type HealthController struct {
	Catalog *model.Catalog
}

func NewHealthController(catalog *model.Catalog) *HealthController {
	return &HealthController{Catalog: catalog}
}

// @Summary 健康检查
// @Tags 系统
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /health [get]
func (c *HealthController) HealthCheck(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{
		"status":     "ok",
		"topics":     len(c.Catalog.Topics),
		"questions":  len(c.Catalog.PracticeQuiz.Questions),
		"flashcards": len(c.Catalog.Flashcards),
	})
}
