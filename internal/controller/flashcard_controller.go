package controller

import (
	"errors"

	"ai900_study_backend/internal/service"
	"ai900_study_backend/internal/session"
	"ai900_study_backend/internal/util"
	"ai900_study_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
)

type FlashcardController struct {
	Flashcards *service.FlashcardService
	Sessions   *session.Manager
}

func NewFlashcardController(flashcards *service.FlashcardService, sessions *session.Manager) *FlashcardController {
	return &FlashcardController{Flashcards: flashcards, Sessions: sessions}
}

// @Summary 记录闪卡作答
// @Description 答对进已掌握并移出复习队列，答错进复习队列并移出已掌握
// @Tags 闪卡
// @Accept json
// @Produce json
// @Param body body service.FlashcardResponseRequest true "卡片ID、作答结果和学习秒数"
// @Success 200 {object} util.Response
// @Router /api/flashcards/response [post]
func (c *FlashcardController) Respond(ctx *gin.Context) {
	var req service.FlashcardResponseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	progress := session.Progress(ctx)
	result, err := c.Flashcards.RespondToCard(progress, req)
	if err != nil {
		if errors.Is(err, util.ErrCardNotFound) || errors.Is(err, util.ErrInvalidResponse) {
			util.BadRequest(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	if err := c.Sessions.Save(ctx); err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	monitoring.FlashcardResponses.WithLabelValues(req.Response).Inc()

	util.Success(ctx, result)
}

// @Summary 闪卡统计
// @Tags 闪卡
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/flashcards/stats [get]
func (c *FlashcardController) Stats(ctx *gin.Context) {
	util.Success(ctx, c.Flashcards.Overview(session.Progress(ctx)))
}
