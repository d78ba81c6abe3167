package controller

import (
	"errors"

	"ai900_study_backend/internal/service"
	"ai900_study_backend/internal/session"
	"ai900_study_backend/internal/util"
	"ai900_study_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
)

type ProgressController struct {
	Progress *service.ProgressService
	Sessions *session.Manager
}

func NewProgressController(progress *service.ProgressService, sessions *session.Manager) *ProgressController {
	return &ProgressController{Progress: progress, Sessions: sessions}
}

// @Summary 获取当前进度
// @Tags 进度
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/progress [get]
func (c *ProgressController) GetProgress(ctx *gin.Context) {
	util.Success(ctx, session.Progress(ctx))
}

// @Summary 更新学习进度
// @Description 部分字段更新；completed_topic 幂等，主题号小于5时自动推进到下一主题
// @Tags 进度
// @Accept json
// @Produce json
// @Param body body service.UpdateProgressRequest true "要更新的字段"
// @Success 200 {object} util.Response
// @Router /api/progress [post]
func (c *ProgressController) UpdateProgress(ctx *gin.Context) {
	var req service.UpdateProgressRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	progress := session.Progress(ctx)
	c.Progress.UpdateProgress(progress, req)

	if err := c.Sessions.Save(ctx); err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, progress)
}

// @Summary 提交测验答案
// @Description 空答案集返回400；答案键里不存在的题号跳过不计分
// @Tags 测验
// @Accept json
// @Produce json
// @Param body body service.SubmitQuizRequest true "答案映射 题号->选项字母"
// @Success 200 {object} util.Response
// @Router /api/quiz/submit [post]
func (c *ProgressController) SubmitQuiz(ctx *gin.Context) {
	var req service.SubmitQuizRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	progress := session.Progress(ctx)
	result, err := c.Progress.SubmitQuiz(progress, req)
	if err != nil {
		if errors.Is(err, util.ErrNoAnswers) {
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

	quizType := req.QuizType
	if quizType == "" {
		quizType = "practice"
	}
	monitoring.QuizSubmissions.WithLabelValues(quizType).Inc()

	util.Success(ctx, result)
}

// @Summary 获取全部学习笔记
// @Tags 笔记
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/notes [get]
func (c *ProgressController) GetNotes(ctx *gin.Context) {
	util.Success(ctx, gin.H{"notes": session.Progress(ctx).StudyNotes})
}

type saveNoteRequest struct {
	NoteID   string `json:"note_id"`
	NoteText string `json:"note_text"`
}

// @Summary 保存学习笔记
// @Tags 笔记
// @Accept json
// @Produce json
// @Param body body saveNoteRequest true "笔记内容，note_id 形如 topic_X_section_Y"
// @Success 200 {object} util.Response
// @Router /api/notes [post]
func (c *ProgressController) SaveNote(ctx *gin.Context) {
	var req saveNoteRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	progress := session.Progress(ctx)
	if err := c.Progress.SaveNote(progress, req.NoteID, req.NoteText); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if err := c.Sessions.Save(ctx); err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"saved": true})
}

type toggleBookmarkRequest struct {
	BookmarkID string `json:"bookmark_id"`
}

// @Summary 切换书签
// @Description 幂等开关，返回新的收藏状态
// @Tags 书签
// @Accept json
// @Produce json
// @Param body body toggleBookmarkRequest true "书签ID，形如 topic_X_section_Y"
// @Success 200 {object} util.Response
// @Router /api/bookmarks/toggle [post]
func (c *ProgressController) ToggleBookmark(ctx *gin.Context) {
	var req toggleBookmarkRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	progress := session.Progress(ctx)
	bookmarked, err := c.Progress.ToggleBookmark(progress, req.BookmarkID)
	if err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if err := c.Sessions.Save(ctx); err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"bookmarked": bookmarked})
}
