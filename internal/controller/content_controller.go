package controller

import (
	"strconv"

	"ai900_study_backend/internal/service"
	"ai900_study_backend/internal/session"
	"ai900_study_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ContentController struct {
	Content  *service.ContentService
	Progress *service.ProgressService
	Sessions *session.Manager
}

func NewContentController(content *service.ContentService, progress *service.ProgressService, sessions *session.Manager) *ContentController {
	return &ContentController{Content: content, Progress: progress, Sessions: sessions}
}

// @Summary 获取考试大纲
// @Tags 学习内容
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/outline [get]
func (c *ContentController) GetOutline(ctx *gin.Context) {
	util.Success(ctx, c.Content.Outline())
}

// @Summary 学习指定主题
// @Description 返回主题内容并记录学习游标；切换主题时游标归零，重开同一主题保留位置
// @Tags 学习内容
// @Produce json
// @Param num path int true "主题编号 1-5"
// @Success 200 {object} util.Response
// @Router /api/topics/{num} [get]
func (c *ContentController) StudyTopic(ctx *gin.Context) {
	num, err := strconv.Atoi(ctx.Param("num"))
	if err != nil {
		util.BadRequest(ctx, "invalid topic number")
		return
	}

	topic, err := c.Content.Topic(num)
	if err != nil {
		util.NotFound(ctx)
		return
	}

	progress := session.Progress(ctx)
	c.Progress.StartTopic(progress, num)
	if err := c.Sessions.Save(ctx); err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{
		"topic":           topic,
		"current_section": progress.CurrentSection,
		"current_chunk":   progress.CurrentChunk,
		"progress":        progress,
	})
}

// @Summary 复习核心要点
// @Tags 学习内容
// @Produce json
// @Param q query string false "搜索关键词"
// @Success 200 {object} util.Response
// @Router /api/review [get]
func (c *ContentController) Review(ctx *gin.Context) {
	query := ctx.Query("q")
	util.Success(ctx, gin.H{
		"key_essentials": c.Content.SearchEssentials(query),
		"search_query":   query,
	})
}

// @Summary 按类型出测验题
// @Description practice 全题库抽样；custom 支持 topics 过滤；topic_<n> 只出该主题区间的题
// @Tags 测验
// @Produce json
// @Param type path string true "测验类型"
// @Param num_questions query int false "题目数量" default(10)
// @Param topics query []string false "主题过滤，可多选"
// @Success 200 {object} util.Response
// @Router /api/quiz/{type} [get]
func (c *ContentController) GetQuiz(ctx *gin.Context) {
	quizType := ctx.Param("type")

	numQuestions := 10
	if v, err := strconv.Atoi(ctx.DefaultQuery("num_questions", "10")); err == nil && v > 0 {
		numQuestions = v
	}

	questions := c.Content.QuizQuestions(quizType, numQuestions, ctx.QueryArray("topics"))

	util.Success(ctx, gin.H{
		"questions": questions,
		"quiz_type": quizType,
	})
}

// @Summary 全真模拟考
// @Tags 测验
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/exam [get]
func (c *ContentController) PracticeExam(ctx *gin.Context) {
	util.Success(ctx, gin.H{
		"questions":     c.Content.ExamQuestions(),
		"exam_duration": 60, // 分钟
	})
}

// @Summary 获取闪卡列表
// @Tags 闪卡
// @Produce json
// @Param category query string false "类别过滤"
// @Param difficulty query string false "难度过滤 easy|medium|hard"
// @Param mode query string false "学习模式 study|new|review" default(study)
// @Success 200 {object} util.Response
// @Router /api/flashcards [get]
func (c *ContentController) GetFlashcards(ctx *gin.Context) {
	category := ctx.DefaultQuery("category", "all")
	difficulty := ctx.DefaultQuery("difficulty", "all")
	mode := ctx.DefaultQuery("mode", "study")

	progress := session.Progress(ctx)
	cards := c.Content.Flashcards(category, difficulty, mode, progress)

	util.Success(ctx, gin.H{
		"flashcards": cards,
		"category":   category,
		"difficulty": difficulty,
		"mode":       mode,
		"stats":      progress.Flashcards.Stats,
	})
}
