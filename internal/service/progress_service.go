package service

import (
	"math"
	"strconv"
	"time"

	"ai900_study_backend/internal/model"
	"ai900_study_backend/internal/util"
)

const dateLayout = "2006-01-02"

// ProgressService 会话进度上的数据变换：游标推进、主题完结、测验判分、
// 连续学习天数、笔记和书签。目录只读，进度由调用方写回会话存储。
type ProgressService struct {
	Catalog *model.Catalog
}

func NewProgressService(catalog *model.Catalog) *ProgressService {
	return &ProgressService{Catalog: catalog}
}

// StartTopic 访问主题时记录"已开始"，切换到不同主题才重置小节/块游标，
// 重复打开同一主题保留阅读位置
func (s *ProgressService) StartTopic(p *model.Progress, topicNum int) {
	if !model.ContainsInt(p.TopicsStarted, topicNum) {
		p.TopicsStarted = append(p.TopicsStarted, topicNum)
	}

	if p.CurrentTopic != topicNum {
		p.CurrentTopic = topicNum
		p.CurrentSection = 0
		p.CurrentChunk = 0
	}
}

type UpdateProgressRequest struct {
	Topic          *int    `json:"topic"`
	Section        *int    `json:"section"`
	Chunk          *int    `json:"chunk"`
	CompletedTopic *int    `json:"completed_topic"`
	LastStudyDate  *string `json:"last_study_date"`
}

// UpdateProgress 部分字段更新。完结主题幂等追加，主题号小于5时自动跳到
// 下一主题并重置游标。
func (s *ProgressService) UpdateProgress(p *model.Progress, req UpdateProgressRequest) {
	if req.Topic != nil {
		p.CurrentTopic = *req.Topic
	}
	if req.Section != nil {
		p.CurrentSection = *req.Section
	}
	if req.Chunk != nil {
		p.CurrentChunk = *req.Chunk
	}
	if req.CompletedTopic != nil {
		topicNum := *req.CompletedTopic
		if !model.ContainsInt(p.TopicsCompleted, topicNum) {
			p.TopicsCompleted = append(p.TopicsCompleted, topicNum)
		}
		if topicNum < 5 {
			p.CurrentTopic = topicNum + 1
			p.CurrentSection = 0
			p.CurrentChunk = 0
		}
	}
	if req.LastStudyDate != nil {
		p.LastStudyDate = *req.LastStudyDate
	}
}

type SubmitQuizRequest struct {
	Answers   map[int]string `json:"answers" binding:"required"`
	QuizType  string         `json:"quiz_type"`
	TimeTaken int            `json:"time_taken"`
}

type QuestionResult struct {
	Correct       bool   `json:"correct"`
	UserAnswer    string `json:"user_answer"`
	CorrectAnswer string `json:"correct_answer"`
	Explanation   string `json:"explanation"`
}

type QuizResult struct {
	Score            int                                `json:"score"`
	Total            int                                `json:"total"`
	Percentage       float64                            `json:"percentage"`
	Results          map[int]QuestionResult             `json:"results"`
	TopicPerformance map[string]*model.TopicPerformance `json:"topic_performance"`
	TimeTaken        int                                `json:"time_taken"`
}

// SubmitQuiz 判分并覆盖写入该测验类型的成绩。答案键里没有的题号直接跳过，
// 不计入总数也不计分；空答案集在入口拒绝。及格（≥70%）的测验参与连续天数更新。
func (s *ProgressService) SubmitQuiz(p *model.Progress, req SubmitQuizRequest) (*QuizResult, error) {
	if len(req.Answers) == 0 {
		return nil, util.ErrNoAnswers
	}

	quizType := req.QuizType
	if quizType == "" {
		quizType = "practice"
	}

	answerKey := s.Catalog.PracticeQuiz.Answers

	result := &QuizResult{
		Results:          map[int]QuestionResult{},
		TopicPerformance: map[string]*model.TopicPerformance{},
		TimeTaken:        req.TimeTaken,
	}
	for i := 1; i <= 5; i++ {
		result.TopicPerformance["topic_"+itoa(i)] = &model.TopicPerformance{}
	}

	for num, userAnswer := range req.Answers {
		answer, ok := answerKey[num]
		if !ok {
			continue
		}

		isCorrect := answer.Correct == userAnswer
		if isCorrect {
			result.Score++
		}
		result.Total++

		perf := result.TopicPerformance["topic_"+itoa(topicForQuestion(num))]
		perf.Total++
		if isCorrect {
			perf.Correct++
		}

		result.Results[num] = QuestionResult{
			Correct:       isCorrect,
			UserAnswer:    userAnswer,
			CorrectAnswer: answer.Correct,
			Explanation:   answer.Explanation,
		}
	}

	result.Percentage = percentage(result.Score, result.Total)

	now := time.Now()
	p.QuizScores[quizType] = &model.QuizScore{
		Score:            result.Score,
		Total:            result.Total,
		Percentage:       result.Percentage,
		Date:             now.Format(time.RFC3339),
		TimeTaken:        req.TimeTaken,
		TopicPerformance: result.TopicPerformance,
	}

	if result.Percentage >= 70 {
		p.StudyStreak, p.LastQuizDate = updateStreak(p.StudyStreak, p.LastQuizDate, now)
	}

	return result, nil
}

// topicForQuestion 结构化主题归属：clamp(ceil(n/10), 1, 5)
func topicForQuestion(num int) int {
	topic := (num + 9) / 10
	if topic < 1 {
		topic = 1
	}
	if topic > 5 {
		topic = 5
	}
	return topic
}

// updateStreak 恰好隔一天加一，隔多天归一，首次记一，同一天保持不变
func updateStreak(streak int, lastDate string, now time.Time) (int, string) {
	today := now.Format(dateLayout)

	if lastDate == "" {
		return 1, today
	}

	last, err := time.Parse(dateLayout, lastDate)
	if err != nil {
		return 1, today
	}

	day, _ := time.Parse(dateLayout, today)
	days := int(day.Sub(last).Hours() / 24)

	switch {
	case days == 1:
		streak++
	case days > 1:
		streak = 1
	case streak < 1:
		streak = 1
	}
	return streak, today
}

func percentage(score, total int) float64 {
	if total == 0 {
		return 0
	}
	return round1(float64(score) / float64(total) * 100)
}

func round1(x float64) float64 {
	return math.Round(x*10) / 10
}

func itoa(n int) string {
	return strconv.Itoa(n)
}

// SaveNote 按ID保存学习笔记，记录更新时间
func (s *ProgressService) SaveNote(p *model.Progress, noteID, text string) error {
	if noteID == "" {
		return util.ErrNoteIDRequired
	}
	p.StudyNotes[noteID] = &model.Note{
		Text:    text,
		Updated: time.Now().Format(time.RFC3339),
	}
	return nil
}

// ToggleBookmark 幂等开关书签，返回新的收藏状态
func (s *ProgressService) ToggleBookmark(p *model.Progress, bookmarkID string) (bool, error) {
	if bookmarkID == "" {
		return false, util.ErrBookmarkIDRequired
	}

	for i, b := range p.Bookmarks {
		if b == bookmarkID {
			p.Bookmarks = append(p.Bookmarks[:i], p.Bookmarks[i+1:]...)
			return false, nil
		}
	}
	p.Bookmarks = append(p.Bookmarks, bookmarkID)
	return true, nil
}
