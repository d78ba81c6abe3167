package model

// Progress 每个会话一份的学习进度，惰性创建、按请求读改写。
// 字段缺省值在NewProgress里一次性给齐，旧版会话载荷通过Normalize迁移，
// 避免散落在各处的"确保键存在"检查。
type Progress struct {
	TopicsCompleted []int                 `json:"topics_completed"`
	TopicsStarted   []int                 `json:"topics_started"`
	CurrentTopic    int                   `json:"current_topic"`
	CurrentSection  int                   `json:"current_section"`
	CurrentChunk    int                   `json:"current_chunk"`
	QuizScores      map[string]*QuizScore `json:"quiz_scores"`
	StudyStreak     int                   `json:"study_streak"`
	LastQuizDate    string                `json:"last_quiz_date,omitempty"`
	LastStudyDate   string                `json:"last_study_date,omitempty"`
	StudyNotes      map[string]*Note      `json:"study_notes"`
	Bookmarks       []string              `json:"bookmarks"`
	Flashcards      *FlashcardProgress    `json:"flashcard_progress"`
}

type QuizScore struct {
	Score            int                          `json:"score"`
	Total            int                          `json:"total"`
	Percentage       float64                      `json:"percentage"`
	Date             string                       `json:"date"`
	TimeTaken        int                          `json:"time_taken"`
	TopicPerformance map[string]*TopicPerformance `json:"topic_performance"`
}

type TopicPerformance struct {
	Correct int `json:"correct"`
	Total   int `json:"total"`
}

type Note struct {
	Text    string `json:"text"`
	Updated string `json:"updated"`
}

type FlashcardProgress struct {
	CardsStudied      []int          `json:"cards_studied"`
	CardsMastered     []int          `json:"cards_mastered"`
	ReviewQueue       []int          `json:"review_queue"`
	StudySessions     []StudySession `json:"study_sessions"`
	LastFlashcardDate string         `json:"last_flashcard_date,omitempty"`
	Stats             FlashcardStats `json:"stats"`
}

type StudySession struct {
	Date         string `json:"date"`
	CardsStudied int    `json:"cards_studied"`
	TimeSpent    int    `json:"time_spent"`
	Response     string `json:"response"`
}

type FlashcardStats struct {
	TotalStudied  int     `json:"total_studied"`
	TotalMastered int     `json:"total_mastered"`
	StudyTime     float64 `json:"study_time"` // 分钟
	CurrentStreak int     `json:"current_streak"`
}

// NewProgress 会话首次接触时的默认进度
func NewProgress() *Progress {
	return &Progress{
		TopicsCompleted: []int{},
		TopicsStarted:   []int{},
		CurrentTopic:    1,
		QuizScores:      map[string]*QuizScore{},
		StudyNotes:      map[string]*Note{},
		Bookmarks:       []string{},
		Flashcards:      newFlashcardProgress(),
	}
}

func newFlashcardProgress() *FlashcardProgress {
	return &FlashcardProgress{
		CardsStudied:  []int{},
		CardsMastered: []int{},
		ReviewQueue:   []int{},
		StudySessions: []StudySession{},
	}
}

// Normalize 迁移旧形态的会话数据，读取后补齐缺失结构
func (p *Progress) Normalize() {
	if p.CurrentTopic == 0 {
		p.CurrentTopic = 1
	}
	if p.TopicsCompleted == nil {
		p.TopicsCompleted = []int{}
	}
	if p.TopicsStarted == nil {
		p.TopicsStarted = []int{}
	}
	if p.QuizScores == nil {
		p.QuizScores = map[string]*QuizScore{}
	}
	if p.StudyNotes == nil {
		p.StudyNotes = map[string]*Note{}
	}
	if p.Bookmarks == nil {
		p.Bookmarks = []string{}
	}
	if p.Flashcards == nil {
		p.Flashcards = newFlashcardProgress()
	}
	fp := p.Flashcards
	if fp.CardsStudied == nil {
		fp.CardsStudied = []int{}
	}
	if fp.CardsMastered == nil {
		fp.CardsMastered = []int{}
	}
	if fp.ReviewQueue == nil {
		fp.ReviewQueue = []int{}
	}
	if fp.StudySessions == nil {
		fp.StudySessions = []StudySession{}
	}
}

func ContainsInt(list []int, v int) bool {
	for _, x := range list {
		if x == v {
			return true
		}
	}
	return false
}

func RemoveInt(list []int, v int) []int {
	out := list[:0]
	for _, x := range list {
		if x != v {
			out = append(out, x)
		}
	}
	return out
}

func ContainsString(list []string, v string) bool {
	for _, x := range list {
		if x == v {
			return true
		}
	}
	return false
}
