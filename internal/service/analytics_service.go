package service

import (
	"fmt"
	"sort"

	"ai900_study_backend/internal/model"
)

// AnalyticsService 备考就绪度、弱项分析和学习计划。全部按当前进度即算即回，
// 不落任何派生数据。
type AnalyticsService struct {
	Catalog *model.Catalog
	Content *ContentService
}

func NewAnalyticsService(catalog *model.Catalog, content *ContentService) *AnalyticsService {
	return &AnalyticsService{Catalog: catalog, Content: content}
}

type Readiness struct {
	Overall         float64  `json:"overall"`
	TopicsScore     float64  `json:"topics_score"`
	QuizScore       float64  `json:"quiz_score"`
	FlashcardScore  float64  `json:"flashcard_score"`
	Ready           bool     `json:"ready"`
	Recommendations []string `json:"recommendations"`
}

// CalculateReadiness 三项加权：主题完成30分、测验均分50分、闪卡掌握20分。
// "就绪"要求总分≥80、五个主题全部完成、至少一次测验且每次都≥80%。
func (s *AnalyticsService) CalculateReadiness(p *model.Progress) *Readiness {
	readiness := &Readiness{Recommendations: []string{}}

	topicsCompleted := len(p.TopicsCompleted)
	readiness.TopicsScore = float64(topicsCompleted) / 5 * 30

	if len(p.QuizScores) > 0 {
		sum := 0.0
		for _, q := range p.QuizScores {
			sum += q.Percentage
		}
		avg := sum / float64(len(p.QuizScores))
		readiness.QuizScore = avg / 100 * 50
	} else {
		readiness.Recommendations = append(readiness.Recommendations, "Take practice quizzes to assess your knowledge")
	}

	totalMastered := p.Flashcards.Stats.TotalMastered
	readiness.FlashcardScore = float64(totalMastered) / 50 * 20
	if readiness.FlashcardScore > 20 {
		readiness.FlashcardScore = 20
	}

	readiness.Overall = round1(readiness.TopicsScore + readiness.QuizScore + readiness.FlashcardScore)

	allAbove80 := len(p.QuizScores) > 0
	for _, q := range p.QuizScores {
		if q.Percentage < 80 {
			allAbove80 = false
		}
	}
	readiness.Ready = readiness.Overall >= 80 && topicsCompleted >= 5 && allAbove80

	if topicsCompleted < 5 {
		readiness.Recommendations = append(readiness.Recommendations,
			fmt.Sprintf("Complete %d more topic(s)", 5-topicsCompleted))
	}

	if len(p.QuizScores) > 0 {
		low := 0
		for _, q := range p.QuizScores {
			if q.Percentage < 80 {
				low++
			}
		}
		if low > 0 {
			readiness.Recommendations = append(readiness.Recommendations,
				fmt.Sprintf("Improve quiz scores (currently %d below 80%%)", low))
		}
	}

	if totalMastered < 30 {
		readiness.Recommendations = append(readiness.Recommendations,
			fmt.Sprintf("Master more flashcards (current: %d, target: 30+)", totalMastered))
	}

	if readiness.Ready {
		readiness.Recommendations = []string{"You're ready for the exam! 🎉"}
	}

	return readiness
}

type WeakTopic struct {
	Number     int     `json:"number"`
	Title      string  `json:"title"`
	Percentage float64 `json:"percentage"`
	Correct    int     `json:"correct"`
	Total      int     `json:"total"`
	Priority   string  `json:"priority"`
}

// AnalyzeWeakAreas 跨所有测验按主题聚合正确率。一次测验都没有时返回空列表；
// 有测验后，正确率低于70%的主题算弱项，从未测过且没完结的主题也算（0%，高优先）。
// 按正确率升序排，最弱的在前。
func (s *AnalyticsService) AnalyzeWeakAreas(p *model.Progress) []WeakTopic {
	weak := []WeakTopic{}

	if len(p.QuizScores) == 0 {
		return weak
	}

	aggregated := map[int]*model.TopicPerformance{}
	for i := 1; i <= 5; i++ {
		aggregated[i] = &model.TopicPerformance{}
	}

	for _, score := range p.QuizScores {
		for key, perf := range score.TopicPerformance {
			var num int
			if _, err := fmt.Sscanf(key, "topic_%d", &num); err != nil || num < 1 || num > 5 {
				continue
			}
			aggregated[num].Correct += perf.Correct
			aggregated[num].Total += perf.Total
		}
	}

	for num := 1; num <= 5; num++ {
		perf := aggregated[num]
		if perf.Total > 0 {
			pct := round1(float64(perf.Correct) / float64(perf.Total) * 100)
			if pct < 70 {
				priority := "Medium"
				if pct < 50 {
					priority = "High"
				}
				weak = append(weak, WeakTopic{
					Number:     num,
					Title:      s.Content.TopicTitle(num),
					Percentage: pct,
					Correct:    perf.Correct,
					Total:      perf.Total,
					Priority:   priority,
				})
			}
		} else if !model.ContainsInt(p.TopicsCompleted, num) {
			weak = append(weak, WeakTopic{
				Number:   num,
				Title:    s.Content.TopicTitle(num),
				Priority: "High",
			})
		}
	}

	sort.SliceStable(weak, func(i, j int) bool {
		return weak[i].Percentage < weak[j].Percentage
	})

	return weak
}

type StudyStep struct {
	Type          string `json:"type"`
	StepNum       int    `json:"step_num,omitempty"`
	Title         string `json:"title"`
	Description   string `json:"description"`
	Action        string `json:"action"`
	ActionURL     string `json:"action_url"`
	Priority      string `json:"priority,omitempty"`
	EstimatedTime int    `json:"estimated_time,omitempty"`
}

type StudyPlan struct {
	Steps         []StudyStep `json:"steps"`
	EstimatedTime int         `json:"estimated_time"`
	FocusAreas    []string    `json:"focus_areas"`
}

// GenerateStudyPlan 针对最弱的3个主题各给一步学习加一步小测，
// 再统一补一轮闪卡复习和一次自选题测验；没有弱项时只给一条祝贺步骤。
func (s *AnalyticsService) GenerateStudyPlan(weakTopics []WeakTopic) *StudyPlan {
	plan := &StudyPlan{
		Steps:      []StudyStep{},
		FocusAreas: []string{},
	}

	if len(weakTopics) == 0 {
		plan.Steps = append(plan.Steps, StudyStep{
			Type:        "success",
			Title:       "Great Job!",
			Description: "You don't have any weak areas. Keep practicing with full exams!",
			Action:      "Take a practice exam",
			ActionURL:   "/practice-exam",
		})
		return plan
	}

	focus := weakTopics
	if len(focus) > 3 {
		focus = focus[:3]
	}

	for _, topic := range focus {
		plan.Steps = append(plan.Steps, StudyStep{
			Type:          "study",
			StepNum:       len(plan.Steps) + 1,
			Title:         fmt.Sprintf("Study %s", topic.Title),
			Description:   fmt.Sprintf("Current score: %v%%. Review all sections carefully.", topic.Percentage),
			Action:        "Start studying",
			ActionURL:     fmt.Sprintf("/study/%d", topic.Number),
			Priority:      topic.Priority,
			EstimatedTime: 30,
		})

		plan.Steps = append(plan.Steps, StudyStep{
			Type:          "quiz",
			StepNum:       len(plan.Steps) + 1,
			Title:         fmt.Sprintf("Quiz on %s", topic.Title),
			Description:   "Test your understanding with targeted questions.",
			Action:        "Take quiz",
			ActionURL:     fmt.Sprintf("/quiz/topic_%d", topic.Number),
			Priority:      topic.Priority,
			EstimatedTime: 10,
		})

		plan.EstimatedTime += 40
		plan.FocusAreas = append(plan.FocusAreas, topic.Title)
	}

	plan.Steps = append(plan.Steps, StudyStep{
		Type:          "flashcards",
		StepNum:       len(plan.Steps) + 1,
		Title:         "Review Key Concepts",
		Description:   "Use flashcards to memorize important terms and services.",
		Action:        "Study flashcards",
		ActionURL:     "/flashcards",
		Priority:      "Medium",
		EstimatedTime: 15,
	})

	plan.Steps = append(plan.Steps, StudyStep{
		Type:          "practice",
		StepNum:       len(plan.Steps) + 1,
		Title:         "Take Custom Quiz",
		Description:   "Create a quiz focusing on your weak topics.",
		Action:        "Build custom quiz",
		ActionURL:     "/quiz-builder",
		Priority:      "High",
		EstimatedTime: 20,
	})

	plan.EstimatedTime += 35

	return plan
}

type QuizHistoryEntry struct {
	QuizType   string  `json:"quiz_type"`
	Score      int     `json:"score"`
	Total      int     `json:"total"`
	Percentage float64 `json:"percentage"`
	Date       string  `json:"date"`
	TimeTaken  int     `json:"time_taken"`
}

// QuizHistory 全部测验成绩，最新的在前
func (s *AnalyticsService) QuizHistory(p *model.Progress) []QuizHistoryEntry {
	history := []QuizHistoryEntry{}
	for quizType, score := range p.QuizScores {
		history = append(history, QuizHistoryEntry{
			QuizType:   quizType,
			Score:      score.Score,
			Total:      score.Total,
			Percentage: score.Percentage,
			Date:       score.Date,
			TimeTaken:  score.TimeTaken,
		})
	}

	sort.Slice(history, func(i, j int) bool {
		return history[i].Date > history[j].Date
	})

	return history
}
