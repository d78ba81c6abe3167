package service

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"

	"ai900_study_backend/internal/model"
	"ai900_study_backend/internal/util"
)

// ContentService 对外提供只读目录的各个切片。目录启动时构建完毕，
// 这里绝不修改它——采样和乱序都作用在拷贝上。
type ContentService struct {
	Catalog *model.Catalog
}

func NewContentService(catalog *model.Catalog) *ContentService {
	return &ContentService{Catalog: catalog}
}

func (s *ContentService) Outline() *model.Outline {
	return s.Catalog.Outline
}

func (s *ContentService) Topic(num int) (*model.Topic, error) {
	topic := s.Catalog.Topic(num)
	if topic == nil {
		return nil, util.ErrTopicNotFound
	}
	return topic, nil
}

// SearchEssentials 标题或内容包含查询子串的小节；空查询返回全部
func (s *ContentService) SearchEssentials(query string) *model.KeyEssentials {
	essentials := s.Catalog.KeyEssentials
	if query == "" {
		return essentials
	}

	lower := strings.ToLower(query)
	filtered := &model.KeyEssentials{
		Title:    essentials.Title,
		Sections: []model.EssentialSection{},
	}
	for _, section := range essentials.Sections {
		if strings.Contains(strings.ToLower(section.Title), lower) ||
			strings.Contains(strings.ToLower(section.Content), lower) {
			filtered.Sections = append(filtered.Sections, section)
		}
	}
	return filtered
}

// QuizQuestions 按测验类型出题。practice 全题库随机抽，custom 先按主题过滤
// 再抽（过滤结果为空则退回全题库），topic_<n> 抽该主题的结构化题号区间。
// 选项逐题乱序，作用在拷贝上。
func (s *ContentService) QuizQuestions(quizType string, numQuestions int, topicFilter []string) []model.Question {
	all := s.Catalog.PracticeQuiz.Questions

	switch {
	case quizType == "practice":
		return sampleQuestions(all, numQuestions)

	case quizType == "custom":
		questions := all
		if len(topicFilter) > 0 {
			filtered := []model.Question{}
			for _, topic := range topicFilter {
				num, err := strconv.Atoi(strings.TrimPrefix(topic, "topic_"))
				if err != nil {
					continue
				}
				filtered = append(filtered, questionsForTopic(all, num)...)
			}
			if len(filtered) > 0 {
				questions = filtered
			}
		}
		return sampleQuestions(questions, numQuestions)

	case strings.HasPrefix(quizType, "topic_"):
		num, err := strconv.Atoi(strings.TrimPrefix(quizType, "topic_"))
		if err != nil || s.Catalog.Topic(num) == nil {
			return []model.Question{}
		}
		return sampleQuestions(questionsForTopic(all, num), numQuestions)

	default:
		return []model.Question{}
	}
}

// ExamQuestions 模拟整卷：最多50题全卷抽样
func (s *ContentService) ExamQuestions() []model.Question {
	return sampleQuestions(s.Catalog.PracticeQuiz.Questions, 50)
}

// questionsForTopic 题目按结构化区间归属主题：1-10题属主题1，11-20属主题2，以此类推
func questionsForTopic(questions []model.Question, topicNum int) []model.Question {
	start := (topicNum-1)*10 + 1
	end := topicNum * 10

	out := []model.Question{}
	for _, q := range questions {
		if q.Number >= start && q.Number <= end {
			out = append(out, q)
		}
	}
	return out
}

// sampleQuestions 随机抽 n 题并乱序每题选项，返回的都是深拷贝
func sampleQuestions(questions []model.Question, n int) []model.Question {
	if n > len(questions) {
		n = len(questions)
	}

	selected := make([]model.Question, 0, n)
	for _, idx := range rand.Perm(len(questions))[:n] {
		q := questions[idx]
		options := make([]model.Option, len(q.Options))
		copy(options, q.Options)
		rand.Shuffle(len(options), func(i, j int) {
			options[i], options[j] = options[j], options[i]
		})
		q.Options = options
		selected = append(selected, q)
	}
	return selected
}

// Flashcards 按类别/难度/模式过滤。new 只出没学过的，review 只出复习队列里的，
// study 乱序出题；过滤结果为空时退回前20张。
func (s *ContentService) Flashcards(category, difficulty, mode string, progress *model.Progress) []*model.Flashcard {
	fp := progress.Flashcards

	filtered := []*model.Flashcard{}
	for _, card := range s.Catalog.Flashcards {
		if category != "" && category != "all" && card.Category != category {
			continue
		}
		if difficulty != "" && difficulty != "all" && card.Difficulty != difficulty {
			continue
		}
		if mode == "new" && model.ContainsInt(fp.CardsStudied, card.ID) {
			continue
		}
		if mode == "review" && !model.ContainsInt(fp.ReviewQueue, card.ID) {
			continue
		}
		filtered = append(filtered, card)
	}

	if len(filtered) == 0 {
		all := s.Catalog.Flashcards
		if len(all) > 20 {
			all = all[:20]
		}
		filtered = append(filtered, all...)
	}

	if mode == "" || mode == "study" {
		shuffled := make([]*model.Flashcard, len(filtered))
		copy(shuffled, filtered)
		rand.Shuffle(len(shuffled), func(i, j int) {
			shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
		})
		return shuffled
	}

	return filtered
}

// TopicTitle 主题标题，目录里没有时给占位名
func (s *ContentService) TopicTitle(num int) string {
	if topic := s.Catalog.Topic(num); topic != nil && topic.Title != "" {
		return topic.Title
	}
	return fmt.Sprintf("Topic %d", num)
}
