package parser

import (
	"context"
	"fmt"

	"ai900_study_backend/internal/model"
	"ai900_study_backend/internal/storage"

	"go.uber.org/zap"
)

// 固定的文档名，缺哪个就降级哪个板块
const (
	OutlineDocument    = "Azure AI-900 Exam Study Guide Outline.md"
	TopicDocumentFmt   = "Azure AI-900 Exam Study Guide_ Topic %d.md"
	EssentialsDocument = "Azure AI-900 Exam Study Guide_ Key Essentials.md"
	QuizDocument       = "Azure AI-900 Practice Quiz.md"
)

// BuildCatalog 启动时一次性解析全部学习内容。单个文档读不到或解析失败
// 只记日志并把对应板块留空，其余板块照常加载；返回值之后只读共享。
func BuildCatalog(ctx context.Context, src storage.Source, log *zap.Logger) *model.Catalog {
	catalog := &model.Catalog{
		Outline:       &model.Outline{Topics: []model.OutlineTopic{}},
		Topics:        map[int]*model.Topic{},
		KeyEssentials: &model.KeyEssentials{Sections: []model.EssentialSection{}},
		PracticeQuiz:  &model.Quiz{Questions: []model.Question{}, Answers: map[int]*model.Answer{}},
	}

	if content, ok := readDocument(ctx, src, OutlineDocument, log); ok {
		catalog.Outline = ParseOutline(content)
	}

	for num := 1; num <= 5; num++ {
		name := fmt.Sprintf(TopicDocumentFmt, num)
		if content, ok := readDocument(ctx, src, name, log); ok {
			catalog.Topics[num] = ParseTopic(num, content)
		}
	}

	if content, ok := readDocument(ctx, src, EssentialsDocument, log); ok {
		catalog.KeyEssentials = ParseKeyEssentials(content)
	}

	if content, ok := readDocument(ctx, src, QuizDocument, log); ok {
		catalog.PracticeQuiz = ParseQuiz(content)
	}

	catalog.Flashcards = GenerateFlashcards(catalog.KeyEssentials, catalog.Topics)

	log.Info("study catalog built",
		zap.Int("outline_topics", len(catalog.Outline.Topics)),
		zap.Int("topics", len(catalog.Topics)),
		zap.Int("questions", len(catalog.PracticeQuiz.Questions)),
		zap.Int("answers", len(catalog.PracticeQuiz.Answers)),
		zap.Int("flashcards", len(catalog.Flashcards)),
	)

	return catalog
}

func readDocument(ctx context.Context, src storage.Source, name string, log *zap.Logger) (string, bool) {
	data, err := src.ReadDocument(ctx, name)
	if err != nil {
		log.Warn("study document unavailable, section degraded to empty",
			zap.String("document", name), zap.Error(err))
		return "", false
	}
	return string(data), true
}
