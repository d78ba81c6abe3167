package service

import (
	"errors"
	"testing"

	"ai900_study_backend/internal/model"
	"ai900_study_backend/internal/util"
)

func flashcardCatalog() *model.Catalog {
	return &model.Catalog{
		Topics: map[int]*model.Topic{},
		Flashcards: []*model.Flashcard{
			{ID: 1, Term: "Machine Learning", Category: "vocabulary", Difficulty: "easy"},
			{ID: 2, Term: "Computer Vision", Category: "topic_1", Difficulty: "medium"},
			{ID: 3, Term: "Transformer", Category: "topic_5", Difficulty: "hard"},
		},
	}
}

func TestRespondToCardValidation(t *testing.T) {
	s := NewFlashcardService(flashcardCatalog())
	p := model.NewProgress()

	tests := []struct {
		name string
		req  FlashcardResponseRequest
		want error
	}{
		{"zero card id", FlashcardResponseRequest{CardID: 0, Response: "correct"}, util.ErrCardNotFound},
		{"unknown card", FlashcardResponseRequest{CardID: 42, Response: "correct"}, util.ErrCardNotFound},
		{"bad response", FlashcardResponseRequest{CardID: 1, Response: "maybe"}, util.ErrInvalidResponse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := s.RespondToCard(p, tt.req); !errors.Is(err, tt.want) {
				t.Errorf("err = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestRespondToCardCorrectThenIncorrect(t *testing.T) {
	s := NewFlashcardService(flashcardCatalog())
	p := model.NewProgress()
	fp := p.Flashcards

	result, err := s.RespondToCard(p, FlashcardResponseRequest{CardID: 1, Response: "correct", StudyTime: 90})
	if err != nil {
		t.Fatal(err)
	}
	if !model.ContainsInt(fp.CardsMastered, 1) {
		t.Error("card should be mastered after correct response")
	}
	if fp.Stats.TotalStudied != 1 || fp.Stats.TotalMastered != 1 {
		t.Errorf("stats = %+v", fp.Stats)
	}
	if fp.Stats.StudyTime != 1.5 {
		t.Errorf("study time = %v minutes, want 1.5", fp.Stats.StudyTime)
	}
	if result.ReviewQueueCount != 0 {
		t.Errorf("review queue = %d, want 0", result.ReviewQueueCount)
	}

	// 同一张卡答错：掌握被撤销、进复习队列，已学计数不重复累加
	result, err = s.RespondToCard(p, FlashcardResponseRequest{CardID: 1, Response: "incorrect", StudyTime: 30})
	if err != nil {
		t.Fatal(err)
	}
	if model.ContainsInt(fp.CardsMastered, 1) {
		t.Error("mastery must be revoked on incorrect response")
	}
	if !model.ContainsInt(fp.ReviewQueue, 1) {
		t.Error("card should be queued for review")
	}
	if fp.Stats.TotalMastered != 0 {
		t.Errorf("total mastered = %d, want 0", fp.Stats.TotalMastered)
	}
	if fp.Stats.TotalStudied != 1 {
		t.Errorf("total studied = %d, want 1", fp.Stats.TotalStudied)
	}
	if fp.Stats.StudyTime != 2.0 {
		t.Errorf("study time = %v minutes, want 2.0", fp.Stats.StudyTime)
	}
	if result.ReviewQueueCount != 1 {
		t.Errorf("review queue = %d, want 1", result.ReviewQueueCount)
	}

	if len(fp.StudySessions) != 2 {
		t.Fatalf("study sessions = %d, want 2", len(fp.StudySessions))
	}
	if fp.StudySessions[1].Response != "incorrect" || fp.StudySessions[1].TimeSpent != 30 {
		t.Errorf("session = %+v", fp.StudySessions[1])
	}
}

func TestRespondToCardIncorrectThenCorrect(t *testing.T) {
	s := NewFlashcardService(flashcardCatalog())
	p := model.NewProgress()
	fp := p.Flashcards

	if _, err := s.RespondToCard(p, FlashcardResponseRequest{CardID: 2, Response: "incorrect"}); err != nil {
		t.Fatal(err)
	}
	if _, err := s.RespondToCard(p, FlashcardResponseRequest{CardID: 2, Response: "correct"}); err != nil {
		t.Fatal(err)
	}

	// 掌握集合与复习队列互斥
	if model.ContainsInt(fp.ReviewQueue, 2) {
		t.Error("correct response must remove the card from the review queue")
	}
	if !model.ContainsInt(fp.CardsMastered, 2) {
		t.Error("card should be mastered")
	}
	if fp.Stats.TotalMastered != 1 || fp.Stats.TotalStudied != 1 {
		t.Errorf("stats = %+v", fp.Stats)
	}
}

func TestFlashcardOverview(t *testing.T) {
	s := NewFlashcardService(flashcardCatalog())
	p := model.NewProgress()

	if _, err := s.RespondToCard(p, FlashcardResponseRequest{CardID: 1, Response: "correct"}); err != nil {
		t.Fatal(err)
	}
	if _, err := s.RespondToCard(p, FlashcardResponseRequest{CardID: 3, Response: "incorrect"}); err != nil {
		t.Fatal(err)
	}

	overview := s.Overview(p)

	if overview.TotalCards != 3 || overview.StudiedCards != 2 || overview.MasteredCards != 1 {
		t.Errorf("overview = %+v", overview)
	}
	if overview.MasteredPercentage != 33.3 {
		t.Errorf("mastered percentage = %v, want 33.3", overview.MasteredPercentage)
	}
	if overview.ReviewQueue != 1 {
		t.Errorf("review queue = %d, want 1", overview.ReviewQueue)
	}

	vocab := overview.CategoryStats["vocabulary"]
	if vocab == nil || vocab.Total != 1 || vocab.Mastered != 1 {
		t.Errorf("vocabulary stats = %+v", vocab)
	}
	topic5 := overview.CategoryStats["topic_5"]
	if topic5 == nil || topic5.Total != 1 || topic5.Mastered != 0 {
		t.Errorf("topic_5 stats = %+v", topic5)
	}
}
