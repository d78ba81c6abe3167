package parser

import (
	"strings"
	"testing"

	"ai900_study_backend/internal/model"
)

func TestExtractVocabCards(t *testing.T) {
	content := `Machine Learning: A technique that uses data to train models
and improve predictions over time.
Anomaly Detection: Finding unusual patterns in data.
`

	cards := ExtractVocabCards(content)
	if len(cards) != 2 {
		t.Fatalf("cards = %d, want 2", len(cards))
	}

	if cards[0].Term != "Machine Learning" {
		t.Errorf("term = %q", cards[0].Term)
	}
	// 后续行并入当前定义
	if !strings.Contains(cards[0].Definition, "improve predictions") {
		t.Errorf("definition missing continuation: %q", cards[0].Definition)
	}
	if cards[0].Category != "vocabulary" {
		t.Errorf("category = %q", cards[0].Category)
	}

	if cards[1].Term != "Anomaly Detection" {
		t.Errorf("term = %q", cards[1].Term)
	}
}

func TestExtractVocabCardsLongPrefixNotATerm(t *testing.T) {
	// 冒号前超过50字符的行不算术语行
	long := strings.Repeat("x", 60) + ": not a definition"
	cards := ExtractVocabCards(long)
	if len(cards) != 0 {
		t.Errorf("cards = %d, want 0", len(cards))
	}
}

func TestExtractTopicCards(t *testing.T) {
	content := `**Computer Vision** is a key workload.
It analyzes images and video streams to extract information.
Object detection locates items within an image.

**Tiny** card
no

Plain paragraph without any bold terms here.
`

	cards := ExtractTopicCards(content, 2)
	// 定义不足20字符的加粗术语不落卡
	if len(cards) != 1 {
		t.Fatalf("cards = %d, want 1", len(cards))
	}

	card := cards[0]
	if card.Term != "Computer Vision" {
		t.Errorf("term = %q", card.Term)
	}
	if card.Category != "topic_2" {
		t.Errorf("category = %q", card.Category)
	}
	if card.Difficulty != "medium" {
		t.Errorf("difficulty = %q", card.Difficulty)
	}
	if !strings.Contains(card.Definition, "Object detection") {
		t.Errorf("definition = %q", card.Definition)
	}
}

func TestAssessDifficulty(t *testing.T) {
	tests := []struct {
		name       string
		definition string
		want       string
	}{
		{"short and simple", "A cloud service.", "easy"},
		{"one complex term", "Uses a neural network internally.", "medium"},
		{"two complex terms", "A supervised algorithm for classification.", "hard"},
		{"long but simple", strings.Repeat("plain words ", 15), "medium"},
		{"very long", strings.Repeat("plain words ", 30), "hard"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AssessDifficulty(tt.definition); got != tt.want {
				t.Errorf("AssessDifficulty(%q) = %q, want %q", tt.definition, got, tt.want)
			}
		})
	}
}

func TestGenerateFlashcardsManualSeedsOnly(t *testing.T) {
	cards := GenerateFlashcards(nil, map[int]*model.Topic{})

	if len(cards) != 28 {
		t.Fatalf("cards = %d, want 28 manual seeds", len(cards))
	}
	for i, card := range cards {
		if card.ID != i+1 {
			t.Fatalf("card %d has id %d, ids must be dense 1..N", i, card.ID)
		}
	}
	if cards[0].Term != "Machine Learning" {
		t.Errorf("first term = %q", cards[0].Term)
	}
}

func TestGenerateFlashcardsDedupFirstWins(t *testing.T) {
	essentials := &model.KeyEssentials{
		Sections: []model.EssentialSection{
			{
				Title:   "Key Vocabulary",
				Content: "machine learning: Extracted definition that should win over the seed card.",
			},
		},
	}

	cards := GenerateFlashcards(essentials, map[int]*model.Topic{})

	var hits []*model.Flashcard
	for _, card := range cards {
		if strings.EqualFold(strings.TrimSpace(card.Term), "machine learning") {
			hits = append(hits, card)
		}
	}
	if len(hits) != 1 {
		t.Fatalf("duplicate terms survived dedup: %d", len(hits))
	}
	// 先出现者胜出：要点提取卡排在手工种子卡之前
	if hits[0].Category != "vocabulary" {
		t.Errorf("category = %q, want vocabulary (extracted card wins)", hits[0].Category)
	}

	for i, card := range cards {
		if card.ID != i+1 {
			t.Fatalf("card %d has id %d, ids must be dense 1..N", i, card.ID)
		}
	}
}

func TestGenerateFlashcardsDeterministic(t *testing.T) {
	essentials := &model.KeyEssentials{
		Sections: []model.EssentialSection{
			{Title: "Key Vocabulary", Content: "Grounding: Anchoring model output in source data."},
		},
	}

	a := GenerateFlashcards(essentials, map[int]*model.Topic{})
	b := GenerateFlashcards(essentials, map[int]*model.Topic{})

	if len(a) != len(b) {
		t.Fatalf("lengths differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i].ID != b[i].ID || a[i].Term != b[i].Term {
			t.Fatalf("card %d differs between runs: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestGenerateFlashcardsSkipsNonVocabSections(t *testing.T) {
	essentials := &model.KeyEssentials{
		Sections: []model.EssentialSection{
			{Title: "Service Overview", Content: "Ignored Term: this section title matches neither keyword."},
		},
	}

	cards := GenerateFlashcards(essentials, map[int]*model.Topic{})
	for _, card := range cards {
		if card.Term == "Ignored Term" {
			t.Fatal("card extracted from a non-vocabulary section")
		}
	}
}
