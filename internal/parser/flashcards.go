package parser

import (
	"regexp"
	"strconv"
	"strings"

	"ai900_study_backend/internal/model"
)

var boldTermRe = regexp.MustCompile(`\*\*([^*]+)\*\*`)

// complexTerms 难度启发式用的固定词表
var complexTerms = []string{
	"transformer", "neural network", "algorithm", "architecture",
	"embeddings", "unsupervised", "supervised",
}

// GenerateFlashcards 拼接三个来源（要点词汇、主题加粗术语、手工种子卡），
// 按小写去空白的术语去重，先出现者胜出——与自动提取撞词的手工卡会被丢弃。
// ID按存活顺序1..N分配，仅在单次进程内稳定。
func GenerateFlashcards(essentials *model.KeyEssentials, topics map[int]*model.Topic) []*model.Flashcard {
	cards := []*model.Flashcard{}

	if essentials != nil {
		for _, section := range essentials.Sections {
			title := strings.ToLower(section.Title)
			if strings.Contains(title, "vocabulary") || strings.Contains(title, "key") {
				cards = append(cards, ExtractVocabCards(section.Content)...)
			}
		}
	}

	for num := 1; num <= 5; num++ {
		topic := topics[num]
		if topic == nil {
			continue
		}
		for _, section := range topic.Sections {
			cards = append(cards, ExtractTopicCards(sectionText(section), topic.Number)...)
		}
	}

	cards = append(cards, manualFlashcards()...)

	seen := map[string]bool{}
	unique := []*model.Flashcard{}
	for _, card := range cards {
		key := strings.ToLower(strings.TrimSpace(card.Term))
		if seen[key] {
			continue
		}
		seen[key] = true
		card.ID = len(unique) + 1
		unique = append(unique, card)
	}

	return unique
}

func sectionText(section model.Section) string {
	parts := make([]string, 0, len(section.Chunks))
	for _, chunk := range section.Chunks {
		parts = append(parts, chunk.Content)
	}
	return strings.Join(parts, "\n\n")
}

// ExtractVocabCards 识别 "术语: 定义" 行（冒号前不超过50字符），
// 后续行并入当前定义，遇到下一个术语行或文本结束时落卡。
func ExtractVocabCards(content string) []*model.Flashcard {
	cards := []*model.Flashcard{}

	var term string
	var definition []string

	flush := func() {
		if term != "" && len(definition) > 0 {
			def := strings.Join(definition, " ")
			cards = append(cards, &model.Flashcard{
				Term:       term,
				Definition: def,
				Category:   "vocabulary",
				Difficulty: AssessDifficulty(def),
			})
		}
	}

	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if before, after, found := strings.Cut(line, ":"); found && len(strings.TrimSpace(before)) < 50 {
			flush()
			term = strings.TrimSpace(before)
			definition = []string{strings.TrimSpace(after)}
		} else if term != "" {
			definition = append(definition, line)
		}
	}
	flush()

	return cards
}

// ExtractTopicCards 把加粗片段当候选术语，向下最多收3个非空、非标题、
// 非加粗起始的行当定义；拼出的定义超过20字符才算一张卡。
func ExtractTopicCards(content string, topicNum int) []*model.Flashcard {
	cards := []*model.Flashcard{}

	lines := strings.Split(content, "\n")
	for i, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" || !strings.Contains(line, "*") {
			continue
		}

		m := boldTermRe.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		term := strings.TrimSpace(m[1])

		var definition []string
		for j := i + 1; j < len(lines) && j < i+4; j++ {
			next := strings.TrimSpace(lines[j])
			if next == "" || strings.HasPrefix(next, "###") || strings.HasPrefix(next, "**") {
				break
			}
			definition = append(definition, next)
		}

		if def := strings.Join(definition, " "); len(def) > 20 {
			cards = append(cards, &model.Flashcard{
				Term:       term,
				Definition: def,
				Category:   "topic_" + strconv.Itoa(topicNum),
				Difficulty: "medium",
			})
		}
	}

	return cards
}

// AssessDifficulty 按定义里复杂术语出现数和长度估难度
func AssessDifficulty(definition string) string {
	lower := strings.ToLower(definition)

	count := 0
	for _, term := range complexTerms {
		if strings.Contains(lower, term) {
			count++
		}
	}

	switch {
	case count >= 2 || len(definition) > 300:
		return "hard"
	case count == 1 || len(definition) > 150:
		return "medium"
	default:
		return "easy"
	}
}
