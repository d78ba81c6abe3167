package parser

import (
	"regexp"
	"strings"

	"ai900_study_backend/internal/model"
)

// chunkCap 单个学习块的软上限。只在追加整段会超限时换块，
// 单独一段超过上限时自成一个超长块，绝不从段落中间截断。
const chunkCap = 800

var (
	topicTitleRe  = regexp.MustCompile(`# (.+)`)
	sectionMarkRe = regexp.MustCompile(`###\s+`)
	paragraphRe   = regexp.MustCompile(`\n\s*\n`)
)

// ParseTopic 解析单个主题文档：首个一级标题为主题标题，
// 正文按 "### " 切成小节，小节首行是小节标题，其余交给分块器。
func ParseTopic(topicNum int, content string) *model.Topic {
	topic := &model.Topic{
		Number:   topicNum,
		Sections: []model.Section{},
	}

	if m := topicTitleRe.FindStringSubmatch(content); m != nil {
		topic.Title = m[1]
	}

	topic.Sections = splitIntoSections(content)
	return topic
}

func splitIntoSections(content string) []model.Section {
	sections := []model.Section{}

	marks := sectionMarkRe.FindAllStringIndex(content, -1)
	for i, m := range marks {
		end := len(content)
		if i+1 < len(marks) {
			end = marks[i+1][0]
		}

		lines := strings.Split(strings.TrimSpace(content[m[1]:end]), "\n")
		if len(lines) == 0 {
			continue
		}

		sections = append(sections, model.Section{
			Title:  strings.TrimSpace(lines[0]),
			Chunks: CreateStudyChunks(strings.TrimSpace(strings.Join(lines[1:], "\n"))),
		})
	}

	return sections
}

// CreateStudyChunks 把小节正文按空行分段，再合并成不超过上限的学习块。
// 空正文产生零个块。
func CreateStudyChunks(text string) []model.Chunk {
	chunks := []model.Chunk{}

	current := ""
	for _, paragraph := range paragraphRe.Split(text, -1) {
		paragraph = strings.TrimSpace(paragraph)
		if paragraph == "" {
			continue
		}

		if len(current)+len(paragraph) > chunkCap && current != "" {
			chunks = append(chunks, model.Chunk{Content: current, Type: "content"})
			current = paragraph
		} else if current != "" {
			current += "\n\n" + paragraph
		} else {
			current = paragraph
		}
	}

	if current != "" {
		chunks = append(chunks, model.Chunk{Content: current, Type: "content"})
	}

	return chunks
}
