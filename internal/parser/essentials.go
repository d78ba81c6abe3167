package parser

import (
	"regexp"
	"strings"

	"ai900_study_backend/internal/model"
)

var essentialMarkRe = regexp.MustCompile(`##\s+`)

// ParseKeyEssentials 按 "## " 切小节，首行为标题，剩余为内容。
// 内容整段保留不分块，复习页的子串搜索要用。
func ParseKeyEssentials(content string) *model.KeyEssentials {
	essentials := &model.KeyEssentials{
		Title:    "Key Essentials",
		Sections: []model.EssentialSection{},
	}

	marks := essentialMarkRe.FindAllStringIndex(content, -1)
	for i, m := range marks {
		end := len(content)
		if i+1 < len(marks) {
			end = marks[i+1][0]
		}

		lines := strings.Split(strings.TrimSpace(content[m[1]:end]), "\n")
		if len(lines) == 0 {
			continue
		}

		essentials.Sections = append(essentials.Sections, model.EssentialSection{
			Title:   strings.TrimSpace(lines[0]),
			Content: strings.TrimSpace(strings.Join(lines[1:], "\n")),
		})
	}

	return essentials
}
