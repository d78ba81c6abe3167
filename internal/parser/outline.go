package parser

import (
	"strings"

	"ai900_study_backend/internal/model"

	"regexp"
)

// 大纲条目形如 "## 1. Describe AI workloads (15–20%)"，正文一直延伸到下一条
var outlineTopicRe = regexp.MustCompile(`## (\d+)\.\s+(.+?)\((\d+–\d+%)\)`)

// ParseOutline 从大纲文档提取带权重的主题列表。没有任何匹配时返回零个主题，不算错误。
func ParseOutline(content string) *model.Outline {
	outline := &model.Outline{
		Title:  "Azure AI-900 Exam Study Guide Outline",
		Topics: []model.OutlineTopic{},
	}

	matches := outlineTopicRe.FindAllStringSubmatchIndex(content, -1)
	for i, m := range matches {
		bodyEnd := len(content)
		if i+1 < len(matches) {
			bodyEnd = matches[i+1][0]
		}

		outline.Topics = append(outline.Topics, model.OutlineTopic{
			Number:     atoi(content[m[2]:m[3]]),
			Title:      strings.TrimSpace(content[m[4]:m[5]]),
			Percentage: content[m[6]:m[7]],
			Content:    strings.TrimSpace(content[m[1]:bodyEnd]),
		})
	}

	return outline
}
