package parser

import (
	"regexp"
	"strconv"
	"strings"

	"ai900_study_backend/internal/model"
)

const (
	quizHeading    = "# Azure AI-900 Practice Quiz"
	answersHeading = "# Answers and Explanations"
)

var (
	questionNumRe = regexp.MustCompile(`(\d+)\.\s+`)
	optionLineRe  = regexp.MustCompile(`^-?\s*[A-D]\)`)
	optionDashRe  = regexp.MustCompile(`^-\s*`)
	answerHeadRe  = regexp.MustCompile(`(\d+)\.\s+([A-D])\)\s*`)
)

// ParseQuiz 两段式解析：题目区在测验标题和答案标题之间，答案区在答案标题之后。
// 标题缺失时对应区域输出为空，解析错误从不越过本函数边界。
func ParseQuiz(content string) *model.Quiz {
	quiz := &model.Quiz{
		Title:     "Azure AI-900 Practice Quiz",
		Questions: []model.Question{},
		Answers:   map[int]*model.Answer{},
	}

	quizStart := strings.Index(content, quizHeading)
	answersStart := strings.Index(content, answersHeading)

	if quizStart >= 0 && answersStart > quizStart {
		quiz.Questions = parseQuestions(content[quizStart:answersStart])
	}
	if answersStart >= 0 {
		quiz.Answers = parseAnswers(content[answersStart+len(answersHeading):])
	}

	return quiz
}

func parseQuestions(text string) []model.Question {
	questions := []model.Question{}

	matches := questionNumRe.FindAllStringSubmatchIndex(text, -1)
	for i, m := range matches {
		end := len(text)
		if i+1 < len(matches) {
			end = matches[i+1][0]
		}

		if q, ok := parseQuestion(atoi(text[m[2]:m[3]]), text[m[1]:end]); ok {
			questions = append(questions, q)
		}
	}

	return questions
}

// parseQuestion 首个非空行是题干，其后形如 "- A) ..." 或 "A) ..." 的行按原文顺序
// 收为选项，其它行忽略。不足两行的块整个丢弃。
func parseQuestion(num int, content string) (model.Question, bool) {
	lines := strings.Split(strings.TrimSpace(content), "\n")
	if len(lines) < 2 {
		return model.Question{}, false
	}

	q := model.Question{
		Number:   num,
		Question: strings.TrimSpace(lines[0]),
		Options:  []model.Option{},
	}

	for _, line := range lines[1:] {
		line = strings.TrimSpace(line)
		if !optionLineRe.MatchString(line) {
			continue
		}
		clean := optionDashRe.ReplaceAllString(line, "")
		q.Options = append(q.Options, model.Option{
			Letter: clean[:1],
			Text:   strings.TrimSpace(clean[2:]),
		})
	}

	return q, true
}

// parseAnswers 形如 "12. B) 解释…"，解释延伸到下一条或文末。
// 同一题号出现多次时后者覆盖前者。
func parseAnswers(text string) map[int]*model.Answer {
	answers := map[int]*model.Answer{}

	matches := answerHeadRe.FindAllStringSubmatchIndex(text, -1)
	for i, m := range matches {
		end := len(text)
		if i+1 < len(matches) {
			end = matches[i+1][0]
		}

		num := atoi(text[m[2]:m[3]])
		answers[num] = &model.Answer{
			Correct:     text[m[4]:m[5]],
			Explanation: strings.TrimSpace(text[m[1]:end]),
		}
	}

	return answers
}

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
