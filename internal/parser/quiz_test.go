package parser

import "testing"

const quizDoc = `# Azure AI-900 Practice Quiz

1. What is the primary purpose of machine learning?
- A) To store large amounts of data
- B) To enable computers to learn from data
- C) To host web applications
- D) To manage virtual networks

2. Which Azure service provides prebuilt computer vision models?
A) Azure AI Vision
B) Azure SQL Database
C) Azure Functions
D) Azure DNS

3. Orphan line without options

4. Which workload extracts meaning from text?
- A) Computer vision
- B) Natural language processing
- C) Anomaly detection
- D) Content moderation

# Answers and Explanations

1. B) Machine learning enables computers to learn patterns from data without explicit programming.

2. A) Azure AI Vision exposes prebuilt image analysis models.

4. B) NLP workloads interpret written and spoken language.
`

func TestParseQuiz(t *testing.T) {
	quiz := ParseQuiz(quizDoc)

	// 第3题不足两行被整块丢弃
	if len(quiz.Questions) != 3 {
		t.Fatalf("questions = %d, want 3", len(quiz.Questions))
	}

	q1 := quiz.Questions[0]
	if q1.Number != 1 {
		t.Errorf("number = %d, want 1", q1.Number)
	}
	if q1.Question != "What is the primary purpose of machine learning?" {
		t.Errorf("question = %q", q1.Question)
	}
	if len(q1.Options) != 4 {
		t.Fatalf("options = %d, want 4", len(q1.Options))
	}
	if q1.Options[1].Letter != "B" || q1.Options[1].Text != "To enable computers to learn from data" {
		t.Errorf("option = %+v", q1.Options[1])
	}

	// 不带短横线前缀的选项行同样识别
	q2 := quiz.Questions[1]
	if len(q2.Options) != 4 {
		t.Fatalf("bare options = %d, want 4", len(q2.Options))
	}
	if q2.Options[0].Letter != "A" || q2.Options[0].Text != "Azure AI Vision" {
		t.Errorf("option = %+v", q2.Options[0])
	}

	if len(quiz.Answers) != 3 {
		t.Fatalf("answers = %d, want 3", len(quiz.Answers))
	}
	a1 := quiz.Answers[1]
	if a1 == nil || a1.Correct != "B" {
		t.Fatalf("answer 1 = %+v", a1)
	}
	if a1.Explanation == "" {
		t.Error("explanation should not be empty")
	}
	if quiz.Answers[4] == nil || quiz.Answers[4].Correct != "B" {
		t.Errorf("answer 4 = %+v", quiz.Answers[4])
	}
	if quiz.Answers[3] != nil {
		t.Error("question 3 has no answer entry")
	}
}

func TestParseQuizMissingHeadings(t *testing.T) {
	tests := []struct {
		name          string
		content       string
		wantQuestions int
		wantAnswers   int
	}{
		{"no headings at all", "1. Question?\n- A) opt\n", 0, 0},
		{
			"answers heading missing",
			"# Azure AI-900 Practice Quiz\n\n1. Question?\n- A) opt\n- B) opt\n",
			0, 0,
		},
		{
			"quiz heading missing",
			"# Answers and Explanations\n\n1. A) Because.\n",
			0, 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			quiz := ParseQuiz(tt.content)
			if len(quiz.Questions) != tt.wantQuestions {
				t.Errorf("questions = %d, want %d", len(quiz.Questions), tt.wantQuestions)
			}
			if len(quiz.Answers) != tt.wantAnswers {
				t.Errorf("answers = %d, want %d", len(quiz.Answers), tt.wantAnswers)
			}
		})
	}
}

func TestParseAnswersLastWins(t *testing.T) {
	content := "# Azure AI-900 Practice Quiz\n\n# Answers and Explanations\n\n" +
		"7. A) First explanation.\n\n7. C) Corrected explanation.\n"

	quiz := ParseQuiz(content)
	if len(quiz.Answers) != 1 {
		t.Fatalf("answers = %d, want 1", len(quiz.Answers))
	}
	if got := quiz.Answers[7].Correct; got != "C" {
		t.Errorf("correct = %q, want C", got)
	}
}
