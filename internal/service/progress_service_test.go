package service

import (
	"errors"
	"testing"
	"time"

	"ai900_study_backend/internal/model"
	"ai900_study_backend/internal/util"
)

func quizCatalog() *model.Catalog {
	return &model.Catalog{
		Topics: map[int]*model.Topic{},
		PracticeQuiz: &model.Quiz{
			Questions: []model.Question{
				{Number: 1, Question: "q1"},
				{Number: 2, Question: "q2"},
				{Number: 11, Question: "q11"},
			},
			Answers: map[int]*model.Answer{
				1:  {Correct: "A", Explanation: "because"},
				2:  {Correct: "B", Explanation: "because"},
				11: {Correct: "C", Explanation: "because"},
			},
		},
	}
}

func TestStartTopic(t *testing.T) {
	s := NewProgressService(quizCatalog())
	p := model.NewProgress()

	s.StartTopic(p, 2)
	if !model.ContainsInt(p.TopicsStarted, 2) {
		t.Error("topic 2 should be marked started")
	}
	if p.CurrentTopic != 2 || p.CurrentSection != 0 || p.CurrentChunk != 0 {
		t.Errorf("cursor = %d/%d/%d", p.CurrentTopic, p.CurrentSection, p.CurrentChunk)
	}

	// 同一主题重复打开保留阅读位置
	p.CurrentSection = 3
	p.CurrentChunk = 5
	s.StartTopic(p, 2)
	if p.CurrentSection != 3 || p.CurrentChunk != 5 {
		t.Errorf("cursor reset on revisit: %d/%d", p.CurrentSection, p.CurrentChunk)
	}
	if got := len(p.TopicsStarted); got != 1 {
		t.Errorf("started entries = %d, want 1", got)
	}

	// 换主题才重置游标
	s.StartTopic(p, 4)
	if p.CurrentSection != 0 || p.CurrentChunk != 0 {
		t.Errorf("cursor not reset on topic switch: %d/%d", p.CurrentSection, p.CurrentChunk)
	}
}

func TestUpdateProgressCompletion(t *testing.T) {
	s := NewProgressService(quizCatalog())
	p := model.NewProgress()

	three := 3
	s.UpdateProgress(p, UpdateProgressRequest{CompletedTopic: &three})
	if !model.ContainsInt(p.TopicsCompleted, 3) {
		t.Error("topic 3 should be completed")
	}
	if p.CurrentTopic != 4 {
		t.Errorf("current topic = %d, want auto-advance to 4", p.CurrentTopic)
	}

	// 重复完结幂等
	s.UpdateProgress(p, UpdateProgressRequest{CompletedTopic: &three})
	if got := len(p.TopicsCompleted); got != 1 {
		t.Errorf("completed entries = %d, want 1", got)
	}

	// 第5个主题完结后不再推进
	five := 5
	s.UpdateProgress(p, UpdateProgressRequest{CompletedTopic: &five})
	if p.CurrentTopic != 4 {
		t.Errorf("current topic = %d, want 4 (no advance past 5)", p.CurrentTopic)
	}
}

func TestUpdateProgressPartialFields(t *testing.T) {
	s := NewProgressService(quizCatalog())
	p := model.NewProgress()
	p.CurrentTopic = 2
	p.CurrentSection = 1

	chunk := 7
	s.UpdateProgress(p, UpdateProgressRequest{Chunk: &chunk})
	if p.CurrentTopic != 2 || p.CurrentSection != 1 || p.CurrentChunk != 7 {
		t.Errorf("cursor = %d/%d/%d, only chunk should change", p.CurrentTopic, p.CurrentSection, p.CurrentChunk)
	}
}

func TestSubmitQuiz(t *testing.T) {
	s := NewProgressService(quizCatalog())
	p := model.NewProgress()

	result, err := s.SubmitQuiz(p, SubmitQuizRequest{
		Answers:   map[int]string{1: "A", 2: "C"},
		TimeTaken: 120,
	})
	if err != nil {
		t.Fatalf("SubmitQuiz: %v", err)
	}

	if result.Score != 1 || result.Total != 2 {
		t.Errorf("score = %d/%d, want 1/2", result.Score, result.Total)
	}
	if result.Percentage != 50.0 {
		t.Errorf("percentage = %v, want 50.0", result.Percentage)
	}

	if !result.Results[1].Correct || result.Results[2].Correct {
		t.Errorf("results = %+v", result.Results)
	}
	if result.Results[2].CorrectAnswer != "B" || result.Results[2].UserAnswer != "C" {
		t.Errorf("result 2 = %+v", result.Results[2])
	}

	perf := result.TopicPerformance["topic_1"]
	if perf.Correct != 1 || perf.Total != 2 {
		t.Errorf("topic_1 performance = %+v", perf)
	}
	if result.TopicPerformance["topic_5"].Total != 0 {
		t.Error("untouched topics must still be present with zero totals")
	}

	// 成绩按测验类型落入进度，空类型归为 practice
	stored := p.QuizScores["practice"]
	if stored == nil || stored.Score != 1 || stored.TimeTaken != 120 {
		t.Fatalf("stored = %+v", stored)
	}
}

func TestSubmitQuizEmptyAnswers(t *testing.T) {
	s := NewProgressService(quizCatalog())
	p := model.NewProgress()

	if _, err := s.SubmitQuiz(p, SubmitQuizRequest{Answers: map[int]string{}}); !errors.Is(err, util.ErrNoAnswers) {
		t.Errorf("err = %v, want ErrNoAnswers", err)
	}
}

func TestSubmitQuizSkipsUnknownQuestions(t *testing.T) {
	s := NewProgressService(quizCatalog())
	p := model.NewProgress()

	// 题号99不在答案键里：不计分也不计入总数
	result, err := s.SubmitQuiz(p, SubmitQuizRequest{Answers: map[int]string{1: "A", 99: "D"}})
	if err != nil {
		t.Fatalf("SubmitQuiz: %v", err)
	}
	if result.Score != 1 || result.Total != 1 {
		t.Errorf("score = %d/%d, want 1/1", result.Score, result.Total)
	}
	if result.Percentage != 100.0 {
		t.Errorf("percentage = %v, want 100.0", result.Percentage)
	}
	if _, ok := result.Results[99]; ok {
		t.Error("unknown question must not appear in results")
	}
}

func TestSubmitQuizOverwritesSameType(t *testing.T) {
	s := NewProgressService(quizCatalog())
	p := model.NewProgress()

	if _, err := s.SubmitQuiz(p, SubmitQuizRequest{Answers: map[int]string{1: "A"}, QuizType: "topic_1"}); err != nil {
		t.Fatal(err)
	}
	if _, err := s.SubmitQuiz(p, SubmitQuizRequest{Answers: map[int]string{1: "B", 2: "B"}, QuizType: "topic_1"}); err != nil {
		t.Fatal(err)
	}

	if got := len(p.QuizScores); got != 1 {
		t.Fatalf("quiz scores = %d, want 1", got)
	}
	stored := p.QuizScores["topic_1"]
	if stored.Score != 1 || stored.Total != 2 {
		t.Errorf("stored = %d/%d, want latest attempt 1/2", stored.Score, stored.Total)
	}
}

func TestSubmitQuizStreakOnPass(t *testing.T) {
	s := NewProgressService(quizCatalog())

	yesterday := time.Now().AddDate(0, 0, -1).Format(dateLayout)

	p := model.NewProgress()
	p.StudyStreak = 3
	p.LastQuizDate = yesterday

	// 满分及格，连续天数加一
	if _, err := s.SubmitQuiz(p, SubmitQuizRequest{Answers: map[int]string{1: "A", 2: "B"}}); err != nil {
		t.Fatal(err)
	}
	if p.StudyStreak != 4 {
		t.Errorf("streak = %d, want 4", p.StudyStreak)
	}

	// 不及格不动连续天数
	p2 := model.NewProgress()
	p2.StudyStreak = 3
	p2.LastQuizDate = yesterday
	if _, err := s.SubmitQuiz(p2, SubmitQuizRequest{Answers: map[int]string{1: "D", 2: "D"}}); err != nil {
		t.Fatal(err)
	}
	if p2.StudyStreak != 3 || p2.LastQuizDate != yesterday {
		t.Errorf("streak = %d date = %q, failing quiz must not touch the streak", p2.StudyStreak, p2.LastQuizDate)
	}
}

func TestUpdateStreak(t *testing.T) {
	now := time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC)
	today := "2026-03-10"

	tests := []struct {
		name     string
		streak   int
		lastDate string
		want     int
	}{
		{"first ever", 0, "", 1},
		{"consecutive day", 2, "2026-03-09", 3},
		{"gap resets", 7, "2026-03-05", 1},
		{"same day unchanged", 5, "2026-03-10", 5},
		{"same day floor of one", 0, "2026-03-10", 1},
		{"unparseable date", 4, "not-a-date", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			streak, date := updateStreak(tt.streak, tt.lastDate, now)
			if streak != tt.want {
				t.Errorf("streak = %d, want %d", streak, tt.want)
			}
			if date != today {
				t.Errorf("date = %q, want %q", date, today)
			}
		})
	}
}

func TestTopicForQuestion(t *testing.T) {
	tests := []struct {
		num  int
		want int
	}{
		{1, 1}, {10, 1}, {11, 2}, {20, 2}, {21, 3}, {50, 5}, {55, 5}, {0, 1},
	}
	for _, tt := range tests {
		if got := topicForQuestion(tt.num); got != tt.want {
			t.Errorf("topicForQuestion(%d) = %d, want %d", tt.num, got, tt.want)
		}
	}
}

func TestPercentage(t *testing.T) {
	tests := []struct {
		score, total int
		want         float64
	}{
		{1, 2, 50.0},
		{2, 3, 66.7},
		{0, 0, 0},
		{3, 3, 100.0},
	}
	for _, tt := range tests {
		if got := percentage(tt.score, tt.total); got != tt.want {
			t.Errorf("percentage(%d, %d) = %v, want %v", tt.score, tt.total, got, tt.want)
		}
	}
}

func TestSaveNote(t *testing.T) {
	s := NewProgressService(quizCatalog())
	p := model.NewProgress()

	if err := s.SaveNote(p, "", "text"); !errors.Is(err, util.ErrNoteIDRequired) {
		t.Errorf("err = %v, want ErrNoteIDRequired", err)
	}

	if err := s.SaveNote(p, "topic_1_intro", "remember the cognitive services split"); err != nil {
		t.Fatal(err)
	}
	note := p.StudyNotes["topic_1_intro"]
	if note == nil || note.Text != "remember the cognitive services split" || note.Updated == "" {
		t.Errorf("note = %+v", note)
	}
}

func TestToggleBookmark(t *testing.T) {
	s := NewProgressService(quizCatalog())
	p := model.NewProgress()

	if _, err := s.ToggleBookmark(p, ""); !errors.Is(err, util.ErrBookmarkIDRequired) {
		t.Errorf("err = %v, want ErrBookmarkIDRequired", err)
	}

	on, err := s.ToggleBookmark(p, "topic_2_section_1")
	if err != nil || !on {
		t.Fatalf("on = %v, err = %v", on, err)
	}
	if !model.ContainsString(p.Bookmarks, "topic_2_section_1") {
		t.Error("bookmark should be present after first toggle")
	}

	off, err := s.ToggleBookmark(p, "topic_2_section_1")
	if err != nil || off {
		t.Fatalf("off = %v, err = %v", off, err)
	}
	if len(p.Bookmarks) != 0 {
		t.Errorf("bookmarks = %v, want empty", p.Bookmarks)
	}
}
