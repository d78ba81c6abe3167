package model

// Catalog 启动时解析出的全部学习内容，进程生命周期内只读共享
type Catalog struct {
	Outline       *Outline       `json:"outline"`
	Topics        map[int]*Topic `json:"topics"`
	KeyEssentials *KeyEssentials `json:"key_essentials"`
	PracticeQuiz  *Quiz          `json:"practice_quiz"`
	Flashcards    []*Flashcard   `json:"flashcards"`
}

type Outline struct {
	Title  string         `json:"title"`
	Topics []OutlineTopic `json:"topics"`
}

// OutlineTopic 大纲条目，百分比保留原文（如 "15–20%"）不做数值解析
type OutlineTopic struct {
	Number     int    `json:"number"`
	Title      string `json:"title"`
	Percentage string `json:"percentage"`
	Content    string `json:"content"`
}

type Topic struct {
	Number   int       `json:"number"`
	Title    string    `json:"title"`
	Sections []Section `json:"sections"`
}

type Section struct {
	Title  string  `json:"title"`
	Chunks []Chunk `json:"chunks"`
}

// Chunk 单屏学习块，软上限约800字符；超长的单段落自成一块
type Chunk struct {
	Content string `json:"content"`
	Type    string `json:"type"`
}

type KeyEssentials struct {
	Title    string             `json:"title"`
	Sections []EssentialSection `json:"sections"`
}

type EssentialSection struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

type Quiz struct {
	Title     string          `json:"title"`
	Questions []Question      `json:"questions"`
	Answers   map[int]*Answer `json:"answers"`
}

// Question 题号取自原文编号，不保证连续
type Question struct {
	Number   int      `json:"number"`
	Question string   `json:"question"`
	Options  []Option `json:"options"`
}

type Option struct {
	Letter string `json:"letter"`
	Text   string `json:"text"`
}

type Answer struct {
	Correct     string `json:"correct"`
	Explanation string `json:"explanation"`
}

// Flashcard ID在去重后按发现顺序1..N分配，仅在单次进程内稳定
type Flashcard struct {
	ID         int    `json:"id"`
	Term       string `json:"term"`
	Definition string `json:"definition"`
	Category   string `json:"category"`
	Difficulty string `json:"difficulty"` // easy | medium | hard
}

// Topic returns the topic with the given number, or nil.
func (c *Catalog) Topic(num int) *Topic {
	if c == nil || c.Topics == nil {
		return nil
	}
	return c.Topics[num]
}

// FlashcardByID returns the card with the given id, or nil.
func (c *Catalog) FlashcardByID(id int) *Flashcard {
	if c == nil {
		return nil
	}
	for _, card := range c.Flashcards {
		if card.ID == id {
			return card
		}
	}
	return nil
}
