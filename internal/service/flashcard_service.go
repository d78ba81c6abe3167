package service

import (
	"time"

	"ai900_study_backend/internal/model"
	"ai900_study_backend/internal/util"
)

// FlashcardService 处理闪卡作答和统计。已掌握集合与复习队列互斥：
// 答对移出复习队列，答错移出已掌握。
type FlashcardService struct {
	Catalog *model.Catalog
}

func NewFlashcardService(catalog *model.Catalog) *FlashcardService {
	return &FlashcardService{Catalog: catalog}
}

type FlashcardResponseRequest struct {
	CardID    int    `json:"card_id"`
	Response  string `json:"response"`
	StudyTime int    `json:"study_time"` // 秒
}

type FlashcardResponseResult struct {
	Stats            model.FlashcardStats `json:"stats"`
	ReviewQueueCount int                  `json:"review_queue_count"`
}

// RespondToCard 记录一次作答。首次见到这张卡时计入已学；学习时长按分钟
// 累加；每次作答都在学习日志里追加一条。
func (s *FlashcardService) RespondToCard(p *model.Progress, req FlashcardResponseRequest) (*FlashcardResponseResult, error) {
	if req.CardID == 0 || s.Catalog.FlashcardByID(req.CardID) == nil {
		return nil, util.ErrCardNotFound
	}
	if req.Response != "correct" && req.Response != "incorrect" {
		return nil, util.ErrInvalidResponse
	}

	fp := p.Flashcards
	stats := &fp.Stats

	if !model.ContainsInt(fp.CardsStudied, req.CardID) {
		fp.CardsStudied = append(fp.CardsStudied, req.CardID)
		stats.TotalStudied++
	}

	if req.Response == "correct" {
		if !model.ContainsInt(fp.CardsMastered, req.CardID) {
			fp.CardsMastered = append(fp.CardsMastered, req.CardID)
			stats.TotalMastered++
		}
		fp.ReviewQueue = model.RemoveInt(fp.ReviewQueue, req.CardID)
	} else {
		if !model.ContainsInt(fp.ReviewQueue, req.CardID) {
			fp.ReviewQueue = append(fp.ReviewQueue, req.CardID)
		}
		if model.ContainsInt(fp.CardsMastered, req.CardID) {
			fp.CardsMastered = model.RemoveInt(fp.CardsMastered, req.CardID)
			stats.TotalMastered--
		}
	}

	stats.StudyTime += float64(req.StudyTime) / 60

	now := time.Now()
	stats.CurrentStreak, fp.LastFlashcardDate = updateStreak(stats.CurrentStreak, fp.LastFlashcardDate, now)

	fp.StudySessions = append(fp.StudySessions, model.StudySession{
		Date:         now.Format(time.RFC3339),
		CardsStudied: 1,
		TimeSpent:    req.StudyTime,
		Response:     req.Response,
	})

	return &FlashcardResponseResult{
		Stats:            *stats,
		ReviewQueueCount: len(fp.ReviewQueue),
	}, nil
}

type CategoryStat struct {
	Total    int `json:"total"`
	Mastered int `json:"mastered"`
}

type FlashcardOverview struct {
	TotalCards         int                      `json:"total_cards"`
	StudiedCards       int                      `json:"studied_cards"`
	MasteredCards      int                      `json:"mastered_cards"`
	MasteredPercentage float64                  `json:"mastered_percentage"`
	ReviewQueue        int                      `json:"review_queue"`
	StudyTime          float64                  `json:"study_time"`
	CurrentStreak      int                      `json:"current_streak"`
	CategoryStats      map[string]*CategoryStat `json:"category_stats"`
}

// Overview 闪卡总体统计和按类别的掌握进度
func (s *FlashcardService) Overview(p *model.Progress) *FlashcardOverview {
	fp := p.Flashcards

	overview := &FlashcardOverview{
		TotalCards:    len(s.Catalog.Flashcards),
		StudiedCards:  fp.Stats.TotalStudied,
		MasteredCards: fp.Stats.TotalMastered,
		ReviewQueue:   len(fp.ReviewQueue),
		StudyTime:     round1(fp.Stats.StudyTime),
		CurrentStreak: fp.Stats.CurrentStreak,
		CategoryStats: map[string]*CategoryStat{},
	}

	if overview.TotalCards > 0 {
		overview.MasteredPercentage = round1(float64(fp.Stats.TotalMastered) / float64(overview.TotalCards) * 100)
	}

	for _, card := range s.Catalog.Flashcards {
		stat, ok := overview.CategoryStats[card.Category]
		if !ok {
			stat = &CategoryStat{}
			overview.CategoryStats[card.Category] = stat
		}
		stat.Total++
		if model.ContainsInt(fp.CardsMastered, card.ID) {
			stat.Mastered++
		}
	}

	return overview
}
