package application

import "github.com/bnema/dreamlog/internal/domain"

type RitualStats struct {
	Today          int                           `json:"today"`
	Total          int                           `json:"total"`
	ByCategory     map[domain.RitualCategory]int `json:"byCategory"`
	CompletedToday []string                      `json:"completedToday"`
	StreakDays     int                           `json:"streakDays"`
}

type TagCount struct {
	Tag   string `json:"tag"`
	Count int    `json:"count"`
}
