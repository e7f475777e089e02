package domain

import (
	"fmt"
	"time"
)

type RitualCategory string

const (
	RitualCategoryRealityCheck  RitualCategory = "reality_check"
	RitualCategoryLucidDreaming RitualCategory = "lucid_dreaming"
	RitualCategoryDreamRecall   RitualCategory = "dream_recall"
	RitualCategoryMeditation    RitualCategory = "meditation"
)

// RitualCategories lists every category in display order.
func RitualCategories() []RitualCategory {
	return []RitualCategory{
		RitualCategoryRealityCheck,
		RitualCategoryLucidDreaming,
		RitualCategoryDreamRecall,
		RitualCategoryMeditation,
	}
}

func (c RitualCategory) Valid() bool {
	switch c {
	case RitualCategoryRealityCheck, RitualCategoryLucidDreaming, RitualCategoryDreamRecall, RitualCategoryMeditation:
		return true
	default:
		return false
	}
}

func (c RitualCategory) Label() string {
	switch c {
	case RitualCategoryRealityCheck:
		return "Reality checks"
	case RitualCategoryLucidDreaming:
		return "Lucid dreaming"
	case RitualCategoryDreamRecall:
		return "Dream recall"
	case RitualCategoryMeditation:
		return "Meditation"
	default:
		return string(c)
	}
}

func ParseRitualCategory(raw string) (RitualCategory, error) {
	category := RitualCategory(raw)
	if !category.Valid() {
		return "", fmt.Errorf("unsupported ritual category %q", raw)
	}
	return category, nil
}

type Difficulty string

const (
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
)

func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyBeginner, DifficultyIntermediate, DifficultyAdvanced:
		return true
	default:
		return false
	}
}

func ParseDifficulty(raw string) (Difficulty, error) {
	difficulty := Difficulty(raw)
	if !difficulty.Valid() {
		return "", fmt.Errorf("unsupported difficulty %q", raw)
	}
	return difficulty, nil
}

type Ritual struct {
	ID           string         `json:"id"`
	Name         string         `json:"name"`
	Description  string         `json:"description"`
	Instructions []string       `json:"instructions"`
	Duration     int            `json:"duration"`
	Category     RitualCategory `json:"category"`
	Difficulty   Difficulty     `json:"difficulty"`
}

// DurationTime returns Duration, which is expressed in minutes.
func (r Ritual) DurationTime() time.Duration {
	return time.Duration(r.Duration) * time.Minute
}

// RitualSession is one completed ritual. Rating is 1 to 5 stars when set.
type RitualSession struct {
	ID          string    `json:"id"`
	RitualID    string    `json:"ritualId"`
	UserID      string    `json:"userId"`
	CompletedAt time.Time `json:"completedAt"`
	Rating      *int      `json:"rating,omitempty"`
	Notes       *string   `json:"notes,omitempty"`
}
