package domain

import (
	"fmt"
	"strings"
	"time"
)

type EntryType string

const (
	EntryTypeDream   EntryType = "dream"
	EntryTypeEmotion EntryType = "emotion"
)

func (t EntryType) Valid() bool {
	switch t {
	case EntryTypeDream, EntryTypeEmotion:
		return true
	default:
		return false
	}
}

func ParseEntryType(raw string) (EntryType, error) {
	entryType := EntryType(raw)
	if !entryType.Valid() {
		return "", fmt.Errorf("unsupported entry type %q", raw)
	}
	return entryType, nil
}

// Entry is a journal record. Dream entries carry Text plus the cached
// analysis (Summary, Tags, Insights); emotion entries carry Mood.
type Entry struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
	Type      EntryType `json:"type"`
	Text      string    `json:"text,omitempty"`
	Mood      string    `json:"mood,omitempty"`
	VoiceURL  string    `json:"voiceUrl,omitempty"`
	Summary   string    `json:"summary,omitempty"`
	Tags      []string  `json:"tags,omitempty"`
	Insights  []string  `json:"insights,omitempty"`
}

// NormalizeTags trims, lowercases and deduplicates tags, keeping first
// occurrence order.
func NormalizeTags(tags []string) []string {
	normalized := make([]string, 0, len(tags))
	seen := make(map[string]struct{}, len(tags))
	for _, tag := range tags {
		trimmed := strings.ToLower(strings.TrimSpace(tag))
		if trimmed == "" {
			continue
		}
		if _, ok := seen[trimmed]; ok {
			continue
		}
		seen[trimmed] = struct{}{}
		normalized = append(normalized, trimmed)
	}

	return normalized
}
