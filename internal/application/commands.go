package application

import "github.com/bnema/dreamlog/internal/domain"

type RecordCompletionCommand struct {
	UserID   string
	RitualID string
	Rating   *int
	Notes    *string
}

type AddDreamEntryCommand struct {
	UserID   string
	Text     string
	VoiceURL string
}

type AddEmotionEntryCommand struct {
	UserID string
	Mood   string
	Text   string
	Tags   []string
}

type AddReminderCommand struct {
	UserID      string
	Type        domain.ReminderType
	Frequency   domain.ReminderFrequency
	CustomHours []int
	Message     string
}
