package domain

import (
	"fmt"
	"strings"
	"time"
)

type ReminderType string

const (
	ReminderTypeRealityCheck ReminderType = "reality_check"
	ReminderTypeMoodCheck    ReminderType = "mood_check"
)

type ReminderFrequency string

const (
	ReminderFrequencyHourly ReminderFrequency = "hourly"
	ReminderFrequencyDaily  ReminderFrequency = "daily"
	ReminderFrequencyCustom ReminderFrequency = "custom"
)

type ReminderPreference struct {
	ID          string            `json:"id"`
	UserID      string            `json:"userId"`
	Type        ReminderType      `json:"type"`
	Frequency   ReminderFrequency `json:"frequency"`
	CustomHours []int             `json:"customHours,omitempty"`
	Message     string            `json:"message"`
	Enabled     bool              `json:"enabled"`
	LastSent    time.Time         `json:"lastSent,omitzero"`
}

func (r ReminderPreference) Validate() error {
	switch r.Type {
	case ReminderTypeRealityCheck, ReminderTypeMoodCheck:
	default:
		return fmt.Errorf("%w: unsupported type %q", ErrInvalidReminder, r.Type)
	}

	switch r.Frequency {
	case ReminderFrequencyHourly, ReminderFrequencyDaily:
	case ReminderFrequencyCustom:
		if len(r.CustomHours) == 0 {
			return fmt.Errorf("%w: custom frequency requires hours", ErrInvalidReminder)
		}
	default:
		return fmt.Errorf("%w: unsupported frequency %q", ErrInvalidReminder, r.Frequency)
	}

	for _, hour := range r.CustomHours {
		if hour < 0 || hour > 23 {
			return fmt.Errorf("%w: hour %d out of range", ErrInvalidReminder, hour)
		}
	}

	if strings.TrimSpace(r.Message) == "" {
		return fmt.Errorf("%w: message is required", ErrInvalidReminder)
	}

	return nil
}
