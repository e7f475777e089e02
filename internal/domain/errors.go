package domain

import "errors"

var (
	ErrRitualNotFound         = errors.New("ritual not found")
	ErrEntryNotFound          = errors.New("entry not found")
	ErrReminderNotFound       = errors.New("reminder not found")
	ErrAuthenticationRequired = errors.New("authentication required")
	ErrStorage                = errors.New("storage failure")
	ErrEmptyEntry             = errors.New("entry is empty")
	ErrInvalidReminder        = errors.New("invalid reminder")
)
