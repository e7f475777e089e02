package application

import (
	"context"
	"errors"
	"slices"
	"testing"

	"github.com/bnema/dreamlog/internal/domain"
	"github.com/bnema/dreamlog/internal/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestReminderServiceAddDefaultsToEnabled(t *testing.T) {
	t.Parallel()

	repo := &inMemoryReminderRepo{}
	svc := NewReminderService(repo, nil)
	svc.newID = func() string { return "r1" }

	reminder, err := svc.Add(context.Background(), AddReminderCommand{
		UserID:      "u1",
		Type:        domain.ReminderTypeRealityCheck,
		Frequency:   domain.ReminderFrequencyCustom,
		CustomHours: []int{18, 9, 12, 9},
		Message:     " Look at your hands ",
	})
	require.NoError(t, err)

	assert.Equal(t, domain.ReminderPreference{
		ID:          "r1",
		UserID:      "u1",
		Type:        domain.ReminderTypeRealityCheck,
		Frequency:   domain.ReminderFrequencyCustom,
		CustomHours: []int{9, 12, 18},
		Message:     "Look at your hands",
		Enabled:     true,
	}, reminder)
	assert.Equal(t, []domain.ReminderPreference{reminder}, repo.reminders)
}

func TestReminderServiceAddRejectsInvalidReminder(t *testing.T) {
	t.Parallel()

	repo := mocks.NewMockReminderRepository(t)
	svc := NewReminderService(repo, nil)

	_, err := svc.Add(context.Background(), AddReminderCommand{
		UserID:    "u1",
		Type:      domain.ReminderTypeMoodCheck,
		Frequency: domain.ReminderFrequencyCustom,
		Message:   "How do you feel?",
	})
	require.ErrorIs(t, err, domain.ErrInvalidReminder)
}

func TestReminderServiceSetEnabled(t *testing.T) {
	t.Parallel()

	repo := &inMemoryReminderRepo{reminders: []domain.ReminderPreference{
		{ID: "r1", UserID: "u1", Type: domain.ReminderTypeMoodCheck, Frequency: domain.ReminderFrequencyDaily, Message: "mood", Enabled: true},
	}}
	svc := NewReminderService(repo, nil)

	updated, err := svc.SetEnabled(context.Background(), "u1", "r1", false)
	require.NoError(t, err)
	assert.False(t, updated.Enabled)
	assert.False(t, repo.reminders[0].Enabled)

	_, err = svc.SetEnabled(context.Background(), "u2", "r1", true)
	require.ErrorIs(t, err, domain.ErrReminderNotFound)
}

func TestReminderServiceDelete(t *testing.T) {
	t.Parallel()

	repo := &inMemoryReminderRepo{reminders: []domain.ReminderPreference{
		{ID: "r1", UserID: "u1"},
		{ID: "r2", UserID: "u1"},
	}}
	svc := NewReminderService(repo, nil)

	require.NoError(t, svc.Delete(context.Background(), "u1", "r1"))
	remaining, err := svc.List(context.Background(), "u1")
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, "r2", remaining[0].ID)

	err = svc.Delete(context.Background(), "u1", "r1")
	require.ErrorIs(t, err, domain.ErrReminderNotFound)
	assert.NotErrorIs(t, err, domain.ErrStorage)
}

func TestReminderServiceDeleteWrapsStorageFailure(t *testing.T) {
	t.Parallel()

	deleteErr := errors.New("permission denied")
	repo := mocks.NewMockReminderRepository(t)
	repo.EXPECT().Delete(mock.Anything, "u1", "r1").Return(deleteErr)
	svc := NewReminderService(repo, nil)

	err := svc.Delete(context.Background(), "u1", "r1")
	require.ErrorIs(t, err, domain.ErrStorage)
	require.ErrorIs(t, err, deleteErr)
}

func TestReminderServiceListRequiresUser(t *testing.T) {
	t.Parallel()

	svc := NewReminderService(mocks.NewMockReminderRepository(t), nil)

	_, err := svc.List(context.Background(), "")
	require.ErrorIs(t, err, domain.ErrAuthenticationRequired)
}

type inMemoryReminderRepo struct {
	reminders []domain.ReminderPreference
}

func (r *inMemoryReminderRepo) Save(_ context.Context, reminder domain.ReminderPreference) error {
	idx := slices.IndexFunc(r.reminders, func(existing domain.ReminderPreference) bool {
		return existing.ID == reminder.ID
	})
	if idx >= 0 {
		r.reminders[idx] = reminder
		return nil
	}
	r.reminders = append(r.reminders, reminder)
	return nil
}

func (r *inMemoryReminderRepo) ListByUser(_ context.Context, userID string) ([]domain.ReminderPreference, error) {
	var out []domain.ReminderPreference
	for _, reminder := range r.reminders {
		if reminder.UserID == userID {
			out = append(out, reminder)
		}
	}
	return out, nil
}

func (r *inMemoryReminderRepo) Delete(_ context.Context, userID, id string) error {
	idx := slices.IndexFunc(r.reminders, func(existing domain.ReminderPreference) bool {
		return existing.ID == id && existing.UserID == userID
	})
	if idx < 0 {
		return domain.ErrReminderNotFound
	}
	r.reminders = slices.Delete(r.reminders, idx, idx+1)
	return nil
}
