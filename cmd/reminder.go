package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/bnema/dreamlog/internal/application"
	"github.com/bnema/dreamlog/internal/domain"
	"github.com/spf13/cobra"
)

func newReminderCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reminder",
		Short: "Manage reality check and mood check reminders",
	}

	cmd.AddCommand(
		newReminderAddCmd(app),
		newReminderListCmd(app),
		newReminderToggleCmd(app, "enable", true),
		newReminderToggleCmd(app, "disable", false),
		newReminderDeleteCmd(app),
	)

	return cmd
}

func newReminderAddCmd(app *app) *cobra.Command {
	var reminderType string
	var frequency string
	var hours []int
	var message string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a reminder",
		RunE: func(cmd *cobra.Command, _ []string) error {
			input := addReminderInput{
				Type:      strings.TrimSpace(reminderType),
				Frequency: strings.TrimSpace(frequency),
				Hours:     hours,
				Message:   strings.TrimSpace(message),
			}
			if err := validateInput(input); err != nil {
				return err
			}

			userID, err := app.currentUser(cmd.Context())
			if err != nil {
				return err
			}

			reminder, err := app.reminders.Add(cmd.Context(), application.AddReminderCommand{
				UserID:      userID,
				Type:        domain.ReminderType(input.Type),
				Frequency:   domain.ReminderFrequency(input.Frequency),
				CustomHours: input.Hours,
				Message:     input.Message,
			})
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Added reminder %s\n", reminder.ID)
			return err
		},
	}

	cmd.Flags().StringVar(&reminderType, "type", string(domain.ReminderTypeRealityCheck), "Reminder type (reality_check|mood_check)")
	cmd.Flags().StringVar(&frequency, "frequency", string(domain.ReminderFrequencyDaily), "Frequency (hourly|daily|custom)")
	cmd.Flags().IntSliceVar(&hours, "hour", nil, "Hour of day for custom reminders, 0-23 (repeatable)")
	cmd.Flags().StringVar(&message, "message", "", "Reminder message")

	return cmd
}

func newReminderListCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List reminders",
		RunE: func(cmd *cobra.Command, _ []string) error {
			userID, err := app.currentUser(cmd.Context())
			if err != nil {
				return err
			}

			reminders, err := app.reminders.List(cmd.Context(), userID)
			if err != nil {
				return err
			}

			if asJSON {
				if reminders == nil {
					reminders = []domain.ReminderPreference{}
				}
				return writeJSON(cmd, reminders)
			}

			out := cmd.OutOrStdout()
			if len(reminders) == 0 {
				_, err := fmt.Fprintln(out, "No reminders.")
				return err
			}
			for _, reminder := range reminders {
				if _, err := fmt.Fprintln(out, reminderLine(reminder)); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Output reminders as JSON")

	return cmd
}

func reminderLine(reminder domain.ReminderPreference) string {
	state := "on "
	if !reminder.Enabled {
		state = "off"
	}

	schedule := string(reminder.Frequency)
	if reminder.Frequency == domain.ReminderFrequencyCustom {
		hours := make([]string, 0, len(reminder.CustomHours))
		for _, hour := range reminder.CustomHours {
			hours = append(hours, strconv.Itoa(hour)+"h")
		}
		schedule += " " + strings.Join(hours, ",")
	}

	return fmt.Sprintf("%s  [%s]  %s  %s  %q", reminder.ID, state, reminder.Type, schedule, reminder.Message)
}

func newReminderToggleCmd(app *app, use string, enabled bool) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <id>",
		Short: strings.ToUpper(use[:1]) + use[1:] + " a reminder",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			userID, err := app.currentUser(cmd.Context())
			if err != nil {
				return err
			}

			reminder, err := app.reminders.SetEnabled(cmd.Context(), userID, args[0], enabled)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Reminder %s %sd\n", reminder.ID, use)
			return err
		},
	}
}

func newReminderDeleteCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a reminder",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			userID, err := app.currentUser(cmd.Context())
			if err != nil {
				return err
			}

			if err := app.reminders.Delete(cmd.Context(), userID, args[0]); err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Deleted reminder %s\n", args[0])
			return err
		},
	}
}
