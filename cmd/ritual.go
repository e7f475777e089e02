package cmd

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/bnema/dreamlog/internal/application"
	"github.com/bnema/dreamlog/internal/domain"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newRitualCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ritual",
		Short: "Browse and complete lucid dreaming rituals",
	}

	cmd.AddCommand(
		newRitualListCmd(app),
		newRitualShowCmd(app),
		newRitualCompleteCmd(app),
		newRitualSessionsCmd(app),
		newRitualStatsCmd(app),
	)

	return cmd
}

func newRitualListCmd(app *app) *cobra.Command {
	var category string
	var difficulty string
	var quick bool
	var beginner bool
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List rituals from the catalog",
		RunE: func(cmd *cobra.Command, _ []string) error {
			rituals, err := filterRituals(app.rituals, category, difficulty, quick, beginner)
			if err != nil {
				return err
			}

			if asJSON {
				return writeJSON(cmd, rituals)
			}

			// Completion marks are best effort; the catalog is readable
			// without a signed-in user.
			var completedToday []string
			if userID, err := app.identity.CurrentUserID(cmd.Context()); err == nil {
				completedToday, err = app.rituals.CompletedTodayIDs(cmd.Context(), userID)
				if err != nil {
					app.logger.Warn("load completed rituals failed", zap.Error(err))
				}
			}

			rendered, err := app.catalogRenderer(rituals, completedToday)
			return writeRendered(cmd, rendered, err)
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "Filter by category (reality_check|lucid_dreaming|dream_recall|meditation)")
	cmd.Flags().StringVar(&difficulty, "difficulty", "", "Filter by difficulty (beginner|intermediate|advanced)")
	cmd.Flags().BoolVar(&quick, "quick", false, "Only rituals of five minutes or less")
	cmd.Flags().BoolVar(&beginner, "beginner", false, "Only beginner rituals")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Output rituals as JSON")

	return cmd
}

func filterRituals(svc *application.RitualService, category, difficulty string, quick, beginner bool) ([]domain.Ritual, error) {
	rituals := svc.ListAll()
	if quick {
		rituals = svc.QuickRituals()
	}
	if beginner {
		rituals = intersectRituals(rituals, svc.BeginnerRituals())
	}

	if category != "" {
		parsed, err := domain.ParseRitualCategory(category)
		if err != nil {
			return nil, err
		}
		rituals = intersectRituals(rituals, svc.ListByCategory(parsed))
	}

	if difficulty != "" {
		parsed, err := domain.ParseDifficulty(difficulty)
		if err != nil {
			return nil, err
		}
		rituals = intersectRituals(rituals, svc.ListByDifficulty(parsed))
	}

	return rituals, nil
}

// intersectRituals keeps the rituals of a that also appear in b, in a's order.
func intersectRituals(a, b []domain.Ritual) []domain.Ritual {
	kept := make([]domain.Ritual, 0, len(a))
	for _, ritual := range a {
		if slices.ContainsFunc(b, func(other domain.Ritual) bool { return other.ID == ritual.ID }) {
			kept = append(kept, ritual)
		}
	}
	return kept
}

func newRitualShowCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "show <ritual-id>",
		Short: "Show a ritual with its instructions",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ritual, err := app.rituals.GetByID(args[0])
			if err != nil {
				return fmt.Errorf("%w: %q", err, args[0])
			}

			if asJSON {
				return writeJSON(cmd, ritual)
			}

			rendered, err := app.ritualRenderer(ritual)
			return writeRendered(cmd, rendered, err)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Output the ritual as JSON")

	return cmd
}

func newRitualCompleteCmd(app *app) *cobra.Command {
	var rating int
	var notes string

	cmd := &cobra.Command{
		Use:   "complete <ritual-id>",
		Short: "Record a completed ritual",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := completeRitualInput{RitualID: strings.TrimSpace(args[0]), Notes: notes}
			if cmd.Flags().Changed("rating") {
				input.Rating = &rating
			}
			if err := validateInput(input); err != nil {
				return err
			}

			userID, err := app.currentUser(cmd.Context())
			if err != nil {
				return err
			}

			var notesPtr *string
			if trimmed := strings.TrimSpace(input.Notes); trimmed != "" {
				notesPtr = &trimmed
			}

			session, err := app.rituals.RecordCompletion(cmd.Context(), application.RecordCompletionCommand{
				UserID:   userID,
				RitualID: input.RitualID,
				Rating:   input.Rating,
				Notes:    notesPtr,
			})
			if err != nil {
				return err
			}

			name := session.RitualID
			if ritual, err := app.rituals.GetByID(session.RitualID); err == nil {
				name = ritual.Name
			} else if errors.Is(err, domain.ErrRitualNotFound) {
				app.logger.Warn("completed ritual is not in the catalog", zap.String("ritual_id", session.RitualID))
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Completed %s (session %s)\n", name, session.ID)
			return err
		},
	}

	cmd.Flags().IntVar(&rating, "rating", 0, "Rate the session from 1 to 5")
	cmd.Flags().StringVar(&notes, "notes", "", "Notes about the session")

	return cmd
}

func newRitualSessionsCmd(app *app) *cobra.Command {
	var today bool
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "sessions",
		Short: "List your completed ritual sessions",
		RunE: func(cmd *cobra.Command, _ []string) error {
			userID, err := app.currentUser(cmd.Context())
			if err != nil {
				return err
			}

			var sessions []domain.RitualSession
			if today {
				sessions, err = app.rituals.TodaysSessionsForUser(cmd.Context(), userID)
			} else {
				sessions, err = app.rituals.SessionsForUser(cmd.Context(), userID)
			}
			if err != nil {
				return err
			}
			if sessions == nil {
				sessions = []domain.RitualSession{}
			}

			if asJSON {
				return writeJSON(cmd, sessions)
			}

			rendered, err := app.sessionsRenderer(sessions, app.rituals.ListAll(), app.now().Location())
			return writeRendered(cmd, rendered, err)
		},
	}

	cmd.Flags().BoolVar(&today, "today", false, "Only sessions completed today")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Output sessions as JSON")

	return cmd
}

func newRitualStatsCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show ritual progress by category",
		RunE: func(cmd *cobra.Command, _ []string) error {
			userID, err := app.currentUser(cmd.Context())
			if err != nil {
				return err
			}

			stats, err := app.rituals.Stats(cmd.Context(), userID)
			if err != nil {
				return err
			}

			if asJSON {
				return writeJSON(cmd, stats)
			}

			rendered, err := app.statsRenderer(stats)
			return writeRendered(cmd, rendered, err)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Output stats as JSON")

	return cmd
}
