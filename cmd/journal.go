package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/bnema/dreamlog/internal/application"
	"github.com/bnema/dreamlog/internal/domain"
	"github.com/spf13/cobra"
)

func newJournalCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "journal",
		Short: "Record dreams and moods",
	}

	cmd.AddCommand(
		newJournalDreamCmd(app),
		newJournalMoodCmd(app),
		newJournalRecentCmd(app),
		newJournalShowCmd(app),
		newJournalTagsCmd(app),
		newJournalStreakCmd(app),
	)

	return cmd
}

func newJournalDreamCmd(app *app) *cobra.Command {
	var voiceURL string
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "dream [text]",
		Short: "Save a dream and show its analysis",
		Long:  "Save a dream entry. Reads the dream from stdin when no text is given.",
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := dreamText(cmd.InOrStdin(), args)
			if err != nil {
				return err
			}

			userID, err := app.currentUser(cmd.Context())
			if err != nil {
				return err
			}

			entry, analysis, err := app.journal.AddDreamEntry(cmd.Context(), application.AddDreamEntryCommand{
				UserID:   userID,
				Text:     text,
				VoiceURL: strings.TrimSpace(voiceURL),
			})
			if err != nil {
				return err
			}

			if asJSON {
				return writeJSON(cmd, entry)
			}

			rendered, renderErr := app.analysisRenderer(analysis)
			if err := writeRendered(cmd, rendered, renderErr); err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "\nSaved dream %s\n", entry.ID)
			return err
		},
	}

	cmd.Flags().StringVar(&voiceURL, "voice-url", "", "Link to a voice recording of the dream")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Output the saved entry as JSON")

	return cmd
}

func newJournalMoodCmd(app *app) *cobra.Command {
	var text string
	var tags []string

	cmd := &cobra.Command{
		Use:   "mood <mood>",
		Short: "Record how you feel",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			userID, err := app.currentUser(cmd.Context())
			if err != nil {
				return err
			}

			entry, err := app.journal.AddEmotionEntry(cmd.Context(), application.AddEmotionEntryCommand{
				UserID: userID,
				Mood:   args[0],
				Text:   text,
				Tags:   tags,
			})
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Saved mood %q (%s)\n", entry.Mood, entry.ID)
			return err
		},
	}

	cmd.Flags().StringVar(&text, "text", "", "Optional note")
	cmd.Flags().StringSliceVar(&tags, "tag", nil, "Tag the entry (repeatable)")

	return cmd
}

func newJournalRecentCmd(app *app) *cobra.Command {
	var limit int
	var entryType string
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "recent",
		Short: "Show the most recent entries",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := validateInput(listLimitInput{Limit: limit}); err != nil {
				return err
			}

			var filter domain.EntryType
			if entryType != "" {
				parsed, err := domain.ParseEntryType(strings.TrimSpace(entryType))
				if err != nil {
					return err
				}
				filter = parsed
			}

			userID, err := app.currentUser(cmd.Context())
			if err != nil {
				return err
			}

			entries, err := app.journal.RecentEntriesOfType(cmd.Context(), userID, filter, limit)
			if err != nil {
				return err
			}

			if asJSON {
				if entries == nil {
					entries = []domain.Entry{}
				}
				return writeJSON(cmd, entries)
			}

			out := cmd.OutOrStdout()
			if len(entries) == 0 {
				_, err := fmt.Fprintln(out, "No entries yet.")
				return err
			}
			for _, entry := range entries {
				if _, err := fmt.Fprintln(out, entryLine(entry, app.now().Location())); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", application.DefaultRecentEntriesLimit, "Number of entries to show")
	cmd.Flags().StringVar(&entryType, "type", "", "Only entries of this type (dream|emotion)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Output entries as JSON")

	return cmd
}

func newJournalShowCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "show <entry-id>",
		Short: "Show one journal entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			userID, err := app.currentUser(cmd.Context())
			if err != nil {
				return err
			}

			entry, err := app.journal.EntryByID(cmd.Context(), userID, args[0])
			if err != nil {
				return fmt.Errorf("%w: %q", err, args[0])
			}

			if asJSON {
				return writeJSON(cmd, entry)
			}

			out := cmd.OutOrStdout()
			if _, err := fmt.Fprintln(out, entryLine(entry, app.now().Location())); err != nil {
				return err
			}
			if entry.Type == domain.EntryTypeDream {
				if _, err := fmt.Fprintf(out, "\n%s\n", strings.TrimSpace(entry.Text)); err != nil {
					return err
				}
				if entry.Summary != "" {
					if _, err := fmt.Fprintf(out, "\n%s\n", entry.Summary); err != nil {
						return err
					}
				}
				for _, insight := range entry.Insights {
					if _, err := fmt.Fprintf(out, "- %s\n", insight); err != nil {
						return err
					}
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Output the entry as JSON")

	return cmd
}

func entryLine(entry domain.Entry, loc *time.Location) string {
	when := entry.CreatedAt.In(loc).Format("2006-01-02 15:04")

	var body string
	switch entry.Type {
	case domain.EntryTypeDream:
		body = "dream: " + excerpt(entry.Text, 60)
	case domain.EntryTypeEmotion:
		body = "mood: " + entry.Mood
		if entry.Text != "" {
			body += " - " + excerpt(entry.Text, 40)
		}
	default:
		body = string(entry.Type)
	}

	if len(entry.Tags) > 0 {
		body += " [" + strings.Join(entry.Tags, ", ") + "]"
	}

	return when + "  " + body
}

func excerpt(text string, limit int) string {
	text = strings.Join(strings.Fields(text), " ")
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return string(runes[:limit]) + "..."
}

func newJournalTagsCmd(app *app) *cobra.Command {
	var limit int
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "tags",
		Short: "Show your most frequent tags",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := validateInput(listLimitInput{Limit: limit}); err != nil {
				return err
			}

			userID, err := app.currentUser(cmd.Context())
			if err != nil {
				return err
			}

			tags, err := app.journal.TopTags(cmd.Context(), userID, limit)
			if err != nil {
				return err
			}

			if asJSON {
				return writeJSON(cmd, tags)
			}

			out := cmd.OutOrStdout()
			if len(tags) == 0 {
				_, err := fmt.Fprintln(out, "No tags yet.")
				return err
			}
			for _, tag := range tags {
				if _, err := fmt.Fprintf(out, "%-16s %d\n", tag.Tag, tag.Count); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", application.DefaultTopTagsLimit, "Number of tags to show")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Output tags as JSON")

	return cmd
}

func newJournalStreakCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "streak",
		Short: "Show consecutive days with journal entries",
		RunE: func(cmd *cobra.Command, _ []string) error {
			userID, err := app.currentUser(cmd.Context())
			if err != nil {
				return err
			}

			days, err := app.journal.StreakDays(cmd.Context(), userID)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Journal streak: %d day(s)\n", days)
			return err
		},
	}
}
