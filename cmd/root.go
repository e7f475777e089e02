package cmd

import "github.com/spf13/cobra"

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "dreamlog",
		Short:         "Dream journal with analysis and lucid dreaming rituals",
		Long:          "dreamlog records dreams and moods, analyzes dream text for themes, emotions and lucidity, and tracks lucid dreaming rituals from the terminal.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	app, err := wireApp()
	if err != nil {
		rootCmd.RunE = func(_ *cobra.Command, _ []string) error {
			return err
		}
		return rootCmd
	}

	rootCmd.PersistentPostRun = func(_ *cobra.Command, _ []string) {
		_ = app.logger.Sync()
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newAnalyzeCmd(app),
		newRitualCmd(app),
		newJournalCmd(app),
		newReminderCmd(app),
		newAuthCmd(app),
	)

	return rootCmd
}
