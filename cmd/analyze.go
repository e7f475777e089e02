package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/bnema/dreamlog/internal/domain"
	"github.com/spf13/cobra"
)

func newAnalyzeCmd(app *app) *cobra.Command {
	var asJSON bool
	var wait bool

	cmd := &cobra.Command{
		Use:   "analyze [text]",
		Short: "Analyze dream text for themes, emotions and lucidity",
		Long:  "Analyze dream text without saving it. Reads the dream from stdin when no text is given.",
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := dreamText(cmd.InOrStdin(), args)
			if err != nil {
				return err
			}

			var result domain.DreamAnalysisResult
			if wait {
				result, err = runAnalysisSpinner(cmd.Context(), cmd.ErrOrStderr(), app.analysis.AnalyzeAsync(text))
				if err != nil {
					return fmt.Errorf("analyze dream: %w", err)
				}
			} else {
				result = app.analysis.Analyze(text)
			}

			if asJSON {
				return writeJSON(cmd, result)
			}

			rendered, err := app.analysisRenderer(result)
			return writeRendered(cmd, rendered, err)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Output the analysis as JSON")
	cmd.Flags().BoolVar(&wait, "wait", false, "Run the delayed analysis with a progress spinner")

	return cmd
}

// dreamText joins args, or reads all of in when there are none.
func dreamText(in io.Reader, args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}

	data, err := io.ReadAll(in)
	if err != nil {
		return "", fmt.Errorf("read dream text: %w", err)
	}

	return string(data), nil
}
