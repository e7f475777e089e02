package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/bnema/dreamlog/internal/domain"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type analysisDoneMsg struct {
	result domain.DreamAnalysisResult
	err    error
}

type analysisSpinnerModel struct {
	spinner spinner.Model
	label   string
	wait    tea.Cmd
	result  domain.DreamAnalysisResult
	err     error
	done    bool
}

func newAnalysisSpinnerModel(label string, wait tea.Cmd) analysisSpinnerModel {
	s := spinner.New(
		spinner.WithSpinner(spinner.Moon),
		spinner.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("141"))),
	)

	return analysisSpinnerModel{
		spinner: s,
		label:   label,
		wait:    wait,
	}
}

func (m analysisSpinnerModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.wait)
}

func (m analysisSpinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case analysisDoneMsg:
		m.done = true
		m.result = msg.result
		m.err = msg.err
		return m, tea.Quit
	default:
		return m, nil
	}
}

func (m analysisSpinnerModel) View() string {
	if m.done {
		return ""
	}

	return fmt.Sprintf("%s %s", m.spinner.View(), m.label)
}

// runAnalysisSpinner shows a spinner on output until results delivers or ctx
// ends.
func runAnalysisSpinner(ctx context.Context, output io.Writer, results <-chan domain.DreamAnalysisResult) (domain.DreamAnalysisResult, error) {
	waitCmd := func() tea.Msg {
		select {
		case result := <-results:
			return analysisDoneMsg{result: result}
		case <-ctx.Done():
			return analysisDoneMsg{err: ctx.Err()}
		}
	}

	p := tea.NewProgram(
		newAnalysisSpinnerModel("Analyzing dream...", waitCmd),
		tea.WithInput(nil),
		tea.WithOutput(output),
		tea.WithContext(ctx),
	)

	finalModel, err := p.Run()
	if err != nil {
		return domain.DreamAnalysisResult{}, err
	}

	result, ok := finalModel.(analysisSpinnerModel)
	if !ok {
		return domain.DreamAnalysisResult{}, fmt.Errorf("unexpected final spinner model type %T", finalModel)
	}

	return result.result, result.err
}
