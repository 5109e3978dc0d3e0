package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/bnema/together-notify/internal/application"
	"github.com/bnema/together-notify/internal/domain"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type cycleOutcome struct {
	report application.CycleReport
	result domain.CycleResult
	err    error
}

type cycleDoneMsg cycleOutcome

var (
	cycleOKStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	cycleRetryStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
)

type cycleSpinnerModel struct {
	spinner spinner.Model
	run     tea.Cmd
	outcome cycleOutcome
	done    bool
}

func newCycleSpinnerModel(run tea.Cmd) cycleSpinnerModel {
	return cycleSpinnerModel{
		spinner: spinner.New(
			spinner.WithSpinner(spinner.Dot),
			spinner.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("205"))),
		),
		run: run,
	}
}

func (m cycleSpinnerModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.run)
}

func (m cycleSpinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case cycleDoneMsg:
		m.done = true
		m.outcome = cycleOutcome(msg)
		return m, tea.Quit
	default:
		return m, nil
	}
}

func (m cycleSpinnerModel) View() string {
	if !m.done {
		return fmt.Sprintf("%s Checking on your partner...", m.spinner.View())
	}
	return cycleSummary(m.outcome) + "\n"
}

// cycleSummary is the one-line verdict left on screen once the spinner stops.
func cycleSummary(o cycleOutcome) string {
	report := o.report
	switch {
	case o.result == domain.ResultRetry:
		return cycleRetryStyle.Render("✗ check failed, will retry")
	case report.Skipped:
		return cycleOKStyle.Render("✓ no partner configured")
	case report.Unchanged:
		return cycleOKStyle.Render(fmt.Sprintf("✓ %s: nothing new", report.Partner))
	case len(report.Events) == 1:
		return cycleOKStyle.Render(fmt.Sprintf("✓ %s: 1 notification sent", report.Partner))
	default:
		return cycleOKStyle.Render(fmt.Sprintf("✓ %s: %d notifications sent", report.Partner, len(report.Events)))
	}
}

func runCycleSpinner(ctx context.Context, output io.Writer, runner *application.PeriodicRunner) (cycleOutcome, error) {
	runCmd := func() tea.Msg {
		report, result, err := runner.Run(ctx)
		return cycleDoneMsg{report: report, result: result, err: err}
	}

	p := tea.NewProgram(
		newCycleSpinnerModel(runCmd),
		tea.WithInput(nil),
		tea.WithOutput(output),
		tea.WithContext(ctx),
	)

	finalModel, err := p.Run()
	if err != nil {
		return cycleOutcome{}, err
	}

	model, ok := finalModel.(cycleSpinnerModel)
	if !ok {
		return cycleOutcome{}, fmt.Errorf("unexpected final spinner model type %T", finalModel)
	}
	return model.outcome, nil
}
