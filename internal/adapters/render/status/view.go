package status

import (
	"fmt"
	"sort"
	"strings"

	"github.com/bnema/together-notify/internal/application"
	"github.com/bnema/together-notify/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// RenderOptions tunes the status view. BarWidth of zero hides the study
// progress bar.
type RenderOptions struct {
	BarWidth  int
	StudyGoal int
}

func renderView(status application.Status, opts RenderOptions, s styles) string {
	lines := []string{s.title.Render("Together")}

	if !status.Configured {
		lines = append(lines, s.empty.Render("No partner configured. Run `together profile set --partner <name>`."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	lines = append(lines, s.header.Render(headerLine(status.Profile)))

	if !status.HasSnapshot {
		lines = append(lines, s.section.Render(s.empty.Render("No snapshot yet. It is written after the first cycle that sees the partner.")))
		lines = append(lines, bucketLine(status.BucketCount, s))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	parts := []string{s.partner.Render(status.Profile.Partner)}
	parts = append(parts, stateLines(status, opts, s)...)
	lines = append(lines, s.section.Render(lipgloss.JoinVertical(lipgloss.Left, parts...)))
	lines = append(lines, bucketLine(status.BucketCount, s))

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func headerLine(profile domain.Profile) string {
	if profile.Name == "" {
		return fmt.Sprintf("partner: %s", profile.Partner)
	}
	return fmt.Sprintf("partner: %s (you: %s)", profile.Partner, profile.Name)
}

func stateLines(status application.Status, opts RenderOptions, s styles) []string {
	state := status.State
	lines := make([]string, 0, 6)

	if activity, ok := state.LatestActivity(); ok {
		value := domain.ActivityLabel(activity.Type)
		if activity.Timestamp != "" {
			value += " " + s.meta.Render(fmt.Sprintf("(%s)", activity.Timestamp))
		}
		lines = append(lines, field("activity", value, s))
	} else {
		lines = append(lines, field("activity", s.empty.Render("none"), s))
	}

	if state.Mood != "" {
		lines = append(lines, field("mood", state.Mood, s))
	}

	lines = append(lines, studyLine(state.StudyLogs, opts, s))

	if state.Game.TotalScore > 0 {
		lines = append(lines, field("score", fmt.Sprintf("%d", state.Game.TotalScore), s))
	}

	if count, ok := state.Coupons.InventoryCount(status.Profile.Partner); ok {
		lines = append(lines, field("coupons", fmt.Sprintf("%d held", count), s))
	}

	if balances := balanceSummary(state.Coupons.Balances); balances != "" {
		lines = append(lines, field("points", balances, s))
	}

	return lines
}

func studyLine(logs []domain.StudySession, opts RenderOptions, s styles) string {
	value := fmt.Sprintf("%d sessions", len(logs))
	if len(logs) == 1 {
		value = "1 session"
	}
	if len(logs) > 0 {
		if subject := logs[len(logs)-1].Subject; subject != "" {
			value += " " + s.meta.Render(fmt.Sprintf("(latest: %s)", subject))
		}
	}

	if opts.BarWidth > 0 && opts.StudyGoal > 0 {
		value = renderProgressBar(len(logs), opts.StudyGoal, opts.BarWidth, s) + " " + value
	}

	return field("study", value, s)
}

func bucketLine(count int, s styles) string {
	if count == domain.NoBucketCount {
		return field("bucket list", s.empty.Render("not seen yet"), s)
	}
	if count == 1 {
		return field("bucket list", "1 item", s)
	}
	return field("bucket list", fmt.Sprintf("%d items", count), s)
}

func balanceSummary(balances []domain.Balance) string {
	parts := make([]string, 0, len(balances))
	for _, balance := range balances {
		if !balance.Valid {
			continue
		}
		parts = append(parts, fmt.Sprintf("%s %d", balance.User, balance.Points))
	}
	sort.Strings(parts)
	return strings.Join(parts, ", ")
}

func field(key, value string, s styles) string {
	return lipgloss.JoinHorizontal(lipgloss.Top, s.key.Render(key+":"), " ", s.value.Render(value))
}

func renderProgressBar(done, goal, width int, s styles) string {
	filled := width
	if done < goal {
		filled = width * done / goal
	}
	if filled < 0 {
		filled = 0
	}

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		s.barBracket.Render("["),
		s.barFill.Render(strings.Repeat("=", filled)),
		s.barEmpty.Render(strings.Repeat("-", width-filled)),
		s.barBracket.Render("]"),
	)
}
