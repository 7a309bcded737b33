package session

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/asheth/quizdeck/internal/ui/components"
	"github.com/asheth/quizdeck/internal/ui/theme"
)

func (s *SessionScreen) View(width, height int) string {
	if s.showingQuit {
		return renderQuitConfirm(width)
	}
	if s.showingFeedback {
		return s.renderFeedback(width)
	}
	return s.renderQuestionView(width)
}

// renderQuestionView renders the active question display.
func (s *SessionScreen) renderQuestionView(width int) string {
	q := s.engine.CurrentQuestion()
	if q == nil {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("\n\n  Preparing results...")
	}

	answered, total := s.engine.Progress()

	var b strings.Builder

	// Info line: category on the left, progress/score/timer on the right.
	infoLeft := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render("  " + categoryLabel(s.opts.Category, q.Category))

	right := fmt.Sprintf("Q %d/%d  %s %d",
		answered+1,
		total,
		lipgloss.NewStyle().Foreground(theme.Success).Render("✓"),
		s.engine.Score(),
	)
	if s.opts.TimeLimit > 0 {
		right += "  " + timerText(int(s.remaining.Seconds()))
	}
	infoRight := lipgloss.NewStyle().Foreground(theme.TextDim).Render(right)

	infoLine := infoLeft
	rightPad := width - lipgloss.Width(infoLeft) - lipgloss.Width(infoRight) - 4
	if rightPad > 0 {
		infoLine += strings.Repeat(" ", rightPad) + infoRight
	}

	b.WriteString(infoLine)
	b.WriteString("\n")

	bar := components.NewProgressBar("", float64(answered)/float64(total), false, min(width-8, 50))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, bar.View()))
	b.WriteString("\n\n")

	// Question text, wrapped and centered.
	questionStyle := lipgloss.NewStyle().
		Width(min(width-8, 70)).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, questionStyle.Render(q.Text)))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.mc.View()))

	selectLine := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("\nSelect (1-4) or use arrows + Enter")
	b.WriteString(selectLine)

	return b.String()
}

// renderFeedback renders the graded question with the answer reveal.
func (s *SessionScreen) renderFeedback(width int) string {
	center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)

	var b strings.Builder
	b.WriteString("\n")

	switch {
	case s.lastCorrect:
		b.WriteString(center.
			Foreground(theme.Success).
			Bold(true).
			Render("Correct!"))
	case s.lastTimedOut:
		b.WriteString(center.
			Foreground(theme.Error).
			Bold(true).
			Render("Time's up!"))
	default:
		b.WriteString(center.
			Foreground(theme.Error).
			Bold(true).
			Render("Not quite"))
	}
	b.WriteString("\n\n")

	if s.lastQuestion != "" {
		questionStyle := lipgloss.NewStyle().
			Width(min(width-8, 70)).
			Align(lipgloss.Center).
			Foreground(theme.Text)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, questionStyle.Render(s.lastQuestion)))
		b.WriteString("\n\n")
	}

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.mc.View()))

	b.WriteString("\n")
	b.WriteString(center.
		Foreground(theme.TextDim).
		Render("Press any key to continue..."))

	return b.String()
}

// renderQuitConfirm renders the abandon confirmation dialog.
func renderQuitConfirm(width int) string {
	center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)

	var b strings.Builder
	b.WriteString("\n\n\n")
	b.WriteString(center.
		Foreground(theme.Text).
		Bold(true).
		Render("Abandon this quiz?"))
	b.WriteString("\n")
	b.WriteString(center.
		Foreground(theme.TextDim).
		Render("The run will not be scored."))
	b.WriteString("\n\n")
	b.WriteString(center.
		Foreground(theme.Error).
		Render("[Y] Yes, abandon"))
	b.WriteString("\n")
	b.WriteString(center.
		Foreground(theme.Primary).
		Render("[N] No, keep going"))

	return b.String()
}

func categoryLabel(selected, questionCategory string) string {
	if selected != "" {
		return selected
	}
	if questionCategory != "" {
		return questionCategory
	}
	return "Mixed"
}

func timerText(secs int) string {
	if secs < 0 {
		secs = 0
	}
	style := lipgloss.NewStyle().Foreground(theme.Accent)
	if secs <= 5 {
		style = lipgloss.NewStyle().Foreground(theme.Error).Bold(true)
	}
	return style.Render(fmt.Sprintf("⏱ %ds", secs))
}
