package summary

import (
	"context"
	"fmt"
	"image/color"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/google/uuid"

	"github.com/asheth/quizdeck/internal/quiz"
	"github.com/asheth/quizdeck/internal/router"
	"github.com/asheth/quizdeck/internal/screen"
	"github.com/asheth/quizdeck/internal/store"
	"github.com/asheth/quizdeck/internal/ui/layout"
	"github.com/asheth/quizdeck/internal/ui/theme"
)

// saveDoneMsg is sent when persisting the score completes.
type saveDoneMsg struct {
	Err error
}

// SummaryScreen displays the final quiz result.
type SummaryScreen struct {
	result     quiz.Result
	store      *store.Store
	category   string
	difficulty string
	restart    func() screen.Screen

	showDetails bool
	saving      bool
	saved       bool
	saveErr     string
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a SummaryScreen for a finished quiz run.
func New(result quiz.Result, st *store.Store, category, difficulty string, restart func() screen.Screen) *SummaryScreen {
	return &SummaryScreen{
		result:     result,
		store:      st,
		category:   category,
		difficulty: difficulty,
		restart:    restart,
	}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Results"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{
		{Key: "D", Description: "Details"},
	}
	if !s.saved && !s.saving && s.store != nil {
		hints = append(hints, layout.KeyHint{Key: "S", Description: "Save score"})
	}
	if s.restart != nil {
		hints = append(hints, layout.KeyHint{Key: "Enter", Description: "Play again"})
	}
	hints = append(hints, layout.KeyHint{Key: "Esc", Description: "Home"})
	return hints
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case saveDoneMsg:
		s.saving = false
		if msg.Err != nil {
			s.saveErr = msg.Err.Error()
		} else {
			s.saved = true
		}
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "s", "S":
			return s, s.saveScore()
		case "d", "D":
			s.showDetails = !s.showDetails
			return s, nil
		case "enter":
			if s.restart != nil {
				next := s.restart()
				return s, func() tea.Msg {
					return router.ReplaceScreenMsg{Screen: next}
				}
			}
			return s, nil
		case "esc":
			return s, func() tea.Msg { return router.PopToRootMsg{} }
		}
	}
	return s, nil
}

// saveScore persists the result once.
func (s *SummaryScreen) saveScore() tea.Cmd {
	if s.saved || s.saving || s.store == nil {
		return nil
	}
	s.saving = true
	s.saveErr = ""

	entry := store.NewScoreEntry(uuid.New().String(), s.result, s.category, s.difficulty)
	st := s.store
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return saveDoneMsg{Err: st.Append(ctx, entry)}
	}
}

func (s *SummaryScreen) View(width, height int) string {
	res := s.result
	center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)

	var b strings.Builder

	b.WriteString(center.
		Foreground(theme.Primary).
		Bold(true).
		Render("Quiz complete!"))
	b.WriteString("\n\n")

	b.WriteString(center.
		Foreground(rankColor(res.Percentage)).
		Bold(true).
		Render(rankMessage(res.Percentage)))
	b.WriteString("\n\n")

	statsLine := fmt.Sprintf("Score: %d/%d        Accuracy: %.1f%%",
		res.Score, res.TotalQuestions, res.Percentage)
	b.WriteString(center.Foreground(theme.Text).Render(statsLine))
	b.WriteString("\n")

	timeLine := fmt.Sprintf("Total time: %.1fs        Avg per question: %.1fs",
		res.TotalTime, res.AverageTime)
	b.WriteString(center.Foreground(theme.TextDim).Render(timeLine))
	b.WriteString("\n")

	if scope := scopeLine(s.category, s.difficulty); scope != "" {
		b.WriteString(center.Foreground(theme.TextDim).Render(scope))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	switch {
	case s.saved:
		b.WriteString(center.Foreground(theme.Success).Render("Score saved."))
		b.WriteString("\n\n")
	case s.saving:
		b.WriteString(center.Foreground(theme.TextDim).Render("Saving..."))
		b.WriteString("\n\n")
	case s.saveErr != "":
		b.WriteString(center.Foreground(theme.Error).Render("Save failed: " + s.saveErr))
		b.WriteString("\n\n")
	}

	if s.showDetails {
		b.WriteString(s.renderDetails(width))
	}

	return b.String()
}

// renderDetails lists every question with the given and correct answers.
func (s *SummaryScreen) renderDetails(width int) string {
	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
		strings.Repeat("─", min(width-8, 60)))

	var b strings.Builder
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.TextDim).Render("Answers")))
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
	b.WriteString("\n\n")

	for i, rec := range s.result.Answers {
		mark := lipgloss.NewStyle().Foreground(theme.Success).Render("✓")
		if !rec.Correct {
			mark = lipgloss.NewStyle().Foreground(theme.Error).Render("✗")
		}

		line := fmt.Sprintf("%s Q%d  %s", mark, i+1, truncate(rec.QuestionText, 54))
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.Text).Render(line)))
		b.WriteString("\n")

		if !rec.Correct {
			detail := fmt.Sprintf("     you: %s   answer: %s",
				truncate(rec.UserAnswer, 24), truncate(rec.CorrectAnswer, 24))
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
				lipgloss.NewStyle().Foreground(theme.TextDim).Render(detail)))
			b.WriteString("\n")
		}
	}
	return b.String()
}

// rankMessage mirrors the score bands shown after a run.
func rankMessage(pct float64) string {
	switch {
	case pct >= 80:
		return "Excellent work! 🏆"
	case pct >= 60:
		return "Good job! 👍"
	default:
		return "Keep practicing! 📚"
	}
}

func rankColor(pct float64) color.Color {
	switch {
	case pct >= 80:
		return theme.Gold
	case pct >= 60:
		return theme.Success
	default:
		return theme.Secondary
	}
}

func scopeLine(category, difficulty string) string {
	switch {
	case category != "" && difficulty != "":
		return fmt.Sprintf("%s · %s", category, titleCase(difficulty))
	case category != "":
		return category
	case difficulty != "":
		return titleCase(difficulty)
	}
	return ""
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n-1]) + "…"
}
