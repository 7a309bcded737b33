package leaderboard

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"

	"charm.land/lipgloss/v2"

	"github.com/asheth/quizdeck/internal/router"
	"github.com/asheth/quizdeck/internal/screen"
	"github.com/asheth/quizdeck/internal/store"
	"github.com/asheth/quizdeck/internal/ui/layout"
	"github.com/asheth/quizdeck/internal/ui/theme"
)

// topN is how many scores the board shows.
const topN = 10

type scoresLoadedMsg struct {
	Entries []store.ScoreEntry
	Err     error
}

// LeaderboardScreen displays the best saved scores.
type LeaderboardScreen struct {
	store   *store.Store
	entries []store.ScoreEntry
	loaded  bool
	errMsg  string
}

var _ screen.Screen = (*LeaderboardScreen)(nil)
var _ screen.KeyHintProvider = (*LeaderboardScreen)(nil)

// New creates a new LeaderboardScreen.
func New(st *store.Store) *LeaderboardScreen {
	return &LeaderboardScreen{store: st}
}

func (s *LeaderboardScreen) Init() tea.Cmd {
	st := s.store
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		entries, err := st.Leaderboard(ctx, topN)
		return scoresLoadedMsg{Entries: entries, Err: err}
	}
}

func (s *LeaderboardScreen) Title() string {
	return "Leaderboard"
}

func (s *LeaderboardScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Esc", Description: "Back"},
	}
}

func (s *LeaderboardScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case scoresLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.entries = msg.Entries
		}
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "q", "enter":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *LeaderboardScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading scores...")
	}
	if len(s.entries) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  No scores yet. Play a quiz!")
	}

	var b strings.Builder
	b.WriteString("\n")

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.Gold).Bold(true).
			Render(fmt.Sprintf("🏆 Top %d", len(s.entries)))))
	b.WriteString("\n\n")

	for i, e := range s.entries {
		dateStr := e.PlayedAt.Format("Jan 02, 2006")

		scope := e.Category
		if scope == "" {
			scope = "Any Category"
		}
		if e.Difficulty != "" {
			scope += " · " + e.Difficulty
		}

		line := fmt.Sprintf("%2d.  %s  %d/%d  %5.1f%%  %6.1fs  %s",
			i+1, dateStr, e.Score, e.Total, e.Percentage, e.TotalTime, scope)

		style := lipgloss.NewStyle().Foreground(theme.Text)
		switch i {
		case 0:
			style = lipgloss.NewStyle().Foreground(theme.Gold).Bold(true)
		case 1, 2:
			style = lipgloss.NewStyle().Foreground(theme.Secondary)
		}

		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
		b.WriteString("\n")
	}

	return b.String()
}
