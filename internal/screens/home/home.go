package home

import (
	"context"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/asheth/quizdeck/internal/opentdb"
	"github.com/asheth/quizdeck/internal/router"
	"github.com/asheth/quizdeck/internal/screen"
	"github.com/asheth/quizdeck/internal/screens/leaderboard"
	"github.com/asheth/quizdeck/internal/screens/setup"
	"github.com/asheth/quizdeck/internal/store"
	"github.com/asheth/quizdeck/internal/ui/components"
)

// HomeScreen is the main home screen of the application.
type HomeScreen struct {
	menu        components.Menu
	menuLabels  []string
	gamesPlayed int
	bestPct     float64
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(st *store.Store, client *opentdb.Client) *HomeScreen {
	var stats store.Stats
	if st != nil {
		stats, _ = st.Stats(context.Background())
	}

	menuLabels := []string{"NEW QUIZ", "LEADERBOARD", "EXIT"}

	items := []components.MenuItem{
		{Label: menuLabels[0], Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: setup.New(client, st)}
			}
		}},
		{Label: menuLabels[1], Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: leaderboard.New(st)}
			}
		}},
		{Label: menuLabels[2], Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{
		menu:        components.NewMenu(items),
		menuLabels:  menuLabels,
		gamesPlayed: stats.GamesPlayed,
		bestPct:     stats.BestPercentage,
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	// height is the content area; estimate full terminal height
	// by adding back header (3) + footer (3) + frame gaps
	termHeight := height + 8
	compact := termHeight < 30 || width < 100

	// All sections share a uniform content width so they line up.
	cw := components.ContentWidth(width)

	var sections []string

	sections = append(sections, renderTitle(cw, compact))
	sections = append(sections, renderStatsBar(h.gamesPlayed, h.bestPct, cw, compact))
	sections = append(sections, h.renderMenu(cw, compact))

	content := strings.Join(sections, "\n\n")

	return components.CabinetFrame(content, width, height)
}

func (h *HomeScreen) renderMenu(cw int, compact bool) string {
	var lines []string
	for i, label := range h.menuLabels {
		if compact {
			lines = append(lines, compactMenuLine(label, i == h.menu.Selected))
		} else {
			lines = append(lines, components.MenuButton(label, i == h.menu.Selected, 22))
		}
	}
	block := strings.Join(lines, "\n")

	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(block)
}

func (h *HomeScreen) Title() string {
	return "Home"
}
