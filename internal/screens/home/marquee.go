package home

import (
	"fmt"

	"charm.land/lipgloss/v2"

	"github.com/asheth/quizdeck/internal/ui/theme"
)

// Block-letter title (same art as welcome/banner.go).
const marqueeTitleFull = `  ██████╗ ██╗   ██╗██╗███████╗██████╗ ███████╗ ██████╗██╗  ██╗
 ██╔═══██╗██║   ██║██║╚══███╔╝██╔══██╗██╔════╝██╔════╝██║ ██╔╝
 ██║   ██║██║   ██║██║  ███╔╝ ██║  ██║█████╗  ██║     █████╔╝
 ██║▄▄ ██║██║   ██║██║ ███╔╝  ██║  ██║██╔══╝  ██║     ██╔═██╗
 ╚██████╔╝╚██████╔╝██║███████╗██████╔╝███████╗╚██████╗██║  ██╗
  ╚══▀▀═╝  ╚═════╝ ╚═╝╚══════╝╚═════╝ ╚══════╝ ╚═════╝╚═╝  ╚═╝`

const marqueeTitleCompact = "Q · U · I · Z · D · E · C · K"

// renderTitle returns the styled title block or compact fallback.
func renderTitle(cw int, compact bool) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Gold).
		Bold(true)

	if compact {
		return lipgloss.NewStyle().
			Width(cw).
			Align(lipgloss.Center).
			Render(style.Render(marqueeTitleCompact))
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(style.Render(marqueeTitleFull))
}

// renderStatsBar renders games played and best score in a bordered box
// matching content width.
func renderStatsBar(gamesPlayed int, bestPct float64, cw int, compact bool) string {
	playedStyle := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true)
	bestStyle := lipgloss.NewStyle().Foreground(theme.Gold).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(theme.TextDim)

	var stats string
	if compact {
		stats = fmt.Sprintf("%s %s",
			playedStyle.Render(fmt.Sprintf("▶%d", gamesPlayed)),
			bestText(gamesPlayed, bestPct, true, bestStyle, dimStyle),
		)
	} else {
		stats = fmt.Sprintf("%s  %s",
			playedStyle.Render(fmt.Sprintf("▶ %d PLAYED", gamesPlayed)),
			bestText(gamesPlayed, bestPct, false, bestStyle, dimStyle),
		)
	}

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Secondary).
		Width(cw-2). // account for border chars
		Align(lipgloss.Center).
		Padding(0, 1).
		Render(stats)
}

// compactMenuLine renders a menu entry as a plain text line for small
// terminals where bordered buttons would overflow.
func compactMenuLine(label string, selected bool) string {
	if selected {
		return lipgloss.NewStyle().
			Foreground(theme.BgDark).
			Background(theme.Gold).
			Bold(true).
			Render(" ▸ " + label + " ")
	}
	return lipgloss.NewStyle().
		Foreground(theme.Text).
		Render("   " + label)
}

func bestText(played int, pct float64, compact bool, active, dim lipgloss.Style) string {
	if played == 0 {
		if compact {
			return dim.Render("★ —")
		}
		return dim.Render("★ NO SCORES YET")
	}
	if compact {
		return active.Render(fmt.Sprintf("★%.0f%%", pct))
	}
	return active.Render(fmt.Sprintf("★ BEST %.0f%%", pct))
}
