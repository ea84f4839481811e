package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/dm/ccm-go/internal/format"
)

// renderOverview renders the 4-stat overview bar.
// Wide terminals (>= 80 cols): all 4 cards in a single horizontal row.
// Narrow terminals (< 80 cols): cards stacked in rows of 2.
// Returns empty string if no snapshot is available yet.
func renderOverview(app *App) string {
	if app.current == nil {
		return ""
	}

	width := app.width
	if width <= 0 {
		width = 80
	}

	narrowMode := width < 80

	var cardWidth int
	if narrowMode {
		cardWidth = (width - 4) / 2
		if cardWidth < 10 {
			cardWidth = 10
		}
	} else {
		cardWidth = (width - 8) / 4
		if cardWidth < 10 {
			cardWidth = 10
		}
	}

	running := 0
	playersOnline := 0
	playersMax := 0
	for _, r := range app.serverRows {
		if r.Running {
			running++
		}
		playersOnline += r.Online
		playersMax += r.MaxPlayers
	}
	total := len(app.serverRows)

	// Card 1: Running servers — colored background by fleet state.
	var serversBg lipgloss.Color
	switch {
	case total == 0:
		serversBg = colorGray
	case running == total:
		serversBg = colorGreen
	case running == 0:
		serversBg = colorRed
	default:
		serversBg = colorYellow
	}
	card1 := StyleOverviewCard.
		Background(serversBg).
		Foreground(colorDark).
		Bold(true).
		Width(cardWidth).
		Render(fmt.Sprintf("%d/%d", running, total) + "\nServers Up")

	// Card 2: Players across all servers — blue foreground.
	card2 := StyleOverviewCard.
		Foreground(colorBlue).
		Width(cardWidth).
		Render(format.FormatPlayers(playersOnline, playersMax) + "\nPlayers")

	// Card 3: Role count — purple foreground.
	card3 := StyleOverviewCard.
		Foreground(colorPurple).
		Width(cardWidth).
		Render(fmt.Sprintf("%d", len(app.roleRows)) + "\nRoles")

	// Card 4: User count — cyan foreground.
	card4 := StyleOverviewCard.
		Foreground(colorCyan).
		Width(cardWidth).
		Render(fmt.Sprintf("%d", len(app.userRows)) + "\nUsers")

	if narrowMode {
		row1 := lipgloss.JoinHorizontal(lipgloss.Top, card1, card2)
		row2 := lipgloss.JoinHorizontal(lipgloss.Top, card3, card4)
		return lipgloss.JoinVertical(lipgloss.Left, row1, row2)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, card1, card2, card3, card4)
}
