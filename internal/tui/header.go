package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// renderHeader renders the top header bar with panel endpoint, status, and
// timing info.
//
// Layout:
//   left:   panel base URL (or "Connecting to <URL>..." before the first poll)
//   center: colored "● STATUS" indicator (ONLINE, or DEGRADED with the error)
//   right:  "Last: HH:MM:SS  Poll: Nm" (or "Press r to retry" when degraded)
func renderHeader(app *App) string {
	width := app.width
	if width <= 0 {
		width = 80
	}

	baseURL := ""
	if app.client != nil {
		baseURL = app.client.BaseURL()
	}

	var left, center, right string

	if app.current == nil {
		// No successful snapshot yet — initial connecting state.
		left = "Connecting to " + baseURL + "..."

		if app.lastError != nil {
			center = StyleError.Render("● DEGRADED  " + shortError(app.lastError))
			right = StyleError.Render("Press r to retry")
		}
	} else {
		left = baseURL

		if app.lastError != nil {
			// The displayed snapshot is stale; polls keep retrying on schedule.
			center = StyleError.Render("● DEGRADED  " + shortError(app.lastError))
			right = StyleError.Render("Press r to retry")
		} else {
			center = StyleOK.Render("● ONLINE")

			lastStr := "..."
			if !app.lastUpdated.IsZero() {
				lastStr = app.lastUpdated.Format("15:04:05")
			}
			right = StyleDim.Render(fmt.Sprintf("Last: %s  Poll: %s", lastStr, formatDuration(app.pollInterval)))
		}
	}

	// Build row: left + padding + center + padding + right, filling innerWidth.
	// StyleHeader has Padding(0, 1) so inner content width = total width - 2.
	innerWidth := width - 2
	leftVW := lipgloss.Width(left)
	centerVW := lipgloss.Width(center)
	rightVW := lipgloss.Width(right)

	spacing := innerWidth - leftVW - centerVW - rightVW
	if spacing < 0 {
		spacing = 0
	}
	leftSpacing := spacing / 2
	rightSpacing := spacing - leftSpacing

	row := left +
		strings.Repeat(" ", leftSpacing) +
		center +
		strings.Repeat(" ", rightSpacing) +
		right

	return StyleHeader.Width(width).Render(row)
}

// shortError returns err's message truncated for the header bar.
func shortError(err error) string {
	msg := err.Error()
	if len(msg) > 40 {
		msg = msg[:40] + "..."
	}
	return msg
}

// formatDuration formats a poll interval as a compact string, e.g. "30s" or "10m".
func formatDuration(d time.Duration) string {
	if d >= time.Minute {
		return fmt.Sprintf("%dm", int(d.Minutes()))
	}
	return fmt.Sprintf("%ds", int(d.Seconds()))
}
