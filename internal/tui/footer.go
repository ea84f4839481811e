package tui

// renderFooter renders the key binding help footer at full terminal width.
// A transient action status line, when present, precedes the help hint.
// When app.showHelp is true, shows all key bindings; otherwise a brief hint.
func renderFooter(app *App) string {
	width := app.width
	if width <= 0 {
		width = 80
	}

	text := "? for help"
	if app.showHelp {
		text = helpText
	}

	if app.actionStatus != "" {
		status := app.actionStatus
		if app.actionFailed {
			status = StyleError.Render(status)
		} else {
			status = StyleOK.Render(status)
		}
		return status + "\n" + StyleDim.Width(width).Render(text)
	}
	return StyleDim.Width(width).Render(text)
}
