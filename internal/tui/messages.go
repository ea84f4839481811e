package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/dm/ccm-go/internal/client"
	"github.com/dm/ccm-go/internal/engine"
	"github.com/dm/ccm-go/internal/entity"
)

// UpdateMsg delivers one coordinator update (a fresh snapshot or a poll
// failure) to the TUI.
type UpdateMsg engine.Update

// ActionResultMsg reports the outcome of a fired server action button.
type ActionResultMsg struct {
	Button entity.Button
	Err    error
}

// statusExpiredMsg clears the transient action status line in the footer.
type statusExpiredMsg struct{}

// waitForUpdate blocks on the coordinator's subscription channel and turns
// the next update into a message. The app re-arms it after every UpdateMsg.
func waitForUpdate(ch <-chan engine.Update) tea.Cmd {
	return func() tea.Msg {
		u, ok := <-ch
		if !ok {
			return nil
		}
		return UpdateMsg(u)
	}
}

// pressCmd fires a button's server action off the Update thread. The action
// is fire-and-forget: the snapshot is untouched and the next poll reflects
// whatever the panel did with the request.
func pressCmd(c client.CraftyClient, b entity.Button) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return ActionResultMsg{Button: b, Err: b.Press(ctx, c)}
	}
}

// expireStatusCmd schedules the footer status line to clear.
func expireStatusCmd() tea.Cmd {
	return tea.Tick(5*time.Second, func(time.Time) tea.Msg {
		return statusExpiredMsg{}
	})
}
