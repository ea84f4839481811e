package entity

import (
	"context"

	"github.com/dm/ccm-go/internal/client"
)

// Button fires one server action. Pressing is fire-and-forget: the panel
// acknowledges the request and the next scheduled poll observes whatever
// state change results — the snapshot is never touched directly.
type Button struct {
	UniqueID string
	Name     string
	Icon     string
	Action   client.ServerAction
	ServerID any
}

// Press invokes the button's action through the given client.
func (b Button) Press(ctx context.Context, c client.CraftyClient) error {
	return c.ServerAction(ctx, b.ServerID, b.Action)
}

// ServerButtons returns the five action buttons for one server.
func ServerButtons(host string, port int, id any) []Button {
	defs := []struct {
		action client.ServerAction
		name   string
		icon   string
	}{
		{client.ActionStart, "Start server", "mdi:play"},
		{client.ActionStop, "Stop server", "mdi:stop"},
		{client.ActionRestart, "Restart server", "mdi:restart"},
		{client.ActionKill, "Kill server", "mdi:power"},
		{client.ActionBackup, "Backup server", "mdi:cloud-upload"},
	}

	buttons := make([]Button, 0, len(defs))
	for _, d := range defs {
		buttons = append(buttons, Button{
			UniqueID: UniqueID(host, port, KindServer, id) + "_" + string(d.action),
			Name:     d.name,
			Icon:     d.icon,
			Action:   d.action,
			ServerID: id,
		})
	}
	return buttons
}
