package engine

import (
	"github.com/dm/ccm-go/internal/client"
	"github.com/dm/ccm-go/internal/model"
)

// CalcServerRows projects the snapshot's server records into table rows,
// in snapshot (API list) order.
func CalcServerRows(snap *model.Snapshot) []model.ServerRow {
	if snap == nil {
		return nil
	}
	rows := make([]model.ServerRow, 0, len(snap.Servers))
	for _, rec := range snap.Servers {
		id, _ := rec.ID(model.KeyServerID)
		rows = append(rows, model.ServerRow{
			ID:         client.CanonicalID(id),
			Name:       rec.String("server_name"),
			Running:    rec.Bool("running"),
			CPUPercent: rec.Float("cpu"),
			MemPercent: rec.Float("mem_percent"),
			Online:     rec.Int("online"),
			MaxPlayers: rec.Int("max"),
			Version:    rec.String("version"),
			WorldSize:  rec.String("world_size"),
		})
	}
	return rows
}

// CalcRoleRows projects the snapshot's role records into table rows.
func CalcRoleRows(snap *model.Snapshot) []model.RoleRow {
	if snap == nil {
		return nil
	}
	rows := make([]model.RoleRow, 0, len(snap.Roles))
	for _, rec := range snap.Roles {
		id, _ := rec.ID(model.KeyRoleID)
		rows = append(rows, model.RoleRow{
			ID:      client.CanonicalID(id),
			Name:    rec.String("role_name"),
			Users:   lenOfList(rec["users"]),
			Servers: lenOfList(rec["servers"]),
		})
	}
	return rows
}

// CalcUserRows projects the snapshot's user records into table rows.
func CalcUserRows(snap *model.Snapshot) []model.UserRow {
	if snap == nil {
		return nil
	}
	rows := make([]model.UserRow, 0, len(snap.Users))
	for _, rec := range snap.Users {
		id, _ := rec.ID(model.KeyUserID)
		rows = append(rows, model.UserRow{
			ID:        client.CanonicalID(id),
			Username:  rec.String("username"),
			Email:     rec.String("email"),
			LastLogin: rec.String("last_login"),
			Enabled:   rec.Bool("enabled"),
			Superuser: rec.Bool("superuser"),
		})
	}
	return rows
}

func lenOfList(v any) int {
	if l, ok := v.([]any); ok {
		return len(l)
	}
	return 0
}
