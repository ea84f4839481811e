// Package entity projects snapshots into display entities: sensors carrying
// a lazily evaluated name/state pair plus static metadata, and buttons that
// fire server actions. Descriptors hold pure functions over the snapshot and
// never cache — the snapshot is immutable per cycle, so evaluation on read
// is safe and cheap.
package entity

import (
	"fmt"

	"github.com/dm/ccm-go/internal/client"
	"github.com/dm/ccm-go/internal/model"
)

// Category classifies a sensor for presentation grouping.
type Category string

const CategoryDiagnostic Category = "diagnostic"

// Kind names, used in unique IDs.
const (
	KindServer = "server"
	KindRole   = "role"
	KindUser   = "user"
)

// UniqueID derives a stable entity identity from the panel endpoint and the
// resource. Re-running setup against the same endpoint yields the same ids,
// so entities are never duplicated.
func UniqueID(host string, port int, kind string, id any) string {
	return fmt.Sprintf("%s_%d_crafty_%s_%s", host, port, kind, client.CanonicalID(id))
}

// Sensor is a declarative display entity: static metadata plus projection
// functions evaluated against whatever snapshot is current at read time.
// A projection returns its zero value when the backing record is absent
// from the given snapshot.
type Sensor struct {
	UniqueID string
	Kind     string
	Icon     string
	Unit     string
	Category Category

	Name  func(*model.Snapshot) string
	State func(*model.Snapshot) any
}

// ServerSensor projects one server: name from server_name, state
// Online/Offline from the running flag.
func ServerSensor(host string, port int, id any) Sensor {
	return Sensor{
		UniqueID: UniqueID(host, port, KindServer, id),
		Kind:     KindServer,
		Icon:     "mdi:server",
		Category: CategoryDiagnostic,
		Name: func(snap *model.Snapshot) string {
			if rec := findIn(snap, KindServer, id); rec != nil {
				if n := rec.String("server_name"); n != "" {
					return "Server " + n
				}
			}
			return "Server " + client.CanonicalID(id)
		},
		State: func(snap *model.Snapshot) any {
			rec := findIn(snap, KindServer, id)
			if rec == nil {
				return nil
			}
			if rec.Bool("running") {
				return "Online"
			}
			return "Offline"
		},
	}
}

// RoleSensor projects one role: name from role_name, state is the number of
// users holding the role.
func RoleSensor(host string, port int, id any) Sensor {
	return Sensor{
		UniqueID: UniqueID(host, port, KindRole, id),
		Kind:     KindRole,
		Icon:     "mdi:account-group",
		Unit:     "users",
		Category: CategoryDiagnostic,
		Name: func(snap *model.Snapshot) string {
			if rec := findIn(snap, KindRole, id); rec != nil {
				if n := rec.String("role_name"); n != "" {
					return "Role " + n
				}
			}
			return "Role " + client.CanonicalID(id)
		},
		State: func(snap *model.Snapshot) any {
			rec := findIn(snap, KindRole, id)
			if rec == nil {
				return nil
			}
			users, _ := rec["users"].([]any)
			return len(users)
		},
	}
}

// UserSensor projects one user: name from username, state is the last login
// timestamp.
func UserSensor(host string, port int, id any) Sensor {
	return Sensor{
		UniqueID: UniqueID(host, port, KindUser, id),
		Kind:     KindUser,
		Icon:     "mdi:account",
		Category: CategoryDiagnostic,
		Name: func(snap *model.Snapshot) string {
			if rec := findIn(snap, KindUser, id); rec != nil {
				if n := rec.String("username"); n != "" {
					return "User " + n
				}
			}
			return "User " + client.CanonicalID(id)
		},
		State: func(snap *model.Snapshot) any {
			rec := findIn(snap, KindUser, id)
			if rec == nil {
				return nil
			}
			return rec.String("last_login")
		},
	}
}

// SensorsFor builds one sensor per record in the snapshot, servers first,
// then roles, then users, preserving snapshot order within each kind.
func SensorsFor(snap *model.Snapshot, host string, port int) []Sensor {
	if snap == nil {
		return nil
	}
	sensors := make([]Sensor, 0, len(snap.Servers)+len(snap.Roles)+len(snap.Users))
	for _, rec := range snap.Servers {
		if id, ok := rec.ID(model.KeyServerID); ok {
			sensors = append(sensors, ServerSensor(host, port, id))
		}
	}
	for _, rec := range snap.Roles {
		if id, ok := rec.ID(model.KeyRoleID); ok {
			sensors = append(sensors, RoleSensor(host, port, id))
		}
	}
	for _, rec := range snap.Users {
		if id, ok := rec.ID(model.KeyUserID); ok {
			sensors = append(sensors, UserSensor(host, port, id))
		}
	}
	return sensors
}

func findIn(snap *model.Snapshot, kind string, id any) model.Record {
	if snap == nil {
		return nil
	}
	switch kind {
	case KindServer:
		return model.FindByID(snap.Servers, model.KeyServerID, id)
	case KindRole:
		return model.FindByID(snap.Roles, model.KeyRoleID, id)
	case KindUser:
		return model.FindByID(snap.Users, model.KeyUserID, id)
	}
	return nil
}
