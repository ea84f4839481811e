package entity

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dm/ccm-go/internal/client"
	"github.com/dm/ccm-go/internal/model"
)

func testSnapshot() *model.Snapshot {
	return &model.Snapshot{
		Servers: []model.Record{
			{"server_id": float64(1), "server_name": "survival", "running": true},
			{"server_id": float64(2), "server_name": "creative", "running": false},
		},
		Roles: []model.Record{
			{"role_id": float64(3), "role_name": "mods", "users": []any{float64(5), float64(6)}},
		},
		Users: []model.Record{
			{"user_id": float64(5), "username": "steve", "last_login": "2026-02-01T10:00:00"},
		},
	}
}

func TestUniqueIDDeterministic(t *testing.T) {
	a := UniqueID("panel.local", 8443, KindServer, float64(1))
	b := UniqueID("panel.local", 8443, KindServer, 1)
	assert.Equal(t, a, b, "same endpoint and resource must yield the same id")
	assert.Equal(t, "panel.local_8443_crafty_server_1", a)

	assert.NotEqual(t, a, UniqueID("panel.local", 8443, KindUser, 1))
	assert.NotEqual(t, a, UniqueID("panel.local", 8444, KindServer, 1))
	assert.NotEqual(t, a, UniqueID("other.local", 8443, KindServer, 1))
}

func TestServerSensorProjection(t *testing.T) {
	snap := testSnapshot()
	s := ServerSensor("panel.local", 8443, 1)

	assert.Equal(t, "Server survival", s.Name(snap))
	assert.Equal(t, "Online", s.State(snap))
	assert.Equal(t, "mdi:server", s.Icon)
	assert.Equal(t, CategoryDiagnostic, s.Category)

	off := ServerSensor("panel.local", 8443, 2)
	assert.Equal(t, "Offline", off.State(snap))

	// Record gone from a later snapshot: name falls back to the id, state is nil.
	gone := ServerSensor("panel.local", 8443, 9)
	assert.Equal(t, "Server 9", gone.Name(snap))
	assert.Nil(t, gone.State(snap))
}

func TestRoleSensorCountsHolders(t *testing.T) {
	snap := testSnapshot()
	s := RoleSensor("panel.local", 8443, 3)

	assert.Equal(t, "Role mods", s.Name(snap))
	assert.Equal(t, 2, s.State(snap))
	assert.Equal(t, "users", s.Unit)
}

func TestUserSensorLastLogin(t *testing.T) {
	snap := testSnapshot()
	s := UserSensor("panel.local", 8443, 5)

	assert.Equal(t, "User steve", s.Name(snap))
	assert.Equal(t, "2026-02-01T10:00:00", s.State(snap))
}

func TestSensorsForCoversAllRecords(t *testing.T) {
	sensors := SensorsFor(testSnapshot(), "panel.local", 8443)
	require.Len(t, sensors, 4)
	assert.Equal(t, KindServer, sensors[0].Kind)
	assert.Equal(t, KindServer, sensors[1].Kind)
	assert.Equal(t, KindRole, sensors[2].Kind)
	assert.Equal(t, KindUser, sensors[3].Kind)

	assert.Nil(t, SensorsFor(nil, "panel.local", 8443))
}

type actionRecorder struct {
	client.CraftyClient // panics if anything else is called

	calls  int
	id     any
	action client.ServerAction
}

func (a *actionRecorder) ServerAction(_ context.Context, id any, action client.ServerAction) error {
	a.calls++
	a.id = id
	a.action = action
	return nil
}

func TestServerButtonsPressFiresExactlyOneCall(t *testing.T) {
	buttons := ServerButtons("panel.local", 8443, 7)
	require.Len(t, buttons, 5)

	var stop Button
	for _, b := range buttons {
		if b.Action == client.ActionStop {
			stop = b
		}
	}
	require.Equal(t, client.ActionStop, stop.Action)

	rec := &actionRecorder{}
	require.NoError(t, stop.Press(context.Background(), rec))
	assert.Equal(t, 1, rec.calls)
	assert.Equal(t, 7, rec.id)
	assert.Equal(t, client.ActionStop, rec.action)
}

func TestServerButtonsUniqueIDs(t *testing.T) {
	buttons := ServerButtons("panel.local", 8443, 7)
	seen := map[string]bool{}
	for _, b := range buttons {
		assert.False(t, seen[b.UniqueID], "duplicate unique id %s", b.UniqueID)
		seen[b.UniqueID] = true
	}
}
