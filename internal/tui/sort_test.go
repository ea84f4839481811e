package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dm/ccm-go/internal/model"
)

// serverRowFixtures returns a reproducible set of ServerRow test data.
func serverRowFixtures() []model.ServerRow {
	return []model.ServerRow{
		{ID: "2", Name: "survival", Running: true, CPUPercent: 45.5, MemPercent: 60, Online: 12, MaxPlayers: 20, Version: "1.20.4", WorldSize: "2.1GB"},
		{ID: "10", Name: "creative", Running: false, CPUPercent: 0, MemPercent: 0, Online: 0, MaxPlayers: 10, Version: "1.19.2", WorldSize: "800MB"},
		{ID: "1", Name: "Lobby", Running: true, CPUPercent: 5.2, MemPercent: 30, Online: 3, MaxPlayers: 50, Version: "1.20.4", WorldSize: "120MB"},
	}
}

func userRowFixtures() []model.UserRow {
	return []model.UserRow{
		{ID: "5", Username: "steve", Email: "steve@example.com", Enabled: true},
		{ID: "3", Username: "Alex", Email: "alex@example.com", Enabled: true, Superuser: true},
		{ID: "12", Username: "herobrine", Email: "", Enabled: false},
	}
}

func TestSortServerRows_ByIDNumeric(t *testing.T) {
	sorted := sortServerRows(serverRowFixtures(), 0, false)
	require.Len(t, sorted, 3)
	// "10" sorts after "2" numerically, not lexically.
	assert.Equal(t, "1", sorted[0].ID)
	assert.Equal(t, "2", sorted[1].ID)
	assert.Equal(t, "10", sorted[2].ID)
}

func TestSortServerRows_ByNameCaseInsensitive(t *testing.T) {
	sorted := sortServerRows(serverRowFixtures(), 1, false)
	require.Len(t, sorted, 3)
	assert.Equal(t, "creative", sorted[0].Name)
	assert.Equal(t, "Lobby", sorted[1].Name)
	assert.Equal(t, "survival", sorted[2].Name)
}

func TestSortServerRows_ByCPUDescending(t *testing.T) {
	sorted := sortServerRows(serverRowFixtures(), 3, true)
	require.Len(t, sorted, 3)
	assert.Equal(t, "survival", sorted[0].Name) // 45.5
	assert.Equal(t, "Lobby", sorted[1].Name)    // 5.2
	assert.Equal(t, "creative", sorted[2].Name) // 0
}

func TestSortServerRows_ByStatusOnlineFirstWhenDescending(t *testing.T) {
	sorted := sortServerRows(serverRowFixtures(), 2, true)
	require.Len(t, sorted, 3)
	assert.True(t, sorted[0].Running)
	assert.True(t, sorted[1].Running)
	assert.False(t, sorted[2].Running)
	// Running servers tie-break by name ascending.
	assert.Equal(t, "Lobby", sorted[0].Name)
	assert.Equal(t, "survival", sorted[1].Name)
}

func TestSortServerRows_UnsortedPreservesOrder(t *testing.T) {
	rows := serverRowFixtures()
	sorted := sortServerRows(rows, -1, false)
	require.Len(t, sorted, 3)
	for i := range rows {
		assert.Equal(t, rows[i].ID, sorted[i].ID)
	}
}

func TestSortServerRows_DoesNotMutateInput(t *testing.T) {
	rows := serverRowFixtures()
	first := rows[0].ID
	_ = sortServerRows(rows, 0, false)
	assert.Equal(t, first, rows[0].ID)
}

func TestSortUserRows_SuperuserFirstWhenDescending(t *testing.T) {
	sorted := sortUserRows(userRowFixtures(), 5, true)
	require.Len(t, sorted, 3)
	assert.Equal(t, "Alex", sorted[0].Username)
}

func TestSortUserRows_ByUsername(t *testing.T) {
	sorted := sortUserRows(userRowFixtures(), 1, false)
	require.Len(t, sorted, 3)
	assert.Equal(t, "Alex", sorted[0].Username)
	assert.Equal(t, "herobrine", sorted[1].Username)
	assert.Equal(t, "steve", sorted[2].Username)
}

func TestSortRoleRows_ByUsersToggle(t *testing.T) {
	rows := []model.RoleRow{
		{ID: "1", Name: "admins", Users: 2, Servers: 3},
		{ID: "2", Name: "mods", Users: 5, Servers: 1},
	}
	asc := sortRoleRows(rows, 2, false)
	desc := sortRoleRows(rows, 2, true)
	assert.Equal(t, "admins", asc[0].Name)
	assert.Equal(t, "mods", desc[0].Name)
}

func TestSortSensorRows_ByKindGroupsThenName(t *testing.T) {
	rows := []sensorRow{
		{Name: "User steve", Kind: "user"},
		{Name: "Server survival", Kind: "server"},
		{Name: "Server lobby", Kind: "server"},
	}
	sorted := sortSensorRows(rows, 3, false)
	require.Len(t, sorted, 3)
	assert.Equal(t, "Server lobby", sorted[0].Name)
	assert.Equal(t, "Server survival", sorted[1].Name)
	assert.Equal(t, "User steve", sorted[2].Name)
}

func TestLessID(t *testing.T) {
	assert.True(t, lessID("2", "10"))
	assert.False(t, lessID("10", "2"))
	assert.True(t, lessID("abc", "abd"))
}

func TestMatchesFilter(t *testing.T) {
	assert.True(t, matchesFilter("", "anything"))
	assert.True(t, matchesFilter("SURV", "survival", "1.20.4"))
	assert.True(t, matchesFilter("1.20", "survival", "1.20.4"))
	assert.False(t, matchesFilter("creative", "survival", "1.20.4"))
}
