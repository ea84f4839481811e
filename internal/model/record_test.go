package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMergeLaterSourcesWin(t *testing.T) {
	a := Record{"server_id": 1, "server_name": "A", "port": 25565}
	b := Record{"server_name": "B", "cpu": 10.0}

	merged := Merge(a, b)

	assert.Equal(t, 1, merged["server_id"])
	assert.Equal(t, "B", merged["server_name"])
	assert.Equal(t, 25565, merged["port"])
	assert.Equal(t, 10.0, merged["cpu"])

	// inputs untouched
	assert.Equal(t, "A", a["server_name"])
}

func TestWithoutSuppressesKeysWithoutMutating(t *testing.T) {
	stats := Record{"cpu": 10.0, "mem": 512.0, "server_id": map[string]any{"server_id": 9}}

	got := Without(stats, "server_id")

	assert.NotContains(t, got, "server_id")
	assert.Equal(t, 10.0, got["cpu"])
	assert.Contains(t, stats, "server_id")
}

func TestFindByID(t *testing.T) {
	records := []Record{
		{"user_id": float64(5), "username": "steve"},
		{"user_id": float64(6), "username": "alex"},
	}

	assert.Equal(t, "steve", FindByID(records, KeyUserID, 5).String("username"))
	assert.Equal(t, "alex", FindByID(records, KeyUserID, float64(6)).String("username"))
	assert.Nil(t, FindByID(records, KeyUserID, 7))
	assert.Nil(t, FindByID(nil, KeyUserID, 5))
}
