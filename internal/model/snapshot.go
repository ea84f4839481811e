package model

import (
	"time"

	"github.com/dm/ccm-go/internal/client"
)

// Identity keys for the three resource hierarchies. List items lacking
// their key are dropped before merging.
const (
	KeyServerID = "server_id"
	KeyRoleID   = "role_id"
	KeyUserID   = "user_id"
)

// Snapshot holds the merged results of a single poll cycle across the three
// Crafty resource hierarchies. A Snapshot is immutable once built: the
// coordinator replaces the whole value atomically, so readers always see
// either the entirely-previous or entirely-new state, never a mix.
//
// Client is the panel client the snapshot was fetched with; it is reused
// across refreshes and lets consumers fire server actions without holding a
// second reference.
type Snapshot struct {
	Client    client.CraftyClient
	Servers   []Record
	Roles     []Record
	Users     []Record
	FetchedAt time.Time
}
