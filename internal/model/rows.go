package model

// ServerRow is one server line ready for table rendering.
type ServerRow struct {
	ID         string
	Name       string
	Running    bool
	CPUPercent float64
	MemPercent float64
	Online     int
	MaxPlayers int
	Version    string
	WorldSize  string
}

// RoleRow is one role line ready for table rendering.
type RoleRow struct {
	ID      string
	Name    string
	Users   int
	Servers int
}

// UserRow is one user line ready for table rendering.
type UserRow struct {
	ID        string
	Username  string
	Email     string
	LastLogin string
	Enabled   bool
	Superuser bool
}
