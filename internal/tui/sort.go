package tui

import (
	"sort"
	"strconv"
	"strings"

	"github.com/dm/ccm-go/internal/model"
)

// lessID compares record ids numerically when both parse as integers,
// falling back to a string compare.
func lessID(a, b string) bool {
	na, errA := strconv.Atoi(a)
	nb, errB := strconv.Atoi(b)
	if errA == nil && errB == nil {
		return na < nb
	}
	return a < b
}

func lessName(a, b string) bool {
	return strings.ToLower(a) < strings.ToLower(b)
}

// sortServerRows returns a sorted copy of rows.
// Column mapping: 0=ID, 1=Name, 2=Status, 3=CPU, 4=Mem, 5=Players,
// 6=Version, 7=World. col -1 preserves snapshot order.
// Ties are broken by Name ascending.
func sortServerRows(rows []model.ServerRow, col int, desc bool) []model.ServerRow {
	out := make([]model.ServerRow, len(rows))
	copy(out, rows)

	if col < 0 {
		return out
	}

	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		var less bool
		switch col {
		case 0:
			less = lessID(a.ID, b.ID)
		case 1:
			less = lessName(a.Name, b.Name)
		case 2:
			if a.Running != b.Running {
				less = !a.Running // Offline < Online
			} else {
				return lessName(a.Name, b.Name)
			}
		case 3:
			if a.CPUPercent != b.CPUPercent {
				less = a.CPUPercent < b.CPUPercent
			} else {
				return lessName(a.Name, b.Name)
			}
		case 4:
			if a.MemPercent != b.MemPercent {
				less = a.MemPercent < b.MemPercent
			} else {
				return lessName(a.Name, b.Name)
			}
		case 5:
			if a.Online != b.Online {
				less = a.Online < b.Online
			} else {
				return lessName(a.Name, b.Name)
			}
		case 6:
			less = a.Version < b.Version
		case 7:
			less = a.WorldSize < b.WorldSize
		default:
			return false
		}
		if desc {
			return !less
		}
		return less
	})
	return out
}

// sortRoleRows returns a sorted copy of rows.
// Column mapping: 0=ID, 1=Name, 2=Users, 3=Servers.
func sortRoleRows(rows []model.RoleRow, col int, desc bool) []model.RoleRow {
	out := make([]model.RoleRow, len(rows))
	copy(out, rows)

	if col < 0 {
		return out
	}

	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		var less bool
		switch col {
		case 0:
			less = lessID(a.ID, b.ID)
		case 1:
			less = lessName(a.Name, b.Name)
		case 2:
			if a.Users != b.Users {
				less = a.Users < b.Users
			} else {
				return lessName(a.Name, b.Name)
			}
		case 3:
			if a.Servers != b.Servers {
				less = a.Servers < b.Servers
			} else {
				return lessName(a.Name, b.Name)
			}
		default:
			return false
		}
		if desc {
			return !less
		}
		return less
	})
	return out
}

// sortUserRows returns a sorted copy of rows.
// Column mapping: 0=ID, 1=Username, 2=Email, 3=Last Login, 4=Enabled,
// 5=Superuser.
func sortUserRows(rows []model.UserRow, col int, desc bool) []model.UserRow {
	out := make([]model.UserRow, len(rows))
	copy(out, rows)

	if col < 0 {
		return out
	}

	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		var less bool
		switch col {
		case 0:
			less = lessID(a.ID, b.ID)
		case 1:
			less = lessName(a.Username, b.Username)
		case 2:
			less = lessName(a.Email, b.Email)
		case 3:
			less = a.LastLogin < b.LastLogin
		case 4:
			if a.Enabled != b.Enabled {
				less = !a.Enabled
			} else {
				return lessName(a.Username, b.Username)
			}
		case 5:
			if a.Superuser != b.Superuser {
				less = !a.Superuser
			} else {
				return lessName(a.Username, b.Username)
			}
		default:
			return false
		}
		if desc {
			return !less
		}
		return less
	})
	return out
}

// matchesFilter reports whether any of the fields contains the filter term,
// case-insensitively. An empty term matches everything.
func matchesFilter(term string, fields ...string) bool {
	if term == "" {
		return true
	}
	term = strings.ToLower(term)
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), term) {
			return true
		}
	}
	return false
}
