package client

import (
	"encoding/json"
	"strconv"
)

const statusOK = "ok"

// apiResponse is the envelope every Crafty v2 endpoint wraps its payload in.
type apiResponse struct {
	Status string          `json:"status"`
	Data   json.RawMessage `json:"data"`
	Error  string          `json:"error,omitempty"`
}

// Record is one JSON object from the panel, kept schemaless because records
// are built by merging several payloads whose key sets vary across Crafty
// versions.
type Record map[string]any

// String returns the value under key as a string, or "" when absent or not
// a string.
func (r Record) String(key string) string {
	s, _ := r[key].(string)
	return s
}

// Bool returns the value under key as a bool. JSON 0/1 flags are accepted.
func (r Record) Bool(key string) bool {
	switch v := r[key].(type) {
	case bool:
		return v
	case float64:
		return v != 0
	default:
		return false
	}
}

// Int returns the value under key as an int, or 0 when absent or not numeric.
func (r Record) Int(key string) int {
	switch v := r[key].(type) {
	case float64:
		return int(v)
	case int:
		return v
	case int64:
		return int(v)
	case json.Number:
		n, _ := v.Int64()
		return int(n)
	default:
		return 0
	}
}

// Float returns the value under key as a float64, or 0 when absent or not
// numeric.
func (r Record) Float(key string) float64 {
	switch v := r[key].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	case int64:
		return float64(v)
	case json.Number:
		f, _ := v.Float64()
		return f
	default:
		return 0
	}
}

// ID returns the identity value under key and whether it is present.
// A JSON null counts as absent.
func (r Record) ID(key string) (any, bool) {
	v, ok := r[key]
	if !ok || v == nil {
		return nil, false
	}
	return v, true
}

// CanonicalID renders an identity value in a representation stable across
// JSON decoding (float64), test literals (int), and string ids.
func CanonicalID(v any) string {
	switch id := v.(type) {
	case string:
		return id
	case float64:
		return strconv.FormatFloat(id, 'f', -1, 64)
	case int:
		return strconv.Itoa(id)
	case int64:
		return strconv.FormatInt(id, 10)
	case json.Number:
		return id.String()
	default:
		return ""
	}
}

// SameID reports whether two identity values refer to the same resource.
func SameID(a, b any) bool {
	return CanonicalID(a) == CanonicalID(b)
}

// ServerAction is one of the fixed server operations Crafty exposes.
type ServerAction string

const (
	ActionStart   ServerAction = "start_server"
	ActionStop    ServerAction = "stop_server"
	ActionRestart ServerAction = "restart_server"
	ActionKill    ServerAction = "kill_server"
	ActionBackup  ServerAction = "backup_server"
)

// Valid reports whether a is one of the five known server actions.
func (a ServerAction) Valid() bool {
	switch a {
	case ActionStart, ActionStop, ActionRestart, ActionKill, ActionBackup:
		return true
	}
	return false
}
