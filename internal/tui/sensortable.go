package tui

import (
	"fmt"
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/dm/ccm-go/internal/entity"
	"github.com/dm/ccm-go/internal/model"
)

// sensorRow is one evaluated sensor descriptor ready for rendering.
type sensorRow struct {
	Name     string
	State    string
	Unit     string
	Kind     string
	UniqueID string
}

// SensorTableModel lists every display entity with its lazily evaluated
// state — the flat "all entities" view of the snapshot.
type SensorTableModel struct {
	tableModel
	allRows     []sensorRow
	displayRows []sensorRow
}

// NewSensorTable returns a SensorTableModel in entity order.
func NewSensorTable() SensorTableModel {
	cols := []columnDef{
		{Title: "Entity", Width: 26},
		{Title: "State", Width: 20},
		{Title: "Unit", Width: 6},
		{Title: "Kind", Width: 8},
		{Title: "Unique ID", Width: 38},
	}
	return SensorTableModel{tableModel: newTableModel(cols)}
}

// SetData evaluates the given sensors against snap and stores the rows.
// Evaluation is pure: descriptors are never cached across snapshots.
func (m *SensorTableModel) SetData(snap *model.Snapshot, sensors []entity.Sensor) {
	rows := make([]sensorRow, 0, len(sensors))
	for _, s := range sensors {
		state := ""
		if v := s.State(snap); v != nil {
			state = fmt.Sprint(v)
		}
		rows = append(rows, sensorRow{
			Name:     s.Name(snap),
			State:    state,
			Unit:     s.Unit,
			Kind:     s.Kind,
			UniqueID: s.UniqueID,
		})
	}
	m.allRows = rows
	m.apply()
}

func (m *SensorTableModel) apply() {
	filtered := make([]sensorRow, 0, len(m.allRows))
	for _, r := range m.allRows {
		if matchesFilter(m.search, r.Name, r.State, r.Kind, r.UniqueID) {
			filtered = append(filtered, r)
		}
	}
	m.displayRows = sortSensorRows(filtered, m.sortCol, m.sortDesc)
	m.clampPage(len(m.displayRows))
	m.clampCursor(len(m.displayRows))
}

// Update handles keyboard events and re-applies filter/sort when they change.
func (m SensorTableModel) Update(msg tea.Msg) (SensorTableModel, tea.Cmd) {
	prevSort, prevDesc, prevSearch := m.sortCol, m.sortDesc, m.search

	base, cmd := m.tableModel.Update(msg)
	m.tableModel = base

	if m.sortCol != prevSort || m.sortDesc != prevDesc || m.search != prevSearch {
		m.apply()
	}
	m.clampPage(len(m.displayRows))
	m.clampCursor(len(m.displayRows))
	return m, cmd
}

// render renders the complete Sensors section for the current page.
func (m *SensorTableModel) render() string {
	start, end := m.pageSlice(len(m.displayRows))
	cells := make([][]string, 0, end-start)
	for _, r := range m.displayRows[start:end] {
		cells = append(cells, []string{r.Name, r.State, r.Unit, r.Kind, r.UniqueID})
	}
	return m.renderTitle("Sensors", len(m.displayRows)) + "\n" + m.renderGrid(cells)
}

// sortSensorRows returns a sorted copy of rows.
// Column mapping: 0=Name, 1=State, 2=Unit, 3=Kind, 4=UniqueID.
func sortSensorRows(rows []sensorRow, col int, desc bool) []sensorRow {
	out := make([]sensorRow, len(rows))
	copy(out, rows)

	if col < 0 {
		return out
	}

	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		var less bool
		switch col {
		case 0:
			less = lessName(a.Name, b.Name)
		case 1:
			less = a.State < b.State
		case 2:
			less = a.Unit < b.Unit
		case 3:
			if a.Kind != b.Kind {
				less = a.Kind < b.Kind
			} else {
				return lessName(a.Name, b.Name)
			}
		case 4:
			less = strings.ToLower(a.UniqueID) < strings.ToLower(b.UniqueID)
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
