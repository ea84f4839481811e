package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/dm/ccm-go/internal/format"
	"github.com/dm/ccm-go/internal/model"
)

// ServerTableModel is a sortable, paginated, filterable table of servers.
// The cursor row is the target of the action keys.
type ServerTableModel struct {
	tableModel
	allRows     []model.ServerRow // unfiltered source data
	displayRows []model.ServerRow // after filter + sort applied
}

// NewServerTable returns a ServerTableModel in snapshot (API list) order.
func NewServerTable() ServerTableModel {
	cols := []columnDef{
		{Title: "ID", Width: 6},
		{Title: "Server", Width: 22},
		{Title: "Status", Width: 8},
		{Title: "CPU", Width: 7},
		{Title: "Mem", Width: 7},
		{Title: "Players", Width: 8},
		{Title: "Version", Width: 10},
		{Title: "World", Width: 9},
	}
	return ServerTableModel{tableModel: newTableModel(cols)}
}

// SetData applies the current filter and sort to rows.
func (m *ServerTableModel) SetData(rows []model.ServerRow) {
	m.allRows = rows
	m.apply()
}

func (m *ServerTableModel) apply() {
	filtered := make([]model.ServerRow, 0, len(m.allRows))
	for _, r := range m.allRows {
		if matchesFilter(m.search, r.ID, r.Name, r.Version) {
			filtered = append(filtered, r)
		}
	}
	m.displayRows = sortServerRows(filtered, m.sortCol, m.sortDesc)
	m.clampPage(len(m.displayRows))
	m.clampCursor(len(m.displayRows))
}

// Update handles keyboard events and re-applies filter/sort when they change.
func (m ServerTableModel) Update(msg tea.Msg) (ServerTableModel, tea.Cmd) {
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

// Selected returns the server row under the cursor, or false when the table
// is empty.
func (m *ServerTableModel) Selected() (model.ServerRow, bool) {
	idx := m.selectedIndex(len(m.displayRows))
	if idx < 0 {
		return model.ServerRow{}, false
	}
	return m.displayRows[idx], true
}

// render renders the complete Servers section for the current page.
func (m *ServerTableModel) render() string {
	start, end := m.pageSlice(len(m.displayRows))
	cells := make([][]string, 0, end-start)
	for _, r := range m.displayRows[start:end] {
		status := "Offline"
		if r.Running {
			status = "Online"
		}
		cells = append(cells, []string{
			r.ID,
			r.Name,
			RunningStyle(r.Running).Render(status),
			format.FormatPercent(r.CPUPercent),
			format.FormatPercent(r.MemPercent),
			format.FormatPlayers(r.Online, r.MaxPlayers),
			r.Version,
			r.WorldSize,
		})
	}
	return m.renderTitle("Servers", len(m.displayRows)) + "\n" + m.renderGrid(cells)
}
