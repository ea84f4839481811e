package tui

import (
	"strconv"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/dm/ccm-go/internal/model"
)

// RoleTableModel is a sortable, paginated, filterable table of roles.
type RoleTableModel struct {
	tableModel
	allRows     []model.RoleRow
	displayRows []model.RoleRow
}

// NewRoleTable returns a RoleTableModel in snapshot order.
func NewRoleTable() RoleTableModel {
	cols := []columnDef{
		{Title: "ID", Width: 6},
		{Title: "Role", Width: 24},
		{Title: "Users", Width: 7},
		{Title: "Servers", Width: 8},
	}
	return RoleTableModel{tableModel: newTableModel(cols)}
}

// SetData applies the current filter and sort to rows.
func (m *RoleTableModel) SetData(rows []model.RoleRow) {
	m.allRows = rows
	m.apply()
}

func (m *RoleTableModel) apply() {
	filtered := make([]model.RoleRow, 0, len(m.allRows))
	for _, r := range m.allRows {
		if matchesFilter(m.search, r.ID, r.Name) {
			filtered = append(filtered, r)
		}
	}
	m.displayRows = sortRoleRows(filtered, m.sortCol, m.sortDesc)
	m.clampPage(len(m.displayRows))
	m.clampCursor(len(m.displayRows))
}

// Update handles keyboard events and re-applies filter/sort when they change.
func (m RoleTableModel) Update(msg tea.Msg) (RoleTableModel, tea.Cmd) {
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

// render renders the complete Roles section for the current page.
func (m *RoleTableModel) render() string {
	start, end := m.pageSlice(len(m.displayRows))
	cells := make([][]string, 0, end-start)
	for _, r := range m.displayRows[start:end] {
		cells = append(cells, []string{
			r.ID,
			r.Name,
			strconv.Itoa(r.Users),
			strconv.Itoa(r.Servers),
		})
	}
	return m.renderTitle("Roles", len(m.displayRows)) + "\n" + m.renderGrid(cells)
}
