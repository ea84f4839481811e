package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/dm/ccm-go/internal/model"
)

// UserTableModel is a sortable, paginated, filterable table of users.
type UserTableModel struct {
	tableModel
	allRows     []model.UserRow
	displayRows []model.UserRow
}

// NewUserTable returns a UserTableModel in snapshot order.
func NewUserTable() UserTableModel {
	cols := []columnDef{
		{Title: "ID", Width: 6},
		{Title: "User", Width: 18},
		{Title: "Email", Width: 24},
		{Title: "Last Login", Width: 20},
		{Title: "Enabled", Width: 8},
		{Title: "Super", Width: 6},
	}
	return UserTableModel{tableModel: newTableModel(cols)}
}

// SetData applies the current filter and sort to rows.
func (m *UserTableModel) SetData(rows []model.UserRow) {
	m.allRows = rows
	m.apply()
}

func (m *UserTableModel) apply() {
	filtered := make([]model.UserRow, 0, len(m.allRows))
	for _, r := range m.allRows {
		if matchesFilter(m.search, r.ID, r.Username, r.Email) {
			filtered = append(filtered, r)
		}
	}
	m.displayRows = sortUserRows(filtered, m.sortCol, m.sortDesc)
	m.clampPage(len(m.displayRows))
	m.clampCursor(len(m.displayRows))
}

// Update handles keyboard events and re-applies filter/sort when they change.
func (m UserTableModel) Update(msg tea.Msg) (UserTableModel, tea.Cmd) {
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

// render renders the complete Users section for the current page.
func (m *UserTableModel) render() string {
	start, end := m.pageSlice(len(m.displayRows))
	cells := make([][]string, 0, end-start)
	for _, r := range m.displayRows[start:end] {
		enabled := "no"
		if r.Enabled {
			enabled = "yes"
		}
		super := ""
		if r.Superuser {
			super = "yes"
		}
		cells = append(cells, []string{
			r.ID,
			r.Username,
			r.Email,
			r.LastLogin,
			enabled,
			super,
		})
	}
	return m.renderTitle("Users", len(m.displayRows)) + "\n" + m.renderGrid(cells)
}
