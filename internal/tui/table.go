package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/dm/ccm-go/internal/format"
)

// columnDef describes a single column in a table.
type columnDef struct {
	Title string
	Width int
}

// tableModel is the generic base for sortable, paginated, filterable tables
// with a row cursor.
type tableModel struct {
	columns   []columnDef
	sortCol   int // -1 = unsorted (snapshot order)
	sortDesc  bool
	page      int // 0-indexed
	pageSize  int // default 10
	cursor    int // row index within the current page
	search    string
	searching bool
	input     textinput.Model
	focused   bool
}

// newTableModel initialises a tableModel with sensible defaults.
func newTableModel(cols []columnDef) tableModel {
	ti := textinput.New()
	ti.Placeholder = "filter..."
	ti.CharLimit = 80
	return tableModel{
		columns:  cols,
		sortCol:  -1,
		pageSize: 10,
		input:    ti,
	}
}

// Update handles keyboard input for sorting, pagination, cursor movement,
// and filtering.
func (t tableModel) Update(msg tea.Msg) (tableModel, tea.Cmd) {
	if !t.focused {
		return t, nil
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if t.searching {
			switch {
			case key.Matches(msg, keys.Escape):
				t.searching = false
				t.input.Blur()
				if t.input.Value() == "" {
					t.search = ""
				}
				return t, nil
			case msg.String() == "enter":
				t.search = t.input.Value()
				t.searching = false
				t.input.Blur()
				t.page = 0
				t.cursor = 0
				return t, nil
			default:
				var cmd tea.Cmd
				t.input, cmd = t.input.Update(msg)
				return t, cmd
			}
		}

		// Not searching — handle navigation keys.
		switch {
		case key.Matches(msg, keys.Search):
			t.searching = true
			t.input.SetValue(t.search)
			t.input.Focus()
			return t, textinput.Blink
		case key.Matches(msg, keys.Escape):
			t.search = ""
			t.input.SetValue("")
			t.page = 0
			t.cursor = 0
			return t, nil
		case key.Matches(msg, keys.Up):
			if t.cursor > 0 {
				t.cursor--
			}
			return t, nil
		case key.Matches(msg, keys.Down):
			t.cursor++
			return t, nil
		case key.Matches(msg, keys.PrevPage):
			if t.page > 0 {
				t.page--
				t.cursor = 0
			}
			return t, nil
		case key.Matches(msg, keys.NextPage):
			t.page++
			t.cursor = 0
			return t, nil
		default:
			// Digit keys 1-9 → set sort column.
			col := digitToCol(msg.String())
			if col >= 0 && col < len(t.columns) {
				if col == t.sortCol {
					t.sortDesc = !t.sortDesc
				} else {
					t.sortCol = col
					t.sortDesc = true // default: descending for new column
				}
				t.page = 0
				t.cursor = 0
				return t, nil
			}
		}
	}
	return t, nil
}

// digitToCol converts a "1"–"9" key string to a 0-indexed column number.
// Returns -1 for any other string.
func digitToCol(s string) int {
	if len(s) == 1 && s[0] >= '1' && s[0] <= '9' {
		return int(s[0] - '1')
	}
	return -1
}

// pageCount returns the total number of pages for totalRows rows at pageSize
// rows per page. Always at least 1.
func pageCount(totalRows, pageSize int) int {
	if totalRows == 0 || pageSize <= 0 {
		return 1
	}
	c := totalRows / pageSize
	if totalRows%pageSize != 0 {
		c++
	}
	return c
}

// clampPage ensures the page index stays within valid bounds.
func (t *tableModel) clampPage(totalRows int) {
	pc := pageCount(totalRows, t.pageSize)
	if t.page >= pc {
		t.page = pc - 1
	}
	if t.page < 0 {
		t.page = 0
	}
}

// clampCursor keeps the cursor within the rows visible on the current page.
func (t *tableModel) clampCursor(totalRows int) {
	visible := t.pageRows(totalRows)
	if t.cursor >= visible {
		t.cursor = visible - 1
	}
	if t.cursor < 0 {
		t.cursor = 0
	}
}

// pageRows returns the number of rows on the current page.
func (t *tableModel) pageRows(totalRows int) int {
	start := t.page * t.pageSize
	if start >= totalRows {
		return 0
	}
	n := totalRows - start
	if n > t.pageSize {
		n = t.pageSize
	}
	return n
}

// pageSlice returns [start, end) bounds of the current page.
func (t *tableModel) pageSlice(totalRows int) (int, int) {
	start := t.page * t.pageSize
	if start >= totalRows {
		return 0, 0
	}
	end := start + t.pageSize
	if end > totalRows {
		end = totalRows
	}
	return start, end
}

// selectedIndex returns the absolute row index under the cursor, or -1 when
// the table is empty.
func (t *tableModel) selectedIndex(totalRows int) int {
	start, end := t.pageSlice(totalRows)
	idx := start + t.cursor
	if idx >= end {
		return -1
	}
	return idx
}

// renderTitle renders the table section title with page and filter state.
func (t *tableModel) renderTitle(title string, totalRows int) string {
	pc := pageCount(totalRows, t.pageSize)
	s := StyleTableTitle.Render(title)
	if pc > 1 {
		s += StyleDim.Render(strings.Repeat(" ", 2) + pageLabel(t.page+1, pc))
	}
	if t.searching {
		s += "  " + t.input.View()
	} else if t.search != "" {
		s += StyleDim.Render("  filter: " + t.search)
	}
	return s
}

func pageLabel(page, pages int) string {
	return "page " + format.FormatNumber(int64(page)) + "/" + format.FormatNumber(int64(pages))
}

// renderGrid renders the column headers and the given page of cell rows,
// highlighting the cursor row when the table is focused.
func (t *tableModel) renderGrid(cells [][]string) string {
	var b strings.Builder

	var hdr []string
	for i, col := range t.columns {
		title := col.Title
		if i == t.sortCol {
			if t.sortDesc {
				title += " ↓"
			} else {
				title += " ↑"
			}
		}
		hdr = append(hdr, pad(title, col.Width))
	}
	b.WriteString(StyleTableHeader.Render(strings.Join(hdr, "  ")))
	b.WriteString("\n")

	if len(cells) == 0 {
		b.WriteString(StyleDim.Render("  (no rows)"))
		return b.String()
	}

	for i, row := range cells {
		var parts []string
		for j, col := range t.columns {
			val := ""
			if j < len(row) {
				val = row[j]
			}
			parts = append(parts, pad(val, col.Width))
		}
		line := strings.Join(parts, "  ")

		style := StyleTableRow
		if i%2 == 1 {
			style = StyleTableRowAlt
		}
		if t.focused && i == t.cursor {
			style = StyleTableCursor
		}
		b.WriteString(style.Render(line))
		if i < len(cells)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

// pad truncates or right-pads s to exactly width display cells. Width is
// measured ANSI-aware so styled cells line up; only over-long plain cells
// ever reach the truncation path.
func pad(s string, width int) string {
	if w := lipgloss.Width(s); w <= width {
		return s + strings.Repeat(" ", width-w)
	}
	return format.Truncate(s, width)
}
