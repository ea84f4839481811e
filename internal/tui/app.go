package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/dm/ccm-go/internal/client"
	"github.com/dm/ccm-go/internal/engine"
	"github.com/dm/ccm-go/internal/entity"
	"github.com/dm/ccm-go/internal/model"
)

// tab identifies one of the main views.
type tab int

const (
	tabServers tab = iota
	tabRoles
	tabUsers
	tabSensors
	tabCount
)

var tabNames = [tabCount]string{"Servers", "Roles", "Users", "Sensors"}

// App is the root Bubble Tea model for ccm. It consumes snapshots from the
// coordinator's subscription channel and never fetches on its own; the r key
// only requests an off-schedule poll.
type App struct {
	co           *engine.Coordinator
	client       client.CraftyClient
	updates      <-chan engine.Update
	pollInterval time.Duration

	// Data state, recomputed on every UpdateMsg.
	current     *model.Snapshot
	serverRows  []model.ServerRow
	roleRows    []model.RoleRow
	userRows    []model.UserRow
	lastError   error
	lastUpdated time.Time

	// Tables
	activeTab   tab
	serverTable ServerTableModel
	roleTable   RoleTableModel
	userTable   UserTableModel
	sensorTable SensorTableModel

	// Layout
	width, height int

	// UI state
	showHelp     bool
	actionStatus string
	actionFailed bool
}

// NewApp creates a new App subscribed to the coordinator. Any snapshot the
// coordinator already holds (the synchronous startup poll) is applied
// immediately so the first frame is populated.
func NewApp(co *engine.Coordinator, c client.CraftyClient) *App {
	app := &App{
		co:           co,
		client:       c,
		updates:      co.Subscribe(),
		pollInterval: co.Interval(),
		serverTable:  NewServerTable(),
		roleTable:    NewRoleTable(),
		userTable:    NewUserTable(),
		sensorTable:  NewSensorTable(),
	}
	app.setActiveTab(tabServers)
	if snap := co.Snapshot(); snap != nil {
		app.applySnapshot(snap)
		app.lastUpdated = snap.FetchedAt
	}
	return app
}

// Init implements tea.Model. Arms the subscription listener.
func (app *App) Init() tea.Cmd {
	return waitForUpdate(app.updates)
}

// Update implements tea.Model — the single state-mutation entry point.
func (app *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		app.width = msg.Width
		app.height = msg.Height

	case UpdateMsg:
		if msg.Snapshot != nil {
			app.applySnapshot(msg.Snapshot)
		}
		app.lastError = msg.Err
		if msg.Err == nil && msg.Snapshot != nil {
			app.lastUpdated = msg.Snapshot.FetchedAt
		}
		return app, waitForUpdate(app.updates)

	case ActionResultMsg:
		if msg.Err != nil {
			app.actionStatus = fmt.Sprintf("%s failed: %v", msg.Button.Name, msg.Err)
			app.actionFailed = true
		} else {
			app.actionStatus = msg.Button.Name + " requested"
			app.actionFailed = false
		}
		return app, expireStatusCmd()

	case statusExpiredMsg:
		app.actionStatus = ""
		app.actionFailed = false

	case tea.KeyMsg:
		// While a filter input is active, every key belongs to the table.
		if app.activeSearching() {
			return app, app.forwardToActiveTable(msg)
		}

		switch {
		case key.Matches(msg, keys.Quit):
			return app, tea.Quit

		case key.Matches(msg, keys.Refresh):
			app.co.RequestRefresh()
			return app, nil

		case key.Matches(msg, keys.Tab):
			app.setActiveTab((app.activeTab + 1) % tabCount)
			return app, nil

		case key.Matches(msg, keys.ShiftTab):
			app.setActiveTab((app.activeTab + tabCount - 1) % tabCount)
			return app, nil

		case key.Matches(msg, keys.Help):
			app.showHelp = !app.showHelp
			return app, nil

		case key.Matches(msg, keys.Start):
			return app, app.serverActionCmd(client.ActionStart)
		case key.Matches(msg, keys.Stop):
			return app, app.serverActionCmd(client.ActionStop)
		case key.Matches(msg, keys.Restart):
			return app, app.serverActionCmd(client.ActionRestart)
		case key.Matches(msg, keys.Kill):
			return app, app.serverActionCmd(client.ActionKill)
		case key.Matches(msg, keys.Backup):
			return app, app.serverActionCmd(client.ActionBackup)
		}

		return app, app.forwardToActiveTable(msg)
	}

	return app, nil
}

// View implements tea.Model. Renders the full TUI.
func (app *App) View() string {
	var parts []string

	if h := renderHeader(app); h != "" {
		parts = append(parts, h)
	}
	if o := renderOverview(app); o != "" {
		parts = append(parts, o)
	}
	parts = append(parts, app.renderTabBar())

	switch app.activeTab {
	case tabServers:
		parts = append(parts, app.serverTable.render())
	case tabRoles:
		parts = append(parts, app.roleTable.render())
	case tabUsers:
		parts = append(parts, app.userTable.render())
	case tabSensors:
		parts = append(parts, app.sensorTable.render())
	}

	parts = append(parts, renderFooter(app))

	return strings.Join(parts, "\n")
}

// applySnapshot recomputes all derived rows and entity projections and
// pushes them into the tables.
func (app *App) applySnapshot(snap *model.Snapshot) {
	app.current = snap
	app.serverRows = engine.CalcServerRows(snap)
	app.roleRows = engine.CalcRoleRows(snap)
	app.userRows = engine.CalcUserRows(snap)

	host, port := "", 0
	if snap.Client != nil {
		host, port = snap.Client.Host(), snap.Client.Port()
	}
	sensors := entity.SensorsFor(snap, host, port)

	app.serverTable.SetData(app.serverRows)
	app.roleTable.SetData(app.roleRows)
	app.userTable.SetData(app.userRows)
	app.sensorTable.SetData(snap, sensors)
}

func (app *App) setActiveTab(t tab) {
	app.activeTab = t
	app.serverTable.focused = t == tabServers
	app.roleTable.focused = t == tabRoles
	app.userTable.focused = t == tabUsers
	app.sensorTable.focused = t == tabSensors
}

// activeSearching reports whether the active table's filter input has focus.
func (app *App) activeSearching() bool {
	switch app.activeTab {
	case tabServers:
		return app.serverTable.searching
	case tabRoles:
		return app.roleTable.searching
	case tabUsers:
		return app.userTable.searching
	case tabSensors:
		return app.sensorTable.searching
	}
	return false
}

func (app *App) forwardToActiveTable(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch app.activeTab {
	case tabServers:
		app.serverTable, cmd = app.serverTable.Update(msg)
	case tabRoles:
		app.roleTable, cmd = app.roleTable.Update(msg)
	case tabUsers:
		app.userTable, cmd = app.userTable.Update(msg)
	case tabSensors:
		app.sensorTable, cmd = app.sensorTable.Update(msg)
	}
	return cmd
}

// serverActionCmd fires the given action against the server under the
// cursor. Action keys only apply on the Servers tab.
func (app *App) serverActionCmd(action client.ServerAction) tea.Cmd {
	if app.activeTab != tabServers || app.client == nil {
		return nil
	}
	row, ok := app.serverTable.Selected()
	if !ok {
		return nil
	}
	for _, b := range entity.ServerButtons(app.client.Host(), app.client.Port(), row.ID) {
		if b.Action == action {
			return pressCmd(app.client, b)
		}
	}
	return nil
}

// renderTabBar renders the tab strip, highlighting the active tab.
func (app *App) renderTabBar() string {
	labels := make([]string, 0, int(tabCount))
	for i := tab(0); i < tabCount; i++ {
		label := " " + tabNames[i] + " "
		if i == app.activeTab {
			labels = append(labels, StyleTableCursor.Render(label))
		} else {
			labels = append(labels, StyleDim.Render(label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, labels...)
}
