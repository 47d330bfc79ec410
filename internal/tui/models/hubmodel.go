package models

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/evertras/bubble-table/table"

	"github.com/shanedertrain/cusbc"
	"github.com/shanedertrain/cusbc/internal/tui/colors"
	"github.com/shanedertrain/cusbc/internal/tui/keys"
	"github.com/shanedertrain/cusbc/internal/tui/styles"
)

const (
	columnKeyPort    = "port"
	columnKeyState   = "state"
	columnKeyPending = "pending"
)

// Messages emitted by the background hub commands
type (
	statesMsg  cusbc.PortStates
	infoMsg    cusbc.HubInfo
	appliedMsg struct{}
	errMsg     struct{ err error }
	tickMsg    time.Time
)

// HubModel is the Bubble Tea model for the port state monitor. It polls the
// hub on a fixed interval, and buffers toggle edits locally until the user
// applies or discards them.
type HubModel struct {
	hub      *cusbc.Hub
	interval time.Duration

	table table.Model
	help  help.Model
	keys  keys.MonitorKeys

	info    *cusbc.HubInfo
	current cusbc.PortStates
	pending cusbc.PortStates // nil when there are no unapplied edits

	// The hub session must not see overlapping invocations, so at most one
	// background command runs at a time
	applying bool
	inFlight bool
	err      error
}

func NewHubModel(hub *cusbc.Hub, interval time.Duration) *HubModel {
	t := table.New([]table.Column{
		table.NewColumn(columnKeyPort, "Port", 6),
		table.NewColumn(columnKeyState, "State", 10),
		table.NewColumn(columnKeyPending, "Pending", 10),
	}).
		Focused(true).
		WithBaseStyle(lipgloss.NewStyle().Foreground(colors.Text)).
		HighlightStyle(lipgloss.NewStyle().Foreground(colors.Text).Background(colors.Surface1))

	return &HubModel{
		hub:      hub,
		interval: interval,
		table:    t,
		help:     help.New(),
		keys:     keys.NewMonitorKeys(),
	}
}

func (m *HubModel) Init() tea.Cmd {
	m.inFlight = true
	return tea.Batch(m.queryInfo, m.tick())
}

func (m *HubModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.updateKeys(msg)

	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		m.table = m.table.WithPageSize(max(msg.Height-8, 4))
		return m, nil

	case infoMsg:
		info := cusbc.HubInfo(msg)
		m.info = &info
		m.current = info.PortStates
		m.inFlight = false
		m.err = nil
		m.rebuildRows()
		return m, nil

	case statesMsg:
		m.current = cusbc.PortStates(msg)
		m.inFlight = false
		m.err = nil
		m.rebuildRows()
		return m, nil

	case appliedMsg:
		m.applying = false
		m.pending = nil
		m.err = nil
		m.inFlight = true
		return m, m.queryStates

	case errMsg:
		m.applying = false
		m.inFlight = false
		m.err = msg.err
		return m, nil

	case tickMsg:
		// Do not clobber unapplied edits with a background refresh, and
		// never overlap hub invocations
		if m.pending == nil && !m.applying && !m.inFlight {
			m.inFlight = true
			return m, tea.Batch(m.queryStates, m.tick())
		}
		return m, m.tick()
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m *HubModel) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.Toggle):
		if idx := m.table.GetHighlightedRowIndex(); idx >= 0 && idx < len(m.current) {
			m.ensurePending()
			m.pending[idx] = !m.pending[idx]
			m.rebuildRows()
		}
		return m, nil

	case key.Matches(msg, m.keys.AllOn), key.Matches(msg, m.keys.AllOff):
		m.ensurePending()
		on := key.Matches(msg, m.keys.AllOn)
		for i := range m.pending {
			m.pending[i] = on
		}
		m.rebuildRows()
		return m, nil

	case key.Matches(msg, m.keys.Apply):
		if m.pending != nil && !m.applying && !m.inFlight {
			m.applying = true
			return m, m.applyStates(m.pending)
		}
		return m, nil

	case key.Matches(msg, m.keys.Discard):
		m.pending = nil
		m.rebuildRows()
		return m, nil

	case key.Matches(msg, m.keys.Refresh):
		if m.pending == nil && !m.applying && !m.inFlight {
			m.inFlight = true
			return m, m.queryStates
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m *HubModel) View() string {
	title := styles.TitleStyle.Render("cusbc monitor")

	var detail string
	if m.info != nil {
		detail = styles.HeaderInfoStyle.Render(fmt.Sprintf("%s | %d ports | firmware %s",
			m.info.Port, m.info.NumPorts, m.info.FirmwareVersion))
	} else {
		detail = styles.HeaderInfoStyle.Render(m.hub.Port())
	}
	header := lipgloss.JoinHorizontal(lipgloss.Left, title, detail)

	var status string
	switch {
	case m.err != nil:
		status = styles.ErrorStyle.Render(fmt.Sprintf("Error: %v", m.err))
	case m.applying:
		status = styles.StatusBusyStyle.Render("Applying port states...")
	case m.pending != nil:
		status = styles.StatusBusyStyle.Render("Unapplied changes - enter to apply, esc to discard")
	default:
		status = styles.StatusOKStyle.Render(fmt.Sprintf("Polling every %s", m.interval))
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		m.table.View(),
		status,
		styles.HelpStyle.Render(m.help.View(m.keys)),
	)
}

// rebuildRows regenerates the table rows from current and pending states
func (m *HubModel) rebuildRows() {
	rows := make([]table.Row, 0, len(m.current))
	for i, on := range m.current {
		stateCell := styles.PortOffStyle.Render("off")
		if on {
			stateCell = styles.PortOnStyle.Render("on")
		}

		pendingCell := ""
		if m.pending != nil && m.pending[i] != on {
			pendingCell = styles.PendingStyle.Render("-> " + onOffLabel(m.pending[i]))
		}

		rows = append(rows, table.NewRow(table.RowData{
			columnKeyPort:    strconv.Itoa(i + 1),
			columnKeyState:   stateCell,
			columnKeyPending: pendingCell,
		}))
	}
	m.table = m.table.WithRows(rows)
}

// ensurePending starts an edit buffer from the current states
func (m *HubModel) ensurePending() {
	if m.pending == nil {
		m.pending = make(cusbc.PortStates, len(m.current))
		copy(m.pending, m.current)
	}
}

func (m *HubModel) tick() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m *HubModel) queryStates() tea.Msg {
	states, err := m.hub.PortStates(context.Background(), cusbc.FormatBitmapped)
	if err != nil {
		return errMsg{err}
	}
	return statesMsg(states)
}

func (m *HubModel) queryInfo() tea.Msg {
	ctx := context.Background()
	port := m.hub.Port()
	if port == "" {
		var err error
		port, err = m.hub.DiscoverPort(ctx)
		if err != nil {
			return errMsg{err}
		}
	}
	info, err := m.hub.QueryHubInfo(ctx, port)
	if err != nil {
		return errMsg{err}
	}
	return infoMsg(info)
}

func (m *HubModel) applyStates(states cusbc.PortStates) tea.Cmd {
	applied := make(cusbc.PortStates, len(states))
	copy(applied, states)
	return func() tea.Msg {
		if err := m.hub.SetPortStates(context.Background(), applied, cusbc.FormatBitmapped); err != nil {
			return errMsg{err}
		}
		return appliedMsg{}
	}
}

func onOffLabel(on bool) string {
	if on {
		return "on"
	}
	return "off"
}
