package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/dd0wney/cluso-compliance/pkg/diagram"
	"github.com/dd0wney/cluso-compliance/pkg/document"
	"github.com/dd0wney/cluso-compliance/pkg/logging"
	"github.com/dd0wney/cluso-compliance/pkg/metrics"
	"github.com/dd0wney/cluso-compliance/pkg/recommend"
	"github.com/dd0wney/cluso-compliance/pkg/topology"
)

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF00FF")).
			MarginLeft(2).
			MarginTop(1)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#00FFFF")).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#00FFFF")).
			Padding(0, 1)

	activeTabStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#FF00FF")).
			Padding(0, 2)

	inactiveTabStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#666666")).
				Padding(0, 2)

	contentStyle = lipgloss.NewStyle().
			MarginLeft(2).
			MarginTop(1)

	statsBoxStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#00FF00")).
			Padding(1, 2).
			MarginRight(2)

	narrativeBoxStyle = lipgloss.NewStyle().
				BorderStyle(lipgloss.DoubleBorder()).
				BorderForeground(lipgloss.Color("#FFFF00")).
				Padding(1, 2).
				Width(80)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF0000")).
			Bold(true)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888")).
			MarginTop(1).
			MarginLeft(2)
)

type view int

const (
	summaryView view = iota
	devicesView
	recommendationsView
	controlsView
	viewCount
)

type keyMap struct {
	Tab      key.Binding
	ShiftTab key.Binding
	Quit     key.Binding
	Up       key.Binding
	Down     key.Binding
}

var keys = keyMap{
	Tab: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "next view"),
	),
	ShiftTab: key.NewBinding(
		key.WithKeys("shift+tab"),
		key.WithHelp("shift+tab", "prev view"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "down"),
	),
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Tab, k.Up, k.Down, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Tab, k.ShiftTab},
		{k.Up, k.Down},
		{k.Quit},
	}
}

type model struct {
	summary      *topology.Summary
	recs         []recommend.Recommendation
	doc          *document.SSPDocument
	currentView  view
	deviceTable  table.Model
	recTable     table.Model
	controlTable table.Model
	help         help.Model
	keys         keyMap
	width        int
	height       int
	loadErr      string
}

func newTable(columns []table.Column, rows []table.Row) table.Model {
	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(12),
	)
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("#00FFFF")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("#FFFFFF")).
		Background(lipgloss.Color("#FF00FF")).
		Bold(false)
	t.SetStyles(s)
	return t
}

func initialModel(summary *topology.Summary, recs []recommend.Recommendation, doc *document.SSPDocument) model {
	deviceRows := make([]table.Row, 0, len(summary.Devices))
	for _, d := range summary.Devices {
		deviceRows = append(deviceRows, table.Row{d.Name, d.Type, string(d.Category), d.ZoneName})
	}
	deviceTable := newTable([]table.Column{
		{Title: "Name", Width: 24},
		{Title: "Type", Width: 16},
		{Title: "Category", Width: 12},
		{Title: "Zone", Width: 16},
	}, deviceRows)

	recRows := make([]table.Row, 0, len(recs))
	for _, r := range recs {
		recRows = append(recRows, table.Row{
			r.ControlID,
			string(r.Confidence),
			r.Reason,
			fmt.Sprintf("%d", len(r.TriggerIDs)),
		})
	}
	recTable := newTable([]table.Column{
		{Title: "Control", Width: 10},
		{Title: "Confidence", Width: 10},
		{Title: "Reason", Width: 44},
		{Title: "Triggers", Width: 8},
	}, recRows)

	controlRows := make([]table.Row, 0)
	if doc != nil {
		for _, c := range doc.Controls {
			controlRows = append(controlRows, table.Row{c.ControlID, c.Title, string(c.Source)})
		}
	}
	controlTable := newTable([]table.Column{
		{Title: "Control", Width: 10},
		{Title: "Title", Width: 40},
		{Title: "Source", Width: 16},
	}, controlRows)

	return model{
		summary:      summary,
		recs:         recs,
		doc:          doc,
		currentView:  summaryView,
		deviceTable:  deviceTable,
		recTable:     recTable,
		controlTable: controlTable,
		help:         help.New(),
		keys:         keys,
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit

		case key.Matches(msg, m.keys.Tab):
			m.currentView = (m.currentView + 1) % viewCount

		case key.Matches(msg, m.keys.ShiftTab):
			if m.currentView == 0 {
				m.currentView = viewCount - 1
			} else {
				m.currentView--
			}
		}
	}

	switch m.currentView {
	case devicesView:
		m.deviceTable, cmd = m.deviceTable.Update(msg)
		cmds = append(cmds, cmd)
	case recommendationsView:
		m.recTable, cmd = m.recTable.Update(msg)
		cmds = append(cmds, cmd)
	case controlsView:
		m.controlTable, cmd = m.controlTable.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

func (m model) View() string {
	if m.width == 0 {
		return "Initializing..."
	}

	var s strings.Builder

	s.WriteString(titleStyle.Render("🛡 Cluso Compliance - Topology Browser"))
	s.WriteString("\n\n")

	s.WriteString(m.renderTabs())
	s.WriteString("\n\n")

	switch m.currentView {
	case summaryView:
		s.WriteString(m.renderSummary())
	case devicesView:
		s.WriteString(m.renderDevices())
	case recommendationsView:
		s.WriteString(m.renderRecommendations())
	case controlsView:
		s.WriteString(m.renderControls())
	}

	if m.loadErr != "" {
		s.WriteString("\n\n")
		s.WriteString(errorStyle.Render("✗ " + m.loadErr))
	}

	s.WriteString("\n\n")
	s.WriteString(helpStyle.Render(m.help.ShortHelpView(m.keys.ShortHelp())))

	return s.String()
}

func (m model) renderTabs() string {
	tabs := []string{"Summary", "Devices", "Recommendations", "Controls"}
	var renderedTabs []string

	for i, tab := range tabs {
		if view(i) == m.currentView {
			renderedTabs = append(renderedTabs, activeTabStyle.Render(tab))
		} else {
			renderedTabs = append(renderedTabs, inactiveTabStyle.Render(tab))
		}
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, renderedTabs...)
}

func (m model) renderSummary() string {
	statsContent := fmt.Sprintf(`📊 Topology
━━━━━━━━━━━━━━━
Devices:     %d
Boundaries:  %d
Connections: %d
Encrypted:   %d
Cross-zone:  %d
Firewalls:   %d`,
		m.summary.DeviceCount,
		m.summary.BoundaryCount,
		len(m.summary.Edges),
		m.summary.EncryptedEdgeCount,
		m.summary.CrossZoneEdgeCount,
		m.summary.FirewallCount(),
	)

	var zones strings.Builder
	zones.WriteString("🏰 Security Zones\n━━━━━━━━━━━━━━━\n")
	if len(m.summary.Zones) == 0 {
		zones.WriteString("No zones defined")
	}
	for _, zone := range m.summary.Zones {
		zones.WriteString(fmt.Sprintf("%-20s %d device(s)\n", zone.Name, zone.DeviceCount))
	}

	statsBox := statsBoxStyle.Render(statsContent)
	zonesBox := statsBoxStyle.Render(zones.String())

	return contentStyle.Render(
		lipgloss.JoinHorizontal(lipgloss.Top, statsBox, zonesBox),
	)
}

func (m model) renderDevices() string {
	var s strings.Builder
	s.WriteString(headerStyle.Render("Device Browser"))
	s.WriteString("\n\n")
	s.WriteString(m.deviceTable.View())
	return contentStyle.Render(s.String())
}

func (m model) renderRecommendations() string {
	var s strings.Builder
	s.WriteString(headerStyle.Render("Recommended Controls"))
	s.WriteString("\n\n")
	if len(m.recs) == 0 {
		s.WriteString(helpStyle.Render("No recommendations for this topology"))
	} else {
		s.WriteString(m.recTable.View())
	}
	return contentStyle.Render(s.String())
}

func (m model) renderControls() string {
	var s strings.Builder
	s.WriteString(headerStyle.Render("Control Narratives"))
	s.WriteString("\n\n")

	if m.doc == nil || len(m.doc.Controls) == 0 {
		s.WriteString(helpStyle.Render("No document built"))
		return contentStyle.Render(s.String())
	}

	s.WriteString(m.controlTable.View())
	s.WriteString("\n\n")

	cursor := m.controlTable.Cursor()
	if cursor >= 0 && cursor < len(m.doc.Controls) {
		control := m.doc.Controls[cursor]
		narrative := control.Narrative
		if len(narrative) > 500 {
			narrative = narrative[:500] + "..."
		}
		s.WriteString(narrativeBoxStyle.Render(fmt.Sprintf("%s: %s\n\n%s", control.ControlID, control.Title, narrative)))
	}

	return contentStyle.Render(s.String())
}

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "Usage: tui <topology.yaml> [baseline]")
		os.Exit(1)
	}

	baseline := "moderate"
	if len(os.Args) > 2 {
		baseline = os.Args[2]
	}

	nodes, edges, err := diagram.LoadFile(os.Args[1])
	if err != nil {
		log.Fatalf("Failed to load topology: %v", err)
	}

	g := diagram.NewGraph(nodes, edges)
	summary := topology.Analyze(g)
	engine := &recommend.Engine{Metrics: metrics.Default()}
	recs := engine.Recommend(g)

	builder := document.NewBuilder()
	builder.Logger = logging.NewNopLogger()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	m := initialModel(summary, recs, nil)
	doc, err := builder.Build(ctx, &document.GenerateRequest{
		SystemName: strings.TrimSuffix(os.Args[1], ".yaml"),
		Baseline:   baseline,
		Nodes:      nodes,
		Edges:      edges,
	})
	if err != nil {
		m.loadErr = fmt.Sprintf("document build failed: %v", err)
	} else {
		m = initialModel(summary, recs, doc)
	}

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		log.Fatalf("Error running program: %v", err)
	}
}
