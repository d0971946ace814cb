// Package viewer shows parsed subtitle records in a scrollable terminal UI.
package viewer

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mgpai22/srtlint/internal/subtitle"
)

const (
	// share of the terminal width used by the list
	widthPercent  = 60
	defaultWidth  = 80
	defaultHeight = 20
)

var (
	frameStyle     = lipgloss.NewStyle().BorderStyle(lipgloss.DoubleBorder()).BorderForeground(lipgloss.Color("12"))
	titleStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
	highlightStyle = lipgloss.NewStyle().Background(lipgloss.Color("15")).Foreground(lipgloss.Color("0"))
	helpStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280")).Italic(true)
)

// Model is a read-only bubbletea model over the flattened subtitle lines.
type Model struct {
	rows     []string
	total    int
	pos      int
	width    int
	viewport viewport.Model
}

func New(records []subtitle.Record, totalLines int) Model {
	m := Model{
		rows:     Flatten(records),
		total:    totalLines,
		width:    defaultWidth,
		viewport: viewport.New(defaultWidth, defaultHeight),
	}
	m.refresh()
	return m
}

// Run blocks until the user quits the viewer.
func Run(records []subtitle.Record, totalLines int) error {
	_, err := tea.NewProgram(New(records, totalLines), tea.WithAltScreen()).Run()
	return err
}

// Flatten renders one row per text line, prefixed with the block's start time.
func Flatten(records []subtitle.Record) []string {
	var rows []string
	for _, rec := range records {
		stamp := Humanize(rec.Start)
		for _, line := range rec.Text {
			rows = append(rows, stamp+"  "+line)
		}
	}
	return rows
}

// Humanize formats d as HH:MM:SS, wrapping hours at one day.
func Humanize(d time.Duration) string {
	secs := uint64(d / time.Second)
	hours := (secs % 86400) / 3600
	minutes := (secs % 3600) / 60
	seconds := secs % 60

	return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds)
}

// Position is the zero-based index of the selected row.
func (m Model) Position() int {
	return m.pos
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.viewport.Width = max(msg.Width*widthPercent/100-frameStyle.GetHorizontalFrameSize(), 1)
		// title and help take one row each
		m.viewport.Height = max(msg.Height-frameStyle.GetVerticalFrameSize()-2, 1)
		m.refresh()
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "down", "j":
			m.move(1)
		case "up", "k":
			m.move(-1)
		case "pgdown":
			m.move(m.viewport.Height)
		case "pgup":
			m.move(-m.viewport.Height)
		case "home", "g":
			m.move(-len(m.rows))
		case "end", "G":
			m.move(len(m.rows))
		}
		return m, nil
	}

	return m, nil
}

func (m Model) View() string {
	boxWidth := m.viewport.Width + frameStyle.GetHorizontalFrameSize()

	current := 0
	if len(m.rows) > 0 {
		current = m.pos + 1
	}
	title := lipgloss.PlaceHorizontal(boxWidth, lipgloss.Center,
		titleStyle.Render(fmt.Sprintf("Line: %d/%d", current, m.total)))

	box := lipgloss.JoinVertical(lipgloss.Left,
		title,
		frameStyle.Render(m.viewport.View()),
		helpStyle.Render("  ↑/↓: Navigate • PgUp/PgDn: Page • q: Quit"),
	)

	return lipgloss.PlaceHorizontal(max(m.width, boxWidth), lipgloss.Center, box)
}

func (m *Model) move(delta int) {
	if len(m.rows) == 0 {
		return
	}
	m.pos = min(max(m.pos+delta, 0), len(m.rows)-1)
	m.refresh()
}

// re-renders the rows and scrolls the selection into view
func (m *Model) refresh() {
	rendered := make([]string, len(m.rows))
	for i, row := range m.rows {
		if i == m.pos {
			rendered[i] = highlightStyle.Render("> " + row)
			continue
		}
		rendered[i] = "  " + row
	}
	m.viewport.SetContent(strings.Join(rendered, "\n"))

	switch {
	case m.pos < m.viewport.YOffset:
		m.viewport.SetYOffset(m.pos)
	case m.pos >= m.viewport.YOffset+m.viewport.Height:
		m.viewport.SetYOffset(m.pos - m.viewport.Height + 1)
	}
}
