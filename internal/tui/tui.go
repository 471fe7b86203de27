// Package tui provides the interactive terminal version of the revenue-loss
// calculator.
package tui

import (
	"math"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/northflowteam-pixel/northflow-landing-page/internal/estimator"
)

const sliderWidth = 30

// Model is the calculator screen. It owns its session.
type Model struct {
	session   *estimator.Session
	formatter *estimator.Formatter
	fields    []estimator.Field
	selected  int
	width     int

	help     help.Model
	keyMap   KeyMap
	showHelp bool
	styles   Styles
}

// KeyMap defines keybindings
type KeyMap struct {
	Up    key.Binding
	Down  key.Binding
	Left  key.Binding
	Right key.Binding
	Reset key.Binding
	Help  key.Binding
	Quit  key.Binding
}

// DefaultKeyMap returns the default keybindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "previous field"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "next field"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "decrease"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "increase"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reset"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Left, k.Right, k.Help, k.Quit}
}

// FullHelp returns keybindings for the expanded help view
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Left, k.Right, k.Reset},
		{k.Help, k.Quit},
	}
}

// NewModel creates the calculator screen over s.
func NewModel(s *estimator.Session, f *estimator.Formatter, noColor bool) Model {
	return Model{
		session:   s,
		formatter: f,
		fields:    estimator.Fields(),
		help:      help.New(),
		keyMap:    DefaultKeyMap(),
		styles:    NewStyles(noColor),
	}
}

// Session returns the session the model edits.
func (m Model) Session() *estimator.Session { return m.session }

// Selected returns the key of the focused field.
func (m Model) Selected() string { return m.fields[m.selected].Key }

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keyMap.Quit):
			return m, tea.Quit

		case key.Matches(msg, m.keyMap.Help):
			m.showHelp = !m.showHelp
			m.help.ShowAll = m.showHelp

		case key.Matches(msg, m.keyMap.Up):
			m.selected = (m.selected + len(m.fields) - 1) % len(m.fields)

		case key.Matches(msg, m.keyMap.Down):
			m.selected = (m.selected + 1) % len(m.fields)

		case key.Matches(msg, m.keyMap.Left):
			m.session.Step(m.Selected(), -1)

		case key.Matches(msg, m.keyMap.Right):
			m.session.Step(m.Selected(), 1)

		case key.Matches(msg, m.keyMap.Reset):
			for _, f := range m.fields {
				m.session.Set(f.Key, f.Default)
			}
		}
	}

	return m, nil
}

// View renders the model.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.styles.Title.Render("Northflow · Revenue Loss Calculator"))
	b.WriteString("\n\n")

	for i, f := range m.fields {
		b.WriteString(m.fieldRow(f, i == m.selected))
		b.WriteString("\n")
	}

	out := m.session.Outputs()
	b.WriteString("\n")
	b.WriteString(m.styles.Label.Render("Potential monthly loss "))
	b.WriteString(m.styles.Monthly.Render(m.formatter.Format(out.MonthlyLoss)))
	b.WriteString("\n")
	b.WriteString(m.styles.Label.Render("Potential yearly loss  "))
	b.WriteString(m.styles.Yearly.Render(m.formatter.Format(out.YearlyLoss)))
	b.WriteString("\n\n")

	b.WriteString(m.help.View(m.keyMap))
	b.WriteString("\n")

	return b.String()
}

func (m Model) fieldRow(f estimator.Field, selected bool) string {
	cursor := "  "
	label := m.styles.Label
	if selected {
		cursor = m.styles.Cursor.Render("› ")
		label = m.styles.Selected
	}

	v := m.session.Value(f.Key)
	return cursor +
		label.Render(padRight(f.Label, 24)) +
		m.slider(f, v) + " " +
		m.styles.Value.Render(m.formatter.Value(f, v))
}

func (m Model) slider(f estimator.Field, v float64) string {
	filled := 0
	if f.Max > f.Min {
		filled = int(math.Round((v - f.Min) / (f.Max - f.Min) * sliderWidth))
	}
	filled = max(0, min(sliderWidth, filled))

	return m.styles.SliderOn.Render(strings.Repeat("━", filled)) +
		m.styles.SliderOff.Render(strings.Repeat("─", sliderWidth-filled))
}

func padRight(s string, width int) string {
	if n := lipgloss.Width(s); n < width {
		return s + strings.Repeat(" ", width-n)
	}
	return s
}

// Run starts the interactive calculator and blocks until the user quits.
func Run(s *estimator.Session, f *estimator.Formatter, noColor bool) error {
	_, err := tea.NewProgram(NewModel(s, f, noColor)).Run()
	return err
}
