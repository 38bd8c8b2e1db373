package main

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/zephyrtronium/objmodel"
)

var (
	cursorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F59E0B")).
			Bold(true)

	titleStyle = lipgloss.NewStyle().
			Foreground(accentColor).
			Bold(true).
			Padding(0, 1)
)

type keyMap struct {
	Up     key.Binding
	Down   key.Binding
	Choose key.Binding
	Quit   key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Choose, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

var keys = keyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "down"),
	),
	Choose: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "run"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "esc", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// pickerModel is the bubbletea model of the interactive demo picker.
type pickerModel struct {
	demos  []objmodel.Demo
	cursor int
	// chosen is the name of the selected demo, or empty if the user quit.
	chosen string
	help   help.Model
}

func newPicker(demos []objmodel.Demo) pickerModel {
	return pickerModel{demos: demos, help: help.New()}
}

func (m pickerModel) Init() tea.Cmd {
	return nil
}

func (m pickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, keys.Down):
			if m.cursor < len(m.demos)-1 {
				m.cursor++
			}
		case key.Matches(msg, keys.Choose):
			if len(m.demos) > 0 {
				m.chosen = m.demos[m.cursor].Name
			}
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m pickerModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("gofdemo"))
	b.WriteString("\n\n")
	for i, d := range m.demos {
		if i == m.cursor {
			b.WriteString(cursorStyle.Render("> " + d.Name))
		} else {
			b.WriteString("  " + d.Name)
		}
		b.WriteString("  ")
		b.WriteString(summaryStyle.Render(d.Summary))
		b.WriteByte('\n')
	}
	b.WriteByte('\n')
	b.WriteString(m.help.View(keys))
	b.WriteByte('\n')
	return b.String()
}

// pick runs the picker and returns the chosen demo's name, or the empty
// string if the user quit without choosing.
func pick(demos []objmodel.Demo) (string, error) {
	m, err := tea.NewProgram(newPicker(demos)).Run()
	if err != nil {
		return "", err
	}
	return m.(pickerModel).chosen, nil
}
