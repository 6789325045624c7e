package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wippyai/signal-runtime/registry"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	signalStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	typeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	eventStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type action struct {
	name   string
	params []string
	emit   func(sc *scene, args []string) error
}

var actions = []action{
	{
		name:   "fired",
		params: []string{"target: string", "power: int"},
		emit: func(sc *scene, args []string) error {
			power, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("power must be an integer: %w", err)
			}
			return sc.fired.Emit(args[0], power)
		},
	},
	{
		name:   "target_acquired",
		params: []string{"target: string"},
		emit: func(sc *scene, args []string) error {
			return sc.acquired.Emit(args[0])
		},
	},
	{
		name: "reloaded",
		emit: func(sc *scene, args []string) error {
			return sc.reloaded.Emit()
		},
	},
}

type modelState int

const (
	stateSelect modelState = iota
	stateInput
)

type interactiveModel struct {
	sc       *scene
	err      error
	inputs   []textinput.Model
	selected int
	focusIdx int
	swept    bool
	state    modelState
}

type emittedMsg struct {
	err error
}

func newInteractiveModel() (*interactiveModel, error) {
	sc, err := buildScene()
	if err != nil {
		return nil, err
	}
	return &interactiveModel{sc: sc}, nil
}

func (m *interactiveModel) Init() tea.Cmd {
	return nil
}

func (m *interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			if m.state == stateSelect {
				return m, tea.Quit
			}

		case "up", "k":
			if m.state == stateSelect && m.selected > 0 {
				m.selected--
			}

		case "down", "j":
			if m.state == stateSelect && m.selected < len(actions)-1 {
				m.selected++
			}

		case "r":
			if m.state == stateSelect {
				m.sc.sweep()
				m.swept = true
				m.sc.logf("hot reload: all tracked connections severed")
			}

		case "enter":
			switch m.state {
			case stateSelect:
				m.prepareInputs()
				if len(m.inputs) == 0 {
					return m, m.emitSelected
				}
				m.state = stateInput

			case stateInput:
				m.state = stateSelect
				return m, m.emitSelected
			}

		case "tab":
			if m.state == stateInput && len(m.inputs) > 1 {
				m.inputs[m.focusIdx].Blur()
				m.focusIdx = (m.focusIdx + 1) % len(m.inputs)
				m.inputs[m.focusIdx].Focus()
			}

		case "esc":
			if m.state == stateInput {
				m.state = stateSelect
				m.inputs = nil
			}
		}

	case emittedMsg:
		m.err = msg.err
	}

	if m.state == stateInput {
		var cmds []tea.Cmd
		for i := range m.inputs {
			var cmd tea.Cmd
			m.inputs[i], cmd = m.inputs[i].Update(msg)
			cmds = append(cmds, cmd)
		}
		return m, tea.Batch(cmds...)
	}

	return m, nil
}

func (m *interactiveModel) prepareInputs() {
	a := actions[m.selected]
	m.inputs = make([]textinput.Model, len(a.params))
	for i, p := range a.params {
		ti := textinput.New()
		ti.Placeholder = p
		ti.Prompt = "> "
		ti.Width = 40
		if i == 0 {
			ti.Focus()
		}
		m.inputs[i] = ti
	}
	m.focusIdx = 0
}

func (m *interactiveModel) emitSelected() tea.Msg {
	a := actions[m.selected]
	args := make([]string, len(m.inputs))
	for i, input := range m.inputs {
		args[i] = input.Value()
	}
	return emittedMsg{err: a.emit(m.sc, args)}
}

func (m *interactiveModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Signal Runtime"))
	b.WriteString(fmt.Sprintf("  tracked connections: %d", registry.Default().Len()))
	if m.swept {
		b.WriteString(errorStyle.Render("  [reloaded]"))
	}
	b.WriteString("\n\n")

	switch m.state {
	case stateSelect:
		b.WriteString("Emit a signal:\n\n")
		for i, a := range actions {
			line := signalStyle.Render(a.name) + "(" + typeStyle.Render(strings.Join(a.params, ", ")) + ")"
			if i == m.selected {
				b.WriteString(selectedStyle.Render("> ") + line)
			} else {
				b.WriteString("  " + line)
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("↑/↓ select • enter emit • r hot reload • q quit"))

	case stateInput:
		a := actions[m.selected]
		b.WriteString(fmt.Sprintf("Emitting %s\n\n", signalStyle.Render(a.name)))
		for _, input := range m.inputs {
			b.WriteString(input.View())
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("tab next field • enter emit • esc back"))
	}

	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("Turret: %d shots, last target %q   Scoreboard: %d\n",
		m.sc.turretInst.Shots, m.sc.turretInst.Last, m.sc.scoreInst.Total))

	events := m.sc.eventTail(8)
	if len(events) > 0 {
		b.WriteString("\nRecent deliveries:\n")
		for _, ev := range events {
			b.WriteString("  " + eventStyle.Render(ev) + "\n")
		}
	}

	if m.err != nil {
		b.WriteString("\n" + errorStyle.Render(fmt.Sprintf("Error: %v", m.err)) + "\n")
	}

	return b.String()
}

func runInteractive() error {
	m, err := newInteractiveModel()
	if err != nil {
		return err
	}
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err = p.Run()
	return err
}
