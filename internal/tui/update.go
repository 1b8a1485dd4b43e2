package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles all messages and updates the model state
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case ErrorMsg:
		m.loading = false
		m.err = msg.Err
		return m, nil

	case CaseLoadedMsg:
		m.loading = false
		if err := m.setCase(msg.Case, msg.Rules); err != nil {
			m.err = err
		}
		return m, nil
	}

	return m, nil
}

// handleKeyPress processes keyboard input
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		if m.currentScene == SceneHelp {
			m.currentScene = SceneSimulate
		} else {
			m.currentScene = SceneHelp
		}
		m.help.ShowAll = m.currentScene == SceneHelp
		return m, nil
	}

	if m.currentScene != SceneSimulate || m.loading || m.err != nil || len(m.sliders) == 0 {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Up):
		m.focus(-1)
		return m, nil
	case key.Matches(msg, m.keys.Down):
		m.focus(1)
		return m, nil
	case key.Matches(msg, m.keys.Reset):
		for i, f := range m.fields {
			m.sliders[i].SetValue(f.Get(m.baseline.Input))
		}
		if err := m.recalculate(); err != nil {
			m.err = err
		}
		return m, nil
	}

	slider := m.sliders[m.focusedSlider]
	if slider.Disabled() {
		return m, nil
	}
	switch {
	case key.Matches(msg, m.keys.Increase):
		slider.Increment()
	case key.Matches(msg, m.keys.Decrease):
		slider.Decrement()
	case key.Matches(msg, m.keys.Max):
		slider.SetValue(slider.Max)
	case key.Matches(msg, m.keys.Zero):
		slider.SetValue(slider.Min)
	default:
		return m, nil
	}

	if err := m.recalculate(); err != nil {
		m.err = err
	}
	return m, nil
}
