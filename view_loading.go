// view_loading.go - Blocking spinner shown while an account change is in flight
package main

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type loadingModel struct {
	spinner spinner.Model
	message string
	started time.Time
	elapsed time.Duration
	width   int
	height  int
}

func newLoadingModel(message string, started time.Time) loadingModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot
	s.Style = spinnerStyle
	return loadingModel{spinner: s, message: message, started: started}
}

func (m loadingModel) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m loadingModel) Update(msg tea.Msg) (loadingModel, tea.Cmd) {
	tick, ok := msg.(spinner.TickMsg)
	if !ok {
		return m, nil
	}
	if !m.started.IsZero() && tick.Time.After(m.started) {
		m.elapsed = tick.Time.Sub(m.started)
	}
	var cmd tea.Cmd
	m.spinner, cmd = m.spinner.Update(msg)
	return m, cmd
}

func (m loadingModel) View() string {
	line := m.spinner.View() + loadingMsgStyle.Render(m.message)
	if m.elapsed >= time.Second {
		line += formHintStyle.Render(fmt.Sprintf("  %s", m.elapsed.Truncate(time.Second)))
	}
	box := modalStyle.Render(line)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}
