// view_modals.go - Help, version, error, and confirm modal views
package main

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rootisgod/followgo/internal/social"
)

// ─── Help Modal ────────────────────────────────────────────────────────────────

type helpModel struct {
	width  int
	height int
}

func (m helpModel) View() string {
	title := modalTitleStyle.Render("Keyboard Shortcuts")

	var lines []string
	for _, group := range tableKeys.FullHelp() {
		for _, b := range group {
			h := b.Help()
			lines = append(lines, fmt.Sprintf("  %s  %s",
				footerKeyStyle.Width(10).Render(h.Key),
				modalTextStyle.Render(h.Desc)))
		}
		lines = append(lines, "")
	}

	themeLines := []string{formActiveLabelStyle.Render("  Themes (t to cycle):")}
	for i, t := range themes {
		marker := "  "
		if i == currentThemeIndex {
			marker = "● "
		}
		swatch := lipgloss.NewStyle().Foreground(t.Accent).Render("██")
		themeLines = append(themeLines, fmt.Sprintf("  %s%s %s", marker, swatch, modalTextStyle.Render(t.Name)))
	}

	hints := []string{
		"",
		formHintStyle.Render("Tab sorts by the next column, Shift+Tab flips the direction"),
		formHintStyle.Render("Filter matches name, @handle and bio; Esc/Enter closes the bar"),
		"",
		formHintStyle.Render("Press Esc or Enter to close"),
	}

	content := title + "\n\n" + strings.Join(lines, "\n") + strings.Join(themeLines, "\n") + "\n" + strings.Join(hints, "\n")
	box := modalStyle.Render(content)

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}

// ─── Version Modal ─────────────────────────────────────────────────────────────

type versionModel struct {
	details []string
	width   int
	height  int
}

func (m versionModel) View() string {
	var b strings.Builder
	b.WriteString(modalTitleStyle.Render("Version") + "\n\n")
	b.WriteString(modalTextStyle.Render(GetVersion()) + "\n")
	for _, d := range m.details {
		b.WriteString("\n" + formHintStyle.Render(d))
	}
	b.WriteString("\n\n" + formHintStyle.Render("Press Esc or Enter to close"))
	box := modalStyle.Render(b.String())

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}

// ─── Error Modal ───────────────────────────────────────────────────────────────

type errorModel struct {
	title    string
	message  string
	detail   string
	returnTo viewMode // mode to restore when the modal closes
	width    int
	height   int
}

// newErrorModel shows the backend's own message for API errors, with the
// HTTP status as detail.
func newErrorModel(title string, err error, returnTo viewMode) errorModel {
	m := errorModel{title: title, message: err.Error(), returnTo: returnTo}
	var apiErr *social.APIError
	if errors.As(err, &apiErr) {
		m.detail = fmt.Sprintf("HTTP %d %s", apiErr.Status, http.StatusText(apiErr.Status))
		if apiErr.Message != "" {
			m.message = apiErr.Message
		}
	}
	return m
}

func (m errorModel) View() string {
	var b strings.Builder
	b.WriteString(errorTitleStyle.Render(m.title) + "\n\n")
	b.WriteString(modalTextStyle.Render(m.message))
	if m.detail != "" {
		b.WriteString("\n" + formHintStyle.Render(m.detail))
	}
	back := "close"
	if m.returnTo == viewAddAccount {
		back = "edit the account"
	}
	b.WriteString("\n\n" + formHintStyle.Render("Press Esc or Enter to "+back))
	box := modalStyle.Render(b.String())

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}

// ─── Confirm Modal ─────────────────────────────────────────────────────────────

type confirmModel struct {
	title    string
	question string
	cursor   int // 0=Yes, 1=No
	width    int
	height   int
}

// newConfirmModel starts on "No" so a stray Enter does not confirm.
func newConfirmModel(title, question string) confirmModel {
	return confirmModel{title: title, question: question, cursor: 1}
}

func (m confirmModel) Update(msg tea.Msg) (confirmModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "left", "h":
			m.cursor = 0
		case "right", "l":
			m.cursor = 1
		case "y", "Y":
			return m, func() tea.Msg { return confirmResultMsg{confirmed: true} }
		case "n", "N", "esc":
			return m, func() tea.Msg { return confirmResultMsg{confirmed: false} }
		case "enter":
			confirmed := m.cursor == 0
			return m, func() tea.Msg { return confirmResultMsg{confirmed: confirmed} }
		}
	}
	return m, nil
}

func (m confirmModel) View() string {
	title := modalTitleStyle.Render(m.title)
	body := modalTextStyle.Render(m.question)

	yesStyle := formButtonStyle
	noStyle := formButtonStyle
	if m.cursor == 0 {
		yesStyle = formActiveButtonStyle
	} else {
		noStyle = formActiveButtonStyle
	}

	buttons := yesStyle.Render(" Yes ") + "  " + noStyle.Render(" No ")
	hint := formHintStyle.Render("y/n or ←→ + Enter")

	content := title + "\n\n" + body + "\n\n" + buttons + "\n\n" + hint
	box := modalStyle.Render(content)

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}
