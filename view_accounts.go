// view_accounts.go - Account manager list and the add-account form
package main

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rootisgod/followgo/internal/social"
	"github.com/rootisgod/followgo/internal/table"
	"github.com/rootisgod/followgo/internal/view"
)

// ─── Account Manager ───────────────────────────────────────────────────────────

type accountsModel struct {
	accounts view.Accounts
	err      error
	loaded   bool
	cursor   tableCursor
	help     help.Model
	width    int
	height   int
}

func newAccountsModel() accountsModel {
	return accountsModel{help: help.New()}
}

// setAccounts stores a fresh read and puts the cursor on the selected
// account.
func (m *accountsModel) setAccounts(a view.Accounts, err error) {
	m.loaded = true
	m.err = err
	if err != nil {
		return
	}
	m.accounts = a
	if i := a.Index(a.Selected); i >= 0 {
		m.cursor.pos = i
	}
	m.cursor.clamp(len(a.List), m.visibleRows())
}

func (m accountsModel) highlighted() (social.AccountRecord, bool) {
	if m.cursor.pos >= 0 && m.cursor.pos < len(m.accounts.List) {
		return m.accounts.List[m.cursor.pos], true
	}
	return social.AccountRecord{}, false
}

func (m accountsModel) visibleRows() int {
	return max(1, min(12, m.height-14))
}

// Update only moves the cursor; the root model handles the actions.
func (m accountsModel) Update(msg tea.Msg) (accountsModel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		n := len(m.accounts.List)
		switch {
		case key.Matches(msg, accountKeys.Up):
			m.cursor.pos--
		case key.Matches(msg, accountKeys.Down):
			m.cursor.pos++
		}
		m.cursor.clamp(n, m.visibleRows())
	}
	return m, nil
}

func (m accountsModel) View() string {
	title := modalTitleStyle.Render("Accounts")

	var body string
	switch {
	case !m.loaded:
		body = tableEmptyStyle.Render("Loading accounts…")
	case m.err != nil:
		body = errorTitleStyle.Render("Could not read accounts") + "\n" + modalTextStyle.Render(m.err.Error())
	default:
		cols := table.Accounts.TerminalColumns()
		body = renderGrid(gridSpec[social.AccountRecord]{
			columns: cols,
			rows:    m.accounts.List,
			cursor:  m.cursor,
			visible: min(m.visibleRows(), max(1, len(m.accounts.List))),
			empty:   table.Accounts.Empty,
			style: func(col table.Column[social.AccountRecord], a social.AccountRecord) (string, bool) {
				if col.Title == cols[0].Title && a.UserID == m.accounts.Selected {
					return col.Text(a) + " ●", true
				}
				return "", false
			},
		})
	}

	current := "none"
	if a, ok := m.accounts.Current(); ok {
		current = "@" + a.Username
	}
	info := formHintStyle.Render("Selected: " + current)
	hints := m.help.ShortHelpView(accountKeys.ShortHelp())

	content := title + "\n" + body + "\n" + info + "\n\n" + hints
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, modalStyle.MaxWidth(96).Render(content))
}

// ─── Add-Account Form ──────────────────────────────────────────────────────────

const (
	addFieldUsername = iota
	addFieldToken
	addFieldSubmit
	addFieldCancel
	addFieldCount
)

type addAccountModel struct {
	usernameInput textinput.Model
	tokenInput    textinput.Model
	cursor        int
	busy          bool // a backend call is outstanding
	err           string
	width         int
	height        int
}

func newAddAccountModel(w, h int) addAccountModel {
	ui := textinput.New()
	ui.Placeholder = "@username"
	ui.CharLimit = usernameCharLimit
	ui.Focus()

	ti := textinput.New()
	ti.Placeholder = "bearer token"
	ti.CharLimit = tokenCharLimit
	ti.EchoMode = textinput.EchoPassword
	ti.EchoCharacter = '•'

	return addAccountModel{usernameInput: ui, tokenInput: ti, width: w, height: h}
}

func (m addAccountModel) Init() tea.Cmd { return textinput.Blink }

func (m addAccountModel) form() view.AccountForm {
	return view.AccountForm{Username: m.usernameInput.Value(), Token: m.tokenInput.Value()}
}

// settle re-enables the form after the backend answered.
func (m *addAccountModel) settle(err error) {
	m.busy = false
	m.err = ""
	if err != nil {
		m.err = err.Error()
	}
}

func (m addAccountModel) Update(msg tea.Msg) (addAccountModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.busy {
			return m, nil
		}
		switch msg.String() {
		case "esc":
			return m, func() tea.Msg { return backToAccountsMsg{} }
		case "tab", "down":
			m.move(1)
			return m, nil
		case "shift+tab", "up":
			m.move(-1)
			return m, nil
		case "enter":
			switch m.cursor {
			case addFieldCancel:
				return m, func() tea.Msg { return backToAccountsMsg{} }
			case addFieldSubmit, addFieldToken:
				form, err := m.form().Validate()
				if err != nil {
					m.err = err.Error()
					return m, nil
				}
				m.err = ""
				m.busy = true
				return m, func() tea.Msg { return submitAccountMsg{form: form} }
			}
			m.move(1)
			return m, nil
		}
		return m.forward(msg)
	default:
		return m.forward(msg)
	}
}

func (m addAccountModel) forward(msg tea.Msg) (addAccountModel, tea.Cmd) {
	var cmd tea.Cmd
	switch m.cursor {
	case addFieldUsername:
		m.usernameInput, cmd = m.usernameInput.Update(msg)
	case addFieldToken:
		m.tokenInput, cmd = m.tokenInput.Update(msg)
	}
	return m, cmd
}

func (m *addAccountModel) move(delta int) {
	m.usernameInput.Blur()
	m.tokenInput.Blur()
	m.cursor = (m.cursor + delta + addFieldCount) % addFieldCount
	switch m.cursor {
	case addFieldUsername:
		m.usernameInput.Focus()
	case addFieldToken:
		m.tokenInput.Focus()
	}
}

func (m addAccountModel) View() string {
	title := formTitleStyle.Render("Add Account")

	label := func(i int, s string) string {
		if m.cursor == i {
			return formActiveLabelStyle.Render(s)
		}
		return formLabelStyle.Render(s)
	}

	var userVal, tokenVal string
	if m.cursor == addFieldUsername && !m.busy {
		userVal = m.usernameInput.View()
	} else {
		userVal = formValueStyle.Render(m.usernameInput.Value())
	}
	if m.cursor == addFieldToken && !m.busy {
		tokenVal = m.tokenInput.View()
	} else {
		tokenVal = formValueStyle.Render(strings.Repeat("•", min(len(m.tokenInput.Value()), 24)))
	}

	submit := formButtonStyle.Render("Add")
	switch {
	case m.busy:
		submit = formBusyButtonStyle.Render("Adding…")
	case m.cursor == addFieldSubmit:
		submit = formActiveButtonStyle.Render("Add")
	}
	cancel := formButtonStyle.Render("Cancel")
	if m.cursor == addFieldCancel && !m.busy {
		cancel = formActiveButtonStyle.Render("Cancel")
	}

	lines := []string{
		title,
		label(addFieldUsername, "Username:"),
		userVal,
		"",
		label(addFieldToken, "Bearer token:"),
		tokenVal,
		"",
		submit + "  " + cancel,
	}
	if m.err != "" {
		lines = append(lines, "", formErrorStyle.Render(m.err))
	}
	hint := "Tab/↑↓: move  Enter: add  Esc: cancel"
	if m.busy {
		hint = "Waiting for the backend…"
	}
	lines = append(lines, "", formHintStyle.Render(hint))

	box := modalStyle.Render(strings.Join(lines, "\n"))
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}
