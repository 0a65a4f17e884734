// messages.go - Custom tea.Msg types and tea.Cmd factories for async operations
package main

import (
	"context"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rootisgod/followgo/internal/social"
	"github.com/rootisgod/followgo/internal/view"
)

// ─── Result Messages ───────────────────────────────────────────────────────────

// loadResultMsg carries the answer to one collection load.
type loadResultMsg struct{ res view.LoadResult }

// fetchResultMsg carries the outcome of a fetch-now for one tab.
type fetchResultMsg struct {
	tab    view.Tab
	result string
	err    error
}

// accountsResultMsg carries the registered accounts and the selected one.
type accountsResultMsg struct {
	accounts view.Accounts
	err      error
}

type accountSelectedMsg struct {
	account social.AccountRecord
	err     error
}

// submitAccountMsg is sent by the add-account form when the user submits it.
type submitAccountMsg struct{ form view.AccountForm }

type accountAddedMsg struct {
	form view.AccountForm
	err  error
}

type accountRemovedMsg struct {
	account social.AccountRecord
	err     error
}

// refreshTickMsg fires the periodic background refresh.
type refreshTickMsg time.Time

type exportResultMsg struct {
	path string
	err  error
}

type copyResultMsg struct {
	text string
	err  error
}

// confirmResultMsg carries the user's confirm/deny choice.
type confirmResultMsg struct{ confirmed bool }

// backToTableMsg tells the root model to return to the main table view.
type backToTableMsg struct{}

// backToAccountsMsg closes the add-account form.
type backToAccountsMsg struct{}

// ─── Command Factories ─────────────────────────────────────────────────────────

func loadCmd(l *view.Loader, req view.LoadRequest) tea.Cmd {
	return func() tea.Msg {
		return loadResultMsg{res: l.Load(context.Background(), req)}
	}
}

func fetchNowCmd(l *view.Loader, tab view.Tab) tea.Cmd {
	return func() tea.Msg {
		result, err := l.FetchNow(context.Background(), tab)
		return fetchResultMsg{tab: tab, result: result, err: err}
	}
}

func accountsCmd(l *view.Loader) tea.Cmd {
	return func() tea.Msg {
		accounts, err := l.Accounts(context.Background())
		return accountsResultMsg{accounts: accounts, err: err}
	}
}

func selectAccountCmd(l *view.Loader, account social.AccountRecord) tea.Cmd {
	return func() tea.Msg {
		err := l.SelectAccount(context.Background(), account.UserID)
		return accountSelectedMsg{account: account, err: err}
	}
}

func addAccountCmd(l *view.Loader, form view.AccountForm) tea.Cmd {
	return func() tea.Msg {
		form, err := l.AddAccount(context.Background(), form)
		return accountAddedMsg{form: form, err: err}
	}
}

func removeAccountCmd(l *view.Loader, account social.AccountRecord) tea.Cmd {
	return func() tea.Msg {
		err := l.RemoveAccount(context.Background(), account.UserID)
		return accountRemovedMsg{account: account, err: err}
	}
}

// refreshTickCmd schedules the next background refresh.
func refreshTickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return refreshTickMsg(t)
	})
}

// copyCmd puts text on the system clipboard.
func copyCmd(text string) tea.Cmd {
	return func() tea.Msg {
		return copyResultMsg{text: text, err: clipboard.WriteAll(text)}
	}
}
