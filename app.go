// app.go - Root bubbletea model: tabs, tables, modals and async plumbing
package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rootisgod/followgo/internal/config"
	"github.com/rootisgod/followgo/internal/social"
	"github.com/rootisgod/followgo/internal/table"
	"github.com/rootisgod/followgo/internal/view"
	"github.com/rsms/go-log"
)

type viewMode int

const (
	viewTable viewMode = iota
	viewHelp
	viewVersion
	viewError
	viewConfirm
	viewAccounts
	viewAddAccount
	viewLoading
)

type rootModel struct {
	loader  *view.Loader
	session *view.Session
	log     *log.Logger

	backendName     string
	refreshInterval time.Duration
	exportDir       string
	now             func() time.Time

	mode   viewMode
	width  int
	height int

	cursors [view.TargetMembers + 1]tableCursor
	filter  filterBar
	help    help.Model
	spinner spinner.Model

	fetching  map[view.Tab]bool // fetch-now in flight
	status    string
	statusErr bool
	statusAt  time.Time

	accountsView     accountsModel
	accountsPrompted bool
	addForm          addAccountModel
	errModal         errorModel
	confirm          confirmModel
	loading          loadingModel
	pendingRemoval   *social.AccountRecord
}

func newRootModel(cfg *config.Config, backend social.Backend, logger *log.Logger) rootModel {
	sp := spinner.New()
	sp.Spinner = spinner.MiniDot
	sp.Style = spinnerStyle

	return rootModel{
		loader:          view.NewLoader(backend, cfg.Backend.Timeout, logger),
		session:         view.NewSession(cfg.UI.Locale),
		log:             logger,
		backendName:     describeBackend(cfg.Backend),
		refreshInterval: cfg.UI.RefreshInterval,
		exportDir:       cfg.UI.ExportDir,
		now:             time.Now,
		filter:          newFilterBar(),
		help:            help.New(),
		spinner:         sp,
		fetching:        map[view.Tab]bool{},
		accountsView:    newAccountsModel(),
	}
}

func (m rootModel) Init() tea.Cmd {
	req := m.session.Activate(view.HomeTab)
	return tea.Batch(
		tea.SetWindowTitle(appName),
		loadCmd(m.loader, req),
		accountsCmd(m.loader),
		m.spinner.Tick,
		refreshTickCmd(m.refreshInterval),
	)
}

// ─── Update ────────────────────────────────────────────────────────────────────

func (m rootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.resize()
		m.clampCursor()
		return m, nil

	case spinner.TickMsg:
		var spinCmd, loadingCmd tea.Cmd
		m.spinner, spinCmd = m.spinner.Update(msg)
		m.loading, loadingCmd = m.loading.Update(msg)
		return m, tea.Batch(spinCmd, loadingCmd)

	case loadResultMsg:
		res := msg.res
		if !m.session.Apply(res) {
			m.log.Debug("dropped stale %s result (gen %d)", res.Request.Target, res.Request.Gen)
			return m, nil
		}
		if res.Err != nil && res.Request.Target == m.session.ActiveTarget() {
			m.setStatus(fmt.Sprintf("Could not load %s: %v", res.Request.Target, res.Err), true)
		}
		m.clampCursor()
		if req, ok := m.session.Settled(res.Request.Target); ok {
			m.log.Debug("reloading %s fetched during its load", res.Request.Target)
			return m, loadCmd(m.loader, req)
		}
		return m, nil

	case fetchResultMsg:
		delete(m.fetching, msg.tab)
		if msg.err != nil {
			m.setStatus("Fetch failed: "+msg.err.Error(), true)
			return m, nil
		}
		m.setStatus(msg.result, false)
		if msg.tab != m.session.Nav.Active() {
			return m, nil
		}
		cmd := m.refresh(view.TabTarget(msg.tab))
		if t := m.session.ActiveTarget(); t == view.TargetMembers {
			cmd = tea.Batch(cmd, m.refresh(t))
		}
		return m, cmd

	case refreshTickMsg:
		next := refreshTickCmd(m.refreshInterval)
		if m.session.Nav.Active() != view.HomeTab {
			return m, next
		}
		req, ok := m.session.ReloadTarget(view.TargetFollowing)
		if !ok {
			m.log.Debug("periodic refresh skipped, load in flight")
			return m, next
		}
		return m, tea.Batch(next, loadCmd(m.loader, req))

	case accountsResultMsg:
		m.accountsView.setAccounts(msg.accounts, msg.err)
		if msg.err == nil && len(msg.accounts.List) == 0 && !m.accountsPrompted && m.mode == viewTable {
			m.accountsPrompted = true
			m.mode = viewAccounts
		}
		return m, nil

	case accountSelectedMsg:
		if msg.err != nil {
			return m.showError("Could not switch account", msg.err, viewAccounts), nil
		}
		m.mode = viewTable
		m.setStatus("Switched to @"+msg.account.Username, false)
		cmd := m.reloadAll()
		return m, tea.Batch(accountsCmd(m.loader), cmd)

	case submitAccountMsg:
		return m, addAccountCmd(m.loader, msg.form)

	case accountAddedMsg:
		m.addForm.settle(msg.err)
		if msg.err != nil {
			return m.showError("Could not add account", msg.err, viewAddAccount), nil
		}
		m.mode = viewAccounts
		m.setStatus("Added @"+msg.form.Username, false)
		cmd := m.reloadAll()
		return m, tea.Batch(accountsCmd(m.loader), cmd)

	case confirmResultMsg:
		acct := m.pendingRemoval
		m.pendingRemoval = nil
		m.mode = viewAccounts
		if !msg.confirmed || acct == nil {
			return m, nil
		}
		m.startLoading(fmt.Sprintf("Removing @%s…", acct.Username))
		return m, tea.Batch(m.loading.Init(), removeAccountCmd(m.loader, *acct))

	case accountRemovedMsg:
		if msg.err != nil {
			return m.showError("Could not remove account", msg.err, viewAccounts), nil
		}
		m.mode = viewAccounts
		m.setStatus("Removed @"+msg.account.Username, false)
		cmd := m.reloadAll()
		return m, tea.Batch(accountsCmd(m.loader), cmd)

	case exportResultMsg:
		if msg.err != nil {
			m.setStatus(msg.err.Error(), true)
		} else {
			m.setStatus("Exported to "+msg.path, false)
		}
		return m, nil

	case copyResultMsg:
		if msg.err != nil {
			m.setStatus("Clipboard: "+msg.err.Error(), true)
		} else {
			m.setStatus("Copied "+msg.text, false)
		}
		return m, nil

	case backToTableMsg:
		m.mode = viewTable
		return m, nil

	case backToAccountsMsg:
		m.mode = viewAccounts
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	// Cursor blink for whichever text input has focus.
	var cmd tea.Cmd
	switch {
	case m.mode == viewAddAccount:
		m.addForm, cmd = m.addForm.Update(msg)
	case m.mode == viewTable && m.filter.focused:
		m.filter.input, cmd = m.filter.input.Update(msg)
	}
	return m, cmd
}

func (m rootModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}
	switch m.mode {
	case viewHelp, viewVersion:
		switch msg.String() {
		case "esc", "enter", "q", "?", "h", "v":
			m.mode = viewTable
		}
		return m, nil
	case viewError:
		switch msg.String() {
		case "esc", "enter", "q":
			m.mode = m.errModal.returnTo
		}
		return m, nil
	case viewConfirm:
		var cmd tea.Cmd
		m.confirm, cmd = m.confirm.Update(msg)
		return m, cmd
	case viewLoading:
		return m, nil
	case viewAddAccount:
		var cmd tea.Cmd
		m.addForm, cmd = m.addForm.Update(msg)
		return m, cmd
	case viewAccounts:
		return m.handleAccountsKey(msg)
	}
	return m.handleTableKey(msg)
}

func (m rootModel) handleAccountsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, accountKeys.Close):
		m.mode = viewTable
		return m, nil

	case key.Matches(msg, accountKeys.Add):
		m.addForm = newAddAccountModel(m.width, m.height)
		m.mode = viewAddAccount
		return m, m.addForm.Init()

	case key.Matches(msg, accountKeys.Select):
		acct, ok := m.accountsView.highlighted()
		if !ok {
			return m, nil
		}
		if acct.UserID == m.accountsView.accounts.Selected {
			m.mode = viewTable
			return m, nil
		}
		m.startLoading(fmt.Sprintf("Switching to @%s…", acct.Username))
		return m, tea.Batch(m.loading.Init(), selectAccountCmd(m.loader, acct))

	case key.Matches(msg, accountKeys.Remove):
		acct, ok := m.accountsView.highlighted()
		if !ok {
			return m, nil
		}
		m.pendingRemoval = &acct
		m.confirm = newConfirmModel("Remove Account",
			fmt.Sprintf("Stop tracking @%s (user %s)?", acct.Username, acct.UserID))
		m.confirm.width, m.confirm.height = m.width, m.height
		m.mode = viewConfirm
		return m, nil
	}

	var cmd tea.Cmd
	m.accountsView, cmd = m.accountsView.Update(msg)
	return m, cmd
}

func (m rootModel) handleTableKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.filter.focused {
		cmd, changed := m.filter.update(msg)
		if changed {
			m.setQuery(m.filter.value())
		}
		return m, cmd
	}

	target := m.session.ActiveTarget()
	switch {
	case key.Matches(msg, tableKeys.Quit):
		return m, tea.Quit

	case key.Matches(msg, tableKeys.Following):
		cmd := m.activate(view.TabFollowing)
		return m, cmd
	case key.Matches(msg, tableKeys.Followers):
		cmd := m.activate(view.TabFollowers)
		return m, cmd
	case key.Matches(msg, tableKeys.Lists):
		cmd := m.activate(view.TabLists)
		return m, cmd

	case key.Matches(msg, tableKeys.NextTab):
		cmd := m.activate(m.session.Nav.Next())
		return m, cmd
	case key.Matches(msg, tableKeys.PrevTab):
		cmd := m.activate(m.session.Nav.Prev())
		return m, cmd

	case key.Matches(msg, tableKeys.Reload):
		cmd := m.reload()
		if cmd == nil {
			m.setStatus("Already loading "+target.String(), false)
		}
		return m, cmd

	case key.Matches(msg, tableKeys.FetchNow):
		tab := m.session.Nav.Active()
		if m.fetching[tab] {
			m.setStatus("A fetch of "+tab.String()+" is already running", false)
			return m, nil
		}
		m.fetching[tab] = true
		m.setStatus("Fetching "+tab.String()+"…", false)
		return m, fetchNowCmd(m.loader, tab)

	case key.Matches(msg, tableKeys.Filter):
		cmd := m.filter.toggle()
		return m, cmd

	case key.Matches(msg, tableKeys.SortNext):
		if uv := m.session.Users(target); uv != nil {
			uv.SortBy(nextSortField(userTable(target).SortableFields(), uv.State.Sort.Field))
		}
		return m, nil

	case key.Matches(msg, tableKeys.SortFlip):
		if uv := m.session.Users(target); uv != nil {
			uv.SortBy(uv.State.Sort.Field)
		}
		return m, nil

	case key.Matches(msg, tableKeys.Open):
		if target != view.TargetLists {
			return m, nil
		}
		rows := m.session.Lists.Rows()
		pos := m.cursors[target].pos
		if pos < 0 || pos >= len(rows) {
			return m, nil
		}
		req, err := m.session.OpenList(rows[pos])
		if err != nil {
			m.setStatus(err.Error(), true)
			return m, nil
		}
		m.cursors[view.TargetMembers] = tableCursor{}
		m.filter.reset("")
		return m, loadCmd(m.loader, req)

	case key.Matches(msg, tableKeys.Back):
		if target == view.TargetMembers && m.session.Back() {
			m.filter.reset(m.session.Lists.Query)
			m.clampCursor()
		} else if m.filter.visible {
			m.filter.reset("")
			m.setQuery("")
		}
		return m, nil

	case key.Matches(msg, tableKeys.Accounts):
		m.mode = viewAccounts
		return m, accountsCmd(m.loader)

	case key.Matches(msg, tableKeys.Export):
		return m, m.export()

	case key.Matches(msg, tableKeys.Copy):
		u, ok := m.selectedUser()
		if !ok {
			m.setStatus("Nothing to copy", false)
			return m, nil
		}
		return m, copyCmd("@" + u.Username)

	case key.Matches(msg, tableKeys.Theme):
		t := nextTheme()
		m.restyle()
		m.setStatus("Theme: "+t.Name, false)
		return m, nil

	case key.Matches(msg, tableKeys.Help):
		m.mode = viewHelp
		return m, nil

	case key.Matches(msg, tableKeys.Version):
		m.mode = viewVersion
		return m, nil
	}

	c := m.cursors[target]
	c.navigate(msg, m.rowCount(target), m.visibleRows())
	m.cursors[target] = c
	return m, nil
}

// ─── Helpers ───────────────────────────────────────────────────────────────────

// activate switches to tab with fresh state and starts its load.
func (m *rootModel) activate(tab view.Tab) tea.Cmd {
	req := m.session.Activate(tab)
	clear(m.cursors[:])
	m.filter.reset("")
	return loadCmd(m.loader, req)
}

// reload reloads the active collection keeping sort and filter. It returns
// nil when a load is already in flight.
func (m *rootModel) reload() tea.Cmd {
	req, ok := m.session.Reload()
	if !ok {
		return nil
	}
	return loadCmd(m.loader, req)
}

// refresh reloads t after a fetch-now, or once its current load settles.
func (m *rootModel) refresh(t view.Target) tea.Cmd {
	req, ok := m.session.Refresh(t)
	if !ok {
		return nil
	}
	return loadCmd(m.loader, req)
}

// reloadAll drops every collection after the account changed and reloads
// the active tab.
func (m *rootModel) reloadAll() tea.Cmd {
	m.session.InvalidateAll()
	return m.activate(m.session.Nav.Active())
}

func (m *rootModel) setQuery(q string) {
	t := m.session.ActiveTarget()
	if uv := m.session.Users(t); uv != nil {
		uv.SetQuery(q)
	} else {
		m.session.Lists.Query = q
	}
	m.clampCursor()
}

func (m *rootModel) setStatus(s string, isErr bool) {
	m.status = s
	m.statusErr = isErr
	m.statusAt = m.now()
}

func (m *rootModel) startLoading(message string) {
	m.loading = newLoadingModel(message, m.now())
	m.loading.width, m.loading.height = m.width, m.height
	m.mode = viewLoading
}

func (m rootModel) showError(title string, err error, returnTo viewMode) rootModel {
	m.errModal = newErrorModel(title, err, returnTo)
	m.errModal.width, m.errModal.height = m.width, m.height
	m.mode = viewError
	return m
}

func (m *rootModel) resize() {
	m.accountsView.width, m.accountsView.height = m.width, m.height
	m.addForm.width, m.addForm.height = m.width, m.height
	m.errModal.width, m.errModal.height = m.width, m.height
	m.confirm.width, m.confirm.height = m.width, m.height
	m.loading.width, m.loading.height = m.width, m.height
}

// restyle re-applies styles captured by widgets after a theme change.
func (m *rootModel) restyle() {
	m.filter.input.PromptStyle = filterActiveStyle
	m.spinner.Style = spinnerStyle
}

func (m *rootModel) clampCursor() {
	t := m.session.ActiveTarget()
	m.cursors[t].clamp(m.rowCount(t), m.visibleRows())
}

func (m rootModel) rowCount(t view.Target) int {
	if uv := m.session.Users(t); uv != nil {
		return len(uv.Rows())
	}
	return len(m.session.Lists.Rows())
}

func (m rootModel) visibleRows() int {
	used := chromeRows
	if m.filter.visible {
		used++
	}
	return max(1, m.height-used)
}

func (m rootModel) selectedUser() (social.UserRecord, bool) {
	t := m.session.ActiveTarget()
	uv := m.session.Users(t)
	if uv == nil {
		return social.UserRecord{}, false
	}
	rows := uv.Rows()
	pos := m.cursors[t].pos
	if pos < 0 || pos >= len(rows) {
		return social.UserRecord{}, false
	}
	return rows[pos], true
}

func (m rootModel) currentAccount() string {
	if a, ok := m.accountsView.accounts.Current(); ok {
		return a.Username
	}
	return ""
}

// export writes what is on screen, filtered and sorted, as HTML.
func (m rootModel) export() tea.Cmd {
	t := m.session.ActiveTarget()
	account := m.currentAccount()
	title := exportTitle(account, t, m.session.Nav.OpenList().Name)

	var doc string
	if t == view.TargetLists {
		doc = table.Lists.RenderDocument(title, m.session.Lists.Rows(), table.SortKey{})
	} else {
		uv := m.session.Users(t)
		doc = userTable(t).RenderDocument(title, uv.Rows(), uv.State.Sort)
	}
	return exportCmd(m.exportDir, exportFileName(account, t.String(), m.now()), doc)
}

// userTable is the column specification of a user collection.
func userTable(t view.Target) table.Table[social.UserRecord] {
	switch t {
	case view.TargetFollowers:
		return table.Followers
	case view.TargetMembers:
		return table.ListMembers
	}
	return table.Following
}

// ─── View ──────────────────────────────────────────────────────────────────────

func (m rootModel) View() string {
	switch m.mode {
	case viewHelp:
		return helpModel{width: m.width, height: m.height}.View()
	case viewVersion:
		return versionModel{details: versionDetails(m.backendName, m.currentAccount()), width: m.width, height: m.height}.View()
	case viewError:
		return m.errModal.View()
	case viewConfirm:
		return m.confirm.View()
	case viewLoading:
		return m.loading.View()
	case viewAccounts:
		return m.accountsView.View()
	case viewAddAccount:
		return m.addForm.View()
	}

	var b strings.Builder
	b.WriteString(m.titleBar() + "\n")
	b.WriteString(m.subtitle() + "\n")
	b.WriteString(m.filter.View())
	b.WriteString(m.grid())
	b.WriteString(m.statusLine() + "\n")
	b.WriteString(footerStyle.Render(m.help.ShortHelpView(tableKeys.ShortHelp())))
	return b.String()
}

func (m rootModel) titleBar() string {
	title := titleBarStyle.Render(appName)
	if account := m.currentAccount(); account != "" {
		title += titleAccountStyle.Render("@" + account)
	}

	var tabs []string
	for _, t := range view.Tabs() {
		label := fmt.Sprintf("%d %s", int(t)+1, t)
		if t == m.session.Nav.Active() {
			tabs = append(tabs, tabActiveStyle.Render(label))
		} else {
			tabs = append(tabs, tabStyle.Render(label))
		}
	}

	line := title + " " + strings.Join(tabs, "")
	if m.activeLoading() || len(m.fetching) > 0 {
		line += " " + m.spinner.View()
	}
	return line
}

func (m rootModel) activeLoading() bool {
	t := m.session.ActiveTarget()
	if uv := m.session.Users(t); uv != nil {
		return uv.Loading()
	}
	return m.session.Lists.Loading()
}

func (m rootModel) subtitle() string {
	switch t := m.session.ActiveTarget(); t {
	case view.TargetMembers:
		l := m.session.Nav.OpenList()
		count := fmt.Sprintf("%s members · esc to go back", table.FormatNumber(len(m.session.Members.Items())))
		return breadcrumbStyle.Render("Lists › "+l.Name) + statsStyle.Render(count)
	case view.TargetLists:
		return statsStyle.Render(statsLine(m.session.Lists.Stats(), m.now()))
	default:
		return statsStyle.Render(statsLine(m.session.Users(t).Stats(), m.now()))
	}
}

func (m rootModel) grid() string {
	t := m.session.ActiveTarget()
	if t == view.TargetLists {
		lv := m.session.Lists
		empty := lv.Placeholder(table.Lists.Empty)
		if lv.Phase() == view.PhaseLoaded && lv.Query != "" && len(lv.Items()) > 0 {
			empty = fmt.Sprintf("No lists match %q", lv.Query)
		}
		return renderGrid(gridSpec[social.ListRecord]{
			columns: table.Lists.TerminalColumns(),
			rows:    lv.Rows(),
			cursor:  m.cursors[t],
			width:   m.width,
			visible: m.visibleRows(),
			empty:   empty,
			failed:  lv.Phase() == view.PhaseError,
		})
	}

	uv := m.session.Users(t)
	spec := userTable(t)
	sortKey := uv.State.Sort
	return renderGrid(gridSpec[social.UserRecord]{
		columns: spec.TerminalColumns(),
		rows:    uv.Rows(),
		sort:    &sortKey,
		cursor:  m.cursors[t],
		width:   m.width,
		visible: m.visibleRows(),
		empty:   uv.EmptyMessage(spec.Empty),
		failed:  uv.Phase() == view.PhaseError,
		style:   verifiedName,
	})
}

func (m rootModel) statusLine() string {
	width := max(m.width-2, 20)
	if m.status != "" && m.now().Sub(m.statusAt) < statusTTL {
		if m.statusErr {
			return statusErrorStyle.Render(truncate(m.status, width))
		}
		return statusStyle.Render(truncate(m.status, width))
	}
	if uv := m.session.Users(m.session.ActiveTarget()); uv != nil {
		k := uv.State.Sort
		return statusStyle.Render(fmt.Sprintf("%d shown · sorted by %s %s", len(uv.Rows()), k.Field, k.Direction.Arrow()))
	}
	return statusStyle.Render(fmt.Sprintf("%d lists · enter to open", len(m.session.Lists.Rows())))
}
