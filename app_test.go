package main

import (
	"context"
	"errors"
	"os"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rootisgod/followgo/internal/config"
	"github.com/rootisgod/followgo/internal/social"
	"github.com/rootisgod/followgo/internal/view"
	"github.com/rsms/go-log"
	"golang.org/x/text/language"
)

// flakyBackend fails on demand.
type flakyBackend struct {
	*social.MemoryBackend
	failFollowing bool
	failAdd       bool
}

func (b *flakyBackend) GetFollowingList(ctx context.Context) ([]social.UserRecord, error) {
	if b.failFollowing {
		return nil, errors.New("backend unavailable")
	}
	return b.MemoryBackend.GetFollowingList(ctx)
}

func (b *flakyBackend) AddNewAccount(ctx context.Context, username, token string) error {
	if b.failAdd {
		return &social.APIError{Status: 401, Message: "invalid token"}
	}
	return b.MemoryBackend.AddNewAccount(ctx, username, token)
}

func newTestModel(t *testing.T) (rootModel, *flakyBackend) {
	t.Helper()
	cfg := &config.Config{}
	cfg.Backend.Timeout = time.Second
	cfg.UI.RefreshInterval = time.Minute
	cfg.UI.Locale = language.English
	cfg.UI.ExportDir = t.TempDir()

	b := &flakyBackend{MemoryBackend: social.NewMemoryBackend(social.DemoFixtures())}
	m := newRootModel(cfg, b, log.SubLogger("[test]"))
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 160, Height: 40})
	return m, b
}

func update(t *testing.T, m rootModel, msg tea.Msg) (rootModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	rm, ok := next.(rootModel)
	if !ok {
		t.Fatalf("Update returned %T, want rootModel", next)
	}
	return rm, cmd
}

// ownMsg reports whether msg is one of the app's result messages. Timer
// driven widget messages are not fed back so drain terminates.
func ownMsg(msg tea.Msg) bool {
	switch msg.(type) {
	case loadResultMsg, fetchResultMsg, accountsResultMsg, accountSelectedMsg,
		submitAccountMsg, accountAddedMsg, accountRemovedMsg, exportResultMsg,
		confirmResultMsg, backToTableMsg, backToAccountsMsg:
		return true
	}
	return false
}

// drain runs cmd and everything it leads to, feeding results back into m.
func drain(t *testing.T, m rootModel, cmd tea.Cmd) rootModel {
	t.Helper()
	queue := []tea.Cmd{cmd}
	for steps := 0; len(queue) > 0; steps++ {
		if steps > 100 {
			t.Fatal("drain did not settle")
		}
		c := queue[0]
		queue = queue[1:]
		if c == nil {
			continue
		}
		msg := c()
		if batch, ok := msg.(tea.BatchMsg); ok {
			queue = append(queue, batch...)
			continue
		}
		if !ownMsg(msg) {
			continue
		}
		var next tea.Cmd
		m, next = update(t, m, msg)
		queue = append(queue, next)
	}
	return m
}

func press(t *testing.T, m rootModel, keys ...string) (rootModel, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "enter":
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		case "esc":
			msg = tea.KeyMsg{Type: tea.KeyEsc}
		case "tab":
			msg = tea.KeyMsg{Type: tea.KeyTab}
		case "shift+tab":
			msg = tea.KeyMsg{Type: tea.KeyShiftTab}
		case "down":
			msg = tea.KeyMsg{Type: tea.KeyDown}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		m, cmd = update(t, m, msg)
	}
	return m, cmd
}

// started returns a model with the home tab and the accounts loaded.
func started(t *testing.T) (rootModel, *flakyBackend) {
	t.Helper()
	m, b := newTestModel(t)
	req := m.session.Activate(view.HomeTab)
	m = drain(t, m, tea.Batch(loadCmd(m.loader, req), accountsCmd(m.loader)))
	return m, b
}

func usernames(rows []social.UserRecord) string {
	names := make([]string, len(rows))
	for i, r := range rows {
		names[i] = r.Username
	}
	return strings.Join(names, ",")
}

func TestStartupLoadsHomeTab(t *testing.T) {
	m, _ := started(t)

	if got := m.session.Following.Phase(); got != view.PhaseLoaded {
		t.Fatalf("following phase = %v, want loaded", got)
	}
	// default order is follower count, largest first
	if got := usernames(m.session.Following.Rows()); got != "celine,alice,dmitri,bob" {
		t.Errorf("rows = %s", got)
	}
	out := m.View()
	for _, want := range []string{"followgo", "@demo", "Céline Dubois", "2.3M", "Not fetched yet"} {
		if !strings.Contains(out, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestStaleResponseIsDropped(t *testing.T) {
	m, _ := newTestModel(t)
	first := loadCmd(m.loader, m.session.Activate(view.HomeTab))()

	m, cmd := press(t, m, "1")
	m, _ = update(t, m, first)
	if !m.session.Following.Loading() {
		t.Fatalf("stale result applied, phase = %v", m.session.Following.Phase())
	}

	m = drain(t, m, cmd)
	if got := m.session.Following.Phase(); got != view.PhaseLoaded {
		t.Errorf("phase after current result = %v, want loaded", got)
	}
}

func TestSortKeys(t *testing.T) {
	m, _ := started(t)

	m, _ = press(t, m, "tab")
	if got := m.session.Following.State.Sort; got.Field != "following_count" || got.Direction != "desc" {
		t.Errorf("after tab sort = %+v, want following_count desc", got)
	}
	m, _ = press(t, m, "shift+tab")
	if got := m.session.Following.State.Sort; got.Field != "following_count" || got.Direction != "asc" {
		t.Errorf("after shift+tab sort = %+v, want following_count asc", got)
	}
	if got := usernames(m.session.Following.Rows()); got != "celine,bob,alice,dmitri" {
		t.Errorf("rows = %s", got)
	}
}

func TestFilterBar(t *testing.T) {
	m, _ := started(t)

	m, _ = press(t, m, "f", "a", "l", "i")
	if got := m.session.Following.State.Query; got != "ali" {
		t.Fatalf("query = %q, want ali", got)
	}
	if got := usernames(m.session.Following.Rows()); got != "alice" {
		t.Errorf("rows = %s, want alice", got)
	}

	m, _ = press(t, m, "enter", "x", "y", "z")
	if m.filter.focused {
		t.Error("enter should leave the filter bar")
	}
	if got := m.session.Following.State.Query; got != "ali" {
		t.Errorf("keys after enter changed the query to %q", got)
	}

	m, _ = press(t, m, "f", "z", "z", "z")
	if !strings.Contains(m.View(), `No accounts match "alizzz"`) {
		t.Error("view should explain the empty filter result")
	}

	// switching tabs resets the view state
	m, cmd := press(t, m, "enter", "2")
	m = drain(t, m, cmd)
	m, cmd = press(t, m, "1")
	m = drain(t, m, cmd)
	if q := m.session.Following.State.Query; q != "" || m.filter.visible {
		t.Errorf("query after tab switch = %q, filter visible = %v", q, m.filter.visible)
	}
}

func TestListsNavigation(t *testing.T) {
	m, _ := started(t)

	m, cmd := press(t, m, "3")
	m = drain(t, m, cmd)
	if got := len(m.session.Lists.Rows()); got != 2 {
		t.Fatalf("lists = %d, want 2", got)
	}

	m, cmd = press(t, m, "enter")
	if m.session.ActiveTarget() != view.TargetMembers {
		t.Fatalf("target = %v, want members", m.session.ActiveTarget())
	}
	m = drain(t, m, cmd)
	if got := usernames(m.session.Members.Rows()); got != "alice,dmitri" {
		t.Errorf("members = %s", got)
	}
	out := m.View()
	for _, want := range []string{"Lists › Systems", "[Systems] [Design]"} {
		if !strings.Contains(out, want) {
			t.Errorf("view missing %q", want)
		}
	}

	m, _ = press(t, m, "esc")
	if m.session.ActiveTarget() != view.TargetLists {
		t.Errorf("esc should return to the grid")
	}
	if got := m.session.Members.Phase(); got != view.PhaseEmpty {
		t.Errorf("members phase after back = %v, want empty", got)
	}
}

func TestFetchNowIsNotReentrant(t *testing.T) {
	m, _ := started(t)

	m, cmd := press(t, m, "R")
	if cmd == nil || !m.fetching[view.TabFollowing] {
		t.Fatal("fetch-now should start")
	}
	m, again := press(t, m, "R")
	if again != nil {
		t.Error("second fetch-now started while the first is running")
	}

	m = drain(t, m, cmd)
	if m.fetching[view.TabFollowing] {
		t.Error("fetch flag not cleared")
	}
	if !strings.Contains(m.status, "Fetched 4 following for @demo") {
		t.Errorf("status = %q", m.status)
	}
	if st := m.session.Following.Stats(); st.LastFetchAt == nil {
		t.Error("stats not reloaded after fetch")
	}
}

func TestLoadErrorIsRecoverable(t *testing.T) {
	m, b := newTestModel(t)
	b.failFollowing = true
	m = drain(t, m, loadCmd(m.loader, m.session.Activate(view.HomeTab)))

	if got := m.session.Following.Phase(); got != view.PhaseError {
		t.Fatalf("phase = %v, want error", got)
	}
	if !strings.Contains(m.View(), "Error loading data") {
		t.Error("view should show the error placeholder")
	}
	if !m.statusErr || !strings.Contains(m.status, "backend unavailable") {
		t.Errorf("status = %q", m.status)
	}

	b.failFollowing = false
	m, cmd := press(t, m, "r")
	m = drain(t, m, cmd)
	if got := m.session.Following.Phase(); got != view.PhaseLoaded {
		t.Errorf("phase after reload = %v, want loaded", got)
	}
}

func TestRefreshTickDoesNotOverlap(t *testing.T) {
	m, _ := started(t)

	m, _ = update(t, m, refreshTickMsg(time.Now()))
	if !m.session.Following.Loading() {
		t.Fatal("tick should reload the home tab")
	}
	gen := m.session.Following.Generation()
	m, _ = update(t, m, refreshTickMsg(time.Now()))
	if got := m.session.Following.Generation(); got != gen {
		t.Errorf("second tick started another load: gen %d -> %d", gen, got)
	}

	other, _ := started(t)
	other, cmd := press(t, other, "2")
	other = drain(t, other, cmd)
	gen = other.session.Following.Generation()
	other, _ = update(t, other, refreshTickMsg(time.Now()))
	if got := other.session.Following.Generation(); got != gen {
		t.Error("tick reloaded the home tab while another tab is active")
	}
}

func TestExportWritesDisplayedRows(t *testing.T) {
	m, _ := started(t)
	m, _ = press(t, m, "f", "b", "o", "b", "enter")

	m, cmd := press(t, m, "e")
	m = drain(t, m, cmd)
	if m.statusErr || !strings.HasPrefix(m.status, "Exported to ") {
		t.Fatalf("status = %q", m.status)
	}
	data, err := os.ReadFile(strings.TrimPrefix(m.status, "Exported to "))
	if err != nil {
		t.Fatalf("reading export: %v", err)
	}
	doc := string(data)
	if !strings.Contains(doc, "Writes about &lt;html&gt; &amp; other things") {
		t.Error("export should escape profile text")
	}
	if strings.Contains(doc, "Céline") {
		t.Error("export should contain only the filtered rows")
	}
}

func TestAccountManagerFlows(t *testing.T) {
	m, _ := started(t)

	m, cmd := press(t, m, "a")
	m = drain(t, m, cmd)
	if m.mode != viewAccounts {
		t.Fatalf("mode = %v, want accounts", m.mode)
	}

	// add
	m, _ = press(t, m, "n")
	m, _ = press(t, m, "@", "n", "e", "w", "tab", "t", "o", "k", "enter")
	if !m.addForm.busy {
		t.Fatal("form should be busy while adding")
	}
	if !strings.Contains(m.View(), "Adding…") {
		t.Error("busy label missing")
	}
	m, _ = press(t, m, "esc")
	if m.mode != viewAddAccount {
		t.Error("a busy form should ignore keys")
	}
	m = drain(t, m, func() tea.Msg { return submitAccountMsg{form: m.addForm.form()} })
	if m.mode != viewAccounts || m.addForm.busy {
		t.Fatalf("after add: mode = %v busy = %v", m.mode, m.addForm.busy)
	}
	if got := len(m.accountsView.accounts.List); got != 2 {
		t.Fatalf("accounts = %d, want 2", got)
	}

	// select the new account
	m, _ = press(t, m, "down")
	m, cmd = press(t, m, "enter")
	if m.mode != viewLoading {
		t.Fatalf("mode = %v, want loading", m.mode)
	}
	m = drain(t, m, cmd)
	if m.mode != viewTable || m.currentAccount() != "new" {
		t.Fatalf("after select: mode = %v account = %q", m.mode, m.currentAccount())
	}
	if !strings.Contains(m.View(), "No data yet. Fetching...") {
		t.Error("new account should show the empty placeholder")
	}

	// remove it again; the backend falls back to the remaining account
	m, cmd = press(t, m, "a")
	m = drain(t, m, cmd)
	m, _ = press(t, m, "d")
	if m.mode != viewConfirm {
		t.Fatalf("mode = %v, want confirm", m.mode)
	}
	m, cmd = press(t, m, "y")
	m = drain(t, m, cmd)
	if m.mode != viewAccounts {
		t.Fatalf("after remove: mode = %v", m.mode)
	}
	if m.currentAccount() != "demo" || len(m.accountsView.accounts.List) != 1 {
		t.Errorf("after remove: account = %q, accounts = %d", m.currentAccount(), len(m.accountsView.accounts.List))
	}
}

func TestAddAccountErrors(t *testing.T) {
	m, b := started(t)
	m, cmd := press(t, m, "a")
	m = drain(t, m, cmd)

	m, _ = press(t, m, "n", "s", "o", "l", "o", "tab", "enter")
	if m.addForm.busy || m.addForm.err != view.ErrMissingToken.Error() {
		t.Fatalf("missing token: busy = %v err = %q", m.addForm.busy, m.addForm.err)
	}

	b.failAdd = true
	m, cmd = press(t, m, "t", "enter")
	m = drain(t, m, cmd)
	if m.mode != viewError || !strings.Contains(m.errModal.message, "invalid token") {
		t.Fatalf("mode = %v message = %q", m.mode, m.errModal.message)
	}
	if m.addForm.busy {
		t.Error("form should be re-enabled after a failure")
	}
	m, _ = press(t, m, "enter")
	if m.mode != viewAddAccount {
		t.Errorf("closing the error should return to the form, mode = %v", m.mode)
	}
}

func TestRemoveNeedsConfirmation(t *testing.T) {
	m, _ := started(t)
	m, cmd := press(t, m, "a")
	m = drain(t, m, cmd)

	m, _ = press(t, m, "d")
	m, cmd = press(t, m, "n")
	m = drain(t, m, cmd)
	if m.mode != viewAccounts || len(m.accountsView.accounts.List) != 1 {
		t.Errorf("declined removal: mode = %v accounts = %d", m.mode, len(m.accountsView.accounts.List))
	}
}

func TestFetchListsFromMembersRefreshesGrid(t *testing.T) {
	m, _ := started(t)
	m, cmd := press(t, m, "3")
	m = drain(t, m, cmd)
	m, cmd = press(t, m, "enter")
	m = drain(t, m, cmd)
	if m.session.Lists.Stats().LastFetchAt != nil {
		t.Fatal("lists should not be fetched yet")
	}

	m, cmd = press(t, m, "R")
	m = drain(t, m, cmd)
	if !strings.HasPrefix(m.status, "Fetched 2 lists for @demo") {
		t.Fatalf("status = %q", m.status)
	}
	if m.session.Lists.Stats().LastFetchAt == nil {
		t.Error("lists grid stats were not reloaded after fetch-now")
	}
	if m.session.ActiveTarget() != view.TargetMembers || len(m.session.Members.Rows()) != 2 {
		t.Errorf("members view should stay open and loaded")
	}

	m, _ = press(t, m, "esc")
	if strings.Contains(m.View(), "Not fetched yet") {
		t.Error("grid still shows 'Not fetched yet' after fetch-now")
	}
}

func TestFetchDuringLoadReloadsWhenSettled(t *testing.T) {
	m, _ := started(t)

	m, reloadCmd := press(t, m, "r")
	if reloadCmd == nil {
		t.Fatal("reload should start")
	}
	m, fetchCmd := press(t, m, "R")
	loaded := reloadCmd() // answered before the fetch happened
	fetched := fetchCmd()

	m, cmd := update(t, m, fetched)
	if cmd != nil {
		t.Fatal("no second load while one is in flight")
	}
	m, cmd = update(t, m, loaded)
	if cmd == nil {
		t.Fatal("the stale load should be re-issued once it settles")
	}
	if m.session.Following.Stats().LastFetchAt != nil {
		t.Fatal("first load predates the fetch")
	}
	m = drain(t, m, cmd)
	if m.session.Following.Stats().LastFetchAt == nil {
		t.Error("fetched stats never reached the following tab")
	}
}

func TestTabCycling(t *testing.T) {
	m, _ := started(t)
	tests := []struct {
		key  string
		want view.Tab
	}{
		{"]", view.TabFollowers},
		{"]", view.TabLists},
		{"]", view.TabFollowing},
		{"[", view.TabLists},
	}
	for _, tt := range tests {
		var cmd tea.Cmd
		m, cmd = press(t, m, tt.key)
		m = drain(t, m, cmd)
		if got := m.session.Nav.Active(); got != tt.want {
			t.Fatalf("after %q active = %v, want %v", tt.key, got, tt.want)
		}
	}
}
