package social

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"
)

// MemoryBackend serves a Fixtures document from memory. It backs the demo
// mode of the UI and the development HTTP server.
type MemoryBackend struct {
	Now func() time.Time

	mu       sync.Mutex
	fx       *Fixtures
	selected string
}

var _ Backend = (*MemoryBackend)(nil)

func NewMemoryBackend(fx *Fixtures) *MemoryBackend {
	b := &MemoryBackend{Now: time.Now}
	b.Replace(fx)
	return b
}

// Replace swaps the served fixtures. The selected account is kept when it
// still exists.
func (b *MemoryBackend) Replace(fx *Fixtures) {
	if fx == nil {
		fx = &Fixtures{}
	}
	fx.normalize()
	b.mu.Lock()
	defer b.mu.Unlock()
	prev := b.selected
	b.fx = fx
	switch {
	case prev != "" && b.account(prev) != nil:
		b.selected = prev
	case fx.Selected != "" && b.account(fx.Selected) != nil:
		b.selected = fx.Selected
	default:
		b.selectFirst()
	}
}

func (b *MemoryBackend) account(userID string) *FixtureAccount {
	for i := range b.fx.Accounts {
		if b.fx.Accounts[i].UserID == userID {
			return &b.fx.Accounts[i]
		}
	}
	return nil
}

func (b *MemoryBackend) selectFirst() {
	b.selected = ""
	if len(b.fx.Accounts) > 0 {
		b.selected = b.fx.Accounts[0].UserID
	}
}

// current returns the selected account, or nil. Callers hold b.mu.
func (b *MemoryBackend) current() *FixtureAccount {
	if b.selected == "" {
		return nil
	}
	return b.account(b.selected)
}

func (b *MemoryBackend) GetFollowingList(ctx context.Context) ([]UserRecord, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if a := b.current(); a != nil {
		return append([]UserRecord(nil), a.Following...), nil
	}
	return nil, nil
}

func (b *MemoryBackend) GetStats(ctx context.Context) (StatsSnapshot, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if a := b.current(); a != nil {
		return statsFor(a.FollowingStats, len(a.Following)), nil
	}
	return StatsSnapshot{}, nil
}

func (b *MemoryBackend) GetFollowersList(ctx context.Context) ([]UserRecord, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if a := b.current(); a != nil {
		return append([]UserRecord(nil), a.Followers...), nil
	}
	return nil, nil
}

func (b *MemoryBackend) GetFollowersStats(ctx context.Context) (StatsSnapshot, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if a := b.current(); a != nil {
		return statsFor(a.FollowersStats, len(a.Followers)), nil
	}
	return StatsSnapshot{}, nil
}

func (b *MemoryBackend) GetOwnedLists(ctx context.Context) ([]ListRecord, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	a := b.current()
	if a == nil {
		return nil, nil
	}
	lists := make([]ListRecord, 0, len(a.Lists))
	for _, l := range a.Lists {
		lists = append(lists, l.ListRecord)
	}
	return lists, nil
}

// GetListMembers returns the members of one list. Each member carries the
// names of every owned list it belongs to.
func (b *MemoryBackend) GetListMembers(ctx context.Context, listID string) ([]UserRecord, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	a := b.current()
	if a == nil {
		return nil, ErrNoAccount
	}
	memberOf := map[string][]string{}
	var found *FixtureList
	for i := range a.Lists {
		l := &a.Lists[i]
		if l.ID == listID {
			found = l
		}
		for _, m := range l.Members {
			memberOf[m.Username] = append(memberOf[m.Username], l.Name)
		}
	}
	if found == nil {
		return nil, fmt.Errorf("%w: %q", ErrListNotFound, listID)
	}
	members := make([]UserRecord, len(found.Members))
	for i, m := range found.Members {
		m.Lists = memberOf[m.Username]
		members[i] = m
	}
	return members, nil
}

func (b *MemoryBackend) GetListsStats(ctx context.Context) (StatsSnapshot, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if a := b.current(); a != nil {
		return statsFor(a.ListsStats, len(a.Lists)), nil
	}
	return StatsSnapshot{}, nil
}

func (b *MemoryBackend) FetchNow(ctx context.Context) (string, error) {
	return b.fetch("following", func(a *FixtureAccount) (*StatsSnapshot, int) {
		return &a.FollowingStats, len(a.Following)
	})
}

func (b *MemoryBackend) FetchFollowersNow(ctx context.Context) (string, error) {
	return b.fetch("followers", func(a *FixtureAccount) (*StatsSnapshot, int) {
		return &a.FollowersStats, len(a.Followers)
	})
}

func (b *MemoryBackend) FetchListsNow(ctx context.Context) (string, error) {
	return b.fetch("lists", func(a *FixtureAccount) (*StatsSnapshot, int) {
		return &a.ListsStats, len(a.Lists)
	})
}

// fetch stamps the collection's stats as if it had just been refreshed.
func (b *MemoryBackend) fetch(what string, pick func(*FixtureAccount) (*StatsSnapshot, int)) (string, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	a := b.current()
	if a == nil {
		return "No account selected. Add an account first.", nil
	}
	now := b.Now()
	stats, n := pick(a)
	stats.TotalCount = n
	stats.LastFetchAt = &now
	stats.CacheExpiresAt = nil
	if b.fx.CacheTTL > 0 {
		exp := now.Add(b.fx.CacheTTL)
		stats.CacheExpiresAt = &exp
	}
	return fmt.Sprintf("Fetched %d %s for @%s at %s", n, what, a.Username, now.Format("15:04:05")), nil
}

func (b *MemoryBackend) GetAccounts(ctx context.Context) ([]AccountRecord, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	accounts := make([]AccountRecord, 0, len(b.fx.Accounts))
	for _, a := range b.fx.Accounts {
		accounts = append(accounts, a.AccountRecord)
	}
	return accounts, nil
}

func (b *MemoryBackend) GetSelectedAccount(ctx context.Context) (string, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.selected, nil
}

func (b *MemoryBackend) SelectAccount(ctx context.Context, userID string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.account(userID) == nil {
		return fmt.Errorf("%w: %q", ErrAccountNotFound, userID)
	}
	b.selected = userID
	return nil
}

// AddNewAccount registers an account. Adding a known username replaces its
// token. The first account added becomes the selected one.
func (b *MemoryBackend) AddNewAccount(ctx context.Context, username, bearerToken string) error {
	username = strings.TrimPrefix(strings.TrimSpace(username), "@")
	if username == "" || bearerToken == "" {
		return fmt.Errorf("username and bearer token are required")
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	for i := range b.fx.Accounts {
		if strings.EqualFold(b.fx.Accounts[i].Username, username) {
			b.fx.Accounts[i].Token = bearerToken
			return nil
		}
	}
	id := fmt.Sprintf("%d", 1000+len(b.fx.Accounts)+1)
	for b.account(id) != nil {
		id += "0"
	}
	b.fx.Accounts = append(b.fx.Accounts, FixtureAccount{
		AccountRecord: AccountRecord{UserID: id, Username: username},
		Token:         bearerToken,
	})
	if b.selected == "" {
		b.selected = id
	}
	return nil
}

// RemoveAccountByID unregisters an account. Removing the selected account
// selects the first remaining one.
func (b *MemoryBackend) RemoveAccountByID(ctx context.Context, userID string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	for i := range b.fx.Accounts {
		if b.fx.Accounts[i].UserID == userID {
			b.fx.Accounts = append(b.fx.Accounts[:i], b.fx.Accounts[i+1:]...)
			if b.selected == userID {
				b.selectFirst()
			}
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrAccountNotFound, userID)
}

func statsFor(s StatsSnapshot, n int) StatsSnapshot {
	if s.TotalCount == 0 {
		s.TotalCount = n
	}
	return s
}
