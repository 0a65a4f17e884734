package view

import (
	"context"
	"fmt"
	"time"

	"github.com/rootisgod/followgo/internal/social"
	"github.com/rsms/go-log"
)

// Loader is the only caller of the backend. Every call runs under a timeout
// and every failure is logged and returned as a value; nothing panics past
// this boundary.
type Loader struct {
	backend social.Backend
	timeout time.Duration
	log     *log.Logger
}

func NewLoader(backend social.Backend, timeout time.Duration, logger *log.Logger) *Loader {
	return &Loader{backend: backend, timeout: timeout, log: logger}
}

func (l *Loader) context(ctx context.Context) (context.Context, context.CancelFunc) {
	if l.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, l.timeout)
}

func (l *Loader) failed(op string, err error) error {
	err = fmt.Errorf("%s: %w", op, err)
	l.log.Warn("%v", err)
	return err
}

// Load runs req against the backend.
func (l *Loader) Load(ctx context.Context, req LoadRequest) (res LoadResult) {
	ctx, cancel := l.context(ctx)
	defer cancel()
	defer func() {
		if r := recover(); r != nil {
			res = LoadResult{Request: req, Err: l.failed("load "+req.Target.String(), fmt.Errorf("panic: %v", r))}
		}
	}()

	res.Request = req
	var err error
	switch req.Target {
	case TargetFollowing:
		if res.Users, err = l.backend.GetFollowingList(ctx); err != nil {
			res.Err = l.failed("GetFollowingList", err)
			return res
		}
		if res.Stats, err = l.backend.GetStats(ctx); err != nil {
			res.Err = l.failed("GetStats", err)
			return res
		}
	case TargetFollowers:
		if res.Users, err = l.backend.GetFollowersList(ctx); err != nil {
			res.Err = l.failed("GetFollowersList", err)
			return res
		}
		if res.Stats, err = l.backend.GetFollowersStats(ctx); err != nil {
			res.Err = l.failed("GetFollowersStats", err)
			return res
		}
	case TargetLists:
		if res.Lists, err = l.backend.GetOwnedLists(ctx); err != nil {
			res.Err = l.failed("GetOwnedLists", err)
			return res
		}
		if res.Stats, err = l.backend.GetListsStats(ctx); err != nil {
			res.Err = l.failed("GetListsStats", err)
			return res
		}
	case TargetMembers:
		if req.ListID == "" {
			res.Err = l.failed("GetListMembers", ErrNoListSelected)
			return res
		}
		if res.Users, err = l.backend.GetListMembers(ctx, req.ListID); err != nil {
			res.Err = l.failed("GetListMembers", err)
			return res
		}
		res.Stats = social.StatsSnapshot{TotalCount: len(res.Users)}
	default:
		res.Err = l.failed("load", fmt.Errorf("unknown target %d", req.Target))
		return res
	}

	// absent collections are empty, not errors
	if res.Users == nil && req.Target != TargetLists {
		res.Users = []social.UserRecord{}
	}
	if res.Lists == nil && req.Target == TargetLists {
		res.Lists = []social.ListRecord{}
	}
	l.log.Debug("loaded %s gen %d: %d users, %d lists", req.Target, req.Gen, len(res.Users), len(res.Lists))
	return res
}

// FetchNow asks the backend to refresh the collection behind tab.
func (l *Loader) FetchNow(ctx context.Context, tab Tab) (string, error) {
	ctx, cancel := l.context(ctx)
	defer cancel()

	var (
		op     string
		result string
		err    error
	)
	switch tab {
	case TabFollowers:
		op = "FetchFollowersNow"
		result, err = l.backend.FetchFollowersNow(ctx)
	case TabLists:
		op = "FetchListsNow"
		result, err = l.backend.FetchListsNow(ctx)
	default:
		op = "FetchNow"
		result, err = l.backend.FetchNow(ctx)
	}
	if err != nil {
		return "", l.failed(op, err)
	}
	l.log.Info("%s: %s", op, result)
	return result, nil
}

// Accounts reads the registered accounts and the selected one.
func (l *Loader) Accounts(ctx context.Context) (Accounts, error) {
	ctx, cancel := l.context(ctx)
	defer cancel()

	list, err := l.backend.GetAccounts(ctx)
	if err != nil {
		return Accounts{}, l.failed("GetAccounts", err)
	}
	selected, err := l.backend.GetSelectedAccount(ctx)
	if err != nil {
		return Accounts{}, l.failed("GetSelectedAccount", err)
	}
	if list == nil {
		list = []social.AccountRecord{}
	}
	return Accounts{List: list, Selected: selected}, nil
}

func (l *Loader) SelectAccount(ctx context.Context, userID string) error {
	ctx, cancel := l.context(ctx)
	defer cancel()
	if err := l.backend.SelectAccount(ctx, userID); err != nil {
		return l.failed("SelectAccount", err)
	}
	l.log.Info("selected account %s", userID)
	return nil
}

// AddAccount validates form and registers the account.
func (l *Loader) AddAccount(ctx context.Context, form AccountForm) (AccountForm, error) {
	form, err := form.Validate()
	if err != nil {
		return form, err
	}
	ctx, cancel := l.context(ctx)
	defer cancel()
	if err := l.backend.AddNewAccount(ctx, form.Username, form.Token); err != nil {
		return form, l.failed("AddNewAccount", err)
	}
	l.log.Info("added account @%s", form.Username)
	return form, nil
}

func (l *Loader) RemoveAccount(ctx context.Context, userID string) error {
	ctx, cancel := l.context(ctx)
	defer cancel()
	if err := l.backend.RemoveAccountByID(ctx, userID); err != nil {
		return l.failed("RemoveAccountByID", err)
	}
	l.log.Info("removed account %s", userID)
	return nil
}
