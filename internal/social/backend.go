package social

import (
	"context"
	"errors"
	"fmt"
)

// Backend is the service that owns accounts, talks to the social network API
// and caches what it fetched. Every call may fail.
type Backend interface {
	GetFollowingList(ctx context.Context) ([]UserRecord, error)
	GetStats(ctx context.Context) (StatsSnapshot, error)

	GetFollowersList(ctx context.Context) ([]UserRecord, error)
	GetFollowersStats(ctx context.Context) (StatsSnapshot, error)

	GetOwnedLists(ctx context.Context) ([]ListRecord, error)
	GetListMembers(ctx context.Context, listID string) ([]UserRecord, error)
	GetListsStats(ctx context.Context) (StatsSnapshot, error)

	// FetchNow, FetchListsNow and FetchFollowersNow ask the backend to
	// refresh a collection from the network. The result is a human readable
	// summary.
	FetchNow(ctx context.Context) (string, error)
	FetchListsNow(ctx context.Context) (string, error)
	FetchFollowersNow(ctx context.Context) (string, error)

	GetAccounts(ctx context.Context) ([]AccountRecord, error)
	GetSelectedAccount(ctx context.Context) (string, error)
	SelectAccount(ctx context.Context, userID string) error
	AddNewAccount(ctx context.Context, username, bearerToken string) error
	RemoveAccountByID(ctx context.Context, userID string) error
}

var (
	// ErrNoAccount is returned when a call needs a selected account and none
	// is selected.
	ErrNoAccount = errors.New("no account selected")

	// ErrAccountNotFound is returned for an unknown account id.
	ErrAccountNotFound = errors.New("account not found")

	// ErrListNotFound is returned for an unknown list id.
	ErrListNotFound = errors.New("list not found")
)

// APIError is a non-2xx answer from the backend HTTP API.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("backend returned status %d", e.Status)
	}
	return fmt.Sprintf("backend returned status %d: %s", e.Status, e.Message)
}
