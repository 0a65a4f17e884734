package view

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rootisgod/followgo/internal/social"
	"github.com/rsms/go-log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestLoader(b social.Backend) *Loader {
	return NewLoader(b, time.Second, log.SubLogger("[test]"))
}

func TestLoader_LoadFollowing(t *testing.T) {
	b := new(MockBackend)
	b.On("GetFollowingList", mock.Anything).Return([]social.UserRecord{alice, bob}, nil).Once()
	b.On("GetStats", mock.Anything).Return(social.StatsSnapshot{TotalCount: 2}, nil).Once()

	req := LoadRequest{Target: TargetFollowing, Gen: 7}
	res := newTestLoader(b).Load(context.Background(), req)

	require.NoError(t, res.Err)
	assert.Equal(t, req, res.Request)
	assert.Equal(t, []social.UserRecord{alice, bob}, res.Users)
	assert.Equal(t, 2, res.Stats.TotalCount)
	b.AssertExpectations(t)
}

func TestLoader_NilCollectionsAreEmpty(t *testing.T) {
	b := new(MockBackend)
	b.On("GetFollowersList", mock.Anything).Return(nil, nil).Once()
	b.On("GetFollowersStats", mock.Anything).Return(social.StatsSnapshot{}, nil).Once()
	b.On("GetOwnedLists", mock.Anything).Return(nil, nil).Once()
	b.On("GetListsStats", mock.Anything).Return(social.StatsSnapshot{}, nil).Once()

	l := newTestLoader(b)
	res := l.Load(context.Background(), LoadRequest{Target: TargetFollowers})
	require.NoError(t, res.Err)
	assert.NotNil(t, res.Users)
	assert.Empty(t, res.Users)

	res = l.Load(context.Background(), LoadRequest{Target: TargetLists})
	require.NoError(t, res.Err)
	assert.NotNil(t, res.Lists)
	b.AssertExpectations(t)
}

func TestLoader_Errors(t *testing.T) {
	boom := errors.New("boom")

	t.Run("list call fails", func(t *testing.T) {
		b := new(MockBackend)
		b.On("GetFollowingList", mock.Anything).Return(nil, boom).Once()
		res := newTestLoader(b).Load(context.Background(), LoadRequest{Target: TargetFollowing})
		assert.ErrorIs(t, res.Err, boom)
		assert.Contains(t, res.Err.Error(), "GetFollowingList")
		b.AssertNotCalled(t, "GetStats", mock.Anything)
	})

	t.Run("stats call fails", func(t *testing.T) {
		b := new(MockBackend)
		b.On("GetOwnedLists", mock.Anything).Return([]social.ListRecord{}, nil).Once()
		b.On("GetListsStats", mock.Anything).Return(social.StatsSnapshot{}, boom).Once()
		res := newTestLoader(b).Load(context.Background(), LoadRequest{Target: TargetLists})
		assert.ErrorIs(t, res.Err, boom)
	})

	t.Run("members without list id", func(t *testing.T) {
		b := new(MockBackend)
		res := newTestLoader(b).Load(context.Background(), LoadRequest{Target: TargetMembers})
		assert.ErrorIs(t, res.Err, ErrNoListSelected)
		b.AssertNotCalled(t, "GetListMembers", mock.Anything, mock.Anything)
	})

	t.Run("backend panics", func(t *testing.T) {
		b := new(MockBackend)
		b.On("GetFollowersList", mock.Anything).Run(func(mock.Arguments) { panic("bad") }).Return(nil, nil)
		res := newTestLoader(b).Load(context.Background(), LoadRequest{Target: TargetFollowers, Gen: 3})
		assert.Error(t, res.Err)
		assert.Equal(t, uint64(3), res.Request.Gen)
	})
}

func TestLoader_Members(t *testing.T) {
	b := new(MockBackend)
	member := alice
	member.Lists = []string{"Systems"}
	b.On("GetListMembers", mock.Anything, "l1").Return([]social.UserRecord{member}, nil).Once()

	res := newTestLoader(b).Load(context.Background(), LoadRequest{Target: TargetMembers, ListID: "l1"})
	require.NoError(t, res.Err)
	assert.Equal(t, 1, res.Stats.TotalCount)
	assert.Equal(t, []string{"Systems"}, res.Users[0].Lists)
}

func TestLoader_FetchNowPerTab(t *testing.T) {
	b := new(MockBackend)
	b.On("FetchNow", mock.Anything).Return("following ok", nil).Once()
	b.On("FetchFollowersNow", mock.Anything).Return("followers ok", nil).Once()
	b.On("FetchListsNow", mock.Anything).Return("", errors.New("rate limited")).Once()

	l := newTestLoader(b)
	got, err := l.FetchNow(context.Background(), TabFollowing)
	require.NoError(t, err)
	assert.Equal(t, "following ok", got)

	got, err = l.FetchNow(context.Background(), TabFollowers)
	require.NoError(t, err)
	assert.Equal(t, "followers ok", got)

	_, err = l.FetchNow(context.Background(), TabLists)
	assert.ErrorContains(t, err, "FetchListsNow: rate limited")
	b.AssertExpectations(t)
}

func TestLoader_AccountFlows(t *testing.T) {
	b := new(MockBackend)
	accounts := []social.AccountRecord{{UserID: "1", Username: "me"}}
	b.On("GetAccounts", mock.Anything).Return(accounts, nil).Once()
	b.On("GetSelectedAccount", mock.Anything).Return("1", nil).Once()
	b.On("AddNewAccount", mock.Anything, "alice", "tok").Return(nil).Once()
	b.On("SelectAccount", mock.Anything, "1").Return(nil).Once()
	b.On("RemoveAccountByID", mock.Anything, "1").Return(social.ErrAccountNotFound).Once()

	l := newTestLoader(b)
	got, err := l.Accounts(context.Background())
	require.NoError(t, err)
	assert.Equal(t, Accounts{List: accounts, Selected: "1"}, got)

	form, err := l.AddAccount(context.Background(), AccountForm{Username: "@alice", Token: "tok"})
	require.NoError(t, err)
	assert.Equal(t, "alice", form.Username)

	_, err = l.AddAccount(context.Background(), AccountForm{Username: "x"})
	assert.ErrorIs(t, err, ErrMissingToken)

	require.NoError(t, l.SelectAccount(context.Background(), "1"))
	assert.ErrorIs(t, l.RemoveAccount(context.Background(), "1"), social.ErrAccountNotFound)
	b.AssertExpectations(t)
}
