package view

import (
	"context"

	"github.com/rootisgod/followgo/internal/social"
	"github.com/stretchr/testify/mock"
)

type MockBackend struct {
	mock.Mock
}

var _ social.Backend = (*MockBackend)(nil)

func (m *MockBackend) users(args mock.Arguments) ([]social.UserRecord, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]social.UserRecord), args.Error(1)
}

func (m *MockBackend) GetFollowingList(ctx context.Context) ([]social.UserRecord, error) {
	return m.users(m.Called(ctx))
}

func (m *MockBackend) GetStats(ctx context.Context) (social.StatsSnapshot, error) {
	args := m.Called(ctx)
	return args.Get(0).(social.StatsSnapshot), args.Error(1)
}

func (m *MockBackend) GetFollowersList(ctx context.Context) ([]social.UserRecord, error) {
	return m.users(m.Called(ctx))
}

func (m *MockBackend) GetFollowersStats(ctx context.Context) (social.StatsSnapshot, error) {
	args := m.Called(ctx)
	return args.Get(0).(social.StatsSnapshot), args.Error(1)
}

func (m *MockBackend) GetOwnedLists(ctx context.Context) ([]social.ListRecord, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]social.ListRecord), args.Error(1)
}

func (m *MockBackend) GetListMembers(ctx context.Context, listID string) ([]social.UserRecord, error) {
	return m.users(m.Called(ctx, listID))
}

func (m *MockBackend) GetListsStats(ctx context.Context) (social.StatsSnapshot, error) {
	args := m.Called(ctx)
	return args.Get(0).(social.StatsSnapshot), args.Error(1)
}

func (m *MockBackend) FetchNow(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

func (m *MockBackend) FetchListsNow(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

func (m *MockBackend) FetchFollowersNow(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

func (m *MockBackend) GetAccounts(ctx context.Context) ([]social.AccountRecord, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]social.AccountRecord), args.Error(1)
}

func (m *MockBackend) GetSelectedAccount(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

func (m *MockBackend) SelectAccount(ctx context.Context, userID string) error {
	return m.Called(ctx, userID).Error(0)
}

func (m *MockBackend) AddNewAccount(ctx context.Context, username, bearerToken string) error {
	return m.Called(ctx, username, bearerToken).Error(0)
}

func (m *MockBackend) RemoveAccountByID(ctx context.Context, userID string) error {
	return m.Called(ctx, userID).Error(0)
}
