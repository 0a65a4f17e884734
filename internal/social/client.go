package social

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// API paths shared by Client and the fixture server.
const (
	PathFollowing      = "/api/following"
	PathFollowingStats = "/api/following/stats"
	PathFollowingFetch = "/api/following/fetch"
	PathFollowers      = "/api/followers"
	PathFollowersStats = "/api/followers/stats"
	PathFollowersFetch = "/api/followers/fetch"
	PathLists          = "/api/lists"
	PathListsStats     = "/api/lists/stats"
	PathListsFetch     = "/api/lists/fetch"
	PathAccounts       = "/api/accounts"
	PathSelected       = "/api/accounts/selected"
)

// PathListMembers returns the members path of one list.
func PathListMembers(listID string) string {
	return PathLists + "/members/" + url.PathEscape(listID)
}

// PathAccount returns the path of one account.
func PathAccount(userID string) string {
	return PathAccounts + "/" + url.PathEscape(userID)
}

// Wire bodies that are not records.
type (
	FetchResult struct {
		Result string `json:"result"`
	}
	SelectedAccount struct {
		UserID string `json:"user_id"`
	}
	NewAccount struct {
		Username    string `json:"username"`
		BearerToken string `json:"bearer_token"`
	}
	ErrorBody struct {
		Error string `json:"error"`
	}
)

// Client talks to the backend over its HTTP/JSON API.
type Client struct {
	BaseURL string
	HTTP    *http.Client
}

var _ Backend = (*Client)(nil)

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		HTTP:    &http.Client{Timeout: timeout},
	}
}

func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encoding %s %s: %w", method, path, err)
		}
		body = bytes.NewReader(data)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, body)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	res, err := c.HTTP.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		var eb ErrorBody
		data, _ := io.ReadAll(io.LimitReader(res.Body, 4096))
		if json.Unmarshal(data, &eb) != nil || eb.Error == "" {
			eb.Error = strings.TrimSpace(string(data))
		}
		return &APIError{Status: res.StatusCode, Message: eb.Error}
	}
	if out == nil || res.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding %s %s: %w", method, path, err)
	}
	return nil
}

func (c *Client) users(ctx context.Context, path string) ([]UserRecord, error) {
	var users []UserRecord
	err := c.do(ctx, http.MethodGet, path, nil, &users)
	return users, err
}

func (c *Client) stats(ctx context.Context, path string) (StatsSnapshot, error) {
	var s StatsSnapshot
	err := c.do(ctx, http.MethodGet, path, nil, &s)
	return s, err
}

func (c *Client) fetch(ctx context.Context, path string) (string, error) {
	var r FetchResult
	err := c.do(ctx, http.MethodPost, path, nil, &r)
	return r.Result, err
}

func (c *Client) GetFollowingList(ctx context.Context) ([]UserRecord, error) {
	return c.users(ctx, PathFollowing)
}

func (c *Client) GetStats(ctx context.Context) (StatsSnapshot, error) {
	return c.stats(ctx, PathFollowingStats)
}

func (c *Client) GetFollowersList(ctx context.Context) ([]UserRecord, error) {
	return c.users(ctx, PathFollowers)
}

func (c *Client) GetFollowersStats(ctx context.Context) (StatsSnapshot, error) {
	return c.stats(ctx, PathFollowersStats)
}

func (c *Client) GetOwnedLists(ctx context.Context) ([]ListRecord, error) {
	var lists []ListRecord
	err := c.do(ctx, http.MethodGet, PathLists, nil, &lists)
	return lists, err
}

func (c *Client) GetListMembers(ctx context.Context, listID string) ([]UserRecord, error) {
	return c.users(ctx, PathListMembers(listID))
}

func (c *Client) GetListsStats(ctx context.Context) (StatsSnapshot, error) {
	return c.stats(ctx, PathListsStats)
}

func (c *Client) FetchNow(ctx context.Context) (string, error) {
	return c.fetch(ctx, PathFollowingFetch)
}

func (c *Client) FetchListsNow(ctx context.Context) (string, error) {
	return c.fetch(ctx, PathListsFetch)
}

func (c *Client) FetchFollowersNow(ctx context.Context) (string, error) {
	return c.fetch(ctx, PathFollowersFetch)
}

func (c *Client) GetAccounts(ctx context.Context) ([]AccountRecord, error) {
	var accounts []AccountRecord
	err := c.do(ctx, http.MethodGet, PathAccounts, nil, &accounts)
	return accounts, err
}

func (c *Client) GetSelectedAccount(ctx context.Context) (string, error) {
	var s SelectedAccount
	err := c.do(ctx, http.MethodGet, PathSelected, nil, &s)
	return s.UserID, err
}

func (c *Client) SelectAccount(ctx context.Context, userID string) error {
	return c.do(ctx, http.MethodPut, PathSelected, SelectedAccount{UserID: userID}, nil)
}

func (c *Client) AddNewAccount(ctx context.Context, username, bearerToken string) error {
	return c.do(ctx, http.MethodPost, PathAccounts, NewAccount{Username: username, BearerToken: bearerToken}, nil)
}

func (c *Client) RemoveAccountByID(ctx context.Context, userID string) error {
	return c.do(ctx, http.MethodDelete, PathAccount(userID), nil, nil)
}
