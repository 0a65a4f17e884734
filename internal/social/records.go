// Package social holds the records shown by followgo and the contract of the
// backend service that fetches, caches and serves them.
package social

import "time"

// UserRecord is one account in a following, followers or list-members
// collection. Records are snapshots received from the backend and are never
// mutated by the UI.
type UserRecord struct {
	Username        string   `json:"username" yaml:"username"`
	Name            string   `json:"name" yaml:"name"`
	Description     string   `json:"description" yaml:"description"`
	ProfileImageURL string   `json:"profile_image_url" yaml:"profile_image_url"`
	Verified        bool     `json:"verified" yaml:"verified"`
	FollowersCount  int      `json:"followers_count" yaml:"followers_count"`
	FollowingCount  int      `json:"following_count" yaml:"following_count"`
	TweetCount      int      `json:"tweet_count" yaml:"tweet_count"`
	Location        string   `json:"location" yaml:"location"`
	Lists           []string `json:"lists,omitempty" yaml:"lists,omitempty"` // only on list members
}

// StatsSnapshot describes the last refresh of one collection.
type StatsSnapshot struct {
	TotalCount     int        `json:"total_count" yaml:"total_count"`
	LastFetchAt    *time.Time `json:"last_fetch_at" yaml:"last_fetch_at"`
	CacheExpiresAt *time.Time `json:"cache_expires_at" yaml:"cache_expires_at"`
}

// AccountRecord is a backend-registered account. The credential itself
// never leaves the backend.
type AccountRecord struct {
	UserID   string `json:"user_id" yaml:"user_id"`
	Username string `json:"username" yaml:"username"`
}

// ListRecord is a curated list owned by the selected account.
type ListRecord struct {
	ID          string `json:"id" yaml:"id"`
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
	Private     bool   `json:"private" yaml:"private"`
	MemberCount int    `json:"member_count" yaml:"member_count"`
}
