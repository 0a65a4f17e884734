package social

import (
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v2"
)

// Fixtures is the YAML document the in-memory backend serves from.
type Fixtures struct {
	Selected string           `yaml:"selected"`
	CacheTTL time.Duration    `yaml:"cache-ttl"` // e.g. 15m; zero leaves cache_expires_at unset
	Accounts []FixtureAccount `yaml:"accounts"`
}

// FixtureAccount is a registered account with everything the backend knows
// about it.
type FixtureAccount struct {
	AccountRecord `yaml:",inline"`
	Token         string `yaml:"token"`

	Following      []UserRecord  `yaml:"following"`
	Followers      []UserRecord  `yaml:"followers"`
	Lists          []FixtureList `yaml:"lists"`
	FollowingStats StatsSnapshot `yaml:"following-stats"`
	FollowersStats StatsSnapshot `yaml:"followers-stats"`
	ListsStats     StatsSnapshot `yaml:"lists-stats"`
}

// FixtureList is an owned list and its members.
type FixtureList struct {
	ListRecord `yaml:",inline"`
	Members    []UserRecord `yaml:"members"`
}

// LoadFixtures reads a fixture file.
func LoadFixtures(filename string) (*Fixtures, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	fx, err := ParseFixtures(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return fx, nil
}

// ParseFixtures decodes a fixture document.
func ParseFixtures(r io.Reader) (*Fixtures, error) {
	fx := &Fixtures{}
	if err := yaml.NewDecoder(r).Decode(fx); err != nil && err != io.EOF {
		return nil, fmt.Errorf("decoding fixtures: %w", err)
	}
	for i := range fx.Accounts {
		a := &fx.Accounts[i]
		if a.UserID == "" {
			return nil, fmt.Errorf("account #%d (@%s) has no user_id", i+1, a.Username)
		}
	}
	fx.normalize()
	return fx, nil
}

func (fx *Fixtures) normalize() {
	for i := range fx.Accounts {
		a := &fx.Accounts[i]
		for j := range a.Lists {
			if a.Lists[j].MemberCount == 0 {
				a.Lists[j].MemberCount = len(a.Lists[j].Members)
			}
		}
	}
}

// DemoFixtures is the small data set used when no fixture file is configured.
func DemoFixtures() *Fixtures {
	following := []UserRecord{
		{Username: "alice", Name: "Alice A", Description: "Distributed systems, coffee, cats",
			Verified: true, FollowersCount: 1200, FollowingCount: 310, TweetCount: 8800, Location: "Berlin"},
		{Username: "bob", Name: "Bob B", Description: "Writes about <html> & other things",
			FollowersCount: 500, FollowingCount: 120, TweetCount: 430, Location: "Lisbon"},
		{Username: "celine", Name: "Céline Dubois", Description: "Typographe",
			FollowersCount: 2_340_000, FollowingCount: 87, TweetCount: 15_400, Location: "Paris"},
		{Username: "dmitri", Name: "Dmitri", FollowersCount: 999, FollowingCount: 1_000, TweetCount: 12},
	}
	followers := []UserRecord{following[1], following[3],
		{Username: "eve", Name: "Eve", Description: "security researcher", FollowersCount: 42_000,
			FollowingCount: 900, TweetCount: 23_000, Location: "Remote"}}
	return &Fixtures{
		Selected: "1001",
		CacheTTL: 15 * time.Minute,
		Accounts: []FixtureAccount{{
			AccountRecord: AccountRecord{UserID: "1001", Username: "demo"},
			Token:         "demo-token",
			Following:     following,
			Followers:     followers,
			Lists: []FixtureList{
				{ListRecord: ListRecord{ID: "l1", Name: "Systems", Description: "People who ship infra"},
					Members: []UserRecord{following[0], following[3]}},
				{ListRecord: ListRecord{ID: "l2", Name: "Design", Description: "Type and layout", Private: true},
					Members: []UserRecord{following[2], following[0]}},
			},
		}},
	}
}
