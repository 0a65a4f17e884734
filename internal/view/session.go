package view

import (
	"github.com/rootisgod/followgo/internal/social"
	"golang.org/x/text/language"
)

// Target names a collection that can be loaded.
type Target int

const (
	TargetFollowing Target = iota
	TargetFollowers
	TargetLists
	TargetMembers
)

func (t Target) String() string {
	switch t {
	case TargetFollowing:
		return "following"
	case TargetFollowers:
		return "followers"
	case TargetLists:
		return "lists"
	case TargetMembers:
		return "list members"
	}
	return "?"
}

// LoadRequest identifies one load: what to load and which generation of
// that collection it belongs to.
type LoadRequest struct {
	Target Target
	Gen    uint64
	ListID string // TargetMembers only
}

// LoadResult is the answer to a LoadRequest.
type LoadResult struct {
	Request LoadRequest
	Users   []social.UserRecord
	Lists   []social.ListRecord
	Stats   social.StatsSnapshot
	Err     error
}

// Session owns the state of every tab. It is used from a single goroutine.
type Session struct {
	Nav       Navigator
	Following *UserView
	Followers *UserView
	Members   *UserView
	Lists     *ListsView

	stale map[Target]bool // refreshed while a load was in flight
}

func NewSession(locale language.Tag) *Session {
	return &Session{
		Following: NewUserView(locale),
		Followers: NewUserView(locale),
		Members:   NewUserView(locale),
		Lists:     &ListsView{},
		stale:     map[Target]bool{},
	}
}

// TabTarget is the collection a tab's fetch-now refreshes.
func TabTarget(tab Tab) Target {
	switch tab {
	case TabFollowers:
		return TargetFollowers
	case TabLists:
		return TargetLists
	}
	return TargetFollowing
}

// ActiveTarget is the collection on screen.
func (s *Session) ActiveTarget() Target {
	switch s.Nav.Active() {
	case TabFollowers:
		return TargetFollowers
	case TabLists:
		if s.Nav.Mode() == ListsMembers {
			return TargetMembers
		}
		return TargetLists
	}
	return TargetFollowing
}

// Users returns the user view of t, or nil for the lists grid.
func (s *Session) Users(t Target) *UserView {
	switch t {
	case TargetFollowing:
		return s.Following
	case TargetFollowers:
		return s.Followers
	case TargetMembers:
		return s.Members
	}
	return nil
}

func (s *Session) loading(t Target) bool {
	if t == TargetLists {
		return s.Lists.Loading()
	}
	return s.Users(t).Loading()
}

func (s *Session) begin(t Target) LoadRequest {
	req := LoadRequest{Target: t}
	if t == TargetLists {
		req.Gen = s.Lists.Begin()
	} else {
		req.Gen = s.Users(t).Begin()
	}
	if t == TargetMembers {
		req.ListID = s.Nav.OpenList().ID
	}
	return req
}

// Activate switches to tab, resets its state to the defaults and starts a
// load. Any outstanding load of that tab becomes stale.
func (s *Session) Activate(tab Tab) LoadRequest {
	s.Nav.Switch(tab)
	switch tab {
	case TabFollowers:
		s.Followers.Reset()
	case TabLists:
		s.Lists.Reset()
		s.Members.Reset()
	default:
		s.Following.Reset()
	}
	delete(s.stale, TabTarget(tab))
	return s.begin(s.ActiveTarget())
}

// Reload starts a new load of the active collection keeping its sort and
// filter. It reports false when a load of that collection is in flight.
func (s *Session) Reload() (LoadRequest, bool) {
	return s.ReloadTarget(s.ActiveTarget())
}

// ReloadTarget is Reload for a specific collection.
func (s *Session) ReloadTarget(t Target) (LoadRequest, bool) {
	if s.loading(t) {
		return LoadRequest{}, false
	}
	if t == TargetMembers && s.Nav.Mode() != ListsMembers {
		return LoadRequest{}, false
	}
	return s.begin(t), true
}

// Refresh reloads t after the backend data behind it changed. When t is
// loading, the in-flight load is marked stale and Settled re-issues it.
func (s *Session) Refresh(t Target) (LoadRequest, bool) {
	if s.loading(t) {
		s.stale[t] = true
		return LoadRequest{}, false
	}
	return s.ReloadTarget(t)
}

// Settled returns the reload owed to t once its load has finished.
func (s *Session) Settled(t Target) (LoadRequest, bool) {
	if !s.stale[t] || s.loading(t) {
		return LoadRequest{}, false
	}
	delete(s.stale, t)
	return s.ReloadTarget(t)
}

// OpenList shows the members of l and starts loading them. Members are
// never reused from an earlier visit.
func (s *Session) OpenList(l social.ListRecord) (LoadRequest, error) {
	if err := s.Nav.Open(l); err != nil {
		return LoadRequest{}, err
	}
	s.Members.Reset()
	return s.begin(TargetMembers), nil
}

// Back returns from a list's members to the grid and drops the members.
func (s *Session) Back() bool {
	if !s.Nav.Back() {
		return false
	}
	s.Members.Reset()
	return true
}

// InvalidateAll drops every collection, for example after the selected
// account changed.
func (s *Session) InvalidateAll() {
	s.Following.Reset()
	s.Followers.Reset()
	s.Members.Reset()
	s.Lists.Reset()
	clear(s.stale)
}

// Apply stores a load result. It reports false when the result was stale.
func (s *Session) Apply(res LoadResult) bool {
	req := res.Request
	switch req.Target {
	case TargetLists:
		return s.Lists.Complete(req.Gen, res.Lists, res.Stats, res.Err)
	case TargetMembers:
		if req.ListID != s.Nav.OpenList().ID {
			return false
		}
	}
	v := s.Users(req.Target)
	if v == nil {
		return false
	}
	return v.Complete(req.Gen, res.Users, res.Stats, res.Err)
}
