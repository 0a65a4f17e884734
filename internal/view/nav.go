package view

import (
	"errors"

	"github.com/rootisgod/followgo/internal/social"
)

// Tab is a top-level view.
type Tab int

const (
	TabFollowing Tab = iota
	TabFollowers
	TabLists
	tabCount
)

// HomeTab is the tab the periodic refresh reloads.
const HomeTab = TabFollowing

func (t Tab) String() string {
	switch t {
	case TabFollowing:
		return "Following"
	case TabFollowers:
		return "Followers"
	case TabLists:
		return "Lists"
	}
	return "?"
}

// Tabs lists the tabs in display order.
func Tabs() []Tab {
	return []Tab{TabFollowing, TabFollowers, TabLists}
}

// ListsMode is the sub-view of the Lists tab.
type ListsMode int

const (
	ListsGrid ListsMode = iota
	ListsMembers
)

var ErrNoListSelected = errors.New("no list selected")

// Navigator tracks the active tab and, on the Lists tab, whether the grid or
// one list's members are shown.
type Navigator struct {
	active Tab
	mode   ListsMode
	list   social.ListRecord
}

func (n *Navigator) Active() Tab                 { return n.active }
func (n *Navigator) Mode() ListsMode             { return n.mode }
func (n *Navigator) OpenList() social.ListRecord { return n.list }

// Switch makes t the active tab. Entering any tab shows the lists grid,
// not a previously opened list.
func (n *Navigator) Switch(t Tab) {
	if t < 0 || t >= tabCount {
		return
	}
	n.active = t
	n.mode = ListsGrid
	n.list = social.ListRecord{}
}

// Next and Prev cycle through the tabs.
func (n *Navigator) Next() Tab { return (n.active + 1) % tabCount }
func (n *Navigator) Prev() Tab { return (n.active + tabCount - 1) % tabCount }

// Open enters the member view of l. It fails without a list id.
func (n *Navigator) Open(l social.ListRecord) error {
	if l.ID == "" {
		return ErrNoListSelected
	}
	n.active = TabLists
	n.mode = ListsMembers
	n.list = l
	return nil
}

// Back leaves the member view. It reports whether anything changed.
func (n *Navigator) Back() bool {
	if n.active != TabLists || n.mode != ListsMembers {
		return false
	}
	n.mode = ListsGrid
	n.list = social.ListRecord{}
	return true
}
