// Package view holds the per-tab state of the UI: which collection is loaded,
// how it is filtered and sorted, and which load is the current one. Nothing
// here touches the terminal.
package view

import "github.com/rootisgod/followgo/internal/social"

// Phase is where a collection is in its load cycle.
type Phase int

const (
	PhaseEmpty Phase = iota
	PhaseLoading
	PhaseLoaded
	PhaseError
)

func (p Phase) String() string {
	switch p {
	case PhaseEmpty:
		return "empty"
	case PhaseLoading:
		return "loading"
	case PhaseLoaded:
		return "loaded"
	case PhaseError:
		return "error"
	}
	return "unknown"
}

// Controller tracks one collection through Empty -> Loading -> Loaded|Error.
// Every load gets a generation number; a result whose generation is not the
// latest one is dropped.
type Controller[T any] struct {
	phase Phase
	gen   uint64
	items []T
	stats social.StatsSnapshot
	err   error
	ever  bool // a load has succeeded at least once
}

// Begin starts a new load and returns its generation. Items from the
// previous load stay available until the new one completes.
func (c *Controller[T]) Begin() uint64 {
	c.gen++
	c.phase = PhaseLoading
	return c.gen
}

// Complete stores the result of load gen. It reports false when gen is
// stale and the result was dropped. A failed load keeps the previous items.
func (c *Controller[T]) Complete(gen uint64, items []T, stats social.StatsSnapshot, err error) bool {
	if gen != c.gen || c.phase != PhaseLoading {
		return false
	}
	if err != nil {
		c.phase = PhaseError
		c.err = err
		return true
	}
	c.phase = PhaseLoaded
	c.items = items
	c.stats = stats
	c.err = nil
	c.ever = true
	return true
}

// Reset discards everything and invalidates any outstanding load.
func (c *Controller[T]) Reset() {
	c.gen++
	c.phase = PhaseEmpty
	c.items = nil
	c.stats = social.StatsSnapshot{}
	c.err = nil
	c.ever = false
}

func (c *Controller[T]) Phase() Phase                { return c.phase }
func (c *Controller[T]) Generation() uint64          { return c.gen }
func (c *Controller[T]) Loading() bool               { return c.phase == PhaseLoading }
func (c *Controller[T]) Items() []T                  { return c.items }
func (c *Controller[T]) Stats() social.StatsSnapshot { return c.stats }
func (c *Controller[T]) Err() error                  { return c.err }

// Visible returns the items that should be on screen: the loaded items, or
// the previous items while a reload is in flight. Nothing is shown in the
// Empty and Error phases.
func (c *Controller[T]) Visible() []T {
	switch c.phase {
	case PhaseLoaded:
		return c.items
	case PhaseLoading:
		if c.ever {
			return c.items
		}
	}
	return nil
}

// Placeholder is the message for an empty table in the current phase.
// emptyLoaded is used when a load succeeded with nothing to show.
func (c *Controller[T]) Placeholder(emptyLoaded string) string {
	switch c.phase {
	case PhaseEmpty:
		return "Not fetched yet"
	case PhaseLoading:
		return "Loading…"
	case PhaseError:
		return "Error loading data"
	}
	return emptyLoaded
}
