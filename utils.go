// utils.go - Utility functions
package main

import (
	"strings"
	"time"

	"github.com/mattn/go-runewidth"
	"github.com/rootisgod/followgo/internal/social"
	"github.com/rootisgod/followgo/internal/table"
)

// truncate cuts s to at most width terminal cells, appending "…" if
// truncated. East Asian wide runes and emoji count as two cells.
func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return runewidth.Truncate(s, width, "…")
}

// fit truncates s and pads it with spaces to exactly width cells.
func fit(s string, width int) string {
	return runewidth.FillRight(truncate(s, width), width)
}

// singleLine folds newlines and tabs in profile text into spaces.
func singleLine(s string) string {
	if !strings.ContainsAny(s, "\r\n\t") {
		return s
	}
	return strings.Join(strings.Fields(s), " ")
}

// statsLine summarizes a collection's stats:
// "1.2K total · Last: 2026-05-01 12:00:00 · cache until 12:15".
func statsLine(s social.StatsSnapshot, now time.Time) string {
	parts := []string{table.FormatNumber(s.TotalCount) + " total"}
	if s.LastFetchAt == nil {
		parts = append(parts, "Not fetched yet")
	} else {
		parts = append(parts, "Last: "+s.LastFetchAt.Local().Format("2006-01-02 15:04:05"))
	}
	if s.CacheExpiresAt != nil {
		if s.CacheExpiresAt.After(now) {
			parts = append(parts, "cache until "+s.CacheExpiresAt.Local().Format("15:04"))
		} else {
			parts = append(parts, "cache expired")
		}
	}
	return strings.Join(parts, " · ")
}
