// export.go - Writes the displayed table as a standalone HTML document
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rootisgod/followgo/internal/view"
)

// exportTitle is the heading of an exported page, e.g. "@demo · followers".
func exportTitle(account string, t view.Target, listName string) string {
	what := t.String()
	if t == view.TargetMembers && listName != "" {
		what = "members of " + listName
	}
	if account == "" {
		return appName + " · " + what
	}
	return "@" + account + " · " + what
}

// exportFileName builds "followgo-<account>-<what>-<stamp>.html".
func exportFileName(account, what string, now time.Time) string {
	parts := []string{appName}
	if account != "" {
		parts = append(parts, account)
	}
	parts = append(parts, strings.ReplaceAll(what, " ", "-"), now.Format(exportTimeLayout))
	return sanitizeFileName(strings.Join(parts, "-")) + ".html"
}

func sanitizeFileName(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_', r == '.':
			return r
		}
		return '_'
	}, s)
}

// writeExport writes doc into dir, creating dir if needed.
func writeExport(dir, name, doc string) (string, error) {
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating export dir: %w", err)
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		return "", fmt.Errorf("writing export: %w", err)
	}
	return path, nil
}

func exportCmd(dir, name, doc string) tea.Cmd {
	return func() tea.Msg {
		path, err := writeExport(dir, name, doc)
		return exportResultMsg{path: path, err: err}
	}
}
