// themes.go - Color themes for the TUI
package main

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// theme holds every configurable color of the TUI.
type theme struct {
	Name        string
	Accent      lipgloss.Color
	AccentLight lipgloss.Color
	Subtle      lipgloss.Color
	Dimmed      lipgloss.Color
	Highlight   lipgloss.Color
	Surface     lipgloss.Color
	Text        lipgloss.Color // table cells
	TextMuted   lipgloss.Color // modal bodies, secondary text
	Verified    lipgloss.Color // verified badge, fresh stats
	Error       lipgloss.Color
	Busy        lipgloss.Color // loading and in-flight fetches
}

// themes is cycled with "t". The config may name one by Name.
var themes = []theme{
	{
		Name: "Violet", Accent: "#7C3AED", AccentLight: "#A78BFA",
		Subtle: "#6C6C6C", Dimmed: "#4A4A4A", Highlight: "#E8E8E8",
		Surface: "#2A2A2A", Text: "#BBBBBB", TextMuted: "#CCCCCC",
		Verified: "#1D9BF0", Error: "#EF4444", Busy: "#F59E0B",
	},
	{
		Name: "Dracula", Accent: "#BD93F9", AccentLight: "#D6BCFA",
		Subtle: "#6272A4", Dimmed: "#44475A", Highlight: "#F8F8F2",
		Surface: "#282A36", Text: "#BFBFBF", TextMuted: "#F8F8F2",
		Verified: "#8BE9FD", Error: "#FF5555", Busy: "#FFB86C",
	},
	{
		Name: "Tokyo Night", Accent: "#7AA2F7", AccentLight: "#89DDFF",
		Subtle: "#565F89", Dimmed: "#3B4261", Highlight: "#C0CAF5",
		Surface: "#1A1B26", Text: "#A9B1D6", TextMuted: "#C0CAF5",
		Verified: "#7DCFFF", Error: "#F7768E", Busy: "#E0AF68",
	},
	{
		Name: "Nord", Accent: "#88C0D0", AccentLight: "#8FBCBB",
		Subtle: "#4C566A", Dimmed: "#3B4252", Highlight: "#ECEFF4",
		Surface: "#2E3440", Text: "#D8DEE9", TextMuted: "#ECEFF4",
		Verified: "#81A1C1", Error: "#BF616A", Busy: "#EBCB8B",
	},
	{
		Name: "Gruvbox", Accent: "#FE8019", AccentLight: "#FABD2F",
		Subtle: "#928374", Dimmed: "#665C54", Highlight: "#EBDBB2",
		Surface: "#282828", Text: "#BDAE93", TextMuted: "#EBDBB2",
		Verified: "#83A598", Error: "#FB4934", Busy: "#FABD2F",
	},
	{
		Name: "Solarized", Accent: "#268BD2", AccentLight: "#2AA198",
		Subtle: "#586E75", Dimmed: "#073642", Highlight: "#FDF6E3",
		Surface: "#002B36", Text: "#93A1A1", TextMuted: "#EEE8D5",
		Verified: "#2AA198", Error: "#DC322F", Busy: "#B58900",
	},
}

var currentThemeIndex = 0

func currentTheme() theme {
	return themes[currentThemeIndex]
}

// themeIndex finds a theme by case-insensitive name. Unknown names map to
// the first theme.
func themeIndex(name string) int {
	for i, t := range themes {
		if strings.EqualFold(t.Name, name) {
			return i
		}
	}
	return 0
}

// setTheme switches to the given theme index and rebuilds all styles.
func setTheme(index int) {
	if index < 0 || index >= len(themes) {
		return
	}
	currentThemeIndex = index
	rebuildStyles()
}

func nextTheme() theme {
	setTheme((currentThemeIndex + 1) % len(themes))
	return currentTheme()
}
