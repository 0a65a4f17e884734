// styles.go - Lipgloss styles, rebuilt whenever the theme changes
package main

import "github.com/charmbracelet/lipgloss"

// ─── Title / Tabs ──────────────────────────────────────────────────────────────

var (
	titleBarStyle     lipgloss.Style
	titleAccountStyle lipgloss.Style
	tabStyle          lipgloss.Style
	tabActiveStyle    lipgloss.Style
	statsStyle        lipgloss.Style
	statsFreshStyle   lipgloss.Style
	breadcrumbStyle   lipgloss.Style
)

// ─── Table ─────────────────────────────────────────────────────────────────────

var (
	tableHeaderStyle   lipgloss.Style
	tableCellStyle     lipgloss.Style
	tableSelectedStyle lipgloss.Style
	tableCursorStyle   lipgloss.Style
	tableEmptyStyle    lipgloss.Style
	tableErrorStyle    lipgloss.Style
	tableSepStyle      lipgloss.Style
	verifiedStyle      lipgloss.Style
)

// ─── Footer / Status / Filter ──────────────────────────────────────────────────

var (
	footerKeyStyle      lipgloss.Style
	footerDescStyle     lipgloss.Style
	footerStyle         lipgloss.Style
	statusStyle         lipgloss.Style
	statusErrorStyle    lipgloss.Style
	filterActiveStyle   lipgloss.Style
	filterInactiveStyle lipgloss.Style
)

// ─── Modal / Form / Loading ────────────────────────────────────────────────────

var (
	modalStyle            lipgloss.Style
	modalTitleStyle       lipgloss.Style
	modalTextStyle        lipgloss.Style
	errorTitleStyle       lipgloss.Style
	formTitleStyle        lipgloss.Style
	formLabelStyle        lipgloss.Style
	formActiveLabelStyle  lipgloss.Style
	formValueStyle        lipgloss.Style
	formButtonStyle       lipgloss.Style
	formActiveButtonStyle lipgloss.Style
	formBusyButtonStyle   lipgloss.Style
	formHintStyle         lipgloss.Style
	formErrorStyle        lipgloss.Style
	spinnerStyle          lipgloss.Style
	loadingMsgStyle       lipgloss.Style
)

func init() {
	rebuildStyles()
}

// rebuildStyles derives every style from the current theme.
func rebuildStyles() {
	t := currentTheme()

	titleBarStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFFFFF")).Background(t.Accent).Padding(0, 1)
	titleAccountStyle = lipgloss.NewStyle().Foreground(t.AccentLight).Background(t.Accent).PaddingRight(1)
	tabStyle = lipgloss.NewStyle().Foreground(t.Subtle).Padding(0, 1)
	tabActiveStyle = lipgloss.NewStyle().Foreground(t.Highlight).Background(t.Surface).Bold(true).Padding(0, 1)
	statsStyle = lipgloss.NewStyle().Foreground(t.Subtle).PaddingLeft(2)
	statsFreshStyle = lipgloss.NewStyle().Foreground(t.Verified)
	breadcrumbStyle = lipgloss.NewStyle().Foreground(t.AccentLight).Bold(true).PaddingLeft(2)

	tableHeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(t.Accent).PaddingRight(2)
	tableCellStyle = lipgloss.NewStyle().Foreground(t.Text).PaddingRight(2)
	tableSelectedStyle = lipgloss.NewStyle().Background(t.Surface).Foreground(t.Highlight).Bold(true).PaddingRight(2)
	tableCursorStyle = lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	tableEmptyStyle = lipgloss.NewStyle().Foreground(t.Subtle).Italic(true).PaddingLeft(3)
	tableErrorStyle = lipgloss.NewStyle().Foreground(t.Error).Italic(true).PaddingLeft(3)
	tableSepStyle = lipgloss.NewStyle().Foreground(t.Subtle)
	verifiedStyle = lipgloss.NewStyle().Foreground(t.Verified).Bold(true)

	footerKeyStyle = lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	footerDescStyle = lipgloss.NewStyle().Foreground(t.Subtle)
	footerStyle = lipgloss.NewStyle().PaddingLeft(1)
	statusStyle = lipgloss.NewStyle().Foreground(t.TextMuted).PaddingLeft(2)
	statusErrorStyle = lipgloss.NewStyle().Foreground(t.Error).PaddingLeft(2)
	filterActiveStyle = lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	filterInactiveStyle = lipgloss.NewStyle().Foreground(t.Subtle)

	modalStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(t.Accent).Padding(1, 3).MaxWidth(80)
	modalTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(t.Accent).MarginBottom(1)
	modalTextStyle = lipgloss.NewStyle().Foreground(t.TextMuted)
	errorTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(t.Error)
	formTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(t.Accent).MarginBottom(1)
	formLabelStyle = lipgloss.NewStyle().Foreground(t.Subtle)
	formActiveLabelStyle = lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	formValueStyle = lipgloss.NewStyle().Foreground(t.Highlight)
	formButtonStyle = lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface).Padding(0, 2)
	formActiveButtonStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFFFFF")).Background(t.Accent).Bold(true).Padding(0, 2)
	formBusyButtonStyle = lipgloss.NewStyle().Foreground(t.Busy).Background(t.Surface).Italic(true).Padding(0, 2)
	formHintStyle = lipgloss.NewStyle().Foreground(t.Subtle).Italic(true)
	formErrorStyle = lipgloss.NewStyle().Foreground(t.Error)
	spinnerStyle = lipgloss.NewStyle().Foreground(t.Busy)
	loadingMsgStyle = lipgloss.NewStyle().Foreground(t.TextMuted).MarginLeft(1)
}
