// view_table.go - Scrolling terminal table over a column specification
package main

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rootisgod/followgo/internal/social"
	"github.com/rootisgod/followgo/internal/table"
)

// ─── Cursor ────────────────────────────────────────────────────────────────────

// tableCursor is the highlighted row and the first visible row.
type tableCursor struct {
	pos    int
	offset int
}

// clamp keeps the cursor inside n rows with visible rows on screen.
func (c *tableCursor) clamp(n, visible int) {
	if c.pos >= n {
		c.pos = n - 1
	}
	if c.pos < 0 {
		c.pos = 0
	}
	if c.pos < c.offset {
		c.offset = c.pos
	}
	if c.pos >= c.offset+visible {
		c.offset = c.pos - visible + 1
	}
	if c.offset < 0 {
		c.offset = 0
	}
}

// navigate handles the movement keys. It reports whether msg was one.
func (c *tableCursor) navigate(msg tea.KeyMsg, n, visible int) bool {
	switch {
	case key.Matches(msg, tableKeys.Up):
		c.pos--
	case key.Matches(msg, tableKeys.Down):
		c.pos++
	case key.Matches(msg, tableKeys.Top):
		c.pos = 0
	case key.Matches(msg, tableKeys.Bottom):
		c.pos = n - 1
	case key.Matches(msg, tableKeys.PageUp):
		c.pos -= visible
	case key.Matches(msg, tableKeys.PageDown):
		c.pos += visible
	default:
		return false
	}
	c.clamp(n, visible)
	return true
}

// ─── Filter Bar ────────────────────────────────────────────────────────────────

type filterBar struct {
	input   textinput.Model
	focused bool
	visible bool
}

func newFilterBar() filterBar {
	ti := textinput.New()
	ti.Placeholder = "name, @handle or bio…"
	ti.Prompt = "Filter: "
	ti.PromptStyle = filterActiveStyle
	ti.CharLimit = filterCharLimit
	return filterBar{input: ti}
}

func (f *filterBar) value() string { return f.input.Value() }

func (f *filterBar) toggle() tea.Cmd {
	if f.visible && f.focused {
		f.blur()
		return nil
	}
	f.visible = true
	f.focused = true
	return f.input.Focus()
}

func (f *filterBar) blur() {
	f.focused = false
	f.input.Blur()
	if f.value() == "" {
		f.visible = false
	}
}

// reset shows q, or hides the bar when q is empty.
func (f *filterBar) reset(q string) {
	f.input.SetValue(q)
	f.focused = false
	f.input.Blur()
	f.visible = q != ""
}

// update feeds a key to the focused input. changed reports whether the
// query text changed.
func (f *filterBar) update(msg tea.KeyMsg) (cmd tea.Cmd, changed bool) {
	switch msg.String() {
	case "esc", "enter":
		f.blur()
		return nil, false
	}
	before := f.value()
	f.input, cmd = f.input.Update(msg)
	return cmd, f.value() != before
}

func (f filterBar) View() string {
	if !f.visible {
		return ""
	}
	if f.focused {
		return f.input.View() + "\n"
	}
	return filterInactiveStyle.Render("  Filter: "+f.value()) + "\n"
}

// ─── Rendering ─────────────────────────────────────────────────────────────────

// gridSpec is what renderGrid needs to draw one table.
type gridSpec[T any] struct {
	columns []table.Column[T]
	rows    []T
	sort    *table.SortKey // nil when the table is not sortable
	cursor  tableCursor
	width   int
	visible int
	empty   string                                          // placeholder when rows is empty
	failed  bool                                            // placeholder is an error
	style   func(col table.Column[T], row T) (string, bool) // optional cell override
}

// layoutWidths returns the column widths for the terminal width. Extra room
// goes to the description column; a narrow terminal squeezes it down to
// minDescWidth.
func layoutWidths[T any](cols []table.Column[T], width int) []int {
	widths := make([]int, len(cols))
	total := 2 // cursor prefix
	desc := -1
	for i, c := range cols {
		widths[i] = c.Width
		total += c.Width + 2 // cell padding
		if c.Class == "desc-cell" {
			desc = i
		}
	}
	if desc < 0 || width <= 0 {
		return widths
	}
	extra := width - total
	widths[desc] = max(minDescWidth, widths[desc]+extra)
	return widths
}

func renderGrid[T any](g gridSpec[T]) string {
	var b strings.Builder
	widths := layoutWidths(g.columns, g.width)

	// Header
	var header []string
	for i, col := range g.columns {
		title := col.Title
		if g.sort != nil && col.Field != "" && col.Field == g.sort.Field {
			title += " " + g.sort.Direction.Arrow()
		}
		header = append(header, tableHeaderStyle.Render(fit(title, widths[i])))
	}
	b.WriteString("  " + strings.Join(header, "") + "\n")

	sepLen := 0
	for _, w := range widths {
		sepLen += w + 2
	}
	if g.width > 0 {
		sepLen = min(sepLen, g.width-2)
	}
	b.WriteString("  " + tableSepStyle.Render(strings.Repeat("─", max(sepLen, 0))) + "\n")

	// Rows
	rendered := 0
	if len(g.rows) == 0 {
		style := tableEmptyStyle
		if g.failed {
			style = tableErrorStyle
		}
		b.WriteString(style.Render(g.empty) + "\n")
		rendered = 1
	} else {
		end := min(g.cursor.offset+g.visible, len(g.rows))
		for i := g.cursor.offset; i < end; i++ {
			b.WriteString(renderGridRow(g, widths, g.rows[i], i == g.cursor.pos) + "\n")
			rendered++
		}
	}
	for i := rendered; i < g.visible; i++ {
		b.WriteString("\n")
	}
	return b.String()
}

func renderGridRow[T any](g gridSpec[T], widths []int, row T, selected bool) string {
	cells := make([]string, len(g.columns))
	for i, col := range g.columns {
		text := fit(singleLine(col.Text(row)), widths[i])
		style := tableCellStyle
		if selected {
			style = tableSelectedStyle
		}
		if g.style != nil && !selected {
			if styled, ok := g.style(col, row); ok {
				text = fit(styled, widths[i])
				style = verifiedStyle.PaddingRight(2)
			}
		}
		cells[i] = style.Render(text)
	}
	prefix := "  "
	if selected {
		prefix = tableCursorStyle.Render("▸ ")
	}
	return prefix + strings.Join(cells, "")
}

// verifiedName highlights the name cell of verified accounts.
func verifiedName(col table.Column[social.UserRecord], u social.UserRecord) (string, bool) {
	if col.Field != table.FieldName || !u.Verified {
		return "", false
	}
	return col.Text(u), true
}

// nextSortField is the sortable field after current, wrapping around.
func nextSortField(fields []table.Field, current table.Field) table.Field {
	for i, f := range fields {
		if f == current {
			return fields[(i+1)%len(fields)]
		}
	}
	if len(fields) == 0 {
		return current
	}
	return fields[0]
}
