package table

import (
	"fmt"
	"strings"
)

// Column describes one column of a table: how it renders as escaped markup,
// how it renders as terminal text, and which field it sorts by.
type Column[T any] struct {
	Title string
	Class string // td class attribute
	Width int    // terminal width; 0 leaves the column out of the terminal view
	Field Field  // empty when the column is not sortable

	HTML    func(T) string // cell markup, escaping everything it inserts; nil for terminal-only columns
	Text    func(T) string // plain cell text for the terminal
	Tooltip func(T) string // unescaped title attribute text, optional
}

// Table is a column specification plus the placeholder shown when there are
// no rows.
type Table[T any] struct {
	Name    string
	Columns []Column[T]
	Empty   string
}

// RenderHTML renders rows as the markup of a table body. An empty input
// renders a single placeholder row spanning every column.
func (t Table[T]) RenderHTML(rows []T) string {
	return t.RenderHTMLWithPlaceholder(rows, t.Empty)
}

// RenderHTMLWithPlaceholder is RenderHTML with a caller supplied placeholder
// message, used for the loading and error states.
func (t Table[T]) RenderHTMLWithPlaceholder(rows []T, placeholder string) string {
	cols := t.htmlColumns()
	if len(rows) == 0 {
		return fmt.Sprintf(`<tr><td colspan="%d" class="loading">%s</td></tr>`,
			len(cols), EscapeHTML(placeholder))
	}
	var b strings.Builder
	for _, row := range rows {
		b.WriteString("<tr>")
		for _, col := range cols {
			b.WriteString("<td")
			if col.Class != "" {
				fmt.Fprintf(&b, ` class="%s"`, EscapeHTML(col.Class))
			}
			if col.Tooltip != nil {
				fmt.Fprintf(&b, ` title="%s"`, EscapeHTML(col.Tooltip(row)))
			}
			b.WriteString(">")
			b.WriteString(col.HTML(row))
			b.WriteString("</td>")
		}
		b.WriteString("</tr>\n")
	}
	return b.String()
}

// RenderHeaderHTML renders the header row. The column sorted by key gets an
// arrow marker.
func (t Table[T]) RenderHeaderHTML(key SortKey) string {
	var b strings.Builder
	b.WriteString("<tr>")
	for _, col := range t.htmlColumns() {
		title := EscapeHTML(col.Title)
		if col.Field != "" && col.Field == key.Field {
			title += " " + key.Direction.Arrow()
		}
		if col.Field != "" {
			fmt.Fprintf(&b, `<th data-sort="%s">%s</th>`, EscapeHTML(string(col.Field)), title)
		} else {
			fmt.Fprintf(&b, "<th>%s</th>", title)
		}
	}
	b.WriteString("</tr>")
	return b.String()
}

func (t Table[T]) htmlColumns() []Column[T] {
	var cols []Column[T]
	for _, c := range t.Columns {
		if c.HTML != nil {
			cols = append(cols, c)
		}
	}
	return cols
}

// TerminalColumns returns the columns that have a terminal rendering.
func (t Table[T]) TerminalColumns() []Column[T] {
	var cols []Column[T]
	for _, c := range t.Columns {
		if c.Width > 0 && c.Text != nil {
			cols = append(cols, c)
		}
	}
	return cols
}

// SortableFields lists the fields of the sortable columns in column order.
func (t Table[T]) SortableFields() []Field {
	var fields []Field
	for _, c := range t.Columns {
		if c.Field != "" {
			fields = append(fields, c.Field)
		}
	}
	return fields
}

// Arrow is the header marker for the direction.
func (d Direction) Arrow() string {
	if d == Asc {
		return "▲"
	}
	return "▼"
}

const documentStyle = `body{font-family:system-ui,sans-serif;margin:2em}
table{border-collapse:collapse;width:100%}
th,td{padding:.4em .6em;border-bottom:1px solid #ddd;text-align:left;vertical-align:top}
.num-cell{text-align:right;font-variant-numeric:tabular-nums}
.avatar{width:32px;height:32px;border-radius:50%;background:#eee;display:inline-block}
.user-cell{display:flex;flex-direction:column}.user-handle{color:#777}
.verified-badge{color:#1d9bf0;margin-left:.3em}
.list-badge,.private-badge{background:#eef;border-radius:.6em;padding:0 .5em;margin-right:.3em;font-size:.85em}
.loading{text-align:center;color:#777;font-style:italic}`

// RenderDocument renders a standalone HTML page holding the table.
func (t Table[T]) RenderDocument(title string, rows []T, key SortKey) string {
	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n<html><head><meta charset=\"utf-8\">\n")
	fmt.Fprintf(&b, "<title>%s</title>\n<style>%s</style>\n</head><body>\n", EscapeHTML(title), documentStyle)
	fmt.Fprintf(&b, "<h1>%s</h1>\n<table>\n<thead>%s</thead>\n<tbody>\n", EscapeHTML(title), t.RenderHeaderHTML(key))
	b.WriteString(t.RenderHTML(rows))
	b.WriteString("</tbody>\n</table>\n</body></html>\n")
	return b.String()
}
