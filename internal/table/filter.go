package table

import (
	"strings"

	"github.com/rootisgod/followgo/internal/social"
	"golang.org/x/text/cases"
)

// Filter keeps the records whose username, name or description contains
// query, ignoring case. Input order is preserved and an empty query keeps
// everything. The input slice is not modified.
func Filter(records []social.UserRecord, query string) []social.UserRecord {
	fold := cases.Fold()
	q := fold.String(query)
	out := make([]social.UserRecord, 0, len(records))
	for _, r := range records {
		if q == "" ||
			strings.Contains(fold.String(r.Username), q) ||
			strings.Contains(fold.String(r.Name), q) ||
			strings.Contains(fold.String(r.Description), q) {
			out = append(out, r)
		}
	}
	return out
}

// FilterLists is Filter for the lists grid: it matches name and description.
func FilterLists(lists []social.ListRecord, query string) []social.ListRecord {
	fold := cases.Fold()
	q := fold.String(query)
	out := make([]social.ListRecord, 0, len(lists))
	for _, l := range lists {
		if q == "" ||
			strings.Contains(fold.String(l.Name), q) ||
			strings.Contains(fold.String(l.Description), q) {
			out = append(out, l)
		}
	}
	return out
}
