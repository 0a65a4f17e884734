package table

import (
	"cmp"
	"slices"

	"github.com/rootisgod/followgo/internal/social"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Field names a sortable UserRecord attribute. Values match the JSON names.
type Field string

const (
	FieldUsername    Field = "username"
	FieldName        Field = "name"
	FieldDescription Field = "description"
	FieldLocation    Field = "location"
	FieldFollowers   Field = "followers_count"
	FieldFollowing   Field = "following_count"
	FieldTweets      Field = "tweet_count"
)

// Direction is the sort order.
type Direction string

const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

// Flip returns the opposite direction.
func (d Direction) Flip() Direction {
	if d == Desc {
		return Asc
	}
	return Desc
}

// SortKey is the active sort field and direction of a table.
type SortKey struct {
	Field     Field
	Direction Direction
}

// DefaultSortKey orders by follower count, largest first.
var DefaultSortKey = SortKey{Field: FieldFollowers, Direction: Desc}

// Toggle returns the key after the user asks to sort by field: the same field
// flips direction, a new field starts descending.
func (k SortKey) Toggle(field Field) SortKey {
	if k.Field == field {
		return SortKey{Field: field, Direction: k.Direction.Flip()}
	}
	return SortKey{Field: field, Direction: Desc}
}

func (f Field) numeric() bool {
	switch f {
	case FieldFollowers, FieldFollowing, FieldTweets:
		return true
	}
	return false
}

func (f Field) text(r *social.UserRecord) string {
	switch f {
	case FieldUsername:
		return r.Username
	case FieldName:
		return r.Name
	case FieldDescription:
		return r.Description
	case FieldLocation:
		return r.Location
	}
	return ""
}

func (f Field) number(r *social.UserRecord) int {
	switch f {
	case FieldFollowers:
		return r.FollowersCount
	case FieldFollowing:
		return r.FollowingCount
	case FieldTweets:
		return r.TweetCount
	}
	return 0
}

// Sort returns a new slice ordered by key. Text fields use case-insensitive
// collation for locale; numeric fields compare by value. The sort is stable,
// so equal keys keep their input order.
func Sort(records []social.UserRecord, key SortKey, locale language.Tag) []social.UserRecord {
	out := slices.Clone(records)
	if out == nil {
		out = []social.UserRecord{}
	}
	var compare func(a, b *social.UserRecord) int
	if key.Field.numeric() {
		compare = func(a, b *social.UserRecord) int {
			return cmp.Compare(key.Field.number(a), key.Field.number(b))
		}
	} else {
		coll := collate.New(locale, collate.IgnoreCase)
		compare = func(a, b *social.UserRecord) int {
			return coll.CompareString(key.Field.text(a), key.Field.text(b))
		}
	}
	slices.SortStableFunc(out, func(a, b social.UserRecord) int {
		c := compare(&a, &b)
		if key.Direction == Desc {
			return -c
		}
		return c
	})
	return out
}
