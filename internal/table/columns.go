package table

import (
	"fmt"
	"strings"

	"github.com/rootisgod/followgo/internal/social"
)

const verifiedBadge = `<span class="verified-badge">&#x2713;</span>`

func avatarHTML(u social.UserRecord) string {
	if u.ProfileImageURL == "" {
		return `<div class="avatar"></div>`
	}
	return fmt.Sprintf(`<img class="avatar" src="%s" alt="" loading="lazy">`, EscapeHTML(u.ProfileImageURL))
}

func userHTML(u social.UserRecord) string {
	name := EscapeHTML(u.Name)
	if u.Verified {
		name += verifiedBadge
	}
	return fmt.Sprintf(`<div class="user-cell"><span class="user-name">%s</span><span class="user-handle">@%s</span></div>`,
		name, EscapeHTML(u.Username))
}

func userText(u social.UserRecord) string {
	name := u.Name
	if u.Verified {
		name += " ✓"
	}
	return name
}

func listsHTML(u social.UserRecord) string {
	var b strings.Builder
	for _, l := range u.Lists {
		fmt.Fprintf(&b, `<span class="list-badge">%s</span>`, EscapeHTML(l))
	}
	return b.String()
}

func listsText(u social.UserRecord) string {
	chips := make([]string, len(u.Lists))
	for i, l := range u.Lists {
		chips[i] = "[" + l + "]"
	}
	return strings.Join(chips, " ")
}

func countColumn(title string, field Field, get func(social.UserRecord) int) Column[social.UserRecord] {
	return Column[social.UserRecord]{
		Title: title,
		Class: "num-cell",
		Width: 10,
		Field: field,
		HTML:  func(u social.UserRecord) string { return FormatNumber(get(u)) },
		Text:  func(u social.UserRecord) string { return FormatNumber(get(u)) },
	}
}

func userColumns(withLists bool) []Column[social.UserRecord] {
	cols := []Column[social.UserRecord]{
		{Title: "", HTML: avatarHTML},
		{Title: "Name", Width: 22, Field: FieldName, HTML: userHTML, Text: userText},
		// markup shows the handle inside the name cell
		{Title: "Handle", Width: 18, Field: FieldUsername,
			Text: func(u social.UserRecord) string { return "@" + u.Username }},
		{Title: "Description", Class: "desc-cell", Width: 36, Field: FieldDescription,
			HTML:    func(u social.UserRecord) string { return EscapeHTML(u.Description) },
			Text:    func(u social.UserRecord) string { return u.Description },
			Tooltip: func(u social.UserRecord) string { return u.Description }},
		countColumn("Followers", FieldFollowers, func(u social.UserRecord) int { return u.FollowersCount }),
		countColumn("Following", FieldFollowing, func(u social.UserRecord) int { return u.FollowingCount }),
		countColumn("Tweets", FieldTweets, func(u social.UserRecord) int { return u.TweetCount }),
		{Title: "Location", Class: "loc-cell", Width: 16, Field: FieldLocation,
			HTML: func(u social.UserRecord) string { return EscapeHTML(u.Location) },
			Text: func(u social.UserRecord) string { return u.Location }},
	}
	if withLists {
		cols = append(cols, Column[social.UserRecord]{
			Title: "Lists", Class: "lists-cell", Width: 24, HTML: listsHTML, Text: listsText,
		})
	}
	return cols
}

// The table instances.
var (
	Following = Table[social.UserRecord]{
		Name:    "following",
		Columns: userColumns(false),
		Empty:   "No data yet. Fetching...",
	}

	Followers = Table[social.UserRecord]{
		Name:    "followers",
		Columns: userColumns(false),
		Empty:   "No followers fetched yet.",
	}

	ListMembers = Table[social.UserRecord]{
		Name:    "list-members",
		Columns: userColumns(true),
		Empty:   "This list has no members.",
	}

	Lists = Table[social.ListRecord]{
		Name: "lists",
		Columns: []Column[social.ListRecord]{
			{Title: "List", Class: "list-name", Width: 28,
				HTML: func(l social.ListRecord) string {
					name := EscapeHTML(l.Name)
					if l.Private {
						name += `<span class="private-badge">private</span>`
					}
					return name
				},
				Text: func(l social.ListRecord) string {
					if l.Private {
						return l.Name + " 🔒"
					}
					return l.Name
				}},
			{Title: "Description", Class: "desc-cell", Width: 48,
				HTML:    func(l social.ListRecord) string { return EscapeHTML(l.Description) },
				Text:    func(l social.ListRecord) string { return l.Description },
				Tooltip: func(l social.ListRecord) string { return l.Description }},
			{Title: "Members", Class: "num-cell", Width: 10,
				HTML: func(l social.ListRecord) string { return FormatNumber(l.MemberCount) },
				Text: func(l social.ListRecord) string { return FormatNumber(l.MemberCount) }},
		},
		Empty: "No lists yet.",
	}

	Accounts = Table[social.AccountRecord]{
		Name: "accounts",
		Columns: []Column[social.AccountRecord]{
			{Title: "Account", Class: "user-handle", Width: 24,
				HTML: func(a social.AccountRecord) string { return "@" + EscapeHTML(a.Username) },
				Text: func(a social.AccountRecord) string { return "@" + a.Username }},
			{Title: "User ID", Class: "id-cell", Width: 22,
				HTML: func(a social.AccountRecord) string { return EscapeHTML(a.UserID) },
				Text: func(a social.AccountRecord) string { return a.UserID }},
		},
		Empty: "No accounts yet. Add one to start tracking.",
	}
)
