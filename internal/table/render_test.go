package table

import (
	"strings"
	"testing"

	"github.com/rootisgod/followgo/internal/social"
	"github.com/stretchr/testify/assert"
)

func TestRenderHTML_Placeholder(t *testing.T) {
	got := Following.RenderHTML(nil)
	assert.Equal(t, `<tr><td colspan="7" class="loading">No data yet. Fetching...</td></tr>`, got)

	got = ListMembers.RenderHTMLWithPlaceholder(nil, "Error loading data")
	assert.Contains(t, got, `colspan="8"`)
	assert.Contains(t, got, "Error loading data")
}

func TestRenderHTML_Row(t *testing.T) {
	u := social.UserRecord{
		Username:        "alice",
		Name:            "Alice A",
		Description:     "Go & coffee",
		ProfileImageURL: "https://img.example/a.png",
		Verified:        true,
		FollowersCount:  1500,
		FollowingCount:  999,
		TweetCount:      2_340_000,
		Location:        "Berlin",
	}
	got := Following.RenderHTML([]social.UserRecord{u})

	assert.Equal(t, 1, strings.Count(got, "<tr>"))
	assert.Contains(t, got, `<img class="avatar" src="https://img.example/a.png"`)
	assert.Contains(t, got, `Alice A<span class="verified-badge">`)
	assert.Contains(t, got, `<span class="user-handle">@alice</span>`)
	assert.Contains(t, got, `<td class="desc-cell" title="Go &amp; coffee">Go &amp; coffee</td>`)
	assert.Contains(t, got, `<td class="num-cell">1.5K</td>`)
	assert.Contains(t, got, `<td class="num-cell">999</td>`)
	assert.Contains(t, got, `<td class="num-cell">2.3M</td>`)
	assert.Contains(t, got, `<td class="loc-cell">Berlin</td>`)
}

func TestRenderHTML_NoAvatarNoBadge(t *testing.T) {
	got := Followers.RenderHTML([]social.UserRecord{{Username: "bob", Name: "Bob"}})
	assert.Contains(t, got, `<div class="avatar"></div>`)
	assert.NotContains(t, got, "verified-badge")
}

func TestRenderHTML_EscapesEveryUserField(t *testing.T) {
	evil := `<img src=x onerror="alert('x')">`
	u := social.UserRecord{
		Username:        evil,
		Name:            evil,
		Description:     evil,
		ProfileImageURL: `" onload="alert(1)`,
		Location:        evil,
		Lists:           []string{evil, "<b>"},
	}
	for _, tbl := range []Table[social.UserRecord]{Following, Followers, ListMembers} {
		got := tbl.RenderHTML([]social.UserRecord{u})
		assert.NotContains(t, got, "<img src=x", tbl.Name)
		assert.NotContains(t, got, `onerror="`, tbl.Name)
		assert.NotContains(t, got, `" onload="`, tbl.Name)
		assert.NotContains(t, got, "<b>", tbl.Name)
	}
}

func TestRenderHTML_ListBadges(t *testing.T) {
	got := ListMembers.RenderHTML([]social.UserRecord{{Username: "a", Lists: []string{"Systems", "Design"}}})
	assert.Contains(t, got, `<span class="list-badge">Systems</span><span class="list-badge">Design</span>`)

	got = ListMembers.RenderHTML([]social.UserRecord{{Username: "a"}})
	assert.Contains(t, got, `<td class="lists-cell"></td>`)
}

func TestRenderHTML_Accounts(t *testing.T) {
	got := Accounts.RenderHTML([]social.AccountRecord{{UserID: "42", Username: "<me>"}})
	assert.Contains(t, got, "@&lt;me&gt;")
	assert.Contains(t, got, "<td class=\"id-cell\">42</td>")

	assert.Contains(t, Accounts.RenderHTML(nil), `colspan="2"`)
}

func TestRenderHTML_Lists(t *testing.T) {
	got := Lists.RenderHTML([]social.ListRecord{{ID: "1", Name: "A&B", Private: true, MemberCount: 1200}})
	assert.Contains(t, got, `A&amp;B<span class="private-badge">private</span>`)
	assert.Contains(t, got, "1.2K")
}

func TestRenderHeaderHTML(t *testing.T) {
	got := Following.RenderHeaderHTML(SortKey{FieldTweets, Asc})
	assert.Contains(t, got, `<th data-sort="tweet_count">Tweets ▲</th>`)
	assert.Contains(t, got, `<th data-sort="followers_count">Followers</th>`)
	assert.NotContains(t, got, "Handle", "handle is shown inside the name cell")
}

func TestTerminalColumns(t *testing.T) {
	var titles []string
	for _, c := range Following.TerminalColumns() {
		titles = append(titles, c.Title)
	}
	assert.Equal(t, []string{"Name", "Handle", "Description", "Followers", "Following", "Tweets", "Location"}, titles)

	assert.Equal(t, []Field{FieldName, FieldUsername, FieldDescription, FieldFollowers, FieldFollowing, FieldTweets, FieldLocation},
		Following.SortableFields())
}

func TestRenderDocument(t *testing.T) {
	doc := Following.RenderDocument("Following <@me>", []social.UserRecord{{Username: "a", Name: "A"}}, DefaultSortKey)
	assert.True(t, strings.HasPrefix(doc, "<!DOCTYPE html>"))
	assert.Contains(t, doc, "<title>Following &lt;@me&gt;</title>")
	assert.Contains(t, doc, "Followers ▼")
	assert.Contains(t, doc, `<span class="user-handle">@a</span>`)
}
