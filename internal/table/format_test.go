package table

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		in   int
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1.0K"},
		{1500, "1.5K"},
		{12_345, "12.3K"},
		{999_999, "1000.0K"},
		{1_000_000, "1.0M"},
		{2_340_000, "2.3M"},
		{150_000_000, "150.0M"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatNumber(tt.in), "FormatNumber(%d)", tt.in)
	}
}

func TestEscapeHTML(t *testing.T) {
	assert.Equal(t, "", EscapeHTML(""))
	assert.Equal(t, "plain text", EscapeHTML("plain text"))

	got := EscapeHTML("<script>")
	assert.NotContains(t, got, "<")
	assert.NotContains(t, got, ">")

	got = EscapeHTML(`<a href="x" onclick='y'>Tom & Jerry</a>`)
	for _, ch := range []string{"<", ">", `"`, "'"} {
		assert.NotContains(t, got, ch)
	}
	assert.Contains(t, got, "&amp;")
}
