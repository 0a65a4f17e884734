package view

import (
	"errors"
	"strings"

	"github.com/rootisgod/followgo/internal/social"
)

var (
	ErrMissingUsername = errors.New("username is required")
	ErrMissingToken    = errors.New("bearer token is required")
)

// NormalizeUsername trims whitespace and one leading "@".
func NormalizeUsername(s string) string {
	return strings.TrimPrefix(strings.TrimSpace(s), "@")
}

// AccountForm is the input of the add-account flow.
type AccountForm struct {
	Username string
	Token    string
}

// Validate returns the normalized form, or an error naming the first
// missing field.
func (f AccountForm) Validate() (AccountForm, error) {
	f.Username = NormalizeUsername(f.Username)
	f.Token = strings.TrimSpace(f.Token)
	if f.Username == "" {
		return f, ErrMissingUsername
	}
	if f.Token == "" {
		return f, ErrMissingToken
	}
	return f, nil
}

// Accounts is the account selector state.
type Accounts struct {
	List     []social.AccountRecord
	Selected string
}

// Index returns the position of userID in List, or -1.
func (a Accounts) Index(userID string) int {
	for i, acct := range a.List {
		if acct.UserID == userID {
			return i
		}
	}
	return -1
}

// Current returns the selected account record.
func (a Accounts) Current() (social.AccountRecord, bool) {
	if i := a.Index(a.Selected); i >= 0 {
		return a.List[i], true
	}
	return social.AccountRecord{}, false
}
