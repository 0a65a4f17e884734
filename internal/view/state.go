package view

import (
	"github.com/rootisgod/followgo/internal/social"
	"github.com/rootisgod/followgo/internal/table"
	"golang.org/x/text/language"
)

// ViewState is what the user controls on a table: the sort key and the
// filter query.
type ViewState struct {
	Sort  table.SortKey
	Query string
}

// DefaultViewState is the state a tab starts with.
func DefaultViewState() ViewState {
	return ViewState{Sort: table.DefaultSortKey}
}

// UserView is a collection of user records together with its ViewState.
type UserView struct {
	Controller[social.UserRecord]
	State  ViewState
	Locale language.Tag
}

func NewUserView(locale language.Tag) *UserView {
	return &UserView{State: DefaultViewState(), Locale: locale}
}

// Rows is the filtered, sorted collection to display. It is a function of
// the loaded items and State only.
func (v *UserView) Rows() []social.UserRecord {
	return table.Sort(table.Filter(v.Visible(), v.State.Query), v.State.Sort, v.Locale)
}

// SortBy applies the toggle rule for field.
func (v *UserView) SortBy(field table.Field) {
	v.State.Sort = v.State.Sort.Toggle(field)
}

// SetQuery replaces the filter query.
func (v *UserView) SetQuery(q string) {
	v.State.Query = q
}

// Reset discards the collection and returns State to its defaults.
func (v *UserView) Reset() {
	v.Controller.Reset()
	v.State = DefaultViewState()
}

// EmptyMessage is the placeholder for an empty Rows result.
func (v *UserView) EmptyMessage(loadedEmpty string) string {
	if v.Phase() == PhaseLoaded && v.State.Query != "" && len(v.Items()) > 0 {
		return "No accounts match \"" + v.State.Query + "\""
	}
	return v.Placeholder(loadedEmpty)
}

// ListsView is the grid of owned lists with its filter query.
type ListsView struct {
	Controller[social.ListRecord]
	Query string
}

// Rows is the filtered list grid in backend order.
func (v *ListsView) Rows() []social.ListRecord {
	return table.FilterLists(v.Visible(), v.Query)
}

func (v *ListsView) Reset() {
	v.Controller.Reset()
	v.Query = ""
}
