package kpi

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// SortBy selects the board ordering on the dashboard.
type SortBy string

const (
	SortByEfficiency SortBy = "efficiency" // productivity score, descending
	SortByVolume     SortBy = "volume"     // total cards, descending
	SortByCompletion SortBy = "completion" // completion rate, descending
	SortByName       SortBy = "name"       // title, ascending, locale-aware
)

// Valid reports whether s is a known sort key.
func (s SortBy) Valid() bool {
	switch s {
	case SortByEfficiency, SortByVolume, SortByCompletion, SortByName:
		return true
	}
	return false
}

// SortBoards orders boards in place by the given key. An unknown key leaves
// the order untouched.
func SortBoards(boards []BoardKPIs, by SortBy) {
	switch by {
	case SortByEfficiency:
		sort.SliceStable(boards, func(i, j int) bool {
			return boards[i].ProductivityScore > boards[j].ProductivityScore
		})
	case SortByVolume:
		sort.SliceStable(boards, func(i, j int) bool {
			return boards[i].TotalCards > boards[j].TotalCards
		})
	case SortByCompletion:
		sort.SliceStable(boards, func(i, j int) bool {
			return boards[i].CompletionRate > boards[j].CompletionRate
		})
	case SortByName:
		c := collate.New(language.Und)
		sort.SliceStable(boards, func(i, j int) bool {
			return c.CompareString(boards[i].BoardTitle, boards[j].BoardTitle) < 0
		})
	}
}
