package query

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/agentstation/gamemage/pkg/catalogs"
	"github.com/agentstation/gamemage/pkg/errors"
)

// SortKey selects the order of a result.
type SortKey int

// Sort keys.
const (
	SortNone SortKey = iota
	SortTitleAsc
	SortTitleDesc
	SortYearAsc
	SortYearDesc
)

var sortKeyNames = map[SortKey]string{
	SortNone:      "none",
	SortTitleAsc:  "title",
	SortTitleDesc: "title-desc",
	SortYearAsc:   "year",
	SortYearDesc:  "year-desc",
}

// String returns the name accepted by ParseSortKey.
func (k SortKey) String() string {
	if name, ok := sortKeyNames[k]; ok {
		return name
	}
	return fmt.Sprintf("SortKey(%d)", int(k))
}

// ParseSortKey parses a sort key name. The empty string means SortNone.
func ParseSortKey(s string) (SortKey, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return SortNone, nil
	case "title", "title-asc":
		return SortTitleAsc, nil
	case "title-desc":
		return SortTitleDesc, nil
	case "year", "year-asc":
		return SortYearAsc, nil
	case "year-desc":
		return SortYearDesc, nil
	default:
		return SortNone, errors.NewValidationError("sort", s, "must be one of none, title, title-desc, year, year-desc")
	}
}

// Sort orders entries in place. The sort is stable, so entries that compare
// equal keep their relative order.
//
// Titles compare case-insensitively; an absent title sorts first ascending
// and last descending. An absent year sorts last in both directions.
func Sort(entries []catalogs.Entry, key SortKey) {
	switch key {
	case SortTitleAsc, SortTitleDesc:
		sortByTitle(entries, key == SortTitleDesc)
	case SortYearAsc, SortYearDesc:
		sortByYear(entries, key == SortYearDesc)
	}
}

func sortByTitle(entries []catalogs.Entry, desc bool) {
	type keyed struct {
		entry catalogs.Entry
		title *string
	}
	items := make([]keyed, len(entries))
	for i, e := range entries {
		items[i] = keyed{entry: e}
		if e.Title != nil {
			folded := catalogs.Fold(*e.Title)
			items[i].title = &folded
		}
	}

	// absent titles are the smallest value, so they lead ascending and trail descending
	slices.SortStableFunc(items, func(a, b keyed) int {
		var c int
		switch {
		case a.title == nil && b.title == nil:
			return 0
		case a.title == nil:
			c = -1
		case b.title == nil:
			c = 1
		default:
			c = strings.Compare(*a.title, *b.title)
		}
		if desc {
			return -c
		}
		return c
	})

	for i, it := range items {
		entries[i] = it.entry
	}
}

func sortByYear(entries []catalogs.Entry, desc bool) {
	slices.SortStableFunc(entries, func(a, b catalogs.Entry) int {
		switch {
		case a.ReleaseYear == nil && b.ReleaseYear == nil:
			return 0
		case a.ReleaseYear == nil:
			return 1
		case b.ReleaseYear == nil:
			return -1
		}
		c := cmp.Compare(*a.ReleaseYear, *b.ReleaseYear)
		if desc {
			return -c
		}
		return c
	})
}
