package catalogs

import (
	"slices"
	"strings"
	"time"

	"golang.org/x/text/cases"

	"github.com/agentstation/gamemage/pkg/constants"
)

// Fold returns the case-folded form of s used for case-insensitive ordering.
func Fold(s string) string {
	// a Caser is stateful, so each call gets its own
	return cases.Fold().String(s)
}

// CompareFold orders strings case-insensitively, breaking ties on the raw
// string so the order is total.
func CompareFold(a, b string) int {
	if c := strings.Compare(Fold(a), Fold(b)); c != 0 {
		return c
	}
	return strings.Compare(a, b)
}

// DistinctGenres returns every genre once, ordered case-insensitively.
func DistinctGenres(entries []Entry) []string {
	return distinctLists(entries, func(e Entry) []string { return e.Genres })
}

// DistinctPlatforms returns every platform once, ordered case-insensitively.
func DistinctPlatforms(entries []Entry) []string {
	return distinctLists(entries, func(e Entry) []string { return e.Platforms })
}

// DistinctTags returns every tag once, ordered case-insensitively.
func DistinctTags(entries []Entry) []string {
	return distinctLists(entries, func(e Entry) []string { return e.Tags })
}

// DistinctPublishers returns every non-empty publisher once, ordered case-insensitively.
func DistinctPublishers(entries []Entry) []string {
	return distinctScalars(entries, func(e Entry) *string { return e.Publisher })
}

// DistinctDevelopers returns every non-empty developer once, ordered case-insensitively.
func DistinctDevelopers(entries []Entry) []string {
	return distinctScalars(entries, func(e Entry) *string { return e.Developer })
}

// YearBounds returns the smallest and largest release year among entries.
// When no entry carries a year the bounds are 1970 and the year of now.
func YearBounds(entries []Entry, now time.Time) (minYear, maxYear int) {
	found := false
	for _, e := range entries {
		if e.ReleaseYear == nil {
			continue
		}
		y := *e.ReleaseYear
		if !found {
			minYear, maxYear, found = y, y, true
			continue
		}
		minYear = min(minYear, y)
		maxYear = max(maxYear, y)
	}
	if !found {
		return constants.DefaultMinYear, now.Year()
	}
	return minYear, maxYear
}

func distinctLists(entries []Entry, get func(Entry) []string) []string {
	seen := make(map[string]struct{})
	for _, e := range entries {
		for _, v := range get(e) {
			seen[v] = struct{}{}
		}
	}
	return sortedKeys(seen)
}

func distinctScalars(entries []Entry, get func(Entry) *string) []string {
	seen := make(map[string]struct{})
	for _, e := range entries {
		if v := get(e); v != nil && *v != "" {
			seen[*v] = struct{}{}
		}
	}
	return sortedKeys(seen)
}

func sortedKeys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	slices.SortFunc(out, CompareFold)
	return out
}
