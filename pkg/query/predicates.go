package query

import (
	"slices"
	"strings"

	"github.com/agentstation/gamemage/pkg/catalogs"
)

// Predicate reports whether an entry belongs to a view.
type Predicate func(catalogs.Entry) bool

// Predicates returns one predicate per facet present in the request. An
// entry matches the request when it satisfies all of them.
func (r Request) Predicates() []Predicate {
	var preds []Predicate
	if r.Genre != "" {
		preds = append(preds, HasGenre(r.Genre))
	}
	if r.Platform != "" {
		preds = append(preds, HasPlatform(r.Platform))
	}
	if r.Tag != "" {
		preds = append(preds, HasTag(r.Tag))
	}
	if r.Publisher != "" {
		preds = append(preds, PublishedBy(r.Publisher))
	}
	if r.Developer != "" {
		preds = append(preds, DevelopedBy(r.Developer))
	}
	if r.Years != nil {
		preds = append(preds, ReleasedIn(*r.Years))
	}
	if r.Search != "" {
		preds = append(preds, TitleContains(r.Search))
	}
	return preds
}

// Filter returns the entries satisfying every predicate, in input order.
func Filter(entries []catalogs.Entry, preds ...Predicate) []catalogs.Entry {
	out := make([]catalogs.Entry, 0, len(entries))
	for _, e := range entries {
		if matchesAll(e, preds) {
			out = append(out, e)
		}
	}
	return out
}

func matchesAll(e catalogs.Entry, preds []Predicate) bool {
	for _, p := range preds {
		if !p(e) {
			return false
		}
	}
	return true
}

// HasGenre matches entries whose genres contain genre exactly.
func HasGenre(genre string) Predicate {
	return func(e catalogs.Entry) bool { return slices.Contains(e.Genres, genre) }
}

// HasPlatform matches entries whose platforms contain platform exactly.
func HasPlatform(platform string) Predicate {
	return func(e catalogs.Entry) bool { return slices.Contains(e.Platforms, platform) }
}

// HasTag matches entries whose tags contain tag exactly.
func HasTag(tag string) Predicate {
	return func(e catalogs.Entry) bool { return slices.Contains(e.Tags, tag) }
}

// PublishedBy matches entries whose publisher equals publisher.
func PublishedBy(publisher string) Predicate {
	return func(e catalogs.Entry) bool { return e.Publisher != nil && *e.Publisher == publisher }
}

// DevelopedBy matches entries whose developer equals developer.
func DevelopedBy(developer string) Predicate {
	return func(e catalogs.Entry) bool { return e.Developer != nil && *e.Developer == developer }
}

// ReleasedIn matches entries with a release year inside r. Entries without
// a year never match.
func ReleasedIn(r YearRange) Predicate {
	return func(e catalogs.Entry) bool { return e.ReleaseYear != nil && r.Contains(*e.ReleaseYear) }
}

// TitleContains matches entries whose title contains needle, ignoring case.
func TitleContains(needle string) Predicate {
	folded := catalogs.Fold(needle)
	return func(e catalogs.Entry) bool {
		return e.Title != nil && strings.Contains(catalogs.Fold(*e.Title), folded)
	}
}
