package store

import "github.com/agentstation/gamemage/pkg/catalogs"

// Genres returns every distinct genre, ordered case-insensitively.
func (s *Store) Genres() []string {
	return catalogs.DistinctGenres(s.entries)
}

// Platforms returns every distinct platform, ordered case-insensitively.
func (s *Store) Platforms() []string {
	return catalogs.DistinctPlatforms(s.entries)
}

// Tags returns every distinct tag, ordered case-insensitively.
func (s *Store) Tags() []string {
	return catalogs.DistinctTags(s.entries)
}

// Publishers returns every distinct non-empty publisher.
func (s *Store) Publishers() []string {
	return catalogs.DistinctPublishers(s.entries)
}

// Developers returns every distinct non-empty developer.
func (s *Store) Developers() []string {
	return catalogs.DistinctDevelopers(s.entries)
}

// YearBounds returns the smallest and largest release year in the
// collection, or 1970 and the current year when no entry has one.
func (s *Store) YearBounds() (minYear, maxYear int) {
	return catalogs.YearBounds(s.entries, s.now())
}
