// Package catalogs defines the game entry model shared by the codec, the
// store and the query engine, together with validation and facet helpers.
package catalogs

import (
	"slices"
	"strings"
)

// Entry represents one game in the catalog.
type Entry struct {
	// ID is assigned when the entry enters a store and is never persisted.
	ID ID `json:"-" yaml:"id,omitempty"`

	// Core identity, required when adding through the store
	Title     *string `json:"title" yaml:"title"`
	Developer *string `json:"developer" yaml:"developer"`
	Publisher *string `json:"publisher" yaml:"publisher"`

	// Facets. Empty means absent; these are never nil once normalized.
	Genres      []string `json:"genres" yaml:"genres"`
	Platforms   []string `json:"platforms" yaml:"platforms"`
	Translators []string `json:"translators" yaml:"translators"`

	SteamID     *int     `json:"steamId" yaml:"steam_id"`
	ReleaseYear *int     `json:"releaseYear" yaml:"release_year"`
	Language    *string  `json:"language" yaml:"language"`
	Rating      *float64 `json:"rating" yaml:"rating"`
	Tags        []string `json:"tags" yaml:"tags"`

	// Opaque references to media, never validated
	CoverImagePath  *string `json:"coverImagePath" yaml:"cover_image_path"`
	DescriptionPath *string `json:"descriptionPath" yaml:"description_path"`
}

// NewEntry creates an entry with the required identity fields and empty sequences.
func NewEntry(title, developer, publisher string) Entry {
	return Entry{
		Title:       Ptr(title),
		Developer:   Ptr(developer),
		Publisher:   Ptr(publisher),
		Genres:      []string{},
		Platforms:   []string{},
		Translators: []string{},
		Tags:        []string{},
	}
}

// Ptr returns a pointer to v.
func Ptr[T any](v T) *T {
	return &v
}

// Clone returns a deep copy of the entry. Nil sequences become empty ones.
func (e Entry) Clone() Entry {
	c := e
	c.Title = clonePtr(e.Title)
	c.Developer = clonePtr(e.Developer)
	c.Publisher = clonePtr(e.Publisher)
	c.Genres = cloneList(e.Genres)
	c.Platforms = cloneList(e.Platforms)
	c.Translators = cloneList(e.Translators)
	c.SteamID = clonePtr(e.SteamID)
	c.ReleaseYear = clonePtr(e.ReleaseYear)
	c.Language = clonePtr(e.Language)
	c.Rating = clonePtr(e.Rating)
	c.Tags = cloneList(e.Tags)
	c.CoverImagePath = clonePtr(e.CoverImagePath)
	c.DescriptionPath = clonePtr(e.DescriptionPath)
	return c
}

// Normalize returns a clone with every sequence non-nil.
func (e Entry) Normalize() Entry {
	return e.Clone()
}

// Equal reports whether both entries carry the same data. The ID is ignored.
func (e Entry) Equal(other Entry) bool {
	return ptrEqual(e.Title, other.Title) &&
		ptrEqual(e.Developer, other.Developer) &&
		ptrEqual(e.Publisher, other.Publisher) &&
		slices.Equal(e.Genres, other.Genres) &&
		slices.Equal(e.Platforms, other.Platforms) &&
		slices.Equal(e.Translators, other.Translators) &&
		ptrEqual(e.SteamID, other.SteamID) &&
		ptrEqual(e.ReleaseYear, other.ReleaseYear) &&
		ptrEqual(e.Language, other.Language) &&
		ratingEqual(e.Rating, other.Rating) &&
		slices.Equal(e.Tags, other.Tags) &&
		ptrEqual(e.CoverImagePath, other.CoverImagePath) &&
		ptrEqual(e.DescriptionPath, other.DescriptionPath)
}

// SameIdentity reports whether both entries share title, publisher and developer.
func (e Entry) SameIdentity(other Entry) bool {
	return ptrEqual(e.Title, other.Title) &&
		ptrEqual(e.Publisher, other.Publisher) &&
		ptrEqual(e.Developer, other.Developer)
}

// Label returns "title / developer / publisher" for messages; absent parts print as "-".
func (e Entry) Label() string {
	return strings.Join([]string{Deref(e.Title, "-"), Deref(e.Developer, "-"), Deref(e.Publisher, "-")}, " / ")
}

// WithGenres returns a copy of the entry holding a copy of genres.
func (e Entry) WithGenres(genres []string) Entry {
	c := e.Clone()
	c.Genres = cloneList(genres)
	return c
}

// WithPlatforms returns a copy of the entry holding a copy of platforms.
func (e Entry) WithPlatforms(platforms []string) Entry {
	c := e.Clone()
	c.Platforms = cloneList(platforms)
	return c
}

// WithTranslators returns a copy of the entry holding a copy of translators.
func (e Entry) WithTranslators(translators []string) Entry {
	c := e.Clone()
	c.Translators = cloneList(translators)
	return c
}

// WithTags returns a copy of the entry holding a copy of tags.
func (e Entry) WithTags(tags []string) Entry {
	c := e.Clone()
	c.Tags = cloneList(tags)
	return c
}

// Deref returns *p, or def when p is nil.
func Deref[T any](p *T, def T) T {
	if p == nil {
		return def
	}
	return *p
}

// ParseList splits a comma separated list, trimming items and dropping empty ones.
func ParseList(csv string) []string {
	items := []string{}
	for _, part := range strings.Split(csv, ",") {
		if part = strings.TrimSpace(part); part != "" {
			items = append(items, part)
		}
	}
	return items
}

func cloneList(s []string) []string {
	if s == nil {
		return []string{}
	}
	return slices.Clone(s)
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func ptrEqual[T comparable](a, b *T) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

// ratingEqual treats two NaN ratings as equal so a cloned entry equals its source.
func ratingEqual(a, b *float64) bool {
	if a != nil && b != nil && *a != *a && *b != *b {
		return true
	}
	return ptrEqual(a, b)
}
