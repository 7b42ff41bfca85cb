package catalogs

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func facetFixture() []Entry {
	a := NewEntry("Baldur's Gate", "BioWare", "Interplay").
		WithGenres([]string{"RPG", "fantasy"}).
		WithPlatforms([]string{"PC"}).
		WithTags([]string{"party"})
	a.ReleaseYear = Ptr(1998)

	b := NewEntry("Doom", "id Software", "GT Interactive").
		WithGenres([]string{"FPS", "rpg"}).
		WithPlatforms([]string{"PC", "DOS"})
	b.ReleaseYear = Ptr(1993)

	c := NewEntry("Untitled", "", "").WithGenres([]string{"RPG", "Action"})
	c.Publisher = nil

	return []Entry{a, b, c}
}

func TestDistinctGenres(t *testing.T) {
	got := DistinctGenres(facetFixture())
	// exact dedup keeps both "RPG" and "rpg"; ordering ignores case
	assert.Equal(t, []string{"Action", "fantasy", "FPS", "RPG", "rpg"}, got)
}

func TestDistinctPlatformsAndTags(t *testing.T) {
	assert.Equal(t, []string{"DOS", "PC"}, DistinctPlatforms(facetFixture()))
	assert.Equal(t, []string{"party"}, DistinctTags(facetFixture()))
	assert.Empty(t, DistinctTags(nil))
	assert.NotNil(t, DistinctTags(nil))
}

func TestDistinctPublishersAndDevelopers(t *testing.T) {
	assert.Equal(t, []string{"GT Interactive", "Interplay"}, DistinctPublishers(facetFixture()))
	assert.Equal(t, []string{"BioWare", "id Software"}, DistinctDevelopers(facetFixture()))
}

func TestYearBounds(t *testing.T) {
	now := time.Date(2026, 10, 17, 0, 0, 0, 0, time.UTC)

	t.Run("from entries", func(t *testing.T) {
		lo, hi := YearBounds(facetFixture(), now)
		assert.Equal(t, 1993, lo)
		assert.Equal(t, 1998, hi)
	})

	t.Run("defaults without years", func(t *testing.T) {
		lo, hi := YearBounds([]Entry{NewEntry("a", "b", "c")}, now)
		assert.Equal(t, 1970, lo)
		assert.Equal(t, 2026, hi)
	})

	t.Run("single year", func(t *testing.T) {
		e := NewEntry("a", "b", "c")
		e.ReleaseYear = Ptr(2001)
		lo, hi := YearBounds([]Entry{e}, now)
		assert.Equal(t, 2001, lo)
		assert.Equal(t, 2001, hi)
	})
}

func TestCompareFold(t *testing.T) {
	assert.Negative(t, CompareFold("apple", "Banana"))
	assert.Positive(t, CompareFold("b", "A"))
	assert.NotZero(t, CompareFold("RPG", "rpg"))
	assert.Zero(t, CompareFold("rpg", "rpg"))
}
