package catalogs

import (
	"fmt"
	"testing"
)

// TestEntry creates a valid entry with sensible defaults.
// The t.Helper() call ensures stack traces point to the test, not this function.
func TestEntry(t testing.TB, title string) Entry {
	t.Helper()
	e := NewEntry(title, title+" Studio", title+" Publishing")
	e.Genres = []string{"Action"}
	e.Platforms = []string{"PC"}
	e.ReleaseYear = Ptr(2000)
	e.Rating = Ptr(7.5)
	return e
}

// TestEntries creates n valid entries titled "Game 000" onwards with
// release years cycling through 1990-2019.
func TestEntries(t testing.TB, n int) []Entry {
	t.Helper()
	entries := make([]Entry, n)
	for i := range entries {
		e := TestEntry(t, fmt.Sprintf("Game %03d", i))
		e.ReleaseYear = Ptr(1990 + i%30)
		entries[i] = e
	}
	return entries
}
