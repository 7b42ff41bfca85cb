package query

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/gamemage/pkg/catalogs"
	"github.com/agentstation/gamemage/pkg/errors"
)

func entry(title string, year int, genres ...string) catalogs.Entry {
	e := catalogs.NewEntry(title, "Dev", "Pub").WithGenres(genres)
	if year > 0 {
		e.ReleaseYear = catalogs.Ptr(year)
	}
	return e
}

func titlesOf(entries []catalogs.Entry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = catalogs.Deref(e.Title, "<nil>")
	}
	return out
}

// shuffled returns n entries titled "Game 000".."Game n-1" in random order.
func shuffled(n int) []catalogs.Entry {
	entries := make([]catalogs.Entry, n)
	for i := range entries {
		entries[i] = entry(fmt.Sprintf("Game %03d", i), 1980+i%40)
	}
	r := rand.New(rand.NewSource(42))
	r.Shuffle(n, func(i, j int) { entries[i], entries[j] = entries[j], entries[i] })
	return entries
}

func TestRun_ThirdPageOfTitleSort(t *testing.T) {
	entries := shuffled(250)

	res := Run(entries, Request{Sort: SortTitleAsc, Page: 3})

	assert.Equal(t, 3, res.Page)
	assert.Equal(t, 3, res.MaxPage)
	assert.Equal(t, 250, res.Total)
	assert.Equal(t, 100, res.PageSize)
	require.Len(t, res.Entries, 50)
	for i, e := range res.Entries {
		assert.Equal(t, fmt.Sprintf("Game %03d", 200+i), *e.Title)
	}
}

func TestRun_GenreFilter(t *testing.T) {
	action := entry("Action Game", 0, "Action")
	none := entry("Plain Game", 0)

	res := Run([]catalogs.Entry{action, none}, Request{Genre: "Action"})
	require.Len(t, res.Entries, 1)
	assert.True(t, res.Entries[0].Equal(action))

	res = Run([]catalogs.Entry{action, none}, Request{Genre: "action"})
	assert.Empty(t, res.Entries, "membership is exact")
}

func TestRun_Facets(t *testing.T) {
	a := entry("Alpha", 1995, "RPG")
	a.Platforms = []string{"PC"}
	a.Tags = []string{"Favorite"}
	a.Publisher = catalogs.Ptr("Interplay")

	b := entry("Beta", 2001, "RPG", "Action")
	b.Platforms = []string{"PS2"}
	b.Developer = catalogs.Ptr("Bioware")

	c := entry("Gamma", 0, "Action")
	c.Publisher = nil

	all := []catalogs.Entry{a, b, c}
	tests := []struct {
		name string
		req  Request
		want []string
	}{
		{"no facets", Request{}, []string{"Alpha", "Beta", "Gamma"}},
		{"platform", Request{Platform: "PC"}, []string{"Alpha"}},
		{"tag", Request{Tag: "Favorite"}, []string{"Alpha"}},
		{"publisher", Request{Publisher: "Interplay"}, []string{"Alpha"}},
		{"developer", Request{Developer: "Bioware"}, []string{"Beta"}},
		{"years inclusive", Request{Years: &YearRange{From: 1995, To: 2001}}, []string{"Alpha", "Beta"}},
		{"years exclude absent", Request{Years: &YearRange{From: 0, To: 3000}}, []string{"Alpha", "Beta"}},
		{"empty year range", Request{Years: &YearRange{From: 2001, To: 1995}}, []string{}},
		{"search ignores case", Request{Search: "ET"}, []string{"Beta"}},
		{"combined", Request{Genre: "RPG", Years: &YearRange{From: 2000, To: 2010}}, []string{"Beta"}},
		{"no match", Request{Genre: "RPG", Platform: "Switch"}, []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Run(all, tt.req)
			assert.Equal(t, tt.want, titlesOf(res.Entries))
			assert.Equal(t, len(tt.want), res.Total)
		})
	}
}

func TestFilter_Commutative(t *testing.T) {
	entries := shuffled(120)
	for i := range entries {
		if i%2 == 0 {
			entries[i].Genres = []string{"RPG"}
		}
		if i%3 == 0 {
			entries[i].Platforms = []string{"PC"}
		}
	}
	preds := Request{Genre: "RPG", Platform: "PC", Years: &YearRange{From: 1990, To: 2010}}.Predicates()
	require.Len(t, preds, 3)

	want := titlesOf(Filter(entries, preds...))
	orders := [][]int{{0, 1, 2}, {0, 2, 1}, {1, 0, 2}, {1, 2, 0}, {2, 0, 1}, {2, 1, 0}}
	for _, order := range orders {
		reordered := []Predicate{preds[order[0]], preds[order[1]], preds[order[2]]}
		assert.Equal(t, want, titlesOf(Filter(entries, reordered...)), "order %v", order)
	}
}

func TestRun_PagesAreExhaustive(t *testing.T) {
	entries := shuffled(345)
	req := Request{Sort: SortYearDesc}

	first := Run(entries, req)
	var joined []catalogs.Entry
	for p := 1; p <= first.MaxPage; p++ {
		req.Page = p
		joined = append(joined, Run(entries, req).Entries...)
	}

	view := Filter(entries)
	Sort(view, SortYearDesc)
	assert.Equal(t, titlesOf(view), titlesOf(joined))
	assert.Equal(t, 4, first.MaxPage)
}

func TestRun_DoesNotModifyInput(t *testing.T) {
	entries := []catalogs.Entry{entry("B", 0), entry("A", 0)}
	res := Run(entries, Request{Sort: SortTitleAsc})
	assert.Equal(t, []string{"B", "A"}, titlesOf(entries))

	*res.Entries[0].Title = "changed"
	assert.Equal(t, "A", *entries[1].Title)
}

func TestPaginate(t *testing.T) {
	tests := []struct {
		name    string
		n       int
		page    int
		current int
		maxPage int
		size    int
	}{
		{"empty", 0, 1, 1, 1, 0},
		{"page zero clamps to one", 250, 0, 1, 3, 100},
		{"negative page", 250, -4, 1, 3, 100},
		{"past the end clamps", 250, 9, 3, 3, 50},
		{"exact multiple", 200, 2, 2, 2, 100},
		{"one over", 201, 3, 3, 3, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			slice, current, maxPage := Paginate(shuffled(tt.n), tt.page, 100)
			assert.Equal(t, tt.current, current)
			assert.Equal(t, tt.maxPage, maxPage)
			assert.Len(t, slice, tt.size)
		})
	}

	assert.Equal(t, 1, MaxPage(0, 100))
	assert.Equal(t, 3, MaxPage(250, 0), "non-positive size falls back to the page size")
}

func TestEngine(t *testing.T) {
	src := staticSource{entry("A", 1990), entry("B", 2000)}
	res := NewEngine(src).Run(Request{Years: &YearRange{From: 1995, To: 2005}})
	assert.Equal(t, []string{"B"}, titlesOf(res.Entries))
}

type staticSource []catalogs.Entry

func (s staticSource) All() []catalogs.Entry { return s }

func TestParseSortKey(t *testing.T) {
	tests := map[string]SortKey{
		"":           SortNone,
		"none":       SortNone,
		"title":      SortTitleAsc,
		"Title-Asc":  SortTitleAsc,
		"title-desc": SortTitleDesc,
		"year":       SortYearAsc,
		" year-asc ": SortYearAsc,
		"year-desc":  SortYearDesc,
	}
	for in, want := range tests {
		got, err := ParseSortKey(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseSortKey("rating")
	assert.True(t, errors.IsValidationError(err))

	for key := range sortKeyNames {
		parsed, err := ParseSortKey(key.String())
		require.NoError(t, err)
		assert.Equal(t, key, parsed)
	}
}
