// Package query implements the read pipeline over a game collection:
// facet predicates, then a stable sort, then a fixed-size page.
package query

import (
	"github.com/agentstation/gamemage/pkg/catalogs"
	"github.com/agentstation/gamemage/pkg/constants"
)

// Request describes one view of the collection. Empty strings and a nil
// Years mean the facet is not applied.
type Request struct {
	Genre     string
	Platform  string
	Tag       string
	Publisher string
	Developer string
	Years     *YearRange

	// Search matches a case-insensitive substring of the title
	Search string

	Sort SortKey
	Page int
}

// YearRange is an inclusive range of release years.
type YearRange struct {
	From int
	To   int
}

// Contains reports whether year lies within the range.
func (r YearRange) Contains(year int) bool {
	return year >= r.From && year <= r.To
}

// Result is one page of a query.
type Result struct {
	Entries  []catalogs.Entry
	Page     int
	MaxPage  int
	Total    int // entries matching the predicates, across all pages
	PageSize int
}

// Run filters, sorts and paginates entries. The input is never modified and
// the result holds copies.
func Run(entries []catalogs.Entry, req Request) Result {
	matched := Filter(entries, req.Predicates()...)
	Sort(matched, req.Sort)
	page, current, maxPage := Paginate(matched, req.Page, constants.PageSize)

	out := make([]catalogs.Entry, len(page))
	for i, e := range page {
		out[i] = e.Clone()
	}
	return Result{
		Entries:  out,
		Page:     current,
		MaxPage:  maxPage,
		Total:    len(matched),
		PageSize: constants.PageSize,
	}
}

// Source provides the entries an Engine queries.
type Source interface {
	All() []catalogs.Entry
}

// Engine runs requests against a Source.
type Engine struct {
	src Source
}

// NewEngine creates an engine reading from src.
func NewEngine(src Source) *Engine {
	return &Engine{src: src}
}

// Run executes req against the current contents of the source.
func (e *Engine) Run(req Request) Result {
	return Run(e.src.All(), req)
}
