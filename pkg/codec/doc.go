// Package codec reads and writes the flat JSON catalog document.
//
// Reading is lenient: the document is tokenized, each entry object is parsed
// into a small value tree, and fields are pulled out by typed lookups. A
// malformed object costs only itself; its neighbours still load and the
// skip is listed in the returned Report.
//
// Writing is canonical: fields appear in a fixed order with fixed spacing,
// so the same collection always produces the same bytes.
package codec
