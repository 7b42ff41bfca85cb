package output

import (
	"io"
	"strconv"
	"strings"

	"github.com/agentstation/gamemage/pkg/catalogs"
)

// Row is an entry together with its position in the collection.
type Row struct {
	Index          int         `json:"index" yaml:"index"`
	ID             catalogs.ID `json:"id" yaml:"-"`
	catalogs.Entry `yaml:",inline"`
}

// NewRows pairs entries with their collection positions, looked up by ID.
func NewRows(entries []catalogs.Entry, positions map[catalogs.ID]int) []Row {
	rows := make([]Row, len(entries))
	for i, e := range entries {
		index, ok := positions[e.ID]
		if !ok {
			index = -1
		}
		rows[i] = Row{Index: index, ID: e.ID, Entry: e}
	}
	return rows
}

// Positions maps every entry ID to its index in entries.
func Positions(entries []catalogs.Entry) map[catalogs.ID]int {
	positions := make(map[catalogs.ID]int, len(entries))
	for i, e := range entries {
		positions[e.ID] = i
	}
	return positions
}

// RowsToTableData converts rows to table format.
func RowsToTableData(rows []Row, wide bool) Data {
	headers := []string{"#", "Title", "Developer", "Publisher", "Year", "Rating", "Genres"}
	align := []Align{AlignRight, AlignLeft, AlignLeft, AlignLeft, AlignRight, AlignRight, AlignLeft}
	if wide {
		headers = append(headers, "Platforms", "Tags", "Language", "ID")
		align = append(align, AlignLeft, AlignLeft, AlignLeft, AlignLeft)
	}

	data := make([][]string, 0, len(rows))
	for _, r := range rows {
		row := []string{
			strconv.Itoa(r.Index),
			text(r.Title),
			text(r.Developer),
			text(r.Publisher),
			integer(r.ReleaseYear),
			rating(r.Rating),
			joinOrDash(r.Genres),
		}
		if wide {
			row = append(row,
				joinOrDash(r.Platforms),
				joinOrDash(r.Tags),
				text(r.Language),
				r.ID.String(),
			)
		}
		data = append(data, row)
	}

	return Data{
		Headers:         headers,
		Rows:            data,
		ColumnAlignment: align,
	}
}

// EntryToTableData converts a single entry to a property/value table.
func EntryToTableData(e catalogs.Entry) Data {
	return Data{
		Headers: []string{"Property", "Value"},
		Rows: [][]string{
			{"ID", e.ID.String()},
			{"Title", text(e.Title)},
			{"Developer", text(e.Developer)},
			{"Publisher", text(e.Publisher)},
			{"Genres", joinOrDash(e.Genres)},
			{"Platforms", joinOrDash(e.Platforms)},
			{"Translators", joinOrDash(e.Translators)},
			{"Steam ID", integer(e.SteamID)},
			{"Release Year", integer(e.ReleaseYear)},
			{"Language", text(e.Language)},
			{"Rating", rating(e.Rating)},
			{"Tags", joinOrDash(e.Tags)},
			{"Cover Image", text(e.CoverImagePath)},
			{"Description", text(e.DescriptionPath)},
		},
	}
}

// ValuesToTableData converts a single facet list to a one-column table.
func ValuesToTableData(header string, values []string) Data {
	rows := make([][]string, len(values))
	for i, v := range values {
		rows[i] = []string{v}
	}
	return Data{Headers: []string{header}, Rows: rows}
}

// WriteRows renders rows in the given format.
func WriteRows(w io.Writer, format Format, rows []Row) error {
	if format.Tabular() {
		return NewFormatter(format).Format(w, RowsToTableData(rows, format == FormatWide))
	}
	return NewFormatter(format).Format(w, rows)
}

func text(s *string) string {
	if s == nil || *s == "" {
		return "-"
	}
	return *s
}

func integer(n *int) string {
	if n == nil {
		return "-"
	}
	return strconv.Itoa(*n)
}

func rating(r *float64) string {
	if r == nil {
		return "-"
	}
	return strconv.FormatFloat(*r, 'f', -1, 64)
}

func joinOrDash(items []string) string {
	if len(items) == 0 {
		return "-"
	}
	return strings.Join(items, ", ")
}
