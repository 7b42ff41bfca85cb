// Package facets provides the facets command, which lists the distinct
// values available for filtering.
package facets

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/agentstation/gamemage"
	"github.com/agentstation/gamemage/internal/appcontext"
	"github.com/agentstation/gamemage/internal/output"
	"github.com/agentstation/gamemage/pkg/errors"
)

// Kinds lists the facet names accepted as an argument.
var Kinds = []string{"genres", "platforms", "tags", "publishers", "developers", "years"}

// years is the machine-readable shape of the year bounds.
type years struct {
	Min int `json:"min" yaml:"min"`
	Max int `json:"max" yaml:"max"`
}

// NewCommand creates the facets command with app dependencies.
func NewCommand(app appcontext.Interface) *cobra.Command {
	return &cobra.Command{
		Use:       "facets [" + strings.Join(Kinds, "|") + "]",
		GroupID:   "core",
		Short:     "Show distinct genres, platforms, tags, publishers, developers and years",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: Kinds,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := output.Resolve(app.OutputFormat())
			if err != nil {
				return err
			}
			gm, err := app.Client()
			if err != nil {
				return err
			}
			f := gm.Facets()
			formatter := output.NewFormatter(format)
			w := cmd.OutOrStdout()

			if len(args) == 0 {
				if format.Tabular() {
					return formatter.Format(w, summary(f))
				}
				return formatter.Format(w, f)
			}

			kind := strings.ToLower(args[0])
			if kind == "years" {
				if format.Tabular() {
					_, err := fmt.Fprintf(w, "%d-%d\n", f.MinYear, f.MaxYear)
					return err
				}
				return formatter.Format(w, years{Min: f.MinYear, Max: f.MaxYear})
			}

			values, header, err := Values(f, kind)
			if err != nil {
				return err
			}
			if format.Tabular() {
				return formatter.Format(w, output.ValuesToTableData(header, values))
			}
			return formatter.Format(w, values)
		},
	}
}

// Values returns one facet list and its column header.
func Values(f gamemage.Facets, kind string) ([]string, string, error) {
	switch kind {
	case "genres":
		return f.Genres, "Genre", nil
	case "platforms":
		return f.Platforms, "Platform", nil
	case "tags":
		return f.Tags, "Tag", nil
	case "publishers":
		return f.Publishers, "Publisher", nil
	case "developers":
		return f.Developers, "Developer", nil
	default:
		return nil, "", errors.NewValidationError("facet", kind, "must be one of "+strings.Join(Kinds, ", "))
	}
}

// summary renders all facets as a property/value table with counts.
func summary(f gamemage.Facets) output.Data {
	row := func(name string, values []string) []string {
		return []string{name, strconv.Itoa(len(values)), strings.Join(values, ", ")}
	}
	return output.Data{
		Headers: []string{"Facet", "Count", "Values"},
		Rows: [][]string{
			row("Genres", f.Genres),
			row("Platforms", f.Platforms),
			row("Tags", f.Tags),
			row("Publishers", f.Publishers),
			row("Developers", f.Developers),
			{"Years", "-", fmt.Sprintf("%d-%d", f.MinYear, f.MaxYear)},
		},
		ColumnAlignment: []output.Align{output.AlignLeft, output.AlignRight, output.AlignLeft},
	}
}
