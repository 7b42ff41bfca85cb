// Package list provides the list command: facet filters, sorting and paging
// over the catalog.
package list

import (
	"fmt"
	"io"
	"math"

	"github.com/spf13/cobra"

	"github.com/agentstation/gamemage/internal/appcontext"
	"github.com/agentstation/gamemage/internal/output"
	"github.com/agentstation/gamemage/pkg/query"
)

// Flags holds the list command flags.
type Flags struct {
	Genre     string
	Platform  string
	Tag       string
	Publisher string
	Developer string
	From      int
	To        int
	Search    string
	Sort      string
	Page      int
}

// page is the machine-readable shape of one listing.
type page struct {
	Page     int          `json:"page" yaml:"page"`
	MaxPage  int          `json:"max_page" yaml:"max_page"`
	Total    int          `json:"total" yaml:"total"`
	PageSize int          `json:"page_size" yaml:"page_size"`
	Entries  []output.Row `json:"entries" yaml:"entries"`
}

// NewCommand creates the list command with app dependencies.
func NewCommand(app appcontext.Interface) *cobra.Command {
	flags := &Flags{}

	cmd := &cobra.Command{
		Use:     "list",
		GroupID: "core",
		Aliases: []string{"ls"},
		Short:   "List games with filters, sorting and paging",
		Long: `List shows one page of the catalog. Filters combine with AND; genre,
platform and tag match list membership exactly, publisher and developer
match exactly, and --search matches a case-insensitive part of the title.

The # column is the entry's position in the catalog, usable with show,
edit and rm.`,
		Example: `  gamemage list                               # First page in catalog order
  gamemage list --genre RPG --sort title      # RPGs by title
  gamemage list --from 1990 --to 1999 -o json # Nineties games as JSON
  gamemage list --page 3                      # Third page`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			req, err := flags.Request(cmd)
			if err != nil {
				return err
			}
			return run(cmd.OutOrStdout(), app, req)
		},
	}

	f := cmd.Flags()
	f.StringVar(&flags.Genre, "genre", "", "only games with this genre")
	f.StringVar(&flags.Platform, "platform", "", "only games on this platform")
	f.StringVar(&flags.Tag, "tag", "", "only games with this tag")
	f.StringVar(&flags.Publisher, "publisher", "", "only games from this publisher")
	f.StringVar(&flags.Developer, "developer", "", "only games from this developer")
	f.IntVar(&flags.From, "from", 0, "earliest release year (inclusive)")
	f.IntVar(&flags.To, "to", 0, "latest release year (inclusive)")
	f.StringVar(&flags.Search, "search", "", "case-insensitive title substring")
	f.StringVar(&flags.Sort, "sort", "", "sort order: title, title-desc, year, year-desc")
	f.IntVar(&flags.Page, "page", 1, "page number, clamped to the available pages")

	return cmd
}

// Request converts the flags into a query request. A year bound that was
// not given leaves that side open. Entries without a release year never
// match a year range.
func (f *Flags) Request(cmd *cobra.Command) (query.Request, error) {
	key, err := query.ParseSortKey(f.Sort)
	if err != nil {
		return query.Request{}, err
	}

	req := query.Request{
		Genre:     f.Genre,
		Platform:  f.Platform,
		Tag:       f.Tag,
		Publisher: f.Publisher,
		Developer: f.Developer,
		Search:    f.Search,
		Sort:      key,
		Page:      f.Page,
	}

	fromSet := cmd.Flags().Changed("from")
	toSet := cmd.Flags().Changed("to")
	if fromSet || toSet {
		years := query.YearRange{From: f.From, To: f.To}
		if !fromSet {
			years.From = math.MinInt
		}
		if !toSet {
			years.To = math.MaxInt
		}
		req.Years = &years
	}
	return req, nil
}

func run(w io.Writer, app appcontext.Interface, req query.Request) error {
	format, err := output.Resolve(app.OutputFormat())
	if err != nil {
		return err
	}

	gm, err := app.Client()
	if err != nil {
		return err
	}

	res := gm.Query(req)
	rows := output.NewRows(res.Entries, output.Positions(gm.Entries()))

	app.Logger().Debug().
		Int("total", res.Total).
		Int("page", res.Page).
		Int("max_page", res.MaxPage).
		Msg("Query complete")

	if !format.Tabular() {
		return output.NewFormatter(format).Format(w, page{
			Page:     res.Page,
			MaxPage:  res.MaxPage,
			Total:    res.Total,
			PageSize: res.PageSize,
			Entries:  rows,
		})
	}

	if len(rows) > 0 {
		if err := output.WriteRows(w, format, rows); err != nil {
			return err
		}
	}
	_, err = fmt.Fprintf(w, "Page %d/%d (%d entries)\n", res.Page, res.MaxPage, res.Total)
	return err
}
