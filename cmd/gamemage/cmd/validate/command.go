// Package validate provides the validate command, which loads the catalog
// and reports malformed and invalid entries.
package validate

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/agentstation/gamemage"
	"github.com/agentstation/gamemage/internal/appcontext"
	"github.com/agentstation/gamemage/pkg/errors"
)

// NewCommand creates the validate command with app dependencies.
func NewCommand(app appcontext.Interface) *cobra.Command {
	return &cobra.Command{
		Use:     "validate",
		GroupID: "management",
		Short:   "Check the catalog document for malformed or invalid entries",
		Long: `Validate loads the catalog, lists every object that was skipped as
malformed with its byte offset, and checks each loaded entry against the
rules applied when adding. It exits non-zero when anything was found.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			gm, err := app.Client()
			if err != nil {
				return err
			}
			if _, err := os.Stat(gm.Path()); err != nil {
				return errors.WrapIO("read", gm.Path(), err)
			}
			return Run(cmd.OutOrStdout(), gm)
		},
	}
}

// Run writes the findings for gm to w and returns an error when the
// catalog has skipped or invalid entries.
func Run(w io.Writer, gm gamemage.Client) error {
	report := gm.Report()
	for _, skip := range report.Skipped {
		_, _ = fmt.Fprintf(w, "skipped at offset %d: %v\n", skip.Offset, skip.Err)
	}

	invalid := 0
	for i, e := range gm.Entries() {
		if err := e.Validate(); err != nil {
			invalid++
			_, _ = fmt.Fprintf(w, "entry %d (%s): %v\n", i, e.Label(), err)
		}
	}

	_, _ = fmt.Fprintf(w, "%s: %s, %d invalid\n", gm.Path(), report.String(), invalid)

	if !report.Clean() || invalid > 0 {
		return errors.NewValidationError("catalog", gm.Path(),
			fmt.Sprintf("%d skipped and %d invalid entries", len(report.Skipped), invalid))
	}
	return nil
}
