// Package export provides the export command, which writes the catalog to
// another file as the canonical document or as YAML.
package export

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/agentstation/gamemage"
	"github.com/agentstation/gamemage/internal/appcontext"
	"github.com/agentstation/gamemage/internal/output"
	"github.com/agentstation/gamemage/pkg/constants"
	"github.com/agentstation/gamemage/pkg/errors"
)

// NewCommand creates the export command with app dependencies.
func NewCommand(app appcontext.Interface) *cobra.Command {
	return &cobra.Command{
		Use:     "export <path>",
		GroupID: "management",
		Short:   "Write the catalog to another file",
		Long: `Export writes the whole catalog to path. The default, and -o json, is the
canonical catalog document; -o yaml writes a YAML list instead. The
catalog's own document is not touched.`,
		Example: `  gamemage export backup.json
  gamemage export games.yaml -o yaml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			gm, err := app.Client()
			if err != nil {
				return err
			}
			format, err := output.ParseFormat(app.OutputFormat())
			if err != nil {
				return err
			}
			if err := Run(gm, args[0], format); err != nil {
				return err
			}
			app.Logger().Info().Str("path", args[0]).Int("entries", gm.Len()).Msg("Catalog exported")
			return nil
		},
	}
}

// Run writes the catalog held by gm to path in format.
func Run(gm gamemage.Client, path string, format output.Format) error {
	switch format {
	case output.FormatYAML:
		f, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, constants.FilePermissions)
		if err != nil {
			return errors.WrapIO("create", path, err)
		}
		entries := gm.Entries()
		rows := output.NewRows(entries, output.Positions(entries))
		if err := output.NewFormatter(output.FormatYAML).Format(f, rows); err != nil {
			_ = f.Close()
			return errors.WrapIO("write", path, err)
		}
		return errors.WrapIO("close", path, f.Close())
	case output.FormatJSON, output.FormatTable, output.FormatWide, "":
		return gm.SaveTo(path)
	default:
		return errors.NewValidationError("format", string(format), "export supports json or yaml")
	}
}
