// Package watch provides the watch command, which keeps a loaded catalog in
// step with its document while other processes edit it.
package watch

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/gamemage/internal/appcontext"
	catalogwatch "github.com/agentstation/gamemage/internal/watch"
	"github.com/agentstation/gamemage/pkg/codec"
	"github.com/agentstation/gamemage/pkg/logging"
)

// NewCommand creates the watch command with app dependencies.
func NewCommand(app appcontext.Interface) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "watch",
		GroupID: "management",
		Short:   "Reload the catalog whenever its document changes",
		Long: `Watch loads the catalog and reloads it each time the document changes on
disk, logging the entry count and any skipped objects. It runs until
interrupted.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			gm, err := app.Client()
			if err != nil {
				return err
			}

			ctx := logging.WithLogger(cmd.Context(), app.Logger())
			ctx = logging.WithCatalog(ctx, gm.Path())
			ctx = logging.WithOperation(ctx, "watch")
			log := logging.FromContext(ctx)

			gm.OnReloaded(func(count int, report codec.Report) {
				log.Info().Int("entries", count).Int("skipped", len(report.Skipped)).Msg("Catalog reloaded")
			})

			debounce, _ := cmd.Flags().GetDuration("debounce")
			w, err := catalogwatch.New(gm.Path(), gm, catalogwatch.WithDebounce(debounce), catalogwatch.WithLogger(log))
			if err != nil {
				return err
			}

			log.Info().Int("entries", gm.Len()).Msg("Watching catalog, press Ctrl+C to stop")
			return w.Run(ctx)
		},
	}
	cmd.Flags().Duration("debounce", 0, "quiet period before reloading (default 250ms)")
	return cmd
}
