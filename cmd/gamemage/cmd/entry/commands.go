package entry

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/agentstation/gamemage/internal/appcontext"
	"github.com/agentstation/gamemage/internal/output"
	"github.com/agentstation/gamemage/pkg/catalogs"
	"github.com/agentstation/gamemage/pkg/logging"
)

// NewShowCommand creates the show command.
func NewShowCommand(app appcontext.Interface) *cobra.Command {
	return &cobra.Command{
		Use:     "show <index|id>",
		GroupID: "core",
		Short:   "Show every field of one game",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := output.Resolve(app.OutputFormat())
			if err != nil {
				return err
			}
			gm, err := app.Client()
			if err != nil {
				return err
			}
			e, index, err := gm.Resolve(args[0])
			if err != nil {
				return err
			}

			if format.Tabular() {
				return output.NewFormatter(format).Format(cmd.OutOrStdout(), output.EntryToTableData(e))
			}
			return output.NewFormatter(format).Format(cmd.OutOrStdout(), output.Row{Index: index, ID: e.ID, Entry: e})
		},
	}
}

// NewAddCommand creates the add command.
func NewAddCommand(app appcontext.Interface) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "add",
		GroupID: "core",
		Short:   "Add a game to the catalog",
		Long: `Add appends a game to the catalog and saves it. Title, developer and
publisher are required. --cover copies an image into the media directory
under images/ and stores the new reference.`,
		Example: `  gamemage add --title Doom --developer "id Software" --publisher "GT Interactive" \
    --genres FPS,Action --platforms PC --year 1993 --rating 9.5 --cover ~/doom.png`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			gm, err := app.Client()
			if err != nil {
				return err
			}

			e := catalogs.Entry{}.Normalize()
			if err := applyFields(cmd, &e); err != nil {
				return err
			}
			if err := e.Validate(); err != nil {
				return err
			}
			if err := importCover(cmd, gm, &e); err != nil {
				return err
			}

			stored, err := gm.Add(e)
			if err != nil {
				return err
			}
			if err := gm.Save(); err != nil {
				return err
			}

			entryLogger(cmd, app, "add", stored.ID, gm.Len()-1).Debug().Msg("Entry added")
			printf(cmd, "Added %s at index %d\n", stored.Label(), gm.Len()-1)
			return nil
		},
	}
	addFieldFlags(cmd.Flags())
	return cmd
}

// NewEditCommand creates the edit command.
func NewEditCommand(app appcontext.Interface) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "edit <index|id>",
		GroupID: "core",
		Short:   "Change fields of a game",
		Long: `Edit changes only the fields whose flags are given. An empty value clears
an optional text or list field; --clear makes any optional field absent.`,
		Example: `  gamemage edit 12 --rating 8.5
  gamemage edit 12 --tags "classic,coop" --clear year`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			gm, err := app.Client()
			if err != nil {
				return err
			}
			current, index, err := gm.Resolve(args[0])
			if err != nil {
				return err
			}

			e := current.Clone()
			if err := applyFields(cmd, &e); err != nil {
				return err
			}
			if err := e.Validate(); err != nil {
				return err
			}
			if err := importCover(cmd, gm, &e); err != nil {
				return err
			}

			if err := gm.UpdateByID(current.ID, e); err != nil {
				return err
			}
			if err := gm.Save(); err != nil {
				return err
			}

			entryLogger(cmd, app, "edit", current.ID, index).Debug().Msg("Entry updated")
			printf(cmd, "Updated %s at index %d\n", e.Label(), index)
			return nil
		},
	}
	addFieldFlags(cmd.Flags())
	cmd.Flags().StringSlice("clear", nil, "optional fields to make absent")
	return cmd
}

// NewRemoveCommand creates the rm command.
func NewRemoveCommand(app appcontext.Interface) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "rm <index|id>",
		GroupID: "core",
		Aliases: []string{"remove"},
		Short:   "Remove a game from the catalog",
		Long: `Rm removes one game and saves the catalog. With --confirm-title the game
is removed only if its title still matches, which guards a positional
index against a catalog that changed in the meantime.`,
		Example: `  gamemage rm 12 --confirm-title Doom`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			gm, err := app.Client()
			if err != nil {
				return err
			}
			e, index, err := gm.Resolve(args[0])
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("confirm-title") {
				title, _ := cmd.Flags().GetString("confirm-title")
				expected := e.Clone()
				expected.Title = catalogs.Ptr(title)
				err = gm.RemoveConfirmed(index, expected)
			} else {
				err = gm.RemoveByID(e.ID)
			}
			if err != nil {
				return err
			}
			if err := gm.Save(); err != nil {
				return err
			}

			entryLogger(cmd, app, "remove", e.ID, index).Debug().Msg("Entry removed")
			printf(cmd, "Removed %s\n", e.Label())
			return nil
		},
	}
	cmd.Flags().String("confirm-title", "", "remove only if the entry has this title")
	return cmd
}

// entryLogger returns the app logger tagged with the operation and entry.
func entryLogger(cmd *cobra.Command, app appcontext.Interface, op string, id catalogs.ID, index int) *zerolog.Logger {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = logging.WithOperation(logging.WithLogger(ctx, app.Logger()), op)
	ctx = logging.WithIndex(logging.WithEntry(ctx, id.String()), index)
	return logging.FromContext(ctx)
}
