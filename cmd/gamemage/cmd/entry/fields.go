// Package entry provides the commands that act on a single catalog entry:
// show, add, edit and rm. Entries are addressed by position or by ID.
package entry

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/agentstation/gamemage"
	"github.com/agentstation/gamemage/pkg/catalogs"
	"github.com/agentstation/gamemage/pkg/errors"
)

// clearable lists the fields --clear accepts.
var clearable = []string{
	"genres", "platforms", "translators", "tags",
	"steam-id", "year", "language", "rating",
	"cover", "description",
}

// addFieldFlags registers one flag per entry field.
func addFieldFlags(f *pflag.FlagSet) {
	f.String("title", "", "game title")
	f.String("developer", "", "developer")
	f.String("publisher", "", "publisher")
	f.String("genres", "", "comma separated genres")
	f.String("platforms", "", "comma separated platforms")
	f.String("translators", "", "comma separated translators")
	f.String("tags", "", "comma separated tags")
	f.Int("steam-id", 0, "Steam application ID")
	f.Int("year", 0, "release year")
	f.String("language", "", "language")
	f.Float64("rating", 0, "rating between 0 and 10")
	f.String("cover", "", "image file to import as the cover (png, jpg, jpeg, gif)")
	f.String("cover-path", "", "existing cover reference, stored as given")
	f.String("description-path", "", "description file reference, stored as given")
}

// applyFields copies every changed field flag onto e. Empty text clears an
// optional field; --cover is handled separately by importCover.
func applyFields(cmd *cobra.Command, e *catalogs.Entry) error {
	f := cmd.Flags()

	text := func(name string, dst **string) {
		if f.Changed(name) {
			v, _ := f.GetString(name)
			*dst = optional(v)
		}
	}
	list := func(name string, dst *[]string) {
		if f.Changed(name) {
			v, _ := f.GetString(name)
			*dst = catalogs.ParseList(v)
		}
	}
	number := func(name string, dst **int) {
		if f.Changed(name) {
			v, _ := f.GetInt(name)
			*dst = catalogs.Ptr(v)
		}
	}

	text("title", &e.Title)
	text("developer", &e.Developer)
	text("publisher", &e.Publisher)
	list("genres", &e.Genres)
	list("platforms", &e.Platforms)
	list("translators", &e.Translators)
	list("tags", &e.Tags)
	number("steam-id", &e.SteamID)
	number("year", &e.ReleaseYear)
	text("language", &e.Language)
	text("cover-path", &e.CoverImagePath)
	text("description-path", &e.DescriptionPath)

	if f.Changed("rating") {
		v, _ := f.GetFloat64("rating")
		e.Rating = catalogs.Ptr(v)
	}

	if f.Lookup("clear") != nil {
		fields, _ := f.GetStringSlice("clear")
		for _, field := range fields {
			if err := clearField(e, field); err != nil {
				return err
			}
		}
	}
	return nil
}

// clearField makes one optional field absent.
func clearField(e *catalogs.Entry, field string) error {
	switch strings.ToLower(strings.TrimSpace(field)) {
	case "genres":
		e.Genres = []string{}
	case "platforms":
		e.Platforms = []string{}
	case "translators":
		e.Translators = []string{}
	case "tags":
		e.Tags = []string{}
	case "steam-id":
		e.SteamID = nil
	case "year":
		e.ReleaseYear = nil
	case "language":
		e.Language = nil
	case "rating":
		e.Rating = nil
	case "cover":
		e.CoverImagePath = nil
	case "description":
		e.DescriptionPath = nil
	default:
		return errors.NewValidationError("clear", field, "must be one of "+strings.Join(clearable, ", "))
	}
	return nil
}

// importCover copies the --cover image into the media directory and points
// the entry at it. Call it only once the entry is otherwise valid.
func importCover(cmd *cobra.Command, gm gamemage.Client, e *catalogs.Entry) error {
	if !cmd.Flags().Changed("cover") {
		return nil
	}
	src, _ := cmd.Flags().GetString("cover")
	ref, err := gm.ImportCover(src)
	if err != nil {
		return err
	}
	e.CoverImagePath = catalogs.Ptr(ref)
	return nil
}

func optional(s string) *string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return catalogs.Ptr(s)
}

func printf(cmd *cobra.Command, format string, args ...any) {
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), format, args...)
}
