package entry_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/gamemage"
	"github.com/agentstation/gamemage/cmd/gamemage/cmd/entry"
	"github.com/agentstation/gamemage/internal/appcontext"
	"github.com/agentstation/gamemage/pkg/catalogs"
	"github.com/agentstation/gamemage/pkg/codec"
	"github.com/agentstation/gamemage/pkg/errors"
	"github.com/agentstation/gamemage/pkg/logging"
)

type fixture struct {
	app  *appcontext.Mock
	path string
	log  *logging.TestLogger
}

func newFixture(t *testing.T, entries ...catalogs.Entry) *fixture {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "games_all.json")
	require.NoError(t, os.WriteFile(path, codec.Encode(entries), 0o644))
	gm, err := gamemage.New(
		gamemage.WithCatalogPath(path),
		gamemage.WithMediaRoot(dir),
		gamemage.WithLogger(logging.NewNopLogger()),
	)
	require.NoError(t, err)

	tl := logging.NewTestLogger(t)
	return &fixture{
		app: &appcontext.Mock{
			ClientFunc: func() (gamemage.Client, error) { return gm, nil },
			LoggerFunc: func() *zerolog.Logger { return tl.Logger },
			Format:     "json",
		},
		path: path,
		log:  tl,
	}
}

func (f *fixture) run(t *testing.T, cmd *cobra.Command, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func (f *fixture) saved(t *testing.T) []catalogs.Entry {
	t.Helper()
	data, err := os.ReadFile(f.path)
	require.NoError(t, err)
	entries, report := codec.Decode(data)
	require.True(t, report.Clean(), report.String())
	return entries
}

func game(title string) catalogs.Entry {
	return catalogs.NewEntry(title, title+" Studio", title+" Publishing")
}

func TestAddCommand(t *testing.T) {
	f := newFixture(t, game("Quake"))

	out, err := f.run(t, entry.NewAddCommand(f.app),
		"--title", "Doom", "--developer", "id Software", "--publisher", "GT Interactive",
		"--genres", "FPS, Action", "--year", "1993", "--rating", "9.5")
	require.NoError(t, err)
	assert.Equal(t, "Added Doom / id Software / GT Interactive at index 1\n", out)

	saved := f.saved(t)
	require.Len(t, saved, 2)
	assert.Equal(t, []string{"FPS", "Action"}, saved[1].Genres)
	assert.Equal(t, 1993, *saved[1].ReleaseYear)
	assert.Equal(t, 9.5, *saved[1].Rating)

	f.log.AssertContains(t, `"operation":"add"`)
	f.log.AssertContains(t, `"index":1`)

	t.Run("missing publisher", func(t *testing.T) {
		_, err := f.run(t, entry.NewAddCommand(f.app), "--title", "Myst", "--developer", "Cyan")
		assert.True(t, errors.IsValidationError(err))
		assert.Len(t, f.saved(t), 2)
	})
}

func TestShowCommand(t *testing.T) {
	f := newFixture(t, game("Quake"), game("Doom"))

	out, err := f.run(t, entry.NewShowCommand(f.app), "1")
	require.NoError(t, err)

	var row struct {
		Index int    `json:"index"`
		ID    string `json:"id"`
		Title string `json:"title"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &row))
	assert.Equal(t, 1, row.Index)
	assert.Equal(t, "Doom", row.Title)
	assert.NotEmpty(t, row.ID)

	_, err = f.run(t, entry.NewShowCommand(f.app), "7")
	assert.True(t, errors.IsOutOfRange(err))
}

func TestEditCommand(t *testing.T) {
	f := newFixture(t, game("Quake").WithGenres([]string{"FPS"}))

	out, err := f.run(t, entry.NewEditCommand(f.app), "0", "--rating", "8", "--clear", "genres")
	require.NoError(t, err)
	assert.Contains(t, out, "Updated Quake")

	saved := f.saved(t)
	require.Len(t, saved, 1)
	assert.Equal(t, 8.0, *saved[0].Rating)
	assert.Empty(t, saved[0].Genres)
	f.log.AssertContains(t, `"operation":"edit"`)
}

func TestRemoveCommand(t *testing.T) {
	t.Run("title mismatch keeps the entry", func(t *testing.T) {
		f := newFixture(t, game("Quake"), game("Doom"))
		_, err := f.run(t, entry.NewRemoveCommand(f.app), "0", "--confirm-title", "Doom")
		assert.True(t, errors.IsConflict(err))
		assert.Len(t, f.saved(t), 2)
	})

	t.Run("confirmed", func(t *testing.T) {
		f := newFixture(t, game("Quake"), game("Doom"))
		out, err := f.run(t, entry.NewRemoveCommand(f.app), "0", "--confirm-title", "Quake")
		require.NoError(t, err)
		assert.Equal(t, "Removed Quake / Quake Studio / Quake Publishing\n", out)

		saved := f.saved(t)
		require.Len(t, saved, 1)
		assert.Equal(t, "Doom", *saved[0].Title)
		f.log.AssertContains(t, `"operation":"remove"`)
		f.log.AssertContains(t, `"index":0`)
	})
}
