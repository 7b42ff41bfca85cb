package facets_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/gamemage"
	"github.com/agentstation/gamemage/cmd/gamemage/cmd/facets"
	"github.com/agentstation/gamemage/internal/appcontext"
	"github.com/agentstation/gamemage/pkg/catalogs"
	"github.com/agentstation/gamemage/pkg/codec"
	"github.com/agentstation/gamemage/pkg/errors"
	"github.com/agentstation/gamemage/pkg/logging"
)

func execute(t *testing.T, format string, args ...string) (string, error) {
	t.Helper()
	doom := catalogs.NewEntry("Doom", "id Software", "GT Interactive").WithGenres([]string{"FPS", "action"})
	doom.ReleaseYear = catalogs.Ptr(1993)
	myst := catalogs.NewEntry("Myst", "Cyan", "Broderbund").WithGenres([]string{"Adventure"})
	myst.ReleaseYear = catalogs.Ptr(1995)

	path := filepath.Join(t.TempDir(), "games_all.json")
	require.NoError(t, os.WriteFile(path, codec.Encode([]catalogs.Entry{doom, myst}), 0o644))
	gm, err := gamemage.New(gamemage.WithCatalogPath(path), gamemage.WithLogger(logging.NewNopLogger()))
	require.NoError(t, err)

	app := &appcontext.Mock{
		ClientFunc: func() (gamemage.Client, error) { return gm, nil },
		Format:     format,
	}
	var buf bytes.Buffer
	cmd := facets.NewCommand(app)
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(args)
	err = cmd.Execute()
	return buf.String(), err
}

func TestFacetsCommand(t *testing.T) {
	t.Run("genres as json", func(t *testing.T) {
		out, err := execute(t, "json", "genres")
		require.NoError(t, err)
		var genres []string
		require.NoError(t, json.Unmarshal([]byte(out), &genres))
		assert.Equal(t, []string{"action", "Adventure", "FPS"}, genres)
	})

	t.Run("years as text", func(t *testing.T) {
		out, err := execute(t, "table", "years")
		require.NoError(t, err)
		assert.Equal(t, "1993-1995\n", out)
	})

	t.Run("summary as json", func(t *testing.T) {
		out, err := execute(t, "json")
		require.NoError(t, err)
		var f gamemage.Facets
		require.NoError(t, json.Unmarshal([]byte(out), &f))
		assert.Equal(t, []string{"Broderbund", "GT Interactive"}, f.Publishers)
		assert.Equal(t, 1993, f.MinYear)
		assert.Equal(t, 1995, f.MaxYear)
	})

	t.Run("summary table", func(t *testing.T) {
		out, err := execute(t, "table")
		require.NoError(t, err)
		assert.Contains(t, out, "Developers")
		assert.Contains(t, out, "1993-1995")
	})
}

func TestValues(t *testing.T) {
	f := gamemage.Facets{Platforms: []string{"PC"}, Developers: []string{"Cyan"}}

	values, header, err := facets.Values(f, "platforms")
	require.NoError(t, err)
	assert.Equal(t, []string{"PC"}, values)
	assert.Equal(t, "Platform", header)

	_, _, err = facets.Values(f, "ratings")
	assert.True(t, errors.IsValidationError(err))
}
