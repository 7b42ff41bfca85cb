package app

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/goccy/go-yaml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/gamemage"
	"github.com/agentstation/gamemage/pkg/catalogs"
	"github.com/agentstation/gamemage/pkg/codec"
	"github.com/agentstation/gamemage/pkg/errors"
	"github.com/agentstation/gamemage/pkg/logging"
)

// run executes one CLI invocation against catalog and returns its output.
func run(t *testing.T, catalog string, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	a, err := New("1.0.0", "abc123", "2026-01-01", "test",
		WithOutput(&buf),
		WithLogger(logging.NewNopLogger()),
	)
	require.NoError(t, err)

	all := append([]string{"--catalog", catalog, "--media-root", filepath.Dir(catalog)}, args...)
	err = a.Execute(context.Background(), all)
	return buf.String(), err
}

func seed(t *testing.T, entries ...catalogs.Entry) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "games_all.json")
	require.NoError(t, os.WriteFile(path, codec.Encode(entries), 0o644))
	return path
}

func game(title string, year int, genres ...string) catalogs.Entry {
	e := catalogs.NewEntry(title, title+" Studio", title+" Publishing")
	e.ReleaseYear = catalogs.Ptr(year)
	e.Genres = genres
	return e
}

func load(t *testing.T, path string) []catalogs.Entry {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	entries, report := codec.Decode(data)
	require.True(t, report.Clean(), report.String())
	return entries
}

func TestApp_New(t *testing.T) {
	app, err := New("1.0.0", "abc123", "2026-01-01", "test")
	require.NoError(t, err)

	assert.Equal(t, "1.0.0", app.Version())
	assert.Equal(t, "abc123", app.Commit())
	assert.Equal(t, "2026-01-01", app.Date())
	assert.Equal(t, "test", app.BuiltBy())
	assert.NotNil(t, app.Logger())
	require.NotNil(t, app.Config())
	assert.NotEmpty(t, app.Config().CatalogPath)
	assert.True(t, app.Config().Locking)
}

func TestApp_Client_Singleton(t *testing.T) {
	t.Setenv("GAMEMAGE_CATALOG_PATH", filepath.Join(t.TempDir(), "games.json"))
	app, err := New("1.0.0", "test", "2026-01-01", "test", WithLogger(logging.NewNopLogger()))
	require.NoError(t, err)

	const goroutines = 20
	var wg sync.WaitGroup
	clients := make([]gamemage.Client, goroutines)
	for i := range goroutines {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			c, err := app.Client()
			assert.NoError(t, err)
			clients[idx] = c
		}(i)
	}
	wg.Wait()

	for _, c := range clients[1:] {
		assert.Same(t, clients[0], c)
	}

	other, err := app.ClientWithOptions(gamemage.WithLocking(false))
	require.NoError(t, err)
	assert.NotSame(t, clients[0], other)
}

func TestLoadConfig_Environment(t *testing.T) {
	t.Setenv("GAMEMAGE_CATALOG_PATH", "/tmp/env-games.json")
	t.Setenv("GAMEMAGE_MEDIA_ROOT", "/tmp/media")
	t.Setenv("GAMEMAGE_LOG_LEVEL", "debug")
	t.Setenv("GAMEMAGE_LOCKING", "false")

	config, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/env-games.json", config.CatalogPath)
	assert.Equal(t, "/tmp/media", config.MediaRoot)
	assert.Equal(t, "debug", config.EnvLogLevel)
	assert.Empty(t, config.LogLevel)
	assert.False(t, config.Locking)
	assert.Equal(t, "auto", config.LogFormat)
}

func TestConfigFile(t *testing.T) {
	dir := t.TempDir()
	catalog := filepath.Join(dir, "from-file.json")
	configFile := filepath.Join(dir, "gamemage.yaml")
	require.NoError(t, os.WriteFile(configFile, []byte("catalog_path: "+catalog+"\nformat: json\n"), 0o644))

	var buf bytes.Buffer
	a, err := New("1.0.0", "", "", "", WithOutput(&buf), WithLogger(logging.NewNopLogger()))
	require.NoError(t, err)
	require.NoError(t, a.Execute(context.Background(), []string{"--config", configFile, "list"}))

	assert.Equal(t, catalog, a.Config().CatalogPath)
	assert.Equal(t, "json", a.OutputFormat())
	assert.Contains(t, buf.String(), `"total": 0`)

	t.Run("flag beats file", func(t *testing.T) {
		other := filepath.Join(dir, "flag.json")
		a, err := New("1.0.0", "", "", "", WithOutput(&bytes.Buffer{}), WithLogger(logging.NewNopLogger()))
		require.NoError(t, err)
		require.NoError(t, a.Execute(context.Background(), []string{"--config", configFile, "--catalog", other, "list"}))
		assert.Equal(t, other, a.Config().CatalogPath)
	})

	t.Run("unreadable file", func(t *testing.T) {
		a, err := New("1.0.0", "", "", "", WithOutput(&bytes.Buffer{}), WithLogger(logging.NewNopLogger()))
		require.NoError(t, err)
		err = a.Execute(context.Background(), []string{"--config", filepath.Join(dir, "missing.yaml"), "list"})
		var cfgErr *errors.ConfigError
		assert.True(t, errors.As(err, &cfgErr))
	})
}

func TestListCommand(t *testing.T) {
	var entries []catalogs.Entry
	for i := range 250 {
		genre := "RPG"
		if i%2 == 0 {
			genre = "Action"
		}
		entries = append(entries, game("Game "+string(rune('A'+i%26))+strings.Repeat("x", i/26), 1980+i%30, genre))
	}
	path := seed(t, entries...)

	t.Run("json page", func(t *testing.T) {
		out, err := run(t, path, "list", "-o", "json", "--page", "3")
		require.NoError(t, err)

		var got struct {
			Page    int `json:"page"`
			MaxPage int `json:"max_page"`
			Total   int `json:"total"`
			Entries []struct {
				Index int    `json:"index"`
				Title string `json:"title"`
			} `json:"entries"`
		}
		require.NoError(t, json.Unmarshal([]byte(out), &got))
		assert.Equal(t, 3, got.Page)
		assert.Equal(t, 3, got.MaxPage)
		assert.Equal(t, 250, got.Total)
		require.Len(t, got.Entries, 50)
		assert.Equal(t, 200, got.Entries[0].Index)
	})

	t.Run("filters and footer", func(t *testing.T) {
		out, err := run(t, path, "list", "-o", "table", "--genre", "RPG", "--from", "1990", "--to", "1994", "--sort", "year-desc")
		require.NoError(t, err)
		assert.Contains(t, out, "Page 1/1")
		assert.NotContains(t, out, "Action")
	})

	t.Run("page clamps", func(t *testing.T) {
		out, err := run(t, path, "list", "-o", "table", "--page", "99")
		require.NoError(t, err)
		assert.Contains(t, out, "Page 3/3 (250 entries)")
	})

	t.Run("bad sort", func(t *testing.T) {
		_, err := run(t, path, "list", "--sort", "rating")
		assert.True(t, errors.IsValidationError(err))
	})

	t.Run("bad format", func(t *testing.T) {
		_, err := run(t, path, "list", "-o", "xml")
		assert.True(t, errors.IsValidationError(err))
	})
}

func TestEntryCommands(t *testing.T) {
	path := seed(t, game("Doom", 1993, "FPS"))
	cover := filepath.Join(t.TempDir(), "quake.png")
	require.NoError(t, os.WriteFile(cover, []byte("png"), 0o644))

	out, err := run(t, path, "add",
		"--title", "Quake", "--developer", "id Software", "--publisher", "GT Interactive",
		"--genres", "FPS, Action", "--year", "1996", "--rating", "9", "--cover", cover)
	require.NoError(t, err)
	assert.Contains(t, out, "Added Quake / id Software / GT Interactive at index 1")

	entries := load(t, path)
	require.Len(t, entries, 2)
	quake := entries[1]
	assert.Equal(t, []string{"FPS", "Action"}, quake.Genres)
	assert.Equal(t, 9.0, *quake.Rating)
	require.NotNil(t, quake.CoverImagePath)
	assert.FileExists(t, filepath.Join(filepath.Dir(path), filepath.FromSlash(*quake.CoverImagePath)))

	t.Run("add requires publisher", func(t *testing.T) {
		_, err := run(t, path, "add", "--title", "Nope", "--developer", "Nobody")
		assert.True(t, errors.IsValidationError(err))
		assert.Len(t, load(t, path), 2)
	})

	t.Run("show", func(t *testing.T) {
		out, err := run(t, path, "show", "1", "-o", "yaml")
		require.NoError(t, err)
		var got map[string]any
		require.NoError(t, yaml.Unmarshal([]byte(out), &got))
		assert.Equal(t, "Quake", got["title"])
		assert.EqualValues(t, 1, got["index"])
	})

	t.Run("edit changes only given fields", func(t *testing.T) {
		_, err := run(t, path, "edit", "0", "--rating", "8.5", "--tags", "classic", "--clear", "year")
		require.NoError(t, err)

		doom := load(t, path)[0]
		assert.Equal(t, "Doom", *doom.Title)
		assert.Equal(t, 8.5, *doom.Rating)
		assert.Equal(t, []string{"classic"}, doom.Tags)
		assert.Equal(t, []string{"FPS"}, doom.Genres)
		assert.Nil(t, doom.ReleaseYear)
	})

	t.Run("edit rejects invalid rating", func(t *testing.T) {
		_, err := run(t, path, "edit", "0", "--rating", "12")
		assert.True(t, errors.IsValidationError(err))
	})

	t.Run("rm with wrong title conflicts", func(t *testing.T) {
		_, err := run(t, path, "rm", "0", "--confirm-title", "Quake")
		assert.True(t, errors.IsConflict(err))
		assert.Len(t, load(t, path), 2)
	})

	t.Run("rm", func(t *testing.T) {
		out, err := run(t, path, "rm", "0", "--confirm-title", "Doom")
		require.NoError(t, err)
		assert.Contains(t, out, "Removed Doom")
		entries := load(t, path)
		require.Len(t, entries, 1)
		assert.Equal(t, "Quake", *entries[0].Title)
	})

	t.Run("out of range", func(t *testing.T) {
		_, err := run(t, path, "show", "5")
		assert.True(t, errors.IsOutOfRange(err))
	})
}

func TestFacetsCommand(t *testing.T) {
	path := seed(t, game("Doom", 1993, "FPS"), game("Myst", 1993, "Adventure"), game("Quake", 1996, "FPS"))

	out, err := run(t, path, "facets", "genres", "-o", "json")
	require.NoError(t, err)
	var genres []string
	require.NoError(t, json.Unmarshal([]byte(out), &genres))
	assert.Equal(t, []string{"Adventure", "FPS"}, genres)

	out, err = run(t, path, "facets", "years", "-o", "table")
	require.NoError(t, err)
	assert.Equal(t, "1993-1996\n", out)

	out, err = run(t, path, "facets", "-o", "yaml")
	require.NoError(t, err)
	var all gamemage.Facets
	require.NoError(t, yaml.Unmarshal([]byte(out), &all))
	assert.Equal(t, 1993, all.MinYear)
	assert.Len(t, all.Publishers, 3)

	_, err = run(t, path, "facets", "colors")
	assert.True(t, errors.IsValidationError(err))
}

func TestValidateCommand(t *testing.T) {
	t.Run("clean", func(t *testing.T) {
		path := seed(t, game("Doom", 1993))
		out, err := run(t, path, "validate")
		require.NoError(t, err)
		assert.Contains(t, out, "1 decoded, 0 skipped, 0 invalid")
	})

	t.Run("skipped entries fail", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "games.json")
		doc := `[
  {"title" : "Doom", "developer" : "id", "publisher" : "GT"},
  {"title" : "Broken" "developer" : "x"},
  {"title" : "Quake", "developer" : "id", "publisher" : "GT"}
]`
		require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

		out, err := run(t, path, "validate")
		require.Error(t, err)
		assert.True(t, errors.IsValidationError(err))
		assert.Contains(t, out, "skipped at offset")
		assert.Contains(t, out, "2 decoded, 1 skipped")
	})

	t.Run("invalid entries fail", func(t *testing.T) {
		path := seed(t, catalogs.Entry{Title: catalogs.Ptr("Only Title")})
		out, err := run(t, path, "validate")
		require.Error(t, err)
		assert.Contains(t, out, "entry 0 (Only Title / - / -)")
	})

	t.Run("missing catalog", func(t *testing.T) {
		_, err := run(t, filepath.Join(t.TempDir(), "none.json"), "validate")
		require.Error(t, err)
		assert.True(t, errors.IsIO(err))
	})
}

func TestExportCommand(t *testing.T) {
	path := seed(t, game("Doom", 1993, "FPS"), game("Quake", 1996, "FPS"))
	dir := t.TempDir()

	jsonOut := filepath.Join(dir, "backup.json")
	_, err := run(t, path, "export", jsonOut)
	require.NoError(t, err)
	original, err := os.ReadFile(path)
	require.NoError(t, err)
	exported, err := os.ReadFile(jsonOut)
	require.NoError(t, err)
	assert.Equal(t, string(original), string(exported))

	yamlOut := filepath.Join(dir, "games.yaml")
	_, err = run(t, path, "export", yamlOut, "-o", "yaml")
	require.NoError(t, err)
	data, err := os.ReadFile(yamlOut)
	require.NoError(t, err)
	var rows []map[string]any
	require.NoError(t, yaml.Unmarshal(data, &rows))
	require.Len(t, rows, 2)
	assert.Equal(t, "Quake", rows[1]["title"])
}

func TestVersionCommand(t *testing.T) {
	path := seed(t)
	out, err := run(t, path, "version")
	require.NoError(t, err)
	assert.Equal(t, "gamemage 1.0.0\n", out)

	out, err = run(t, path, "version", "-v")
	require.NoError(t, err)
	assert.Contains(t, out, "commit:   abc123")
}
