package gamemage_test

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/agentstation/gamemage"
	"github.com/agentstation/gamemage/pkg/catalogs"
	"github.com/agentstation/gamemage/pkg/logging"
	"github.com/agentstation/gamemage/pkg/query"
)

// Example shows the basic add, save and query flow.
func Example() {
	dir, err := os.MkdirTemp("", "gamemage-example")
	if err != nil {
		panic(err)
	}
	defer func() { _ = os.RemoveAll(dir) }()

	gm, err := gamemage.New(
		gamemage.WithCatalogPath(filepath.Join(dir, "games_all.json")),
		gamemage.WithLogger(logging.NewNopLogger()),
	)
	if err != nil {
		panic(err)
	}

	for _, title := range []string{"Quake", "Doom", "Myst"} {
		e := catalogs.NewEntry(title, "Studio", "Publisher")
		if _, err := gm.Add(e); err != nil {
			panic(err)
		}
	}
	if err := gm.Save(); err != nil {
		panic(err)
	}

	res := gm.Query(query.Request{Sort: query.SortTitleAsc, Page: 1})
	for _, e := range res.Entries {
		fmt.Println(*e.Title)
	}
	fmt.Printf("page %d/%d\n", res.Page, res.MaxPage)
	// Output:
	// Doom
	// Myst
	// Quake
	// page 1/1
}
