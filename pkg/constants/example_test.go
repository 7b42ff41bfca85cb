package constants_test

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/agentstation/gamemage/pkg/constants"
)

// Example demonstrates using constants for common operations
func Example() {
	dir, err := os.MkdirTemp("", "gamemage-example")
	if err != nil {
		panic(err)
	}
	defer func() { _ = os.RemoveAll(dir) }()

	images := filepath.Join(dir, constants.DefaultImagesDir)
	if err := os.MkdirAll(images, constants.DirPermissions); err != nil {
		panic(err)
	}

	file := filepath.Join(dir, "games_all.json")
	if err := os.WriteFile(file, []byte("[]"), constants.FilePermissions); err != nil {
		panic(err)
	}

	fmt.Printf("Created dir with %o permissions\n", constants.DirPermissions)
	fmt.Printf("Created file with %o permissions\n", constants.FilePermissions)
	// Output:
	// Created dir with 755 permissions
	// Created file with 644 permissions
}

// Example_paging demonstrates the fixed page size
func Example_paging() {
	total := 250
	pages := (total + constants.PageSize - 1) / constants.PageSize
	fmt.Printf("%d entries fill %d pages of %d\n", total, pages, constants.PageSize)
	// Output:
	// 250 entries fill 3 pages of 100
}
