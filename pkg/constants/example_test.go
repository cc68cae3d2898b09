package constants_test

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/agentstation/agentsmd/pkg/constants"
)

// Example demonstrates using constants for common operations
func Example() {
	// Create directory with standard permissions
	dir := filepath.Join(os.TempDir(), "agentsmd-example")
	if err := os.MkdirAll(dir, constants.DirPermissions); err != nil {
		panic(err)
	}
	defer os.RemoveAll(dir)

	// Create file with standard permissions
	file := filepath.Join(dir, constants.DefaultOutputFile)
	data := []byte("## Example\n")
	if err := os.WriteFile(file, data, constants.FilePermissions); err != nil {
		panic(err)
	}

	fmt.Printf("Created dir with %o permissions\n", constants.DirPermissions)
	fmt.Printf("Created file with %o permissions\n", constants.FilePermissions)
	// Output:
	// Created dir with 755 permissions
	// Created file with 644 permissions
}

// Example_defaults demonstrates the default aggregation paths
func Example_defaults() {
	fmt.Println(constants.DefaultSourceDir)
	fmt.Println(constants.DefaultOutputFile)
	fmt.Println(constants.IndexFileName)
	// Output:
	// docs/code-howtos
	// AGENTS.md
	// index.md
}
