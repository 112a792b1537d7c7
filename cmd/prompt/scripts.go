package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-prompter/internal/storage"
)

var flagImportName string

var scriptsCmd = &cobra.Command{
	Use:   "scripts",
	Short: "Manage saved scripts",
	Long: `Manage the script database.

Subcommands:
  import <file>  - Save a text file as a script
  rm <script>    - Delete a saved script

Examples:
  prompt scripts import ./talk.txt
  prompt scripts import ./talk.txt --name keynote
  prompt scripts rm keynote`,
}

var scriptsImportCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Save a text file as a script",
	Args:  cobra.ExactArgs(1),
	Run:   runScriptsImport,
}

var scriptsRmCmd = &cobra.Command{
	Use:   "rm <script>",
	Short: "Delete a saved script",
	Args:  cobra.ExactArgs(1),
	Run:   runScriptsRm,
}

func init() {
	scriptsImportCmd.Flags().StringVar(&flagImportName, "name", "", "Script name (default: file name without extension)")

	scriptsCmd.AddCommand(scriptsImportCmd)
	scriptsCmd.AddCommand(scriptsRmCmd)
}

func runScriptsImport(cmd *cobra.Command, args []string) {
	path := args[0]

	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading file: %v\n", err)
		os.Exit(1)
	}

	name := flagImportName
	if name == "" {
		base := filepath.Base(path)
		name = strings.TrimSuffix(base, filepath.Ext(base))
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scripts database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	body := strings.TrimRight(string(data), "\n")
	if _, err := store.SaveScript(name, body); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving script: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Saved %q (%d words)\n", name, wordCount(body))
}

func runScriptsRm(cmd *cobra.Command, args []string) {
	name := args[0]

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scripts database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if err := store.DeleteScript(name); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			fmt.Fprintf(os.Stderr, "Error: unknown script %q\n", name)
		} else {
			fmt.Fprintf(os.Stderr, "Error deleting script: %v\n", err)
		}
		os.Exit(1)
	}

	fmt.Printf("Deleted %q\n", name)
}
