package main

import (
	"fmt"
	"os"
	"unicode/utf8"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-prompter/internal/storage"
)

var flagListLimit int

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved scripts",
	Long:  `Shows all scripts saved in the database, most recently edited first.`,
	Run:   runList,
}

func init() {
	listCmd.Flags().IntVar(&flagListLimit, "limit", 0, "Maximum number of scripts to show (0 = default)")
}

func runList(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scripts database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	scripts, err := store.ListScripts(flagListLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error listing scripts: %v\n", err)
		os.Exit(1)
	}

	if len(scripts) == 0 {
		fmt.Println("No scripts saved.")
		fmt.Println()
		fmt.Println("Run 'prompt edit' to write one.")
		return
	}

	fmt.Println("Saved scripts:")
	fmt.Println()

	// Calculate column widths
	maxNameLen := 4 // "Name" header
	for _, s := range scripts {
		if len(s.Name) > maxNameLen {
			maxNameLen = len(s.Name)
		}
	}

	// Print header
	fmt.Printf("  %-*s  %-6s  %s\n", maxNameLen, "Name", "Words", "Edited")
	fmt.Printf("  %-*s  %-6s  %s\n", maxNameLen, "----", "-----", "------")

	// Print scripts
	for _, s := range scripts {
		dateStr := s.UpdatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-*s  %-6d  %s\n", maxNameLen, s.Name, wordCount(s.Body), dateStr)
	}

	fmt.Println()
	fmt.Println("Run 'prompt play <name>' to present a script.")
}

func wordCount(body string) int {
	count := 0
	inWord := false
	for len(body) > 0 {
		r, size := utf8.DecodeRuneInString(body)
		body = body[size:]
		if r == ' ' || r == '\n' || r == '\t' || r == '\r' {
			inWord = false
			continue
		}
		if !inWord {
			count++
			inWord = true
		}
	}
	return count
}
