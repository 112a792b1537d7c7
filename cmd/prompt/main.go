// prompt is a terminal teleprompter for reading scripts while recording
// or presenting.
//
// Usage:
//
//	prompt edit              - Write a new script and rehearse it
//	prompt play <script>     - Present a saved script
//	prompt fit <script>      - Compute a script's presentation font size
//	prompt list              - List saved scripts
//	prompt scripts           - Manage saved scripts (import, rm)
//	prompt serve             - Start SSH server for remote reading
//
// Global flags:
//
//	--db <path>       - Set database path (default: ~/.prompt/scripts.db)
//	--config <path>   - Set config YAML path
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagDBPath     string
	flagConfigPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "prompt",
	Short: "Terminal teleprompter - read scripts at a steady pace",
	Long: `prompt is a terminal teleprompter. Write a script, then present it
as a large scrolling line sized to fill your terminal.

Available commands:
  edit     - Write a new script in the editor
  play     - Present a saved script or a text file
  fit      - Compute a script's presentation font size in points
  list     - Show all saved scripts
  scripts  - Manage saved scripts (import, rm)
  serve    - Start SSH server for remote reading

Examples:
  prompt edit
  prompt play intro
  prompt play --file ./talk.txt
  prompt list
  prompt serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.prompt/scripts.db", "Path to scripts database")
	rootCmd.PersistentFlags().StringVar(&flagConfigPath, "config", "", "Path to config YAML")

	// Add subcommands
	rootCmd.AddCommand(editCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(fitCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(scriptsCmd)
	rootCmd.AddCommand(serveCmd)
}
