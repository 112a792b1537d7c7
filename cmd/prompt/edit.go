package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-prompter/internal/platform/tui"
	"github.com/vovakirdan/tui-prompter/internal/prompter"
	"github.com/vovakirdan/tui-prompter/internal/storage"
)

var flagEditName string

var editCmd = &cobra.Command{
	Use:   "edit [script]",
	Short: "Write or edit a script",
	Long: `Open the script editor. With a script name, loads that script for
editing; without one, starts a blank script.

The editor shows a live preview of the font size the script would be
presented at.

Controls:
  Ctrl+F       - Rehearse (present the script)
  Ctrl+S       - Save the script
  Ctrl+Up/Down - Resize the preview
  Ctrl+C       - Quit

Examples:
  prompt edit
  prompt edit intro
  prompt edit --name standup`,
	Args: cobra.MaximumNArgs(1),
	Run:  runEdit,
}

func init() {
	editCmd.Flags().StringVar(&flagEditName, "name", "", "Name to save the script under")
}

func runEdit(cmd *cobra.Command, args []string) {
	settings := loadSettings()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scripts database: %v\n", err)
		// Continue without storage - editing still works, saving is disabled
		store = nil
	}

	var (
		text       string
		scriptName = flagEditName
	)

	if len(args) == 1 {
		scriptName = args[0]
		if store != nil {
			if script, getErr := store.GetScript(scriptName); getErr == nil {
				text = script.Body
			}
		}
	}

	width, height := terminalSize()

	runErr := tui.Run(tui.Options{
		Store:      store,
		Settings:   settings,
		Session:    prompter.EditorSessionConfig(),
		ScriptName: scriptName,
		Text:       text,
		Width:      width,
		Height:     height,
	})

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running editor: %v\n", runErr)
		os.Exit(1)
	}
}
