package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-prompter/internal/config"
	"github.com/vovakirdan/tui-prompter/internal/core"
	"github.com/vovakirdan/tui-prompter/internal/platform/tui"
	"github.com/vovakirdan/tui-prompter/internal/prompter"
	"github.com/vovakirdan/tui-prompter/internal/storage"
)

var (
	flagPlayFile    string
	flagPlaySpeed   float64
	flagPlaySpacing string
	flagNoScroll    bool
	flagNoCountdown bool
)

var playCmd = &cobra.Command{
	Use:   "play [script]",
	Short: "Present a script",
	Long: `Present a saved script (by name) or a text file, sized to fill
the terminal and scrolling at a steady pace.

Controls:
  +/-        - Resize text (disables auto-sizing)
  Arrows     - Nudge the text position (when not scrolling)
  Tab        - Toggle scrolling
  1/2/3      - Scroll speed: slow, normal, fast
  t/w        - Letter spacing: tight, wide
  Esc        - Back to idle
  Q/Ctrl+C   - Quit

Examples:
  prompt play intro
  prompt play --file ./talk.txt
  prompt play intro --speed 2
  prompt play intro --no-scroll`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagPlayFile, "file", "", "Read the script from a text file instead of the database")
	playCmd.Flags().Float64Var(&flagPlaySpeed, "speed", 0, "Scroll speed factor: 0.5, 1, or 2 (0 = config default)")
	playCmd.Flags().StringVar(&flagPlaySpacing, "spacing", "", "Letter spacing: tight or wide")
	playCmd.Flags().BoolVar(&flagNoScroll, "no-scroll", false, "Show the script as a static wrapped block")
	playCmd.Flags().BoolVar(&flagNoCountdown, "no-countdown", false, "Skip the countdown before scrolling")
}

func runPlay(cmd *cobra.Command, args []string) {
	if len(args) == 0 && flagPlayFile == "" {
		fmt.Fprintln(os.Stderr, "Error: give a script name or --file <path>")
		fmt.Fprintln(os.Stderr, "Run 'prompt list' to see saved scripts.")
		os.Exit(1)
	}

	settings := loadSettings()

	// Flag overrides on top of config
	if flagPlaySpeed != 0 {
		settings.ScrollSpeed = flagPlaySpeed
	}
	if flagPlaySpacing != "" {
		spacing, err := config.ParseSpacing(flagPlaySpacing)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		settings.Spacing = spacing
	}
	if flagNoScroll {
		settings.ScrollingEnabled = false
	}
	if flagNoCountdown {
		settings.CountdownEnabled = false
	}

	var (
		text       string
		scriptName string
		store      *storage.Store
	)

	if flagPlayFile != "" {
		data, err := os.ReadFile(flagPlayFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading file: %v\n", err)
			os.Exit(1)
		}
		text = strings.TrimRight(string(data), "\n")
	} else {
		scriptName = args[0]

		var err error
		store, err = storage.Open(flagDBPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening scripts database: %v\n", err)
			os.Exit(1)
		}

		script, err := store.GetScript(scriptName)
		if err != nil {
			store.Close()
			fmt.Fprintf(os.Stderr, "Error: unknown script %q\n", scriptName)
			fmt.Fprintln(os.Stderr, "Run 'prompt list' to see saved scripts.")
			os.Exit(1)
		}
		text = script.Body
	}

	width, height := terminalSize()

	runErr := tui.Run(tui.Options{
		Store:             store,
		Settings:          settings,
		Session:           prompter.PresentationSessionConfig(),
		ScriptName:        scriptName,
		Text:              text,
		StartPresenting:   true,
		FollowOrientation: true,
		Width:             width,
		Height:            height,
	})

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running prompter: %v\n", runErr)
		os.Exit(1)
	}
}

// loadSettings reads the config file (custom path, user path, or embedded
// defaults) and converts it to presentation settings.
func loadSettings() core.Settings {
	cfg, err := config.Load(flagConfigPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not load config: %v\n", err)
		cfg = config.DefaultConfig()
	}
	return cfg.Settings()
}

func terminalSize() (int, int) {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return width, height
}
