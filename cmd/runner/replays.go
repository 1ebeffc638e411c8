package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/mkovalev/tui-runner/internal/config"
	"github.com/mkovalev/tui-runner/internal/core"
	"github.com/mkovalev/tui-runner/internal/game"
	"github.com/mkovalev/tui-runner/internal/platform/tui"
	"github.com/mkovalev/tui-runner/internal/replay"
	"github.com/mkovalev/tui-runner/internal/storage"
)

var (
	flagList   bool
	flagVerify int64
)

var replaysCmd = &cobra.Command{
	Use:   "replays",
	Short: "Browse, watch, and verify recorded runs",
	Long: `Open an interactive browser of recorded runs. Selecting a run
replays it in the terminal exactly as it was played.

With --list, prints the recorded runs and exits.
With --verify, re-simulates a recording headlessly and checks that it
reproduces the recorded score.

Examples:
  runner replays
  runner replays --list
  runner replays --verify 3`,
	Args: cobra.NoArgs,
	Run:  runReplays,
}

func init() {
	replaysCmd.Flags().BoolVar(&flagList, "list", false, "Print recorded runs and exit")
	replaysCmd.Flags().Int64Var(&flagVerify, "verify", 0, "Re-simulate the recording with this ID and check its score")
}

func runReplays(_ *cobra.Command, _ []string) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	dbPath := cfg.Recording.Database
	if flagDBPath != "" {
		dbPath = flagDBPath
	}

	store, err := storage.Open(dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening recordings database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	switch {
	case flagVerify != 0:
		verifyRecording(store, flagVerify)
	case flagList:
		listRecordings(store)
	default:
		browseRecordings(store)
	}
}

// listRecordings prints the stored runs as a plain table.
func listRecordings(store *storage.Store) {
	recordings, err := store.Recordings(20)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving recordings: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Recorded Runs")
	fmt.Println()

	if len(recordings) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'runner play --record' to save one!")
		return
	}

	fmt.Printf("  %-6s  %-10s  %-10s  %s\n", "ID", "Score", "Frames", "Date")
	fmt.Printf("  %-6s  %-10s  %-10s  %s\n", "--", "-----", "------", "----")

	for _, rec := range recordings {
		dateStr := rec.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-6d  %-10d  %-10d  %s\n", rec.ID, rec.Score, rec.Frames, dateStr)
	}
}

// verifyRecording re-simulates a recording and reports whether it holds up.
func verifyRecording(store *storage.Store, id int64) {
	rec, err := store.RecordingByID(id)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving recording: %v\n", err)
		os.Exit(1)
	}
	if rec == nil {
		fmt.Fprintf(os.Stderr, "Error: no recording with ID %d\n", id)
		os.Exit(1)
	}

	if err := replay.Verify(*rec); err != nil {
		fmt.Fprintf(os.Stderr, "Recording %d FAILED verification: %v\n", id, err)
		os.Exit(1)
	}

	fmt.Printf("Recording %d verified: %d frames reproduce score %d\n", id, rec.Frames, rec.Score)
}

// browseRecordings opens the interactive browser, then replays the selection.
func browseRecordings(store *storage.Store) {
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	id, err := tui.RunBrowser(store, width, height)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error running browser: %v\n", err)
		os.Exit(1)
	}
	if id == 0 {
		return
	}

	rec, err := store.RecordingByID(id)
	if err != nil || rec == nil {
		fmt.Fprintf(os.Stderr, "Error retrieving recording %d\n", id)
		os.Exit(1)
	}

	runtimeCfg := core.RuntimeConfig{
		ScreenW: width,
		ScreenH: height,
	}

	if err := tui.RunPlayback(game.New(), *rec, runtimeCfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error running playback: %v\n", err)
		os.Exit(1)
	}
}
