package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/matsen/citeline/internal/watch"
)

var watchInterval time.Duration

func init() {
	watchCmd.Flags().DurationVar(&watchInterval, "interval", watch.DefaultInterval, "Poll interval")
	rootCmd.AddCommand(watchCmd)
}

var watchCmd = &cobra.Command{
	Use:   "watch [document]",
	Short: "Watch the bibliography files and reload on change",
	Long: `Poll the document's bibliography files for modification and reload
the entries whenever one changes. Each reload emits the refreshed
choice list. Runs until interrupted.

Examples:
  cit watch paper.md
  cit watch --interval 5s paper.md`,
	Args: cobra.MaximumNArgs(1),
	RunE: runWatch,
}

// WatchEvent is emitted once per detected change.
type WatchEvent struct {
	Stale   []string `json:"stale"`
	Entries int      `json:"entries"`
}

func runWatch(cmd *cobra.Command, args []string) error {
	var docPath string
	if len(args) > 0 {
		docPath = args[0]
	}

	sess := newSession()
	doc := loadDocument(docPath)
	state := refresh(sess, doc, false)

	if humanOutput {
		fmt.Printf("watching %d path(s), %d entries loaded\n", len(state.Paths), len(state.Choices))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	w := watch.New(watchInterval)
	for {
		stale, err := w.Poll(ctx, state.Paths)
		if err != nil {
			// Interrupted.
			return nil
		}
		if len(stale) == 0 {
			continue
		}

		state = refresh(sess, doc, true)
		if humanOutput {
			fmt.Printf("reloaded after change to %v: %d entries\n", stale, len(state.Choices))
		} else {
			outputJSON(WatchEvent{Stale: stale, Entries: len(state.Choices)})
		}
	}
}
