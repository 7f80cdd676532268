package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matsen/citeline/internal/index"
)

var (
	searchDoc   string
	searchLimit int
)

func init() {
	searchCmd.Flags().StringVar(&searchDoc, "doc", "", "Document whose bibliography to search")
	searchCmd.Flags().IntVar(&searchLimit, "limit", 20, "Maximum results to return")
	rootCmd.AddCommand(searchCmd)
}

var searchCmd = &cobra.Command{
	Use:   "search QUERY...",
	Short: "Search bibliography entries by key, author, or title",
	Long: `Search the document's bibliography with full-text matching over
keys, titles, authors, and venues. The index is built in memory from
the loaded entries on every invocation.

Examples:
  cit search beetles
  cit search --doc paper.md smith phylogenetics`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSearch,
}

func runSearch(cmd *cobra.Command, args []string) error {
	sess := newSession()
	refresh(sess, loadDocument(searchDoc), false)

	db, err := index.Open(":memory:")
	if err != nil {
		exitWithError(ExitError, "opening index: %v", err)
	}
	defer db.Close()

	if _, err := db.Rebuild(sess.Snapshot()); err != nil {
		exitWithError(ExitError, "building index: %v", err)
	}

	results, err := db.Search(strings.Join(args, " "), searchLimit)
	if err != nil {
		exitWithError(ExitError, "searching: %v", err)
	}

	if humanOutput {
		if len(results) == 0 {
			fmt.Println("No matches")
		} else {
			for i, r := range results {
				fmt.Printf("%d. %s\n", i+1, r.Key)
				fmt.Printf("   %s\n", r.Title)
				fmt.Printf("   %s (%s)\n\n", r.Authors, r.Year)
			}
		}
	} else {
		if results == nil {
			results = []index.Result{}
		}
		outputJSON(results)
	}
	return nil
}
