package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(resolveCmd)
}

var resolveCmd = &cobra.Command{
	Use:   "resolve [document]",
	Short: "Show the effective bibliography path set for a document",
	Long: `Show which bibliography files apply to a document without loading them.

Paths declared in the document's front matter take precedence over the
configured bibliography; relative declarations resolve against the
document's directory.

Examples:
  cit resolve paper.md
  cit resolve`,
	Args: cobra.MaximumNArgs(1),
	RunE: runResolve,
}

// ResolveResponse is the response for the resolve command.
type ResolveResponse struct {
	Paths []string `json:"paths"`
}

func runResolve(cmd *cobra.Command, args []string) error {
	var docPath string
	if len(args) > 0 {
		docPath = args[0]
	}

	sess := newSession()
	// ErrNoBibliography is a reportable result here, not a failure.
	state, _ := sess.Resolve(loadDocument(docPath))
	for _, w := range state.Warnings {
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: %s\n", w)
	}

	if humanOutput {
		if state.Paths.Empty() {
			fmt.Println("no bibliography configured")
		} else {
			for _, p := range state.Paths {
				fmt.Println(p)
			}
		}
	} else {
		outputJSON(ResolveResponse{Paths: []string(state.Paths)})
	}
	return nil
}
