package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matsen/citeline/internal/cite"
)

var listForce bool

func init() {
	listCmd.Flags().BoolVar(&listForce, "reload", false, "Force a reload even if the path set is unchanged")
	rootCmd.AddCommand(listCmd)
}

var listCmd = &cobra.Command{
	Use:   "list [document]",
	Short: "List the bibliography entries available to a document",
	Long: `List the citation keys and display labels of every entry in the
document's effective bibliography. This is the choice list an editor
presents for selection.

Examples:
  cit list paper.md
  cit list --reload paper.md
  cit list`,
	Args: cobra.MaximumNArgs(1),
	RunE: runList,
}

func runList(cmd *cobra.Command, args []string) error {
	var docPath string
	if len(args) > 0 {
		docPath = args[0]
	}

	sess := newSession()
	state := refresh(sess, loadDocument(docPath), listForce)

	if humanOutput {
		if len(state.Choices) == 0 {
			fmt.Println("No entries found")
		} else {
			fmt.Printf("%d entries:\n\n", len(state.Choices))
			for _, c := range state.Choices {
				fmt.Printf("  %-20s %s\n", c.Key, c.Label)
			}
		}
	} else {
		choices := state.Choices
		if choices == nil {
			choices = []cite.Choice{}
		}
		outputJSON(choices)
	}
	return nil
}
