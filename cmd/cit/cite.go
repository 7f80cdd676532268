package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matsen/citeline/internal/cite"
)

var (
	citeNarrative bool
	citeDoc       string
)

func init() {
	citeCmd.Flags().BoolVar(&citeNarrative, "narrative", false, "Emit the in-text form without brackets")
	citeCmd.Flags().StringVar(&citeDoc, "doc", "", "Document to validate keys against")
	rootCmd.AddCommand(citeCmd)
}

var citeCmd = &cobra.Command{
	Use:   "cite KEY...",
	Short: "Format citation keys into a citation string",
	Long: `Format one or more citation keys into the string inserted into a
document. The default parenthetical form is bracketed; --narrative
drops the brackets for in-text citations.

With --doc, keys are checked against the document's bibliography and
unknown keys are reported.

Examples:
  cit cite smith2020                # [@smith2020]
  cit cite smith2020 doe2019        # [@smith2020; @doe2019]
  cit cite --narrative smith2020    # @smith2020
  cit cite --doc paper.md smith2020`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCite,
}

func runCite(cmd *cobra.Command, args []string) error {
	citation, err := cite.Format(args, !citeNarrative)
	if err != nil {
		if errors.Is(err, cite.ErrInvalidKey) {
			exitWithError(ExitInvalidKey, "%v", err)
		}
		exitWithError(ExitError, "%v", err)
	}

	var unknown []string
	if citeDoc != "" {
		sess := newSession()
		refresh(sess, loadDocument(citeDoc), false)
		snap := sess.Snapshot()
		for _, key := range args {
			if _, ok := snap.Entries[key]; !ok {
				unknown = append(unknown, key)
			}
		}
	}

	if humanOutput {
		for _, key := range unknown {
			fmt.Fprintf(cmd.ErrOrStderr(), "warning: unknown key: %s\n", key)
		}
		fmt.Println(citation)
	} else {
		outputJSON(CitationResponse{
			Citation:   citation,
			Insertable: cite.IsInsertable(citation),
			Unknown:    unknown,
		})
	}
	return nil
}
