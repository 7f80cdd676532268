// Package main provides the cit CLI entry point.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/matsen/citeline/internal/bib"
	"github.com/matsen/citeline/internal/config"
	"github.com/matsen/citeline/internal/session"
)

// Version is set at build time via ldflags
var Version = "dev"

// humanOutput controls whether to use human-readable output
var humanOutput bool

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(ExitError)
	}
}

var rootCmd = &cobra.Command{
	Use:   "cit",
	Short: "Bibliography resolution and citation formatting",
	Long: `cit resolves which bibliography files apply to a document, loads
their entries, and formats citation keys into Pandoc-style citations.

A document's front matter bibliography declaration takes precedence
over the configured path. All commands output JSON by default for easy
integration with editors and other tools.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&humanOutput, "human", false, "Use human-readable output instead of JSON")
	rootCmd.Version = Version
}

// newSession builds a session from the persisted configuration, with
// .env and CIT_BIBLIOGRAPHY overrides applied.
func newSession() *session.Session {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		exitWithError(ExitConfigError, "loading config: %v", err)
	}

	return session.New(bib.NewFileSource(), config.ResolveBibliography(cfg))
}

// loadDocument reads the document at path. An empty path yields an
// empty document rooted at the working directory, so resolution falls
// through to the configured bibliography.
func loadDocument(path string) session.Document {
	if path == "" {
		cwd, err := os.Getwd()
		if err != nil {
			exitWithError(ExitError, "getting current directory: %v", err)
		}
		return session.Document{Dir: cwd}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		exitWithError(ExitError, "reading document: %v", err)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		exitWithError(ExitError, "resolving document path: %v", err)
	}

	return session.Document{Text: string(data), Dir: filepath.Dir(abs)}
}

// refresh runs the pipeline and maps pipeline errors to exits shared
// by the list, search, and watch commands.
func refresh(sess *session.Session, doc session.Document, force bool) *session.State {
	state, err := sess.Refresh(doc, force)
	if err != nil {
		exitWithError(ExitNoBibliography, "%v", err)
	}
	for _, w := range state.Warnings {
		fmt.Fprintf(os.Stderr, "warning: %s\n", w)
	}
	return state
}
