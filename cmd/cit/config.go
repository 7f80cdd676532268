package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matsen/citeline/internal/config"
)

func init() {
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config [key] [value]",
	Short: "Get or set configuration values",
	Long: `Get or set configuration values.

Usage:
  cit config                              # Show all config
  cit config bibliography                 # Get the explicit bibliography path
  cit config bibliography ~/refs.bib      # Set the explicit bibliography path
  cit config bibliography ""              # Clear it

Keys:
  bibliography  Bibliography file used when a document declares none`,
	Args: cobra.MaximumNArgs(2),
	RunE: runConfig,
}

func runConfig(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		exitWithError(ExitConfigError, "loading config: %v", err)
	}

	// No args: show all config
	if len(args) == 0 {
		if humanOutput {
			fmt.Printf("bibliography: %s\n", cfg.Bibliography)
		} else {
			outputJSON(cfg)
		}
		return nil
	}

	key := args[0]
	if key != "bibliography" {
		exitWithError(ExitError, "unknown configuration key: %s", key)
	}

	// One arg: get the value
	if len(args) == 1 {
		if humanOutput {
			fmt.Println(cfg.Bibliography)
		} else {
			outputJSON(map[string]string{"bibliography": cfg.Bibliography})
		}
		return nil
	}

	// Two args: set the value
	cfg.Bibliography = args[1]
	if err := cfg.Save(); err != nil {
		exitWithError(ExitConfigError, "saving config: %v", err)
	}

	if humanOutput {
		fmt.Printf("bibliography set to: %s\n", cfg.Bibliography)
	} else {
		outputJSON(UpdateResponse{Status: "updated", Key: key, Value: cfg.Bibliography})
	}
	return nil
}
