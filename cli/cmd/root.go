package cmd

import (
	"github.com/spf13/cobra"
)

var (
	rootCmd = &cobra.Command{
		Use:          "sonic",
		Short:        "sonic",
		SilenceUsage: true,
		Long:         `CLI tool for tokenizing and checking Sonic source files.`,
	}

	directory string
	noColor   bool
	verbose   bool
)

// Execute executes the root command.
func Execute() error {
	rootCmd.PersistentFlags().StringVarP(&directory, "directory", "d", ".", "directory holding sonic.yaml; include globs are resolved relative to it")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored diagnostics")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	return rootCmd.Execute()
}
