// Command sparsedemo fills a three-column sparse table with random values,
// erases one row and prints the result.
package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/geofduf/sparse-multi-vec/internal/logger"
)

var version = "0.1.0"

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "sparsedemo",
		Short: "Fill, wreck and print a sparse table",
		Long: `sparsedemo pushes random rows to a table of integer, float and text
columns where any value may be absent, erases one row and prints every
remaining row, absent values shown as ---.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd.Flags())
			if err != nil {
				return err
			}
			log, err := logger.New(logger.Config{Level: cfg.LogLevel})
			if err != nil {
				return err
			}
			defer log.Sync() //nolint:errcheck
			return run(cfg, cmd.OutOrStdout(), log)
		},
	}
	addFlags(root.Flags())

	root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "sparsedemo v%s\n", version)
			fmt.Fprintf(cmd.OutOrStdout(), "Go version: %s\n", runtime.Version())
		},
	})
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
