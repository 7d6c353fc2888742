package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "nthterm",
	Short: "nthterm generates arithmetic and geometric sequences",
	Long: `nthterm generates arithmetic and geometric sequences with summary
statistics (series sums, range, nth-term formula) and serves them through an
interactive web form, a JSON API, an MCP server, or this CLI.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("config", "", "Path to a YAML config file")
}
