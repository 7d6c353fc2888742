package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nthterm/nthterm"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of nthterm",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("nthterm version %s\n", nthterm.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
