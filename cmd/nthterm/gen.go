package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/nthterm/nthterm"
	"github.com/nthterm/nthterm/internal/config"
	"github.com/nthterm/nthterm/internal/export"
	"github.com/nthterm/nthterm/internal/presentation/tui"
	"github.com/nthterm/nthterm/pkg/domain"
)

var genCmd = &cobra.Command{
	Use:   "gen",
	Short: "Generate a sequence once and print the report",
	Long: `Generates a single sequence from flags and prints the report to stdout.
The report renders as styled markdown on a terminal and as plain text when
piped. Use --output to write the downloadable text artifact instead.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		configPath, _ := cmd.Flags().GetString("config")
		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}

		kindStr, _ := cmd.Flags().GetString("kind")
		kind, err := domain.ParseKind(kindStr)
		if err != nil {
			return err
		}

		params := domain.DefaultParameters(kind)
		if cmd.Flags().Changed("first") {
			params.FirstTerm, _ = cmd.Flags().GetFloat64("first")
		}
		if cmd.Flags().Changed("step") {
			params.Step, _ = cmd.Flags().GetFloat64("step")
		}
		if cmd.Flags().Changed("terms") {
			params.TermCount, _ = cmd.Flags().GetInt("terms")
		}

		svc := nthterm.New(nthterm.WithMaxTerms(cfg.MaxTerms))
		res, err := svc.Generate(context.Background(), params)
		if err != nil {
			return err
		}

		if output, _ := cmd.Flags().GetString("output"); output != "" {
			if err := os.WriteFile(output, []byte(export.Text(res)), 0o644); err != nil {
				return fmt.Errorf("failed to write artifact: %w", err)
			}
			fmt.Printf("Wrote %s\n", output)
			return nil
		}

		report := export.Markdown(res)
		if term.IsTerminal(int(os.Stdout.Fd())) {
			render := tui.NewRenderer()
			if styled, err := render(report); err == nil {
				fmt.Print(styled)
				return nil
			}
		}
		fmt.Print(report)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(genCmd)

	genCmd.Flags().String("kind", "arithmetic", "Sequence kind: arithmetic or geometric")
	genCmd.Flags().Float64("first", 1.0, "First term")
	genCmd.Flags().Float64("step", 1.0, "Common difference (arithmetic) or ratio (geometric)")
	genCmd.Flags().Int("terms", 10, "Number of terms (max 1000)")
	genCmd.Flags().StringP("output", "o", "", "Write the text artifact to this file instead of printing")
}
