package main

import (
	"github.com/spf13/cobra"
)

var competitorsCmd = &cobra.Command{
	Use:   "competitors <url>...",
	Short: "Run the full analysis for one or more competitor websites",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc := buildService(cfg)

		analyses, err := runAnalyzeBatch(cmd.Context(), svc, args)
		if err != nil {
			return err
		}
		return printJSON(analyses)
	},
}

func init() {
	rootCmd.AddCommand(competitorsCmd)
}
