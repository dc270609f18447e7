package main

import (
	"github.com/spf13/cobra"
)

var (
	suggestIndustry      string
	suggestBusinessModel string
)

var suggestCmd = &cobra.Command{
	Use:   "suggest <url>",
	Short: "Suggest the main competitors of a profiled website",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc := buildService(cfg)

		candidates, err := runSuggest(cmd.Context(), svc, args[0], suggestIndustry, suggestBusinessModel)
		if err != nil {
			return err
		}
		return printJSON(candidates)
	},
}

func init() {
	suggestCmd.Flags().StringVar(&suggestIndustry, "industry", "", "industry from a prior analyze run")
	suggestCmd.Flags().StringVar(&suggestBusinessModel, "business-model", "", "business model from a prior analyze run")
	rootCmd.AddCommand(suggestCmd)
}
