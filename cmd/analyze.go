package main

import (
	"github.com/spf13/cobra"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <url>",
	Short: "Classify a company website into a structured profile",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc := buildService(cfg)

		profile, err := runClassify(cmd.Context(), svc, args[0])
		if err != nil {
			return err
		}
		return printJSON(profile)
	},
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
}
