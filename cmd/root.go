package cmd

import (
	"github.com/spf13/cobra"
)

var cfgPath string

var rootCmd = &cobra.Command{
	Use:   "rtfeas",
	Short: "Fixed-priority schedulability analysis for periodic task sets",
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "config.yaml", "configuration file")
	rootCmd.AddCommand(checkCmd, serveCmd)
}

// Execute runs the CLI.
func Execute() error { return rootCmd.Execute() }
