// Package cmd implements the CLI commands for catalog-gateway.
package cmd

import (
	"github.com/spf13/cobra"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "catalog-gateway",
	Short: "HTTP gateway for the remote product catalog",
	Long: "An API gateway that authenticates against the product catalog with OAuth2,\n" +
		"serves product and brand views, and brokers binary downloads through the\n" +
		"authorization-code flow.",
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "config.yaml", "config file path")
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(versionCommand())
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
