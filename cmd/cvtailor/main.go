// Package main implements the cvtailor developer CLI for working with model
// responses offline.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "cvtailor",
		Short:         "CV Tailor developer tools",
		Long:          "cvtailor normalizes raw model responses and renders tailored CVs into Word documents without running the API.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(newNormalizeCmd())
	rootCmd.AddCommand(newRenderCmd())
	return rootCmd
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
