package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:           "domanalyze",
	Short:         "Static analyzer for web-component packages",
	Long:          "domanalyze scans a package of HTML and JavaScript sources for custom-element, namespace, and databinding declarations and resolves cross-references between them.",
	SilenceErrors: true,
	SilenceUsage:  true,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
}
