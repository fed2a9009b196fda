package cmd

import (
	"fmt"
	"os"

	"github.com/itsmostafa/segview/internal/version"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "segview",
	Short: "LLM-assisted document segment visualizer",
	Long: `segview sends a plain-text document to a language model for structural
segmentation and renders the document with each named segment visually
delineated, in the terminal or as an HTML page.`,
}

func init() {
	rootCmd.Version = version.Version
	rootCmd.SetVersionTemplate(fmt.Sprintf("segview %s\n", version.String()))
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
