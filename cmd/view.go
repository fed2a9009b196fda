package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/itsmostafa/segview/internal/segment"
	"github.com/itsmostafa/segview/internal/tui"
	"github.com/spf13/cobra"
)

var viewCmd = &cobra.Command{
	Use:   "view <file>",
	Short: "Segment a document and browse it interactively",
	Long: `Segment a text document with the configured LLM and open the interactive
viewer: labeled blocks are tinted, and moving the selection shows each
block's segment name in the status bar.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		content, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}
		provider, err := newProvider(0)
		if err != nil {
			return err
		}

		gw := segment.NewLLMGateway(provider)
		res, segErr := segment.Process(cmd.Context(), gw, string(content))
		if segErr != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "segmentation failed, showing unlabeled document: %v\n", segErr)
		}

		return tui.Run(tui.Config{
			Title: filepath.Base(args[0]),
			Units: res.Units,
			Lines: res.Lines,
		})
	},
}

func init() {
	addProviderFlags(viewCmd)
	rootCmd.AddCommand(viewCmd)
}
