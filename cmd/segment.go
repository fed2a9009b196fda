package cmd

import (
	"fmt"
	"os"

	"github.com/itsmostafa/segview/internal/segment"
	"github.com/itsmostafa/segview/internal/tui"
	"github.com/itsmostafa/segview/internal/web"
	"github.com/spf13/cobra"
)

var (
	htmlOut  string
	jsonOnly bool
)

var segmentCmd = &cobra.Command{
	Use:   "segment <file>",
	Short: "Segment a document and print the delineated render",
	Long: `Segment a text document with the configured LLM and print the result:
a styled terminal render by default, an HTML page with --html, or the raw
segmentation JSON with --json. When the model call fails the document is
still printed as a plain, unlabeled render.`,
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

		if htmlOut != "" {
			f, err := os.Create(htmlOut)
			if err != nil {
				return err
			}
			defer f.Close()
			return web.RenderHTML(f, res, segErr)
		}

		if segErr != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "segmentation failed, rendering unlabeled: %v\n", segErr)
		}
		if jsonOnly {
			fmt.Fprintln(cmd.OutOrStdout(), res.Sections.String())
			return nil
		}
		tui.Format(cmd.OutOrStdout(), res.Units, res.Lines, tui.DefaultStyles())
		return nil
	},
}

func init() {
	addProviderFlags(segmentCmd)
	segmentCmd.Flags().StringVar(&htmlOut, "html", "", "Write the render as an HTML page to this path")
	segmentCmd.Flags().BoolVar(&jsonOnly, "json", false, "Print the raw segmentation JSON instead of the render")
	rootCmd.AddCommand(segmentCmd)
}
