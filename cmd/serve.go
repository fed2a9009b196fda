package cmd

import (
	"github.com/itsmostafa/segview/internal/segment"
	"github.com/itsmostafa/segview/internal/web"
	"github.com/spf13/cobra"
)

var (
	serveAddr string
	serveRPS  float64
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the browser display surface",
	Long: `Start a local web server with a file upload form. Uploaded documents are
segmented with the configured LLM and rendered as an HTML page where
hovering a block shows its segment name.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		provider, err := newProvider(serveRPS)
		if err != nil {
			return err
		}
		srv := web.NewServer(web.Config{Addr: serveAddr}, segment.NewLLMGateway(provider))
		return srv.ListenAndServe()
	},
}

func init() {
	addProviderFlags(serveCmd)
	serveCmd.Flags().StringVar(&serveAddr, "addr", envDefault("SEGVIEW_ADDR", ":8501"), "Listen address")
	serveCmd.Flags().Float64Var(&serveRPS, "rps", 1, "Model requests per second across uploads")
	rootCmd.AddCommand(serveCmd)
}
