package cmd

import (
	"fmt"
	"net/http"

	"github.com/mintpadhq/mintpad/internal/manifest"
	"github.com/mintpadhq/mintpad/internal/ui"
	"github.com/spf13/cobra"
)

var manifestAddr string

var manifestCmd = &cobra.Command{
	Use:   "manifest",
	Short: "Print the mini-app manifest",
	Long: `Print the static mini-app descriptor host platforms use for
discovery. Use "manifest serve" to host it at the well-known path.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := manifest.ForCollection(cfg.Collection).JSON()
		if err != nil {
			return err
		}
		fmt.Println(string(data))
		return nil
	},
}

var manifestServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the manifest at the well-known discovery path",
	RunE: func(cmd *cobra.Command, args []string) error {
		m := manifest.ForCollection(cfg.Collection)
		fmt.Println(ui.Success("Serving manifest"))
		fmt.Println(ui.Meta("  http://" + manifestAddr + manifest.WellKnownPath))
		return http.ListenAndServe(manifestAddr, manifest.Router(m))
	},
}

func init() {
	manifestServeCmd.Flags().StringVar(&manifestAddr, "addr", "localhost:8787", "listen address")
	manifestCmd.AddCommand(manifestServeCmd)
}
