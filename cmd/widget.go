package cmd

import (
	"github.com/mintpadhq/mintpad/internal/ui"
	"github.com/spf13/cobra"
)

var widgetCmd = &cobra.Command{
	Use:   "widget",
	Short: "Open the interactive mint widget",
	Long: `Full-screen interactive widget: shows the live eligibility state
and binds Enter to the one enabled action (connect, switch, or mint).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctrl, reg, err := newController()
		if err != nil {
			return err
		}
		return ui.RunWidget(ctrl, reg, cfg.Collection, func(chainName string) error {
			cfg.SelectedChain = chainName
			return cfg.Save()
		})
	},
}
