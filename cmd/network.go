package cmd

import (
	"fmt"

	"github.com/mintpadhq/mintpad/internal/chain"
	"github.com/mintpadhq/mintpad/internal/ui"
	"github.com/spf13/cobra"
)

var networkCmd = &cobra.Command{
	Use:   "network",
	Short: "List, select, and switch supported networks",
	Long: `Manage the mint's target network.

Sub-commands:
  mintpad network list            — show the supported chains
  mintpad network select <name>   — pick the chain the mint targets
  mintpad network switch          — move the wallet to the selected chain`,
}

var networkListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show the supported chains",
	RunE: func(cmd *cobra.Command, args []string) error {
		reg := chain.NewRegistry()
		sess := newAdapter(reg).Session()
		for _, c := range reg.All() {
			marker := "  "
			if c.Name == cfg.SelectedChain {
				marker = ui.StyleSuccess.Render("▸ ")
			}
			active := ""
			if sess.Connected && sess.ActiveChainID == c.ChainID {
				active = ui.Meta("  (wallet active)")
			}
			fmt.Printf("%s%s %s%s\n", marker,
				ui.ChainName(c.DisplayName),
				ui.Meta(fmt.Sprintf("id %d · USDC %s", c.ChainID, ui.TruncateAddr(c.USDCAddress))),
				active)
		}
		return nil
	},
}

var networkSelectCmd = &cobra.Command{
	Use:   "select <name>",
	Short: "Pick the chain the mint targets",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		reg := chain.NewRegistry()
		c, err := reg.GetByName(args[0])
		if err != nil {
			return fmt.Errorf("unknown chain %q — run `mintpad network list`", args[0])
		}
		cfg.SelectedChain = c.Name
		if err := cfg.Save(); err != nil {
			return err
		}
		fmt.Println(ui.Success("Mint now targets " + c.DisplayName))
		return nil
	},
}

var networkSwitchCmd = &cobra.Command{
	Use:   "switch",
	Short: "Move the wallet to the selected chain",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctrl, _, err := newController()
		if err != nil {
			return err
		}
		if err := ctrl.RequestChainSwitch(cmd.Context()); err != nil {
			fmt.Println(ui.Err(ctrl.Status().Err))
			return err
		}
		fmt.Println(ui.Success("Switched to " + ctrl.Selected().DisplayName))
		return nil
	},
}

func init() {
	networkCmd.AddCommand(networkListCmd, networkSelectCmd, networkSwitchCmd)
}
