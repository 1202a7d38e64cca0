package cmd

import (
	"fmt"

	"github.com/mintpadhq/mintpad/internal/mint"
	"github.com/mintpadhq/mintpad/internal/ui"
	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the current mint eligibility",
	Long: `Derive and print the current eligibility state and the one action
it enables: connect, switch network, or mint.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctrl, _, err := newController()
		if err != nil {
			return err
		}

		spin := ui.NewSpinner("Checking eligibility...")
		spin.Start()
		ctrl.RefreshBalance(cmd.Context()) //nolint:errcheck
		st := ctrl.Status()
		spin.Stop()

		walletLine := ui.Meta("not connected")
		if st.Session.Connected {
			walletLine = ui.Addr(st.Session.Address)
		}
		balanceLine := ui.Meta("Loading...")
		if st.Balance != nil {
			balanceLine = st.Balance.Formatted + " " + cfg.Collection.TokenSymbol
		} else if ctrl.BalanceErr() != nil {
			balanceLine = ui.Meta("unavailable")
		}

		sel := ctrl.Selected()
		fmt.Println(ui.KeyValueBlock("Mint Status · "+cfg.Collection.Name, [][2]string{
			{"Network", fmt.Sprintf("%s (id %d)", sel.DisplayName, sel.ChainID)},
			{"Wallet", walletLine},
			{"Balance", balanceLine},
			{"Price", ui.FormatUnits(cfg.Collection.PriceUnits, cfg.Collection.TokenDecimals) + " " + cfg.Collection.TokenSymbol},
			{"State", st.State.String()},
		}))

		switch st.Action {
		case mint.ActionConnect:
			fmt.Println(ui.Warn("Next: mintpad connect"))
		case mint.ActionSwitchChain:
			fmt.Println(ui.Warn("Next: mintpad network switch " + cfg.SelectedChain))
		case mint.ActionMint:
			fmt.Println(ui.Success("Ready: mintpad mint"))
		}
		return nil
	},
}
