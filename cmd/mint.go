package cmd

import (
	"fmt"

	"github.com/mintpadhq/mintpad/internal/mint"
	"github.com/mintpadhq/mintpad/internal/ui"
	"github.com/spf13/cobra"
)

var mintYes bool

var mintCmd = &cobra.Command{
	Use:   "mint",
	Short: "Run the eligibility gate and mint",
	Long: `Check eligibility (connected wallet, correct network, sufficient
USDC, not already minted) and mint one token from the collection.

The mint is SIMULATED: it waits a fixed confirmation delay and records the
mint locally. No transaction is broadcast and no funds move. A production
build replaces this with an approval transaction, the mint transaction,
and confirmation polling against the chain.`,
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

		switch st.State {
		case mint.StateNeedsConnect:
			return fmt.Errorf("wallet not connected — run `mintpad connect`")
		case mint.StateNeedsNetworkSwitch:
			return fmt.Errorf("wallet is on the wrong network — run `mintpad network switch`")
		case mint.StateAlreadyMinted:
			fmt.Println(ui.Success("Already minted with this wallet."))
			return nil
		case mint.StateInsufficientFunds:
			need := ui.FormatUnits(cfg.Collection.PriceUnits, cfg.Collection.TokenDecimals)
			return fmt.Errorf("insufficient %s balance (need %s)", cfg.Collection.TokenSymbol, need)
		}

		sel := ctrl.Selected()
		price := ui.FormatUnits(cfg.Collection.PriceUnits, cfg.Collection.TokenDecimals)
		fmt.Println(ui.KeyValueBlock("Mint Preview · "+sel.DisplayName, [][2]string{
			{"Collection", cfg.Collection.Name},
			{"Price", price + " " + cfg.Collection.TokenSymbol},
			{"Wallet", ui.Addr(st.Session.Address)},
			{"Contract", ui.Addr(cfg.Collection.ContractAddress)},
		}))

		if !mintYes && !ui.Confirm("Mint now?") {
			fmt.Println(ui.Meta("Cancelled."))
			return nil
		}

		spin = ui.NewSpinner("Minting...")
		spin.Start()
		err = ctrl.RequestMint(cmd.Context())
		spin.Stop()
		if err != nil {
			// A cancelled context aborts without a user-facing message.
			if msg := ctrl.Status().Err; msg != "" {
				fmt.Println(ui.Err(msg))
			}
			return err
		}

		fmt.Println(ui.Success("Minted! Welcome to " + cfg.Collection.Name + "."))
		return nil
	},
}

func init() {
	mintCmd.Flags().BoolVarP(&mintYes, "yes", "y", false, "skip the confirmation prompt")
}
