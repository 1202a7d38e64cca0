package cmd

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/mintpadhq/mintpad/internal/chain"
	"github.com/mintpadhq/mintpad/internal/ui"
	"github.com/spf13/cobra"
)

type decimalsSource interface {
	TokenDecimals(ctx context.Context, tokenAddr common.Address) (int, error)
}

// checkTokenDecimals compares the configured payment-token decimals with what
// the token contract reports. Returns a warning line, or "" when they agree
// or the read fails.
func checkTokenDecimals(ctx context.Context, src decimalsSource, c *chain.Chain) string {
	d, err := src.TokenDecimals(ctx, common.HexToAddress(c.USDCAddress))
	if err != nil || d == c.USDCDecimals {
		return ""
	}
	return fmt.Sprintf("token contract reports %d decimals, configured %d — amounts may render wrong", d, c.USDCDecimals)
}

var balanceCmd = &cobra.Command{
	Use:   "balance",
	Short: "Show the payment-token balance on the selected chain",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctrl, _, err := newController()
		if err != nil {
			return err
		}

		st := ctrl.Status()
		if !st.Session.Connected {
			return fmt.Errorf("wallet not connected — run `mintpad connect`")
		}
		sel := ctrl.Selected()
		if st.Session.ActiveChainID != sel.ChainID {
			return fmt.Errorf("wallet is on chain id %d, not %s — run `mintpad network switch`",
				st.Session.ActiveChainID, sel.DisplayName)
		}

		spin := ui.NewSpinner(fmt.Sprintf("Fetching %s balance on %s...", cfg.Collection.TokenSymbol, sel.DisplayName))
		spin.Start()
		err = ctrl.RefreshBalance(cmd.Context())
		st = ctrl.Status()
		spin.Stop()
		if err != nil {
			return fmt.Errorf("balance fetch: %w", err)
		}

		fmt.Println(ui.KeyValueBlock(cfg.Collection.TokenSymbol+" Balance · "+sel.DisplayName, [][2]string{
			{"Wallet", ui.Addr(st.Session.Address)},
			{"Balance", st.Balance.Formatted + " " + cfg.Collection.TokenSymbol},
			{"Raw", st.Balance.Raw.String()},
		}))

		client := chain.NewEVMClient(sel.RPCs[0])
		if warn := checkTokenDecimals(cmd.Context(), client, sel); warn != "" {
			fmt.Println(ui.Warn(warn))
		}
		return nil
	},
}
