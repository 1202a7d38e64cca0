package cmd

import (
	"fmt"

	"github.com/mintpadhq/mintpad/internal/chain"
	"github.com/mintpadhq/mintpad/internal/ui"
	"github.com/spf13/cobra"
)

var connectImport bool

var connectCmd = &cobra.Command{
	Use:   "connect",
	Short: "Connect a wallet",
	Long: `Connect the imported wallet and persist the session.

With --import, prompts for a hex private key first and stores it in the
OS keychain. The key never leaves the keychain after import.

Examples:
  mintpad connect
  mintpad connect --import`,
	RunE: func(cmd *cobra.Command, args []string) error {
		reg := chain.NewRegistry()
		adapter := newAdapter(reg)

		if connectImport {
			key := ui.PromptInput("Hex private key")
			if key == "" {
				return fmt.Errorf("private key is required with --import")
			}
			addr, err := adapter.ImportKey(key)
			if err != nil {
				return err
			}
			fmt.Println(ui.Success("Imported key for " + ui.TruncateAddr(addr)))
		}

		ctrl, _, err := newController()
		if err != nil {
			return err
		}
		if err := ctrl.RequestConnect(cmd.Context()); err != nil {
			fmt.Println(ui.Err(ctrl.Status().Err))
			return err
		}

		sess := adapter.Session()
		c, _ := reg.GetByChainID(sess.ActiveChainID)
		chainName := fmt.Sprintf("id %d", sess.ActiveChainID)
		if c != nil {
			chainName = c.DisplayName
		}
		fmt.Println(ui.KeyValueBlock("Wallet Connected ✓", [][2]string{
			{"Address", ui.Addr(sess.Address)},
			{"Network", chainName},
		}))
		return nil
	},
}

var disconnectCmd = &cobra.Command{
	Use:   "disconnect",
	Short: "Clear the wallet session",
	RunE: func(cmd *cobra.Command, args []string) error {
		adapter := newAdapter(chain.NewRegistry())
		if err := adapter.Disconnect(); err != nil {
			return err
		}
		fmt.Println(ui.Success("Disconnected."))
		return nil
	},
}

func init() {
	connectCmd.Flags().BoolVar(&connectImport, "import", false, "import a private key before connecting")
}
