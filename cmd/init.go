package cmd

import (
	"fmt"

	"github.com/mintpadhq/mintpad/internal/chain"
	"github.com/mintpadhq/mintpad/internal/ui"
	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Interactive setup",
	Long: `Pick the mint network and optionally import a wallet key.
Writes ~/.mintpad/config.json and stores the key in the OS keychain.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		reg := chain.NewRegistry()
		names := make([]string, 0, len(reg.All()))
		for _, c := range reg.All() {
			names = append(names, c.Name)
		}

		res, err := ui.RunWizard(names)
		if err != nil {
			return err
		}

		if res.Chain != "" {
			cfg.SelectedChain = res.Chain
			if err := cfg.Save(); err != nil {
				return err
			}
		}

		if res.PrivateKey != "" {
			adapter := newAdapter(reg)
			addr, err := adapter.ImportKey(res.PrivateKey)
			if err != nil {
				return err
			}
			fmt.Println(ui.Success("Imported key for " + ui.TruncateAddr(addr)))
		}

		fmt.Println(ui.Success("Setup complete — run `mintpad widget` to mint."))
		return nil
	},
}
