package cmd

import (
	"fmt"

	"github.com/mintpadhq/mintpad/internal/ui"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or change configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the current configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		col := cfg.Collection
		fmt.Println(ui.KeyValueBlock("Configuration", [][2]string{
			{"Directory", cfg.Dir()},
			{"Chain", cfg.SelectedChain},
			{"Collection", col.Name},
			{"Contract", ui.Addr(col.ContractAddress)},
			{"Price", ui.FormatUnits(col.PriceUnits, col.TokenDecimals) + " " + col.TokenSymbol},
		}))
		return nil
	},
}

var configSetChainCmd = &cobra.Command{
	Use:   "set-chain <name>",
	Short: "Set the target chain (alias of network select)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return networkSelectCmd.RunE(cmd, args)
	},
}

func init() {
	configCmd.AddCommand(configShowCmd, configSetChainCmd)
}
