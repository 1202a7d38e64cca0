package cmd

import (
	"fmt"
	"os"

	"github.com/mintpadhq/mintpad/internal/config"
	"github.com/spf13/cobra"
)

// Version is the current release. Overridable via build ldflags:
//
//	go build -ldflags "-X github.com/mintpadhq/mintpad/cmd.Version=1.2.3" .
var Version = "1.0.0"

var (
	cfgDir string
	cfg    *config.Config
)

// rootCmd is the top-level command.
var rootCmd = &cobra.Command{
	Use:   "mintpad",
	Short: "Terminal mini-app for fixed-price NFT mints",
	Long: `mintpad — mint a fixed-price NFT from your terminal.

  Connect a wallet, pick a network, verify your USDC balance,
  and mint. One collection, one price, two chains.

The mint itself is simulated against a local record store; no transaction
is broadcast. See mintpad mint --help for the boundary.`,
	Version: Version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}
		var err error
		cfg, err = config.Load(cfgDir)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		return nil
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	// MINTPAD_CONFIG_DIR env var overrides --config flag.
	if envDir := os.Getenv("MINTPAD_CONFIG_DIR"); envDir != "" {
		cfgDir = envDir
	}

	rootCmd.PersistentFlags().StringVar(&cfgDir, "config", cfgDir, "config directory (default: ~/.mintpad)")

	// Register all sub-commands.
	rootCmd.AddCommand(
		initCmd,
		connectCmd,
		disconnectCmd,
		statusCmd,
		networkCmd,
		balanceCmd,
		mintCmd,
		widgetCmd,
		manifestCmd,
		configCmd,
	)
}
