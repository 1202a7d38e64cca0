package cmd

import (
	"context"
	"fmt"

	"github.com/mintpadhq/mintpad/internal/chain"
	"github.com/mintpadhq/mintpad/internal/mint"
	"github.com/mintpadhq/mintpad/internal/wallet"
)

// newAdapter builds the local wallet connector over the OS keychain and the
// per-user session file. Chain switches cross-check the target's RPC.
func newAdapter(reg *chain.Registry) *wallet.LocalConnector {
	return wallet.NewLocalConnector(
		wallet.DefaultKeystore(),
		wallet.DefaultSessionStore(),
		reg,
		wallet.WithChainProbe(func(ctx context.Context, rpcURL string) (int64, error) {
			return chain.NewEVMClient(rpcURL).ChainID(ctx)
		}),
	)
}

// selectedChain resolves the configured target chain against the registry.
func selectedChain(reg *chain.Registry) (*chain.Chain, error) {
	c, err := reg.GetByName(cfg.SelectedChain)
	if err != nil {
		return nil, fmt.Errorf("unknown chain %q — run `mintpad network list`", cfg.SelectedChain)
	}
	return c, nil
}

// newController wires the eligibility controller from the configured chain,
// the local connector, the first registry RPC, and the file record store.
func newController() (*mint.Controller, *chain.Registry, error) {
	reg := chain.NewRegistry()
	sel, err := selectedChain(reg)
	if err != nil {
		return nil, nil, err
	}

	client := chain.NewEVMClient(sel.RPCs[0])
	ctrl := mint.NewController(
		newAdapter(reg),
		client,
		mint.NewFileRecordStore(cfg.RecordsPath()),
		cfg.Collection,
		sel,
	)
	return ctrl, reg, nil
}
