package ui

import (
	"context"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mintpadhq/mintpad/internal/chain"
	"github.com/mintpadhq/mintpad/internal/config"
	"github.com/mintpadhq/mintpad/internal/mint"
	"github.com/mintpadhq/mintpad/internal/wallet"
)

type noopAdapter struct{}

func (noopAdapter) Connect(ctx context.Context) (wallet.Session, error) {
	return wallet.Session{}, nil
}
func (noopAdapter) Disconnect() error                                    { return nil }
func (noopAdapter) Session() wallet.Session                              { return wallet.Session{} }
func (noopAdapter) SwitchChain(ctx context.Context, chainID int64) error { return nil }

type noopBalances struct{}

func (noopBalances) GetTokenBalance(ctx context.Context, tokenAddr, walletAddr common.Address, decimals int) (*chain.TokenBalance, error) {
	return &chain.TokenBalance{}, nil
}

func TestCycleChainPersistsSelection(t *testing.T) {
	reg := chain.NewRegistry()
	chains := reg.All()
	require.GreaterOrEqual(t, len(chains), 2)

	ctrl := mint.NewController(noopAdapter{}, noopBalances{}, mint.NewMemRecordStore(),
		config.Collection{}, &chains[0])

	var saved []string
	m := widgetModel{
		ctrl: ctrl,
		reg:  reg,
		persist: func(name string) error {
			saved = append(saved, name)
			return nil
		},
	}

	m.cycleChain()
	assert.Equal(t, chains[1].ChainID, ctrl.Selected().ChainID)
	assert.Equal(t, []string{chains[1].Name}, saved, "switch must be written through")

	// Cycling wraps around and persists each step.
	for i := 1; i < len(chains); i++ {
		m.cycleChain()
	}
	assert.Equal(t, chains[0].ChainID, ctrl.Selected().ChainID)
	assert.Equal(t, chains[0].Name, saved[len(saved)-1])
}

func TestCycleChainWithoutPersistHook(t *testing.T) {
	reg := chain.NewRegistry()
	chains := reg.All()

	ctrl := mint.NewController(noopAdapter{}, noopBalances{}, mint.NewMemRecordStore(),
		config.Collection{}, &chains[0])
	m := widgetModel{ctrl: ctrl, reg: reg}

	m.cycleChain()
	assert.Equal(t, chains[1].ChainID, ctrl.Selected().ChainID)
}
