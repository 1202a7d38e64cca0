package mint

import (
	"math/big"

	"github.com/mintpadhq/mintpad/internal/chain"
	"github.com/mintpadhq/mintpad/internal/wallet"
)

// State is the derived eligibility state. It is a pure function of the
// snapshot inputs and holds no state of its own.
type State int

const (
	StateNeedsConnect State = iota
	StateNeedsNetworkSwitch
	StateAlreadyMinted
	StateInsufficientFunds
	StateReadyToMint
)

func (s State) String() string {
	switch s {
	case StateNeedsConnect:
		return "needs-connect"
	case StateNeedsNetworkSwitch:
		return "needs-network-switch"
	case StateAlreadyMinted:
		return "already-minted"
	case StateInsufficientFunds:
		return "insufficient-funds"
	case StateReadyToMint:
		return "ready-to-mint"
	default:
		return "unknown"
	}
}

// Action is the single primary action enabled for a state.
type Action int

const (
	ActionNone Action = iota
	ActionConnect
	ActionSwitchChain
	ActionMint
)

func (a Action) String() string {
	switch a {
	case ActionConnect:
		return "connect"
	case ActionSwitchChain:
		return "switch-chain"
	case ActionMint:
		return "mint"
	default:
		return "none"
	}
}

// Snapshot gathers the externally owned inputs the eligibility derivation
// reads. Balance is nil while a fetch is pending or has failed.
type Snapshot struct {
	Session    wallet.Session
	Selected   *chain.Chain
	Balance    *chain.TokenBalance
	Minted     bool
	PriceUnits uint64
}

// Evaluate derives the eligibility state and its primary action from a
// snapshot. Conditions are checked in strict priority order and the first
// match wins: connection and network correctness gate everything else,
// because balance and mint-status reads are only meaningful once both hold.
func Evaluate(s Snapshot) (State, Action) {
	if !s.Session.Connected {
		return StateNeedsConnect, ActionConnect
	}
	if s.Selected == nil || s.Session.ActiveChainID != s.Selected.ChainID {
		return StateNeedsNetworkSwitch, ActionSwitchChain
	}
	if s.Minted {
		return StateAlreadyMinted, ActionNone
	}
	if s.Balance == nil || s.Balance.Raw == nil ||
		s.Balance.Raw.Cmp(new(big.Int).SetUint64(s.PriceUnits)) < 0 {
		return StateInsufficientFunds, ActionNone
	}
	return StateReadyToMint, ActionMint
}
