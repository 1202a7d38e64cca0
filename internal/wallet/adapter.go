package wallet

import "context"

// Session is the wallet session as seen by the rest of the app. It is owned
// by the adapter; callers only read it and request transitions.
type Session struct {
	Connected     bool   `json:"connected"`
	Address       string `json:"address,omitempty"`
	ActiveChainID int64  `json:"active_chain_id,omitempty"`
}

// Adapter is the capability set any wallet connector must provide. The
// eligibility controller is written against this interface, not a concrete
// connector.
type Adapter interface {
	// Connect establishes a wallet session and returns it.
	Connect(ctx context.Context) (Session, error)
	// Disconnect tears the session down.
	Disconnect() error
	// Session returns the latest known session snapshot.
	Session() Session
	// SwitchChain moves the active chain. The session is unchanged when the
	// switch fails.
	SwitchChain(ctx context.Context, chainID int64) error
}
