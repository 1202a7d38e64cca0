package wallet

import (
	"context"
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/crypto"

	"github.com/mintpadhq/mintpad/internal/chain"
)

// Errors.
var (
	ErrNoKey        = errors.New("no wallet key imported")
	ErrNotConnected = errors.New("wallet not connected")
	ErrInvalidKey   = errors.New("invalid private key")
)

// ChainProbe reports the chain id an RPC endpoint answers with. A switch
// cross-checks its target against the endpoint when a probe is configured.
type ChainProbe func(ctx context.Context, rpcURL string) (int64, error)

// LocalConnector is an Adapter backed by a private key in the OS keychain.
// It bridges a locally imported wallet to the session interface, the way a
// platform connector bridges a wallet application.
type LocalConnector struct {
	ks     *Keystore
	store  *SessionStore
	reg    *chain.Registry
	keyRef string
	probe  ChainProbe
}

// Option configures a LocalConnector.
type Option func(*LocalConnector)

// WithChainProbe enables the eth_chainId cross-check on chain switches.
func WithChainProbe(p ChainProbe) Option {
	return func(c *LocalConnector) { c.probe = p }
}

// NewLocalConnector creates a connector over the given keystore and session
// store.
func NewLocalConnector(ks *Keystore, store *SessionStore, reg *chain.Registry, opts ...Option) *LocalConnector {
	c := &LocalConnector{
		ks:     ks,
		store:  store,
		reg:    reg,
		keyRef: DefaultKeyRef,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ImportKey derives the EVM address from a hex private key, stores the key in
// the keychain, and returns the address.
func (c *LocalConnector) ImportKey(hexKey string) (string, error) {
	priv, err := crypto.HexToECDSA(stripHexPrefix(hexKey))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidKey, err)
	}
	if err := c.ks.Store(c.keyRef, hexKey); err != nil {
		return "", fmt.Errorf("storing key: %w", err)
	}
	return crypto.PubkeyToAddress(priv.PublicKey).Hex(), nil
}

// Connect loads the imported key, derives its address, and persists a
// connected session. The active chain of a previous session is kept; a fresh
// session starts on the first registry chain.
func (c *LocalConnector) Connect(ctx context.Context) (Session, error) {
	if err := ctx.Err(); err != nil {
		return Session{}, err
	}

	hexKey, err := c.ks.Retrieve(c.keyRef)
	if err != nil {
		return Session{}, fmt.Errorf("%w: run `mintpad connect --import`", ErrNoKey)
	}
	priv, err := crypto.HexToECDSA(stripHexPrefix(hexKey))
	if err != nil {
		return Session{}, fmt.Errorf("%w: %v", ErrInvalidKey, err)
	}

	sess := c.store.Load()
	sess.Connected = true
	sess.Address = crypto.PubkeyToAddress(priv.PublicKey).Hex()
	if sess.ActiveChainID == 0 {
		sess.ActiveChainID = c.reg.All()[0].ChainID
	}

	if err := c.store.Save(sess); err != nil {
		return Session{}, fmt.Errorf("saving session: %w", err)
	}
	return sess, nil
}

// Disconnect clears the persisted session. The keychain entry stays.
func (c *LocalConnector) Disconnect() error {
	return c.store.Clear()
}

// Session returns the latest persisted session snapshot.
func (c *LocalConnector) Session() Session {
	return c.store.Load()
}

// SwitchChain moves the session to the given chain. The target must exist in
// the registry; on any failure the persisted session is left untouched.
func (c *LocalConnector) SwitchChain(ctx context.Context, chainID int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	target, err := c.reg.GetByChainID(chainID)
	if err != nil {
		return fmt.Errorf("unsupported chain id %d: %w", chainID, err)
	}

	sess := c.store.Load()
	if !sess.Connected {
		return ErrNotConnected
	}

	// Best-effort cross-check: a reachable endpoint that disagrees with the
	// target fails the switch; an unreachable one skips the check.
	if c.probe != nil && len(target.RPCs) > 0 {
		if got, perr := c.probe(ctx, target.RPCs[0]); perr == nil && got != chainID {
			return fmt.Errorf("rpc %s reports chain id %d, want %d", target.RPCs[0], got, chainID)
		}
	}

	sess.ActiveChainID = chainID
	return c.store.Save(sess)
}

func stripHexPrefix(s string) string {
	if len(s) >= 2 && s[:2] == "0x" {
		return s[2:]
	}
	return s
}
