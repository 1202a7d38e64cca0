package mint

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/common"

	"github.com/mintpadhq/mintpad/internal/chain"
	"github.com/mintpadhq/mintpad/internal/config"
	"github.com/mintpadhq/mintpad/internal/wallet"
)

// User-facing failure messages. Each replaces any previous error and is
// cleared by the next successful action.
const (
	msgConnectFailed = "Failed to connect wallet"
	msgSwitchFailed  = "Failed to switch to %s"
	msgMintFailed    = "Minting failed. Please try again."
)

// BalanceSource fetches the payment-token balance for a wallet. EVMClient
// satisfies it; tests substitute a stub.
type BalanceSource interface {
	GetTokenBalance(ctx context.Context, tokenAddr, walletAddr common.Address, decimals int) (*chain.TokenBalance, error)
}

// Controller is the mint eligibility controller. It reads wallet-session,
// balance, and mint-record state from its collaborators, derives a single
// eligibility state with one enabled primary action, and runs the
// side-effecting actions.
//
// At most one action is in flight at a time; surfaces disable the primary
// action while InFlight is set.
type Controller struct {
	adapter  wallet.Adapter
	balances BalanceSource
	records  RecordStore

	collection config.Collection
	selected   *chain.Chain

	confirmDelay time.Duration
	successTTL   time.Duration

	mu           sync.Mutex
	balance      *chain.TokenBalance
	balanceErr   error
	inFlight     bool
	success      bool
	successTimer *time.Timer
	lastErr      string
}

// Option configures a Controller.
type Option func(*Controller)

// WithConfirmDelay overrides the simulated confirmation latency.
func WithConfirmDelay(d time.Duration) Option {
	return func(c *Controller) { c.confirmDelay = d }
}

// WithSuccessTTL overrides how long the transient success flag stays set.
func WithSuccessTTL(d time.Duration) Option {
	return func(c *Controller) { c.successTTL = d }
}

// NewController creates a controller over the given collaborators.
func NewController(adapter wallet.Adapter, balances BalanceSource, records RecordStore, collection config.Collection, selected *chain.Chain, opts ...Option) *Controller {
	c := &Controller{
		adapter:    adapter,
		balances:   balances,
		records:    records,
		collection: collection,
		selected:   selected,

		// Placeholder for real transaction-confirmation latency.
		confirmDelay: 2 * time.Second,
		successTTL:   5 * time.Second,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SelectChain changes the user-selected target chain.
func (c *Controller) SelectChain(ch *chain.Chain) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.selected = ch
	c.balance = nil
	c.balanceErr = nil
}

// Selected returns the current target chain.
func (c *Controller) Selected() *chain.Chain {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.selected
}

// Status is the full widget view of the controller: the derived eligibility
// state plus the transient in-flight, success, and error surfaces.
type Status struct {
	State    State
	Action   Action
	Session  wallet.Session
	Balance  *chain.TokenBalance
	InFlight bool
	Success  bool
	Err      string
}

// Status derives the current eligibility state. The derivation itself is
// Evaluate; everything here is reading the latest collaborator values.
func (c *Controller) Status() Status {
	sess := c.adapter.Session()

	c.mu.Lock()
	selected := c.selected
	balance := c.balance
	inFlight := c.inFlight
	success := c.success
	lastErr := c.lastErr
	c.mu.Unlock()

	minted := false
	if sess.Connected {
		minted, _ = c.records.Minted(c.collection.ContractAddress, sess.Address)
	}

	state, action := Evaluate(Snapshot{
		Session:    sess,
		Selected:   selected,
		Balance:    balance,
		Minted:     minted,
		PriceUnits: c.collection.PriceUnits,
	})

	return Status{
		State:    state,
		Action:   action,
		Session:  sess,
		Balance:  balance,
		InFlight: inFlight,
		Success:  success,
		Err:      lastErr,
	}
}

// RefreshBalance fetches the payment-token balance for the connected wallet
// on the selected chain. A disconnected session or wrong active chain leaves
// the balance nil, matching the gating order of Evaluate.
func (c *Controller) RefreshBalance(ctx context.Context) error {
	sess := c.adapter.Session()

	c.mu.Lock()
	selected := c.selected
	c.mu.Unlock()

	if !sess.Connected || selected == nil || sess.ActiveChainID != selected.ChainID {
		return nil
	}

	bal, err := c.balances.GetTokenBalance(ctx,
		common.HexToAddress(selected.USDCAddress),
		common.HexToAddress(sess.Address),
		selected.USDCDecimals)

	c.mu.Lock()
	defer c.mu.Unlock()
	if err != nil {
		// A failed fetch renders the same as a pending one (nil balance);
		// the cause stays available through BalanceErr.
		c.balance = nil
		c.balanceErr = err
		return err
	}
	c.balance = bal
	c.balanceErr = nil
	return nil
}

// BalanceErr returns the last balance-fetch failure, or nil. It lets a
// surface distinguish "still loading" from "fetch failed" even though both
// derive the same eligibility state.
func (c *Controller) BalanceErr() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.balanceErr
}

// RequestConnect runs the adapter's connect flow. Failure surfaces a single
// retriable message; there is no automatic retry.
func (c *Controller) RequestConnect(ctx context.Context) error {
	if !c.begin() {
		return nil
	}
	defer c.end()

	if _, err := c.adapter.Connect(ctx); err != nil {
		c.fail(msgConnectFailed)
		return err
	}
	c.clearErr()
	return nil
}

// RequestChainSwitch asks the adapter to move to the selected chain. The
// session is unchanged when the switch fails; nothing was locally mutated,
// so there is no rollback.
func (c *Controller) RequestChainSwitch(ctx context.Context) error {
	c.mu.Lock()
	selected := c.selected
	c.mu.Unlock()
	if selected == nil {
		return fmt.Errorf("no chain selected")
	}

	if !c.begin() {
		return nil
	}
	defer c.end()

	if err := c.adapter.SwitchChain(ctx, selected.ChainID); err != nil {
		c.fail(fmt.Sprintf(msgSwitchFailed, selected.DisplayName))
		return err
	}
	c.clearErr()
	return nil
}

// RequestMint runs the simulated mint. It is a defensive no-op unless the
// derived state is ReadyToMint, even though surfaces disable the action
// outside that state.
//
// No value transfer or contract call happens here. The confirm delay stands
// in for transaction confirmation latency, and the record write stands in
// for on-chain mint state. A real implementation replaces this with: an
// approval transaction when the payment-token allowance is below the price,
// the mint transaction itself, confirmation polling, and an on-chain read of
// prior-mint status instead of the local record.
func (c *Controller) RequestMint(ctx context.Context) error {
	st := c.Status()
	if st.State != StateReadyToMint {
		return nil
	}

	if !c.begin() {
		return nil
	}
	defer c.end()

	select {
	case <-ctx.Done():
		// Cancelled mid-flight: nothing was written, nothing to roll back.
		return ctx.Err()
	case <-time.After(c.confirmDelay):
	}

	sess := c.adapter.Session()
	if err := c.records.MarkMinted(c.collection.ContractAddress, sess.Address); err != nil {
		c.fail(msgMintFailed)
		return err
	}

	c.mu.Lock()
	c.lastErr = ""
	c.success = true
	if c.successTimer != nil {
		c.successTimer.Stop()
	}
	c.successTimer = time.AfterFunc(c.successTTL, func() {
		c.mu.Lock()
		c.success = false
		c.mu.Unlock()
	})
	c.mu.Unlock()
	return nil
}

// --- in-flight bookkeeping ---

// begin marks an action in flight. It returns false when another action is
// already running, which callers treat as a no-op.
func (c *Controller) begin() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.inFlight {
		return false
	}
	c.inFlight = true
	return true
}

func (c *Controller) end() {
	c.mu.Lock()
	c.inFlight = false
	c.mu.Unlock()
}

func (c *Controller) fail(msg string) {
	c.mu.Lock()
	c.lastErr = msg
	c.mu.Unlock()
}

func (c *Controller) clearErr() {
	c.mu.Lock()
	c.lastErr = ""
	c.mu.Unlock()
}
