package ui

import (
	"context"
	"fmt"
	"math/big"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mintpadhq/mintpad/internal/chain"
	"github.com/mintpadhq/mintpad/internal/config"
	"github.com/mintpadhq/mintpad/internal/mint"
)

// widgetModel is the Bubble Tea model for the mint widget. The view is a
// pure render of the controller's derived status; every tick re-reads it.
type widgetModel struct {
	ctrl    *mint.Controller
	reg     *chain.Registry
	col     config.Collection
	persist func(chainName string) error

	status   mint.Status
	frame    int
	quitting bool
}

type tickMsg time.Time

type actionDoneMsg struct{}

func tick() tea.Cmd {
	return tea.Tick(200*time.Millisecond, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m widgetModel) Init() tea.Cmd {
	return tea.Batch(tick(), m.refreshBalance())
}

func (m widgetModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		m.frame++
		m.status = m.ctrl.Status()
		return m, tick()

	case actionDoneMsg:
		m.status = m.ctrl.Status()
		return m, m.refreshBalance()

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			m.quitting = true
			return m, tea.Quit

		case "enter":
			// The primary action is disabled while one is in flight.
			if m.status.InFlight || m.status.Action == mint.ActionNone {
				return m, nil
			}
			return m, m.runPrimaryAction(m.status.Action)

		case "s":
			m.cycleChain()
			m.status = m.ctrl.Status()
			return m, m.refreshBalance()

		case "r":
			return m, m.refreshBalance()
		}
	}
	return m, nil
}

// runPrimaryAction dispatches the single enabled action.
func (m widgetModel) runPrimaryAction(action mint.Action) tea.Cmd {
	ctrl := m.ctrl
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		switch action {
		case mint.ActionConnect:
			ctrl.RequestConnect(ctx) //nolint:errcheck
		case mint.ActionSwitchChain:
			ctrl.RequestChainSwitch(ctx) //nolint:errcheck
		case mint.ActionMint:
			ctrl.RequestMint(ctx) //nolint:errcheck
		}
		ctrl.RefreshBalance(ctx) //nolint:errcheck
		return actionDoneMsg{}
	}
}

func (m widgetModel) refreshBalance() tea.Cmd {
	ctrl := m.ctrl
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		ctrl.RefreshBalance(ctx) //nolint:errcheck
		return actionDoneMsg{}
	}
}

func (m *widgetModel) cycleChain() {
	chains := m.reg.All()
	next := &chains[0]
	if cur := m.ctrl.Selected(); cur != nil {
		for i := range chains {
			if chains[i].ChainID == cur.ChainID {
				next = &chains[(i+1)%len(chains)]
				break
			}
		}
	}
	m.ctrl.SelectChain(next)
	if m.persist != nil {
		m.persist(next.Name) //nolint:errcheck
	}
}

func (m widgetModel) View() string {
	if m.quitting {
		return ""
	}

	st := m.status
	sel := m.ctrl.Selected()

	var b strings.Builder
	b.WriteString(StyleTitle.Render(m.col.Name) + "\n")
	b.WriteString(Meta(m.col.Description) + "\n\n")

	price := FormatUnits(m.col.PriceUnits, m.col.TokenDecimals)
	b.WriteString(row("Price", Val(price+" "+m.col.TokenSymbol)))
	if sel != nil {
		b.WriteString(row("Network", ChainName(sel.DisplayName)+Meta(fmt.Sprintf(" (id %d)", sel.ChainID))))
	}
	if st.Session.Connected {
		b.WriteString(row("Wallet", Addr(TruncateAddr(st.Session.Address))))
	} else {
		b.WriteString(row("Wallet", Meta("not connected")))
	}
	b.WriteString(row("Balance", m.balanceLine()))
	b.WriteString("\n")

	b.WriteString(m.statusLine() + "\n")
	if st.Err != "" {
		b.WriteString(Err(st.Err) + "\n")
	}
	if st.Success {
		b.WriteString(Success("Minted! Welcome to "+m.col.Name+".") + "\n")
	}

	b.WriteString("\n" + Meta("Enter action · s switch network · r refresh · q quit"))
	return StyleBorder.Render(b.String()) + "\n"
}

func (m widgetModel) balanceLine() string {
	if m.status.Balance == nil {
		if m.ctrl.BalanceErr() != nil {
			return Meta("unavailable")
		}
		return Meta("Loading...")
	}
	return Val(m.status.Balance.Formatted + " " + m.col.TokenSymbol)
}

func (m widgetModel) statusLine() string {
	st := m.status
	if st.InFlight {
		frame := StyleChain.Render(spinnerFrames[m.frame%len(spinnerFrames)])
		return frame + " " + Meta("Working...")
	}
	switch st.State {
	case mint.StateNeedsConnect:
		return Warn("Connect your wallet to mint")
	case mint.StateNeedsNetworkSwitch:
		sel := m.ctrl.Selected()
		name := "the selected network"
		if sel != nil {
			name = sel.DisplayName
		}
		return Warn("Switch to " + name)
	case mint.StateAlreadyMinted:
		return Success("Already minted with this wallet")
	case mint.StateInsufficientFunds:
		return Warn("Insufficient " + m.col.TokenSymbol + " balance")
	case mint.StateReadyToMint:
		return StyleSuccess.Render("▸ Ready to mint — press Enter")
	}
	return ""
}

func row(label, value string) string {
	return fmt.Sprintf("%s %s\n", Meta(fmt.Sprintf("%-9s", label)), value)
}

// FormatUnits renders a smallest-unit amount with the given decimal count,
// trimming trailing zeros (10_000_000 units at 6 decimals → "10").
func FormatUnits(units uint64, decimals int) string {
	if decimals <= 0 {
		return fmt.Sprintf("%d", units)
	}
	div := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(decimals)), nil)
	f := new(big.Float).Quo(
		new(big.Float).SetUint64(units),
		new(big.Float).SetInt(div))
	s := f.Text('f', decimals)
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}

// RunWidget launches the interactive mint widget. persist, when non-nil, is
// called with the chain's slug name whenever the user switches networks, so
// the selection outlives the session.
func RunWidget(ctrl *mint.Controller, reg *chain.Registry, col config.Collection, persist func(chainName string) error) error {
	m := widgetModel{
		ctrl:    ctrl,
		reg:     reg,
		col:     col,
		persist: persist,
		status:  ctrl.Status(),
	}
	p := tea.NewProgram(m)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("widget error: %w", err)
	}
	return nil
}
