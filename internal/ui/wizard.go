package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// WizardResult holds answers collected by the setup wizard.
type WizardResult struct {
	Chain      string
	PrivateKey string
}

type wizardStep int

const (
	stepChain wizardStep = iota
	stepKey
	stepDone
)

type wizardModel struct {
	step      wizardStep
	result    WizardResult
	cursor    int
	choices   []string
	input     string
	inputMode bool
}

func initialWizard(chains []string) wizardModel {
	return wizardModel{
		step:    stepChain,
		choices: chains,
	}
}

func (m wizardModel) Init() tea.Cmd { return nil }

func (m wizardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit

		case "up", "k":
			if !m.inputMode && m.cursor > 0 {
				m.cursor--
			}

		case "down", "j":
			if !m.inputMode && m.cursor < len(m.choices)-1 {
				m.cursor++
			}

		case "enter":
			if m.inputMode {
				m.result.PrivateKey = strings.TrimSpace(m.input)
				m.inputMode = false
				m.step = stepDone
			} else {
				if m.cursor < len(m.choices) {
					m.result.Chain = m.choices[m.cursor]
				}
				m.step = stepKey
				m.inputMode = true
				m.input = ""
			}

		case "backspace":
			if m.inputMode && len(m.input) > 0 {
				m.input = m.input[:len(m.input)-1]
			}

		default:
			if m.inputMode {
				m.input += msg.String()
			}
		}
	}

	if m.step == stepDone {
		return m, tea.Quit
	}
	return m, nil
}

func (m wizardModel) View() string {
	var s string

	switch m.step {
	case stepChain:
		s = renderMenu("Select mint network:", m.choices, m.cursor)
	case stepKey:
		s = StyleTitle.Render("Import a wallet key (optional)") + "\n\n"
		s += Meta("Paste a hex private key (or press Enter to skip):") + "\n"
		s += "> " + StyleAddress.Render(strings.Repeat("•", len(m.input))) + "█\n"
	case stepDone:
		s = Success("Setup complete!") + "\n"
	}

	return StyleBorder.Render(s) + "\n"
}

func renderMenu(title string, items []string, cursor int) string {
	s := StyleTitle.Render(title) + "\n\n"
	for i, item := range items {
		icon := "  "
		style := lipgloss.NewStyle().Foreground(ColorValue)
		if i == cursor {
			icon = "▸ "
			style = StyleSelected
		}
		s += icon + style.Render(item) + "\n"
	}
	s += "\n" + Meta("↑/↓ navigate · Enter select · q quit")
	return s
}

// RunWizard launches the interactive setup wizard and returns the result.
func RunWizard(chains []string) (*WizardResult, error) {
	m := initialWizard(chains)
	p := tea.NewProgram(m)
	final, err := p.Run()
	if err != nil {
		return nil, fmt.Errorf("wizard error: %w", err)
	}
	result := final.(wizardModel).result
	return &result, nil
}
