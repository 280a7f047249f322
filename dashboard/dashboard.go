// Package dashboard is the interactive terminal view of the simulator: edit
// the data and the generator polynomial, move the flipped bit, and watch both
// codecs react.
package dashboard

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/harlequix/ecsim/internal/format"
	log "github.com/harlequix/ecsim/log"
	"github.com/harlequix/ecsim/simulator"
)

const (
	dataField = iota
	keyField
)

type keyMap struct {
	Next key.Binding
	Up   key.Binding
	Down key.Binding
	Quit key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Up, k.Down, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

var keys = keyMap{
	Next: key.NewBinding(key.WithKeys("tab", "shift+tab"), key.WithHelp("tab", "switch field")),
	Up:   key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "flip next bit")),
	Down: key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "flip previous bit")),
	Quit: key.NewBinding(key.WithKeys("esc", "ctrl+c"), key.WithHelp("esc", "quit")),
}

var logger = log.NewLogger("dashboard")

type model struct {
	sim      *simulator.Simulator
	inputs   []textinput.Model
	focus    int
	position int
	report   *simulator.Report
	err      error
	help     help.Model
}

func newModel(sim *simulator.Simulator, config simulator.Config) model {
	inputs := make([]textinput.Model, 2)
	for i := range inputs {
		input := textinput.New()
		input.CharLimit = 64
		input.Width = 32
		inputs[i] = input
	}
	inputs[dataField].Prompt = "Data bits      > "
	inputs[dataField].Placeholder = "e.g. 1011001"
	inputs[dataField].SetValue(config.Data)
	inputs[keyField].Prompt = "CRC generator  > "
	inputs[keyField].Placeholder = "e.g. 1011"
	inputs[keyField].SetValue(config.Key)
	inputs[dataField].Focus()

	position := config.FlipPosition
	if position < 1 {
		position = 1
	}
	m := model{
		sim:      sim,
		inputs:   inputs,
		position: position,
		help:     help.New(),
	}
	m.refresh()
	return m
}

func (m model) Init() tea.Cmd {
	return textinput.Blink
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, keys.Next):
			m.inputs[m.focus].Blur()
			m.focus = (m.focus + 1) % len(m.inputs)
			return m, m.inputs[m.focus].Focus()
		case key.Matches(msg, keys.Up):
			m.move(1)
			return m, nil
		case key.Matches(msg, keys.Down):
			m.move(-1)
			return m, nil
		}
	}

	var cmd tea.Cmd
	before := m.inputs[m.focus].Value()
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	if m.inputs[m.focus].Value() != before {
		m.refresh()
	}
	return m, cmd
}

// move shifts the flipped position, staying within the longer codeword.
func (m *model) move(delta int) {
	next := m.position + delta
	if next < 1 || (m.report != nil && next > m.report.MaxLen()) {
		return
	}
	m.position = next
	m.refresh()
}

// refresh reruns the simulation for the current inputs. On invalid input the
// previous report stays on screen next to the error.
func (m *model) refresh() {
	data, polynomial := m.inputs[dataField].Value(), m.inputs[keyField].Value()
	report, err := m.sim.RunAt(data, polynomial, m.position)
	if err != nil {
		logger.WithField("data", data).WithField("key", polynomial).Debug(err)
		m.err = err
		return
	}
	if limit := report.MaxLen(); m.position > limit {
		m.position = limit
		report, err = m.sim.RunAt(data, polynomial, m.position)
		if err != nil {
			m.err = err
			return
		}
	}
	m.report = report
	m.err = nil
}

func (m model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("CRC and Hamming Code Simulator"))
	b.WriteString("\n")
	for _, input := range m.inputs {
		b.WriteString(input.View())
		b.WriteString("\n")
	}
	if m.err != nil {
		b.WriteString(errorStyle.Render("Please enter valid binary strings: " + m.err.Error()))
		b.WriteString("\n")
	}
	if m.report != nil {
		fmt.Fprintf(&b, "%s %d (1 to %d)\n\n",
			labelStyle.Render("Bit position to flip:"), m.position, m.report.MaxLen())
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
			boxStyle.Render(crcPanel(&m.report.CRC)),
			boxStyle.Render(hammingPanel(&m.report.Hamming)),
		))
		b.WriteString("\n")
	}
	b.WriteString(m.help.View(keys))
	return b.String()
}

func crcPanel(r *simulator.CRCReport) string {
	var b strings.Builder
	b.WriteString(headerStyle.Render("CRC Verification"))
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "%s %s\n", labelStyle.Render("Original Data:  "), r.Data)
	fmt.Fprintf(&b, "%s %s\n", labelStyle.Render("CRC Generator:  "), r.Key)
	fmt.Fprintf(&b, "%s %s\n", labelStyle.Render("Remainder:      "), r.Remainder)
	fmt.Fprintf(&b, "%s %s\n\n", labelStyle.Render("Transmitted:    "), r.Codeword)

	if r.OutOfBounds {
		b.WriteString(warnStyle.Render(fmt.Sprintf("Position out of bounds (length %d).", len(r.Codeword))))
		b.WriteString("\nNo error introduced, so no error detected.")
		return b.String()
	}
	fmt.Fprintf(&b, "%s %s\n", labelStyle.Render("Received:       "), renderBits(r.Received, markAll(flippedBit, r.Flipped...), false))
	fmt.Fprintf(&b, "%s %s\n\n", labelStyle.Render("Remainder:      "), r.Syndrome)
	switch {
	case r.Detected:
		b.WriteString(alertStyle.Render("Error DETECTED!"))
	case r.Corrupted():
		b.WriteString(warnStyle.Render("No error detected (CRC can miss some multi-bit errors)."))
	default:
		b.WriteString(okStyle.Render("No error detected."))
	}
	return b.String()
}

func hammingPanel(r *simulator.HammingReport) string {
	var b strings.Builder
	b.WriteString(headerStyle.Render("Hamming Code Correction"))
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "%s %s\n", labelStyle.Render("Original Data:  "), r.Data)
	fmt.Fprintf(&b, "%s %d\n", labelStyle.Render("Parity Bits:    "), r.ParityBits)
	fmt.Fprintf(&b, "%s %s\n", labelStyle.Render("Transmitted:    "), renderBits(r.Codeword, nil, true))
	fmt.Fprintf(&b, "%s %s\n\n", labelStyle.Render("                "), format.ParityMarker(len(r.Codeword)))

	if r.OutOfBounds {
		b.WriteString(warnStyle.Render(fmt.Sprintf("Position out of bounds (length %d).", len(r.Codeword))))
		b.WriteString("\nNo error introduced, so no correction needed.")
		return b.String()
	}
	fmt.Fprintf(&b, "%s %s\n", labelStyle.Render("Received:       "), renderBits(r.Received, markAll(flippedBit, r.Flipped...), false))
	switch {
	case r.ErrorPosition == 0:
		b.WriteString("\n")
		b.WriteString(okStyle.Render("No error detected."))
	case !r.Correctable:
		b.WriteString("\n")
		b.WriteString(alertStyle.Render(fmt.Sprintf("Syndrome %d is past the end, cannot correct.", r.ErrorPosition)))
	default:
		fmt.Fprintf(&b, "%s %s\n\n", labelStyle.Render("Corrected:      "), renderBits(r.Corrected, markAll(correctedBit, r.ErrorPosition), false))
		b.WriteString(alertStyle.Render(fmt.Sprintf("Error DETECTED at bit position %d.", r.ErrorPosition)))
	}
	return b.String()
}

// Run starts the dashboard and blocks until the user quits.
func Run(sim *simulator.Simulator, config simulator.Config) error {
	p := tea.NewProgram(newModel(sim, config), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running dashboard: %w", err)
	}
	return nil
}
