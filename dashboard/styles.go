package dashboard

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/harlequix/ecsim/internal/encoding"
)

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("63")).
			MarginBottom(1)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Padding(0, 1).
			Width(48)

	headerStyle = lipgloss.NewStyle().Bold(true).Underline(true)

	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))

	flippedBit = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")). // black text
			Background(lipgloss.Color("9"))  // red background

	correctedBit = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("10")) // green background

	parityBit = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))

	okStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	alertStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	warnStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

// renderBits styles bits one by one. marks maps 1-indexed positions to a
// style; parity, when set, colours the Hamming parity positions.
func renderBits(bits encoding.BitString, marks map[int]lipgloss.Style, parity bool) string {
	var out strings.Builder
	for i, c := range bits {
		pos := i + 1
		cell := string(c)
		if style, ok := marks[pos]; ok {
			out.WriteString(style.Render(cell))
		} else if parity && encoding.IsParityPosition(uint(pos)) {
			out.WriteString(parityBit.Render(cell))
		} else {
			out.WriteString(cell)
		}
	}
	return out.String()
}

func markAll(style lipgloss.Style, positions ...int) map[int]lipgloss.Style {
	marks := make(map[int]lipgloss.Style, len(positions))
	for _, pos := range positions {
		marks[pos] = style
	}
	return marks
}
