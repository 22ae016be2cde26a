package report

import (
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// Styles used for terminal output. Plain() returns unstyled variants for
// pipes and files.
type Styles struct {
	Header  lipgloss.Style
	Label   lipgloss.Style
	Value   lipgloss.Style
	Subtle  lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style
	Box     lipgloss.Style
}

func Styled() Styles {
	return Styles{
		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#ffffff")).
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(lipgloss.Color("#444466")),
		Label:   lipgloss.NewStyle().Foreground(lipgloss.Color("#888899")),
		Value:   lipgloss.NewStyle().Foreground(lipgloss.Color("#00ccff")).Bold(true),
		Subtle:  lipgloss.NewStyle().Foreground(lipgloss.Color("#666688")),
		Success: lipgloss.NewStyle().Foreground(lipgloss.Color("#00ff88")).Bold(true),
		Warning: lipgloss.NewStyle().Foreground(lipgloss.Color("#ffaa00")).Bold(true),
		Box: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#444466")).
			Padding(0, 1),
	}
}

func Plain() Styles {
	s := lipgloss.NewStyle()
	return Styles{Header: s, Label: s, Value: s, Subtle: s, Success: s, Warning: s, Box: s}
}

// ForFile picks Styled when f is a terminal.
func ForFile(f *os.File) Styles {
	if term.IsTerminal(int(f.Fd())) {
		return Styled()
	}
	return Plain()
}

// Sparkline renders values as a row of block characters, sampled to width.
func Sparkline(values []float64, width int) string {
	if len(values) == 0 || width <= 0 {
		return strings.Repeat("─", max(width, 0))
	}

	chars := []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

	lo, hi := values[0], values[0]
	for _, v := range values {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	rng := hi - lo
	if rng == 0 {
		rng = 1
	}

	step := len(values) / width
	if step < 1 {
		step = 1
	}

	var sb strings.Builder
	for i := 0; i < width && i*step < len(values); i++ {
		norm := (values[i*step] - lo) / rng
		idx := int(norm * float64(len(chars)-1))
		idx = min(max(idx, 0), len(chars)-1)
		sb.WriteRune(chars[idx])
	}
	return sb.String()
}
