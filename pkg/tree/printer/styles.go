// Package printer renders tree topologies as text for debugging and inspection.
package printer

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	"github.com/yaklabco/gotree/pkg/config"
	"github.com/yaklabco/gotree/pkg/tree"
)

// Color modes understood by IsColorEnabled.
const (
	ColorAuto   = config.ColorAuto
	ColorAlways = config.ColorAlways
	ColorNever  = config.ColorNever
)

// Styles holds the renderers used by the printers.
type Styles struct {
	Node   lipgloss.Style
	Name   lipgloss.Style
	Link   lipgloss.Style
	Edge   lipgloss.Style
	Root   lipgloss.Style
	Branch lipgloss.Style
	Dim    lipgloss.Style
}

// NewStyles creates styles with or without colors.
func NewStyles(colorEnabled bool) *Styles {
	if !colorEnabled {
		plain := lipgloss.NewStyle()
		return &Styles{
			Node:   plain,
			Name:   plain,
			Link:   plain,
			Edge:   plain,
			Root:   plain,
			Branch: plain,
			Dim:    plain,
		}
	}

	return &Styles{
		Node:   lipgloss.NewStyle().Bold(true),
		Name:   lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		Link:   lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
		Edge:   lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		Root:   lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		Branch: lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Dim:    lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
	}
}

// IsColorEnabled determines if color should be enabled based on mode and writer.
// In auto mode, color is enabled only if the writer is a TTY and NO_COLOR is not set.
func IsColorEnabled(mode string, writer io.Writer) bool {
	switch mode {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	default:
		if os.Getenv("NO_COLOR") != "" {
			return false
		}
		if f, ok := writer.(*os.File); ok {
			return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
		}
		return false
	}
}

// NameFunc returns the label of a node.
type NameFunc func(t *tree.Tree, n int) string

func nameOrDefault(fn NameFunc) NameFunc {
	if fn == nil {
		return tree.NodeName
	}
	return fn
}

// ColorFromConfig resolves the configured color mode for writer.
func ColorFromConfig(cfg *config.Config, writer io.Writer) bool {
	return IsColorEnabled(cfg.Printer.Color, writer)
}

// DetailedFromConfig returns a Detailed printer configured for writer.
func DetailedFromConfig(cfg *config.Config, writer io.Writer) Detailed {
	return Detailed{UseColor: ColorFromConfig(cfg, writer)}
}

// CompactFromConfig returns a Compact printer with the configured width.
func CompactFromConfig(cfg *config.Config) Compact {
	return Compact{MaxWidth: cfg.Printer.MaxWidth}
}
