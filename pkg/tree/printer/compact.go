package printer

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/term"

	"github.com/yaklabco/gotree/pkg/tree"
)

// Compact prints a tree as an indented outline:
//
//	R
//	├── C
//	│   ├── A
//	│   └── B
//	└── F
type Compact struct {
	// MaxWidth truncates lines to this many characters. Zero means the terminal
	// width when writing to a terminal, and no limit otherwise.
	MaxWidth int
	Name     NameFunc
}

// Print writes the outline of t to w.
func (p Compact) Print(w io.Writer, t *tree.Tree) error {
	width := p.MaxWidth
	if width == 0 {
		width = terminalWidth(w)
	}

	if _, err := io.WriteString(w, p.render(t, width)); err != nil {
		return fmt.Errorf("write tree: %w", err)
	}
	return nil
}

// String returns the outline of t, truncated to MaxWidth if set.
func (p Compact) String(t *tree.Tree) string {
	return p.render(t, p.MaxWidth)
}

func (p Compact) render(t *tree.Tree, width int) string {
	name := nameOrDefault(p.Name)

	var sb strings.Builder
	writeLine := func(line string) {
		sb.WriteString(truncate(line, width))
		sb.WriteByte('\n')
	}

	var walk func(n int, prefix string)
	walk = func(n int, prefix string) {
		children := t.Children(n)
		for i, c := range children {
			branch, indent := "├── ", "│   "
			if i == len(children)-1 {
				branch, indent = "└── ", "    "
			}
			writeLine(prefix + branch + name(t, c))
			walk(c, prefix+indent)
		}
	}

	writeLine(name(t, t.RootNode()))
	walk(t.RootNode(), "")

	return sb.String()
}

// truncate shortens line to width characters, marking the cut with an ellipsis.
func truncate(line string, width int) string {
	if width <= 0 {
		return line
	}
	runes := []rune(line)
	if len(runes) <= width {
		return line
	}
	if width == 1 {
		return "…"
	}
	return string(runes[:width-1]) + "…"
}

// terminalWidth returns the width of the terminal behind w, or 0 if w is not a terminal.
func terminalWidth(w io.Writer) int {
	if f, ok := w.(interface{ Fd() uintptr }); ok {
		width, _, err := term.GetSize(int(f.Fd()))
		if err == nil && width > 0 {
			return width
		}
	}
	return 0
}
