// Package preview renders a highlight table as colored terminal swatches
// and hosts the interactive theme browser.
package preview

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"syntinct/internal/neovim"
	"syntinct/internal/style"
)

const (
	nameColumn = 36
	sampleText = "The quick brown fox"
)

// Resolve follows links from n until a styled group is reached. It reports
// false when the chain dangles or does not terminate.
func Resolve(nt *neovim.Theme, n neovim.Name) (style.Style, bool) {
	for i := 0; i <= nt.Len(); i++ {
		h, ok := nt.Get(n)
		if !ok {
			return style.Style{}, false
		}
		if s, ok := h.Style(); ok {
			return s, true
		}
		n, _ = h.Target()
	}
	return style.Style{}, false
}

// Lipgloss converts a highlight style into a lipgloss style. Every
// underline variant maps to a plain terminal underline.
func Lipgloss(s style.Style) lipgloss.Style {
	ls := lipgloss.NewStyle()
	if c, ok := s.Foreground(); ok {
		ls = ls.Foreground(lipgloss.Color(c.Hex()))
	}
	if c, ok := s.Background(); ok {
		ls = ls.Background(lipgloss.Color(c.Hex()))
	}
	if v, ok := s.Bold(); ok {
		ls = ls.Bold(v)
	}
	if v, ok := s.Italic(); ok {
		ls = ls.Italic(v)
	}
	if v, ok := s.Strikethrough(); ok {
		ls = ls.Strikethrough(v)
	}
	if _, ok := s.UnderlineStyle(); ok {
		ls = ls.Underline(true)
	}
	if s.Reversed() {
		ls = ls.Reverse(true)
	}
	return ls
}

// Lines renders one swatch row per entry in serializer order. Each row is
// the group name, the link target when there is one, and sample text drawn
// in the resolved style on top of Normal. Rows never exceed width cells.
func Lines(nt *neovim.Theme, width int) []string {
	base := lipgloss.NewStyle()
	if normal, ok := Resolve(nt, neovim.Normal); ok {
		base = Lipgloss(normal)
	}
	muted := lipgloss.NewStyle().Faint(true)

	entries := nt.Entries()
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		label := e.Name.String()
		if target, ok := e.Highlight.Target(); ok {
			label += " → " + target.String()
		}
		label = padRight(ansi.Truncate(label, nameColumn-1, "…"), nameColumn)

		sample := base.Render(sampleText)
		if s, ok := Resolve(nt, e.Name); ok {
			sample = Lipgloss(s).Inherit(base).Render(sampleText)
		}

		row := muted.Render(label) + sample
		if width > 0 {
			row = ansi.Truncate(row, width, "")
		}
		out = append(out, row)
	}
	return out
}

// Render joins Lines into a single block.
func Render(nt *neovim.Theme, width int) string {
	return strings.Join(Lines(nt, width), "\n")
}

func padRight(s string, width int) string {
	w := ansi.StringWidth(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}
