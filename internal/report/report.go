// Package report builds the human-readable description of a theme shown by
// `syntinct describe`.
package report

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/muesli/reflow/wordwrap"

	"syntinct/internal/neovim"
	"syntinct/internal/theme"
)

// DefaultWidth is used when the terminal width is unknown.
const DefaultWidth = 80

// Markdown describes base and its resolved highlight table as a markdown
// document.
func Markdown(name string, base theme.Theme, nt *neovim.Theme) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", name)

	values, links := 0, 0
	for _, e := range nt.Entries() {
		if e.Highlight.IsLink() {
			links++
		} else {
			values++
		}
	}
	fmt.Fprintf(&b, "%d highlight groups: %d styled, %d linked.\n\n", nt.Len(), values, links)

	b.WriteString("## Categories\n\n| Category | Color |\n| --- | --- |\n")
	for _, c := range theme.Categories() {
		fmt.Fprintf(&b, "| %s | `%s` |\n", c, base.CategoryColor(c).Hex())
	}

	b.WriteString("\n## Tokens\n\n| Token | Color |\n| --- | --- |\n")
	for _, tk := range theme.Tokens() {
		fmt.Fprintf(&b, "| %s | `%s` |\n", tk, base.TokenColor(tk).Hex())
	}

	b.WriteString("\n## Diagnostics\n\n| Level | Color |\n| --- | --- |\n")
	for _, l := range theme.DiagnosticLevels() {
		fmt.Fprintf(&b, "| %s | `%s` |\n", l, base.DiagnosticLevelColor(l).Hex())
	}

	return b.String()
}

// Renderer returns a function that renders markdown for the terminal.
// Format "plain" only wraps text; "rich" (or empty) uses the dark glamour
// style, and any other value is passed to glamour as a standard style name.
// If glamour cannot be set up the plain renderer is used.
func Renderer(format string, width int) func(string) string {
	if width <= 0 {
		width = DefaultWidth
	}
	fallback := func(input string) string {
		return wordwrap.String(input, width)
	}

	style := strings.ToLower(strings.TrimSpace(format))
	if style == "" || style == "rich" {
		style = "dark"
	}
	if style == "plain" {
		return fallback
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return fallback
	}
	return func(input string) string {
		out, err := renderer.Render(input)
		if err != nil {
			return fallback(input)
		}
		return strings.TrimSpace(out) + "\n"
	}
}
