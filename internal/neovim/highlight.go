package neovim

import "syntinct/internal/style"

// Highlight is either a concrete style or a link to another group. The zero
// value is an empty style.
type Highlight struct {
	style  style.Style
	target Name
}

// Value returns a highlight with a concrete style.
func Value(s style.Style) Highlight { return Highlight{style: s} }

// Link returns a highlight that defers to target. The editor resolves links
// at load time; they are never inlined here.
func Link(target Name) Highlight { return Highlight{target: target} }

// Style returns the concrete style and true, or false for a link.
func (h Highlight) Style() (style.Style, bool) {
	return h.style, h.target == nil
}

// Target returns the link target and true, or false for a value.
func (h Highlight) Target() (Name, bool) {
	return h.target, h.target != nil
}

// IsLink reports whether h is a link.
func (h Highlight) IsLink() bool { return h.target != nil }
