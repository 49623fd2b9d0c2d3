// Package style models a sparse set of highlight attributes. Unset
// attributes are left to the editor's defaults.
package style

import "syntinct/internal/color"

// Underline is the shape of an underline.
type Underline int

const (
	Single Underline = iota
	Double
	Curly
	Dotted
	Dashed
)

// Keyword returns the Neovim attribute name for the underline shape.
func (u Underline) Keyword() string {
	switch u {
	case Double:
		return "underdouble"
	case Curly:
		return "undercurl"
	case Dotted:
		return "underdotted"
	case Dashed:
		return "underdashed"
	default:
		return "underline"
	}
}

func (u Underline) String() string { return u.Keyword() }

type opt[T comparable] struct {
	v   T
	set bool
}

func some[T comparable](v T) opt[T] { return opt[T]{v: v, set: true} }

func (o opt[T]) get() (T, bool) { return o.v, o.set }

// Style is an immutable set of optional attributes. The zero value sets
// nothing. Styles are comparable with ==; two styles are equal exactly when
// they set the same attributes to the same values.
type Style struct {
	fg, bg, sp    opt[color.Color]
	bold          opt[bool]
	italic        opt[bool]
	strikethrough opt[bool]
	underline     opt[Underline]
	reverse       bool
}

func (s Style) WithForeground(c color.Color) Style { s.fg = some(c); return s }
func (s Style) WithBackground(c color.Color) Style { s.bg = some(c); return s }
func (s Style) WithSpecial(c color.Color) Style    { s.sp = some(c); return s }
func (s Style) WithBold(v bool) Style              { s.bold = some(v); return s }
func (s Style) WithItalic(v bool) Style            { s.italic = some(v); return s }
func (s Style) WithStrikethrough(v bool) Style     { s.strikethrough = some(v); return s }
func (s Style) WithUnderline(u Underline) Style    { s.underline = some(u); return s }

func (s Style) WithoutForeground() Style    { s.fg = opt[color.Color]{}; return s }
func (s Style) WithoutBackground() Style    { s.bg = opt[color.Color]{}; return s }
func (s Style) WithoutSpecial() Style       { s.sp = opt[color.Color]{}; return s }
func (s Style) WithoutBold() Style          { s.bold = opt[bool]{}; return s }
func (s Style) WithoutItalic() Style        { s.italic = opt[bool]{}; return s }
func (s Style) WithoutStrikethrough() Style { s.strikethrough = opt[bool]{}; return s }
func (s Style) WithoutUnderline() Style     { s.underline = opt[Underline]{}; return s }

// Reverse returns s with reverse video on.
func (s Style) Reverse() Style { s.reverse = true; return s }

// WithReverse sets reverse video explicitly.
func (s Style) WithReverse(v bool) Style { s.reverse = v; return s }

func (s Style) Foreground() (color.Color, bool)   { return s.fg.get() }
func (s Style) Background() (color.Color, bool)   { return s.bg.get() }
func (s Style) Special() (color.Color, bool)      { return s.sp.get() }
func (s Style) Bold() (bool, bool)                { return s.bold.get() }
func (s Style) Italic() (bool, bool)              { return s.italic.get() }
func (s Style) Strikethrough() (bool, bool)       { return s.strikethrough.get() }
func (s Style) UnderlineStyle() (Underline, bool) { return s.underline.get() }
func (s Style) Reversed() bool                    { return s.reverse }

// IsZero reports whether s sets nothing and is not reversed.
func (s Style) IsZero() bool { return s == Style{} }
