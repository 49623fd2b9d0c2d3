package theme

import "syntinct/internal/color"

// Roles is the terminal palette of a theme family variant, expressed as
// "#rrggbb" strings. Palette maps these roles onto layered primitives.
type Roles struct {
	Primary             string
	Secondary           string
	Accent              string
	Error               string
	Warning             string
	Success             string
	Info                string
	Text                string
	TextMuted           string
	TextEmphasized      string
	Background          string
	BackgroundSecondary string
	BackgroundDarker    string
	BorderDim           string
}

// Palette is a Scheme built from literal Roles.
type Palette struct {
	light bool

	primary             color.Color
	secondary           color.Color
	accent              color.Color
	err                 color.Color
	warning             color.Color
	success             color.Color
	info                color.Color
	text                color.Color
	textMuted           color.Color
	textEmphasized      color.Color
	background          color.Color
	backgroundSecondary color.Color
	backgroundDarker    color.Color
	borderDim           color.Color
}

// NewPalette parses r. It panics on a malformed color, since palettes are
// compiled-in literals.
func NewPalette(r Roles, light bool) Palette {
	return Palette{
		light:               light,
		primary:             color.MustHex(r.Primary),
		secondary:           color.MustHex(r.Secondary),
		accent:              color.MustHex(r.Accent),
		err:                 color.MustHex(r.Error),
		warning:             color.MustHex(r.Warning),
		success:             color.MustHex(r.Success),
		info:                color.MustHex(r.Info),
		text:                color.MustHex(r.Text),
		textMuted:           color.MustHex(r.TextMuted),
		textEmphasized:      color.MustHex(r.TextEmphasized),
		background:          color.MustHex(r.Background),
		backgroundSecondary: color.MustHex(r.BackgroundSecondary),
		backgroundDarker:    color.MustHex(r.BackgroundDarker),
		borderDim:           color.MustHex(r.BorderDim),
	}
}

// registerPalette registers the dark and light variants of a family as
// "<family>-dark" and "<family>-light".
func registerPalette(family string, dark, light Roles) {
	RegisterTheme(family+"-dark", Layered{Scheme: NewPalette(dark, false)})
	RegisterTheme(family+"-light", Layered{Scheme: NewPalette(light, true)})
}

func (p Palette) Foreground() color.Color          { return p.text }
func (p Palette) Background() color.Color          { return p.background }
func (p Palette) SecondaryForeground() color.Color { return p.textMuted }
func (p Palette) SecondaryBackground() color.Color { return p.backgroundSecondary }
func (p Palette) Selection() color.Color           { return p.borderDim }
func (p Palette) Cursor() color.Color              { return p.textEmphasized }
func (p Palette) SearchMatch() color.Color         { return p.primary }
func (p Palette) ActiveSearchMatch() color.Color   { return p.accent }
func (p Palette) MatchedBracket() color.Color      { return p.warning }
func (p Palette) Guide() color.Color               { return p.backgroundDarker }
func (p Palette) Error() color.Color               { return p.err }
func (p Palette) DiffAdd() color.Color             { return p.diffTone(p.success) }
func (p Palette) DiffChange() color.Color          { return p.diffTone(p.info) }
func (p Palette) DiffDelete() color.Color          { return p.diffTone(p.err) }

// diffTone pushes an accent toward the background so diff lines stay
// readable behind text.
func (p Palette) diffTone(c color.Color) color.Color {
	if p.light {
		return color.Lighten(c, 0.7)
	}
	return color.Darken(c, 0.7)
}

func (p Palette) DiagnosticLevelColor(l DiagnosticLevel) color.Color {
	switch l {
	case LevelError:
		return p.err
	case LevelWarning:
		return p.warning
	case LevelInfo:
		return p.info
	default:
		return p.secondary
	}
}
