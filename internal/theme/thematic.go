package theme

import (
	"syntinct/internal/color"

	"golang.org/x/image/colornames"
)

// ThematicDark is the dark variant of the thematic family.
type ThematicDark struct{}

func (ThematicDark) Foreground() color.Color          { return color.FromUint32(0xd8d8d8) }
func (ThematicDark) Background() color.Color          { return color.FromUint32(0x181818) }
func (ThematicDark) SecondaryForeground() color.Color { return color.FromRGBA(colornames.Slategray) }
func (ThematicDark) SecondaryBackground() color.Color { return color.FromUint32(0x202020) }
func (ThematicDark) Selection() color.Color           { return color.FromUint32(0x282828) }
func (ThematicDark) Cursor() color.Color              { return color.FromUint32(0xd8dee9) }
func (ThematicDark) SearchMatch() color.Color         { return color.FromRGBA(colornames.Royalblue) }
func (ThematicDark) ActiveSearchMatch() color.Color   { return color.FromRGBA(colornames.Coral) }
func (ThematicDark) Error() color.Color               { return color.FromUint32(0xbf616a) }
func (ThematicDark) DiffAdd() color.Color             { return color.FromUint32(0xa3be8c) }
func (ThematicDark) DiffDelete() color.Color          { return color.FromUint32(0xbf616a) }

func (t ThematicDark) MatchedBracket() color.Color { return t.SearchMatch() }
func (t ThematicDark) Guide() color.Color          { return t.SecondaryBackground() }
func (t ThematicDark) DiffChange() color.Color     { return t.SecondaryBackground() }

func (ThematicDark) DiagnosticLevelColor(l DiagnosticLevel) color.Color {
	switch l {
	case LevelError:
		return color.FromRGBA(colornames.Crimson)
	case LevelWarning:
		return color.FromRGBA(colornames.Orange)
	case LevelInfo:
		return color.FromRGBA(colornames.Steelblue)
	default:
		return color.FromRGBA(colornames.Aqua)
	}
}

// ThematicLight is the light variant of the thematic family. It supplies its
// own surface colors and reuses the dark variant for accents and diagnostics.
type ThematicLight struct {
	dark ThematicDark
}

func (ThematicLight) Foreground() color.Color          { return color.FromRGBA(colornames.Black) }
func (ThematicLight) Background() color.Color          { return color.FromRGBA(colornames.Beige) }
func (ThematicLight) SecondaryForeground() color.Color { return color.FromRGBA(colornames.Lightgray) }
func (ThematicLight) SecondaryBackground() color.Color { return color.FromRGBA(colornames.Ivory) }
func (ThematicLight) Selection() color.Color           { return color.FromRGBA(colornames.Azure) }
func (ThematicLight) Cursor() color.Color              { return color.FromRGBA(colornames.Slategray) }

func (t ThematicLight) Guide() color.Color { return t.SecondaryBackground() }

func (t ThematicLight) SearchMatch() color.Color       { return t.dark.SearchMatch() }
func (t ThematicLight) ActiveSearchMatch() color.Color { return t.dark.ActiveSearchMatch() }
func (t ThematicLight) MatchedBracket() color.Color    { return t.dark.MatchedBracket() }
func (t ThematicLight) Error() color.Color             { return t.dark.Error() }
func (t ThematicLight) DiffAdd() color.Color           { return t.dark.DiffAdd() }
func (t ThematicLight) DiffChange() color.Color        { return t.dark.DiffChange() }
func (t ThematicLight) DiffDelete() color.Color        { return t.dark.DiffDelete() }

func (t ThematicLight) DiagnosticLevelColor(l DiagnosticLevel) color.Color {
	return t.dark.DiagnosticLevelColor(l)
}

func init() {
	RegisterTheme("thematic-dark", Layered{Scheme: ThematicDark{}})
	RegisterTheme("thematic-light", Layered{Scheme: ThematicLight{}})
}
