package theme

import (
	"syntinct/internal/color"

	"golang.org/x/image/colornames"
)

// Syntark is the flat default theme. Every member is either a literal color
// or a direct function of another member's resolved color.
type Syntark struct{}

// CategoryColor implements Theme.
func (s Syntark) CategoryColor(c Category) color.Color {
	switch c {
	case ActiveSearchMatch:
		return color.FromRGBA(colornames.Chocolate)
	case ActiveTab, CursorLineNumber:
		return color.FromRGBA(colornames.White)
	case ActiveTabBackground:
		return s.CategoryColor(NormalBackground)
	case BadSpelling:
		return color.FromRGBA(colornames.Brown)
	case ColumnGuide:
		return color.Darken(s.CategoryColor(NormalBackground), 0.1)
	case CursorLine:
		return color.Lighten(s.CategoryColor(NormalBackground), 0.01)
	case DiffAdd:
		return color.WithSaturationValue(color.FromRGBA(colornames.Green), 0.3, 0.3)
	case DiffChange:
		return color.WithSaturationValue(color.FromRGBA(colornames.Green), 0.6, 0.15)
	case DiffDelete:
		return color.WithSaturationValue(color.FromRGBA(colornames.Red), 0.4, 0.3)
	case DiffText:
		return s.CategoryColor(DiffAdd)
	case Folded:
		return color.Darken(s.CategoryColor(NormalBackground), 0.2)
	case InactiveTab, LineNumber:
		return color.Darken(s.CategoryColor(Normal), 0.75)
	case InactiveTabBackground:
		return color.Darken(s.CategoryColor(NormalBackground), 0.3)
	case MatchedBracket:
		return color.FromRGBA(colornames.Yellow)
	case MessageSeparator, ModeMessage, Search:
		return s.CategoryColor(Normal)
	case NonText:
		return color.FromRGBA(colornames.Dimgray)
	case Normal:
		return color.FromUint32(0xd8d8d8)
	case NormalBackground:
		return color.FromUint32(0x181818)
	case Question:
		return s.CategoryColor(Selection)
	case SearchMatch:
		return color.FromRGBA(colornames.Blue)
	case Selection:
		return color.FromRGBA(colornames.Darkslategray)
	case Special:
		return color.FromRGBA(colornames.Dodgerblue)
	case StatusLine:
		return color.Lighten(s.CategoryColor(NormalBackground), 0.005)
	case TermCursor:
		return color.FromUint32(0xaeafad)
	case UnfocusedTermCursor:
		return s.CategoryColor(TermCursor)
	case Whitespace:
		return color.Darken(s.CategoryColor(Normal), 0.9)
	default:
		return s.CategoryColor(Normal)
	}
}

// TokenColor implements Theme.
func (s Syntark) TokenColor(t Token) color.Color {
	switch t {
	case Attribute:
		return color.FromRGBA(colornames.Lightpink)
	case Boolean, Float:
		return s.TokenColor(Integer)
	case Character:
		return color.FromRGBA(colornames.Seagreen)
	case Comment:
		return color.FromRGBA(colornames.Slategray)
	case Constant:
		return color.FromRGBA(colornames.Lightsalmon)
	case ConstGenericParameter:
		return s.TokenColor(Constant)
	case Delimiter:
		return color.FromRGBA(colornames.Lightcoral)
	case DocComment:
		return s.TokenColor(Comment)
	case Enum, Struct, TypeParameter:
		return s.TokenColor(Type)
	case Field:
		return color.FromRGBA(colornames.Tan)
	case Function:
		return color.FromRGBA(colornames.Deepskyblue)
	case Identifier:
		return color.FromRGBA(colornames.Steelblue)
	case Integer:
		return color.FromRGBA(colornames.Goldenrod)
	case Interface:
		return color.FromRGBA(colornames.Teal)
	case Keyword:
		return color.FromRGBA(colornames.Orchid)
	case Link:
		return color.FromRGBA(colornames.Darkcyan)
	case Macro:
		return color.FromRGBA(colornames.Pink)
	case Module:
		return color.FromRGBA(colornames.Aquamarine)
	case Operator:
		return color.FromRGBA(colornames.Dodgerblue)
	case Parameter, Static:
		return s.TokenColor(Variable)
	case String:
		return color.FromRGBA(colornames.Forestgreen)
	case Tag:
		return color.FromRGBA(colornames.Cadetblue)
	case Todo:
		return color.FromRGBA(colornames.Darkorange)
	case Type:
		return color.FromRGBA(colornames.Lightgreen)
	case Variable:
		return s.TokenColor(Identifier)
	case Variant:
		return color.FromRGBA(colornames.Lightskyblue)
	default:
		return s.CategoryColor(Normal)
	}
}

// DiagnosticLevelColor implements Theme.
func (s Syntark) DiagnosticLevelColor(l DiagnosticLevel) color.Color {
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

func init() {
	RegisterTheme(DefaultName, Syntark{})
}
