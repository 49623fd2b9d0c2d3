package theme

import (
	"syntinct/internal/color"

	"golang.org/x/image/colornames"
)

// Primitives is the small set of foundational colors a layered theme variant
// supplies. Every category and token of a Layered theme is derived from
// these.
type Primitives interface {
	Foreground() color.Color
	Background() color.Color
	SecondaryForeground() color.Color
	SecondaryBackground() color.Color
	Selection() color.Color
	Cursor() color.Color
	SearchMatch() color.Color
	ActiveSearchMatch() color.Color
	MatchedBracket() color.Color
	Guide() color.Color
	Error() color.Color
	DiffAdd() color.Color
	DiffChange() color.Color
	DiffDelete() color.Color
}

// Scheme is one variant of a dark/light theme family: its primitives plus
// its diagnostic colors.
type Scheme interface {
	Primitives
	DiagnosticLevelColor(l DiagnosticLevel) color.Color
}

// Layered implements Theme by resolving categories and tokens generically
// against the primitives of its Scheme.
type Layered struct {
	Scheme Scheme
}

// categoryAliases lists categories that have no color of their own and take
// the resolved color of another category.
var categoryAliases = map[Category]Category{
	ActiveTab:           Normal,
	ActiveTabBackground: NormalBackground,
	DiffText:            DiffAdd,
	MessageSeparator:    Normal,
	ModeMessage:         Normal,
	Question:            Selection,
	Search:              Normal,
	UnfocusedTermCursor: TermCursor,
}

// tokenAliases is the token counterpart of categoryAliases.
var tokenAliases = map[Token]Token{
	Boolean:               Variant,
	Character:             String,
	ConstGenericParameter: Constant,
	DocComment:            Comment,
	Enum:                  Type,
	Field:                 Variable,
	Float:                 Integer,
	Macro:                 Attribute,
	Operator:              Keyword,
	Parameter:             Variable,
	Static:                Variable,
	Struct:                Type,
	TypeParameter:         Type,
	Variable:              Identifier,
}

// CategoryColor implements Theme.
func (t Layered) CategoryColor(c Category) color.Color {
	for {
		next, ok := categoryAliases[c]
		if !ok {
			break
		}
		c = next
	}

	p := t.Scheme
	switch c {
	case ActiveSearchMatch:
		return p.ActiveSearchMatch()
	case BadSpelling:
		return p.Error()
	case ColumnGuide:
		return p.Guide()
	case CursorLine, Selection:
		return p.Selection()
	case CursorLineNumber, Normal:
		return p.Foreground()
	case DiffAdd:
		return p.DiffAdd()
	case DiffChange:
		return p.DiffChange()
	case DiffDelete:
		return p.DiffDelete()
	case Folded, InactiveTabBackground, StatusLine:
		return p.SecondaryBackground()
	case InactiveTab, LineNumber, NonText, Whitespace:
		return p.SecondaryForeground()
	case MatchedBracket:
		return p.MatchedBracket()
	case NormalBackground:
		return p.Background()
	case SearchMatch:
		return p.SearchMatch()
	case Special:
		return color.FromRGBA(colornames.Dodgerblue)
	case TermCursor:
		return p.Cursor()
	default:
		return p.Foreground()
	}
}

// TokenColor implements Theme.
func (t Layered) TokenColor(tok Token) color.Color {
	for {
		next, ok := tokenAliases[tok]
		if !ok {
			break
		}
		tok = next
	}

	p := t.Scheme
	switch tok {
	case Attribute:
		return color.FromRGBA(colornames.Lightpink)
	case Comment:
		return p.SecondaryForeground()
	case Constant:
		return color.FromRGBA(colornames.Cadetblue)
	case Delimiter, Tag:
		return p.Foreground()
	case Function:
		return color.FromRGBA(colornames.Deepskyblue)
	case Identifier:
		return color.FromRGBA(colornames.Steelblue)
	case Integer:
		return color.FromRGBA(colornames.Lightsalmon)
	case Interface:
		return color.FromRGBA(colornames.Seagreen)
	case Keyword:
		return color.FromUint32(0xbb9af7)
	case Link:
		return color.FromRGBA(colornames.Darkcyan)
	case Module:
		return color.FromRGBA(colornames.Teal)
	case String:
		return color.FromRGBA(colornames.Darkkhaki)
	case Todo:
		return color.FromRGBA(colornames.Darkorange)
	case Type:
		return color.FromRGBA(colornames.Darkseagreen)
	case Variant:
		return color.FromRGBA(colornames.Cornflowerblue)
	default:
		return p.Foreground()
	}
}

// DiagnosticLevelColor implements Theme.
func (t Layered) DiagnosticLevelColor(l DiagnosticLevel) color.Color {
	return t.Scheme.DiagnosticLevelColor(l)
}
