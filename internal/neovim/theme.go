// Package neovim builds the Neovim highlight table for a theme and renders
// it as a Lua module.
package neovim

import (
	"syntinct/internal/color"
	"syntinct/internal/style"
	"syntinct/internal/theme"
)

// Theme is the resolved highlight table of one theme. It is built once by
// New and never modified afterwards.
type Theme struct {
	highlights map[Name]Highlight
}

// Len returns the number of highlight groups.
func (t *Theme) Len() int { return len(t.highlights) }

// Get returns the highlight for n.
func (t *Theme) Get(n Name) (Highlight, bool) {
	h, ok := t.highlights[n]
	return h, ok
}

func fg(c color.Color) style.Style { return style.Style{}.WithForeground(c) }
func bg(c color.Color) style.Style { return style.Style{}.WithBackground(c) }

type rule struct {
	name Name
	hl   Highlight
}

// New resolves every catalogue entry against base.
func New(base theme.Theme) *Theme {
	cat := base.CategoryColor
	tok := base.TokenColor
	level := base.DiagnosticLevelColor
	empty := Value(style.Style{})

	rules := []rule{
		{ColorColumn, Value(bg(cat(theme.ColumnGuide)))},
		{Conceal, empty},
		{CurSearch, Value(fg(cat(theme.Search)).WithBackground(cat(theme.ActiveSearchMatch)))},
		{Cursor, Value(style.Style{}.Reverse())},
		{CursorIM, Link(Cursor)},
		{CursorColumn, empty},
		{CursorLine, Value(bg(cat(theme.CursorLine)))},
		{Directory, empty},
		{DiffAdd, Value(bg(cat(theme.DiffAdd)))},
		{DiffChange, Value(bg(cat(theme.DiffChange)))},
		{DiffDelete, Value(bg(cat(theme.DiffDelete)))},
		{DiffText, Value(bg(cat(theme.DiffText)))},
		{EndOfBuffer, Link(NonText)},
		{TermCursor, Value(bg(cat(theme.TermCursor)))},
		{TermCursorNC, Value(bg(cat(theme.UnfocusedTermCursor)))},
		{ErrorMsg, Value(fg(level(theme.LevelError)))},
		{WinSeparator, Value(fg(color.Darken(cat(theme.Normal), 0.95)))},
		{Folded, Value(bg(cat(theme.Folded)))},
		{FoldColumn, empty},
		{SignColumn, empty},
		{IncSearch, Link(CurSearch)},
		{Substitute, Link(IncSearch)},
		{LineNr, Value(fg(cat(theme.LineNumber)))},
		{LineNrAbove, Link(LineNr)},
		{LineNrBelow, Link(LineNr)},
		{CursorLineNr, Value(fg(cat(theme.CursorLineNumber)))},
		{CursorLineFold, Link(FoldColumn)},
		{CursorLineSign, Link(SignColumn)},
		{MatchParen, Value(fg(cat(theme.MatchedBracket)))},
		{ModeMsg, Value(fg(cat(theme.ModeMessage)))},
		{MsgArea, empty},
		{MsgSeparator, Value(fg(cat(theme.MessageSeparator)))},
		{MoreMsg, Link(ModeMsg)},
		{NonText, Value(fg(cat(theme.NonText)))},
		{Normal, Value(fg(cat(theme.Normal)).WithBackground(cat(theme.NormalBackground)))},
		{NormalFloat, empty},
		{FloatBorder, Link(WinSeparator)},
		{FloatTitle, Link(Title)},
		{NormalNC, empty},
		{Pmenu, empty},
		{PmenuSel, Link(Visual)},
		{PmenuKind, empty},
		{PmenuKindSel, Link(Visual)},
		{PmenuExtra, empty},
		{PmenuExtraSel, Link(Visual)},
		{PmenuSbar, Value(fg(color.Lighten(cat(theme.NormalBackground), 0.1)))},
		{PmenuThumb, Link(Pmenu)},
		{Question, Value(fg(cat(theme.Question)))},
		{QuickFixLine, empty},
		{Search, Value(fg(cat(theme.Search)).WithBackground(cat(theme.SearchMatch)))},
		{SpecialKey, Value(fg(cat(theme.Special)))},
		{SpellBad, Value(fg(cat(theme.BadSpelling)))},
		{SpellCap, Link(SpellBad)},
		{SpellLocal, Link(SpellBad)},
		{SpellRare, Link(SpellBad)},
		{StatusLine, Value(bg(cat(theme.StatusLine)))},
		{StatusLineNC, Value(bg(color.Darken(cat(theme.StatusLine), 0.5)))},
		{TabLine, Value(fg(cat(theme.InactiveTab)).WithBackground(cat(theme.InactiveTabBackground)))},
		{TabLineFill, empty},
		{TabLineSel, Value(fg(cat(theme.ActiveTab)).WithBackground(cat(theme.ActiveTabBackground)))},
		{Title, Link(TabLineSel)},
		{Visual, Value(bg(cat(theme.Selection)))},
		{VisualNOS, Link(Visual)},
		{WarningMsg, Value(fg(level(theme.LevelWarning)))},
		{Whitespace, Value(fg(cat(theme.Whitespace)))},
		{WildMenu, Link(PmenuSel)},
		{WinBar, Link(TabLineSel)},
		{WinBarNC, Link(TabLine)},

		{LSPTypeGroup(LSPClass), Value(fg(tok(theme.Type)))},
		{LSPTypeGroup(LSPDecorator), Value(fg(tok(theme.Attribute)))},
		{LSPTypeGroup(LSPDerive), Value(fg(tok(theme.Interface)))},
		{LSPTypeGroup(LSPEnum), Value(fg(tok(theme.Enum)))},
		{LSPTypeGroup(LSPEnumMember), Value(fg(tok(theme.Variant)))},
		{LSPTypeGroup(LSPFunction), Value(fg(tok(theme.Function)))},
		{LSPTypeGroup(LSPInterface), Value(fg(tok(theme.Interface)))},
		{LSPTypeGroup(LSPKeyword), Value(fg(tok(theme.Keyword)))},
		{LSPTypeGroup(LSPMacro), Value(fg(tok(theme.Macro)))},
		{LSPTypeGroup(LSPMethod), Value(fg(tok(theme.Function)))},
		{LSPTypeGroup(LSPNamespace), Value(fg(tok(theme.Module)))},
		{LSPTypeGroup(LSPParameter), Value(fg(tok(theme.Parameter)))},
		{LSPTypeGroup(LSPProperty), Value(fg(tok(theme.Field)))},
		{LSPTypeGroup(LSPStruct), Value(fg(tok(theme.Type)))},
		{LSPTypeGroup(LSPTypeName), Value(fg(tok(theme.Type)))},
		{LSPTypeGroup(LSPTypeAlias), Value(fg(tok(theme.Type)))},
		{LSPTypeGroup(LSPTypeParameter), Value(fg(tok(theme.TypeParameter)))},
		{LSPTypeGroup(LSPVariable), Value(fg(tok(theme.Variable)))},
		{LSPModGroup(LSPDeprecated), Link(DiagnosticDeprecated)},
		{LSPTypeModGroup(LSPFunction, LSPDeprecated), Link(LSPModGroup(LSPDeprecated))},

		{Boolean, Value(fg(tok(theme.Boolean)))},
		{Character, Value(fg(tok(theme.Character)))},
		{Comment, Value(fg(tok(theme.Comment)))},
		{Conditional, Link(Keyword)},
		{Constant, Value(fg(tok(theme.Constant)))},
		{Debug, empty},
		{Define, Link(Macro)},
		{Delimiter, Value(fg(tok(theme.Delimiter)))},
		{Error, Value(fg(level(theme.LevelError)))},
		{Exception, Link(Keyword)},
		{Float, Value(fg(tok(theme.Float)))},
		{Function, Value(fg(tok(theme.Function)))},
		{Identifier, Value(fg(tok(theme.Identifier)))},
		{Include, Value(fg(tok(theme.Module)))},
		{Keyword, Value(fg(tok(theme.Keyword)))},
		{Label, Link(Keyword)},
		{Macro, Value(fg(tok(theme.Macro)))},
		{Number, Value(fg(tok(theme.Integer)))},
		{Operator, Value(fg(tok(theme.Operator)))},
		{PreCondit, Link(Macro)},
		{PreProc, Link(Macro)},
		{Repeat, Link(Keyword)},
		{Special, Link(SpecialChar)},
		{SpecialChar, Value(fg(cat(theme.Special)))},
		{SpecialComment, Link(Comment)},
		{Statement, Link(Keyword)},
		{StorageClass, Link(Keyword)},
		{String, Value(fg(tok(theme.String)))},
		{Structure, Link(Type)},
		{Tag, Value(fg(tok(theme.Tag)))},
		{Todo, Value(fg(tok(theme.Todo)))},
		{Type, Value(fg(tok(theme.Type)))},
		{Typedef, Link(Type)},
		{Underlined, Value(fg(tok(theme.Link)))},

		{DiagnosticDeprecated, empty},
		{DiagnosticUnnecessary, empty},

		{MarkdownCode, Value(fg(tok(theme.Identifier)))},
		{MarkdownCodeBlock, Value(fg(tok(theme.String)))},
		{MarkdownH1, Value(fg(tok(theme.Module)))},
		{MarkdownH2, Link(MarkdownH1)},
		{MarkdownHeadingDelimiter, Link(Delimiter)},
		{MarkdownLinkText, Value(fg(tok(theme.Link)))},

		{CmpItemAbbrMatch, Link(Special)},
		{CmpItemAbbrMatchFuzzy, Link(Special)},

		{TelescopeBorder, Link(FloatBorder)},
		{TelescopeTitle, Link(Title)},
	}

	for _, l := range theme.DiagnosticLevels() {
		c := level(l)
		rules = append(rules,
			rule{DiagnosticName{Level: l, Kind: DiagnosticPlain}, Value(fg(c))},
			rule{DiagnosticName{Level: l, Kind: DiagnosticUnderline},
				Value(style.Style{}.WithSpecial(c).WithUnderline(style.Curly))},
			rule{DiagnosticName{Level: l, Kind: DiagnosticVirtualText},
				Value(fg(c).WithBackground(color.Darken(c, 0.95)))},
		)
	}
	for _, t := range LSPTypes() {
		rules = append(rules, rule{CompletionKind{Type: t}, Link(LSPTypeGroup(t))})
	}

	highlights := make(map[Name]Highlight, len(rules))
	for _, r := range rules {
		if _, dup := highlights[r.name]; dup {
			panic("neovim: duplicate catalogue entry " + r.name.String())
		}
		highlights[r.name] = r.hl
	}
	return &Theme{highlights: highlights}
}
