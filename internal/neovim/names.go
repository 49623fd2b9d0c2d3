package neovim

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"syntinct/internal/theme"
)

// Name identifies a highlight group. Names are structural map keys; the
// rendered group name is only produced at the serialization boundary.
//
// The set of implementations is closed: Group, LSPName, DiagnosticName,
// MarkdownGroup, CompletionGroup, CompletionKind and FinderGroup.
type Name interface {
	String() string
	name()
}

// Group is a built-in editor or syntax group.
type Group string

func (g Group) String() string { return string(g) }
func (Group) name()            {}

// Built-in editor groups.
const (
	ColorColumn    Group = "ColorColumn"
	Conceal        Group = "Conceal"
	CurSearch      Group = "CurSearch"
	Cursor         Group = "Cursor"
	CursorIM       Group = "CursorIM"
	CursorColumn   Group = "CursorColumn"
	CursorLine     Group = "CursorLine"
	Directory      Group = "Directory"
	DiffAdd        Group = "DiffAdd"
	DiffChange     Group = "DiffChange"
	DiffDelete     Group = "DiffDelete"
	DiffText       Group = "DiffText"
	EndOfBuffer    Group = "EndOfBuffer"
	TermCursor     Group = "TermCursor"
	TermCursorNC   Group = "TermCursorNC"
	ErrorMsg       Group = "ErrorMsg"
	WinSeparator   Group = "WinSeparator"
	Folded         Group = "Folded"
	FoldColumn     Group = "FoldColumn"
	SignColumn     Group = "SignColumn"
	IncSearch      Group = "IncSearch"
	Substitute     Group = "Substitute"
	LineNr         Group = "LineNr"
	LineNrAbove    Group = "LineNrAbove"
	LineNrBelow    Group = "LineNrBelow"
	CursorLineNr   Group = "CursorLineNr"
	CursorLineFold Group = "CursorLineFold"
	CursorLineSign Group = "CursorLineSign"
	MatchParen     Group = "MatchParen"
	ModeMsg        Group = "ModeMsg"
	MsgArea        Group = "MsgArea"
	MsgSeparator   Group = "MsgSeparator"
	MoreMsg        Group = "MoreMsg"
	NonText        Group = "NonText"
	Normal         Group = "Normal"
	NormalFloat    Group = "NormalFloat"
	FloatBorder    Group = "FloatBorder"
	FloatTitle     Group = "FloatTitle"
	NormalNC       Group = "NormalNC"
	Pmenu          Group = "Pmenu"
	PmenuSel       Group = "PmenuSel"
	PmenuKind      Group = "PmenuKind"
	PmenuKindSel   Group = "PmenuKindSel"
	PmenuExtra     Group = "PmenuExtra"
	PmenuExtraSel  Group = "PmenuExtraSel"
	PmenuSbar      Group = "PmenuSbar"
	PmenuThumb     Group = "PmenuThumb"
	Question       Group = "Question"
	QuickFixLine   Group = "QuickFixLine"
	Search         Group = "Search"
	SpecialKey     Group = "SpecialKey"
	SpellBad       Group = "SpellBad"
	SpellCap       Group = "SpellCap"
	SpellLocal     Group = "SpellLocal"
	SpellRare      Group = "SpellRare"
	StatusLine     Group = "StatusLine"
	StatusLineNC   Group = "StatusLineNC"
	TabLine        Group = "TabLine"
	TabLineFill    Group = "TabLineFill"
	TabLineSel     Group = "TabLineSel"
	Title          Group = "Title"
	Visual         Group = "Visual"
	VisualNOS      Group = "VisualNOS"
	WarningMsg     Group = "WarningMsg"
	Whitespace     Group = "WhiteSpace"
	WildMenu       Group = "WildMenu"
	WinBar         Group = "WinBar"
	WinBarNC       Group = "WinBarNC"
)

// Syntax groups.
const (
	Boolean        Group = "Boolean"
	Character      Group = "Character"
	Comment        Group = "Comment"
	Conditional    Group = "Conditional"
	Constant       Group = "Constant"
	Debug          Group = "Debug"
	Define         Group = "Define"
	Delimiter      Group = "Delimiter"
	Error          Group = "Error"
	Exception      Group = "Exception"
	Float          Group = "Float"
	Function       Group = "Function"
	Identifier     Group = "Identifier"
	Include        Group = "Include"
	Keyword        Group = "Keyword"
	Label          Group = "Label"
	Macro          Group = "Macro"
	Number         Group = "Number"
	Operator       Group = "Operator"
	PreCondit      Group = "PreCondit"
	PreProc        Group = "PreProc"
	Repeat         Group = "Repeat"
	Special        Group = "Special"
	SpecialChar    Group = "SpecialChar"
	SpecialComment Group = "SpecialComment"
	Statement      Group = "Statement"
	StorageClass   Group = "StorageClass"
	String         Group = "String"
	Structure      Group = "Structure"
	Tag            Group = "Tag"
	Todo           Group = "Todo"
	Type           Group = "Type"
	Typedef        Group = "Typedef"
	Underlined     Group = "Underlined"
)

// Diagnostic groups that are not part of the level cross-product.
const (
	DiagnosticDeprecated  Group = "DiagnosticDeprecated"
	DiagnosticUnnecessary Group = "DiagnosticUnnecessary"
)

// LSPType is a semantic token type reported by a language server.
type LSPType string

const (
	LSPClass         LSPType = "class"
	LSPDecorator     LSPType = "decorator"
	LSPDerive        LSPType = "derive"
	LSPEnum          LSPType = "enum"
	LSPEnumMember    LSPType = "enumMember"
	LSPFunction      LSPType = "function"
	LSPInterface     LSPType = "interface"
	LSPKeyword       LSPType = "keyword"
	LSPMacro         LSPType = "macro"
	LSPMethod        LSPType = "method"
	LSPNamespace     LSPType = "namespace"
	LSPParameter     LSPType = "parameter"
	LSPProperty      LSPType = "property"
	LSPStruct        LSPType = "struct"
	LSPTypeName      LSPType = "type"
	LSPTypeAlias     LSPType = "typeAlias"
	LSPTypeParameter LSPType = "typeParameter"
	LSPVariable      LSPType = "variable"
)

// LSPTypes returns every LSPType in catalogue order.
func LSPTypes() []LSPType {
	return []LSPType{
		LSPClass, LSPDecorator, LSPDerive, LSPEnum, LSPEnumMember,
		LSPFunction, LSPInterface, LSPKeyword, LSPMacro, LSPMethod,
		LSPNamespace, LSPParameter, LSPProperty, LSPStruct, LSPTypeName,
		LSPTypeAlias, LSPTypeParameter, LSPVariable,
	}
}

// LSPModifier is a semantic token modifier.
type LSPModifier string

const LSPDeprecated LSPModifier = "deprecated"

// Language qualifies an LSP group to a single filetype.
type Language string

const Rust Language = "rust"

// LSPName is a semantic token group. At least one of Type and Modifier is
// set; setting both selects the typemod form.
type LSPName struct {
	Type     LSPType
	Modifier LSPModifier
	Language Language
}

// LSPTypeGroup returns the @lsp.type.<t> name.
func LSPTypeGroup(t LSPType) LSPName { return LSPName{Type: t} }

// LSPModGroup returns the @lsp.mod.<m> name.
func LSPModGroup(m LSPModifier) LSPName { return LSPName{Modifier: m} }

// LSPTypeModGroup returns the @lsp.typemod.<t>.<m> name.
func LSPTypeModGroup(t LSPType, m LSPModifier) LSPName {
	return LSPName{Type: t, Modifier: m}
}

// For returns n restricted to lang.
func (n LSPName) For(lang Language) LSPName {
	n.Language = lang
	return n
}

func (n LSPName) String() string {
	var b strings.Builder
	b.WriteString("@lsp.")
	switch {
	case n.Type != "" && n.Modifier != "":
		b.WriteString("typemod." + string(n.Type) + "." + string(n.Modifier))
	case n.Modifier != "":
		b.WriteString("mod." + string(n.Modifier))
	default:
		b.WriteString("type." + string(n.Type))
	}
	if n.Language != "" {
		b.WriteString("." + string(n.Language))
	}
	return b.String()
}

func (LSPName) name() {}

// DiagnosticKind is the UI presentation of a diagnostic group.
type DiagnosticKind int

const (
	DiagnosticPlain DiagnosticKind = iota
	DiagnosticVirtualText
	DiagnosticUnderline
)

// DiagnosticKinds returns every kind, plain first.
func DiagnosticKinds() []DiagnosticKind {
	return []DiagnosticKind{DiagnosticPlain, DiagnosticVirtualText, DiagnosticUnderline}
}

// DiagnosticName is one cell of the level by kind cross-product.
type DiagnosticName struct {
	Level theme.DiagnosticLevel
	Kind  DiagnosticKind
}

func (n DiagnosticName) String() string {
	var kind string
	switch n.Kind {
	case DiagnosticVirtualText:
		kind = "VirtualText"
	case DiagnosticUnderline:
		kind = "Underline"
	}
	return "Diagnostic" + kind + diagnosticLevelSuffix(n.Level)
}

func (DiagnosticName) name() {}

func diagnosticLevelSuffix(l theme.DiagnosticLevel) string {
	switch l {
	case theme.LevelError:
		return "Error"
	case theme.LevelWarning:
		return "Warn"
	case theme.LevelInfo:
		return "Info"
	default:
		return "Hint"
	}
}

// MarkdownGroup is a legacy markdown syntax group.
type MarkdownGroup string

const (
	MarkdownCode             MarkdownGroup = "markdownCode"
	MarkdownCodeBlock        MarkdownGroup = "markdownCodeBlock"
	MarkdownH1               MarkdownGroup = "markdownH1"
	MarkdownH2               MarkdownGroup = "markdownH2"
	MarkdownHeadingDelimiter MarkdownGroup = "markdownHeadingDelimiter"
	MarkdownLinkText         MarkdownGroup = "markdownLinkText"
)

func (g MarkdownGroup) String() string { return string(g) }
func (MarkdownGroup) name()            {}

// CompletionGroup is a completion menu group of nvim-cmp.
type CompletionGroup string

const (
	CmpItemAbbrMatch      CompletionGroup = "CmpItemAbbrMatch"
	CmpItemAbbrMatchFuzzy CompletionGroup = "CmpItemAbbrMatchFuzzy"
)

func (g CompletionGroup) String() string { return string(g) }
func (CompletionGroup) name()            {}

// CompletionKind is the completion menu group for one LSP type, rendered as
// CmpItemKind followed by the type in upper camel case.
type CompletionKind struct {
	Type LSPType
}

func (k CompletionKind) String() string {
	// A Caser carries state, so each call builds its own.
	return "CmpItemKind" + cases.Title(language.Und, cases.NoLower).String(string(k.Type))
}

func (CompletionKind) name() {}

// FinderGroup is a fuzzy finder (telescope.nvim) group.
type FinderGroup string

const (
	TelescopeBorder FinderGroup = "TelescopeBorder"
	TelescopeTitle  FinderGroup = "TelescopeTitle"
)

func (g FinderGroup) String() string { return string(g) }
func (FinderGroup) name()            {}
