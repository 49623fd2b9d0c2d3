package theme

import "fmt"

// Category is a semantic UI role that needs a color.
type Category int

const (
	ActiveSearchMatch Category = iota
	ActiveTab
	ActiveTabBackground
	BadSpelling
	ColumnGuide
	CursorLine
	CursorLineNumber
	DiffAdd
	DiffChange
	DiffDelete
	DiffText
	Folded
	InactiveTab
	InactiveTabBackground
	LineNumber
	MatchedBracket
	MessageSeparator
	ModeMessage
	NonText
	Normal
	NormalBackground
	Question
	Search
	SearchMatch
	Selection
	Special
	StatusLine
	TermCursor
	UnfocusedTermCursor
	Whitespace

	categoryCount
)

var categoryNames = [...]string{
	ActiveSearchMatch:     "ActiveSearchMatch",
	ActiveTab:             "ActiveTab",
	ActiveTabBackground:   "ActiveTabBackground",
	BadSpelling:           "BadSpelling",
	ColumnGuide:           "ColumnGuide",
	CursorLine:            "CursorLine",
	CursorLineNumber:      "CursorLineNumber",
	DiffAdd:               "DiffAdd",
	DiffChange:            "DiffChange",
	DiffDelete:            "DiffDelete",
	DiffText:              "DiffText",
	Folded:                "Folded",
	InactiveTab:           "InactiveTab",
	InactiveTabBackground: "InactiveTabBackground",
	LineNumber:            "LineNumber",
	MatchedBracket:        "MatchedBracket",
	MessageSeparator:      "MessageSeparator",
	ModeMessage:           "ModeMessage",
	NonText:               "NonText",
	Normal:                "Normal",
	NormalBackground:      "NormalBackground",
	Question:              "Question",
	Search:                "Search",
	SearchMatch:           "SearchMatch",
	Selection:             "Selection",
	Special:               "Special",
	StatusLine:            "StatusLine",
	TermCursor:            "TermCursor",
	UnfocusedTermCursor:   "UnfocusedTermCursor",
	Whitespace:            "Whitespace",
}

// Categories returns every Category in declaration order.
func Categories() []Category {
	out := make([]Category, 0, categoryCount)
	for c := Category(0); c < categoryCount; c++ {
		out = append(out, c)
	}
	return out
}

func (c Category) String() string {
	if c >= 0 && c < categoryCount {
		return categoryNames[c]
	}
	return fmt.Sprintf("Category(%d)", int(c))
}

// Token is a semantic syntax role that needs a color.
type Token int

const (
	Attribute Token = iota
	Boolean
	Character
	Comment
	Constant
	ConstGenericParameter
	Delimiter
	DocComment
	Enum
	Field
	Float
	Function
	Identifier
	Integer
	Interface
	Keyword
	Link
	Macro
	Module
	Operator
	Parameter
	Static
	String
	Struct
	Tag
	Todo
	Type
	TypeParameter
	Variable
	Variant

	tokenCount
)

var tokenNames = [...]string{
	Attribute:             "Attribute",
	Boolean:               "Boolean",
	Character:             "Character",
	Comment:               "Comment",
	Constant:              "Constant",
	ConstGenericParameter: "ConstGenericParameter",
	Delimiter:             "Delimiter",
	DocComment:            "DocComment",
	Enum:                  "Enum",
	Field:                 "Field",
	Float:                 "Float",
	Function:              "Function",
	Identifier:            "Identifier",
	Integer:               "Integer",
	Interface:             "Interface",
	Keyword:               "Keyword",
	Link:                  "Link",
	Macro:                 "Macro",
	Module:                "Module",
	Operator:              "Operator",
	Parameter:             "Parameter",
	Static:                "Static",
	String:                "String",
	Struct:                "Struct",
	Tag:                   "Tag",
	Todo:                  "Todo",
	Type:                  "Type",
	TypeParameter:         "TypeParameter",
	Variable:              "Variable",
	Variant:               "Variant",
}

// Tokens returns every Token in declaration order.
func Tokens() []Token {
	out := make([]Token, 0, tokenCount)
	for t := Token(0); t < tokenCount; t++ {
		out = append(out, t)
	}
	return out
}

func (t Token) String() string {
	if t >= 0 && t < tokenCount {
		return tokenNames[t]
	}
	return fmt.Sprintf("Token(%d)", int(t))
}

// DiagnosticLevel is the severity of an editor diagnostic.
type DiagnosticLevel int

const (
	LevelError DiagnosticLevel = iota
	LevelWarning
	LevelInfo
	LevelHint

	levelCount
)

var levelNames = [...]string{
	LevelError:   "Error",
	LevelWarning: "Warning",
	LevelInfo:    "Info",
	LevelHint:    "Hint",
}

// DiagnosticLevels returns every level from most to least severe.
func DiagnosticLevels() []DiagnosticLevel {
	return []DiagnosticLevel{LevelError, LevelWarning, LevelInfo, LevelHint}
}

func (l DiagnosticLevel) String() string {
	if l >= 0 && l < levelCount {
		return levelNames[l]
	}
	return fmt.Sprintf("DiagnosticLevel(%d)", int(l))
}
