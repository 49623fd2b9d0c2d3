package neovim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"syntinct/internal/color"
	appErrors "syntinct/internal/errors"
	"syntinct/internal/style"
	"syntinct/internal/theme"
)

// stubTheme answers every role with a distinct literal so tests can tell
// which role a group was resolved from.
type stubTheme struct{}

func (stubTheme) CategoryColor(c theme.Category) color.Color {
	switch c {
	case theme.Normal:
		return color.FromUint32(0xd8d8d8)
	case theme.NormalBackground:
		return color.FromUint32(0x181818)
	}
	return color.RGB(0x10, uint8(c), 0x10)
}

func (stubTheme) TokenColor(t theme.Token) color.Color {
	return color.RGB(0x20, uint8(t), 0x20)
}

func (stubTheme) DiagnosticLevelColor(l theme.DiagnosticLevel) color.Color {
	if l == theme.LevelError {
		return color.FromUint32(0xbf616a)
	}
	return color.RGB(0x30, uint8(l), 0x30)
}

func TestNormalAndEndOfBuffer(t *testing.T) {
	nt := New(stubTheme{})

	h, ok := nt.Get(Normal)
	require.True(t, ok)
	s, isValue := h.Style()
	require.True(t, isValue)
	want := style.Style{}.
		WithForeground(color.FromUint32(0xd8d8d8)).
		WithBackground(color.FromUint32(0x181818))
	assert.Equal(t, want, s)

	h, ok = nt.Get(EndOfBuffer)
	require.True(t, ok)
	target, isLink := h.Target()
	require.True(t, isLink)
	assert.Equal(t, Name(NonText), target)
}

func TestNormalWithSyntark(t *testing.T) {
	nt := New(theme.Syntark{})
	h, _ := nt.Get(Normal)
	s, _ := h.Style()

	fg, _ := s.Foreground()
	bg, _ := s.Background()
	assert.Equal(t, "#d8d8d8", fg.Hex())
	assert.Equal(t, "#181818", bg.Hex())
}

func TestDiagnosticFamily(t *testing.T) {
	nt := New(stubTheme{})
	errColor := color.FromUint32(0xbf616a)

	h, ok := nt.Get(DiagnosticName{Level: theme.LevelError, Kind: DiagnosticUnderline})
	require.True(t, ok)
	s, _ := h.Style()
	assert.Equal(t, style.Style{}.WithSpecial(errColor).WithUnderline(style.Curly), s)
	_, hasFg := s.Foreground()
	_, hasBg := s.Background()
	assert.False(t, hasFg)
	assert.False(t, hasBg)

	h, ok = nt.Get(DiagnosticName{Level: theme.LevelError, Kind: DiagnosticVirtualText})
	require.True(t, ok)
	s, _ = h.Style()
	assert.Equal(t, style.Style{}.WithForeground(errColor).WithBackground(color.FromUint32(0x2d1214)), s)

	h, ok = nt.Get(DiagnosticName{Level: theme.LevelError, Kind: DiagnosticPlain})
	require.True(t, ok)
	s, _ = h.Style()
	assert.Equal(t, style.Style{}.WithForeground(errColor), s)
}

func TestDiagnosticCrossProductIsComplete(t *testing.T) {
	nt := New(stubTheme{})
	seen := map[string]bool{}
	for _, l := range theme.DiagnosticLevels() {
		for _, k := range DiagnosticKinds() {
			n := DiagnosticName{Level: l, Kind: k}
			_, ok := nt.Get(n)
			assert.True(t, ok, "missing %s", n)
			assert.False(t, seen[n.String()], "duplicate rendering %s", n)
			seen[n.String()] = true
		}
	}
	assert.Len(t, seen, 12)
}

func TestCompletionKindsLinkToLSPTypes(t *testing.T) {
	nt := New(stubTheme{})

	h, ok := nt.Get(CompletionKind{Type: LSPFunction})
	require.True(t, ok)
	_, isValue := h.Style()
	assert.False(t, isValue)
	target, isLink := h.Target()
	require.True(t, isLink)
	assert.Equal(t, Name(LSPTypeGroup(LSPFunction)), target)

	for _, lt := range LSPTypes() {
		h, ok := nt.Get(CompletionKind{Type: lt})
		require.True(t, ok, "missing completion kind %s", lt)
		target, _ := h.Target()
		assert.Equal(t, Name(LSPTypeGroup(lt)), target)
	}
}

func TestNameRendering(t *testing.T) {
	cases := []struct {
		name Name
		want string
	}{
		{Whitespace, "WhiteSpace"},
		{LSPTypeGroup(LSPFunction), "@lsp.type.function"},
		{LSPTypeGroup(LSPEnumMember).For(Rust), "@lsp.type.enumMember.rust"},
		{LSPModGroup(LSPDeprecated), "@lsp.mod.deprecated"},
		{LSPTypeModGroup(LSPFunction, LSPDeprecated), "@lsp.typemod.function.deprecated"},
		{DiagnosticName{Level: theme.LevelWarning}, "DiagnosticWarn"},
		{DiagnosticName{Level: theme.LevelHint, Kind: DiagnosticVirtualText}, "DiagnosticVirtualTextHint"},
		{DiagnosticName{Level: theme.LevelInfo, Kind: DiagnosticUnderline}, "DiagnosticUnderlineInfo"},
		{MarkdownHeadingDelimiter, "markdownHeadingDelimiter"},
		{CompletionKind{Type: LSPTypeParameter}, "CmpItemKindTypeParameter"},
		{CompletionKind{Type: LSPEnumMember}, "CmpItemKindEnumMember"},
		{CompletionKind{Type: LSPTypeName}, "CmpItemKindType"},
		{TelescopeBorder, "TelescopeBorder"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, tc.name.String())
	}
}

func TestStructuralKeysDoNotCollide(t *testing.T) {
	nt := New(stubTheme{})
	// Group "Function" and @lsp.type.function are different keys even though
	// both describe functions.
	a, _ := nt.Get(Function)
	b, _ := nt.Get(LSPTypeGroup(LSPFunction))
	assert.Equal(t, a, b)
	_, ok := nt.Get(Group("@lsp.type.function"))
	assert.False(t, ok)
}

func TestRenderedNamesAreUnique(t *testing.T) {
	nt := New(stubTheme{})
	seen := map[string]bool{}
	for _, e := range nt.Entries() {
		key := e.Name.String()
		assert.False(t, seen[key], "two groups render as %s", key)
		seen[key] = true
	}
	assert.Equal(t, 164, nt.Len())
}

func TestResolutionIsDeterministic(t *testing.T) {
	a := New(theme.Syntark{})
	b := New(theme.Syntark{})
	assert.Equal(t, a.Entries(), b.Entries())
	assert.Equal(t, a.Lua(DefaultSupport()), b.Lua(DefaultSupport()))
}

func TestEveryRegisteredThemeValidates(t *testing.T) {
	for _, name := range theme.Available() {
		th, err := theme.Lookup(name)
		require.NoError(t, err)
		assert.NoError(t, New(th).Validate(), name)
	}
}

func TestValidateDetectsDanglingLink(t *testing.T) {
	nt := &Theme{highlights: map[Name]Highlight{
		Normal:      Value(style.Style{}),
		EndOfBuffer: Link(NonText),
	}}
	err := nt.Validate()
	require.Error(t, err)
	assert.True(t, appErrors.IsCode(err, appErrors.CodeDanglingLink))
	assert.Contains(t, err.Error(), "EndOfBuffer links to NonText")
}

func TestValidateDetectsCycle(t *testing.T) {
	nt := &Theme{highlights: map[Name]Highlight{
		IncSearch:  Link(Substitute),
		Substitute: Link(CurSearch),
		CurSearch:  Link(IncSearch),
		Normal:     Value(style.Style{}),
	}}
	err := nt.Validate()
	require.Error(t, err)
	assert.True(t, appErrors.IsCode(err, appErrors.CodeCyclicLink))
	assert.Contains(t, err.Error(), "CurSearch -> IncSearch -> Substitute -> CurSearch")
}

func TestDeprecatedChain(t *testing.T) {
	nt := New(stubTheme{})
	h, _ := nt.Get(LSPModGroup(LSPDeprecated))
	target, _ := h.Target()
	assert.Equal(t, Name(DiagnosticDeprecated), target)

	h, _ = nt.Get(LSPTypeModGroup(LSPFunction, LSPDeprecated))
	target, _ = h.Target()
	assert.Equal(t, Name(LSPModGroup(LSPDeprecated)), target)

	for _, n := range []Name{DiagnosticDeprecated, DiagnosticUnnecessary} {
		h, ok := nt.Get(n)
		require.True(t, ok)
		s, isValue := h.Style()
		require.True(t, isValue, n.String())
		assert.True(t, s.IsZero(), "%s should set no attributes", n)
	}
}
