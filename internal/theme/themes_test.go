package theme

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/colornames"

	"syntinct/internal/color"
	appErrors "syntinct/internal/errors"
)

// TestAllThemesRegistered verifies that all expected themes are registered.
func TestAllThemesRegistered(t *testing.T) {
	expected := []string{
		"aura-dark", "aura-light",
		"ayu-dark", "ayu-light",
		"catppuccin-dark", "catppuccin-light",
		"cobalt2-dark", "cobalt2-light",
		"dracula-dark", "dracula-light",
		"everforest-dark", "everforest-light",
		"flexoki-dark", "flexoki-light",
		"github-dark", "github-light",
		"gruvbox-dark", "gruvbox-light",
		"kanagawa-dark", "kanagawa-light",
		"material-dark", "material-light",
		"matrix-dark", "matrix-light",
		"monokai-dark", "monokai-light",
		"nightowl-dark", "nightowl-light",
		"nord-dark", "nord-light",
		"onedark-dark", "onedark-light",
		"palenight-dark", "palenight-light",
		"rosepine-dark", "rosepine-light",
		"solarized-dark", "solarized-light",
		"syntark",
		"synthwave84-dark", "synthwave84-light",
		"thematic-dark", "thematic-light",
		"tokyonight-dark", "tokyonight-light",
		"vesper-dark", "vesper-light",
		"zenburn-dark", "zenburn-light",
	}
	assert.Equal(t, expected, Available())
}

func TestLookupUnknownTheme(t *testing.T) {
	_, err := Lookup("nonexistent-theme")
	require.Error(t, err)
	assert.True(t, appErrors.IsCode(err, appErrors.CodeUnknownTheme))

	th, err := Lookup(DefaultName)
	require.NoError(t, err)
	assert.Equal(t, Syntark{}, th)
}

func TestNextAndPreviousWrap(t *testing.T) {
	names := Available()
	first, last := names[0], names[len(names)-1]

	assert.Equal(t, first, Next(last))
	assert.Equal(t, last, Previous(first))
	assert.Equal(t, names[1], Next(first))
	assert.Equal(t, first, Next("nonexistent-theme"))

	seen := map[string]bool{}
	name := DefaultName
	for range names {
		seen[name] = true
		name = Next(name)
	}
	assert.Len(t, seen, len(names))
	assert.Equal(t, DefaultName, name)
}

func TestRegisterDuplicatePanics(t *testing.T) {
	assert.Panics(t, func() { RegisterTheme(DefaultName, Syntark{}) })
}

// TestThemesAreTotal queries every role of every theme. A Theme has no unset
// result, so this mostly guards against panics and unbounded alias recursion.
func TestThemesAreTotal(t *testing.T) {
	for _, name := range Available() {
		th, err := Lookup(name)
		require.NoError(t, err)
		for _, c := range Categories() {
			assert.Equal(t, th.CategoryColor(c), th.CategoryColor(c), "%s %s", name, c)
		}
		for _, tok := range Tokens() {
			assert.Equal(t, th.TokenColor(tok), th.TokenColor(tok), "%s %s", name, tok)
		}
		for _, l := range DiagnosticLevels() {
			assert.Equal(t, th.DiagnosticLevelColor(l), th.DiagnosticLevelColor(l), "%s %s", name, l)
		}
	}
}

func TestAliasChainsTerminate(t *testing.T) {
	for start := range categoryAliases {
		c, steps := start, 0
		for {
			next, ok := categoryAliases[c]
			if !ok {
				break
			}
			require.NotEqual(t, c, next, "category %s aliases itself", c)
			c = next
			steps++
			require.LessOrEqual(t, steps, len(categoryAliases), "category alias cycle from %s", start)
		}
	}
	for start := range tokenAliases {
		tok, steps := start, 0
		for {
			next, ok := tokenAliases[tok]
			if !ok {
				break
			}
			require.NotEqual(t, tok, next, "token %s aliases itself", tok)
			tok = next
			steps++
			require.LessOrEqual(t, steps, len(tokenAliases), "token alias cycle from %s", start)
		}
	}
}

func TestLayeredAliasesFollowTarget(t *testing.T) {
	th := Layered{Scheme: ThematicDark{}}
	for from, to := range categoryAliases {
		assert.Equal(t, th.CategoryColor(to), th.CategoryColor(from), "%s -> %s", from, to)
	}
	for from, to := range tokenAliases {
		assert.Equal(t, th.TokenColor(to), th.TokenColor(from), "%s -> %s", from, to)
	}
}

func TestThematicDarkResolvesThroughPrimitives(t *testing.T) {
	th := Layered{Scheme: ThematicDark{}}

	assert.Equal(t, color.FromUint32(0xd8d8d8), th.CategoryColor(Normal))
	assert.Equal(t, color.FromUint32(0xd8d8d8), th.CategoryColor(ActiveTab))
	assert.Equal(t, color.FromUint32(0x181818), th.CategoryColor(NormalBackground))
	assert.Equal(t, color.FromUint32(0x202020), th.CategoryColor(DiffChange))
	assert.Equal(t, color.FromRGBA(colornames.Royalblue), th.CategoryColor(MatchedBracket))
	assert.Equal(t, color.FromUint32(0xbb9af7), th.TokenColor(Operator))
	assert.Equal(t, color.FromRGBA(colornames.Lightpink), th.TokenColor(Macro))
	assert.Equal(t, color.FromRGBA(colornames.Steelblue), th.TokenColor(Parameter))
	assert.Equal(t, color.FromRGBA(colornames.Slategray), th.TokenColor(DocComment))
	assert.Equal(t, color.FromRGBA(colornames.Crimson), th.DiagnosticLevelColor(LevelError))
}

func TestThematicLightDelegatesAccentsToDark(t *testing.T) {
	dark := Layered{Scheme: ThematicDark{}}
	light := Layered{Scheme: ThematicLight{}}

	for _, c := range []Category{ActiveSearchMatch, BadSpelling, DiffAdd, DiffChange, DiffDelete, SearchMatch, MatchedBracket} {
		assert.Equal(t, dark.CategoryColor(c), light.CategoryColor(c), "%s", c)
	}
	for _, l := range DiagnosticLevels() {
		assert.Equal(t, dark.DiagnosticLevelColor(l), light.DiagnosticLevelColor(l), "%s", l)
	}

	assert.Equal(t, color.FromRGBA(colornames.Black), light.CategoryColor(Normal))
	assert.Equal(t, color.FromRGBA(colornames.Beige), light.CategoryColor(NormalBackground))
	assert.Equal(t, color.FromRGBA(colornames.Ivory), light.CategoryColor(ColumnGuide))
}

func TestSyntarkDerivations(t *testing.T) {
	s := Syntark{}
	bg := color.FromUint32(0x181818)

	assert.Equal(t, color.FromUint32(0xd8d8d8), s.CategoryColor(Normal))
	assert.Equal(t, bg, s.CategoryColor(NormalBackground))
	assert.Equal(t, color.Darken(bg, 0.1), s.CategoryColor(ColumnGuide))
	assert.Equal(t, color.Lighten(bg, 0.005), s.CategoryColor(StatusLine))
	assert.Equal(t, s.CategoryColor(DiffAdd), s.CategoryColor(DiffText))
	assert.Equal(t, s.CategoryColor(Selection), s.CategoryColor(Question))
	assert.Equal(t, s.CategoryColor(TermCursor), s.CategoryColor(UnfocusedTermCursor))
	assert.Equal(t, s.TokenColor(Integer), s.TokenColor(Boolean))
	assert.Equal(t, s.TokenColor(Identifier), s.TokenColor(Parameter))
	assert.Equal(t, color.FromRGBA(colornames.Goldenrod), s.TokenColor(Float))
}

func TestPaletteDiffTonesFollowVariant(t *testing.T) {
	roles := Roles{
		Primary: "#000001", Secondary: "#000002", Accent: "#000003",
		Error: "#bf616a", Warning: "#000005", Success: "#a3be8c", Info: "#000007",
		Text: "#000008", TextMuted: "#000009", TextEmphasized: "#00000a",
		Background: "#00000b", BackgroundSecondary: "#00000c",
		BackgroundDarker: "#00000d", BorderDim: "#00000e",
	}
	dark := NewPalette(roles, false)
	light := NewPalette(roles, true)

	assert.Equal(t, color.Darken(color.FromUint32(0xa3be8c), 0.7), dark.DiffAdd())
	assert.Equal(t, color.Lighten(color.FromUint32(0xbf616a), 0.7), light.DiffDelete())
	assert.Equal(t, color.FromUint32(0x000002), dark.DiagnosticLevelColor(LevelHint))
	assert.Equal(t, color.FromUint32(0x00000d), dark.Guide())
}

func TestPaletteFamiliesResolveRoles(t *testing.T) {
	cases := []struct {
		name       string
		normal     uint32
		background uint32
		guide      uint32
		hint       uint32
	}{
		{"monokai-dark", 0xfcfcfa, 0x2d2a2e, 0x221f22, 0xab9df2},
		{"monokai-light", 0x2d2a2e, 0xfafafa, 0xf0f0f0, 0x6e5494},
		{"onedark-dark", 0xabb2bf, 0x282c34, 0x21252b, 0xc678dd},
		{"dracula-dark", 0xf8f8f2, 0x282a36, 0x1e1f29, 0x8be9fd},
		{"vesper-dark", 0xffffff, 0x101010, 0x0a0a0a, 0x99ffe4},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			th, err := Lookup(tc.name)
			require.NoError(t, err)
			assert.Equal(t, color.FromUint32(tc.normal), th.CategoryColor(Normal))
			assert.Equal(t, color.FromUint32(tc.background), th.CategoryColor(NormalBackground))
			assert.Equal(t, color.FromUint32(tc.guide), th.CategoryColor(ColumnGuide))
			assert.Equal(t, color.FromUint32(tc.hint), th.DiagnosticLevelColor(LevelHint))
		})
	}
}

func TestEnumStrings(t *testing.T) {
	assert.Len(t, Categories(), 30)
	assert.Len(t, Tokens(), 30)
	assert.Equal(t, "UnfocusedTermCursor", UnfocusedTermCursor.String())
	assert.Equal(t, "ConstGenericParameter", ConstGenericParameter.String())
	assert.Equal(t, "Hint", LevelHint.String())
	assert.Equal(t, "Token(99)", Token(99).String())
}
