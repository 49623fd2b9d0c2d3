package neovim

import (
	"bytes"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"syntinct/internal/color"
	appErrors "syntinct/internal/errors"
	"syntinct/internal/style"
	"syntinct/internal/theme"
)

var updateGolden = flag.Bool("update-golden", false, "update Lua golden files")

func TestEntriesAreSortedByRenderedName(t *testing.T) {
	entries := New(theme.Syntark{}).Entries()
	for i := 1; i < len(entries); i++ {
		prev, cur := entries[i-1].Name.String(), entries[i].Name.String()
		assert.LessOrEqual(t, prev, cur, "entry %d out of order", i)
	}
}

func TestLuaValueAndLinkBlocks(t *testing.T) {
	nt := &Theme{highlights: map[Name]Highlight{
		Normal: Value(style.Style{}.
			WithForeground(color.FromUint32(0xd8d8d8)).
			WithBackground(color.FromUint32(0x181818))),
		EndOfBuffer: Link(NonText),
		DiagnosticName{Level: theme.LevelError, Kind: DiagnosticUnderline}: Value(style.Style{}.
			WithSpecial(color.FromUint32(0xbf616a)).
			WithUnderline(style.Curly)),
		Title: Value(style.Style{}.WithBold(true).WithItalic(false).WithStrikethrough(true).Reverse()),
	}}

	got := string(nt.Lua([]byte("return M\n")))
	want := `local highlights = {
  ["DiagnosticUnderlineError"] = {
    sp = "#bf616a",
    undercurl = true,
    reverse = false,
  },
  ["EndOfBuffer"] = {
    link = "NonText",
  },
  ["Normal"] = {
    fg = "#d8d8d8",
    bg = "#181818",
    reverse = false,
  },
  ["Title"] = {
    bold = true,
    strikethrough = true,
    italic = false,
    reverse = true,
  },
}

return M
`
	assert.Equal(t, want, got)
}

func TestEmptyStyleEmitsOnlyReverse(t *testing.T) {
	nt := &Theme{highlights: map[Name]Highlight{Conceal: Value(style.Style{})}}
	got := string(nt.Lua(nil))
	assert.Equal(t, "local highlights = {\n  [\"Conceal\"] = {\n    reverse = false,\n  },\n}\n\n", got)
}

func TestLuaEndsWithSupportBlock(t *testing.T) {
	support := DefaultSupport()
	require.NotEmpty(t, support)

	out := New(theme.Syntark{}).Lua(support)
	assert.True(t, bytes.HasSuffix(out, support))
	assert.Contains(t, string(out), "}\n\n"+string(support))
	assert.Contains(t, string(support), "nvim_set_hl")
}

type failingWriter struct{ calls int }

func (w *failingWriter) Write(p []byte) (int, error) {
	w.calls++
	return 0, errors.New("sink closed")
}

func TestWriteLuaSurfacesWriteErrors(t *testing.T) {
	w := &failingWriter{}
	err := New(theme.Syntark{}).WriteLua(w, DefaultSupport())
	require.Error(t, err)
	assert.True(t, appErrors.IsCode(err, appErrors.CodeWriteFailed))
	assert.Contains(t, err.Error(), "sink closed")
	assert.Equal(t, 1, w.calls)
}

func TestLoadSupport(t *testing.T) {
	data, err := LoadSupport("")
	require.NoError(t, err)
	assert.Equal(t, DefaultSupport(), data)

	path := filepath.Join(t.TempDir(), "custom.lua")
	require.NoError(t, os.WriteFile(path, []byte("return highlights\n"), 0o600))
	data, err = LoadSupport(path)
	require.NoError(t, err)
	assert.Equal(t, "return highlights\n", string(data))

	_, err = LoadSupport(filepath.Join(t.TempDir(), "missing.lua"))
	require.Error(t, err)
	assert.True(t, appErrors.IsCode(err, appErrors.CodeSupportAsset))
}

func TestRecordsMatchSerializerOrder(t *testing.T) {
	nt := New(theme.Syntark{})
	records := nt.Records()
	entries := nt.Entries()
	require.Len(t, records, len(entries))
	for i := range entries {
		assert.Equal(t, entries[i].Name.String(), records[i].Name)
	}
}

func TestWriteRecordsJSONAndYAML(t *testing.T) {
	nt := &Theme{highlights: map[Name]Highlight{
		Normal:      Value(style.Style{}.WithForeground(color.FromUint32(0xd8d8d8))),
		EndOfBuffer: Link(NonText),
	}}

	var buf bytes.Buffer
	require.NoError(t, WriteRecords(&buf, nt.Records(), FormatJSON))
	var decoded []map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded, 2)
	assert.Equal(t, map[string]any{"name": "EndOfBuffer", "link": "NonText"}, decoded[0])
	assert.Equal(t, map[string]any{"name": "Normal", "fg": "#d8d8d8", "reverse": false}, decoded[1])

	buf.Reset()
	require.NoError(t, WriteRecords(&buf, nt.Records(), FormatYAML))
	var fromYAML []map[string]any
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &fromYAML))
	require.Len(t, fromYAML, 2)
	assert.Equal(t, "NonText", fromYAML[0]["link"])

	err := WriteRecords(&buf, nil, "toml")
	assert.True(t, appErrors.IsCode(err, appErrors.CodeUnknownFormat))
}

// TestSyntarkGolden compares the full module for the default theme against
// the checked-in testdata/syntark.lua. Run with -update-golden to refresh it.
func TestSyntarkGolden(t *testing.T) {
	got := New(theme.Syntark{}).Lua(DefaultSupport())
	path := filepath.Join("testdata", "syntark.lua")

	if *updateGolden {
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, got, 0o644))
		return
	}

	want, err := os.ReadFile(path)
	require.NoError(t, err)
	if !bytes.Equal(want, got) {
		t.Fatalf("golden mismatch for %s\n%s", path, firstDiff(string(want), string(got)))
	}
}

func firstDiff(want, got string) string {
	wl, gl := strings.Split(want, "\n"), strings.Split(got, "\n")
	for i := 0; i < len(wl) && i < len(gl); i++ {
		if wl[i] != gl[i] {
			return fmt.Sprintf("line %d:\n want: %s\n  got: %s", i+1, wl[i], gl[i])
		}
	}
	return "length differs"
}

