package neovim

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	appErrors "syntinct/internal/errors"
)

//go:embed support.lua
var defaultSupport []byte

// DefaultSupport returns the embedded Lua support block that applies the
// highlight table.
func DefaultSupport() []byte {
	return slices.Clone(defaultSupport)
}

// LoadSupport reads a support block from path, or returns the embedded one
// when path is empty.
func LoadSupport(path string) ([]byte, error) {
	if path == "" {
		return DefaultSupport(), nil
	}
	//nolint:gosec // G304: path comes from the user's own configuration
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, appErrors.New(appErrors.CodeSupportAsset, "read support block "+path, err)
	}
	return data, nil
}

// Entry is one rendered row of the table.
type Entry struct {
	Name      Name
	Highlight Highlight
}

// Entries returns the table sorted by rendered group name.
func (t *Theme) Entries() []Entry {
	type keyed struct {
		key string
		e   Entry
	}
	rows := make([]keyed, 0, len(t.highlights))
	for n, h := range t.highlights {
		rows = append(rows, keyed{key: n.String(), e: Entry{Name: n, Highlight: h}})
	}
	slices.SortFunc(rows, func(a, b keyed) int { return strings.Compare(a.key, b.key) })

	out := make([]Entry, len(rows))
	for i, r := range rows {
		out[i] = r.e
	}
	return out
}

// Lua renders the complete module: the highlight table followed by support.
func (t *Theme) Lua(support []byte) []byte {
	var buf bytes.Buffer
	buf.WriteString("local highlights = {\n")
	for _, e := range t.Entries() {
		fmt.Fprintf(&buf, "  [%q] = {\n", e.Name.String())
		writeHighlight(&buf, e.Highlight)
		buf.WriteString("  },\n")
	}
	buf.WriteString("}\n\n")
	buf.Write(support)
	return buf.Bytes()
}

// WriteLua renders the module in memory and hands it to w in a single write,
// so a failing sink never sees a partial table.
func (t *Theme) WriteLua(w io.Writer, support []byte) error {
	if _, err := w.Write(t.Lua(support)); err != nil {
		return appErrors.New(appErrors.CodeWriteFailed, "write lua module", err)
	}
	return nil
}

const indent = "    "

func writeHighlight(buf *bytes.Buffer, h Highlight) {
	if target, ok := h.Target(); ok {
		fmt.Fprintf(buf, "%slink = %q,\n", indent, target.String())
		return
	}
	s, _ := h.Style()
	if c, ok := s.Foreground(); ok {
		fmt.Fprintf(buf, "%sfg = %q,\n", indent, c.Hex())
	}
	if c, ok := s.Background(); ok {
		fmt.Fprintf(buf, "%sbg = %q,\n", indent, c.Hex())
	}
	if c, ok := s.Special(); ok {
		fmt.Fprintf(buf, "%ssp = %q,\n", indent, c.Hex())
	}
	if v, ok := s.Bold(); ok {
		fmt.Fprintf(buf, "%sbold = %t,\n", indent, v)
	}
	if u, ok := s.UnderlineStyle(); ok {
		fmt.Fprintf(buf, "%s%s = true,\n", indent, u.Keyword())
	}
	if v, ok := s.Strikethrough(); ok {
		fmt.Fprintf(buf, "%sstrikethrough = %t,\n", indent, v)
	}
	if v, ok := s.Italic(); ok {
		fmt.Fprintf(buf, "%sitalic = %t,\n", indent, v)
	}
	fmt.Fprintf(buf, "%sreverse = %t,\n", indent, s.Reversed())
}
