package neovim

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	appErrors "syntinct/internal/errors"
)

// Export formats.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Record is the flattened, serializable form of an Entry. Unset attributes
// are omitted; Reverse is present on every value and absent on links.
type Record struct {
	Name          string `json:"name" yaml:"name"`
	Link          string `json:"link,omitempty" yaml:"link,omitempty"`
	Fg            string `json:"fg,omitempty" yaml:"fg,omitempty"`
	Bg            string `json:"bg,omitempty" yaml:"bg,omitempty"`
	Sp            string `json:"sp,omitempty" yaml:"sp,omitempty"`
	Bold          *bool  `json:"bold,omitempty" yaml:"bold,omitempty"`
	Underline     string `json:"underline,omitempty" yaml:"underline,omitempty"`
	Strikethrough *bool  `json:"strikethrough,omitempty" yaml:"strikethrough,omitempty"`
	Italic        *bool  `json:"italic,omitempty" yaml:"italic,omitempty"`
	Reverse       *bool  `json:"reverse,omitempty" yaml:"reverse,omitempty"`
}

// Records returns the table in serializer order.
func (t *Theme) Records() []Record {
	entries := t.Entries()
	out := make([]Record, 0, len(entries))
	for _, e := range entries {
		out = append(out, recordOf(e))
	}
	return out
}

func recordOf(e Entry) Record {
	r := Record{Name: e.Name.String()}
	if target, ok := e.Highlight.Target(); ok {
		r.Link = target.String()
		return r
	}
	s, _ := e.Highlight.Style()
	if c, ok := s.Foreground(); ok {
		r.Fg = c.Hex()
	}
	if c, ok := s.Background(); ok {
		r.Bg = c.Hex()
	}
	if c, ok := s.Special(); ok {
		r.Sp = c.Hex()
	}
	if v, ok := s.Bold(); ok {
		r.Bold = &v
	}
	if u, ok := s.UnderlineStyle(); ok {
		r.Underline = u.Keyword()
	}
	if v, ok := s.Strikethrough(); ok {
		r.Strikethrough = &v
	}
	if v, ok := s.Italic(); ok {
		r.Italic = &v
	}
	reverse := s.Reversed()
	r.Reverse = &reverse
	return r
}

// WriteRecords encodes records to w as JSON or YAML.
func WriteRecords(w io.Writer, records []Record, format string) error {
	var err error
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		err = enc.Encode(records)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		err = enc.Encode(records)
		if err == nil {
			err = enc.Close()
		}
	default:
		return appErrors.New(appErrors.CodeUnknownFormat,
			fmt.Sprintf("unknown export format %q (want %s or %s)", format, FormatJSON, FormatYAML), nil)
	}
	if err != nil {
		return appErrors.New(appErrors.CodeWriteFailed, "encode "+format, err)
	}
	return nil
}
