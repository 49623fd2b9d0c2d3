package theme

// Vesper color palette
// https://github.com/raunofreiberg/vesper
var vesper = struct {
	Background string
	Foreground string
	Comment    string
	Keyword    string
	Function   string
	String     string
	Number     string
	Error      string
	Warning    string
	Success    string
	Muted      string
}{
	Background: "#101010",
	Foreground: "#FFF",
	Comment:    "#8b8b8b",
	Keyword:    "#A0A0A0",
	Function:   "#FFC799",
	String:     "#99FFE4",
	Number:     "#FFC799",
	Error:      "#FF8080",
	Warning:    "#FFC799",
	Success:    "#99FFE4",
	Muted:      "#A0A0A0",
}

func init() {
	registerPalette("vesper",
		Roles{
			Primary:             vesper.Function,
			Secondary:           vesper.String,
			Accent:              vesper.Function,
			Error:               vesper.Error,
			Warning:             vesper.Warning,
			Success:             vesper.Success,
			Info:                vesper.Function,
			Text:                vesper.Foreground,
			TextMuted:           vesper.Muted,
			TextEmphasized:      vesper.Foreground,
			Background:          vesper.Background,
			BackgroundSecondary: "#1a1a1a",
			BackgroundDarker:    "#0a0a0a",
			BorderDim:           "#1C1C1C",
		},
		Roles{
			Primary:             vesper.Function,
			Secondary:           vesper.String,
			Accent:              vesper.Function,
			Error:               vesper.Error,
			Warning:             vesper.Warning,
			Success:             vesper.Success,
			Info:                vesper.Function,
			Text:                vesper.Background,
			TextMuted:           vesper.Muted,
			TextEmphasized:      "#000000",
			Background:          "#FFF",
			BackgroundSecondary: "#F0F0F0",
			BackgroundDarker:    "#E0E0E0",
			BorderDim:           "#E8E8E8",
		},
	)
}
