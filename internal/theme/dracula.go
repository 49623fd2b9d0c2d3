package theme

// Dracula color palette
// https://draculatheme.com/contribute
var dracula = struct {
	Background  string
	CurrentLine string
	Foreground  string
	Comment     string
	Cyan        string
	Green       string
	Orange      string
	Pink        string
	Purple      string
	Red         string
	Yellow      string
}{
	Background:  "#282a36",
	CurrentLine: "#44475a",
	Foreground:  "#f8f8f2",
	Comment:     "#6272a4",
	Cyan:        "#8be9fd",
	Green:       "#50fa7b",
	Orange:      "#ffb86c",
	Pink:        "#ff79c6",
	Purple:      "#bd93f9",
	Red:         "#ff5555",
	Yellow:      "#f1fa8c",
}

// Dracula has no official light variant; the light roles are a Material-ish
// counterpart with the same hue assignments.
func init() {
	registerPalette("dracula",
		Roles{
			Primary:             dracula.Purple,
			Secondary:           dracula.Cyan,
			Accent:              dracula.Yellow,
			Error:               dracula.Red,
			Warning:             dracula.Orange,
			Success:             dracula.Green,
			Info:                dracula.Cyan,
			Text:                dracula.Foreground,
			TextMuted:           dracula.Comment,
			TextEmphasized:      dracula.Foreground,
			Background:          dracula.Background,
			BackgroundSecondary: dracula.CurrentLine,
			BackgroundDarker:    "#1e1f29",
			BorderDim:           dracula.CurrentLine,
		},
		Roles{
			Primary:             "#7e57c2",
			Secondary:           "#0097a7",
			Accent:              "#f9a825",
			Error:               "#d32f2f",
			Warning:             "#ef6c00",
			Success:             "#388e3c",
			Info:                "#1976d2",
			Text:                "#212121",
			TextMuted:           "#757575",
			TextEmphasized:      "#000000",
			Background:          "#ffffff",
			BackgroundSecondary: "#e0e0e0",
			BackgroundDarker:    "#bdbdbd",
			BorderDim:           "#e0e0e0",
		},
	)
}
