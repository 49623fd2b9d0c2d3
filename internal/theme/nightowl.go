package theme

// Night Owl color palette
// https://github.com/sdras/night-owl-vscode-theme
var nightowl = struct {
	Background string
	Foreground string
	Blue       string
	Cyan       string
	Green      string
	Yellow     string
	Orange     string
	Red        string
	Pink       string
	Purple     string
	Muted      string
	Gray       string
	Panel      string
}{
	Background: "#011627",
	Foreground: "#d6deeb",
	Blue:       "#82AAFF",
	Cyan:       "#7fdbca",
	Green:      "#c5e478",
	Yellow:     "#ecc48d",
	Orange:     "#F78C6C",
	Red:        "#EF5350",
	Pink:       "#ff5874",
	Purple:     "#c792ea",
	Muted:      "#5f7e97",
	Gray:       "#637777",
	Panel:      "#0b253a",
}

func init() {
	registerPalette("nightowl",
		Roles{
			Primary:             nightowl.Blue,
			Secondary:           nightowl.Cyan,
			Accent:              nightowl.Purple,
			Error:               nightowl.Red,
			Warning:             nightowl.Yellow,
			Success:             nightowl.Green,
			Info:                nightowl.Blue,
			Text:                nightowl.Foreground,
			TextMuted:           nightowl.Muted,
			TextEmphasized:      nightowl.Foreground,
			Background:          nightowl.Background,
			BackgroundSecondary: nightowl.Panel,
			BackgroundDarker:    nightowl.Panel,
			BorderDim:           nightowl.Muted,
		},
		Roles{
			Primary:             nightowl.Blue,
			Secondary:           nightowl.Cyan,
			Accent:              nightowl.Purple,
			Error:               nightowl.Red,
			Warning:             nightowl.Yellow,
			Success:             nightowl.Green,
			Info:                nightowl.Blue,
			Text:                nightowl.Foreground,
			TextMuted:           nightowl.Muted,
			TextEmphasized:      "#ffffff",
			Background:          nightowl.Background,
			BackgroundSecondary: nightowl.Panel,
			BackgroundDarker:    nightowl.Panel,
			BorderDim:           nightowl.Muted,
		},
	)
}
