package theme

// Zenburn color palette
// https://github.com/jnurmine/Zenburn
var zenburn = struct {
	Background      string
	BackgroundAlt   string
	BackgroundPanel string
	Foreground      string
	ForegroundMuted string
	Red             string
	RedBright       string
	Green           string
	GreenBright     string
	Yellow          string
	YellowDim       string
	Blue            string
	BlueDim         string
	Magenta         string
	Cyan            string
	Orange          string
}{
	Background:      "#3f3f3f",
	BackgroundAlt:   "#4f4f4f",
	BackgroundPanel: "#5f5f5f",
	Foreground:      "#dcdccc",
	ForegroundMuted: "#9f9f9f",
	Red:             "#cc9393",
	RedBright:       "#dca3a3",
	Green:           "#7f9f7f",
	GreenBright:     "#8fb28f",
	Yellow:          "#f0dfaf",
	YellowDim:       "#e0cf9f",
	Blue:            "#8cd0d3",
	BlueDim:         "#7cb8bb",
	Magenta:         "#dc8cc3",
	Cyan:            "#93e0e3",
	Orange:          "#dfaf8f",
}

func init() {
	registerPalette("zenburn",
		Roles{
			Primary:             zenburn.Blue,
			Secondary:           zenburn.Magenta,
			Accent:              zenburn.Cyan,
			Error:               zenburn.Red,
			Warning:             zenburn.Yellow,
			Success:             zenburn.Green,
			Info:                zenburn.Orange,
			Text:                zenburn.Foreground,
			TextMuted:           zenburn.ForegroundMuted,
			TextEmphasized:      zenburn.Foreground,
			Background:          zenburn.Background,
			BackgroundSecondary: zenburn.BackgroundAlt,
			BackgroundDarker:    zenburn.BackgroundPanel,
			BorderDim:           "#4f4f4f",
		},
		Roles{
			Primary:             "#5f7f8f",
			Secondary:           "#8f5f8f",
			Accent:              "#5f8f8f",
			Error:               "#8f5f5f",
			Warning:             "#8f8f5f",
			Success:             "#5f8f5f",
			Info:                "#8f7f5f",
			Text:                "#3f3f3f",
			TextMuted:           "#6f6f6f",
			TextEmphasized:      "#000000",
			Background:          "#ffffef",
			BackgroundSecondary: "#f5f5e5",
			BackgroundDarker:    "#ebebdb",
			BorderDim:           "#e0e0d0",
		},
	)
}
