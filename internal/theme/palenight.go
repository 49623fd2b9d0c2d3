package theme

// Palenight color palette
// https://github.com/whizkydee/vscode-palenight-theme
var palenight = struct {
	Background      string
	BackgroundAlt   string
	BackgroundPanel string
	Foreground      string
	Comment         string
	Red             string
	Orange          string
	Yellow          string
	Green           string
	Cyan            string
	Blue            string
	Purple          string
}{
	Background:      "#292d3e",
	BackgroundAlt:   "#1e2132",
	BackgroundPanel: "#32364a",
	Foreground:      "#a6accd",
	Comment:         "#676e95",
	Red:             "#f07178",
	Orange:          "#f78c6c",
	Yellow:          "#ffcb6b",
	Green:           "#c3e88d",
	Cyan:            "#89ddff",
	Blue:            "#82aaff",
	Purple:          "#c792ea",
}

func init() {
	registerPalette("palenight",
		Roles{
			Primary:             palenight.Blue,
			Secondary:           palenight.Purple,
			Accent:              palenight.Cyan,
			Error:               palenight.Red,
			Warning:             palenight.Yellow,
			Success:             palenight.Green,
			Info:                palenight.Orange,
			Text:                palenight.Foreground,
			TextMuted:           palenight.Comment,
			TextEmphasized:      "#bfc7d5",
			Background:          palenight.Background,
			BackgroundSecondary: palenight.BackgroundAlt,
			BackgroundDarker:    palenight.BackgroundPanel,
			BorderDim:           palenight.BackgroundAlt,
		},
		Roles{
			Primary:             "#4976eb",
			Secondary:           "#a854f2",
			Accent:              "#00acc1",
			Error:               "#e53935",
			Warning:             "#ffb300",
			Success:             "#91b859",
			Info:                "#f4511e",
			Text:                "#292d3e",
			TextMuted:           "#8796b0",
			TextEmphasized:      "#000000",
			Background:          "#fafafa",
			BackgroundSecondary: "#f5f5f5",
			BackgroundDarker:    "#e7e7e8",
			BorderDim:           "#eeeeee",
		},
	)
}
