package theme

// Synthwave '84 color palette
// https://github.com/robb0wen/synthwave-vscode
var synthwave84 = struct {
	Background      string
	BackgroundAlt   string
	BackgroundPanel string
	Foreground      string
	ForegroundMuted string
	Pink            string
	Cyan            string
	Yellow          string
	Orange          string
	Purple          string
	Red             string
	Green           string
}{
	Background:      "#262335",
	BackgroundAlt:   "#1e1a29",
	BackgroundPanel: "#2a2139",
	Foreground:      "#ffffff",
	ForegroundMuted: "#848bbd",
	Pink:            "#ff7edb",
	Cyan:            "#36f9f6",
	Yellow:          "#fede5d",
	Orange:          "#ff8b39",
	Purple:          "#b084eb",
	Red:             "#fe4450",
	Green:           "#72f1b8",
}

func init() {
	registerPalette("synthwave84",
		Roles{
			Primary:             synthwave84.Cyan,
			Secondary:           synthwave84.Pink,
			Accent:              synthwave84.Purple,
			Error:               synthwave84.Red,
			Warning:             synthwave84.Yellow,
			Success:             synthwave84.Green,
			Info:                synthwave84.Orange,
			Text:                synthwave84.Foreground,
			TextMuted:           synthwave84.ForegroundMuted,
			TextEmphasized:      synthwave84.Foreground,
			Background:          synthwave84.Background,
			BackgroundSecondary: synthwave84.BackgroundAlt,
			BackgroundDarker:    synthwave84.BackgroundPanel,
			BorderDim:           "#241b2f",
		},
		Roles{
			Primary:             "#00bcd4",
			Secondary:           "#e91e63",
			Accent:              "#9c27b0",
			Error:               "#f44336",
			Warning:             "#ff9800",
			Success:             "#4caf50",
			Info:                "#ff5722",
			Text:                "#262335",
			TextMuted:           "#5c5c8a",
			TextEmphasized:      "#000000",
			Background:          "#fafafa",
			BackgroundSecondary: "#f5f5f5",
			BackgroundDarker:    "#eeeeee",
			BorderDim:           "#f0f0f0",
		},
	)
}
