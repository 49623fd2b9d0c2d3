package theme

// Cobalt2 color palette
// https://github.com/wesbos/cobalt2-vscode
var cobalt2 = struct {
	Background      string
	BackgroundAlt   string
	BackgroundPanel string
	Foreground      string
	ForegroundMuted string
	Yellow          string
	Orange          string
	Mint            string
	Blue            string
	Pink            string
	Green           string
	Purple          string
	Red             string
}{
	Background:      "#193549",
	BackgroundAlt:   "#122738",
	BackgroundPanel: "#1f4662",
	Foreground:      "#ffffff",
	ForegroundMuted: "#adb7c9",
	Yellow:          "#ffc600",
	Orange:          "#ff9d00",
	Mint:            "#2affdf",
	Blue:            "#0088ff",
	Pink:            "#ff628c",
	Green:           "#9eff80",
	Purple:          "#9a5feb",
	Red:             "#ff0088",
}

func init() {
	registerPalette("cobalt2",
		Roles{
			Primary:             cobalt2.Blue,
			Secondary:           cobalt2.Purple,
			Accent:              cobalt2.Mint,
			Error:               cobalt2.Red,
			Warning:             cobalt2.Yellow,
			Success:             cobalt2.Green,
			Info:                cobalt2.Orange,
			Text:                cobalt2.Foreground,
			TextMuted:           cobalt2.ForegroundMuted,
			TextEmphasized:      cobalt2.Foreground,
			Background:          cobalt2.Background,
			BackgroundSecondary: cobalt2.BackgroundAlt,
			BackgroundDarker:    cobalt2.BackgroundPanel,
			BorderDim:           "#0e1e2e",
		},
		Roles{
			Primary:             "#0066cc",
			Secondary:           "#7c4dff",
			Accent:              "#00acc1",
			Error:               "#e91e63",
			Warning:             "#ff9800",
			Success:             "#4caf50",
			Info:                "#ff5722",
			Text:                "#193549",
			TextMuted:           "#5c6b7d",
			TextEmphasized:      "#000000",
			Background:          "#ffffff",
			BackgroundSecondary: "#f5f7fa",
			BackgroundDarker:    "#e8ecf1",
			BorderDim:           "#e8ecf1",
		},
	)
}
