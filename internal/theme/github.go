package theme

// GitHub color palette
// https://primer.style/primitives/colors
var github = struct {
	DarkBg      string
	DarkBgAlt   string
	DarkBgPanel string
	DarkFg      string
	DarkFgMuted string
	DarkBlue    string
	DarkGreen   string
	DarkRed     string
	DarkOrange  string
	DarkPurple  string
	DarkYellow  string
	DarkCyan    string
	LightBg     string
	LightBgAlt  string
	LightBgPanel string
	LightFg     string
	LightFgMuted string
	LightBlue   string
	LightGreen  string
	LightRed    string
	LightOrange string
	LightPurple string
	LightYellow string
	LightCyan   string
}{
	DarkBg:       "#0d1117",
	DarkBgAlt:    "#010409",
	DarkBgPanel:  "#161b22",
	DarkFg:       "#c9d1d9",
	DarkFgMuted:  "#8b949e",
	DarkBlue:     "#58a6ff",
	DarkGreen:    "#3fb950",
	DarkRed:      "#f85149",
	DarkOrange:   "#d29922",
	DarkPurple:   "#bc8cff",
	DarkYellow:   "#e3b341",
	DarkCyan:     "#39c5cf",
	LightBg:      "#ffffff",
	LightBgAlt:   "#f6f8fa",
	LightBgPanel: "#f0f3f6",
	LightFg:      "#24292f",
	LightFgMuted: "#57606a",
	LightBlue:    "#0969da",
	LightGreen:   "#1a7f37",
	LightRed:     "#cf222e",
	LightOrange:  "#bc4c00",
	LightPurple:  "#8250df",
	LightYellow:  "#9a6700",
	LightCyan:    "#1b7c83",
}

func init() {
	registerPalette("github",
		Roles{
			Primary:             github.DarkBlue,
			Secondary:           github.DarkPurple,
			Accent:              github.DarkCyan,
			Error:               github.DarkRed,
			Warning:             github.DarkYellow,
			Success:             github.DarkGreen,
			Info:                github.DarkOrange,
			Text:                github.DarkFg,
			TextMuted:           github.DarkFgMuted,
			TextEmphasized:      github.DarkFg,
			Background:          github.DarkBg,
			BackgroundSecondary: "#21262d",
			BackgroundDarker:    github.DarkBgAlt,
			BorderDim:           "#21262d",
		},
		Roles{
			Primary:             github.LightBlue,
			Secondary:           github.LightPurple,
			Accent:              github.LightCyan,
			Error:               github.LightRed,
			Warning:             github.LightYellow,
			Success:             github.LightGreen,
			Info:                github.LightOrange,
			Text:                github.LightFg,
			TextMuted:           github.LightFgMuted,
			TextEmphasized:      "#000000",
			Background:          github.LightBg,
			BackgroundSecondary: github.LightBgAlt,
			BackgroundDarker:    github.LightBgPanel,
			BorderDim:           "#d8dee4",
		},
	)
}
