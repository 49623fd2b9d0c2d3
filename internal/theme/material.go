package theme

// Material color palette
// https://material.io/design/color
var material = struct {
	DarkBg       string
	DarkBgAlt    string
	DarkBgPanel  string
	DarkFg       string
	DarkFgMuted  string
	DarkRed      string
	DarkOrange   string
	DarkYellow   string
	DarkGreen    string
	DarkCyan     string
	DarkBlue     string
	DarkPurple   string
	LightBg      string
	LightBgAlt   string
	LightBgPanel string
	LightFg      string
	LightFgMuted string
	LightRed     string
	LightOrange  string
	LightYellow  string
	LightGreen   string
	LightCyan    string
	LightBlue    string
	LightPurple  string
}{
	DarkBg:       "#263238",
	DarkBgAlt:    "#1e272c",
	DarkBgPanel:  "#37474f",
	DarkFg:       "#eeffff",
	DarkFgMuted:  "#546e7a",
	DarkRed:      "#f07178",
	DarkOrange:   "#ffcb6b",
	DarkYellow:   "#ffcb6b",
	DarkGreen:    "#c3e88d",
	DarkCyan:     "#89ddff",
	DarkBlue:     "#82aaff",
	DarkPurple:   "#c792ea",
	LightBg:      "#fafafa",
	LightBgAlt:   "#f5f5f5",
	LightBgPanel: "#e7e7e8",
	LightFg:      "#263238",
	LightFgMuted: "#90a4ae",
	LightRed:     "#e53935",
	LightOrange:  "#f4511e",
	LightYellow:  "#ffb300",
	LightGreen:   "#91b859",
	LightCyan:    "#39adb5",
	LightBlue:    "#6182b8",
	LightPurple:  "#7c4dff",
}

func init() {
	registerPalette("material",
		Roles{
			Primary:             material.DarkBlue,
			Secondary:           material.DarkPurple,
			Accent:              material.DarkCyan,
			Error:               material.DarkRed,
			Warning:             material.DarkYellow,
			Success:             material.DarkGreen,
			Info:                material.DarkOrange,
			Text:                material.DarkFg,
			TextMuted:           material.DarkFgMuted,
			TextEmphasized:      material.DarkFg,
			Background:          material.DarkBg,
			BackgroundSecondary: material.DarkBgPanel,
			BackgroundDarker:    material.DarkBgAlt,
			BorderDim:           "#1e272c",
		},
		Roles{
			Primary:             material.LightBlue,
			Secondary:           material.LightPurple,
			Accent:              material.LightCyan,
			Error:               material.LightRed,
			Warning:             material.LightYellow,
			Success:             material.LightGreen,
			Info:                material.LightOrange,
			Text:                material.LightFg,
			TextMuted:           material.LightFgMuted,
			TextEmphasized:      "#000000",
			Background:          material.LightBg,
			BackgroundSecondary: material.LightBgAlt,
			BackgroundDarker:    material.LightBgPanel,
			BorderDim:           "#eeeeee",
		},
	)
}
