package theme

// Aura color palette
// https://github.com/daltonmenezes/aura-theme
var aura = struct {
	DarkBg      string
	DarkBgPanel string
	DarkBorder  string
	DarkFgMuted string
	DarkFg      string
	Purple      string
	Pink        string
	Blue        string
	Red         string
	Orange      string
	Cyan        string
	Green       string
}{
	DarkBg:      "#0f0f0f",
	DarkBgPanel: "#15141b",
	DarkBorder:  "#2d2d2d",
	DarkFgMuted: "#6d6d6d",
	DarkFg:      "#edecee",
	Purple:      "#a277ff",
	Pink:        "#f694ff",
	Blue:        "#82e2ff",
	Red:         "#ff6767",
	Orange:      "#ffca85",
	Cyan:        "#61ffca",
	Green:       "#9dff65",
}

func init() {
	registerPalette("aura",
		Roles{
			Primary:             aura.Purple,
			Secondary:           aura.Pink,
			Accent:              aura.Purple,
			Error:               aura.Red,
			Warning:             aura.Orange,
			Success:             aura.Cyan,
			Info:                aura.Purple,
			Text:                aura.DarkFg,
			TextMuted:           aura.DarkFgMuted,
			TextEmphasized:      aura.DarkFg,
			Background:          aura.DarkBg,
			BackgroundSecondary: aura.DarkBgPanel,
			BackgroundDarker:    aura.DarkBgPanel,
			BorderDim:           aura.DarkBorder,
		},
		Roles{
			Primary:             "#7c4dff",
			Secondary:           "#e040fb",
			Accent:              "#7c4dff",
			Error:               "#d32f2f",
			Warning:             "#ff9800",
			Success:             "#00bfa5",
			Info:                "#7c4dff",
			Text:                "#212121",
			TextMuted:           "#757575",
			TextEmphasized:      "#000000",
			Background:          "#ffffff",
			BackgroundSecondary: "#f5f5f5",
			BackgroundDarker:    "#eeeeee",
			BorderDim:           "#eeeeee",
		},
	)
}
