package theme

// Everforest color palette
// https://github.com/sainnhe/everforest
var everforest = struct {
	DarkBg      string
	DarkBgPanel string
	DarkBgAlt   string
	DarkFg      string
	DarkFgMuted string
	DarkBorder  string
	DarkRed     string
	DarkOrange  string
	DarkGreen   string
	DarkCyan    string
	DarkYellow  string
	LightBg     string
	LightBgAlt  string
	LightFg     string
	LightFgMuted string
	LightBorder string
	LightRed    string
	LightOrange string
	LightGreen  string
	LightCyan   string
	LightYellow string
}{
	DarkBg:       "#2d353b",
	DarkBgPanel:  "#333c43",
	DarkBgAlt:    "#343f44",
	DarkFg:       "#d3c6aa",
	DarkFgMuted:  "#7a8478",
	DarkBorder:   "#859289",
	DarkRed:      "#e67e80",
	DarkOrange:   "#e69875",
	DarkGreen:    "#a7c080",
	DarkCyan:     "#83c092",
	DarkYellow:   "#dbbc7f",
	LightBg:      "#fdf6e3",
	LightBgAlt:   "#efebd4",
	LightFg:      "#5c6a72",
	LightFgMuted: "#a6b0a0",
	LightBorder:  "#939f91",
	LightRed:     "#f85552",
	LightOrange:  "#f57d26",
	LightGreen:   "#8da101",
	LightCyan:    "#35a77c",
	LightYellow:  "#dfa000",
}

func init() {
	registerPalette("everforest",
		Roles{
			Primary:             everforest.DarkGreen,
			Secondary:           "#7fbbb3",
			Accent:              "#d699b6",
			Error:               everforest.DarkRed,
			Warning:             everforest.DarkOrange,
			Success:             everforest.DarkGreen,
			Info:                everforest.DarkCyan,
			Text:                everforest.DarkFg,
			TextMuted:           everforest.DarkFgMuted,
			TextEmphasized:      everforest.DarkFg,
			Background:          everforest.DarkBg,
			BackgroundSecondary: everforest.DarkBgPanel,
			BackgroundDarker:    everforest.DarkBgAlt,
			BorderDim:           everforest.DarkFgMuted,
		},
		Roles{
			Primary:             everforest.LightGreen,
			Secondary:           "#3a94c5",
			Accent:              "#df69ba",
			Error:               everforest.LightRed,
			Warning:             everforest.LightOrange,
			Success:             everforest.LightGreen,
			Info:                everforest.LightCyan,
			Text:                everforest.LightFg,
			TextMuted:           everforest.LightFgMuted,
			TextEmphasized:      "#000000",
			Background:          everforest.LightBg,
			BackgroundSecondary: everforest.LightBgAlt,
			BackgroundDarker:    "#f4f0d9",
			BorderDim:           everforest.LightFgMuted,
		},
	)
}
