package theme

// Tokyo Night: Moon for dark, Day for light.
func init() {
	registerPalette("tokyonight",
		Roles{
			Primary:             "#82aaff",
			Secondary:           "#c099ff",
			Accent:              "#ff966c",
			Error:               "#ff757f",
			Warning:             "#ff966c",
			Success:             "#c3e88d",
			Info:                "#7dcfff",
			Text:                "#c8d3f5",
			TextMuted:           "#636da6",
			TextEmphasized:      "#ffc777",
			Background:          "#222436",
			BackgroundSecondary: "#2f334d",
			BackgroundDarker:    "#1e2030",
			BorderDim:           "#292e42",
		},
		Roles{
			Primary:             "#2e7de9",
			Secondary:           "#9854f1",
			Accent:              "#b15c00",
			Error:               "#f52a65",
			Warning:             "#b15c00",
			Success:             "#587539",
			Info:                "#0db9d7",
			Text:                "#3760bf",
			TextMuted:           "#848cb5",
			TextEmphasized:      "#8c6c3e",
			Background:          "#e1e2e7",
			BackgroundSecondary: "#c8c9ce",
			BackgroundDarker:    "#d5d6db",
			BorderDim:           "#c8c9ce",
		},
	)
}
