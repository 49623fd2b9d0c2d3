package theme

// Gruvbox, dark hard/medium and light medium.
func init() {
	registerPalette("gruvbox",
		Roles{
			Primary:             "#83a598",
			Secondary:           "#d3869b",
			Accent:              "#fabd2f",
			Error:               "#fb4934",
			Warning:             "#fe8019",
			Success:             "#b8bb26",
			Info:                "#83a598",
			Text:                "#ebdbb2",
			TextMuted:           "#a89984",
			TextEmphasized:      "#fabd2f",
			Background:          "#282828",
			BackgroundSecondary: "#504945",
			BackgroundDarker:    "#1d2021",
			BorderDim:           "#3c3836",
		},
		Roles{
			Primary:             "#076678",
			Secondary:           "#8f3f71",
			Accent:              "#b57614",
			Error:               "#9d0006",
			Warning:             "#af3a03",
			Success:             "#79740e",
			Info:                "#076678",
			Text:                "#3c3836",
			TextMuted:           "#7c6f64",
			TextEmphasized:      "#b57614",
			Background:          "#fbf1c7",
			BackgroundSecondary: "#ebdbb2",
			BackgroundDarker:    "#d5c4a1",
			BorderDim:           "#d5c4a1",
		},
	)
}
