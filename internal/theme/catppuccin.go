package theme

// Catppuccin: Mocha for dark, Latte for light.
func init() {
	registerPalette("catppuccin",
		Roles{
			Primary:             "#89b4fa",
			Secondary:           "#cba6f7",
			Accent:              "#fab387",
			Error:               "#f38ba8",
			Warning:             "#fab387",
			Success:             "#a6e3a1",
			Info:                "#89b4fa",
			Text:                "#cdd6f4",
			TextMuted:           "#6c7086",
			TextEmphasized:      "#f5e0dc",
			Background:          "#1e1e2e",
			BackgroundSecondary: "#313244",
			BackgroundDarker:    "#181825",
			BorderDim:           "#45475a",
		},
		Roles{
			Primary:             "#1e66f5",
			Secondary:           "#8839ef",
			Accent:              "#fe640b",
			Error:               "#d20f39",
			Warning:             "#fe640b",
			Success:             "#40a02b",
			Info:                "#1e66f5",
			Text:                "#4c4f69",
			TextMuted:           "#9ca0b0",
			TextEmphasized:      "#dc8a78",
			Background:          "#eff1f5",
			BackgroundSecondary: "#e6e9ef",
			BackgroundDarker:    "#dce0e8",
			BorderDim:           "#ccd0da",
		},
	)
}
