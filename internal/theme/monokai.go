package theme

// Monokai Pro, dark and light.
func init() {
	registerPalette("monokai",
		Roles{
			Primary:             "#78dce8",
			Secondary:           "#ab9df2",
			Accent:              "#ffd866",
			Error:               "#ff6188",
			Warning:             "#fc9867",
			Success:             "#a9dc76",
			Info:                "#78dce8",
			Text:                "#fcfcfa",
			TextMuted:           "#727072",
			TextEmphasized:      "#ffd866",
			Background:          "#2d2a2e",
			BackgroundSecondary: "#403e41",
			BackgroundDarker:    "#221f22",
			BorderDim:           "#403e41",
		},
		Roles{
			Primary:             "#0095a8",
			Secondary:           "#6e5494",
			Accent:              "#c18401",
			Error:               "#d32f2f",
			Warning:             "#e65100",
			Success:             "#388e3c",
			Info:                "#0095a8",
			Text:                "#2d2a2e",
			TextMuted:           "#939293",
			TextEmphasized:      "#c18401",
			Background:          "#fafafa",
			BackgroundSecondary: "#e8e8e8",
			BackgroundDarker:    "#f0f0f0",
			BorderDim:           "#e8e8e8",
		},
	)
}
