package theme

// One Dark, dark and light.
func init() {
	registerPalette("onedark",
		Roles{
			Primary:             "#61afef",
			Secondary:           "#c678dd",
			Accent:              "#e5c07b",
			Error:               "#e06c75",
			Warning:             "#d19a66",
			Success:             "#98c379",
			Info:                "#56b6c2",
			Text:                "#abb2bf",
			TextMuted:           "#5c6370",
			TextEmphasized:      "#e5c07b",
			Background:          "#282c34",
			BackgroundSecondary: "#3e4451",
			BackgroundDarker:    "#21252b",
			BorderDim:           "#2c313c",
		},
		Roles{
			Primary:             "#4078f2",
			Secondary:           "#a626a4",
			Accent:              "#c18401",
			Error:               "#e45649",
			Warning:             "#da8548",
			Success:             "#50a14f",
			Info:                "#0184bc",
			Text:                "#383a42",
			TextMuted:           "#a0a1a7",
			TextEmphasized:      "#c18401",
			Background:          "#fafafa",
			BackgroundSecondary: "#e5e5e6",
			BackgroundDarker:    "#f0f0f0",
			BorderDim:           "#e5e5e6",
		},
	)
}
