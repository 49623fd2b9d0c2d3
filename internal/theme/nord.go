package theme

// Nord color palette
// https://www.nordtheme.com/docs/colors-and-palettes
var nord = struct {
	Nord0  string // Polar Night
	Nord1  string
	Nord2  string
	Nord3  string
	Nord4  string // Snow Storm
	Nord5  string
	Nord6  string
	Nord7  string // Frost
	Nord8  string
	Nord9  string
	Nord10 string
	Nord11 string // Aurora
	Nord12 string
	Nord13 string
	Nord14 string
	Nord15 string
}{
	Nord0:  "#2E3440",
	Nord1:  "#3B4252",
	Nord2:  "#434C5E",
	Nord3:  "#4C566A",
	Nord4:  "#D8DEE9",
	Nord5:  "#E5E9F0",
	Nord6:  "#ECEFF4",
	Nord7:  "#8FBCBB",
	Nord8:  "#88C0D0",
	Nord9:  "#81A1C1",
	Nord10: "#5E81AC",
	Nord11: "#BF616A",
	Nord12: "#D08770",
	Nord13: "#EBCB8B",
	Nord14: "#A3BE8C",
	Nord15: "#B48EAD",
}

func init() {
	registerPalette("nord",
		Roles{
			Primary:             nord.Nord8,
			Secondary:           nord.Nord15,
			Accent:              nord.Nord7,
			Error:               nord.Nord11,
			Warning:             nord.Nord13,
			Success:             nord.Nord14,
			Info:                nord.Nord9,
			Text:                nord.Nord6,
			TextMuted:           "#8B95A7",
			TextEmphasized:      nord.Nord4,
			Background:          nord.Nord0,
			BackgroundSecondary: nord.Nord1,
			BackgroundDarker:    nord.Nord2,
			BorderDim:           nord.Nord2,
		},
		Roles{
			Primary:             nord.Nord10,
			Secondary:           nord.Nord15,
			Accent:              nord.Nord7,
			Error:               nord.Nord11,
			Warning:             nord.Nord12,
			Success:             nord.Nord14,
			Info:                nord.Nord10,
			Text:                nord.Nord0,
			TextMuted:           nord.Nord3,
			TextEmphasized:      "#000000",
			Background:          nord.Nord6,
			BackgroundSecondary: nord.Nord5,
			BackgroundDarker:    nord.Nord4,
			BorderDim:           nord.Nord4,
		},
	)
}
