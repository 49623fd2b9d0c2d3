package theme

// Matrix color palette - inspired by The Matrix films
var matrix = struct {
	MatrixInk0   string
	MatrixInk1   string
	MatrixInk2   string
	MatrixInk3   string
	RainGreen    string
	RainGreenDim string
	RainGreenHi  string
	RainCyan     string
	RainTeal     string
	RainPurple   string
	RainOrange   string
	AlertRed     string
	AlertYellow  string
	AlertBlue    string
	RainGray     string
	LightBg      string
	LightPaper   string
	LightInk1    string
	LightText    string
	LightGray    string
}{
	MatrixInk0:   "#0a0e0a",
	MatrixInk1:   "#0e130d",
	MatrixInk2:   "#141c12",
	MatrixInk3:   "#1e2a1b",
	RainGreen:    "#2eff6a",
	RainGreenDim: "#1cc24b",
	RainGreenHi:  "#62ff94",
	RainCyan:     "#00efff",
	RainTeal:     "#24f6d9",
	RainPurple:   "#c770ff",
	RainOrange:   "#ffa83d",
	AlertRed:     "#ff4b4b",
	AlertYellow:  "#e6ff57",
	AlertBlue:    "#30b3ff",
	RainGray:     "#8ca391",
	LightBg:      "#eef3ea",
	LightPaper:   "#e4ebe1",
	LightInk1:    "#dae1d7",
	LightText:    "#203022",
	LightGray:    "#748476",
}

func init() {
	registerPalette("matrix",
		Roles{
			Primary:             matrix.RainGreen,
			Secondary:           matrix.RainCyan,
			Accent:              matrix.RainPurple,
			Error:               matrix.AlertRed,
			Warning:             matrix.AlertYellow,
			Success:             matrix.RainGreenHi,
			Info:                matrix.AlertBlue,
			Text:                matrix.RainGreenHi,
			TextMuted:           matrix.RainGray,
			TextEmphasized:      matrix.RainGreenHi,
			Background:          matrix.MatrixInk0,
			BackgroundSecondary: matrix.MatrixInk1,
			BackgroundDarker:    matrix.MatrixInk2,
			BorderDim:           matrix.MatrixInk2,
		},
		Roles{
			Primary:             matrix.RainGreenDim,
			Secondary:           matrix.RainTeal,
			Accent:              matrix.RainPurple,
			Error:               matrix.AlertRed,
			Warning:             matrix.AlertYellow,
			Success:             matrix.RainGreenDim,
			Info:                matrix.AlertBlue,
			Text:                matrix.LightText,
			TextMuted:           matrix.LightGray,
			TextEmphasized:      "#000000",
			Background:          matrix.LightBg,
			BackgroundSecondary: matrix.LightPaper,
			BackgroundDarker:    matrix.LightInk1,
			BorderDim:           matrix.LightInk1,
		},
	)
}
