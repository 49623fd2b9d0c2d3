package theme

// Kanagawa color palette
// https://github.com/rebelot/kanagawa.nvim
var kanagawa = struct {
	SumiInk0    string
	SumiInk1    string
	SumiInk2    string
	SumiInk3    string
	FujiWhite   string
	FujiGray    string
	OniViolet   string
	CrystalBlue string
	CarpYellow  string
	SakuraPink  string
	WaveAqua    string
	RoninYellow string
	DragonRed   string
	LotusGreen  string
	WaveBlue    string
	LightBg     string
	LightPaper  string
	LightText   string
	LightGray   string
}{
	SumiInk0:    "#1F1F28",
	SumiInk1:    "#2A2A37",
	SumiInk2:    "#363646",
	SumiInk3:    "#54546D",
	FujiWhite:   "#DCD7BA",
	FujiGray:    "#727169",
	OniViolet:   "#957FB8",
	CrystalBlue: "#7E9CD8",
	CarpYellow:  "#C38D9D",
	SakuraPink:  "#D27E99",
	WaveAqua:    "#76946A",
	RoninYellow: "#D7A657",
	DragonRed:   "#E82424",
	LotusGreen:  "#98BB6C",
	WaveBlue:    "#2D4F67",
	LightBg:     "#F2E9DE",
	LightPaper:  "#EAE4D7",
	LightText:   "#54433A",
	LightGray:   "#9E9389",
}

func init() {
	registerPalette("kanagawa",
		Roles{
			Primary:             kanagawa.CrystalBlue,
			Secondary:           kanagawa.OniViolet,
			Accent:              kanagawa.SakuraPink,
			Error:               kanagawa.DragonRed,
			Warning:             kanagawa.RoninYellow,
			Success:             kanagawa.LotusGreen,
			Info:                kanagawa.WaveAqua,
			Text:                kanagawa.FujiWhite,
			TextMuted:           kanagawa.FujiGray,
			TextEmphasized:      kanagawa.FujiWhite,
			Background:          kanagawa.SumiInk0,
			BackgroundSecondary: kanagawa.SumiInk1,
			BackgroundDarker:    kanagawa.SumiInk2,
			BorderDim:           kanagawa.SumiInk2,
		},
		Roles{
			Primary:             kanagawa.WaveBlue,
			Secondary:           kanagawa.OniViolet,
			Accent:              kanagawa.SakuraPink,
			Error:               kanagawa.DragonRed,
			Warning:             kanagawa.RoninYellow,
			Success:             kanagawa.LotusGreen,
			Info:                kanagawa.WaveAqua,
			Text:                kanagawa.LightText,
			TextMuted:           kanagawa.LightGray,
			TextEmphasized:      "#000000",
			Background:          kanagawa.LightBg,
			BackgroundSecondary: kanagawa.LightPaper,
			BackgroundDarker:    "#E3DCD2",
			BorderDim:           "#DCD4C9",
		},
	)
}
