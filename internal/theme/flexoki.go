package theme

// Flexoki color palette
// https://stephango.com/flexoki
var flexoki = struct {
	Black     string
	Base950   string
	Base900   string
	Base800   string
	Base700   string
	Base600   string
	Base300   string
	Base200   string
	Paper     string
	Red400    string
	Red600    string
	Orange400 string
	Orange600 string
	Yellow400 string
	Yellow600 string
	Green400  string
	Green600  string
	Cyan400   string
	Cyan600   string
	Blue400   string
	Blue600   string
	Purple400 string
	Purple600 string
}{
	Black:     "#100F0F",
	Base950:   "#1C1B1A",
	Base900:   "#282726",
	Base800:   "#403E3C",
	Base700:   "#575653",
	Base600:   "#6F6E69",
	Base300:   "#B7B5AC",
	Base200:   "#CECDC3",
	Paper:     "#FFFCF0",
	Red400:    "#D14D41",
	Red600:    "#AF3029",
	Orange400: "#DA702C",
	Orange600: "#BC5215",
	Yellow400: "#D0A215",
	Yellow600: "#AD8301",
	Green400:  "#879A39",
	Green600:  "#66800B",
	Cyan400:   "#3AA99F",
	Cyan600:   "#24837B",
	Blue400:   "#4385BE",
	Blue600:   "#205EA6",
	Purple400: "#8B7EC8",
	Purple600: "#5E409D",
}

func init() {
	registerPalette("flexoki",
		Roles{
			Primary:             flexoki.Orange400,
			Secondary:           flexoki.Blue400,
			Accent:              flexoki.Purple400,
			Error:               flexoki.Red400,
			Warning:             flexoki.Orange400,
			Success:             flexoki.Green400,
			Info:                flexoki.Cyan400,
			Text:                flexoki.Base200,
			TextMuted:           flexoki.Base600,
			TextEmphasized:      flexoki.Base200,
			Background:          flexoki.Black,
			BackgroundSecondary: flexoki.Base900,
			BackgroundDarker:    flexoki.Base900,
			BorderDim:           flexoki.Base800,
		},
		Roles{
			Primary:             flexoki.Blue600,
			Secondary:           flexoki.Purple600,
			Accent:              flexoki.Orange600,
			Error:               flexoki.Red600,
			Warning:             flexoki.Orange600,
			Success:             flexoki.Green600,
			Info:                flexoki.Cyan600,
			Text:                flexoki.Black,
			TextMuted:           flexoki.Base600,
			TextEmphasized:      flexoki.Black,
			Background:          flexoki.Paper,
			BackgroundSecondary: "#F2F0E5",
			BackgroundDarker:    "#E6E4D9",
			BorderDim:           flexoki.Base200,
		},
	)
}
