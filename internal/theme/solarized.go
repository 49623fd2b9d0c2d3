package theme

// Solarized color palette
// https://ethanschoonover.com/solarized/
var solarized = struct {
	Base03  string
	Base02  string
	Base01  string
	Base00  string
	Base0   string
	Base1   string
	Base2   string
	Base3   string
	Yellow  string
	Orange  string
	Red     string
	Magenta string
	Violet  string
	Blue    string
	Cyan    string
	Green   string
}{
	Base03:  "#002b36",
	Base02:  "#073642",
	Base01:  "#586e75",
	Base00:  "#657b83",
	Base0:   "#839496",
	Base1:   "#93a1a1",
	Base2:   "#eee8d5",
	Base3:   "#fdf6e3",
	Yellow:  "#b58900",
	Orange:  "#cb4b16",
	Red:     "#dc322f",
	Magenta: "#d33682",
	Violet:  "#6c71c4",
	Blue:    "#268bd2",
	Cyan:    "#2aa198",
	Green:   "#859900",
}

// Solarized shares its accents between variants and swaps the base tones.
func init() {
	accents := func(r Roles) Roles {
		r.Primary = solarized.Blue
		r.Secondary = solarized.Violet
		r.Accent = solarized.Magenta
		r.Error = solarized.Red
		r.Warning = solarized.Yellow
		r.Success = solarized.Green
		r.Info = solarized.Cyan
		return r
	}
	registerPalette("solarized",
		accents(Roles{
			Text:                solarized.Base0,
			TextMuted:           solarized.Base01,
			TextEmphasized:      solarized.Base1,
			Background:          solarized.Base03,
			BackgroundSecondary: solarized.Base02,
			BackgroundDarker:    "#00212b",
			BorderDim:           solarized.Base02,
		}),
		accents(Roles{
			Text:                solarized.Base00,
			TextMuted:           solarized.Base1,
			TextEmphasized:      solarized.Base01,
			Background:          solarized.Base3,
			BackgroundSecondary: solarized.Base2,
			BackgroundDarker:    solarized.Base2,
			BorderDim:           solarized.Base2,
		}),
	)
}
