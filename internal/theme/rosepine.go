package theme

// Rosé Pine color palette
// https://rosepinetheme.com/
var rosepine = struct {
	Base         string
	Surface      string
	Overlay      string
	Muted        string
	Subtle       string
	Text         string
	Love         string
	Gold         string
	Rose         string
	Pine         string
	Foam         string
	Iris         string
	HighlightLow string
	HighlightMed string
	DawnBase     string
	DawnSurface  string
	DawnOverlay  string
	DawnMuted    string
	DawnText     string
	DawnLove     string
	DawnGold     string
	DawnRose     string
	DawnPine     string
	DawnFoam     string
	DawnIris     string
	DawnHighLow  string
}{
	Base:         "#191724",
	Surface:      "#1f1d2e",
	Overlay:      "#26233a",
	Muted:        "#6e6a86",
	Subtle:       "#908caa",
	Text:         "#e0def4",
	Love:         "#eb6f92",
	Gold:         "#f6c177",
	Rose:         "#ebbcba",
	Pine:         "#31748f",
	Foam:         "#9ccfd8",
	Iris:         "#c4a7e7",
	HighlightLow: "#21202e",
	HighlightMed: "#403d52",
	DawnBase:     "#faf4ed",
	DawnSurface:  "#fffaf3",
	DawnOverlay:  "#f2e9e1",
	DawnMuted:    "#9893a5",
	DawnText:     "#575279",
	DawnLove:     "#b4637a",
	DawnGold:     "#ea9d34",
	DawnRose:     "#d7827e",
	DawnPine:     "#286983",
	DawnFoam:     "#56949f",
	DawnIris:     "#907aa9",
	DawnHighLow:  "#f4ede8",
}

// Rosé Pine main for dark, Dawn for light.
func init() {
	registerPalette("rosepine",
		Roles{
			Primary:             rosepine.Foam,
			Secondary:           rosepine.Iris,
			Accent:              rosepine.Rose,
			Error:               rosepine.Love,
			Warning:             rosepine.Gold,
			Success:             rosepine.Pine,
			Info:                rosepine.Foam,
			Text:                rosepine.Text,
			TextMuted:           rosepine.Muted,
			TextEmphasized:      rosepine.Subtle,
			Background:          rosepine.Base,
			BackgroundSecondary: rosepine.Surface,
			BackgroundDarker:    rosepine.Overlay,
			BorderDim:           rosepine.HighlightMed,
		},
		Roles{
			Primary:             rosepine.DawnPine,
			Secondary:           rosepine.DawnIris,
			Accent:              rosepine.DawnRose,
			Error:               rosepine.DawnLove,
			Warning:             rosepine.DawnGold,
			Success:             rosepine.DawnPine,
			Info:                rosepine.DawnFoam,
			Text:                rosepine.DawnText,
			TextMuted:           rosepine.DawnMuted,
			TextEmphasized:      "#000000",
			Background:          rosepine.DawnBase,
			BackgroundSecondary: rosepine.DawnSurface,
			BackgroundDarker:    rosepine.DawnOverlay,
			BorderDim:           rosepine.DawnHighLow,
		},
	)
}
