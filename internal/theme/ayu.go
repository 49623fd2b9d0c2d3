package theme

// Ayu color palette
// https://github.com/ayu-theme/ayu-colors
var ayu = struct {
	DarkBg      string
	DarkBgAlt   string
	DarkPanel   string
	DarkFg      string
	DarkFgMuted string
	DarkGutter  string
	DarkEntity  string
	DarkAccent  string
	DarkError   string
	DarkAdded   string
	DarkSpecial string
	DarkTag     string
}{
	DarkBg:      "#0B0E14",
	DarkBgAlt:   "#0D1017",
	DarkPanel:   "#0F131A",
	DarkFg:      "#BFBDB6",
	DarkFgMuted: "#565B66",
	DarkGutter:  "#6C7380",
	DarkEntity:  "#59C2FF",
	DarkAccent:  "#E6B450",
	DarkError:   "#D95757",
	DarkAdded:   "#7FD962",
	DarkSpecial: "#E6B673",
	DarkTag:     "#39BAE6",
}

func init() {
	registerPalette("ayu",
		Roles{
			Primary:             ayu.DarkEntity,
			Secondary:           "#D2A6FF",
			Accent:              ayu.DarkAccent,
			Error:               ayu.DarkError,
			Warning:             ayu.DarkSpecial,
			Success:             ayu.DarkAdded,
			Info:                ayu.DarkTag,
			Text:                ayu.DarkFg,
			TextMuted:           ayu.DarkFgMuted,
			TextEmphasized:      ayu.DarkFg,
			Background:          ayu.DarkBg,
			BackgroundSecondary: "#1a1f28",
			BackgroundDarker:    ayu.DarkBgAlt,
			BorderDim:           "#11151C",
		},
		Roles{
			Primary:             "#0d6efd",
			Secondary:           "#6f42c1",
			Accent:              "#fd7e14",
			Error:               "#dc3545",
			Warning:             "#fd7e14",
			Success:             "#198754",
			Info:                "#0dcaf0",
			Text:                "#212529",
			TextMuted:           "#6c757d",
			TextEmphasized:      "#000000",
			Background:          "#ffffff",
			BackgroundSecondary: "#f8f9fa",
			BackgroundDarker:    "#e9ecef",
			BorderDim:           "#f8f9fa",
		},
	)
}
