package renderer

import "image/color"

// Theme selects a canvas color scheme.
type Theme int

const (
	ThemeLight Theme = iota
	ThemeDark
)

// CanvasColors is the palette used to paint the schematic canvas.
type CanvasColors struct {
	Background color.NRGBA
	Grid       color.NRGBA
	Origin     color.NRGBA

	// Element strokes, normal and selected.
	Element   color.NRGBA
	Selected  color.NRGBA
	LabelText color.NRGBA

	// Rubber band rectangle.
	Band     color.NRGBA
	BandFill color.NRGBA
}

// GetCanvasColors returns the palette for theme.
func GetCanvasColors(theme Theme) *CanvasColors {
	switch theme {
	case ThemeDark:
		return darkColors()
	default:
		return lightColors()
	}
}

func lightColors() *CanvasColors {
	return &CanvasColors{
		Background: color.NRGBA{R: 255, G: 255, B: 255, A: 255},
		Grid:       color.NRGBA{R: 211, G: 211, B: 211, A: 255}, // lightgray
		Origin:     color.NRGBA{R: 255, G: 0, B: 0, A: 255},
		Element:    color.NRGBA{R: 0, G: 0, B: 0, A: 255},
		Selected:   color.NRGBA{R: 255, G: 0, B: 0, A: 255},
		LabelText:  color.NRGBA{R: 0, G: 0, B: 0, A: 255},
		Band:       color.NRGBA{R: 0, G: 120, B: 215, A: 255},
		BandFill:   color.NRGBA{R: 0, G: 120, B: 215, A: 40},
	}
}

func darkColors() *CanvasColors {
	return &CanvasColors{
		Background: color.NRGBA{R: 30, G: 30, B: 30, A: 255},
		Grid:       color.NRGBA{R: 70, G: 70, B: 70, A: 255},
		Origin:     color.NRGBA{R: 255, G: 80, B: 80, A: 255},
		Element:    color.NRGBA{R: 230, G: 230, B: 230, A: 255},
		Selected:   color.NRGBA{R: 255, G: 100, B: 100, A: 255},
		LabelText:  color.NRGBA{R: 230, G: 230, B: 230, A: 255},
		Band:       color.NRGBA{R: 100, G: 170, B: 255, A: 255},
		BandFill:   color.NRGBA{R: 100, G: 170, B: 255, A: 40},
	}
}

// ParseTheme maps a config value to a Theme. Unknown names fall back to light.
func ParseTheme(name string) Theme {
	if name == "dark" {
		return ThemeDark
	}
	return ThemeLight
}

func (t Theme) String() string {
	switch t {
	case ThemeDark:
		return "dark"
	default:
		return "light"
	}
}
