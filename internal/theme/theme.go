package theme

import (
	"image/color"
)

// Theme defines the colours of the drawing window chrome. The canvas itself
// is never themed.
type Theme struct {
	Name string

	// Window
	Background color.RGBA // Backdrop around the page
	Foreground color.RGBA // Status line text
	PageBorder color.RGBA

	// Toolbar
	ToolbarBackground      color.RGBA
	ButtonBackground       color.RGBA
	ButtonBackgroundHover  color.RGBA
	ButtonBackgroundActive color.RGBA
	ButtonText             color.RGBA
	ButtonTextActive       color.RGBA
	ButtonBorder           color.RGBA

	// Palette swatches
	SwatchBorder   color.RGBA
	SwatchSelected color.RGBA
}

// Default returns the built-in light theme.
func Default() *Theme {
	return &Theme{
		Name:                   "Default",
		Background:             color.RGBA{200, 200, 200, 255},
		Foreground:             color.RGBA{0, 0, 0, 255},
		PageBorder:             color.RGBA{120, 120, 120, 255},
		ToolbarBackground:      color.RGBA{225, 225, 225, 255},
		ButtonBackground:       color.RGBA{205, 205, 205, 255},
		ButtonBackgroundHover:  color.RGBA{185, 185, 185, 255},
		ButtonBackgroundActive: color.RGBA{90, 120, 200, 255},
		ButtonText:             color.RGBA{0, 0, 0, 255},
		ButtonTextActive:       color.RGBA{255, 255, 255, 255},
		ButtonBorder:           color.RGBA{0, 0, 0, 255},
		SwatchBorder:           color.RGBA{60, 60, 60, 255},
		SwatchSelected:         color.RGBA{255, 140, 0, 255},
	}
}
