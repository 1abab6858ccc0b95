package gui

import (
	"image/color"

	"github.com/vovakirdan/dropcatch/internal/core"
)

var (
	skyColor     = color.RGBA{R: 0xe0, G: 0xf7, B: 0xfa, A: 0xff}
	dropColor    = color.RGBA{R: 0x21, G: 0x96, B: 0xf3, A: 0xff}
	pollutColor  = color.RGBA{R: 0x79, G: 0x55, B: 0x48, A: 0xff}
	bucketColor  = color.RGBA{R: 0x01, G: 0x57, B: 0x9b, A: 0xff}
	rimColor     = color.RGBA{R: 0x0d, G: 0x47, B: 0xa1, A: 0xff}
	panelColor   = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xe6}
	shadeColor   = color.RGBA{R: 0x00, G: 0x00, B: 0x00, A: 0x66}
	defaultColor = color.RGBA{R: 0x26, G: 0x32, B: 0x38, A: 0xff}
)

// palette maps core.Color to window colors. The window background is light,
// so the terminal's bright variants are darkened.
var palette = map[core.Color]color.RGBA{
	core.ColorDefault:      defaultColor,
	core.ColorRed:          {R: 0xd3, G: 0x2f, B: 0x2f, A: 0xff},
	core.ColorGreen:        {R: 0x38, G: 0x8e, B: 0x3c, A: 0xff},
	core.ColorYellow:       {R: 0xf9, G: 0xa8, B: 0x25, A: 0xff},
	core.ColorBlue:         {R: 0x19, G: 0x76, B: 0xd2, A: 0xff},
	core.ColorMagenta:      {R: 0x8e, G: 0x24, B: 0xaa, A: 0xff},
	core.ColorCyan:         {R: 0x00, G: 0xac, B: 0xc1, A: 0xff},
	core.ColorWhite:        defaultColor,
	core.ColorBrightYellow: {R: 0xff, G: 0xc1, B: 0x07, A: 0xff},
	core.ColorBrightBlue:   {R: 0x42, G: 0xa5, B: 0xf5, A: 0xff},
	core.ColorBrightCyan:   {R: 0x00, G: 0x83, B: 0x8f, A: 0xff},
	core.ColorOrange:       {R: 0xff, G: 0x98, B: 0x00, A: 0xff},
	core.ColorBrown:        pollutColor,
	core.ColorGray:         {R: 0x75, G: 0x75, B: 0x75, A: 0xff},
}

// rgba returns the window color for a core color.
func rgba(c core.Color) color.RGBA {
	if v, ok := palette[c]; ok {
		return v
	}
	return defaultColor
}
