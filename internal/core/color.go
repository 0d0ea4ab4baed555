package core

import "image/color"

// Color is a palette entry shared by every frontend.
// The terminal maps it to an ANSI color, the window to RGBA.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
	ColorBlack
	ColorPurple
)

var rgba = map[Color]color.RGBA{
	ColorDefault:       {255, 255, 255, 255},
	ColorRed:           {255, 0, 0, 255},
	ColorGreen:         {0, 255, 0, 255},
	ColorYellow:        {255, 255, 0, 255},
	ColorBlue:          {0, 0, 255, 255},
	ColorMagenta:       {255, 0, 255, 255},
	ColorCyan:          {0, 255, 255, 255},
	ColorWhite:         {255, 255, 255, 255},
	ColorBrightRed:     {255, 85, 85, 255},
	ColorBrightGreen:   {85, 255, 85, 255},
	ColorBrightYellow:  {255, 255, 85, 255},
	ColorBrightBlue:    {85, 85, 255, 255},
	ColorBrightMagenta: {255, 85, 255, 255},
	ColorBrightCyan:    {85, 255, 255, 255},
	ColorBrightWhite:   {255, 255, 255, 255},
	ColorOrange:        {255, 165, 0, 255},
	ColorGray:          {128, 128, 128, 255},
	ColorBlack:         {0, 0, 0, 255},
	ColorPurple:        {128, 0, 128, 255},
}

// RGBA returns the true-color value used by pixel frontends.
func (c Color) RGBA() color.RGBA {
	if v, ok := rgba[c]; ok {
		return v
	}
	return rgba[ColorDefault]
}
