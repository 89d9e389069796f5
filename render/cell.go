package render

import "github.com/gdamore/tcell/v2"

// Cell is one compositor cell, flushed to a tcell screen
type Cell struct {
	Rune  rune
	Fg    RGB
	Bg    RGB
	Attrs tcell.AttrMask
}

// DefaultBgRGB is the background of cells nothing painted
var DefaultBgRGB = RGB{26, 27, 38}

// RGBToTcell converts a cell color to a tcell true color
func RGBToTcell(rgb RGB) tcell.Color {
	return tcell.NewRGBColor(int32(rgb.R), int32(rgb.G), int32(rgb.B))
}
