package core

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
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
)

// TilePalette lists the tile colors in type order.
var TilePalette = []Color{
	ColorYellow,
	ColorGreen,
	ColorBlue,
	ColorRed,
	ColorGray,
	ColorMagenta,
	ColorCyan,
	ColorOrange,
}

// TileColor returns the palette color of a tile type.
func TileColor(tileType int) Color {
	if tileType < 0 {
		return ColorDefault
	}
	return TilePalette[tileType%len(TilePalette)]
}
