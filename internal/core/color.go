package core

// Color is a foreground color for a screen cell, mapped to ANSI colors
// by the platform renderer.
type Color uint8

const (
	ColorDefault Color = iota
	ColorGreen         // Real tiles
	ColorRed           // Fake tiles (revealed)
	ColorBlue          // Start tile
	ColorYellow        // Exit tile
	ColorGray          // Empty tiles, chrome
	ColorCyan          // Mask HUD
	ColorWhite         // Player
	ColorBrightWhite   // Highlights, overlays
)
