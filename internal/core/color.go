package core

// Color is a foreground colour index for a screen cell. Games only pick
// an index; the platform layer decides how it reaches the terminal.
type Color uint8

// Base palette. The order is part of the contract with the platform
// palettes, so new entries go at the end.
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

// Scene roles. Renderers use these so a re-theme only touches this block.
const (
	ColorGround  = ColorGray
	ColorSky     = ColorBlue
	ColorRunner  = ColorCyan
	ColorShield  = ColorBrightCyan
	ColorEnemy   = ColorRed
	ColorDanger  = ColorBrightRed
	ColorPlane   = ColorMagenta
	ColorBoss    = ColorBrightMagenta
	ColorBullet  = ColorBrightYellow
	ColorGossip  = ColorOrange
	ColorHealth  = ColorBrightGreen
	ColorWarning = ColorBrightYellow
	ColorLabel   = ColorBrightWhite
)

var colorNames = [...]string{
	"default", "red", "green", "yellow", "blue", "magenta", "cyan", "white",
	"bright-red", "bright-green", "bright-yellow", "bright-blue",
	"bright-magenta", "bright-cyan", "bright-white", "orange", "gray",
}

func (c Color) String() string {
	if int(c) < len(colorNames) {
		return colorNames[c]
	}
	return "unknown"
}
