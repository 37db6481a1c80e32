package core

// Color is the foreground color of a screen cell.
// Values map to ANSI 256-color codes in the platform renderer.
type Color uint8

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
	ColorOrange
	ColorGray
)

// String returns the color name, mostly for debugging snapshots.
func (c Color) String() string {
	switch c {
	case ColorDefault:
		return "default"
	case ColorRed, ColorBrightRed:
		return "red"
	case ColorGreen, ColorBrightGreen:
		return "green"
	case ColorYellow, ColorBrightYellow:
		return "yellow"
	case ColorBlue, ColorBrightBlue:
		return "blue"
	case ColorMagenta, ColorBrightMagenta:
		return "magenta"
	case ColorCyan, ColorBrightCyan:
		return "cyan"
	case ColorWhite:
		return "white"
	case ColorOrange:
		return "orange"
	case ColorGray:
		return "gray"
	default:
		return "unknown"
	}
}
