package config

import "github.com/gookit/color"

// Color constants for logging
var (
	ColorGreen  = color.Style{color.FgGreen}
	ColorPurple = color.Style{color.FgMagenta, color.OpBold}
)
