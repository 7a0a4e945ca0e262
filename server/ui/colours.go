package ui

const (
	// Standard colors
	Red     = "\033[31m"
	Green   = "\033[32m"
	Yellow  = "\033[33m"
	Blue    = "\033[34m"
	Magenta = "\033[35m"
	Cyan    = "\033[36m"
	Gray    = "\033[90m" // Bright black, often appears as gray

	ResetColor = "\033[0m" // Reset to default color
)

// MethodColors colours the HTTP method in route logs
var MethodColors = map[string]string{
	"GET":     Green,
	"POST":    Blue,
	"PUT":     Cyan,
	"DELETE":  Yellow,
	"PATCH":   Magenta,
	"OPTIONS": Gray,
}

// AlertColors maps a notification colour name to its terminal escape code
var AlertColors = map[string]string{
	"green": Green,
	"red":   Red,
}

// Colorize wraps text in the escape code for name, leaving it plain for unknown names
func Colorize(name, text string) string {
	color, ok := AlertColors[name]
	if !ok {
		return text
	}
	return color + text + ResetColor
}
