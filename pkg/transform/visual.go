package transform

import "strings"

// gradientTokens maps the palette tokens editors pick in the CMS to their
// rgba values.
var gradientTokens = map[string]string{
	"blue-500":   "rgba(59, 130, 246, 0.2)",
	"blue-600":   "rgba(37, 99, 235, 0.1)",
	"purple-500": "rgba(168, 85, 247, 0.2)",
	"purple-600": "rgba(147, 51, 234, 0.1)",
	"green-500":  "rgba(34, 197, 94, 0.2)",
	"green-600":  "rgba(22, 163, 74, 0.1)",
}

// GradientColor normalizes a focus-area gradient color. Literal color
// values (rgb/rgba/hex/hsl) pass through; palette tokens are mapped; and
// anything else is returned unchanged so the presentation layer can decide.
func GradientColor(color string) string {
	if color == "" {
		return ""
	}
	if strings.HasPrefix(color, "rgba") || strings.HasPrefix(color, "rgb") ||
		strings.HasPrefix(color, "#") || strings.HasPrefix(color, "hsl") {
		return color
	}
	if v, ok := gradientTokens[color]; ok {
		return v
	}
	return color
}
