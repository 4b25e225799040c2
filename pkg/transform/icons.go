package transform

import "strings"

// Icon names are the identifiers the presentation layer maps to glyphs.
// Every lookup here is total: unrecognized input resolves to an explicit
// catch-all, never to an empty result.

var categoryIcons = map[string]string{
	"frontend": "code",
	"backend":  "server",
	"database": "database",
	"devops":   "settings",
	"tools":    "settings",
	"design":   "palette",
	"other":    "target",
}

// CategoryIcon names the icon for a skill category. Unknown categories get
// the catch-all target icon.
func CategoryIcon(category string) string {
	if icon, ok := categoryIcons[category]; ok {
		return icon
	}
	return "target"
}

var categoryTitles = map[string]string{
	"frontend": "Frontend Development",
	"backend":  "Backend Development",
	"database": "Databases",
	"devops":   "DevOps & Tools",
	"tools":    "Tools",
	"design":   "Product Design",
	"other":    "Soft Skills & Methods",
}

// CategoryTitle names the display heading for a skill category. Unknown
// categories are title-cased as-is.
func CategoryTitle(category string) string {
	if title, ok := categoryTitles[category]; ok {
		return title
	}
	if category == "" {
		return ""
	}
	return strings.ToUpper(category[:1]) + category[1:]
}

// RoleIcon picks an experience icon from keywords in the role title.
func RoleIcon(role string) string {
	r := strings.ToLower(role)
	switch {
	case strings.Contains(r, "lead"), strings.Contains(r, "manager"), strings.Contains(r, "director"):
		return "rocket"
	case strings.Contains(r, "senior"), strings.Contains(r, "product"):
		return "file-text"
	case strings.Contains(r, "ui"), strings.Contains(r, "ux"), strings.Contains(r, "designer"):
		return "pen-tool"
	default:
		return "briefcase"
	}
}

var focusIcons = map[string]bool{
	"map-pin":   true,
	"target":    true,
	"sparkles":  true,
	"layers":    true,
	"rocket":    true,
	"zap":       true,
	"lightbulb": true,
	"star":      true,
	"x":         true,
	"check":     true,
}

// FocusIcon validates a focus-area icon name, defaulting to target.
func FocusIcon(name string) string {
	n := strings.ToLower(name)
	if focusIcons[n] {
		return n
	}
	return "target"
}

var serviceIcons = map[string]bool{
	"Code2":         true,
	"MousePointer2": true,
	"Building2":     true,
	"Gauge":         true,
	"Users":         true,
}

// ServiceIcon validates a service icon name, defaulting to Code2.
func ServiceIcon(name string) string {
	if serviceIcons[name] {
		return name
	}
	return "Code2"
}
