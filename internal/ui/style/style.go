// Package style holds the colors and icons shared by the log handler and the result renderer.
package style

import "github.com/charmbracelet/lipgloss"

// Palette.
var (
	Accent = lipgloss.Color("#0EA5E9")
	Slate  = lipgloss.Color("#667085")
	Green  = lipgloss.Color("#22A06B")
	Red    = lipgloss.Color("#D93025")
	Yellow = lipgloss.Color("#F59E0B")
)

// Icons.
const (
	Check   = "✓"
	Cross   = "✗"
	Warning = "!"
	Arrow   = "→"
	Dot     = "●"
)

// KindColor returns the color used to tag a specifier kind.
func KindColor(kind string) lipgloss.Color {
	switch kind {
	case "builtin":
		return Yellow
	case "library":
		return Accent
	default:
		return Slate
	}
}
