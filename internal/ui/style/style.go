// Package style provides shared UI styling primitives: brand colors and icons
// used by the console renderer and the log handler.
package style

import "github.com/charmbracelet/lipgloss"

// Brand Colors.
var (
	Nebula = lipgloss.Color("#7C3AED")
	Slate  = lipgloss.Color("#667085")
	Star   = lipgloss.Color("#FACC15")
	Green  = lipgloss.Color("#22A06B")
	Red    = lipgloss.Color("#D93025")
	Yellow = lipgloss.Color("#F59E0B")
)

// Icons.
const (
	Check   = "✓"
	Cross   = "✗"
	Warning = "!"
	Dot     = "●"
)
