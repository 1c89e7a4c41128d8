package output

import "github.com/charmbracelet/lipgloss"

// Color palette for the few styled lines the CLI prints.
var (
	// ColorGreenCheck is used for the success checkmark.
	ColorGreenCheck = lipgloss.Color("10")

	// ColorCyan is used for filesystem paths.
	ColorCyan = lipgloss.Color("14")
)

// Semantic styles.
var (
	// StylePath styles workspace and artifact paths.
	StylePath = lipgloss.NewStyle().Foreground(ColorCyan)

	// StyleEmphasis styles the leading word of a result line.
	StyleEmphasis = lipgloss.NewStyle().Bold(true)
)

// FormatSuccess renders a green checkmark followed by a message and a styled
// path, for the final stdout line of a successful build.
func FormatSuccess(msg, path string) string {
	check := lipgloss.NewStyle().Foreground(ColorGreenCheck).Render("✔")
	return check + " " + StyleEmphasis.Render(msg) + " " + StylePath.Render(path)
}
