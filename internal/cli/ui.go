package cli

import "github.com/charmbracelet/lipgloss"

var (
	colorSuccess = lipgloss.AdaptiveColor{Light: "2", Dark: "2"} // Green
	colorError   = lipgloss.AdaptiveColor{Light: "1", Dark: "1"} // Red
	colorPrimary = lipgloss.AdaptiveColor{Light: "5", Dark: "5"} // Purple
	colorInfo    = lipgloss.AdaptiveColor{Light: "6", Dark: "6"} // Cyan
	colorMuted   = lipgloss.AdaptiveColor{Light: "8", Dark: "8"} // Gray
	colorWarning = lipgloss.AdaptiveColor{Light: "3", Dark: "3"} // Yellow

	styleSuccess = lipgloss.NewStyle().Foreground(colorSuccess).Bold(true)
	styleError   = lipgloss.NewStyle().Foreground(colorError).Bold(true)
	styleTitle   = lipgloss.NewStyle().Foreground(colorPrimary).Bold(true).Underline(true)
	styleHeader  = lipgloss.NewStyle().Foreground(colorPrimary).Bold(true)
	styleInfo    = lipgloss.NewStyle().Foreground(colorInfo)
	styleMuted   = lipgloss.NewStyle().Foreground(colorMuted)
	styleWarning = lipgloss.NewStyle().Foreground(colorWarning).Bold(true)
)

const (
	iconSuccess = "✔"
	iconError   = "✘"
	iconInfo    = "ℹ"
	iconWarning = "⚠"
	iconRocket  = "🚀"
)

func formatSuccess(msg string) string { return styleSuccess.Render(iconSuccess + " " + msg) }
func formatError(msg string) string   { return styleError.Render(iconError + " " + msg) }
func formatInfo(msg string) string    { return styleInfo.Render(iconInfo + " " + msg) }
func formatWarning(msg string) string { return styleWarning.Render(iconWarning + " " + msg) }
func formatRocket(msg string) string  { return styleHeader.Render(iconRocket + " " + msg) }
func formatMuted(msg string) string   { return styleMuted.Render(msg) }
