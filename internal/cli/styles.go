package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// CLI output styles for consistent terminal output.
var (
	cliSuccess = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#059669", Dark: "#10B981"})
	cliWarn    = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#D97706", Dark: "#F59E0B"})
	cliMuted   = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#9CA3AF", Dark: "#6B7280"})
	cliPrimary = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#C45A3C", Dark: "#DA7756"})
	cliBorder  = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#D1D5DB", Dark: "#4B5563"})
)

// cardStyle returns a lipgloss style for a rounded-border card.
func cardStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(cliBorder.GetForeground()).
		Padding(0, 2)
}

// renderSuccessCard renders a success message inside a rounded border card.
func renderSuccessCard(title string, details ...string) string {
	titleLine := cliSuccess.Render("✓") + " " + title
	var body strings.Builder
	body.WriteString(titleLine)
	if len(details) > 0 {
		body.WriteString("\n\n")
		for i, d := range details {
			if i > 0 {
				body.WriteString("\n")
			}
			body.WriteString(d)
		}
	}
	return cardStyle().Render(body.String())
}

// kvPair is a key-value line in a rendered card.
type kvPair struct {
	key   string
	value string
}

// renderKeyValueLines renders aligned key-value pairs with muted keys.
func renderKeyValueLines(pairs []kvPair) string {
	width := 0
	for _, p := range pairs {
		if len(p.key) > width {
			width = len(p.key)
		}
	}
	var b strings.Builder
	for i, p := range pairs {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(cliMuted.Render(fmt.Sprintf("%-*s", width+2, p.key+":")))
		b.WriteString(p.value)
	}
	return b.String()
}

// PrintBanner prints the styled startup banner with the tool version.
func PrintBanner(version string) {
	name := cliPrimary.Bold(true).Render("create-project")
	tagline := cliMuted.Render("Scaffold GenAI Python projects")
	ver := cliMuted.Render(version)
	fmt.Println(cardStyle().Render(name + " " + ver + "\n" + tagline))
}
