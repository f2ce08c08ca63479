package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/cronograma/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorAqua   = lipgloss.Color("#689d6a")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleAqua   = lipgloss.NewStyle().Foreground(ColorAqua)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// TaskTypeStyle returns the style used for tasks of the given type.
func TaskTypeStyle(t domain.TaskType) lipgloss.Style {
	switch t {
	case domain.TaskSimulation:
		return StyleRed
	case domain.TaskCorrection, domain.TaskGaps:
		return StyleYellow
	case domain.TaskRevision:
		return StyleBlue
	case domain.TaskWriting:
		return StylePurple
	case domain.TaskFree:
		return StyleGreen
	default:
		return StyleFg
	}
}

// TaskTypeBadge returns a short colored label for non-study tasks and an
// empty string for regular study.
func TaskTypeBadge(t domain.TaskType) string {
	labels := map[domain.TaskType]string{
		domain.TaskSimulation: "SIMULADO",
		domain.TaskCorrection: "CORREÇÃO",
		domain.TaskGaps:       "LACUNAS",
		domain.TaskRevision:   "REVISÃO",
		domain.TaskWriting:    "REDAÇÃO",
		domain.TaskFree:       "LIVRE",
	}
	label, ok := labels[t]
	if !ok {
		return ""
	}
	return TaskTypeStyle(t).Render("◆ " + label)
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", lipgloss.Width(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
