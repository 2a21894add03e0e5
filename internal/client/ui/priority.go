package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/dmitrijs2005/taskboard/internal/client/models"
)

// Semantic color names.
const (
	ColorSuccess = "success"
	ColorWarning = "warning"
	ColorError   = "error"
	ColorInfo    = "info"
)

var priorityColors = map[models.Priority]string{
	models.PriorityLow:    ColorSuccess,
	models.PriorityMedium: ColorWarning,
	models.PriorityHigh:   ColorError,
}

// Terminal colors for the semantic names.
var palette = map[string]lipgloss.Color{
	ColorSuccess: lipgloss.Color("#8BC34A"),
	ColorWarning: lipgloss.Color("#FFC107"),
	ColorError:   lipgloss.Color("#E57373"),
	ColorInfo:    lipgloss.Color("#2196F3"),
}

// PriorityColor maps a priority to its semantic color. Unknown priorities
// are "info".
func PriorityColor(p models.Priority) string {
	if c, ok := priorityColors[p]; ok {
		return c
	}
	return ColorInfo
}

// PriorityBorderClass returns the border class for p.
func PriorityBorderClass(p models.Priority) string {
	return "priority-border-" + string(p)
}

// TerminalColor returns the lipgloss color used for p.
func TerminalColor(p models.Priority) lipgloss.Color {
	return palette[PriorityColor(p)]
}
