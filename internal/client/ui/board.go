package ui

import (
	"fmt"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"

	"github.com/dmitrijs2005/taskboard/internal/client/models"
)

const columnWidth = 30

var (
	columnStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#dce0e5")).
			Padding(0, 1).
			Width(columnWidth)

	headerStyle = lipgloss.NewStyle().Bold(true)

	mutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6b7280"))

	// card styles keyed by PriorityBorderClass
	cardStylesMu sync.Mutex
	cardStyles   = map[string]lipgloss.Style{}
)

// cardStyle returns the card frame for p: a thick left border in the
// priority color.
func cardStyle(p models.Priority) lipgloss.Style {
	class := PriorityBorderClass(p)

	cardStylesMu.Lock()
	defer cardStylesMu.Unlock()
	if st, ok := cardStyles[class]; ok {
		return st
	}
	st := lipgloss.NewStyle().
		Border(lipgloss.ThickBorder(), false, false, false, true).
		BorderForeground(TerminalColor(p)).
		PaddingLeft(1)
	cardStyles[class] = st
	return st
}

// RenderBoard draws the columns side by side. Each card shows the title,
// its priority in the priority color, the due date and a short id.
func RenderBoard(cols []models.Column) string {
	rendered := make([]string, 0, len(cols))
	for _, c := range cols {
		rendered = append(rendered, columnStyle.Render(renderColumn(c)))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

func renderColumn(c models.Column) string {
	var b strings.Builder
	b.WriteString(headerStyle.Render(fmt.Sprintf("%s (%d)", c.Status.Title, len(c.Tasks))))
	if len(c.Tasks) == 0 {
		b.WriteString("\n")
		b.WriteString(mutedStyle.Render("no tasks"))
	}
	for _, t := range c.Tasks {
		b.WriteString("\n\n")
		b.WriteString(RenderCard(t))
	}
	return b.String()
}

// RenderCard draws a single task.
func RenderCard(t models.Task) string {
	prio := lipgloss.NewStyle().Foreground(TerminalColor(t.Priority)).Render(string(t.Priority))

	lines := []string{
		t.Title,
		fmt.Sprintf("%s  %s", prio, mutedStyle.Render(ShortID(t.ID))),
	}
	if t.DueDate != nil {
		lines = append(lines, mutedStyle.Render("due "+FormatDueDate(*t.DueDate)))
	}
	return cardStyle(t.Priority).Render(strings.Join(lines, "\n"))
}

// ShortID returns the first eight characters of id.
func ShortID(id string) string {
	if len(id) <= 8 {
		return id
	}
	return id[:8]
}
