package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rvalero/agenda-cli/internal/domain"
	"github.com/rvalero/agenda-cli/internal/schedule"
)

// minutesPerRow is the vertical resolution of the rendered axis.
const minutesPerRow = 30

// rowEntry is one rendered line of the timeline.
type rowEntry struct {
	label   string
	content string
}

// View renders the day view.
func (m Model) View() string {
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(m.theme.ColorTitle))
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.ColorHelp))

	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("%s  %s", m.theme.IconApp, m.dayKey)))
	b.WriteString("\n\n")
	b.WriteString(m.renderTimeline())
	b.WriteString("\n")

	if m.editing {
		b.WriteString(helpStyle.Render("rename: ") + m.editInput.View() + "\n")
		b.WriteString(helpStyle.Render("enter save · esc cancel") + "\n")
		return b.String()
	}

	if m.err != nil {
		b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Render("error: "+m.err.Error()) + "\n")
	} else if m.status != "" {
		b.WriteString(helpStyle.Render(m.status) + "\n")
	}

	b.WriteString(m.help.View(m.keys))
	return b.String()
}

// renderTimeline draws the display window as one line per half hour, with
// blocks and gaps placed proportionally to their minute spans.
func (m Model) renderTimeline() string {
	windowStart := m.layout.WindowStartHour * 60
	rows := m.layout.WindowMinutes() / minutesPerRow

	entries := make([]rowEntry, rows)
	for r := range entries {
		abs := windowStart + r*minutesPerRow
		if abs%60 == 0 {
			entries[r].label = schedule.FormatClock(abs)
		}
	}

	axisStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.ColorAxis))
	gapStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.ColorGap))

	for _, gap := range m.day.Gaps {
		r := (gap.StartMinutes - windowStart) / minutesPerRow
		if r >= 0 && r < rows && entries[r].content == "" {
			entries[r].content = gapStyle.Render(fmt.Sprintf("· free %s-%s",
				schedule.FormatClock(gap.StartMinutes), schedule.FormatClock(gap.EndMinutes)))
		}
	}

	// The highlighted block is placed last so overlapping blocks never
	// cover it.
	for i := range m.blocks {
		if i != m.cursor {
			m.placeBlock(entries, rows, m.blocks[i], false)
		}
	}
	if m.cursor >= 0 && m.cursor < len(m.blocks) {
		m.placeBlock(entries, rows, m.blocks[m.cursor], true)
	}

	var b strings.Builder
	for r := range entries {
		label := entries[r].label
		b.WriteString(axisStyle.Render(fmt.Sprintf("%5s", label)))
		b.WriteString("  ")
		b.WriteString(entries[r].content)
		b.WriteString("\n")
	}
	return b.String()
}

// placeBlock writes one block onto its rows: a full line at the start, a
// bare rule on continuation rows that are still empty.
func (m Model) placeBlock(entries []rowEntry, rows int, block domain.PlacementBlock, selected bool) {
	start := block.StartMinutes / minutesPerRow
	end := (block.StartMinutes + block.LengthMinutes - 1) / minutesPerRow
	if start < 0 {
		start = 0
	}
	if end >= rows {
		end = rows - 1
	}
	for r := start; r <= end && r < rows; r++ {
		if r == start {
			entries[r].content = m.renderBlockLine(block, selected)
		} else if entries[r].content == "" {
			entries[r].content = m.blockStyle(block, selected).Render("│")
		}
	}
}

// blockStyle picks the lipgloss style for a block.
func (m Model) blockStyle(block domain.PlacementBlock, selected bool) lipgloss.Style {
	color := m.theme.ColorScheduled
	if block.IsAnytime {
		color = m.theme.ColorAnytime
	}
	if block.Task.Completed {
		color = m.theme.ColorCompleted
	}

	style := lipgloss.NewStyle().Foreground(lipgloss.Color(color))
	if block.Task.Completed {
		style = style.Strikethrough(true)
	}
	if selected {
		style = style.Bold(true).Reverse(true)
	}
	return style
}

// renderBlockLine draws the first row of a block.
func (m Model) renderBlockLine(block domain.PlacementBlock, selected bool) string {
	icon := m.theme.IconScheduled
	if block.IsAnytime {
		icon = m.theme.IconAnytime
	}
	if block.Task.Completed {
		icon = m.theme.IconDone
	}

	windowStart := m.layout.WindowStartHour * 60
	span := fmt.Sprintf("%s-%s",
		schedule.FormatClock(windowStart+block.StartMinutes),
		schedule.FormatClock(windowStart+block.StartMinutes+block.LengthMinutes))

	line := fmt.Sprintf("%s %s  %s", icon, span, block.Task.Title)
	if block.IsAnytime {
		line += "  (anytime)"
	}
	return m.blockStyle(block, selected).Render(line)
}
