package schedule

import (
	"github.com/rvalero/agenda-cli/internal/domain"
)

// Layout holds the per-view axis parameters. The display window is the
// full rendered time axis; the work window is the narrower band eligible
// for gap discovery and anytime placement.
type Layout struct {
	WindowStartHour      int
	WindowEndHour        int
	WorkStartHour        int
	WorkEndHour          int
	MinGapMinutes        int
	MinVisualFraction    float64
	FallbackStartMinutes int
	MonthCellLimit       int
}

// DefaultLayout returns the documented default layout: display window
// 06:00-22:00, work window 09:00-20:00, 30-minute minimum gap, fallback
// slot at 20:00, blocks never shorter than 3% of the axis.
func DefaultLayout() Layout {
	return Layout{
		WindowStartHour:      6,
		WindowEndHour:        22,
		WorkStartHour:        9,
		WorkEndHour:          20,
		MinGapMinutes:        30,
		MinVisualFraction:    0.03,
		FallbackStartMinutes: 20 * 60,
		MonthCellLimit:       3,
	}
}

// WindowMinutes returns the total length of the display axis.
func (l Layout) WindowMinutes() int {
	return (l.WindowEndHour - l.WindowStartHour) * 60
}

// windowStart returns the display window start in minutes from midnight.
func (l Layout) windowStart() int {
	return l.WindowStartHour * 60
}

// PackScheduled maps a scheduled task onto the display axis, producing a
// placement block with the offset and length in minutes plus the visual
// fractions. Tasks starting before the window or ending after it are
// clamped to the edges rather than dropped; the minimum visual fraction
// keeps very short or fully clamped tasks tappable.
func PackScheduled(task *domain.Task, l Layout) domain.PlacementBlock {
	total := l.WindowMinutes()

	start, _ := ParseClock(*task.StartTime)
	length := spanOrDefault(*task.StartTime, task.EndTime)

	offset := start - l.windowStart()
	end := offset + length

	if offset < 0 {
		offset = 0
	}
	if offset > total {
		offset = total
	}
	if end < offset {
		end = offset
	}
	if end > total {
		end = total
	}

	height := float64(end-offset) / float64(total)
	if height < l.MinVisualFraction {
		height = l.MinVisualFraction
	}

	return domain.PlacementBlock{
		TaskID:        task.ID,
		Task:          task,
		StartMinutes:  offset,
		LengthMinutes: end - offset,
		Top:           float64(offset) / float64(total),
		Height:        height,
	}
}
