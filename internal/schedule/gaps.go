package schedule

import (
	"github.com/rvalero/agenda-cli/internal/domain"
)

// FindGaps walks the sorted scheduled tasks for a day and returns the free
// intervals inside the work window that are at least MinGapMinutes long.
// Only tasks with both a valid start and a valid end time participate;
// tasks with a defaulted duration are excluded so a guessed length never
// hides a real gap. The returned gaps are ordered and non-overlapping, in
// minutes from midnight.
func FindGaps(scheduled []*domain.Task, l Layout) []domain.Gap {
	workStart := l.WorkStartHour * 60
	workEnd := l.WorkEndHour * 60

	var gaps []domain.Gap
	cursor := workStart

	for _, task := range scheduled {
		if task.StartTime == nil || task.EndTime == nil {
			continue
		}
		start, ok := ParseClock(*task.StartTime)
		if !ok {
			continue
		}
		span, ok := ClockSpan(*task.StartTime, *task.EndTime)
		if !ok {
			continue
		}

		if cursor < start {
			gapEnd := start
			if gapEnd > workEnd {
				gapEnd = workEnd
			}
			if gapEnd-cursor >= l.MinGapMinutes {
				gaps = append(gaps, domain.Gap{StartMinutes: cursor, EndMinutes: gapEnd})
			}
		}

		if end := start + span; end > cursor {
			cursor = end
		}
		if cursor >= workEnd {
			return gaps
		}
	}

	if workEnd-cursor >= l.MinGapMinutes {
		gaps = append(gaps, domain.Gap{StartMinutes: cursor, EndMinutes: workEnd})
	}

	return gaps
}
