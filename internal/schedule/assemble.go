package schedule

import (
	"fmt"

	"github.com/rvalero/agenda-cli/internal/domain"
)

// BuildDay runs the full placement pipeline for one calendar day: select
// and partition the visible tasks, pack the scheduled ones onto the axis,
// discover free gaps, and assign anytime tasks to them.
func BuildDay(tasks []*domain.Task, dayKey string, filter CategoryFilter, l Layout) domain.DaySchedule {
	sel := SelectDay(tasks, dayKey, filter)

	day := domain.DaySchedule{DayKey: dayKey}
	for _, task := range sel.Scheduled {
		day.Scheduled = append(day.Scheduled, PackScheduled(task, l))
	}
	day.Gaps = FindGaps(sel.Scheduled, l)
	day.Anytime = PlaceAnytime(sel.Anytime, day.Gaps, l)
	return day
}

// BuildWeek lays out seven consecutive days starting at startKey, all with
// the same filter and layout. Days never interact.
func BuildWeek(tasks []*domain.Task, startKey string, filter CategoryFilter, l Layout) (domain.WeekGrid, error) {
	start, err := ParseDayKey(startKey)
	if err != nil {
		return domain.WeekGrid{}, fmt.Errorf("invalid week start %q: %w", startKey, err)
	}

	grid := domain.WeekGrid{StartKey: startKey}
	for i := 0; i < 7; i++ {
		key := DayKeyOf(start.AddDate(0, 0, i))
		grid.Days[i] = BuildDay(tasks, key, filter, l)
	}
	return grid, nil
}

// BuildMonthCell produces the compact per-day summary for month views:
// scheduled tasks first, then anytime, truncated to limit with an overflow
// count. No gap packing happens at month granularity.
func BuildMonthCell(tasks []*domain.Task, dayKey string, filter CategoryFilter, limit int) domain.MonthCell {
	sel := SelectDay(tasks, dayKey, filter)

	ordered := make([]*domain.Task, 0, len(sel.Scheduled)+len(sel.Anytime))
	ordered = append(ordered, sel.Scheduled...)
	ordered = append(ordered, sel.Anytime...)

	cell := domain.MonthCell{DayKey: dayKey}
	if limit <= 0 {
		limit = DefaultLayout().MonthCellLimit
	}
	if len(ordered) > limit {
		cell.Visible = ordered[:limit]
		cell.RemainingCount = len(ordered) - limit
	} else {
		cell.Visible = ordered
	}
	return cell
}
