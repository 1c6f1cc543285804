package schedule

import (
	"sort"

	"github.com/rvalero/agenda-cli/internal/domain"
)

// DaySelection is the partition of one day's visible tasks: scheduled
// tasks sorted ascending by start time (stable on ties) and anytime tasks
// in their original input order.
type DaySelection struct {
	Scheduled []*domain.Task
	Anytime   []*domain.Task
}

// SelectDay filters a task collection to a single calendar day. Tasks with
// unparseable dates are excluded entirely; tasks with malformed start
// times are kept but demoted to the anytime list so corrupt upstream data
// never removes a task from view.
func SelectDay(tasks []*domain.Task, dayKey string, filter CategoryFilter) DaySelection {
	var sel DaySelection
	starts := make(map[string]int)

	for _, task := range tasks {
		key, ok := NormalizeDateKey(task.DateKey)
		if !ok || key != dayKey {
			continue
		}
		if !filter.Visible(task.CategoryID) {
			continue
		}

		if task.StartTime == nil || *task.StartTime == "" {
			sel.Anytime = append(sel.Anytime, task)
			continue
		}
		mins, ok := ParseClock(*task.StartTime)
		if !ok {
			sel.Anytime = append(sel.Anytime, task)
			continue
		}
		starts[task.ID] = mins
		sel.Scheduled = append(sel.Scheduled, task)
	}

	sort.SliceStable(sel.Scheduled, func(i, j int) bool {
		return starts[sel.Scheduled[i].ID] < starts[sel.Scheduled[j].ID]
	})

	return sel
}
