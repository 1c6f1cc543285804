package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/rvalero/agenda-cli/internal/domain"
	"github.com/rvalero/agenda-cli/internal/schedule"
)

// printJSON renders any value as indented JSON on stdout.
func printJSON(v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	fmt.Println(string(data))
	return nil
}

// taskJSON converts a task to the map shape used by all JSON output.
func taskJSON(task *domain.Task) map[string]interface{} {
	data := map[string]interface{}{
		"id":         task.ID,
		"title":      task.Title,
		"date":       task.DateKey,
		"completed":  task.Completed,
		"created_at": task.CreatedAt.Format("2006-01-02T15:04:05"),
	}
	if task.Notes != "" {
		data["notes"] = task.Notes
	}
	if task.StartTime != nil {
		data["start_time"] = *task.StartTime
	}
	if task.EndTime != nil {
		data["end_time"] = *task.EndTime
	}
	if task.CategoryID != nil {
		data["category_id"] = *task.CategoryID
	}
	return data
}

// blockJSON converts a placement block to its JSON map shape. Offsets are
// kept alongside clock strings so scripted consumers can lay blocks out
// without re-deriving the axis.
func blockJSON(block domain.PlacementBlock, l schedule.Layout) map[string]interface{} {
	windowStart := l.WindowStartHour * 60
	data := map[string]interface{}{
		"task_id":        block.TaskID,
		"title":          block.Task.Title,
		"anytime":        block.IsAnytime,
		"completed":      block.Task.Completed,
		"start":          schedule.FormatClock(windowStart + block.StartMinutes),
		"offset_minutes": block.StartMinutes,
		"length_minutes": block.LengthMinutes,
		"top":            block.Top,
		"height":         block.Height,
	}
	return data
}

// gapJSON converts a gap to its JSON map shape.
func gapJSON(gap domain.Gap) map[string]interface{} {
	return map[string]interface{}{
		"start":   schedule.FormatClock(gap.StartMinutes),
		"end":     schedule.FormatClock(gap.EndMinutes),
		"minutes": gap.Length(),
	}
}

// dayJSON converts a laid-out day to its JSON map shape.
func dayJSON(day domain.DaySchedule, l schedule.Layout) map[string]interface{} {
	blocks := make([]map[string]interface{}, 0, len(day.Scheduled)+len(day.Anytime))
	for _, block := range day.Blocks() {
		blocks = append(blocks, blockJSON(block, l))
	}

	gaps := make([]map[string]interface{}, 0, len(day.Gaps))
	for _, gap := range day.Gaps {
		gaps = append(gaps, gapJSON(gap))
	}

	return map[string]interface{}{
		"date":   day.DayKey,
		"blocks": blocks,
		"gaps":   gaps,
	}
}

// printDaySchedule renders one day as text: scheduled blocks in axis
// order, then placed anytime tasks, then the free gaps.
func printDaySchedule(day domain.DaySchedule, l schedule.Layout) {
	windowStart := l.WindowStartHour * 60

	if len(day.Scheduled) == 0 && len(day.Anytime) == 0 {
		fmt.Println("  (no tasks)")
		return
	}

	for _, block := range day.Scheduled {
		icon := appConfig.Theme.IconScheduled
		if block.Task.Completed {
			icon = appConfig.Theme.IconDone
		}
		fmt.Printf("  %s %s-%s  %s\n",
			icon,
			schedule.FormatClock(windowStart+block.StartMinutes),
			schedule.FormatClock(windowStart+block.StartMinutes+block.LengthMinutes),
			block.Task.Title)
	}

	for _, block := range day.Anytime {
		icon := appConfig.Theme.IconAnytime
		if block.Task.Completed {
			icon = appConfig.Theme.IconDone
		}
		fmt.Printf("  %s %s       %s  (anytime)\n",
			icon,
			schedule.FormatClock(windowStart+block.StartMinutes),
			block.Task.Title)
	}

	if len(day.Gaps) > 0 {
		fmt.Print("  free:")
		for _, gap := range day.Gaps {
			fmt.Printf("  %s-%s", schedule.FormatClock(gap.StartMinutes), schedule.FormatClock(gap.EndMinutes))
		}
		fmt.Println()
	}
}

// printSkipped warns about records excluded for malformed dates.
func printSkipped(skipped int) {
	if skipped > 0 {
		fmt.Printf("\n⚠️  %d task(s) skipped: unreadable date\n", skipped)
	}
}
