package schedule

// CategoryFilter decides which tasks are visible under the user's category
// selection. Universe is the full set of known category IDs and must be
// recomputed per call; caching it across filter-state changes makes the
// "everything selected" detection stale.
type CategoryFilter struct {
	Selected []string
	Universe []string
}

// Visible reports whether a task with the given category ID passes the
// filter. Uncategorized tasks (nil or empty ID) always pass so that
// legacy or unlabeled data is never silently hidden.
func (f CategoryFilter) Visible(categoryID *string) bool {
	if f.unfiltered() {
		return true
	}
	if categoryID == nil || *categoryID == "" {
		return true
	}
	for _, id := range f.Selected {
		if id == *categoryID {
			return true
		}
	}
	return false
}

// unfiltered reports whether the selection means "no filter": either
// nothing is selected or the selection covers the entire universe.
func (f CategoryFilter) unfiltered() bool {
	if len(f.Selected) == 0 {
		return true
	}
	if len(f.Selected) != len(f.Universe) {
		return false
	}
	selected := make(map[string]struct{}, len(f.Selected))
	for _, id := range f.Selected {
		selected[id] = struct{}{}
	}
	for _, id := range f.Universe {
		if _, ok := selected[id]; !ok {
			return false
		}
	}
	return true
}
