package domain

// PlacementBlock describes where a task appears on the visual time axis.
// It is produced fresh on every render pass and never persisted. Offsets
// are minutes from the start of the display window; Top and Height are
// fractions of the window so callers can draw at any pixel height.
type PlacementBlock struct {
	TaskID        string
	Task          *Task
	StartMinutes  int
	LengthMinutes int
	IsAnytime     bool
	Top           float64
	Height        float64
}

// Gap is a contiguous free interval within the work window, expressed in
// minutes from midnight.
type Gap struct {
	StartMinutes int
	EndMinutes   int
}

// Length returns the gap length in minutes.
func (g Gap) Length() int {
	return g.EndMinutes - g.StartMinutes
}

// DaySchedule is the fully laid out view of one calendar day: scheduled
// blocks sorted by start time, anytime blocks assigned to gaps, and the
// free gaps themselves.
type DaySchedule struct {
	DayKey    string
	Scheduled []PlacementBlock
	Anytime   []PlacementBlock
	Gaps      []Gap
}

// Blocks returns all placement blocks, scheduled first.
func (d DaySchedule) Blocks() []PlacementBlock {
	out := make([]PlacementBlock, 0, len(d.Scheduled)+len(d.Anytime))
	out = append(out, d.Scheduled...)
	out = append(out, d.Anytime...)
	return out
}

// WeekGrid holds seven consecutive day schedules. Days never interact;
// each is computed independently with the same filter and layout.
type WeekGrid struct {
	StartKey string
	Days     [7]DaySchedule
}

// MonthCell is the compact per-day summary used by month views: the first
// few visible tasks (scheduled before anytime) plus an overflow count.
type MonthCell struct {
	DayKey         string
	Visible        []*Task
	RemainingCount int
}
