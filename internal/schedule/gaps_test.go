package schedule

import (
	"testing"

	"github.com/rvalero/agenda-cli/internal/domain"
)

func scheduledTask(id, start, end string) *domain.Task {
	return testTask(id, "2024-01-05", strPtr(start), strPtr(end))
}

func TestFindGaps(t *testing.T) {
	layout := DefaultLayout() // work window 09:00-20:00, min gap 30

	tests := []struct {
		name      string
		scheduled []*domain.Task
		want      []domain.Gap
	}{
		{
			name:      "empty day is one full gap",
			scheduled: nil,
			want:      []domain.Gap{{StartMinutes: 540, EndMinutes: 1200}},
		},
		{
			name: "two meetings leave three gaps",
			scheduled: []*domain.Task{
				scheduledTask("a", "10:00", "11:00"),
				scheduledTask("b", "14:00", "15:00"),
			},
			want: []domain.Gap{
				{StartMinutes: 540, EndMinutes: 600},
				{StartMinutes: 660, EndMinutes: 840},
				{StartMinutes: 900, EndMinutes: 1200},
			},
		},
		{
			name: "gap shorter than minimum dropped",
			scheduled: []*domain.Task{
				scheduledTask("a", "09:00", "11:00"),
				scheduledTask("b", "11:20", "20:00"),
			},
			want: nil,
		},
		{
			name: "task without end time excluded from gap math",
			scheduled: []*domain.Task{
				testTask("open-ended", "2024-01-05", strPtr("10:00"), nil),
			},
			want: []domain.Gap{{StartMinutes: 540, EndMinutes: 1200}},
		},
		{
			name: "overlapping intervals advance the cursor monotonically",
			scheduled: []*domain.Task{
				scheduledTask("a", "09:00", "12:00"),
				scheduledTask("b", "10:00", "11:00"),
			},
			want: []domain.Gap{{StartMinutes: 720, EndMinutes: 1200}},
		},
		{
			name: "task before work window ignored by cursor",
			scheduled: []*domain.Task{
				scheduledTask("a", "07:00", "08:00"),
			},
			want: []domain.Gap{{StartMinutes: 540, EndMinutes: 1200}},
		},
		{
			name: "task past work end closes the day",
			scheduled: []*domain.Task{
				scheduledTask("a", "09:00", "20:00"),
			},
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FindGaps(tt.scheduled, layout)

			if len(got) != len(tt.want) {
				t.Fatalf("FindGaps() returned %d gaps, want %d: %v", len(got), len(tt.want), got)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("gap[%d] = %+v, want %+v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

// TestFindGaps_Invariants checks the structural guarantees: no gap is
// shorter than the minimum, gaps never overlap each other, and gaps never
// overlap a scheduled interval.
func TestFindGaps_Invariants(t *testing.T) {
	layout := DefaultLayout()
	scheduled := []*domain.Task{
		scheduledTask("a", "09:15", "10:00"),
		scheduledTask("b", "10:45", "12:30"),
		scheduledTask("c", "13:00", "13:10"),
		scheduledTask("d", "16:00", "19:45"),
	}

	gaps := FindGaps(scheduled, layout)
	if len(gaps) == 0 {
		t.Fatal("expected at least one gap")
	}

	prevEnd := -1
	for i, g := range gaps {
		if g.Length() < layout.MinGapMinutes {
			t.Errorf("gap[%d] length %d below minimum %d", i, g.Length(), layout.MinGapMinutes)
		}
		if g.StartMinutes < prevEnd {
			t.Errorf("gap[%d] overlaps previous gap", i)
		}
		prevEnd = g.EndMinutes

		for _, task := range scheduled {
			start, _ := ParseClock(*task.StartTime)
			end, _ := ParseClock(*task.EndTime)
			if g.StartMinutes < end && start < g.EndMinutes {
				t.Errorf("gap[%d] %+v overlaps task %s [%d,%d)", i, g, task.ID, start, end)
			}
		}
	}
}
