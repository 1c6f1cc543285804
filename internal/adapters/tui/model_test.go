package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rvalero/agenda-cli/internal/domain"
	"github.com/rvalero/agenda-cli/internal/schedule"
)

func strPtr(s string) *string { return &s }

func buildTestDay(t *testing.T) domain.DaySchedule {
	t.Helper()

	meeting, err := domain.NewTask("Morning meeting", "2024-01-05")
	if err != nil {
		t.Fatalf("NewTask() error = %v", err)
	}
	meeting.SetTimes(strPtr("09:00"), strPtr("10:00"))

	groceries, err := domain.NewTask("Buy groceries", "2024-01-05")
	if err != nil {
		t.Fatalf("NewTask() error = %v", err)
	}

	tasks := []*domain.Task{meeting, groceries}
	return schedule.BuildDay(tasks, "2024-01-05", schedule.CategoryFilter{}, schedule.DefaultLayout())
}

func testModel(t *testing.T, callbacks Callbacks) Model {
	t.Helper()

	if callbacks.LoadDay == nil {
		callbacks.LoadDay = func(dayKey string) (domain.DaySchedule, error) {
			return domain.DaySchedule{DayKey: dayKey}, nil
		}
	}
	return NewModel(buildTestDay(t), schedule.DefaultLayout(), nil, callbacks)
}

func keyPress(k string) tea.KeyMsg {
	switch k {
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}

func TestModel_Navigation(t *testing.T) {
	m := testModel(t, Callbacks{})

	if m.cursor != 0 {
		t.Fatalf("initial cursor = %d, want 0", m.cursor)
	}

	updated, _ := m.Update(keyPress("down"))
	m = updated.(Model)
	if m.cursor != 1 {
		t.Errorf("cursor after down = %d, want 1", m.cursor)
	}

	// The cursor stops at the last block.
	updated, _ = m.Update(keyPress("down"))
	m = updated.(Model)
	if m.cursor != 1 {
		t.Errorf("cursor after down at end = %d, want 1", m.cursor)
	}

	updated, _ = m.Update(keyPress("up"))
	m = updated.(Model)
	if m.cursor != 0 {
		t.Errorf("cursor after up = %d, want 0", m.cursor)
	}
}

func TestModel_DayShift(t *testing.T) {
	var loaded []string
	m := testModel(t, Callbacks{
		LoadDay: func(dayKey string) (domain.DaySchedule, error) {
			loaded = append(loaded, dayKey)
			return domain.DaySchedule{DayKey: dayKey}, nil
		},
	})

	updated, cmd := m.Update(keyPress("right"))
	m = updated.(Model)
	if m.dayKey != "2024-01-06" {
		t.Errorf("dayKey after right = %q, want 2024-01-06", m.dayKey)
	}
	if cmd == nil {
		t.Fatal("expected reload command after day shift")
	}

	msg := cmd()
	dayMsg, ok := msg.(dayLoadedMsg)
	if !ok {
		t.Fatalf("unexpected msg type %T", msg)
	}
	if len(loaded) != 1 || loaded[0] != "2024-01-06" {
		t.Errorf("LoadDay called with %v, want [2024-01-06]", loaded)
	}

	updated, _ = m.Update(dayMsg)
	m = updated.(Model)
	if len(m.blocks) != 0 {
		t.Errorf("blocks after loading empty day = %d, want 0", len(m.blocks))
	}
	if m.cursor != 0 {
		t.Errorf("cursor after loading empty day = %d, want 0", m.cursor)
	}
}

func TestModel_ToggleIntent(t *testing.T) {
	var toggled []string
	m := testModel(t, Callbacks{
		ToggleTask: func(taskID string) error {
			toggled = append(toggled, taskID)
			return nil
		},
	})

	taskID := m.blocks[0].TaskID
	updated, cmd := m.Update(intentMsg{taskID: taskID, kind: intentToggle})
	m = updated.(Model)

	if len(toggled) != 1 || toggled[0] != taskID {
		t.Errorf("ToggleTask called with %v, want [%s]", toggled, taskID)
	}
	if cmd == nil {
		t.Error("expected reload + resubscribe command after toggle")
	}
	if m.status == "" {
		t.Error("expected a status message after toggle")
	}
}

func TestModel_EditIntentOpensRename(t *testing.T) {
	renamed := map[string]string{}
	m := testModel(t, Callbacks{
		RenameTask: func(taskID, title string) error {
			renamed[taskID] = title
			return nil
		},
	})

	taskID := m.blocks[0].TaskID
	updated, _ := m.Update(intentMsg{taskID: taskID, kind: intentEdit})
	m = updated.(Model)

	if !m.editing {
		t.Fatal("edit intent should open the rename input")
	}
	if m.editInput.Value() != "Morning meeting" {
		t.Errorf("rename input prefilled with %q, want current title", m.editInput.Value())
	}

	m.editInput.SetValue("Morning standup")
	updated, _ = m.Update(keyPress("enter"))
	m = updated.(Model)

	if m.editing {
		t.Error("enter should close the rename input")
	}
	if renamed[taskID] != "Morning standup" {
		t.Errorf("RenameTask got %q, want Morning standup", renamed[taskID])
	}
}

func TestModel_EditCancel(t *testing.T) {
	m := testModel(t, Callbacks{
		RenameTask: func(taskID, title string) error {
			t.Error("RenameTask should not be called on cancel")
			return nil
		},
	})

	updated, _ := m.Update(intentMsg{taskID: m.blocks[0].TaskID, kind: intentEdit})
	m = updated.(Model)

	updated, _ = m.Update(keyPress("esc"))
	m = updated.(Model)
	if m.editing {
		t.Error("esc should close the rename input")
	}
}

func TestModel_TapArmsDisambiguator(t *testing.T) {
	m := testModel(t, Callbacks{})

	updated, _ := m.Update(keyPress("enter"))
	m = updated.(Model)

	if !m.taps.Armed() {
		t.Error("enter on a block should arm the tap disambiguator")
	}
	m.taps.Close()
}

func TestModel_View(t *testing.T) {
	m := testModel(t, Callbacks{})
	m.width = 80
	m.height = 40

	view := m.View()

	if !strings.Contains(view, "Morning meeting") {
		t.Error("view should contain the scheduled task title")
	}
	if !strings.Contains(view, "Buy groceries") {
		t.Error("view should contain the anytime task title")
	}
	if !strings.Contains(view, "(anytime)") {
		t.Error("view should mark anytime placements")
	}
	if !strings.Contains(view, "06:00") || !strings.Contains(view, "21:00") {
		t.Error("view should render the display window axis labels")
	}
	if !strings.Contains(view, "2024-01-05") {
		t.Error("view should show the day key")
	}
}

func TestModel_View_EmptyDay(t *testing.T) {
	m := NewModel(domain.DaySchedule{DayKey: "2024-01-05"}, schedule.DefaultLayout(), nil, Callbacks{})

	view := m.View()
	if !strings.Contains(view, "2024-01-05") {
		t.Error("empty day should still render the header")
	}
}
