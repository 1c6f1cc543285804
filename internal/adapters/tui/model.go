// Package tui provides the terminal user interface implementation
// using the Bubbletea framework.
package tui

import (
	"fmt"
	"os"
	"reflect"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/term"

	"github.com/rvalero/agenda-cli/internal/config"
	"github.com/rvalero/agenda-cli/internal/domain"
	"github.com/rvalero/agenda-cli/internal/gesture"
	"github.com/rvalero/agenda-cli/internal/schedule"
)

// resolveTheme fills any empty string fields in the given ThemeConfig with
// defaults. If theme is nil, returns the full default theme.
func resolveTheme(theme *config.ThemeConfig) config.ThemeConfig {
	defaults := config.DefaultThemeConfig()
	if theme == nil {
		return defaults
	}
	resolved := *theme
	rv := reflect.ValueOf(&resolved).Elem()
	dv := reflect.ValueOf(defaults)
	for i := 0; i < rv.NumField(); i++ {
		f := rv.Field(i)
		if f.Kind() == reflect.String && f.String() == "" {
			f.SetString(dv.Field(i).String())
		}
	}
	return resolved
}

// intentKind is the resolved meaning of a tap sequence.
type intentKind int

const (
	intentEdit intentKind = iota
	intentToggle
)

// intentMsg is delivered when the tap disambiguator resolves a gesture.
type intentMsg struct {
	taskID string
	kind   intentKind
}

// dayLoadedMsg carries a freshly built day schedule.
type dayLoadedMsg struct {
	day domain.DaySchedule
	err error
}

// Callbacks connects the view to the application layer. LoadDay is
// required; the others may be nil, disabling the matching action.
type Callbacks struct {
	LoadDay    func(dayKey string) (domain.DaySchedule, error)
	ToggleTask func(taskID string) error
	RenameTask func(taskID, title string) error
}

// keyMap defines the day view key bindings.
type keyMap struct {
	Up      key.Binding
	Down    key.Binding
	PrevDay key.Binding
	NextDay key.Binding
	Tap     key.Binding
	Reload  key.Binding
	Quit    key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.PrevDay, k.NextDay, k.Tap, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.PrevDay, k.NextDay},
		{k.Tap, k.Reload, k.Quit},
	}
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "prev block")),
		Down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "next block")),
		PrevDay: key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "prev day")),
		NextDay: key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next day")),
		Tap:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "tap (2x toggles)")),
		Reload:  key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// getTerminalWidth returns the current terminal width, defaulting to 80.
func getTerminalWidth() int {
	w, _, err := term.GetSize(os.Stdout.Fd())
	if err != nil || w < 40 {
		return 80
	}
	return w
}

// Model is the interactive day view. A tap on the highlighted block opens
// the rename input; a quick double tap toggles its completed state.
type Model struct {
	dayKey string
	day    domain.DaySchedule
	blocks []domain.PlacementBlock
	cursor int

	width  int
	height int

	layout    schedule.Layout
	theme     config.ThemeConfig
	callbacks Callbacks

	taps    *gesture.Disambiguator
	intents chan intentMsg

	editing    bool
	editTaskID string
	editInput  textinput.Model

	status string
	err    error

	keys keyMap
	help help.Model
}

// NewModel creates a day view for an already-built schedule.
func NewModel(day domain.DaySchedule, layout schedule.Layout, theme *config.ThemeConfig, callbacks Callbacks) Model {
	intents := make(chan intentMsg, 8)
	taps := gesture.New(gesture.DefaultWindow,
		func(taskID string) { intents <- intentMsg{taskID: taskID, kind: intentEdit} },
		func(taskID string) { intents <- intentMsg{taskID: taskID, kind: intentToggle} },
	)

	ti := textinput.New()
	ti.CharLimit = 120
	ti.Width = 40

	return Model{
		dayKey:    day.DayKey,
		day:       day,
		blocks:    day.Blocks(),
		width:     getTerminalWidth(),
		layout:    layout,
		theme:     resolveTheme(theme),
		callbacks: callbacks,
		taps:      taps,
		intents:   intents,
		editInput: ti,
		keys:      defaultKeyMap(),
		help:      help.New(),
	}
}

// Init initializes the TUI.
func (m Model) Init() tea.Cmd {
	return waitForIntent(m.intents)
}

// waitForIntent blocks on the next resolved gesture.
func waitForIntent(intents chan intentMsg) tea.Cmd {
	return func() tea.Msg {
		return <-intents
	}
}

// loadDayCmd rebuilds the schedule for dayKey asynchronously.
func (m Model) loadDayCmd(dayKey string) tea.Cmd {
	return func() tea.Msg {
		day, err := m.callbacks.LoadDay(dayKey)
		return dayLoadedMsg{day: day, err: err}
	}
}

// shiftDay moves the view to an adjacent day.
func (m Model) shiftDay(days int) (tea.Model, tea.Cmd) {
	current, err := schedule.ParseDayKey(m.dayKey)
	if err != nil {
		m.err = err
		return m, nil
	}
	m.dayKey = schedule.DayKeyOf(current.AddDate(0, 0, days))
	return m, m.loadDayCmd(m.dayKey)
}

// selectedTask returns the task under the cursor, or nil for an empty day.
func (m Model) selectedTask() *domain.Task {
	if m.cursor < 0 || m.cursor >= len(m.blocks) {
		return nil
	}
	return m.blocks[m.cursor].Task
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.editing {
		return m.updateEditInput(msg)
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case dayLoadedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.err = nil
		m.day = msg.day
		m.dayKey = msg.day.DayKey
		m.blocks = msg.day.Blocks()
		if m.cursor >= len(m.blocks) {
			m.cursor = len(m.blocks) - 1
		}
		if m.cursor < 0 {
			m.cursor = 0
		}
		return m, nil

	case intentMsg:
		return m.handleIntent(msg)

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.taps.Close()
			return m, tea.Quit
		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(m.blocks)-1 {
				m.cursor++
			}
		case key.Matches(msg, m.keys.PrevDay):
			return m.shiftDay(-1)
		case key.Matches(msg, m.keys.NextDay):
			return m.shiftDay(1)
		case key.Matches(msg, m.keys.Reload):
			return m, m.loadDayCmd(m.dayKey)
		case key.Matches(msg, m.keys.Tap):
			if task := m.selectedTask(); task != nil {
				m.taps.Tap(task.ID)
			}
		}
	}

	return m, nil
}

// handleIntent applies a resolved gesture and re-subscribes to the stream.
func (m Model) handleIntent(msg intentMsg) (tea.Model, tea.Cmd) {
	switch msg.kind {
	case intentToggle:
		if m.callbacks.ToggleTask != nil {
			if err := m.callbacks.ToggleTask(msg.taskID); err != nil {
				m.err = err
				return m, waitForIntent(m.intents)
			}
			m.status = "toggled"
			return m, tea.Batch(m.loadDayCmd(m.dayKey), waitForIntent(m.intents))
		}

	case intentEdit:
		if m.callbacks.RenameTask != nil {
			title := ""
			for _, block := range m.blocks {
				if block.TaskID == msg.taskID {
					title = block.Task.Title
					break
				}
			}
			m.editing = true
			m.editTaskID = msg.taskID
			m.editInput.SetValue(title)
			m.editInput.CursorEnd()
			m.editInput.Focus()
			return m, tea.Batch(m.editInput.Cursor.BlinkCmd(), waitForIntent(m.intents))
		}
	}

	return m, waitForIntent(m.intents)
}

// updateEditInput handles keys while the rename input is open.
func (m Model) updateEditInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		m.editInput, cmd = m.editInput.Update(msg)
		return m, cmd
	}

	switch keyMsg.String() {
	case "esc":
		m.editing = false
		m.editInput.Blur()
		return m, nil
	case "enter":
		title := m.editInput.Value()
		taskID := m.editTaskID
		m.editing = false
		m.editInput.Blur()
		if title == "" {
			m.status = "title unchanged"
			return m, nil
		}
		if err := m.callbacks.RenameTask(taskID, title); err != nil {
			m.err = err
			return m, nil
		}
		m.status = fmt.Sprintf("renamed to %q", title)
		return m, m.loadDayCmd(m.dayKey)
	case "ctrl+c":
		m.taps.Close()
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.editInput, cmd = m.editInput.Update(msg)
	return m, cmd
}

// Run starts the interactive day view and blocks until the user quits.
func Run(m Model) error {
	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run day view: %w", err)
	}
	return nil
}
