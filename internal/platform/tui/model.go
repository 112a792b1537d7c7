package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-prompter/internal/core"
	"github.com/vovakirdan/tui-prompter/internal/measure"
	"github.com/vovakirdan/tui-prompter/internal/prompter"
	"github.com/vovakirdan/tui-prompter/internal/storage"
)

// pinchStep is the magnification applied per grow/shrink key press,
// standing in for one notch of a pinch gesture.
const pinchStep = 1.1

// dragStepCols is the drag distance per arrow key press, in cells.
const dragStepCols = 2

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

// Options configures a prompter TUI run.
type Options struct {
	Store             *storage.Store // may be nil; saving is then disabled
	Settings          core.Settings
	Session           prompter.SessionConfig
	ScriptName        string
	Text              string
	StartPresenting   bool
	FollowOrientation bool // landscape/portrait window shape drives entry/exit
	Width             int
	Height            int
}

// Model is the Bubble Tea model hosting one prompter session: a script
// editor while idle, the presentation surface while presenting.
type Model struct {
	session *prompter.Session
	sched   *prompter.ManualScheduler
	solver  *prompter.Solver
	screen  *core.Screen
	store   *storage.Store
	keymap  *KeyMapper
	editor  textarea.Model

	scriptName        string
	followOrientation bool
	width             int
	height            int
	status            string
	statusIsError     bool
	quitting          bool
}

// NewModel creates a model for the given options.
func NewModel(opts Options) Model {
	sched := prompter.NewManualScheduler()
	session := prompter.NewSession(measure.NewCellMeasurer(), sched, opts.Session)
	session.ApplySettings(opts.Settings)
	session.SetText(opts.Text)

	ta := textarea.New()
	ta.Placeholder = "Write your script here..."
	ta.SetValue(opts.Text)
	ta.Focus()

	m := Model{
		session:           session,
		sched:             sched,
		solver:            prompter.NewSolver(measure.NewCellMeasurer(), opts.Session.Solver),
		screen:            core.NewScreen(core.Max(opts.Width, 1), core.Max(opts.Height, 1)),
		store:             opts.Store,
		keymap:            NewKeyMapper(),
		editor:            ta,
		scriptName:        opts.ScriptName,
		followOrientation: opts.FollowOrientation,
		width:             opts.Width,
		height:            opts.Height,
	}
	m.layoutEditor()

	session.SetViewport(viewportUnits(opts.Width, opts.Height))
	if opts.StartPresenting {
		session.EnterPresentation()
	}
	return m
}

// Init starts the frame tick and the editor cursor blink.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textarea.Blink, tickCmd(prompter.TickInterval))
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		// The session owns no real clock; every frame advances its
		// scheduler by one tick interval.
		m.sched.Advance(prompter.TickInterval)
		return m, tickCmd(prompter.TickInterval)
	}

	return m, nil
}

// handleKey routes input to the presentation surface or the editor.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.session.Phase().Presenting() {
		return m.handlePresentationKey(msg)
	}
	return m.handleEditorKey(msg)
}

func (m Model) handlePresentationKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, isQuit := m.keymap.MapPresentationKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	st := m.session.Settings()

	switch action {
	case ActionClose:
		m.session.LeavePresentation()
	case ActionGrow:
		m.pinch(pinchStep)
	case ActionShrink:
		m.pinch(1 / pinchStep)
	case ActionMoveLeft:
		m.drag(-dragStepCols*unitsPerCol, 0)
	case ActionMoveRight:
		m.drag(dragStepCols*unitsPerCol, 0)
	case ActionMoveUp:
		m.drag(0, -unitsPerRow)
	case ActionMoveDown:
		m.drag(0, unitsPerRow)
	case ActionToggleScroll:
		m.session.SetScrollingEnabled(!st.ScrollingEnabled)
	case ActionSpeedHalf:
		m.session.SetScrollSpeed(0.5)
	case ActionSpeedNormal:
		m.session.SetScrollSpeed(1.0)
	case ActionSpeedDouble:
		m.session.SetScrollSpeed(2.0)
	case ActionSpacingTight:
		m.session.SetSpacing(core.SpacingTight)
	case ActionSpacingWide:
		m.session.SetSpacing(core.SpacingWide)
	}

	return m, nil
}

func (m Model) handleEditorKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, isQuit := m.keymap.MapEditorKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	switch action {
	case ActionPresent:
		m.session.SetText(m.editor.Value())
		m.session.EnterPresentation()
		return m, nil
	case ActionSave:
		m.saveScript()
		return m, nil
	case ActionGrow:
		m.pinch(pinchStep)
		return m, nil
	case ActionShrink:
		m.pinch(1 / pinchStep)
		return m, nil
	}

	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	m.session.SetText(m.editor.Value())
	return m, cmd
}

// handleResize processes window resize events. The new shape feeds the
// session viewport; when orientation control is on, flipping the window
// to a presentation shape enters full screen through the same state
// machine path as the explicit key.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	m.layoutEditor()

	m.session.SetViewport(viewportUnits(msg.Width, msg.Height))
	if m.followOrientation {
		m.session.HandleOrientation(classifyOrientation(msg.Width, msg.Height))
	}

	return m, nil
}

func (m *Model) layoutEditor() {
	w := core.Max(m.width-4, 20)
	h := core.Max(m.height-6, 3)
	m.editor.SetWidth(w)
	m.editor.SetHeight(h)
}

// pinch emulates one pinch notch as a begin/changed/ended gesture burst.
func (m Model) pinch(scale float64) {
	m.session.HandleGesture(core.MagnifyGesture(core.GestureBegin, 1.0))
	m.session.HandleGesture(core.MagnifyGesture(core.GestureChanged, scale))
	m.session.HandleGesture(core.Gesture{Phase: core.GestureEnded})
}

// drag emulates one drag step, in layout units.
func (m Model) drag(dx, dy float64) {
	m.session.HandleGesture(core.DragGesture(core.GestureBegin, 0, 0))
	m.session.HandleGesture(core.DragGesture(core.GestureChanged, dx, dy))
	m.session.HandleGesture(core.Gesture{Phase: core.GestureEnded})
}

func (m *Model) saveScript() {
	if m.store == nil {
		m.status = "no script store available"
		m.statusIsError = true
		return
	}
	name := m.scriptName
	if name == "" {
		name = "untitled"
	}
	if _, err := m.store.SaveScript(name, m.editor.Value()); err != nil {
		m.status = fmt.Sprintf("save failed: %v", err)
		m.statusIsError = true
		return
	}
	m.status = fmt.Sprintf("saved %q", name)
	m.statusIsError = false
}

// View renders the current state.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.session.Phase().Presenting() {
		snap := m.session.Snapshot()
		ComposePresentation(snap, m.screen)
		return styleRows(snap, m.screen)
	}

	return m.editorView()
}

func (m Model) editorView() string {
	name := m.scriptName
	if name == "" {
		name = "untitled"
	}
	title := titleStyle.Render("prompt · " + name)

	st := m.session.Settings()
	preview := m.solver.Solve(m.editor.Value(), viewportUnits(m.width, m.height), st.ScrollingEnabled)

	parts := []string{
		fmt.Sprintf("preview %.0f pt", preview),
		fmt.Sprintf("speed x%.1f", st.ScrollSpeed),
		"spacing " + st.Spacing.String(),
	}
	if !st.AutoResize {
		parts[0] = fmt.Sprintf("manual %.0f pt", st.BaseFontSize)
	}
	if st.CountdownEnabled {
		parts = append(parts, fmt.Sprintf("countdown %ds", st.CountdownSeconds))
	}
	info := statusStyle.Render(strings.Join(parts, " · "))

	status := statusStyle.Render("ctrl+f present · ctrl+s save · ctrl+c quit")
	if m.status != "" {
		if m.statusIsError {
			status = errorStyle.Render(m.status)
		} else {
			status = statusStyle.Render(m.status)
		}
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		info,
		"",
		m.editor.View(),
		"",
		status,
	)
}

// Run starts the Bubble Tea program for the given options.
func Run(opts Options) error {
	model := NewModel(opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
