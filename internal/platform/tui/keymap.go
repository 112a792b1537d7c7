package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Action represents a semantic prompter action, abstracted from
// physical key presses. The model turns size and move actions into
// gesture events for the session's manual override layer.
type Action int

const (
	ActionNone Action = iota
	ActionPresent
	ActionClose
	ActionGrow
	ActionShrink
	ActionMoveLeft
	ActionMoveRight
	ActionMoveUp
	ActionMoveDown
	ActionToggleScroll
	ActionSpeedHalf
	ActionSpeedNormal
	ActionSpeedDouble
	ActionSpacingTight
	ActionSpacingWide
	ActionSave
	ActionQuit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionPresent:
		return "Present"
	case ActionClose:
		return "Close"
	case ActionGrow:
		return "Grow"
	case ActionShrink:
		return "Shrink"
	case ActionMoveLeft:
		return "MoveLeft"
	case ActionMoveRight:
		return "MoveRight"
	case ActionMoveUp:
		return "MoveUp"
	case ActionMoveDown:
		return "MoveDown"
	case ActionToggleScroll:
		return "ToggleScroll"
	case ActionSpeedHalf:
		return "SpeedHalf"
	case ActionSpeedNormal:
		return "SpeedNormal"
	case ActionSpeedDouble:
		return "SpeedDouble"
	case ActionSpacingTight:
		return "SpacingTight"
	case ActionSpacingWide:
		return "SpacingWide"
	case ActionSave:
		return "Save"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// KeyMapper translates Bubble Tea key messages to prompter actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapPresentationKey translates a key message while presenting.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapPresentationKey(msg tea.KeyMsg) (action Action, isQuit bool) {
	switch msg.String() {
	case "ctrl+c", "q":
		return ActionQuit, true
	case "esc":
		return ActionClose, false
	case "+", "=":
		return ActionGrow, false
	case "-", "_":
		return ActionShrink, false
	case "left", "h":
		return ActionMoveLeft, false
	case "right", "l":
		return ActionMoveRight, false
	case "up", "k":
		return ActionMoveUp, false
	case "down", "j":
		return ActionMoveDown, false
	case "tab", " ":
		return ActionToggleScroll, false
	case "1":
		return ActionSpeedHalf, false
	case "2":
		return ActionSpeedNormal, false
	case "3":
		return ActionSpeedDouble, false
	case "t":
		return ActionSpacingTight, false
	case "w":
		return ActionSpacingWide, false
	}
	return ActionNone, false
}

// MapEditorKey translates a key message in the editor.
// Only chrome-level bindings are mapped; everything else goes to the
// textarea.
func (km *KeyMapper) MapEditorKey(msg tea.KeyMsg) (action Action, isQuit bool) {
	switch msg.String() {
	case "ctrl+c":
		return ActionQuit, true
	case "ctrl+f":
		return ActionPresent, false
	case "ctrl+s":
		return ActionSave, false
	case "ctrl+up":
		return ActionGrow, false
	case "ctrl+down":
		return ActionShrink, false
	}
	return ActionNone, false
}
