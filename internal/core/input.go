package core

// Action represents a semantic demo action, abstracted from physical key presses.
// This allows demos to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone     Action = iota
	ActionUp              // W, Up arrow
	ActionDown            // S, Down arrow
	ActionLeft            // A, Left arrow
	ActionRight           // D, Right arrow
	ActionJump            // Space - primary action (jump, spawn batch)
	ActionAdd             // + or = - add an entity
	ActionRemove          // - - remove an entity
	ActionSlot1           // 1
	ActionSlot2           // 2
	ActionSlot3           // 3
	ActionAltSlot1        // ! (shift+1)
	ActionAltSlot2        // @ (shift+2)
	ActionAltSlot3        // # (shift+3)
	ActionClear           // C - clear the scene
	ActionLoad            // L - force a pending load
	ActionConfirm         // Enter - confirm selection in menu
	ActionBack            // B, Escape - go back to menu
	ActionQuit            // Q, Ctrl+C - exit demo/session
	ActionPause           // P - pause/unpause
)

var actionNames = map[Action]string{
	ActionNone:     "None",
	ActionUp:       "Up",
	ActionDown:     "Down",
	ActionLeft:     "Left",
	ActionRight:    "Right",
	ActionJump:     "Jump",
	ActionAdd:      "Add",
	ActionRemove:   "Remove",
	ActionSlot1:    "Slot1",
	ActionSlot2:    "Slot2",
	ActionSlot3:    "Slot3",
	ActionAltSlot1: "AltSlot1",
	ActionAltSlot2: "AltSlot2",
	ActionAltSlot3: "AltSlot3",
	ActionClear:    "Clear",
	ActionLoad:     "Load",
	ActionConfirm:  "Confirm",
	ActionBack:     "Back",
	ActionQuit:     "Quit",
	ActionPause:    "Pause",
}

// String returns a human-readable name for the action.
func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "Unknown"
}

// InputFrame represents the input state during one simulation tick.
// It contains all actions that were triggered during this frame.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Direction returns the unit-less (dx, dy) steer encoded by the arrow actions.
func (f InputFrame) Direction() (dx, dy float64) {
	if f.Has(ActionLeft) {
		dx--
	}
	if f.Has(ActionRight) {
		dx++
	}
	if f.Has(ActionUp) {
		dy--
	}
	if f.Has(ActionDown) {
		dy++
	}
	return dx, dy
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	return clone
}
