package core

// Action represents a semantic game action, abstracted from physical key
// presses and pointer gestures.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // W, K, Up arrow, swipe up
	ActionDown           // S, J, Down arrow, swipe down
	ActionLeft           // A, H, Left arrow, swipe left
	ActionRight          // D, L, Right arrow, swipe right
	ActionConfirm        // Enter - confirm selection in menu
	ActionBack           // B, Escape - go back to menu
	ActionRestart        // R key - restart game after game over
	ActionQuit           // Q, Ctrl+C - exit game/session
	ActionPause          // P - pause/unpause game
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	default:
		return "Unknown"
	}
}

// IsMove reports whether the action is one of the four move directions.
func (a Action) IsMove() bool {
	return a >= ActionUp && a <= ActionRight
}

// InputFrame is the set of actions triggered during one simulation step.
// The zero value is an empty frame.
type InputFrame uint32

// NewInputFrame returns an empty frame.
func NewInputFrame() InputFrame {
	return 0
}

// Set marks an action as triggered.
func (f *InputFrame) Set(a Action) {
	*f |= 1 << uint(a)
}

// Has reports whether the action was triggered.
func (f InputFrame) Has(a Action) bool {
	return f&(1<<uint(a)) != 0
}

// Clear empties the frame for the next step.
func (f *InputFrame) Clear() {
	*f = 0
}

// DefaultSwipeThreshold is the minimum travel, in pixels, for a pointer
// gesture to count as a swipe.
const DefaultSwipeThreshold = 50

// ClassifySwipe turns a pointer displacement into a move action.
// The dominant axis wins; ties count as vertical. Gestures whose dominant
// component does not exceed threshold are ignored (ok is false).
// Positive dy points down, as in screen coordinates.
func ClassifySwipe(dx, dy, threshold int) (action Action, ok bool) {
	if threshold < 0 {
		threshold = 0
	}

	ax, ay := abs(dx), abs(dy)
	if ax > ay {
		if ax <= threshold {
			return ActionNone, false
		}
		if dx > 0 {
			return ActionRight, true
		}
		return ActionLeft, true
	}

	if ay <= threshold {
		return ActionNone, false
	}
	if dy > 0 {
		return ActionDown, true
	}
	return ActionUp, true
}

// Swipe tracks a pointer press and classifies it on release.
type Swipe struct {
	Threshold int

	active         bool
	startX, startY int
}

// Begin records the pointer-down position.
func (s *Swipe) Begin(x, y int) {
	s.active = true
	s.startX = x
	s.startY = y
}

// Active reports whether a gesture is in progress.
func (s *Swipe) Active() bool {
	return s.active
}

// End completes the gesture at the pointer-up position and classifies it.
// Returns ok=false if no gesture was started or the travel was too short.
func (s *Swipe) End(x, y int) (Action, bool) {
	if !s.active {
		return ActionNone, false
	}
	s.active = false
	return ClassifySwipe(x-s.startX, y-s.startY, s.Threshold)
}

// Cancel abandons the current gesture.
func (s *Swipe) Cancel() {
	s.active = false
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
