package core

// Action represents a semantic key event, abstracted from physical key presses.
// Surfaces deliver at most one Action per tick; ActionNone means no key was pressed.
type Action int

const (
	ActionNone    Action = iota
	ActionPause          // P - pause while playing, start otherwise
	ActionJump           // Space - primary jump, start otherwise
	ActionJumpAlt        // Up arrow - secondary jump
	ActionQuit           // Q - primary quit
	ActionQuitAlt        // Esc, C, Ctrl+C - secondary quit
	ActionRestart        // R, Enter - start or restart a run
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionPause:
		return "Pause"
	case ActionJump:
		return "Jump"
	case ActionJumpAlt:
		return "JumpAlt"
	case ActionQuit:
		return "Quit"
	case ActionQuitAlt:
		return "QuitAlt"
	case ActionRestart:
		return "Restart"
	default:
		return "Unknown"
	}
}

// IsJump reports whether a is either jump binding.
func (a Action) IsJump() bool {
	return a == ActionJump || a == ActionJumpAlt
}

// IsQuit reports whether a is either quit binding.
func (a Action) IsQuit() bool {
	return a == ActionQuit || a == ActionQuitAlt
}

// InputQueue buffers actions between ticks so that at most one is consumed per tick
// and none are dropped when keys arrive faster than the tick rate.
type InputQueue struct {
	pending []Action
	limit   int
}

// NewInputQueue creates a queue holding at most limit pending actions.
// Older actions are discarded once the limit is reached.
func NewInputQueue(limit int) *InputQueue {
	if limit <= 0 {
		limit = 8
	}
	return &InputQueue{
		pending: make([]Action, 0, limit),
		limit:   limit,
	}
}

// Push enqueues an action. ActionNone is ignored.
func (q *InputQueue) Push(a Action) {
	if a == ActionNone {
		return
	}
	if len(q.pending) == q.limit {
		copy(q.pending, q.pending[1:])
		q.pending = q.pending[:len(q.pending)-1]
	}
	q.pending = append(q.pending, a)
}

// Pop returns the oldest pending action, or ActionNone if the queue is empty.
func (q *InputQueue) Pop() Action {
	if len(q.pending) == 0 {
		return ActionNone
	}
	a := q.pending[0]
	copy(q.pending, q.pending[1:])
	q.pending = q.pending[:len(q.pending)-1]
	return a
}

// Len returns the number of pending actions.
func (q *InputQueue) Len() int {
	return len(q.pending)
}

// Clear drops all pending actions.
func (q *InputQueue) Clear() {
	q.pending = q.pending[:0]
}
