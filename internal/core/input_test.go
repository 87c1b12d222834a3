package core

import "testing"

func TestActionClassification(t *testing.T) {
	tests := []struct {
		action Action
		jump   bool
		quit   bool
	}{
		{ActionNone, false, false},
		{ActionJump, true, false},
		{ActionJumpAlt, true, false},
		{ActionQuit, false, true},
		{ActionQuitAlt, false, true},
		{ActionPause, false, false},
		{ActionRestart, false, false},
	}

	for _, tt := range tests {
		if got := tt.action.IsJump(); got != tt.jump {
			t.Errorf("%s.IsJump() = %v, expected %v", tt.action, got, tt.jump)
		}
		if got := tt.action.IsQuit(); got != tt.quit {
			t.Errorf("%s.IsQuit() = %v, expected %v", tt.action, got, tt.quit)
		}
	}
}

func TestInputQueueOrder(t *testing.T) {
	q := NewInputQueue(4)
	q.Push(ActionJump)
	q.Push(ActionNone) // ignored
	q.Push(ActionPause)

	if q.Len() != 2 {
		t.Fatalf("Len() = %d, expected 2", q.Len())
	}
	if a := q.Pop(); a != ActionJump {
		t.Errorf("first Pop() = %s, expected Jump", a)
	}
	if a := q.Pop(); a != ActionPause {
		t.Errorf("second Pop() = %s, expected Pause", a)
	}
	if a := q.Pop(); a != ActionNone {
		t.Errorf("Pop() on empty queue = %s, expected None", a)
	}
}

func TestInputQueueDropsOldest(t *testing.T) {
	q := NewInputQueue(2)
	q.Push(ActionJump)
	q.Push(ActionJumpAlt)
	q.Push(ActionQuit)

	if q.Len() != 2 {
		t.Fatalf("Len() = %d, expected 2", q.Len())
	}
	if a := q.Pop(); a != ActionJumpAlt {
		t.Errorf("Pop() = %s, expected JumpAlt after overflow", a)
	}

	q.Clear()
	if q.Len() != 0 {
		t.Error("Clear should empty the queue")
	}
}

func TestColorCodes(t *testing.T) {
	if ColorDefault.Code() != -1 {
		t.Errorf("ColorDefault.Code() = %d, expected -1", ColorDefault.Code())
	}
	if ColorOrange.Code() != 208 {
		t.Errorf("ColorOrange.Code() = %d, expected 208", ColorOrange.Code())
	}
	if Color(200).Code() != -1 {
		t.Error("unknown colors should map to the terminal default")
	}
}
