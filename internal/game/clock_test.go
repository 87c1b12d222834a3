package game

import "testing"

func TestClockCarriesSurplus(t *testing.T) {
	c := NewClock(35)

	if c.Advance(20) {
		t.Error("first 20ms should not step")
	}
	if !c.Advance(20) {
		t.Error("second 20ms should step")
	}
	if c.Accumulated() != 5 {
		t.Errorf("Accumulated() = %g, expected 5", c.Accumulated())
	}
	if c.Steps() != 1 {
		t.Errorf("Steps() = %d, expected 1", c.Steps())
	}
}

func TestClockStepsAtThreshold(t *testing.T) {
	c := NewClock(35)
	c.Advance(20)
	if !c.Advance(15) {
		t.Error("reaching exactly 35ms should step")
	}
	if c.Accumulated() != 0 {
		t.Errorf("Accumulated() = %g, expected 0", c.Accumulated())
	}
}

func TestClockAtMostOneStepPerTick(t *testing.T) {
	c := NewClock(35)
	if !c.Advance(100) {
		t.Fatal("100ms should step")
	}
	if c.Steps() != 1 {
		t.Errorf("Steps() = %d after one long tick, expected 1", c.Steps())
	}
	if c.Accumulated() != 65 {
		t.Errorf("Accumulated() = %g, expected 65", c.Accumulated())
	}
	// 65ms carried covers exactly one more step, for floor(100/35) = 2 in total
	if !c.Advance(0) {
		t.Error("carried surplus should produce a step on the next tick")
	}
	if c.Advance(0) {
		t.Error("30ms left over should not produce a third step")
	}
	if c.Steps() != 2 {
		t.Errorf("Steps() = %d, expected 2", c.Steps())
	}
	if c.Accumulated() != 30 {
		t.Errorf("Accumulated() = %g, expected 30", c.Accumulated())
	}
}

func TestClockStepCountMatchesElapsed(t *testing.T) {
	tests := []struct {
		name   string
		deltas []float64
	}{
		{"steady 16ms", repeat(16, 100)},
		{"jittery", []float64{10, 34, 1, 20, 20, 33, 7, 12, 30, 5, 25, 34, 34}},
		{"just under", repeat(34, 50)},
		{"exact", repeat(17.5, 40)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewClock(35)
			steps := 0
			sum := 0.0
			for _, d := range tt.deltas {
				sum += d
				if c.Advance(d) {
					steps++
				}
			}
			expected := int(sum / 35)
			if steps != expected {
				t.Errorf("steps = %d for %gms total, expected %d", steps, sum, expected)
			}
		})
	}
}

func TestClockIgnoresNegativeElapsed(t *testing.T) {
	c := NewClock(35)
	c.Advance(-100)
	if c.Accumulated() != 0 {
		t.Errorf("Accumulated() = %g, expected 0", c.Accumulated())
	}
}

func TestClockReset(t *testing.T) {
	c := NewClock(35)
	c.Advance(50)
	c.Reset()
	if c.Accumulated() != 0 || c.Steps() != 0 {
		t.Errorf("after Reset: accumulated=%g steps=%d", c.Accumulated(), c.Steps())
	}
}

func repeat(v float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = v
	}
	return out
}
