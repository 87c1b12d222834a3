package game

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/tui-dino/internal/core"
)

func newTestField(obstacles ...Obstacle) *Field {
	cfg := testConfig()
	f := NewField(NewGenerator(rand.New(rand.NewSource(3)), cfg), cfg.Field)
	f.obstacles = append(f.obstacles, obstacles...)
	return f
}

func TestFieldRetireBoundary(t *testing.T) {
	f := newTestField(
		Obstacle{X: 5},  // actor.X - 5: retired
		Obstacle{X: 6},  // actor.X - 4: kept
		Obstacle{X: -3}, // far behind: retired
		Obstacle{X: 90},
	)

	retired := f.Retire(10)
	if retired != 2 {
		t.Errorf("Retire = %d, expected 2", retired)
	}
	got := f.Obstacles()
	if len(got) != 2 || got[0].X != 6 || got[1].X != 90 {
		t.Errorf("kept obstacles = %+v, expected X=6 then X=90", got)
	}
}

func TestPartitionPreservesOrder(t *testing.T) {
	in := []Obstacle{{X: 1}, {X: 20}, {X: 2}, {X: 30}}
	kept, retired := Partition(in, 5)

	if len(kept) != 2 || kept[0].X != 20 || kept[1].X != 30 {
		t.Errorf("kept = %+v", kept)
	}
	if len(retired) != 2 || retired[0].X != 1 || retired[1].X != 2 {
		t.Errorf("retired = %+v", retired)
	}
	if in[0].X != 1 || in[1].X != 20 {
		t.Error("Partition must not modify its input")
	}
}

func TestFieldReplenish(t *testing.T) {
	tests := []struct {
		name    string
		newestX int
		spawn   bool
	}{
		{"well inside lookahead", 30, true},
		{"just inside lookahead", 10 + 71, true},
		{"exactly at lookahead", 10 + 72, false},
		{"beyond lookahead", 200, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newTestField(Obstacle{X: 500}, Obstacle{X: tt.newestX})
			spawned := f.Replenish(10, 0)
			if spawned != tt.spawn {
				t.Errorf("Replenish = %v, expected %v", spawned, tt.spawn)
			}
			wantLen := 2
			if tt.spawn {
				wantLen = 3
				// New obstacle lands a screen width ahead of the actor plus an offset
				if x := f.Newest().X; x < 90 || x >= 130 {
					t.Errorf("spawned at X=%d, expected in [90, 130)", x)
				}
			}
			if f.Len() != wantLen {
				t.Errorf("Len = %d, expected %d", f.Len(), wantLen)
			}
		})
	}
}

func TestFieldReplenishEmptyPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic when the field is empty")
		}
	}()
	f := newTestField()
	f.Replenish(10, 0)
}

func TestFieldCollision(t *testing.T) {
	a := NewActor(testConfig())
	a.X, a.Y = 10, 40

	tests := []struct {
		name string
		o    Obstacle
		hit  bool
	}{
		{"aligned", Obstacle{X: 20, Y: 40}, true},
		{"one column early", Obstacle{X: 21, Y: 40}, false},
		{"one column late", Obstacle{X: 19, Y: 40}, false},
		{"different row", Obstacle{X: 20, Y: 38}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newTestField(Obstacle{X: 300, Y: 40}, tt.o)
			if got := f.Collides(a, 10); got != tt.hit {
				t.Errorf("Collides = %v, expected %v", got, tt.hit)
			}
		})
	}
}

func TestFieldAdvanceMovesAndDrawsAll(t *testing.T) {
	f := newTestField(
		Obstacle{X: 50, Y: 40, Velocity: 0, Glyph: GlyphLow, Tone: ToneSafe},
		Obstacle{X: 60, Y: 36, Velocity: 3.5, Glyph: GlyphTall, Tone: ToneHazard},
	)

	cells := f.Advance(10, core.ColorGray)
	if len(cells) != 2 {
		t.Fatalf("Advance drew %d cells, expected 2", len(cells))
	}

	if cells[0].X != 40 || cells[0].Y != 40 || cells[0].Glyph != 'f' || cells[0].Fg != core.ColorGreen {
		t.Errorf("low obstacle cell = %+v", cells[0])
	}
	if cells[1].X != 47 || cells[1].Y != 36 || cells[1].Glyph != '{' || cells[1].Fg != core.ColorRed {
		t.Errorf("tall obstacle cell = %+v", cells[1])
	}
	for _, c := range cells {
		if c.Bg != core.ColorGray {
			t.Errorf("cell background = %v, expected the sky color", c.Bg)
		}
	}
	if f.Obstacles()[1].X != 57 {
		t.Errorf("world X = %d, expected 57", f.Obstacles()[1].X)
	}
}

func TestFieldReset(t *testing.T) {
	f := newTestField(Obstacle{X: 1}, Obstacle{X: 2}, Obstacle{X: 3})
	f.Reset(80)
	if f.Len() != 1 {
		t.Fatalf("Len = %d after Reset, expected 1", f.Len())
	}
	if x := f.Newest().X; x < 80 || x >= 120 {
		t.Errorf("reset obstacle at X=%d, expected in [80, 120)", x)
	}
}
