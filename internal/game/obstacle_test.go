package game

import (
	"math/rand"
	"testing"
)

func TestSpawnAtZeroScoreIsAlwaysSafe(t *testing.T) {
	gen := NewGenerator(rand.New(rand.NewSource(1)), testConfig())

	for i := 0; i < 500; i++ {
		o := gen.Spawn(100, 0)
		if o.Velocity != 0 {
			t.Fatalf("spawn %d: velocity = %g, expected 0 at score 0", i, o.Velocity)
		}
		if o.Y != 40 || o.Glyph != GlyphLow || o.Tone != ToneSafe {
			t.Fatalf("spawn %d: expected low safe obstacle on the floor, got %+v", i, o)
		}
		if o.X < 100 || o.X >= 140 {
			t.Fatalf("spawn %d: X = %d, expected in [100, 140)", i, o.X)
		}
	}
}

func TestSpawnRangesAtHighScore(t *testing.T) {
	gen := NewGenerator(rand.New(rand.NewSource(2)), testConfig())

	sawHazard := false
	for i := 0; i < 1000; i++ {
		o := gen.Spawn(0, 500)
		if o.Velocity < 0 || o.Velocity > 10 {
			t.Fatalf("spawn %d: velocity %g outside [0, 10]", i, o.Velocity)
		}
		if o.Y < 35 || o.Y > 40 {
			t.Fatalf("spawn %d: row %d outside [35, 40]", i, o.Y)
		}
		switch o.Glyph {
		case GlyphTall:
			sawHazard = true
			if o.Tone != ToneHazard {
				t.Fatalf("tall obstacle should be a hazard: %+v", o)
			}
		case GlyphLow:
			if o.Velocity != 0 || o.Y != 40 || o.Tone != ToneSafe {
				t.Fatalf("low obstacle should be stationary on the floor: %+v", o)
			}
		}
	}
	if !sawHazard {
		t.Error("expected at least one hazard at score 500")
	}
}

func TestSpawnNegativeDrawForcesFloor(t *testing.T) {
	// Float64 = 0 draws the minimum speed (-1.5); Intn = 0 draws the highest row
	gen := NewGenerator(fixedRand{intn: 0, float64: 0}, testConfig())
	o := gen.Spawn(80, 500)

	if o.Velocity != 0 {
		t.Errorf("Velocity = %g, expected negative draw clamped to 0", o.Velocity)
	}
	if o.Y != 40 {
		t.Errorf("Y = %d, expected height forced to floor", o.Y)
	}
	if o.Glyph != GlyphLow || o.Tone != ToneSafe {
		t.Errorf("expected low safe obstacle, got glyph=%v tone=%v", o.Glyph, o.Tone)
	}
	if o.X != 80 {
		t.Errorf("X = %d, expected 80 with zero offset", o.X)
	}
}

func TestSpawnPositiveDrawKeepsHeight(t *testing.T) {
	gen := NewGenerator(fixedRand{intn: 2, float64: 0.5}, testConfig())
	o := gen.Spawn(80, 500)

	// -1.5 + 0.5 * (10 - -1.5) = 4.25
	if o.Velocity != 4.25 {
		t.Errorf("Velocity = %g, expected 4.25", o.Velocity)
	}
	if o.Y != 37 {
		t.Errorf("Y = %d, expected 37", o.Y)
	}
	if o.X != 82 {
		t.Errorf("X = %d, expected 82", o.X)
	}
	if o.Glyph != GlyphTall || o.Tone != ToneHazard {
		t.Errorf("expected tall hazard, got glyph=%v tone=%v", o.Glyph, o.Tone)
	}
}

func TestGlyphAndToneRendering(t *testing.T) {
	if GlyphTall.Rune() != '{' || GlyphLow.Rune() != 'f' {
		t.Error("unexpected glyph runes")
	}
	if ToneHazard.Color() == ToneSafe.Color() {
		t.Error("hazard and safe obstacles should use different colors")
	}
}

func TestObstacleStepFloorsVelocity(t *testing.T) {
	o := Obstacle{X: 100, Velocity: 2.9}
	o.step()
	if o.X != 98 {
		t.Errorf("X = %d, expected 98", o.X)
	}

	still := Obstacle{X: 100, Velocity: 0.7}
	still.step()
	if still.X != 100 {
		t.Errorf("sub-column velocity should not move, X = %d", still.X)
	}
}
