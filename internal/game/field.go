package game

import (
	"fmt"

	"github.com/vovakirdan/tui-dino/internal/config"
	"github.com/vovakirdan/tui-dino/internal/core"
)

// Field owns the live obstacles, ordered oldest to newest.
type Field struct {
	obstacles []Obstacle
	gen       *Generator
	cfg       config.FieldConfig
}

// NewField creates an empty field that spawns through gen.
func NewField(gen *Generator, cfg config.FieldConfig) *Field {
	return &Field{
		obstacles: make([]Obstacle, 0, 8),
		gen:       gen,
		cfg:       cfg,
	}
}

// Reset replaces the field with a single obstacle spawned at spawnX with no score.
func (f *Field) Reset(spawnX int) {
	f.obstacles = append(f.obstacles[:0], f.gen.Spawn(spawnX, 0))
}

// Len returns the number of live obstacles.
func (f *Field) Len() int {
	return len(f.obstacles)
}

// Obstacles returns a copy of the live obstacles.
func (f *Field) Obstacles() []Obstacle {
	out := make([]Obstacle, len(f.obstacles))
	copy(out, f.obstacles)
	return out
}

// Newest returns the most recently spawned obstacle.
// Calling it on an empty field is a defect.
func (f *Field) Newest() Obstacle {
	if len(f.obstacles) == 0 {
		panic("game: obstacle field is empty")
	}
	return f.obstacles[len(f.obstacles)-1]
}

// Advance moves every obstacle and returns their draw commands.
// All obstacles are moved and drawn before any collision or removal happens.
func (f *Field) Advance(actorX int, bg core.Color) []CellCmd {
	cells := make([]CellCmd, 0, len(f.obstacles))
	for i := range f.obstacles {
		o := &f.obstacles[i]
		o.step()
		cells = append(cells, CellCmd{
			X:     o.ScreenColumn(actorX),
			Y:     o.Y,
			Fg:    o.Tone.Color(),
			Bg:    bg,
			Glyph: o.Glyph.Rune(),
		})
	}
	return cells
}

// Collides reports whether any obstacle sits exactly on the actor.
// Only exact alignment on this tick counts; fast obstacles can step over the player.
func (f *Field) Collides(a Actor, playerColumn int) bool {
	hit := false
	for _, o := range f.obstacles {
		if a.X == o.X-playerColumn && a.Y == o.Y {
			hit = true
		}
	}
	return hit
}

// Retire removes obstacles that fell retire_distance columns behind the actor
// and returns how many were removed.
func (f *Field) Retire(actorX int) int {
	kept, retired := Partition(f.obstacles, actorX-f.cfg.RetireDistance)
	f.obstacles = kept
	return len(retired)
}

// Partition splits obstacles into those ahead of cutoff and those at or behind it.
// Relative order is preserved in both slices.
func Partition(obstacles []Obstacle, cutoff int) (kept, retired []Obstacle) {
	kept = make([]Obstacle, 0, len(obstacles))
	for _, o := range obstacles {
		if o.X > cutoff {
			kept = append(kept, o)
		} else {
			retired = append(retired, o)
		}
	}
	return kept, retired
}

// Replenish spawns one obstacle a screen width ahead of the actor when the newest
// obstacle has come within the lookahead distance. It reports whether it spawned.
func (f *Field) Replenish(actorX, score int) bool {
	if len(f.obstacles) == 0 {
		panic(fmt.Sprintf("game: obstacle field ran dry at actor column %d", actorX))
	}
	if float64(f.Newest().X-actorX) >= f.cfg.LookaheadColumns() {
		return false
	}
	f.obstacles = append(f.obstacles, f.gen.Spawn(actorX+f.cfg.Width, score))
	return true
}
