package game

import (
	"math"

	"github.com/vovakirdan/tui-dino/internal/config"
	"github.com/vovakirdan/tui-dino/internal/core"
)

// Glyph is the obstacle's shape class.
type Glyph int

const (
	GlyphTall Glyph = iota // Elevated, moving obstacle
	GlyphLow               // Ground-level, stationary obstacle
)

// Rune returns the character drawn for the glyph.
func (g Glyph) Rune() rune {
	if g == GlyphTall {
		return '{'
	}
	return 'f'
}

// Tone is the obstacle's color class.
type Tone int

const (
	ToneHazard Tone = iota
	ToneSafe
)

// Color returns the foreground color drawn for the tone.
func (t Tone) Color() core.Color {
	if t == ToneHazard {
		return core.ColorRed
	}
	return core.ColorGreen
}

// Obstacle is a value object living in world columns.
type Obstacle struct {
	X        int     // World column
	Y        int     // Row
	Velocity float64 // Columns per tick towards the player, never negative
	Glyph    Glyph
	Tone     Tone
}

// step moves the obstacle by the whole part of its velocity.
func (o *Obstacle) step() {
	o.X -= int(math.Floor(o.Velocity))
}

// ScreenColumn maps the obstacle's world column to a screen column.
func (o Obstacle) ScreenColumn(actorX int) int {
	return o.X - actorX
}

// Rand is the randomness the generator needs. *math/rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
	Float64() float64
}

// Generator creates obstacles with randomized offset, height and speed.
type Generator struct {
	rng   Rand
	field config.FieldConfig
	spawn config.SpawnConfig
}

// NewGenerator creates a generator drawing from rng.
func NewGenerator(rng Rand, cfg config.RunnerConfig) *Generator {
	return &Generator{
		rng:   rng,
		field: cfg.Field,
		spawn: cfg.Spawn,
	}
}

// Spawn creates an obstacle somewhere in the half-width window after spawnX.
// Negative speed draws become stationary ground-level obstacles.
func (g *Generator) Spawn(spawnX, score int) Obstacle {
	offset := 0
	if w := g.field.SpawnWindow(); w > 0 {
		offset = g.rng.Intn(w)
	}

	floor := g.field.Floor
	height := floor - g.spawn.MaxRise + g.rng.Intn(g.spawn.MaxRise+1)

	lo, hi := g.spawn.MinSpeed, g.spawn.SpeedCeiling(score)
	speed := lo + g.rng.Float64()*(hi-lo)

	o := Obstacle{
		X:        spawnX + offset,
		Y:        height,
		Velocity: speed,
		Glyph:    GlyphTall,
		Tone:     ToneHazard,
	}
	if speed < 0 {
		o.Velocity = 0
		o.Y = floor
		o.Glyph = GlyphLow
		o.Tone = ToneSafe
	}
	return o
}
