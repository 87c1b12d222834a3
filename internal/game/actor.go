package game

import "github.com/vovakirdan/tui-dino/internal/config"

// Actor is the player character. X is its world column and grows by one per
// physics step; Y is its row, where larger values are lower on screen.
type Actor struct {
	X        int
	Y        int
	Velocity int

	floor   int
	maxFall int
	jumpVel int
}

// NewActor places a fresh actor on the floor at the player column.
func NewActor(cfg config.RunnerConfig) Actor {
	return Actor{
		X:       cfg.Field.PlayerColumn,
		Y:       cfg.Field.Floor,
		floor:   cfg.Field.Floor,
		maxFall: cfg.Physics.MaxFallSpeed,
		jumpVel: cfg.Physics.JumpVelocity,
	}
}

// Advance runs one physics step: gravity, vertical and horizontal motion, landing.
func (a *Actor) Advance() {
	if a.Velocity < a.maxFall && a.Y < a.floor {
		a.Velocity++
	}
	a.Y += a.Velocity
	a.X++
	if a.Y > a.floor {
		a.Y = a.floor
		a.Velocity = 0
	}
}

// Jump applies the upward impulse. Callers only jump while OnFloor.
func (a *Actor) Jump() {
	a.Velocity = a.jumpVel
}

// OnFloor reports whether the actor stands on the ground row.
func (a Actor) OnFloor() bool {
	return a.Y == a.floor
}
