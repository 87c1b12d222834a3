// Package sim runs headless sessions driven by a simple autopilot.
// Runs are deterministic for a given seed and tick length.
package sim

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/charmbracelet/log"
	"github.com/guptarohit/asciigraph"

	"github.com/vovakirdan/tui-dino/internal/config"
	"github.com/vovakirdan/tui-dino/internal/core"
	"github.com/vovakirdan/tui-dino/internal/game"
)

// Autopilot jumps when an obstacle on the actor's row is within Reach columns ahead.
type Autopilot struct {
	Reach int
}

// Decide picks the key to press this tick.
func (p Autopilot) Decide(s *game.Session) core.Action {
	if s.Mode != game.ModePlaying || !s.Actor.OnFloor() {
		return core.ActionNone
	}
	col := s.Config().Field.PlayerColumn
	for _, o := range s.Field.Obstacles() {
		gap := o.X - col - s.Actor.X
		if o.Y == s.Actor.Y && gap > 0 && gap <= p.Reach {
			return core.ActionJump
		}
	}
	return core.ActionNone
}

// Options controls a batch of runs.
type Options struct {
	Runs       int
	MaxTicks   int
	Seed       int64   // Run i uses Seed+i
	TickMillis float64 // Wall time reported per tick
	Pilot      Autopilot
	Config     config.RunnerConfig
}

// DefaultOptions returns a small batch at 60 ticks per second.
func DefaultOptions() Options {
	return Options{
		Runs:       10,
		MaxTicks:   20000,
		Seed:       1,
		TickMillis: core.DefaultConfig().TickMillis(),
		Pilot:      Autopilot{Reach: 4},
		Config:     config.DefaultRunnerConfig(),
	}
}

// Result describes one finished run.
type Result struct {
	Run       int
	Seed      int64
	SessionID string
	Score     int
	Ticks     int
	Steps     uint64
	Jumps     int
	Crashed   bool
}

// Run executes opts.Runs sessions one after another.
func Run(ctx context.Context, opts Options, logger *log.Logger) ([]Result, error) {
	if opts.Runs <= 0 {
		return nil, fmt.Errorf("sim: runs must be positive, got %d", opts.Runs)
	}
	if opts.MaxTicks <= 0 {
		return nil, fmt.Errorf("sim: max ticks must be positive, got %d", opts.MaxTicks)
	}
	if opts.TickMillis <= 0 {
		return nil, fmt.Errorf("sim: tick length must be positive, got %v", opts.TickMillis)
	}

	results := make([]Result, 0, opts.Runs)
	for i := range opts.Runs {
		if err := ctx.Err(); err != nil {
			return results, err
		}
		res := RunOne(opts, i)
		if logger != nil {
			logger.Info("run finished",
				"run", res.Run,
				"session", res.SessionID,
				"score", res.Score,
				"ticks", res.Ticks,
				"crashed", res.Crashed,
			)
		}
		results = append(results, res)
	}
	return results, nil
}

// RunOne plays run i of the batch until a crash or the tick limit.
func RunOne(opts Options, i int) Result {
	seed := opts.Seed + int64(i)
	sess := game.NewSession(opts.Config, rand.New(rand.NewSource(seed)))
	sess.Tick(core.ActionRestart, 0)

	res := Result{Run: i, Seed: seed, SessionID: sess.ID}
	for res.Ticks < opts.MaxTicks {
		step := sess.Tick(opts.Pilot.Decide(sess), opts.TickMillis)
		res.Ticks++
		for _, ev := range step.Events {
			if ev.Kind == game.EventJumped {
				res.Jumps++
			}
		}
		if sess.Mode == game.ModeEnded {
			res.Crashed = true
			break
		}
	}
	res.Score = sess.Score
	res.Steps = sess.Clock.Steps()
	return res
}

// Stats summarizes a batch.
type Stats struct {
	Runs    int
	Best    int
	Mean    float64
	Crashes int
}

// Summarize computes batch statistics.
func Summarize(results []Result) Stats {
	st := Stats{Runs: len(results)}
	if len(results) == 0 {
		return st
	}
	total := 0
	for _, r := range results {
		total += r.Score
		if r.Score > st.Best {
			st.Best = r.Score
		}
		if r.Crashed {
			st.Crashes++
		}
	}
	st.Mean = float64(total) / float64(len(results))
	return st
}

// Scores returns each run's score as a series.
func Scores(results []Result) []float64 {
	data := make([]float64, len(results))
	for i, r := range results {
		data[i] = float64(r.Score)
	}
	return data
}

// Plot draws the score series as an ASCII chart.
func Plot(results []Result, width, height int) string {
	if len(results) == 0 {
		return ""
	}
	return asciigraph.Plot(Scores(results),
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption("score per run"),
	)
}

// WriteTable prints one row per run followed by a summary line.
func WriteTable(w io.Writer, results []Result) error {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("RUN", "SEED", "SCORE", "TICKS", "STEPS", "JUMPS", "END")

	for _, r := range results {
		end := "limit"
		if r.Crashed {
			end = "crash"
		}
		t.Row(
			strconv.Itoa(r.Run),
			strconv.FormatInt(r.Seed, 10),
			strconv.Itoa(r.Score),
			strconv.Itoa(r.Ticks),
			strconv.FormatUint(r.Steps, 10),
			strconv.Itoa(r.Jumps),
			end,
		)
	}

	st := Summarize(results)
	_, err := fmt.Fprintf(w, "%s\nruns: %d  best: %d  mean: %.1f  crashes: %d\n",
		t.String(), st.Runs, st.Best, st.Mean, st.Crashes)
	return err
}
