package game

import (
	"math/rand"

	"github.com/vovakirdan/tui-dino/internal/config"
)

// fixedRand returns the same draws every time, clamped to the requested range.
type fixedRand struct {
	intn    int
	float64 float64
}

func (r fixedRand) Intn(n int) int {
	if r.intn >= n {
		return n - 1
	}
	return r.intn
}

func (r fixedRand) Float64() float64 {
	return r.float64
}

func testConfig() config.RunnerConfig {
	return config.DefaultRunnerConfig()
}

func seededSession(seed int64) *Session {
	return NewSession(testConfig(), rand.New(rand.NewSource(seed)))
}
