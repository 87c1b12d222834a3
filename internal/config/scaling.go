package config

// SpeedCeiling returns the upper bound of the obstacle speed draw at the given score.
// This is the only difficulty rule: obstacles may approach faster as the score grows.
func (s SpawnConfig) SpeedCeiling(score int) float64 {
	if score < 0 {
		score = 0
	}
	return float64(score) * s.SpeedPerPoint
}

// SpawnWindow returns the column range [0, n) from which spawn offsets are drawn.
func (f FieldConfig) SpawnWindow() int {
	return f.Width / 2
}

// LookaheadColumns returns how many columns ahead of the player must stay populated.
func (f FieldConfig) LookaheadColumns() float64 {
	return f.Lookahead * float64(f.Width)
}
