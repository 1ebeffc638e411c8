package game

// Snapshot captures the complete per-frame simulation state for consumers.
// Renderers read snapshots and must never feed anything back; entity slices
// are copies, so holding a snapshot across frames is safe.
type Snapshot struct {
	Score     int
	Speed     float64
	GameOver  bool
	DinoY     float64
	Jumping   bool
	Obstacles []Obstacle
	Clouds    []Cloud
}

// Snapshot returns an immutable copy of the current simulation state.
func (s *State) Snapshot() Snapshot {
	obstacles := make([]Obstacle, len(s.Obstacles))
	copy(obstacles, s.Obstacles)
	clouds := make([]Cloud, len(s.Clouds))
	copy(clouds, s.Clouds)

	return Snapshot{
		Score:     s.Score,
		Speed:     s.Speed,
		GameOver:  s.GameOver,
		DinoY:     s.DinoY,
		Jumping:   s.Jumping,
		Obstacles: obstacles,
		Clouds:    clouds,
	}
}
