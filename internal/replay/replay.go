// Package replay records and replays runner sessions. A recording is the RNG
// seed plus the ordered input trace; because the simulation is deterministic,
// that is enough to reproduce a session exactly, frame by frame.
package replay

import (
	"fmt"
	"time"

	"github.com/mkovalev/tui-runner/internal/core"
	"github.com/mkovalev/tui-runner/internal/game"
)

// Event is one recorded input action at a given display frame.
type Event struct {
	Frame  uint64      `json:"frame"`
	Action core.Action `json:"action"`
}

// Recording is a complete reproducible session.
type Recording struct {
	ID        int64     // Storage identity, 0 until saved
	Seed      int64     // RNG seed the session ran with
	TickRate  int       // Display refresh rate the session ran at
	Events    []Event   // Input trace, ordered by frame
	Score     int       // Final score at game over
	Frames    uint64    // Total display frames in the session
	CreatedAt time.Time // Set by storage
}

// Recorder captures the input trace of a live session.
type Recorder struct {
	rec   Recording
	frame uint64
	done  bool
}

// NewRecorder starts recording a session with the given seed and refresh rate.
func NewRecorder(seed int64, tickRate int) *Recorder {
	return &Recorder{
		rec: Recording{
			Seed:     seed,
			TickRate: tickRate,
		},
	}
}

// Capture records the input frame passed to this display frame's step.
// Must be called exactly once per frame, before the step consumes the frame.
func (r *Recorder) Capture(in core.InputFrame) {
	if r.done {
		return
	}
	for _, a := range []core.Action{core.ActionJump, core.ActionRestart, core.ActionPause} {
		if in.Has(a) {
			r.rec.Events = append(r.rec.Events, Event{Frame: r.frame, Action: a})
		}
	}
	r.frame++
}

// Finish seals the recording with the session outcome.
// Further Capture calls are ignored.
func (r *Recorder) Finish(score int) Recording {
	r.done = true
	r.rec.Score = score
	r.rec.Frames = r.frame
	return r.rec
}

// Player feeds a recording's input trace back, one frame at a time.
type Player struct {
	rec   Recording
	frame uint64
	idx   int
}

// NewPlayer creates a playback source for the given recording.
func NewPlayer(rec Recording) *Player {
	return &Player{rec: rec}
}

// TickRate returns the refresh rate the recording was made at.
func (p *Player) TickRate() int {
	return p.rec.TickRate
}

// Seed returns the recording's RNG seed.
func (p *Player) Seed() int64 {
	return p.rec.Seed
}

// Next returns the input frame for the current display frame and advances.
// The second return is false once the recording is exhausted.
func (p *Player) Next() (core.InputFrame, bool) {
	if p.frame >= p.rec.Frames {
		return core.NewInputFrame(), false
	}
	in := core.NewInputFrame()
	for p.idx < len(p.rec.Events) && p.rec.Events[p.idx].Frame == p.frame {
		in.Set(p.rec.Events[p.idx].Action)
		p.idx++
	}
	p.frame++
	return in, true
}

// Simulate re-runs a recording headlessly and returns the final state.
func Simulate(rec Recording) (core.GameState, error) {
	if rec.TickRate <= 0 {
		return core.GameState{}, fmt.Errorf("replay: invalid tick rate %d", rec.TickRate)
	}

	g := game.New()
	g.Reset(core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: rec.TickRate,
		Seed:     rec.Seed,
	})

	player := NewPlayer(rec)
	var state core.GameState
	for {
		in, ok := player.Next()
		if !ok {
			break
		}
		state = g.Step(in).State
	}
	return state, nil
}

// Verify re-simulates a recording and checks that it reproduces the recorded
// outcome. A mismatch means the recording is corrupt or was made by an
// incompatible simulation.
func Verify(rec Recording) error {
	state, err := Simulate(rec)
	if err != nil {
		return err
	}
	if state.Score != rec.Score {
		return fmt.Errorf("replay: simulated score %d does not match recorded score %d",
			state.Score, rec.Score)
	}
	return nil
}
