package game

import "github.com/mkovalev/tui-runner/internal/core"

// PlayerRect returns the runner's collision rectangle. The runner sits at a
// fixed horizontal offset; its box rises with DinoY while jumping.
func (s *State) PlayerRect() core.Rect {
	return core.NewRect(PlayerX, GroundY-s.DinoY, PlayerW, PlayerH)
}
