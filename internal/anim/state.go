package anim

import "math"

// UpdateResult reports whether a State finished its current animation.
type UpdateResult int

const (
	Continue UpdateResult = iota
	Completed
)

// State is the scalar animation state of one shape node. Dir is 0 while idle
// and +1 or -1 while scale moves toward PrevScale+Dir.
type State struct {
	Scale     float64
	PrevScale float64
	Dir       float64
}

func (s *State) Idle() bool {
	return s.Dir == 0
}

// Update advances the scale by one step of gap in the current direction. Once
// the scale has moved more than a full unit from PrevScale it snaps to the
// target, goes idle and returns Completed with the snapped value.
func (s *State) Update(gap float64) (UpdateResult, float64) {
	s.Scale += s.Dir * gap
	if math.Abs(s.Scale-s.PrevScale) > 1 {
		s.Scale = s.PrevScale + s.Dir
		s.Dir = 0
		s.PrevScale = s.Scale
		return Completed, s.PrevScale
	}
	return Continue, s.Scale
}

// StartUpdating aims the state at the opposite end of [0,1]. It returns false
// and does nothing while an animation is already running.
func (s *State) StartUpdating() bool {
	if s.Dir != 0 {
		return false
	}
	s.Dir = 1 - 2*s.PrevScale
	return true
}
