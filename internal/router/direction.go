package router

import (
	"fmt"
	"time"
)

// Direction selects which of the two mirrored transitions a navigation
// animates with. Right is the zero value and the default for Navigate.
type Direction int

const (
	Right Direction = iota
	Left
)

func (d Direction) String() string {
	switch d {
	case Right:
		return "Right"
	case Left:
		return "Left"
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}

// Edge names a horizontal edge of the view, independent of direction.
type Edge int

const (
	EdgeLeading Edge = iota
	EdgeTrailing
)

func (e Edge) String() string {
	if e == EdgeLeading {
		return "leading"
	}
	return "trailing"
}

// TransitionDuration is the fixed length of every screen-change animation.
const TransitionDuration = 300 * time.Millisecond

// Transition pairs the insertion and removal movement for one screen change.
// Both halves combine with an opacity fade and run over the fixed duration
// with the fixed ease-in-out curve.
type Transition struct {
	Insert   Edge
	Remove   Edge
	Fade     bool
	Duration time.Duration
}

// Resolve maps a direction to its fixed transition pair. Left inserts from
// the leading edge and removes toward the trailing edge; Right is the exact
// mirror.
func Resolve(d Direction) Transition {
	if d == Left {
		return Transition{Insert: EdgeLeading, Remove: EdgeTrailing, Fade: true, Duration: TransitionDuration}
	}
	return Transition{Insert: EdgeTrailing, Remove: EdgeLeading, Fade: true, Duration: TransitionDuration}
}

// Ease is the fixed ease-in-out cubic curve applied to every transition.
// Input outside [0,1] clamps.
func Ease(t float64) float64 {
	if t <= 0 {
		return 0
	}
	if t >= 1 {
		return 1
	}
	if t < 0.5 {
		return 4 * t * t * t
	}
	u := -2*t + 2
	return 1 - u*u*u/2
}
