package snake

import "slices"

// Outcome is the result of advancing the body by one cell.
type Outcome int

const (
	Moved Outcome = iota
	Grew
	HitWall
	HitSelf
)

// Fatal reports whether the outcome ends the run.
func (o Outcome) Fatal() bool {
	return o == HitWall || o == HitSelf
}

func (o Outcome) String() string {
	switch o {
	case Moved:
		return "moved"
	case Grew:
		return "grew"
	case HitWall:
		return "hit wall"
	case HitSelf:
		return "hit self"
	}
	return "unknown"
}

// Body is the ordered segment list, head first.
//
// heading is the direction of the last executed move and next is the
// direction the following move will use. Turns are judged against heading,
// so two turns queued inside one tick can never fold the head back onto
// the neck.
type Body struct {
	segments []Point
	heading  Direction
	next     Direction
}

// NewBody returns a single-segment body at the grid center facing right.
func NewBody() *Body {
	return NewBodyAt(Right, Center())
}

// NewBodyAt builds a body from explicit segments, head first.
func NewBodyAt(dir Direction, segments ...Point) *Body {
	return &Body{
		segments: slices.Clone(segments),
		heading:  dir,
		next:     dir,
	}
}

func (b *Body) Head() Point {
	return b.segments[0]
}

func (b *Body) Len() int {
	return len(b.segments)
}

// Segments returns a copy of the segments, head first.
func (b *Body) Segments() []Point {
	return slices.Clone(b.segments)
}

// Direction is the direction the next move will take.
func (b *Body) Direction() Direction {
	return b.next
}

// Turn latches d for the next move unless it reverses the current heading.
// The last accepted turn before a move wins.
func (b *Body) Turn(d Direction) bool {
	if d == b.heading.Opposite() {
		return false
	}
	b.next = d
	return true
}

// NextHead is the cell the head would enter on the next move.
func (b *Body) NextHead() Point {
	return b.Head().Add(b.next.Unit())
}

// Occupies reports whether any segment sits on p.
func (b *Body) Occupies(p Point) bool {
	return slices.Contains(b.segments, p)
}

// collidesWithTail checks p against every segment except the head.
func (b *Body) collidesWithTail(p Point) bool {
	return slices.Contains(b.segments[1:], p)
}

// Advance moves the head one cell. A fatal outcome leaves the body untouched.
// When the new head lands on target the tail is kept and the body grows.
func (b *Body) Advance(target Point) Outcome {
	head := b.NextHead()
	if !head.Interior() {
		return HitWall
	}
	if b.collidesWithTail(head) {
		return HitSelf
	}

	b.heading = b.next
	b.segments = slices.Insert(b.segments, 0, head)
	if head == target {
		return Grew
	}
	b.segments = b.segments[:len(b.segments)-1]
	return Moved
}
