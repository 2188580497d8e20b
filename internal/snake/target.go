package snake

// maxPlacementDraws bounds rejection sampling before placement falls back
// to choosing among the free cells directly.
const maxPlacementDraws = 1024

// RNG supplies uniformly distributed integers in [lo, hi).
type RNG interface {
	Range(lo, hi int) int
}

// Target is the single food cell.
type Target struct {
	Point
}

// DefaultTarget is the fixed placement used when a run starts.
func DefaultTarget() Target {
	return Target{Point{X: Width / 4, Y: Height / 4}}
}

// Place moves the target to a random interior cell not covered by body.
// It returns false only when every candidate cell is occupied, in which
// case the target is left where it was.
func (t *Target) Place(body *Body, rng RNG) bool {
	for i := 0; i < maxPlacementDraws; i++ {
		p := Point{X: rng.Range(1, Width-1), Y: rng.Range(1, Height-1)}
		if !body.Occupies(p) {
			t.Point = p
			return true
		}
	}

	free := freeCells(body)
	if len(free) == 0 {
		return false
	}
	t.Point = free[rng.Range(0, len(free))]
	return true
}

// freeCells lists the placement candidates the body does not cover, row by row.
func freeCells(body *Body) []Point {
	occupied := make(map[Point]struct{}, body.Len())
	for _, s := range body.segments {
		occupied[s] = struct{}{}
	}

	var free []Point
	for y := 1; y < Height-1; y++ {
		for x := 1; x < Width-1; x++ {
			p := Point{X: x, Y: y}
			if _, ok := occupied[p]; !ok {
				free = append(free, p)
			}
		}
	}
	return free
}
