package main // import "github.com/tonobo/gridsnake"

import "github.com/joonazan/vec2"

// Position is a 1-indexed board cell.
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func (p Position) Vec() vec2.Vector {
	return vec2.Vector{X: float64(p.X), Y: float64(p.Y)}
}

func PositionOf(v vec2.Vector) Position {
	return Position{X: int(v.X), Y: int(v.Y)}
}

// Step returns the neighbouring cell in direction d.
func (p Position) Step(d Direction) Position {
	return PositionOf(p.Vec().Minus(Direction2Vector[d]))
}

func (p Position) Manhattan(o Position) int {
	return abs(p.X-o.X) + abs(p.Y-o.Y)
}

func (p Position) Chebyshev(o Position) int {
	return max(abs(p.X-o.X), abs(p.Y-o.Y))
}

type Positions []Position

// ParsePositions reads a flat x,y,x,y,... slice. A trailing odd value is ignored.
func ParsePositions(flat []int) Positions {
	ps := make(Positions, 0, len(flat)/2)
	for i := 0; i+1 < len(flat); i += 2 {
		ps = append(ps, Position{X: flat[i], Y: flat[i+1]})
	}
	return ps
}

func (ps Positions) Flatten() []int {
	flat := make([]int, 0, len(ps)*2)
	for _, p := range ps {
		flat = append(flat, p.X, p.Y)
	}
	return flat
}

func (ps Positions) Contains(p Position) bool {
	return ps.Index(p) >= 0
}

func (ps Positions) Index(p Position) int {
	for i, q := range ps {
		if q == p {
			return i
		}
	}
	return -1
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
