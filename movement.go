package main // import "github.com/tonobo/gridsnake"

import "strconv"

// Direction codes are fixed by the host protocol and are not sequential.
type Direction int

const (
	DirectionUnreachable Direction = -1
	Up                   Direction = 0
	Left                 Direction = 1
	Down                 Direction = 2
	Right                Direction = 3

	// NoSafeMove is what the selector answers when every direction collides.
	NoSafeMove = Up
)

// Directions is the enumeration order used for every tie-break.
var Directions = [4]Direction{Up, Down, Left, Right}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	case DirectionUnreachable:
		return "unreachable"
	}
	return "direction(" + strconv.Itoa(int(d)) + ")"
}

func (d Direction) Valid() bool {
	return d >= Up && d <= Right
}

type Movement struct {
	Direction Direction
	Target    Position
	Score     Score
}

type Movements []*Movement

func (p Movements) Len() int           { return len(p) }
func (p Movements) Less(i, j int) bool { return p[i].Score < p[j].Score }
func (p Movements) Swap(i, j int)      { p[i], p[j] = p[j], p[i] }

func (p Movements) Has(d Direction) bool {
	for _, m := range p {
		if m.Direction == d {
			return true
		}
	}
	return false
}
