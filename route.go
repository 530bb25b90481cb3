package main // import "github.com/tonobo/gridsnake"

import (
	"errors"

	"github.com/bits-and-blooms/bitset"
)

var ErrUnreachable = errors.New("food is unreachable")

// Plan holds moves in reconstruction order: the terminal move first and the
// next move to make last, so a tick pops from the end.
type Plan []Direction

func (p Plan) Len() int { return len(p) }

func (p *Plan) Pop() (Direction, bool) {
	if len(*p) == 0 {
		return DirectionUnreachable, false
	}
	last := len(*p) - 1
	d := (*p)[last]
	*p = (*p)[:last]
	return d, true
}

// Moves returns the plan in the order it will be played.
func (p Plan) Moves() []Direction {
	moves := make([]Direction, len(p))
	for i, d := range p {
		moves[len(p)-1-i] = d
	}
	return moves
}

type routeStep struct {
	head   Position
	prev   Position
	move   Direction
	parent int
}

// Route is one breadth-first search from a head to a food cell. States are
// (head, previous head) pairs, so a corridor can be left but not re-entered
// by turning on the spot.
type Route struct {
	From  Position
	Neck  Position
	To    Position
	Board *Board

	visited *bitset.BitSet
	steps   []routeStep
}

// FindPath returns the shortest plan from head to food. neck stands in for
// the cell the head cannot fold back onto on the first move.
func FindPath(b *Board, head, neck, food Position) (Plan, error) {
	r := &Route{From: head, Neck: neck, To: food, Board: b}
	return r.Resolve()
}

func (r *Route) seen(head, prev Position) bool {
	return r.visited.Test(r.Board.stateIndex(head, prev))
}

func (r *Route) mark(head, prev Position) {
	r.visited.Set(r.Board.stateIndex(head, prev))
}

func (r *Route) Resolve() (Plan, error) {
	if r.Board.Outside(r.From) {
		return nil, ErrUnreachable
	}
	r.visited = bitset.New(r.Board.stateCount())
	r.steps = []routeStep{{head: r.From, prev: r.Neck, parent: -1}}
	if !r.Board.Outside(r.Neck) {
		r.mark(r.From, r.Neck)
	}

	// r.steps doubles as the FIFO queue; next is its read cursor.
	for next := 0; next < len(r.steps); next++ {
		cur := r.steps[next]
		if cur.head == r.To {
			return r.plan(next), nil
		}
		for _, d := range Directions {
			pos := cur.head.Step(d)
			if r.Board.Blocked(pos) || pos == cur.prev {
				continue
			}
			if r.seen(pos, cur.head) {
				continue
			}
			r.mark(pos, cur.head)
			r.steps = append(r.steps, routeStep{head: pos, prev: cur.head, move: d, parent: next})
		}
	}
	return nil, ErrUnreachable
}

func (r *Route) plan(goal int) Plan {
	p := Plan{}
	for i := goal; r.steps[i].parent >= 0; i = r.steps[i].parent {
		p = append(p, r.steps[i].move)
	}
	return p
}

// Expanded is the number of states the last Resolve put on the queue.
func (r *Route) Expanded() int {
	return len(r.steps)
}
