package main

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPositionStep(t *testing.T) {
	p := Position{X: 3, Y: 3}
	assert.Equal(t, Position{X: 3, Y: 4}, p.Step(Up))
	assert.Equal(t, Position{X: 3, Y: 2}, p.Step(Down))
	assert.Equal(t, Position{X: 2, Y: 3}, p.Step(Left))
	assert.Equal(t, Position{X: 4, Y: 3}, p.Step(Right))
}

func TestPositionDistances(t *testing.T) {
	a := Position{X: 1, Y: 1}
	b := Position{X: 4, Y: 3}
	assert.Equal(t, 5, a.Manhattan(b))
	assert.Equal(t, 5, b.Manhattan(a))
	assert.Equal(t, 3, a.Chebyshev(b))
	assert.Equal(t, 0, a.Manhattan(a))
}

func TestParsePositions(t *testing.T) {
	ps := ParsePositions([]int{1, 2, 3, 4, 5})
	assert.Equal(t, Positions{{X: 1, Y: 2}, {X: 3, Y: 4}}, ps)
	assert.Equal(t, []int{1, 2, 3, 4}, ps.Flatten())
	assert.Empty(t, ParsePositions(nil))

	assert.True(t, ps.Contains(Position{X: 3, Y: 4}))
	assert.False(t, ps.Contains(Position{X: 4, Y: 3}))
	assert.Equal(t, 1, ps.Index(Position{X: 3, Y: 4}))
	assert.Equal(t, -1, ps.Index(Position{X: 9, Y: 9}))
}

func TestDirection(t *testing.T) {
	assert.Equal(t, Direction(0), Up)
	assert.Equal(t, Direction(1), Left)
	assert.Equal(t, Direction(2), Down)
	assert.Equal(t, Direction(3), Right)
	assert.Equal(t, Direction(-1), DirectionUnreachable)
	assert.Equal(t, Up, NoSafeMove)

	assert.Equal(t, "left", Left.String())
	assert.Equal(t, "unreachable", DirectionUnreachable.String())
	assert.Equal(t, "direction(7)", Direction(7).String())

	for _, d := range Directions {
		assert.True(t, d.Valid(), d.String())
	}
	assert.False(t, DirectionUnreachable.Valid())
	assert.Equal(t, [4]Direction{Up, Down, Left, Right}, Directions)
}

func TestMovementsSortKeepsEnumerationOrderOnTies(t *testing.T) {
	moves := Movements{
		{Direction: Up, Score: 3},
		{Direction: Down, Score: 2},
		{Direction: Left, Score: 2},
		{Direction: Right, Score: Forbidden},
	}
	sort.Stable(moves)
	assert.Equal(t, Down, moves[0].Direction)
	assert.Equal(t, Left, moves[1].Direction)
	assert.Equal(t, Up, moves[2].Direction)
	assert.Equal(t, Right, moves[3].Direction)

	assert.True(t, moves.Has(Left))
	assert.False(t, moves[:2].Has(Up))
}
