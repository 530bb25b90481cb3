package main // import "github.com/tonobo/gridsnake"

import "sort"

// GreedyMove steps toward food along the safe direction with the smallest
// Manhattan distance. Off-board and barrier cells are never chosen unless
// every direction is closed.
func GreedyMove(b *Board, self Snake, food Position) Direction {
	head := self.Head()
	moves := Movements{}
	for _, d := range Directions {
		next := head.Step(d)
		if b.Blocked(next) || self.Blocks(next) {
			continue
		}
		moves = append(moves, &Movement{Direction: d, Target: next, Score: Score(next.Manhattan(food))})
	}
	if len(moves) == 0 {
		return Toward(head, food)
	}
	sort.Stable(moves)
	return moves[0].Direction
}

// Toward is the straight-line fallback for a trapped head: it follows the
// dominant axis to food and ignores collisions.
func Toward(head, food Position) Direction {
	dx := food.X - head.X
	dy := food.Y - head.Y
	if abs(dx) > abs(dy) {
		if dx > 0 {
			return Right
		}
		return Left
	}
	if dy > 0 {
		return Up
	}
	return Down
}
