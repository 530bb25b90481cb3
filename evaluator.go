package main // import "github.com/tonobo/gridsnake"

import "math"

// Score ranks a candidate cell; lower is better.
type Score float64

// Forbidden marks a cell or food that must never be chosen.
var Forbidden = Score(math.Inf(1))

func (s Score) IsForbidden() bool {
	return math.IsInf(float64(s), 1)
}

// Contest is everything the evaluator knows about one competitive tick.
type Contest struct {
	Board      *Board
	Foods      Positions
	FoodCount  int
	Opponents  *Opponents
	AgentCount int
	Round      int
	Head       Position
}

type Evaluator struct {
	Contest

	crowding      []int
	contested     int
	contestedDist int
}

func NewEvaluator(c Contest) *Evaluator {
	e := &Evaluator{Contest: c, contested: -1}
	if e.FoodCount <= 0 {
		e.FoodCount = len(e.Foods)
	}
	e.crowding = make([]int, len(e.Foods))
	for i, food := range e.Foods {
		for _, other := range e.Foods {
			if food.Chebyshev(other) <= FoodCrowdRadius {
				e.crowding[i]++
			}
		}
	}
	if e.duel() {
		opp := e.Opponents.Segments[0]
		e.contestedDist = math.MaxInt
		for i, food := range e.Foods {
			if d := opp.Manhattan(food); d < e.contestedDist {
				e.contested, e.contestedDist = i, d
			}
		}
	}
	return e
}

// duel is the 1v1 small-board mode where the food nearest the lone opponent
// is treated as contested.
func (e *Evaluator) duel() bool {
	return e.Board.Small() && e.AgentCount == 1 && !e.Opponents.Empty()
}

func (e *Evaluator) lateRound() int {
	return e.Board.RoundBudget() * LateGamePercent / 100
}

func (e *Evaluator) Score(cell Position) Score {
	if !e.Opponents.Empty() && e.Board.OnRing(cell) &&
		e.Opponents.Within(cell, EdgeThreatDistance, e.Board.VacatingTrail()) {
		return Forbidden
	}
	if pair, ok := e.Board.PairedCell(cell, e.Head); ok && e.Opponents.Within(pair, EdgeThreatDistance, 0) {
		return Forbidden
	}

	best := Forbidden
	for i, food := range e.Foods {
		if s := e.foodScore(cell, i, food); s < best {
			best = s
		}
	}
	return best
}

func (e *Evaluator) foodScore(cell Position, i int, food Position) Score {
	own := cell.Manhattan(food) + 1
	if e.duel() {
		if i == e.contested && e.contestedDist <= own {
			if e.contestedDist == 1 && own == 1 && e.Round > e.lateRound() {
				return Forbidden
			}
			if e.contestedDist < own {
				return Forbidden
			}
		}
	} else if own == 1 && !e.Board.Small() {
		// Stepping onto food an opponent head also touches risks a head-on.
		for _, head := range e.Opponents.Heads() {
			if head.Manhattan(food) == 1 {
				return Forbidden
			}
		}
	}
	weight := float64(e.crowding[i]) / float64(e.FoodCount)
	return Score(float64(own) / weight)
}
