package main // import "github.com/tonobo/gridsnake"

import "github.com/go-kit/log/level"

// DecideMove is the open-board entry point: body and food are flat,
// 1-indexed x,y pairs with the head first.
func DecideMove(body, food []int) Direction {
	req := &Request{
		Board: NewBoard(DefaultBoardSize, nil),
		Self:  Snake{Body: ParsePositions(body)},
		Foods: ParsePositions(food),
	}
	return (&MoveSelector{}).Decide(ModeGreedy, req)
}

// PlanMove is the barrier entry point. Every call plays exactly one move of
// the session's plan, so callers must pass the body after the previous move.
// It returns DirectionUnreachable when no food can be reached.
func (s *Session) PlanMove(body, food, barriers []int) Direction {
	req := &Request{
		Board: NewBoard(DefaultBoardSize, ParsePositions(barriers)),
		Self:  Snake{Body: ParsePositions(body)},
		Foods: ParsePositions(food),
	}
	return (&MoveSelector{Session: s}).Decide(ModePlan, req)
}

// ScoreMove is the competitive entry point. other holds every opponent,
// OpponentStride segments each; agentCount is the number of opponents.
func ScoreMove(n int, me, other []int, foodCount int, foods []int, agentCount, round int) Direction {
	opponents, err := NewOpponents(other, OpponentStride)
	if err != nil {
		_ = level.Warn(GlobalLogger()).Log("msg", "opponent layout", "err", err)
	}
	req := &Request{
		Board:      NewBoard(n, nil),
		Self:       Snake{Body: ParsePositions(me)},
		Opponents:  opponents,
		Foods:      ParsePositions(foods),
		FoodCount:  foodCount,
		AgentCount: agentCount,
		Round:      round,
	}
	return (&MoveSelector{}).Decide(ModeCompete, req)
}
