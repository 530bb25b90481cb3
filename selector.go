package main // import "github.com/tonobo/gridsnake"

import (
	"fmt"
	"sort"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

type Mode int

const (
	ModeGreedy Mode = iota
	ModePlan
	ModeCompete
)

func (m Mode) String() string {
	switch m {
	case ModeGreedy:
		return "greedy"
	case ModePlan:
		return "plan"
	case ModeCompete:
		return "compete"
	}
	return fmt.Sprintf("mode(%d)", int(m))
}

func ParseMode(s string) (Mode, error) {
	for _, m := range []Mode{ModeGreedy, ModePlan, ModeCompete} {
		if m.String() == s {
			return m, nil
		}
	}
	return 0, fmt.Errorf("unknown mode %q", s)
}

// Request is one tick as seen by the agent.
type Request struct {
	Board      *Board
	Self       Snake
	Opponents  *Opponents
	Foods      Positions
	FoodCount  int
	AgentCount int
	Round      int
}

// MoveSelector routes a tick to the mover for its mode. Session is only
// needed for ModePlan.
type MoveSelector struct {
	Session *Session
	Logger  log.Logger
}

func (m *MoveSelector) logger() log.Logger {
	if m.Logger != nil {
		return m.Logger
	}
	return GlobalLogger()
}

// SafeMoves lists, in enumeration order, the directions whose target is on
// the board, off barriers and clear of every segment that stays put.
func SafeMoves(req *Request) Movements {
	head := req.Self.Head()
	moves := Movements{}
	for _, d := range Directions {
		next := head.Step(d)
		if req.Board.Blocked(next) || req.Self.Blocks(next) || req.Opponents.Blocks(next) {
			continue
		}
		moves = append(moves, &Movement{Direction: d, Target: next})
	}
	return moves
}

func (m *MoveSelector) Decide(mode Mode, req *Request) Direction {
	if mode == ModeGreedy {
		// The greedy mover owns its trapped fallback.
		return GreedyMove(req.Board, req.Self, m.firstFood(req))
	}

	safe := SafeMoves(req)
	if len(safe) == 0 {
		_ = level.Warn(m.logger()).Log("msg", "no safe move", "mode", mode, "head", fmt.Sprint(req.Self.Head()))
		return NoSafeMove
	}

	switch mode {
	case ModePlan:
		return m.plan(req, safe)
	case ModeCompete:
		return m.compete(req, safe)
	}
	_ = level.Error(m.logger()).Log("msg", "unknown mode", "mode", mode)
	return safe[0].Direction
}

func (m *MoveSelector) firstFood(req *Request) Position {
	if len(req.Foods) == 0 {
		return req.Self.Head()
	}
	return req.Foods[0]
}

func (m *MoveSelector) plan(req *Request, safe Movements) Direction {
	if !req.Board.HasBarriers() {
		return GreedyMove(req.Board, req.Self, m.firstFood(req))
	}
	if m.Session == nil {
		m.Session = NewSession("")
	}
	d, err := m.Session.Next(req.Board, req.Self, req.Foods)
	if err != nil {
		_ = level.Info(m.logger()).Log("msg", "no route to food", "session", m.Session.ID, "err", err)
		return DirectionUnreachable
	}
	if !safe.Has(d) {
		_ = level.Debug(m.logger()).Log("msg", "plan step leaves the safe set", "session", m.Session.ID, "move", d)
	}
	return d
}

func (m *MoveSelector) compete(req *Request, safe Movements) Direction {
	e := NewEvaluator(Contest{
		Board:      req.Board,
		Foods:      req.Foods,
		FoodCount:  req.FoodCount,
		Opponents:  req.Opponents,
		AgentCount: req.AgentCount,
		Round:      req.Round,
		Head:       req.Self.Head(),
	})
	_ = level.Debug(m.logger()).Log("msg", "contest", "opponents", req.Opponents.Count(), "foods", len(req.Foods), "round", req.Round)
	for _, mv := range safe {
		mv.Score = e.Score(mv.Target)
		_ = level.Debug(m.logger()).Log("msg", "candidate", "move", mv.Direction, "score", float64(mv.Score))
	}
	sort.Stable(safe)
	return safe[0].Direction
}
