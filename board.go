package main // import "github.com/tonobo/gridsnake"

import (
	"sort"
	"strconv"
	"strings"
)

// Board is an n x n grid with cells 1..n on both axes and a fixed barrier set.
type Board struct {
	Size     int
	barriers map[Position]struct{}
	key      string
}

func NewBoard(size int, barriers Positions) *Board {
	b := &Board{Size: size, barriers: make(map[Position]struct{}, len(barriers))}
	for _, p := range barriers {
		b.barriers[p] = struct{}{}
	}
	b.key = barrierKey(b.barriers)
	return b
}

func barrierKey(set map[Position]struct{}) string {
	ps := make(Positions, 0, len(set))
	for p := range set {
		ps = append(ps, p)
	}
	sort.Slice(ps, func(i, j int) bool {
		if ps[i].X != ps[j].X {
			return ps[i].X < ps[j].X
		}
		return ps[i].Y < ps[j].Y
	})
	var sb strings.Builder
	for _, p := range ps {
		sb.WriteString(strconv.Itoa(p.X))
		sb.WriteByte(',')
		sb.WriteString(strconv.Itoa(p.Y))
		sb.WriteByte(';')
	}
	return sb.String()
}

// BarrierKey identifies the barrier set independent of input order.
func (b *Board) BarrierKey() string {
	return b.key
}

func (b *Board) HasBarriers() bool {
	return len(b.barriers) > 0
}

func (b *Board) Barriers() Positions {
	ps := make(Positions, 0, len(b.barriers))
	for p := range b.barriers {
		ps = append(ps, p)
	}
	return ps
}

func (b *Board) Barrier(p Position) bool {
	_, found := b.barriers[p]
	return found
}

func (b *Board) Outside(p Position) bool {
	return p.X < 1 || p.X > b.Size || p.Y < 1 || p.Y > b.Size
}

func (b *Board) Blocked(p Position) bool {
	return b.Outside(p) || b.Barrier(p)
}

// OnRing reports whether p lies on the outermost row or column.
func (b *Board) OnRing(p Position) bool {
	return p.X <= 1 || p.X >= b.Size || p.Y <= 1 || p.Y >= b.Size
}

func (b *Board) Small() bool {
	return b.Size == SmallBoardSize
}

// RoundBudget is the number of rounds a match lasts on this board.
func (b *Board) RoundBudget() int {
	if b.Size == LargeBoardSize {
		return LargeRoundBudget
	}
	return SmallRoundBudget
}

// VacatingTrail is how many tail segments per opponent are ignored when
// looking for edge threats.
func (b *Board) VacatingTrail() int {
	if b.Small() {
		return 2
	}
	return 1
}

// Each corner is named by which axes sit on n rather than 1. The two cells
// a snake can enter the corner from are the corner shifted by approach.
var cornerTable = [4]struct {
	far      [2]bool
	approach [2]Position
}{
	{far: [2]bool{false, false}, approach: [2]Position{{X: 0, Y: 1}, {X: 1, Y: 0}}},
	{far: [2]bool{false, true}, approach: [2]Position{{X: 0, Y: -1}, {X: 1, Y: 0}}},
	{far: [2]bool{true, false}, approach: [2]Position{{X: 0, Y: 1}, {X: -1, Y: 0}}},
	{far: [2]bool{true, true}, approach: [2]Position{{X: 0, Y: -1}, {X: -1, Y: 0}}},
}

func (b *Board) axis(far bool) int {
	if far {
		return b.Size
	}
	return 1
}

func (b *Board) IsCorner(p Position) bool {
	_, ok := b.corner(p)
	return ok
}

func (b *Board) corner(p Position) (int, bool) {
	for i, c := range cornerTable {
		if p.X == b.axis(c.far[0]) && p.Y == b.axis(c.far[1]) {
			return i, true
		}
	}
	return 0, false
}

// PairedCell returns the other approach cell of corner when head sits on
// one of them: the cell an opponent would use to shut the corner behind us.
func (b *Board) PairedCell(corner, head Position) (Position, bool) {
	i, ok := b.corner(corner)
	if !ok {
		return Position{}, false
	}
	c := cornerTable[i]
	a := Position{X: corner.X + c.approach[0].X, Y: corner.Y + c.approach[0].Y}
	o := Position{X: corner.X + c.approach[1].X, Y: corner.Y + c.approach[1].Y}
	switch head {
	case a:
		return o, true
	case o:
		return a, true
	}
	return Position{}, false
}

// stateIndex packs a (head, previous head) pair into [0, n^4).
func (b *Board) stateIndex(head, prev Position) uint {
	n := b.Size
	return uint(((head.X-1)*n+(head.Y-1))*n*n + (prev.X-1)*n + (prev.Y - 1))
}

func (b *Board) stateCount() uint {
	n := uint(b.Size)
	return n * n * n * n
}
