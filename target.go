package main // import "github.com/tonobo/gridsnake"

import (
	"math"
	"sort"

	"github.com/nickdavies/go-astar/astar"
)

// RankTargets orders foods by estimated route length from head, nearest
// first. Foods with no route sort last; ties keep input order.
func RankTargets(b *Board, head Position, foods Positions) Positions {
	ranked := make(Positions, len(foods))
	copy(ranked, foods)
	if len(ranked) < 2 {
		return ranked
	}
	hops := make(map[Position]int, len(ranked))
	for _, food := range ranked {
		hops[food] = routeEstimate(b, head, food)
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return hops[ranked[i]] < hops[ranked[j]]
	})
	return ranked
}

func gridPoint(p Position) astar.Point {
	return astar.Point{Row: p.Y - 1, Col: p.X - 1}
}

// routeEstimate is the A* hop count between two cells with barriers as
// walls, or math.MaxInt when there is no route.
func routeEstimate(b *Board, from, to Position) int {
	if b.Outside(from) || b.Blocked(to) {
		return math.MaxInt
	}
	grid := astar.NewAStar(b.Size, b.Size)
	for _, p := range b.Barriers() {
		grid.FillTile(gridPoint(p), -1)
	}
	path := grid.FindPath(astar.NewPointToPoint(), []astar.Point{gridPoint(from)}, []astar.Point{gridPoint(to)})
	if path == nil {
		return math.MaxInt
	}
	hops := 0
	for p := path; p.Parent != nil; p = p.Parent {
		hops++
	}
	return hops
}
