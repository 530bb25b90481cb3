package main

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// replay walks plan from head and returns where it ends, failing on any
// blocked cell or fold back onto the previous cell.
func replay(t *testing.T, b *Board, head, neck Position, plan Plan) Position {
	t.Helper()
	cur, prev := head, neck
	for i, d := range plan.Moves() {
		next := cur.Step(d)
		require.False(t, b.Blocked(next), "move %d %v into %v", i, d, next)
		require.NotEqual(t, prev, next, "move %d folds back", i)
		cur, prev = next, cur
	}
	return cur
}

func TestFindPathAroundBarriers(t *testing.T) {
	b := NewBoard(8, ParsePositions([]int{1, 1, 2, 1, 1, 3, 2, 3}))
	head, neck := Position{X: 3, Y: 4}, Position{X: 3, Y: 3}
	food := Position{X: 1, Y: 2}

	plan, err := FindPath(b, head, neck, food)
	require.NoError(t, err)
	assert.Equal(t, 6, plan.Len())
	assert.Equal(t, Right, plan.Moves()[0])
	assert.Equal(t, food, replay(t, b, head, neck, plan))
}

func TestFindPathDeadEnd(t *testing.T) {
	barriers := []int{6, 8, 6, 7, 6, 6, 6, 5, 6, 4, 6, 3, 6, 2, 4, 2, 4, 3, 4, 4, 4, 5, 4, 6, 4, 7, 4, 8}
	head, neck := Position{X: 5, Y: 4}, Position{X: 5, Y: 5}
	food := Position{X: 5, Y: 8}

	// Corridor closed at the bottom: the head can only run into the cap.
	closed := NewBoard(8, ParsePositions(append([]int{5, 2}, barriers...)))
	_, err := FindPath(closed, head, neck, food)
	assert.ErrorIs(t, err, ErrUnreachable)

	// Open at the bottom the snake leaves, turns around outside and comes back.
	open := NewBoard(8, ParsePositions(barriers))
	plan, err := FindPath(open, head, neck, food)
	require.NoError(t, err)
	assert.Equal(t, Down, plan.Moves()[0])
	assert.Equal(t, food, replay(t, open, head, neck, plan))
}

func TestFindPathOnFood(t *testing.T) {
	b := NewBoard(8, nil)
	plan, err := FindPath(b, Position{X: 2, Y: 2}, Position{X: 2, Y: 1}, Position{X: 2, Y: 2})
	require.NoError(t, err)
	assert.Equal(t, 0, plan.Len())
	_, ok := plan.Pop()
	assert.False(t, ok)
}

func TestPlanPop(t *testing.T) {
	p := Plan{Left, Down, Right}
	assert.Equal(t, []Direction{Right, Down, Left}, p.Moves())
	d, ok := p.Pop()
	assert.True(t, ok)
	assert.Equal(t, Right, d)
	assert.Equal(t, 2, p.Len())
}

func TestRouteExpanded(t *testing.T) {
	b := NewBoard(5, nil)
	r := &Route{From: Position{X: 1, Y: 1}, Neck: Position{X: 1, Y: 2}, To: Position{X: 5, Y: 5}, Board: b}
	_, err := r.Resolve()
	require.NoError(t, err)
	assert.Greater(t, r.Expanded(), 1)
	assert.LessOrEqual(t, uint(r.Expanded()), b.stateCount()+1)
}

type routeState struct {
	head, prev Position
}

// shortestByRelaxation runs Bellman-Ford over the (head, prev) state graph
// and returns the fewest moves to reach food, or -1.
func shortestByRelaxation(b *Board, head, neck, food Position) int {
	if head == food {
		return 0
	}
	dist := map[routeState]int{{head: head, prev: neck}: 0}
	for changed := true; changed; {
		changed = false
		for s, d := range dist {
			for _, dir := range Directions {
				next := s.head.Step(dir)
				if b.Blocked(next) || next == s.prev {
					continue
				}
				ns := routeState{head: next, prev: s.head}
				if old, found := dist[ns]; !found || d+1 < old {
					dist[ns] = d + 1
					changed = true
				}
			}
		}
	}
	best := -1
	for s, d := range dist {
		if s.head == food && (best < 0 || d < best) {
			best = d
		}
	}
	return best
}

func TestFindPathMatchesRelaxation(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	random := func(n int) Position {
		return Position{X: rng.Intn(n) + 1, Y: rng.Intn(n) + 1}
	}
	for round := 0; round < 200; round++ {
		n := 5
		open := NewBoard(n, nil)
		head := random(n)
		neck := head.Step(Directions[rng.Intn(4)])
		for open.Outside(neck) {
			neck = head.Step(Directions[rng.Intn(4)])
		}
		food := random(n)

		barriers := Positions{}
		for i := 0; i < rng.Intn(10); i++ {
			p := random(n)
			if p != head && p != neck && p != food {
				barriers = append(barriers, p)
			}
		}
		b := NewBoard(n, barriers)

		want := shortestByRelaxation(b, head, neck, food)
		plan, err := FindPath(b, head, neck, food)
		if want < 0 {
			assert.ErrorIs(t, err, ErrUnreachable, "round %d", round)
			continue
		}
		require.NoError(t, err, "round %d", round)
		assert.Equal(t, want, plan.Len(), "round %d", round)
		assert.Equal(t, food, replay(t, b, head, neck, plan), "round %d", round)
	}
}
