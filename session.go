package main // import "github.com/tonobo/gridsnake"

import (
	"errors"
	"sync"
	"time"

	"github.com/go-kit/log/level"
)

// Session owns the cached plan of one game. A plan survives across ticks and
// is dropped whenever the barriers, the target food or the head position no
// longer match what it was built for.
type Session struct {
	ID string

	mu       sync.Mutex
	plan     Plan
	planned  bool
	target   Position
	barriers string
	expect   Position
}

func NewSession(id string) *Session {
	return &Session{ID: id}
}

func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reset()
}

func (s *Session) reset() {
	s.plan = nil
	s.planned = false
	s.target = Position{}
	s.barriers = ""
	s.expect = Position{}
}

// Pending is the number of moves left in the cached plan.
func (s *Session) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.plan.Len()
}

// Target is the food the cached plan leads to.
func (s *Session) Target() (Position, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.target, s.planned
}

func (s *Session) stale(b *Board, head Position, foods Positions) bool {
	return !s.planned ||
		s.plan.Len() == 0 ||
		s.barriers != b.BarrierKey() ||
		!foods.Contains(s.target) ||
		s.expect != head
}

// Next pops one move of the plan toward food, searching a new plan first
// when the cached one is missing or stale. ErrUnreachable means no offered
// food can be reached.
func (s *Session) Next(b *Board, self Snake, foods Positions) (Direction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	head := self.Head()
	if s.stale(b, head, foods) {
		if err := s.replan(b, self, foods); err != nil {
			return DirectionUnreachable, err
		}
	}
	d, ok := s.plan.Pop()
	if !ok {
		// Head already sits on the target; nothing to search for.
		return GreedyMove(b, self, s.target), nil
	}
	s.expect = head.Step(d)
	return d, nil
}

func (s *Session) replan(b *Board, self Snake, foods Positions) error {
	s.reset()
	head := self.Head()
	for _, target := range RankTargets(b, head, foods) {
		if target == head {
			continue
		}
		plan, err := FindPath(b, head, self.Neck(), target)
		if errors.Is(err, ErrUnreachable) {
			continue
		}
		s.plan = plan
		s.planned = true
		s.target = target
		s.barriers = b.BarrierKey()
		return nil
	}
	if foods.Contains(head) {
		// Only the food under the head is left; Next steps off it greedily.
		s.planned = true
		s.target = head
		s.barriers = b.BarrierKey()
		return nil
	}
	return ErrUnreachable
}

// SessionStore keeps one Session per game ID. Hosts that never call /end
// leave sessions behind; Expire drops the ones not used since a cutoff.
type SessionStore struct {
	mu       sync.Mutex
	sessions map[string]*Session
	used     map[string]time.Time
}

func NewSessionStore() *SessionStore {
	return &SessionStore{
		sessions: make(map[string]*Session),
		used:     make(map[string]time.Time),
	}
}

func (st *SessionStore) Get(id string) *Session {
	st.mu.Lock()
	defer st.mu.Unlock()
	s, found := st.sessions[id]
	if !found {
		s = NewSession(id)
		st.sessions[id] = s
	}
	st.used[id] = time.Now()
	return s
}

// Expire drops every session last fetched before cutoff and returns how
// many went.
func (st *SessionStore) Expire(cutoff time.Time) int {
	st.mu.Lock()
	defer st.mu.Unlock()
	dropped := 0
	for id, at := range st.used {
		if at.Before(cutoff) {
			delete(st.sessions, id)
			delete(st.used, id)
			dropped++
		}
	}
	return dropped
}

// Sweep calls Expire every interval for sessions idle longer than idle,
// until done is closed.
func (st *SessionStore) Sweep(interval, idle time.Duration, done <-chan struct{}) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-done:
			return
		case now := <-ticker.C:
			if n := st.Expire(now.Add(-idle)); n > 0 {
				_ = level.Info(GlobalLogger()).Log("msg", "expired idle sessions", "count", n)
			}
		}
	}
}

func (st *SessionStore) Drop(id string) bool {
	st.mu.Lock()
	defer st.mu.Unlock()
	_, found := st.sessions[id]
	delete(st.sessions, id)
	delete(st.used, id)
	return found
}

func (st *SessionStore) Len() int {
	st.mu.Lock()
	defer st.mu.Unlock()
	return len(st.sessions)
}
