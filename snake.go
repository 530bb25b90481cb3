package main // import "github.com/tonobo/gridsnake"

import (
	"errors"
	"fmt"
)

var ErrOpponentStride = errors.New("opponent segments do not fill whole groups")

type Snake struct {
	Body Positions `json:"body"`
}

func (s Snake) Head() Position {
	return s.Body[0]
}

// Neck is the cell the head vacated last tick. A one-segment snake has none,
// so the head itself is returned.
func (s Snake) Neck() Position {
	if len(s.Body) < 2 {
		return s.Body[0]
	}
	return s.Body[1]
}

// Blocks reports whether p hits a segment that will still be there after
// the move: everything except the head and the vacating tail.
func (s Snake) Blocks(p Position) bool {
	if len(s.Body) < 3 {
		return false
	}
	return s.Body[1 : len(s.Body)-1].Contains(p)
}

// Opponents is the flat segment list of every other snake, Stride segments
// per snake, head first within each group.
type Opponents struct {
	Segments Positions
	Stride   int
}

// NewOpponents groups flat coordinates by stride. When the segment count is
// not a multiple of stride the groups are still built, but ErrOpponentStride
// is returned so callers can flag the layout.
func NewOpponents(flat []int, stride int) (*Opponents, error) {
	if stride <= 0 {
		stride = OpponentStride
	}
	o := &Opponents{Segments: ParsePositions(flat), Stride: stride}
	if len(o.Segments)%stride != 0 {
		return o, fmt.Errorf("%w: %d segments, stride %d", ErrOpponentStride, len(o.Segments), stride)
	}
	return o, nil
}

func (o *Opponents) Empty() bool {
	return o == nil || len(o.Segments) == 0
}

func (o *Opponents) Count() int {
	if o.Empty() {
		return 0
	}
	return (len(o.Segments) + o.Stride - 1) / o.Stride
}

func (o *Opponents) Heads() Positions {
	heads := Positions{}
	if o.Empty() {
		return heads
	}
	for i := 0; i < len(o.Segments); i += o.Stride {
		heads = append(heads, o.Segments[i])
	}
	return heads
}

// Vacating reports whether segment i is among the last trail segments of its
// group, i.e. cells that will be free by the time anyone arrives.
func (o *Opponents) Vacating(i, trail int) bool {
	return i%o.Stride >= o.Stride-trail
}

// Blocks is the collision check used for move filtering: only the tail of
// each group is treated as vacating.
func (o *Opponents) Blocks(p Position) bool {
	if o.Empty() {
		return false
	}
	for i, seg := range o.Segments {
		if o.Vacating(i, 1) {
			continue
		}
		if seg == p {
			return true
		}
	}
	return false
}

// Within reports whether any segment not vacating under trail lies at
// Manhattan distance below dist from p.
func (o *Opponents) Within(p Position, dist, trail int) bool {
	if o.Empty() {
		return false
	}
	for i, seg := range o.Segments {
		if trail > 0 && o.Vacating(i, trail) {
			continue
		}
		if seg.Manhattan(p) < dist {
			return true
		}
	}
	return false
}
