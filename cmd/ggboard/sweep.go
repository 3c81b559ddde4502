package main

import (
	"github.com/gogpu/ggboard/batch"
)

// sweeper walks a point clockwise around the border of a width x height
// board, one pixel per step, starting at the top-left corner.
type sweeper struct {
	width, height uint32
	x, y          uint32
}

// next returns the current point and advances.
func (s *sweeper) next() batch.Point {
	p := batch.Point{X: s.x, Y: s.y}
	maxX, maxY := s.width-1, s.height-1
	switch {
	case s.y == 0 && s.x < maxX:
		s.x++
	case s.x == maxX && s.y < maxY:
		s.y++
	case s.y == maxY && s.x > 0:
		s.x--
	case s.x == 0 && s.y > 0:
		s.y--
	}
	return p
}

// changeTo builds the batch that moves the end of line id to p.
func changeTo(id string, p batch.Point) batch.Ops {
	return batch.Ops{Change: []batch.ChangeOp{{ID: id, To: &p}}}
}
