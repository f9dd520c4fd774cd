// Package snake is the snake game: a fixed-capacity body on the 8x8
// matrix, an egg to chase, and a tick loop that speeds up with every
// egg eaten. Nothing allocates after construction; the worst-case body
// (every cell of the grid) fits the ring by design.
package snake

import "dotgames/grid"

// segment is one unit of the snake: where it is and where it moves on
// the next tick.
type segment struct {
	dir grid.Direction
	pos grid.Dot
}

// next returns the segment one tick later, wall-clamped, heading
// unchanged.
func (s segment) next() segment {
	return segment{dir: s.dir, pos: s.pos.Move(s.dir)}
}

// tail is a fixed-capacity deque of segments with overwrite-oldest
// eviction. Capacity equals the grid size, so growth can never
// overrun it. Front is the segment nearest the head, back the oldest.
type tail struct {
	segs  [grid.TotalDots]segment
	start int
	count int
}

func (t *tail) len() int {
	return t.count
}

func (t *tail) clear() {
	t.start = 0
	t.count = 0
}

// pushFront adds the newest segment, evicting the oldest when full.
func (t *tail) pushFront(s segment) {
	if t.count == len(t.segs) {
		t.count--
	}
	t.start = (t.start + len(t.segs) - 1) % len(t.segs)
	t.segs[t.start] = s
	t.count++
}

// pushBack appends at the oldest end. Used only while laying out the
// starting body; the caller keeps it within capacity.
func (t *tail) pushBack(s segment) {
	t.segs[(t.start+t.count)%len(t.segs)] = s
	t.count++
}

// popBack removes and returns the oldest segment.
func (t *tail) popBack() segment {
	if t.count == 0 {
		panic("snake: pop from empty tail")
	}
	s := t.segs[(t.start+t.count-1)%len(t.segs)]
	t.count--
	return s
}

// at returns the i-th segment from the front, 0 being the newest.
func (t *tail) at(i int) segment {
	if i < 0 || i >= t.count {
		panic("snake: tail index out of range")
	}
	return t.segs[(t.start+i)%len(t.segs)]
}

// slitherResult is the outcome of one body move.
type slitherResult int

const (
	moved slitherResult = iota
	eggEaten
	collided
)

// snake is the player's character: a mutable head plus the tail that
// follows in its tracks. The engine owns it exclusively.
type snake struct {
	head segment
	tail tail
}

// init lays out the starting body: length three on the middle row, head
// centered, moving right. Reusable as reset; the ring is kept.
func (s *snake) init() {
	s.tail.clear()
	s.head = segment{dir: grid.Right, pos: grid.Dot{X: startLength, Y: startRow}}
	s.tail.pushBack(segment{dir: grid.Right, pos: grid.Dot{X: startLength - 1, Y: startRow}})
	s.tail.pushBack(segment{dir: grid.Right, pos: grid.Dot{X: startLength - 2, Y: startRow}})
}

// length counts head plus tail.
func (s *snake) length() int {
	return s.tail.len() + 1
}

// setDirection steers the head. The exact opposite of the current
// heading is rejected: turning around in place would be an instant
// self-collision.
func (s *snake) setDirection(dir grid.Direction) {
	if dir.Opposite() != s.head.dir {
		s.head.dir = dir
	}
}

// collides reports whether the head overlaps any tail segment. A wall
// hit is caught here too: a clamped head stays put and therefore equals
// the segment just pushed behind it.
func (s *snake) collides() bool {
	for i := 0; i < s.tail.len(); i++ {
		if s.tail.at(i).pos == s.head.pos {
			return true
		}
	}
	return false
}

// slither advances the body one tick. Eating the egg skips the pop,
// which is the entire growth mechanism. On a plain move the dropped
// oldest segment is returned so the caller can clear its cell.
func (s *snake) slither(egg grid.Dot) (slitherResult, segment) {
	s.tail.pushFront(s.head)
	s.head = s.head.next()
	if s.head.pos == egg {
		return eggEaten, segment{}
	}
	dropped := s.tail.popBack()
	if s.collides() {
		return collided, segment{}
	}
	return moved, dropped
}
