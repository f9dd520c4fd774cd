// Package grid models the 8x8 LED dot matrix: positions, directions,
// and the bit-packed screen handed to the display driver.
//
// Coordinates are always in [0, Width) x [0, Height); out-of-range
// access is a programming defect and panics, it is not a recoverable
// condition.
package grid

// Matrix dimensions. The hardware is a fixed 8x8 panel; nothing in this
// module generalizes beyond it.
const (
	Width     = 8
	Height    = 8
	TotalDots = Width * Height
)

// Screen is the 8x8 bitmap. Each column is one bit-packed byte where
// the high bit is the top row, the exact layout of the MAX7219 column
// registers, so Show can stream the bytes without translation.
type Screen struct {
	Columns [Width]uint8
}

// NewScreen builds a screen from raw column bytes. Used for static
// images such as title screens.
func NewScreen(columns [Width]uint8) *Screen {
	return &Screen{Columns: columns}
}

// mask returns the column bit for row y.
func mask(y int) uint8 {
	if y < 0 || y >= Height {
		panic("grid: row out of range")
	}
	return 1 << (Height - 1 - y)
}

// Set turns the dot on. This is not a toggle.
func (s *Screen) Set(d Dot) {
	s.Columns[d.X] |= mask(d.Y)
}

// Clear turns the dot off. This is not a toggle.
func (s *Screen) Clear(d Dot) {
	s.Columns[d.X] &^= mask(d.Y)
}

// IsSet reports whether the dot is on.
func (s *Screen) IsSet(d Dot) bool {
	return s.Columns[d.X]&mask(d.Y) != 0
}

// ClearAll turns every dot off.
func (s *Screen) ClearAll() {
	s.Columns = [Width]uint8{}
}

// CountLit returns the number of dots that are on.
func (s *Screen) CountLit() int {
	n := 0
	for _, col := range s.Columns {
		for b := col; b != 0; b &= b - 1 {
			n++
		}
	}
	return n
}

// Dots iterates every dot in raster order.
func (s *Screen) Dots() *DotIter {
	return newDotIter(s, func(*Screen, Dot) bool { return true })
}

// Lit iterates the dots that are on, in raster order.
func (s *Screen) Lit() *DotIter {
	return newDotIter(s, (*Screen).IsSet)
}

// Unlit iterates the dots that are off, in raster order.
func (s *Screen) Unlit() *DotIter {
	return newDotIter(s, func(s *Screen, d Dot) bool { return !s.IsSet(d) })
}

// DotIter walks a screen in raster order: all rows of column 0 from the
// top down, then column 1, and so on. Every call to Dots/Lit/Unlit
// starts a fresh traversal; an iterator cannot be rewound.
type DotIter struct {
	s    *Screen
	pred func(*Screen, Dot) bool
	x, y int
}

func newDotIter(s *Screen, pred func(*Screen, Dot) bool) *DotIter {
	return &DotIter{s: s, pred: pred, x: 0, y: Height - 1}
}

// Next returns the next dot matching the iterator's predicate, or
// ok == false when the traversal is exhausted.
func (it *DotIter) Next() (Dot, bool) {
	for ; it.x < Width; it.x++ {
		for ; it.y >= 0; it.y-- {
			d := Dot{X: it.x, Y: it.y}
			if it.pred(it.s, d) {
				it.y--
				return d, true
			}
		}
		it.y = Height - 1
	}
	return Dot{}, false
}
