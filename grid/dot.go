package grid

// Dot is one LED position on the matrix. X grows rightward, Y grows
// upward: (0, 0) is the bottom-left corner and Y = Height-1 is the top
// row. All motion is saturating: stepping off an edge returns the same
// dot, which is how callers detect "hit the wall" without a separate
// bounds check.
type Dot struct {
	X, Y int
}

// Left returns the dot one cell to the left, clamped at the left edge.
func (d Dot) Left() Dot {
	if d.X > 0 {
		d.X--
	}
	return d
}

// Right returns the dot one cell to the right, clamped at the right edge.
func (d Dot) Right() Dot {
	if d.X < Width-1 {
		d.X++
	}
	return d
}

// Up returns the dot one cell up, clamped at the top row.
func (d Dot) Up() Dot {
	if d.Y < Height-1 {
		d.Y++
	}
	return d
}

// Down returns the dot one cell down, clamped at the bottom row.
func (d Dot) Down() Dot {
	if d.Y > 0 {
		d.Y--
	}
	return d
}

// Move returns the neighboring dot in the given direction, clamped at
// the edges.
func (d Dot) Move(dir Direction) Dot {
	switch dir {
	case Left:
		return d.Left()
	case Right:
		return d.Right()
	case Up:
		return d.Up()
	default:
		return d.Down()
	}
}
