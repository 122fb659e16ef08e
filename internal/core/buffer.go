package core

// DoubleBuffer owns two equally sized grids and alternates which one is the
// main (front) buffer and which is the secondary (back). Swap only relabels
// the roles; cell data is never copied.
type DoubleBuffer struct {
	first bool
	a     *Grid
	b     *Grid
}

// NewDoubleBuffer allocates both grids at the given dimensions. The size is
// fixed for the buffer's lifetime.
func NewDoubleBuffer(w, h int) *DoubleBuffer {
	return &DoubleBuffer{first: true, a: NewGrid(w, h), b: NewGrid(w, h)}
}

// Front returns the grid holding the current generation.
func (d *DoubleBuffer) Front() *Grid {
	if d.first {
		return d.a
	}
	return d.b
}

// Back returns the scratch grid the next generation is written into.
func (d *DoubleBuffer) Back() *Grid {
	if d.first {
		return d.b
	}
	return d.a
}

// Swap flips the front and back roles.
func (d *DoubleBuffer) Swap() {
	d.first = !d.first
}
