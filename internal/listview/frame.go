package listview

// Cell is one rendered row of a Frame.
type Cell struct {
	Text     string
	Selected bool
}

// Frame is a fixed-height row grid implementing Painter. Rows live in a ring
// buffer so line shifts cost O(1) instead of rewriting the window.
type Frame struct {
	cells []Cell
	head  int
}

// NewFrame builds a frame with the given row capacity.
func NewFrame(rows int) *Frame {
	if rows < 1 {
		rows = 1
	}
	return &Frame{cells: make([]Cell, rows)}
}

// Rows implements Painter.
func (f *Frame) Rows() int { return len(f.cells) }

// Clear implements Painter.
func (f *Frame) Clear() {
	f.head = 0
	for i := range f.cells {
		f.cells[i] = Cell{}
	}
}

// SetRow implements Painter.
func (f *Frame) SetRow(row int, text string, selected bool) {
	if row < 0 || row >= len(f.cells) {
		return
	}
	f.cells[f.slot(row)] = Cell{Text: text, Selected: selected}
}

// ScrollUp implements Painter: the top line falls off and a blank row
// appears at the bottom.
func (f *Frame) ScrollUp() {
	f.cells[f.head] = Cell{}
	f.head = (f.head + 1) % len(f.cells)
}

// ScrollDown implements Painter: a blank line is inserted at the top and the
// bottom row falls off.
func (f *Frame) ScrollDown() {
	f.head = (f.head - 1 + len(f.cells)) % len(f.cells)
	f.cells[f.head] = Cell{}
}

// Row returns the cell at the given window row.
func (f *Frame) Row(row int) Cell {
	if row < 0 || row >= len(f.cells) {
		return Cell{}
	}
	return f.cells[f.slot(row)]
}

// Resize changes the row capacity, dropping content. Callers refresh the
// owning list afterwards.
func (f *Frame) Resize(rows int) {
	if rows < 1 {
		rows = 1
	}
	f.cells = make([]Cell, rows)
	f.head = 0
}

func (f *Frame) slot(row int) int {
	return (f.head + row) % len(f.cells)
}
