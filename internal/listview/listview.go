// Package listview maps a scroll position over an arbitrarily large list of
// rows onto a fixed-height window. Single steps repaint at most two rows or
// shift the window by one line; only Refresh walks the full window.
package listview

// Source supplies row content for whatever list is currently displayed. The
// engine never caches row text across calls; content may mutate between any
// two operations as long as Refresh runs before the next paint.
type Source interface {
	RowText(i int) string
	Len() int
}

// Painter receives incremental redraw operations. Row indexes are window
// rows, not list indexes.
type Painter interface {
	Rows() int
	Clear()
	SetRow(row int, text string, selected bool)
	// ScrollUp discards the top line and shifts the window up, leaving the
	// bottom row blank. ScrollDown inserts a blank line at the top.
	ScrollUp()
	ScrollDown()
}

// List is the scroll state machine: cursor is the selected window row and
// index the selected absolute list position, so index-cursor is the list
// index shown on row 0.
type List struct {
	painter Painter
	source  Source

	cursor int
	index  int
}

// New builds a list over source painting into painter.
func New(painter Painter, source Source) *List {
	return &List{painter: painter, source: source}
}

// SetSource swaps the displayed list and restores a saved position. The
// caller must follow with Refresh.
func (l *List) SetSource(source Source, cursor, index int) {
	l.source = source
	l.cursor = cursor
	l.index = index
}

// Cursor returns the selected window row.
func (l *List) Cursor() int { return l.cursor }

// Index returns the selected absolute list index.
func (l *List) Index() int { return l.index }

// Anchor returns the list index displayed on window row 0.
func (l *List) Anchor() int { return l.index - l.cursor }

// Refresh repaints the whole window. It clamps index after deletions, pulls
// the window down when a gap opened at the bottom, and clamps the cursor so
// the anchor never goes negative. This is the only O(rows) path.
func (l *List) Refresh() {
	l.painter.Clear()
	length := l.source.Len()
	if length == 0 {
		l.cursor, l.index = 0, 0
		return
	}
	rows := l.painter.Rows()
	if l.index >= length {
		l.index = length - 1
	}
	if below := length - l.index; rows-l.cursor > below {
		l.cursor = rows - below
	}
	if l.cursor > l.index {
		l.cursor = l.index
	}
	for row := 0; row < rows; row++ {
		i := l.index - l.cursor + row
		if i >= length {
			break
		}
		l.painter.SetRow(row, l.source.RowText(i), row == l.cursor)
	}
}

// StepDown moves the selection one row down, repainting only the two
// affected rows. At the bottom window edge the window shifts by one line
// instead.
func (l *List) StepDown() {
	length := l.source.Len()
	if length == 0 || l.index+1 >= length {
		return
	}
	rows := l.painter.Rows()
	l.painter.SetRow(l.cursor, l.source.RowText(l.index), false)
	if l.cursor+1 < rows {
		l.cursor++
	} else {
		l.painter.ScrollUp()
		l.cursor = rows - 1
	}
	l.index++
	l.painter.SetRow(l.cursor, l.source.RowText(l.index), true)
}

// StepUp is the converse of StepDown.
func (l *List) StepUp() {
	if l.source.Len() == 0 || l.index == 0 {
		return
	}
	l.painter.SetRow(l.cursor, l.source.RowText(l.index), false)
	if l.cursor > 0 {
		l.cursor--
	} else {
		l.painter.ScrollDown()
	}
	l.index--
	l.painter.SetRow(l.cursor, l.source.RowText(l.index), true)
}

// PageDown advances by one window of rows when room remains; a partial page
// lands on the last row via Refresh, keeping the final row on the window
// edge.
func (l *List) PageDown() {
	length := l.source.Len()
	if length == 0 {
		return
	}
	rows := l.painter.Rows()
	if next := l.index + rows; next < length {
		l.index = next
		l.Refresh()
		return
	}
	last := length - 1
	delta := last - l.index
	if delta > 0 && l.cursor+delta < rows {
		l.cursor += delta
		l.index = last
		l.Refresh()
		return
	}
	l.JumpBottom()
}

// PageUp moves back by one window of rows, or to the first row.
func (l *List) PageUp() {
	length := l.source.Len()
	if length == 0 {
		return
	}
	rows := l.painter.Rows()
	if prev := l.index - rows; prev >= 0 {
		l.index = prev
		l.Refresh()
		return
	}
	l.JumpTop()
}

// JumpTop selects the first row.
func (l *List) JumpTop() {
	l.cursor, l.index = 0, 0
	l.Refresh()
}

// JumpBottom selects the last row, aligned with the bottom window edge.
func (l *List) JumpBottom() {
	length := l.source.Len()
	if length == 0 {
		return
	}
	rows := l.painter.Rows()
	l.cursor = min(rows-1, length-1)
	l.index = length - 1
	l.Refresh()
}

// JumpTo selects an arbitrary list index, keeping the cursor row where
// possible.
func (l *List) JumpTo(i int) {
	length := l.source.Len()
	if length == 0 || i < 0 || i >= length {
		return
	}
	l.index = i
	l.Refresh()
}

// MoveUp tracks the selection after the underlying record swapped with its
// previous sibling, then repaints.
func (l *List) MoveUp() {
	if l.index > 0 {
		l.index--
	}
	if l.cursor > 0 {
		l.cursor--
	}
	l.Refresh()
}

// MoveDown tracks the selection after a swap with the next sibling.
func (l *List) MoveDown() {
	if l.index < l.source.Len()-1 {
		l.index++
	}
	if l.cursor < l.painter.Rows()-1 {
		l.cursor++
	}
	l.Refresh()
}
