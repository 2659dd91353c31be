package listview

import (
	"fmt"
	"testing"
)

type sliceSource []string

func (s sliceSource) RowText(i int) string { return s[i] }
func (s sliceSource) Len() int             { return len(s) }

func numbered(n int) sliceSource {
	out := make(sliceSource, n)
	for i := range out {
		out[i] = fmt.Sprintf("item %d", i)
	}
	return out
}

func visible(f *Frame) []string {
	out := make([]string, f.Rows())
	for i := range out {
		out[i] = f.Row(i).Text
	}
	return out
}

func selectedRow(t *testing.T, f *Frame) int {
	t.Helper()
	found := -1
	for i := 0; i < f.Rows(); i++ {
		if f.Row(i).Selected {
			if found >= 0 {
				t.Fatalf("more than one selected row")
			}
			found = i
		}
	}
	if found < 0 {
		t.Fatalf("no selected row")
	}
	return found
}

func TestStepNetCount(t *testing.T) {
	src := numbered(6)
	cases := []struct {
		name  string
		steps []int // +1 down, -1 up
		want  int
	}{
		{"down three", []int{1, 1, 1}, 3},
		{"down then up", []int{1, 1, -1}, 1},
		{"clamped at top", []int{-1, -1, 1}, 1},
		{"clamped at bottom", []int{1, 1, 1, 1, 1, 1, 1, 1}, 5},
		{"bounce both ends", []int{1, 1, 1, 1, 1, 1, -1, -1, -1, -1, -1, -1, -1, 1}, 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			frame := NewFrame(3)
			list := New(frame, src)
			list.Refresh()
			for _, s := range tc.steps {
				if s > 0 {
					list.StepDown()
				} else {
					list.StepUp()
				}
			}
			if list.Index() != tc.want {
				t.Fatalf("index after steps = %d, want %d", list.Index(), tc.want)
			}
			if got := frame.Row(selectedRow(t, frame)).Text; got != src[tc.want] {
				t.Fatalf("selected row shows %q, want %q", got, src[tc.want])
			}
		})
	}
}

func TestStepShiftsWindowAtEdge(t *testing.T) {
	frame := NewFrame(3)
	list := New(frame, numbered(10))
	list.Refresh()

	for i := 0; i < 5; i++ {
		list.StepDown()
	}
	if list.Anchor() != 3 {
		t.Fatalf("anchor = %d, want 3", list.Anchor())
	}
	want := []string{"item 3", "item 4", "item 5"}
	for i, w := range want {
		if got := frame.Row(i).Text; got != w {
			t.Fatalf("row %d = %q, want %q", i, got, w)
		}
	}
	if selectedRow(t, frame) != 2 {
		t.Fatalf("selection should ride the bottom edge")
	}

	for i := 0; i < 5; i++ {
		list.StepUp()
	}
	if list.Index() != 0 || list.Anchor() != 0 {
		t.Fatalf("after stepping back: index=%d anchor=%d", list.Index(), list.Anchor())
	}
	if got := frame.Row(0).Text; got != "item 0" {
		t.Fatalf("row 0 = %q, want item 0", got)
	}
}

func TestRefreshIdempotent(t *testing.T) {
	frame := NewFrame(4)
	list := New(frame, numbered(10))
	list.Refresh()
	for i := 0; i < 6; i++ {
		list.StepDown()
	}

	list.Refresh()
	first := visible(frame)
	cursor, index := list.Cursor(), list.Index()
	list.Refresh()
	second := visible(frame)
	if cursor != list.Cursor() || index != list.Index() {
		t.Fatalf("refresh moved the selection: (%d,%d) -> (%d,%d)", cursor, index, list.Cursor(), list.Index())
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("row %d changed between refreshes: %q -> %q", i, first[i], second[i])
		}
	}
}

func TestRefreshClampsAfterDeletion(t *testing.T) {
	src := numbered(10)
	frame := NewFrame(3)
	list := New(frame, src)
	list.Refresh()
	list.JumpBottom()

	// Content shrank underneath the viewport.
	shrunk := src[:4]
	list.SetSource(shrunk, list.Cursor(), list.Index())
	list.Refresh()
	if list.Index() != 3 {
		t.Fatalf("index = %d, want clamp to 3", list.Index())
	}
	if got := frame.Row(selectedRow(t, frame)).Text; got != "item 3" {
		t.Fatalf("selected = %q, want item 3", got)
	}
}

func TestRefreshEmptySource(t *testing.T) {
	frame := NewFrame(3)
	list := New(frame, sliceSource{})
	list.Refresh()
	for i := 0; i < frame.Rows(); i++ {
		if frame.Row(i).Text != "" || frame.Row(i).Selected {
			t.Fatalf("empty source must render nothing")
		}
	}
	list.StepDown()
	list.PageDown()
	list.JumpBottom()
	if list.Index() != 0 || list.Cursor() != 0 {
		t.Fatalf("moves over an empty source must be no-ops")
	}
}

func TestPageDown(t *testing.T) {
	frame := NewFrame(4)
	list := New(frame, numbered(10))
	list.Refresh()

	list.PageDown()
	if list.Index() != 4 {
		t.Fatalf("first page down: index = %d, want 4", list.Index())
	}
	list.PageDown()
	if list.Index() != 8 {
		t.Fatalf("second page down: index = %d, want 8", list.Index())
	}
	// Partial page lands exactly on the last row.
	list.PageDown()
	if list.Index() != 9 {
		t.Fatalf("partial page down: index = %d, want 9", list.Index())
	}
	if got := frame.Row(selectedRow(t, frame)).Text; got != "item 9" {
		t.Fatalf("selected = %q, want item 9", got)
	}
	// Already on the last row: aligns with the bottom edge.
	list.PageDown()
	if list.Index() != 9 || list.Cursor() != 3 {
		t.Fatalf("page down at end: index=%d cursor=%d", list.Index(), list.Cursor())
	}
}

func TestPageUp(t *testing.T) {
	frame := NewFrame(4)
	list := New(frame, numbered(10))
	list.Refresh()
	list.JumpBottom()

	list.PageUp()
	if list.Index() != 5 {
		t.Fatalf("page up: index = %d, want 5", list.Index())
	}
	list.PageUp()
	if list.Index() != 1 {
		t.Fatalf("page up: index = %d, want 1", list.Index())
	}
	list.PageUp()
	if list.Index() != 0 || list.Cursor() != 0 {
		t.Fatalf("page up past top must land on the first row")
	}
}

func TestJumpBottomThenStepUpScenario(t *testing.T) {
	frame := NewFrame(1)
	list := New(frame, sliceSource{"Jazz", "News"})
	list.Refresh()

	list.JumpBottom()
	if got := frame.Row(0).Text; got != "News" {
		t.Fatalf("after JumpBottom row shows %q, want News", got)
	}
	list.StepUp()
	if got := frame.Row(0).Text; got != "Jazz" {
		t.Fatalf("after StepUp row shows %q, want Jazz", got)
	}
}

func TestJumpTo(t *testing.T) {
	frame := NewFrame(3)
	list := New(frame, numbered(10))
	list.Refresh()

	list.JumpTo(7)
	if list.Index() != 7 {
		t.Fatalf("index = %d, want 7", list.Index())
	}
	if got := frame.Row(selectedRow(t, frame)).Text; got != "item 7" {
		t.Fatalf("selected = %q, want item 7", got)
	}

	list.JumpTo(42)
	if list.Index() != 7 {
		t.Fatalf("out-of-range jump must be ignored")
	}
}

func TestMoveTracksRecord(t *testing.T) {
	src := sliceSource{"a", "b", "c", "d"}
	frame := NewFrame(3)
	list := New(frame, src)
	list.Refresh()
	list.StepDown() // select "b"

	// The model swapped b and c; keep following b.
	src[1], src[2] = src[2], src[1]
	list.MoveDown()
	if list.Index() != 2 {
		t.Fatalf("index = %d, want 2", list.Index())
	}
	if got := frame.Row(selectedRow(t, frame)).Text; got != "b" {
		t.Fatalf("selection shows %q, want b", got)
	}

	src[1], src[2] = src[2], src[1]
	list.MoveUp()
	if got := frame.Row(selectedRow(t, frame)).Text; got != "b" {
		t.Fatalf("selection shows %q after move up, want b", got)
	}
}

func TestFrameScrollOps(t *testing.T) {
	f := NewFrame(3)
	f.SetRow(0, "a", false)
	f.SetRow(1, "b", true)
	f.SetRow(2, "c", false)

	f.ScrollUp()
	if got := visible(f); got[0] != "b" || got[1] != "c" || got[2] != "" {
		t.Fatalf("after ScrollUp: %v", got)
	}
	f.ScrollDown()
	if got := visible(f); got[0] != "" || got[1] != "b" || got[2] != "c" {
		t.Fatalf("after ScrollDown: %v", got)
	}
}
