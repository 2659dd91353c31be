// Package outline holds the in-memory station directory: a mutable tree of
// records parsed from OPML-style documents, plus the favourites subtree that
// persists across sessions.
package outline

// Kind classifies a record for navigation and playback.
type Kind int

const (
	// Directory records are navigable folders.
	Directory Kind = iota
	// Playable records are audio stations with a stream URL.
	Playable
	// Leaf records are neither navigable nor playable.
	Leaf
)

// Position is a saved viewport location, restored when the user re-enters a
// folder.
type Position struct {
	Cursor int // row within the visible window
	Index  int // absolute child index of the selection
}

// Record is one node of the directory tree. Attrs always carries "text"; it
// may carry "URL", "type" and arbitrary extra fields from the source
// document. The parent pointer is non-owning and used only for "go up".
type Record struct {
	Attrs    map[string]string
	Children []*Record
	Parent   *Record

	// Pos remembers where the viewport was the last time this record was
	// the displayed folder.
	Pos Position

	populated bool
}

// New builds a detached record from an attribute map.
func New(attrs map[string]string) *Record {
	if attrs == nil {
		attrs = map[string]string{}
	}
	return &Record{Attrs: attrs}
}

// Add appends a child built from attrs and returns it.
func (r *Record) Add(attrs map[string]string) *Record {
	child := New(attrs)
	child.Parent = r
	r.Children = append(r.Children, child)
	return child
}

// Text returns the display label.
func (r *Record) Text() string {
	return r.Attrs["text"]
}

// URL returns the record's URL attribute, empty when absent.
func (r *Record) URL() string {
	return r.Attrs["URL"]
}

// Len returns the number of children.
func (r *Record) Len() int {
	return len(r.Children)
}

// Classify derives the record's kind from its current attributes and
// children. It is a pure function; nothing is cached. A record without a URL
// always classifies as a directory, so malformed nodes fail toward
// "navigable" rather than "playable".
func (r *Record) Classify() Kind {
	if len(r.Children) > 0 {
		return Directory
	}
	if _, ok := r.Attrs["URL"]; !ok {
		return Directory
	}
	if r.Attrs["type"] == "link" {
		return Directory
	}
	if r.Attrs["type"] == "audio" {
		return Playable
	}
	return Leaf
}

// IsDir reports whether the record is navigable.
func (r *Record) IsDir() bool {
	return r.Classify() == Directory
}

// IsPlayable reports whether the record can be handed to the player.
func (r *Record) IsPlayable() bool {
	return r.Classify() == Playable
}

// MoveChildUp swaps child i with its previous sibling. It returns false at
// the top boundary.
func (r *Record) MoveChildUp(i int) bool {
	if i <= 0 || i >= len(r.Children) {
		return false
	}
	r.Children[i-1], r.Children[i] = r.Children[i], r.Children[i-1]
	return true
}

// MoveChildDown swaps child i with its next sibling. It returns false at the
// bottom boundary.
func (r *Record) MoveChildDown(i int) bool {
	if i < 0 || i >= len(r.Children)-1 {
		return false
	}
	r.Children[i], r.Children[i+1] = r.Children[i+1], r.Children[i]
	return true
}

// RemoveChild deletes child i, keeping the order of the rest. It returns
// false when i is out of range.
func (r *Record) RemoveChild(i int) bool {
	if i < 0 || i >= len(r.Children) {
		return false
	}
	r.Children = append(r.Children[:i], r.Children[i+1:]...)
	return true
}
