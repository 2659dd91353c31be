package outline

import (
	"fmt"
	"os"
	"path/filepath"
)

// favouritesFile is the document name shared with earlier tools so an
// existing library is picked up unchanged.
const favouritesFile = "favourites.opml"

// favouritesDirs lists candidate data subdirectories, newest first. Reading
// falls through them for backward compatibility; writing always targets the
// first.
var favouritesDirs = []string{"tunetree", "curseradio"}

// Favourites is the pinned, user-ordered subtree of playable records. Unlike
// the rest of the tree it is populated eagerly at startup and saved back at
// shutdown.
type Favourites struct {
	*Record
}

// NewFavourites builds the favourites node under parent.
func NewFavourites(parent *Record) *Favourites {
	r := parent.Add(map[string]string{"text": "Favourites"})
	r.populated = true
	return &Favourites{Record: r}
}

// Add inserts a playable record. A record already parented by the favourites
// node is rejected, as is anything not playable. When another favourite
// carries the same URL the new record replaces it in place; the URL is the
// sole identity key. The return value reports whether a new entry was
// appended.
func (f *Favourites) Add(r *Record) bool {
	if r.Parent == f.Record || !r.IsPlayable() {
		return false
	}
	url := r.URL()
	for i, existing := range f.Children {
		if existing.URL() == url {
			f.Children[i] = r
			return false
		}
	}
	f.Children = append(f.Children, r)
	return true
}

// Load reads the favourites document from the first existing candidate path
// under the user data directory. A missing or unreadable document leaves the
// list empty.
func (f *Favourites) Load() {
	for _, dir := range favouritesDirs {
		path := filepath.Join(dataHome(), dir, favouritesFile)
		if _, err := os.Stat(path); err != nil {
			continue
		}
		_ = ReadFile(path, f.Record)
		return
	}
}

// Save writes the favourites document atomically: the new content lands in a
// temp file that is renamed over the old document.
func (f *Favourites) Save() error {
	dir := filepath.Join(dataHome(), favouritesDirs[0])
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create favourites dir: %w", err)
	}
	data, err := Marshal(f.Record)
	if err != nil {
		return fmt.Errorf("marshal favourites: %w", err)
	}
	path := filepath.Join(dir, favouritesFile)
	tmp, err := os.CreateTemp(dir, favouritesFile+".*")
	if err != nil {
		return fmt.Errorf("write favourites: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("write favourites: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("write favourites: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("write favourites: %w", err)
	}
	return nil
}

func dataHome() string {
	if dir := os.Getenv("XDG_DATA_HOME"); dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".local", "share")
}
