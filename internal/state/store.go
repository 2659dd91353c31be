// Package state shares the now-playing status line between the background
// poller and the UI. The store is the only mutable state the two goroutines
// touch together; everything else stays on the UI side.
package state

import (
	"sync"
	"time"
)

// Store coordinates status line updates. The zero value is ready to use.
type Store struct {
	mu        sync.Mutex
	station   string
	status    string
	updatedAt time.Time
	force     bool
}

// SetStation records the station whose stream is being played and resets the
// status line to its bare name.
func (s *Store) SetStation(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.station = name
	s.status = name
	s.updatedAt = time.Now()
}

// Station returns the current station name.
func (s *Store) Station() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.station
}

// Publish replaces the status line and clears any pending refresh request.
func (s *Store) Publish(line string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.status = line
	s.updatedAt = time.Now()
	s.force = false
}

// Status returns the current status line.
func (s *Store) Status() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}

// UpdatedAt returns when the status line last changed.
func (s *Store) UpdatedAt() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.updatedAt
}

// RequestRefresh asks the poller to republish even when the title has not
// changed, typically because the view was repainted for an unrelated reason.
func (s *Store) RequestRefresh() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.force = true
}

// RefreshRequested reports whether a forced republish is pending.
func (s *Store) RefreshRequested() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.force
}
