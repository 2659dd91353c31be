package state

import (
	"sync"
	"testing"
)

func TestStoreZeroValue(t *testing.T) {
	var s Store
	if s.Status() != "" || s.Station() != "" {
		t.Fatalf("zero store must be empty")
	}
	if s.RefreshRequested() {
		t.Fatalf("zero store must not request a refresh")
	}
}

func TestSetStationResetsStatus(t *testing.T) {
	var s Store
	s.SetStation("Jazz FM")
	s.Publish("Jazz FM: Take Five")
	if s.Status() != "Jazz FM: Take Five" {
		t.Fatalf("status = %q", s.Status())
	}

	s.SetStation("News 24")
	if s.Status() != "News 24" {
		t.Fatalf("new station must reset the status line, got %q", s.Status())
	}
}

func TestPublishClearsRefreshRequest(t *testing.T) {
	var s Store
	s.RequestRefresh()
	if !s.RefreshRequested() {
		t.Fatalf("refresh request not recorded")
	}
	s.Publish("line")
	if s.RefreshRequested() {
		t.Fatalf("publish must clear the refresh request")
	}
	if s.UpdatedAt().IsZero() {
		t.Fatalf("publish must stamp the update time")
	}
}

func TestStoreConcurrentAccess(t *testing.T) {
	var s Store
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 200; j++ {
				s.Publish("line")
				_ = s.Status()
				s.RequestRefresh()
				_ = s.RefreshRequested()
			}
		}()
	}
	wg.Wait()
}
