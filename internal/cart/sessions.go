package cart

import (
	"context"
	"sync"
	"time"
)

const defaultIdleTTL = 12 * time.Hour

type sessionEntry struct {
	store    *Store
	lastSeen time.Time
}

// Sessions owns exactly one Store per browser session.
type Sessions struct {
	mu       sync.Mutex
	entries  map[string]*sessionEntry
	idleTTL  time.Duration
	observer MutationObserver
	now      func() time.Time
}

// NewSessions builds a registry whose stores report to observer (may be nil).
func NewSessions(idleTTL time.Duration, observer MutationObserver) *Sessions {
	if idleTTL <= 0 {
		idleTTL = defaultIdleTTL
	}
	return &Sessions{
		entries:  make(map[string]*sessionEntry),
		idleTTL:  idleTTL,
		observer: observer,
		now:      time.Now,
	}
}

// ForSession returns the session's store, creating an empty one on first use.
func (s *Sessions) ForSession(sessionID string) *Store {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.entries[sessionID]
	if !ok {
		entry = &sessionEntry{store: NewStore(s.observer)}
		s.entries[sessionID] = entry
	}
	entry.lastSeen = s.now()
	return entry.store
}

// Drop forgets the session's store.
func (s *Sessions) Drop(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, sessionID)
}

// Len returns the number of live sessions.
func (s *Sessions) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// Sweep evicts sessions idle for longer than the configured TTL and returns how many were dropped.
func (s *Sessions) Sweep(now time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	evicted := 0
	for id, entry := range s.entries {
		if now.Sub(entry.lastSeen) > s.idleTTL {
			delete(s.entries, id)
			evicted++
		}
	}
	return evicted
}

// Run sweeps on every tick until ctx is canceled.
func (s *Sessions) Run(ctx context.Context, interval time.Duration, onSweep func(evicted int)) {
	if interval <= 0 {
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			evicted := s.Sweep(s.now())
			if onSweep != nil {
				onSweep(evicted)
			}
		}
	}
}
