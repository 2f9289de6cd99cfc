package store

import (
	"context"
	"fmt"
	"sync"

	"daybook/internal/timeline"
)

// MemoryStore is a map-backed timeline store with the same contract as
// FileStore. Snapshots are delivered synchronously on save, which keeps
// engine tests deterministic.
type MemoryStore struct {
	mu    sync.Mutex
	lists map[string]*timeline.List
	subs  map[string][]*memorySub
}

type memorySub struct {
	onSnapshot func(timeline.List)
	cancelled  bool
}

var _ timeline.Store = (*MemoryStore)(nil)

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		lists: make(map[string]*timeline.List),
		subs:  make(map[string][]*memorySub),
	}
}

// Load returns a deep copy of the stored aggregate.
func (s *MemoryStore) Load(_ context.Context, projectID string) (*timeline.List, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	list, ok := s.lists[projectID]
	if !ok {
		return nil, fmt.Errorf("project %s: %w", projectID, timeline.ErrTimelineNotFound)
	}
	return list.Clone(), nil
}

// Save stores a deep copy of the aggregate and notifies subscribers.
func (s *MemoryStore) Save(_ context.Context, projectID string, list *timeline.List) error {
	s.mu.Lock()
	s.lists[projectID] = list.Clone()
	subs := make([]*memorySub, 0, len(s.subs[projectID]))
	for _, sub := range s.subs[projectID] {
		if !sub.cancelled {
			subs = append(subs, sub)
		}
	}
	s.mu.Unlock()

	for _, sub := range subs {
		sub.onSnapshot(*list.Clone())
	}
	return nil
}

// Subscribe registers a callback, delivering the current snapshot first.
func (s *MemoryStore) Subscribe(projectID string, onSnapshot func(timeline.List), _ func(error)) (func(), error) {
	sub := &memorySub{onSnapshot: onSnapshot}

	s.mu.Lock()
	current := s.lists[projectID]
	s.subs[projectID] = append(s.subs[projectID], sub)
	s.mu.Unlock()

	if current != nil {
		onSnapshot(*current.Clone())
	}

	cancel := func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		sub.cancelled = true
	}
	return cancel, nil
}
