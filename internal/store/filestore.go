// Package store provides persistence adapters for timeline aggregates:
// a JSON file store for normal use and an in-memory store for tests.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"daybook/internal/log"
	"daybook/internal/timeline"
)

const timelinesDir = "timelines"

// snapshotBuffer bounds how many undelivered snapshots a slow subscriber
// may queue before further ones are dropped.
const snapshotBuffer = 64

// FileStore persists one JSON document per project under
// <root>/timelines/<projectID>.json. Writes are atomic (temp file +
// rename) and serialized per store; subscribers receive every saved
// snapshot in order.
type FileStore struct {
	root string

	mu   sync.Mutex
	subs map[string][]*subscription
}

type subscription struct {
	projectID string
	ch        chan timeline.List
	done      chan struct{}
	closeOnce sync.Once
}

var _ timeline.Store = (*FileStore)(nil)

// NewFileStore creates a file store rooted at the given directory. The
// directory is created lazily on first save.
func NewFileStore(root string) *FileStore {
	return &FileStore{
		root: root,
		subs: make(map[string][]*subscription),
	}
}

func (s *FileStore) path(projectID string) string {
	return filepath.Join(s.root, timelinesDir, projectID+".json")
}

// Load reads and decodes the project's timeline document.
func (s *FileStore) Load(_ context.Context, projectID string) (*timeline.List, error) {
	data, err := os.ReadFile(s.path(projectID))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("project %s: %w", projectID, timeline.ErrTimelineNotFound)
		}
		return nil, fmt.Errorf("read timeline: %w", err)
	}

	var list timeline.List
	if err := json.Unmarshal(data, &list); err != nil {
		return nil, fmt.Errorf("parse timeline: %w", err)
	}
	return &list, nil
}

// Save writes the whole aggregate atomically via a temp file + rename,
// then notifies subscribers for the project.
func (s *FileStore) Save(_ context.Context, projectID string, list *timeline.List) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	path := s.path(projectID)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create timelines directory: %w", err)
	}

	data, err := json.MarshalIndent(list, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal timeline: %w", err)
	}

	tmpPath := fmt.Sprintf("%s.tmp.%d", path, os.Getpid())
	if err := os.WriteFile(tmpPath, data, 0644); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("rename temp file: %w", err)
	}

	s.notifyLocked(projectID, list)
	return nil
}

// Subscribe registers a snapshot callback for the project. The current
// document, if any, is delivered first; afterwards every save for the
// project is delivered in order. The returned function cancels the
// subscription and is safe to call more than once.
func (s *FileStore) Subscribe(projectID string, onSnapshot func(timeline.List), onError func(error)) (func(), error) {
	sub := &subscription{
		projectID: projectID,
		ch:        make(chan timeline.List, snapshotBuffer),
		done:      make(chan struct{}),
	}

	go func() {
		for {
			select {
			case l := <-sub.ch:
				onSnapshot(l)
			case <-sub.done:
				return
			}
		}
	}()

	s.mu.Lock()
	// Deliver the current state before any future save can queue up.
	if current, err := s.Load(context.Background(), projectID); err == nil {
		sub.ch <- *current.Clone()
	} else if onError != nil && !errors.Is(err, timeline.ErrTimelineNotFound) {
		onError(err)
	}
	s.subs[projectID] = append(s.subs[projectID], sub)
	s.mu.Unlock()

	cancel := func() {
		sub.closeOnce.Do(func() { close(sub.done) })
		s.mu.Lock()
		defer s.mu.Unlock()
		subs := s.subs[projectID]
		for i, candidate := range subs {
			if candidate == sub {
				s.subs[projectID] = append(subs[:i], subs[i+1:]...)
				break
			}
		}
	}
	return cancel, nil
}

// notifyLocked queues a snapshot for every subscriber of the project.
// The caller holds s.mu, which keeps delivery order consistent across
// subscribers. A subscriber that falls snapshotBuffer behind misses the
// snapshot; ordering of what it does receive is preserved.
func (s *FileStore) notifyLocked(projectID string, list *timeline.List) {
	for _, sub := range s.subs[projectID] {
		select {
		case sub.ch <- *list.Clone():
		default:
			log.Info("dropping snapshot for slow subscriber", "project", projectID)
		}
	}
}
