// Package database implements the flat-file snapshot store backing the
// booking service.  The entire application state is one JSON document
// ({"users": [...], "movies": [...]}) that is read in full at the start
// of every operation and rewritten in full (pretty-printed) after every
// mutation.  A single mutex serializes the read-modify-write cycle so
// concurrent requests cannot lose seat-count updates.
package database

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/iliyamo/movie-ticket-booking/internal/model"
)

// Store owns the snapshot file.  All access goes through View and
// Update, which take the store lock for the duration of the call.
type Store struct {
	path string
	mu   chMutex
}

// chMutex is a channel-based mutex so lock acquisition can honor
// context cancellation while a slow disk write is in progress.
type chMutex chan struct{}

func (m chMutex) lock(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	select {
	case m <- struct{}{}:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (m chMutex) unlock() { <-m }

// Open prepares a store at the given path.  When the file does not
// exist yet it is created with an empty snapshot so that first reads
// succeed.  The parent directory is created as needed.
func Open(path string) (*Store, error) {
	if path == "" {
		return nil, fmt.Errorf("store: empty data file path")
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("store: create data dir: %w", err)
		}
	}
	s := &Store{path: path, mu: make(chMutex, 1)}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := s.write(&model.Snapshot{Users: []model.User{}, Movies: []model.Movie{}}); err != nil {
			return nil, err
		}
	} else if err != nil {
		return nil, fmt.Errorf("store: stat data file: %w", err)
	}
	return s, nil
}

// Path returns the location of the snapshot file.
func (s *Store) Path() string { return s.path }

// View loads the snapshot and passes it to fn.  The snapshot is loaded
// fresh from disk on every call; mutations made by fn are discarded.
func (s *Store) View(ctx context.Context, fn func(snap *model.Snapshot) error) error {
	if err := s.mu.lock(ctx); err != nil {
		return err
	}
	defer s.mu.unlock()

	snap, err := s.read()
	if err != nil {
		return err
	}
	return fn(snap)
}

// Update loads the snapshot, applies fn and persists the result.  When
// fn returns an error nothing is written, so a failed mutation leaves
// the on-disk state exactly as it was.  The write happens before Update
// returns; no change is visible to later reads until it succeeds.
func (s *Store) Update(ctx context.Context, fn func(snap *model.Snapshot) error) error {
	if err := s.mu.lock(ctx); err != nil {
		return err
	}
	defer s.mu.unlock()

	snap, err := s.read()
	if err != nil {
		return err
	}
	if err := fn(snap); err != nil {
		return err
	}
	return s.write(snap)
}

func (s *Store) read() (*model.Snapshot, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("store: read %s: %w", s.path, err)
	}
	var snap model.Snapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		return nil, fmt.Errorf("store: parse %s: %w", s.path, err)
	}
	return &snap, nil
}

// write replaces the snapshot file atomically: the document is written
// to a temp file in the same directory and renamed over the original,
// so a crash mid-write cannot leave a truncated snapshot behind.
func (s *Store) write(snap *model.Snapshot) error {
	raw, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("store: encode snapshot: %w", err)
	}
	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, ".snapshot-*.json")
	if err != nil {
		return fmt.Errorf("store: create temp file: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(raw); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("store: write snapshot: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("store: close temp file: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("store: replace snapshot: %w", err)
	}
	return nil
}
