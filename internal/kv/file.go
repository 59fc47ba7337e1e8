package kv

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/luxe-fashion/luxe-backend/pkg/logger"
)

// FileStore persists the whole keyspace as one JSON object in a single
// file, the server-side analog of a browser's local storage. The file is
// read once at open; every Save rewrites it atomically.
type FileStore struct {
	mu     sync.Mutex
	path   string
	values map[string]json.RawMessage
}

func NewFileStore(path string) (*FileStore, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create storage directory: %w", err)
		}
	}

	s := &FileStore{
		path:   path,
		values: make(map[string]json.RawMessage),
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read storage file: %w", err)
		}
		logger.Info("Storage file not found, starting empty", map[string]interface{}{
			"path": path,
		})
		return s, nil
	}

	if err := json.Unmarshal(data, &s.values); err != nil {
		// Corrupt file: fail open with an empty keyspace rather than refuse to start.
		logger.Warn("Storage file is corrupt, starting empty", map[string]interface{}{
			"path":  path,
			"error": err.Error(),
		})
		s.values = make(map[string]json.RawMessage)
	}

	return s, nil
}

func (s *FileStore) Load(key string) ([]byte, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	value, ok := s.values[key]
	if !ok {
		return nil, false
	}
	out := make([]byte, len(value))
	copy(out, value)
	return out, true
}

func (s *FileStore) Save(key string, value []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !json.Valid(value) {
		logger.Warn("Dropping non-JSON value for storage key", map[string]interface{}{
			"key": key,
		})
		return
	}

	stored := make(json.RawMessage, len(value))
	copy(stored, value)
	s.values[key] = stored
	s.flush()
}

func (s *FileStore) Delete(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.values[key]; !ok {
		return
	}
	delete(s.values, key)
	s.flush()
}

// flush rewrites the backing file. Caller must hold the mutex. Failures
// are logged and swallowed: persistence is best effort, the in-memory
// keyspace stays correct for the running session.
func (s *FileStore) flush() {
	data, err := json.MarshalIndent(s.values, "", "  ")
	if err != nil {
		logger.Warn("Failed to encode storage keyspace", map[string]interface{}{
			"error": err.Error(),
		})
		return
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		logger.Warn("Failed to write storage file", map[string]interface{}{
			"path":  s.path,
			"error": err.Error(),
		})
		return
	}
	if err := os.Rename(tmp, s.path); err != nil {
		logger.Warn("Failed to replace storage file", map[string]interface{}{
			"path":  s.path,
			"error": err.Error(),
		})
	}
}

// Snapshot writes a timestamped copy of the keyspace into dir and returns
// the snapshot path. Used by the backup scheduler.
func (s *FileStore) Snapshot(dir string) (string, error) {
	s.mu.Lock()
	data, err := json.MarshalIndent(s.values, "", "  ")
	s.mu.Unlock()
	if err != nil {
		return "", fmt.Errorf("failed to encode storage keyspace: %w", err)
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create snapshot directory: %w", err)
	}

	name := fmt.Sprintf("%s-%s.json", snapshotPrefix, time.Now().Format("20060102-150405"))
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write snapshot: %w", err)
	}

	return path, nil
}

const snapshotPrefix = "luxe-store"

// PruneSnapshots removes all but the keep most recent snapshots in dir.
func PruneSnapshots(dir string, keep int) error {
	entries, err := filepath.Glob(filepath.Join(dir, snapshotPrefix+"-*.json"))
	if err != nil {
		return err
	}
	if len(entries) <= keep {
		return nil
	}

	// Timestamped names sort chronologically.
	sort.Strings(entries)
	for _, path := range entries[:len(entries)-keep] {
		if err := os.Remove(path); err != nil {
			return err
		}
	}
	return nil
}
