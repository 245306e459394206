package asset

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/OneOfOne/xxhash"
)

// Store keeps blobs addressed by the hash of their content. Storing the
// same bytes twice yields the same identifier, so repeated exports of an
// unchanged clip never duplicate data.
type Store struct {
	mu    sync.Mutex
	blobs map[string][]byte
	dir   string
}

// StoreOption configures a [Store].
type StoreOption func(*Store)

// WithDir mirrors every stored blob into dir, named by its identifier.
// Lookups fall back to the directory when the in-memory map misses.
func WithDir(dir string) StoreOption {
	return func(s *Store) {
		s.dir = dir
	}
}

// NewStore returns an empty in-memory store.
func NewStore(opts ...StoreOption) *Store {
	s := &Store{
		blobs: make(map[string][]byte),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// BlobID returns the content address for data.
func BlobID(data []byte) string {
	return fmt.Sprintf("%016x", xxhash.Checksum64(data))
}

// Put stores data and returns its content address.
func (s *Store) Put(data []byte) (string, error) {
	id := BlobID(data)

	s.mu.Lock()
	if _, ok := s.blobs[id]; !ok {
		buf := make([]byte, len(data))
		copy(buf, data)
		s.blobs[id] = buf
	}
	s.mu.Unlock()

	if s.dir != "" {
		path := filepath.Join(s.dir, id)
		if _, err := os.Stat(path); os.IsNotExist(err) {
			if err := os.WriteFile(path, data, 0o644); err != nil {
				return "", fmt.Errorf("writing blob %s: %w", id, err)
			}
		}
	}
	return id, nil
}

// Get returns the blob stored under id.
func (s *Store) Get(id string) ([]byte, error) {
	s.mu.Lock()
	data, ok := s.blobs[id]
	s.mu.Unlock()
	if ok {
		return data, nil
	}

	if s.dir != "" {
		data, err := os.ReadFile(filepath.Join(s.dir, id))
		if err == nil {
			return data, nil
		}
	}
	return nil, fmt.Errorf("asset %q not found", id)
}

// Len returns the number of blobs held in memory.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.blobs)
}
