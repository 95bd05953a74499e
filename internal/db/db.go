package db

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/renameio/v2"
)

// Record is one schemaless element of a collection file.
// Numbers decode as json.Number so millisecond ids survive a round trip.
type Record = map[string]any

// Store persists named collections as whole-file JSON arrays under a
// directory. Every call re-reads or rewrites the full file; nothing is
// cached between calls.
type Store struct {
	dir string

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewStore creates dir if needed and returns a store rooted there.
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("store: create data dir: %w", err)
	}
	return &Store{dir: dir, locks: make(map[string]*sync.Mutex)}, nil
}

// Dir returns the data directory.
func (s *Store) Dir() string {
	return s.dir
}

func (s *Store) path(collection string) string {
	return filepath.Join(s.dir, collection+".json")
}

// Read returns the records of a collection. A missing, empty or corrupt
// file reads as an empty collection.
func (s *Store) Read(collection string) []Record {
	data, err := os.ReadFile(s.path(collection))
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			slog.Warn("store: read failed, treating as empty", "collection", collection, "error", err)
		}
		return []Record{}
	}
	records, err := decode(data)
	if err != nil {
		if len(bytes.TrimSpace(data)) > 0 {
			slog.Warn("store: parse failed, treating as empty", "collection", collection, "error", err)
		}
		return []Record{}
	}
	return records
}

// Write replaces the collection file with records. The new file is
// renamed into place so readers never see a partial write.
func (s *Store) Write(collection string, records []Record) error {
	if records == nil {
		records = []Record{}
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(records); err != nil {
		return fmt.Errorf("store: encode %s: %w", collection, err)
	}
	if err := renameio.WriteFile(s.path(collection), bytes.TrimRight(buf.Bytes(), "\n"), 0o644); err != nil {
		return fmt.Errorf("store: write %s: %w", collection, err)
	}
	return nil
}

// Update runs a read-modify-write cycle on one collection while holding
// that collection's lock. If fn returns an error nothing is written.
// The lock is per process; other processes sharing the directory can
// still interleave.
func (s *Store) Update(collection string, fn func([]Record) ([]Record, error)) error {
	l := s.lock(collection)
	l.Lock()
	defer l.Unlock()

	records, err := fn(s.Read(collection))
	if err != nil {
		return err
	}
	return s.Write(collection, records)
}

func (s *Store) lock(collection string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.locks[collection]
	if !ok {
		l = &sync.Mutex{}
		s.locks[collection] = l
	}
	return l
}

func decode(data []byte) ([]Record, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var records []Record
	if err := dec.Decode(&records); err != nil {
		return nil, err
	}
	if dec.More() {
		return nil, errors.New("trailing data after array")
	}
	if records == nil {
		return nil, errors.New("not an array")
	}
	return records, nil
}
