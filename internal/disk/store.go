// Package disk persists evicted entries as individually addressable files,
// one per entry, named by a hex digest of the cache key.
package disk

import (
	"container/list"
	"encoding/json"
	"errors"
	"fmt"
	"hash/crc32"
	"os"
	"path/filepath"
	"sort"

	"github.com/rs/zerolog/log"
	"github.com/zeebo/xxh3"
)

const recordExt = ".cache"

var (
	ErrDisabled = errors.New("disk persistence is not enabled")
	errChecksum = errors.New("record payload checksum mismatch")
)

// Store is the disk tier: an insertion-ordered index over per-entry record
// files. Overflow past capacity is removed in plain FIFO order; the store
// never runs the configured eviction policy.
//
// Store is not safe for concurrent use on its own; the tier manager
// serializes access to it.
type Store struct {
	dir      string
	capacity int
	enabled  bool

	paths map[string]string
	order *list.List // keys, oldest first
	elems map[string]*list.Element
}

// NewStore initializes the cache directory (including parents) and rebuilds
// the index from any record files already present. A directory that cannot be
// created disables persistence for the session instead of failing the caller.
func NewStore(dir string, capacity int) *Store {
	s := &Store{
		dir:      dir,
		capacity: capacity,
		paths:    make(map[string]string),
		order:    list.New(),
		elems:    make(map[string]*list.Element),
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		log.Err(err).Str("dir", dir).Msg("[disk] init failed, persistence disabled")
		return s
	}
	s.enabled = true
	s.loadExisting()

	return s
}

func (s *Store) Enabled() bool { return s.enabled }
func (s *Store) Len() int      { return len(s.paths) }

func (s *Store) Contains(key string) bool {
	_, ok := s.paths[key]
	return ok
}

// Keys returns a snapshot of the indexed keys, oldest first.
func (s *Store) Keys() []string {
	out := make([]string, 0, s.order.Len())
	for el := s.order.Front(); el != nil; el = el.Next() {
		out = append(out, el.Value.(string))
	}
	return out
}

// Write persists a record and registers it in the index, then enforces the
// store's capacity by dropping the oldest-registered records. Dropped keys
// are returned so the caller can account for them.
func (s *Store) Write(rec Record) (dropped []string, err error) {
	if !s.enabled {
		return nil, ErrDisabled
	}

	rec.Checksum = crc32.ChecksumIEEE(rec.Payload)
	data, err := json.Marshal(rec)
	if err != nil {
		return nil, fmt.Errorf("marshal record: %w", err)
	}

	path := s.recordPath(rec.Key)
	tmp := path + ".tmp"
	if err = os.WriteFile(tmp, data, 0o644); err != nil {
		return nil, fmt.Errorf("write record: %w", err)
	}
	if err = os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return nil, fmt.Errorf("publish record: %w", err)
	}

	s.register(rec.Key, path)

	for s.capacity > 0 && len(s.paths) > s.capacity {
		front := s.order.Front()
		if front == nil {
			break
		}
		oldest := front.Value.(string)
		s.Delete(oldest)
		dropped = append(dropped, oldest)
	}

	return dropped, nil
}

// Read loads and verifies the record for a key. Any failure leaves cleanup to
// the caller; the index entry is not touched here.
func (s *Store) Read(key string) (Record, error) {
	path, ok := s.paths[key]
	if !ok {
		return Record{}, fmt.Errorf("record for key %q: %w", key, os.ErrNotExist)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Record{}, fmt.Errorf("read record: %w", err)
	}

	var rec Record
	if err = json.Unmarshal(data, &rec); err != nil {
		return Record{}, fmt.Errorf("unmarshal record: %w", err)
	}
	if crc32.ChecksumIEEE(rec.Payload) != rec.Checksum {
		return Record{}, errChecksum
	}

	return rec, nil
}

// Delete removes the backing file and the index entry. It reports whether the
// key was indexed.
func (s *Store) Delete(key string) bool {
	path, ok := s.paths[key]
	if !ok {
		return false
	}
	_ = os.Remove(path)
	delete(s.paths, key)
	if el, found := s.elems[key]; found {
		s.order.Remove(el)
		delete(s.elems, key)
	}
	return true
}

// Clear removes every backing file and empties the index.
func (s *Store) Clear() {
	for _, path := range s.paths {
		_ = os.Remove(path)
	}
	s.paths = make(map[string]string)
	s.order.Init()
	s.elems = make(map[string]*list.Element)
}

func (s *Store) register(key, path string) {
	if _, ok := s.paths[key]; ok {
		// keep the original index position on overwrite
		s.paths[key] = path
		return
	}
	s.paths[key] = path
	s.elems[key] = s.order.PushBack(key)
}

func (s *Store) recordPath(key string) string {
	sum := xxh3.HashString128(key)
	return filepath.Join(s.dir, fmt.Sprintf("%016x%016x%s", sum.Hi, sum.Lo, recordExt))
}

// loadExisting rebuilds the index from record files left by a previous
// session, oldest first by modification time. Unreadable or corrupt files are
// removed so a crash never wedges the store.
func (s *Store) loadExisting() {
	pattern := filepath.Join(s.dir, "*"+recordExt)
	files, _ := filepath.Glob(pattern)
	if len(files) == 0 {
		return
	}

	sort.Slice(files, func(i, j int) bool {
		fi, errI := os.Stat(files[i])
		fj, errJ := os.Stat(files[j])
		if errI != nil || errJ != nil {
			return files[i] < files[j]
		}
		return fi.ModTime().Before(fj.ModTime())
	})

	restored := 0
	for _, path := range files {
		data, err := os.ReadFile(path)
		if err != nil {
			log.Err(err).Str("file", path).Msg("[disk] load: read error, removing")
			_ = os.Remove(path)
			continue
		}
		var rec Record
		if err = json.Unmarshal(data, &rec); err != nil || rec.Key == "" {
			log.Err(err).Str("file", path).Msg("[disk] load: decode error, removing")
			_ = os.Remove(path)
			continue
		}
		if crc32.ChecksumIEEE(rec.Payload) != rec.Checksum {
			log.Error().Str("file", path).Msg("[disk] load: crc mismatch, removing")
			_ = os.Remove(path)
			continue
		}
		s.register(rec.Key, path)
		restored++
	}

	if restored > 0 {
		log.Info().Int("restored", restored).Str("dir", s.dir).Msg("[disk] index rebuilt")
	}
}
