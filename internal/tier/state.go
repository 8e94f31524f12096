package tier

import (
	"container/list"
	"time"

	"github.com/tiercache/go-tier-cache/internal/entry"
	"github.com/tiercache/go-tier-cache/internal/policy"
)

// state is one in-memory tier: a key-addressed map plus an insertion-ordered
// list, so victim scans see a deterministic iteration order. It carries no
// lock of its own; the Manager's mutex owns it.
type state[V any] struct {
	capacity int
	bytes    int64
	items    map[string]*entry.Entry[V]
	order    *list.List // keys, oldest insertion first
	elems    map[string]*list.Element
}

func newState[V any](capacity int) *state[V] {
	return &state[V]{
		capacity: capacity,
		items:    make(map[string]*entry.Entry[V]),
		order:    list.New(),
		elems:    make(map[string]*list.Element),
	}
}

func (s *state[V]) get(key string) (*entry.Entry[V], bool) {
	e, ok := s.items[key]
	return e, ok
}

// put registers an entry. The caller must have removed any previous residency
// for the key first.
func (s *state[V]) put(e *entry.Entry[V]) {
	key := e.Key()
	s.items[key] = e
	s.elems[key] = s.order.PushBack(key)
	s.bytes += e.Size()
}

func (s *state[V]) remove(key string) bool {
	e, ok := s.items[key]
	if !ok {
		return false
	}
	delete(s.items, key)
	if el, found := s.elems[key]; found {
		s.order.Remove(el)
		delete(s.elems, key)
	}
	s.bytes -= e.Size()
	return true
}

func (s *state[V]) len() int   { return len(s.items) }
func (s *state[V]) mem() int64 { return s.bytes }

// over reports whether the tier exceeds its nominal capacity. Non-positive
// capacity means unbounded.
func (s *state[V]) over() bool {
	return s.capacity > 0 && len(s.items) > s.capacity
}

func (s *state[V]) clear() {
	s.items = make(map[string]*entry.Entry[V])
	s.order.Init()
	s.elems = make(map[string]*list.Element)
	s.bytes = 0
}

// candidates returns the tier's entries in insertion order for victim scans.
func (s *state[V]) candidates() []policy.Candidate {
	out := make([]policy.Candidate, 0, s.order.Len())
	for el := s.order.Front(); el != nil; el = el.Next() {
		out = append(out, s.items[el.Value.(string)])
	}
	return out
}

func (s *state[V]) expiredKeys(now time.Time) []string {
	var out []string
	for key, e := range s.items {
		if e.Expired(now) {
			out = append(out, key)
		}
	}
	return out
}
