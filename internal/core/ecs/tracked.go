package ecs

// ChangeKind classifies a change-log entry.
type ChangeKind uint8

const (
	ChangeInserted ChangeKind = iota
	ChangeModified
	ChangeRemoved
)

// Change is one entry of a tracked store's change log.
type Change struct {
	Entity EntityID
	Kind   ChangeKind
}

// ChangeReader is an independent cursor over a tracked store's change log.
// Each subscriber owns one reader; draining it does not disturb other
// readers.
type ChangeReader struct {
	cursor uint64 // absolute sequence of the next unread entry
}

// TrackedStore wraps a dense Store and records every insertion,
// modification and removal in an append-only log. Writes must go through
// Set/Remove — mutating through a pointer would bypass tracking, so no
// Ptr accessor is exposed.
type TrackedStore[T any] struct {
	store   *Store[T]
	log     []Change
	base    uint64 // absolute sequence of log[0]
	readers []*ChangeReader
}

func NewTrackedStore[T any]() *TrackedStore[T] {
	return &TrackedStore[T]{store: NewStore[T]()}
}

// Set inserts or replaces the component and records Inserted or Modified
// accordingly. Replacing counts as a modification even if the value is
// unchanged, matching write-observability rather than value diffing.
func (s *TrackedStore[T]) Set(id EntityID, c T) {
	kind := ChangeInserted
	if s.store.Has(id) {
		kind = ChangeModified
	}
	s.store.Set(id, c)
	s.log = append(s.log, Change{Entity: id, Kind: kind})
}

// Remove deletes the component and records Removed. No-op when absent.
func (s *TrackedStore[T]) Remove(id EntityID) {
	if !s.store.Has(id) {
		return
	}
	s.store.Remove(id)
	s.log = append(s.log, Change{Entity: id, Kind: ChangeRemoved})
}

func (s *TrackedStore[T]) Get(id EntityID) (T, bool) { return s.store.Get(id) }

func (s *TrackedStore[T]) Has(id EntityID) bool { return s.store.Has(id) }

func (s *TrackedStore[T]) Len() int { return s.store.Len() }

func (s *TrackedStore[T]) All() []EntityID { return s.store.All() }

// Each visits components read-only, in insertion order. Mutations must go
// through Set to stay observable.
func (s *TrackedStore[T]) Each(fn func(EntityID, T)) {
	s.store.Each(func(id EntityID, c *T) { fn(id, *c) })
}

// NewReader registers a cursor positioned at the current end of the log:
// a new subscriber sees only changes made after it subscribed.
func (s *TrackedStore[T]) NewReader() *ChangeReader {
	r := &ChangeReader{cursor: s.base + uint64(len(s.log))}
	s.readers = append(s.readers, r)
	return r
}

// Read returns all changes recorded since the reader's last Read and
// advances its cursor. Other readers are unaffected.
func (s *TrackedStore[T]) Read(r *ChangeReader) []Change {
	if r.cursor < s.base {
		// Cursor fell behind a compaction; this cannot happen while the
		// reader is registered, but guard against misuse.
		r.cursor = s.base
	}
	start := r.cursor - s.base
	if start >= uint64(len(s.log)) {
		return nil
	}
	out := make([]Change, uint64(len(s.log))-start)
	copy(out, s.log[start:])
	r.cursor = s.base + uint64(len(s.log))
	return out
}

// Maintain compacts log entries already consumed by every registered
// reader. Called by world housekeeping after the removal flush.
func (s *TrackedStore[T]) Maintain() {
	if len(s.readers) == 0 {
		s.base += uint64(len(s.log))
		s.log = s.log[:0]
		return
	}
	min := s.readers[0].cursor
	for _, r := range s.readers[1:] {
		if r.cursor < min {
			min = r.cursor
		}
	}
	if min <= s.base {
		return
	}
	drop := min - s.base
	if drop > uint64(len(s.log)) {
		drop = uint64(len(s.log))
	}
	s.log = append(s.log[:0], s.log[drop:]...)
	s.base += drop
}
