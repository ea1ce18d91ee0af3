package keyword

import (
	"errors"
	"sync"
)

// ErrNoCollection is returned by session operations that require an active
// collection when none has been loaded.
var ErrNoCollection = errors.New("no active keyword collection")

// Session guards the single working collection. The original design kept
// this as ambient process state with no locking; here every operation is a
// critical section so concurrent callers cannot interleave a tag update
// with a removal.
type Session struct {
	mu      sync.Mutex
	records []Record
	loaded  bool
}

func NewSession() *Session {
	return &Session{}
}

// Replace installs a new collection wholesale.
func (s *Session) Replace(records []Record) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = clone(records)
	s.loaded = true
}

// Snapshot returns a copy of the current collection.
func (s *Session) Snapshot() ([]Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.loaded {
		return nil, ErrNoCollection
	}
	return clone(s.records), nil
}

func (s *Session) UpdateRole(id int, role Role) error {
	return s.mutate(func(records []Record) []Record {
		return UpdateRole(records, id, role)
	})
}

func (s *Session) SetParent(id, parentID int) error {
	return s.mutate(func(records []Record) []Record {
		return SetParent(records, id, parentID)
	})
}

func (s *Session) Remove(id int) error {
	return s.mutate(func(records []Record) []Record {
		return Remove(records, id)
	})
}

func (s *Session) Reorder(newIDOrder []int) error {
	return s.mutate(func(records []Record) []Record {
		return Reorder(records, newIDOrder)
	})
}

func (s *Session) FilterByVolumeFloor(min int) error {
	return s.mutate(func(records []Record) []Record {
		return FilterByVolumeFloor(records, min)
	})
}

func (s *Session) mutate(op func([]Record) []Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.loaded {
		return ErrNoCollection
	}
	s.records = op(s.records)
	return nil
}
