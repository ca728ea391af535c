package infrastructure

import (
	"sync"

	"adsniper/internal/domain"
)

// MemorySlot is an in-memory slot store. It backs tests and the degraded
// in-memory-only mode when no durable storage is available.
type MemorySlot struct {
	mutex sync.RWMutex
	value string
	set   bool
}

var _ domain.SlotStore = (*MemorySlot)(nil)

func NewMemorySlot() *MemorySlot {
	return &MemorySlot{}
}

// NewMemorySlotWith returns a slot pre-populated with value, as if a
// previous session had written it.
func NewMemorySlotWith(value string) *MemorySlot {
	return &MemorySlot{value: value, set: true}
}

func (s *MemorySlot) Get() (string, bool, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return s.value, s.set, nil
}

func (s *MemorySlot) Set(value string) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.value = value
	s.set = true
	return nil
}
