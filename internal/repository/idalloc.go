package repository

import "sync"

// IDAllocator hands out strictly increasing identifiers starting at 1.
// Identifiers are never reused, even after the entity they named is deleted.
type IDAllocator struct {
	mu   sync.Mutex
	last int
}

// NewIDAllocator creates an allocator whose first identifier is 1
func NewIDAllocator() *IDAllocator {
	return &IDAllocator{}
}

// Next returns a new identifier
func (a *IDAllocator) Next() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.last++
	return a.last
}

// Last returns the most recently issued identifier, or 0 if none was issued yet
func (a *IDAllocator) Last() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.last
}
