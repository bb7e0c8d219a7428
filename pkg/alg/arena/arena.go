// Package arena provides index-addressed slot storage for linked node
// structures.
//
// Lists and trees built on an Arena link their nodes by uint32 slot index
// instead of by pointer. Slot 0 is reserved and plays the role of the nil
// link, so a zero-valued node has no neighbors. Freed slots are zeroed and
// reused most-recently-freed first.
package arena

import (
	"errors"
	"fmt"
	"math"
)

// ErrExhausted is returned by Alloc when no further slot can be handed out.
var ErrExhausted = errors.New("arena exhausted")

// Nil is the reserved slot index meaning "no node".
const Nil uint32 = 0

// maxSlots keeps [math.MaxUint32] unused so slot arithmetic never wraps.
const maxSlots = math.MaxUint32 - 1

// settings holds the tunables applied by Option.
type settings struct {
	limit    int
	capacity int
}

// Option configures an Arena.
type Option func(*settings)

// WithLimit caps the number of live slots. Zero or negative means unbounded.
func WithLimit(n int) Option {
	return func(s *settings) {
		s.limit = max(n, 0)
	}
}

// WithCapacity preallocates room for n slots.
func WithCapacity(n int) Option {
	return func(s *settings) {
		s.capacity = max(n, 0)
	}
}

// Arena stores nodes of type N in a growable slice.
type Arena[N any] struct {
	storage []N
	gaps    []uint32
	limit   int
}

// New creates an empty arena.
func New[N any](opts ...Option) *Arena[N] {
	var cfg settings

	for _, opt := range opts {
		opt(&cfg)
	}

	return &Arena[N]{
		storage: make([]N, 0, cfg.capacity),
		limit:   cfg.limit,
	}
}

// Size returns the number of slots backing the arena, free ones included.
func (a *Arena[N]) Size() int {
	return len(a.storage)
}

// Used returns the number of live slots.
func (a *Arena[N]) Used() int {
	if len(a.storage) == 0 {
		return 0
	}

	// Slot 0 is never handed out.
	return len(a.storage) - 1 - len(a.gaps)
}

// Limit returns the live slot cap, 0 when unbounded.
func (a *Arena[N]) Limit() int {
	return a.limit
}

// Alloc hands out a zeroed slot.
func (a *Arena[N]) Alloc() (uint32, error) {
	if a.limit > 0 && a.Used() >= a.limit {
		return Nil, fmt.Errorf("%w: limit of %d slots reached", ErrExhausted, a.limit)
	}

	if n := len(a.gaps); n > 0 {
		idx := a.gaps[n-1]
		a.gaps = a.gaps[:n-1]

		return idx, nil
	}

	if len(a.storage) == 0 {
		var reserved N

		a.storage = append(a.storage, reserved)
	}

	next := len(a.storage)
	if uint64(next) > maxSlots {
		return Nil, fmt.Errorf("%w: uint32 index space used up", ErrExhausted)
	}

	var fresh N

	a.storage = append(a.storage, fresh)

	return uint32(next), nil
}

// Free zeroes the slot and makes it available to Alloc again.
func (a *Arena[N]) Free(idx uint32) {
	if idx == Nil {
		panic("arena: slot #0 is reserved and cannot be freed")
	}

	var zero N

	a.storage[idx] = zero
	a.gaps = append(a.gaps, idx)
}

// At returns the node stored in slot idx.
// The pointer is invalidated by the next Alloc that grows the arena.
func (a *Arena[N]) At(idx uint32) *N {
	if idx == Nil {
		panic("arena: dereference of the nil slot")
	}

	return &a.storage[idx]
}

// Reset drops every slot at once, keeping the backing capacity.
func (a *Arena[N]) Reset() {
	clear(a.storage)
	a.storage = a.storage[:0]
	a.gaps = a.gaps[:0]
}
