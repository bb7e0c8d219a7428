package elem

import "sync/atomic"

// Stats counts the descriptor operations performed by a container.
// Counters are atomic so they can be read while the owner keeps working.
type Stats struct {
	compares atomic.Int64
	swaps    atomic.Int64
	copies   atomic.Int64
}

// Counts is a point-in-time view of Stats.
type Counts struct {
	Compares int64
	Swaps    int64
	Copies   int64
}

// Snapshot returns the current counter values.
func (s *Stats) Snapshot() Counts {
	return Counts{
		Compares: s.compares.Load(),
		Swaps:    s.swaps.Load(),
		Copies:   s.copies.Load(),
	}
}

// Reset zeroes all counters.
func (s *Stats) Reset() {
	s.compares.Store(0)
	s.swaps.Store(0)
	s.copies.Store(0)
}

// Instrument returns a copy of d whose operations are counted in s.
// The wrapped Swap and Copy keep the default semantics of d when unset.
func Instrument[T any](d Descriptor[T], s *Stats) Descriptor[T] {
	inner := d

	return Descriptor[T]{
		Compare: func(a, b T) int {
			s.compares.Add(1)

			return inner.Compare(a, b)
		},
		Swap: func(a, b *T) {
			s.swaps.Add(1)
			inner.Exchange(a, b)
		},
		Copy: func(dst *T, src T) error {
			s.copies.Add(1)

			if inner.Copy == nil {
				*dst = src

				return nil
			}

			return inner.Copy(dst, src)
		},
	}
}
