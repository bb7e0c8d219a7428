package dlist

import (
	"fmt"

	"github.com/Sumatoshi-tech/algo/pkg/alg/arena"
)

// CheckLinks verifies that every forward link has a matching back link and
// that the chain length agrees with Len.
func CheckLinks[T any](l *List[T]) error {
	prev := arena.Nil
	seen := 0

	for idx := l.head; idx != arena.Nil; idx = l.nodes.At(idx).next {
		if got := l.nodes.At(idx).prev; got != prev {
			return fmt.Errorf("node %d: prev %d, want %d", idx, got, prev)
		}

		prev = idx
		seen++

		if seen > l.nodes.Size() {
			return fmt.Errorf("cycle after %d nodes", seen)
		}
	}

	if seen != l.count {
		return fmt.Errorf("chain holds %d nodes, count %d", seen, l.count)
	}

	return nil
}

// LiveNodes returns the number of arena slots currently in use.
func LiveNodes[T any](l *List[T]) int {
	return l.nodes.Used()
}
