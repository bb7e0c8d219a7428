package dlist

import "github.com/Sumatoshi-tech/algo/pkg/alg/arena"

// BubbleSort sorts the list ascending by relinking adjacent nodes; payloads
// never move. Each pass stops at the node where the previous pass ended,
// since everything past it is already in place. Sorting finishes on the
// first pass that performs no swap.
func (l *List[T]) BubbleSort() error {
	if l.head == arena.Nil {
		return nil
	}

	sentinel := arena.Nil

	for {
		swapped := false
		cur := l.head

		for l.nodes.At(cur).next != sentinel {
			next := l.nodes.At(cur).next

			if l.desc.Compare(l.nodes.At(cur).data, l.nodes.At(next).data) > 0 {
				// cur moves one position right and is compared again.
				l.swapAdjacent(cur, next)

				swapped = true

				continue
			}

			cur = next
		}

		if !swapped {
			return nil
		}

		sentinel = cur
	}
}

// swapAdjacent exchanges the chain positions of a and b, where b follows a.
// Four links change: the pair's own and their outer neighbors'.
func (l *List[T]) swapAdjacent(a, b uint32) {
	na, nb := l.nodes.At(a), l.nodes.At(b)
	outerPrev, outerNext := na.prev, nb.next

	na.prev, na.next = b, outerNext
	nb.prev, nb.next = outerPrev, a

	if outerPrev != arena.Nil {
		l.nodes.At(outerPrev).next = b
	} else {
		l.head = b
	}

	if outerNext != arena.Nil {
		l.nodes.At(outerNext).prev = a
	}
}
