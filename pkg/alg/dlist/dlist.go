// Package dlist implements a doubly-linked, non-circular list of element
// copies ordered by an [elem.Descriptor].
//
// Nodes live in an [arena.Arena] and link to their neighbors by slot index.
// Every insertion makes a private copy of the element through the
// descriptor, so the list never aliases caller buffers. The list supports
// head insertion, sorted insertion, head removal, teardown, traversal and an
// in-place bubble sort that relinks nodes instead of moving payloads.
package dlist

import (
	"fmt"
	"reflect"

	"github.com/Sumatoshi-tech/algo/pkg/alg/arena"
	"github.com/Sumatoshi-tech/algo/pkg/alg/elem"
)

// node owns one element and its two neighbor links.
type node[T any] struct {
	data T
	prev uint32
	next uint32
}

// List is a doubly-linked list. The zero value is not usable; call New.
type List[T any] struct {
	desc  elem.Descriptor[T]
	nodes *arena.Arena[node[T]]
	head  uint32
	count int
}

// NodeSize returns the arena footprint in bytes of one list node holding a T.
func NodeSize[T any]() uint64 {
	return uint64(reflect.TypeFor[node[T]]().Size())
}

// New creates an empty list. Arena options such as [arena.WithLimit] bound
// the number of nodes the list may hold.
// It panics when desc has no comparator.
func New[T any](desc elem.Descriptor[T], opts ...arena.Option) *List[T] {
	desc.MustValidate()

	return &List[T]{
		desc:  desc,
		nodes: arena.New[node[T]](opts...),
		head:  arena.Nil,
	}
}

// Descriptor returns the descriptor the list was built with.
func (l *List[T]) Descriptor() elem.Descriptor[T] {
	return l.desc
}

// Len returns the number of elements.
func (l *List[T]) Len() int {
	return l.count
}

// Empty reports whether the list holds no element.
func (l *List[T]) Empty() bool {
	return l.head == arena.Nil
}

// Front returns the head element.
func (l *List[T]) Front() (T, bool) {
	if l.head == arena.Nil {
		var zero T

		return zero, false
	}

	return l.nodes.At(l.head).data, true
}

// Values returns the elements from head to tail.
func (l *List[T]) Values() []T {
	out := make([]T, 0, l.count)

	for idx := l.head; idx != arena.Nil; idx = l.nodes.At(idx).next {
		out = append(out, l.nodes.At(idx).data)
	}

	return out
}

// InsertFront links a copy of e as the new head.
func (l *List[T]) InsertFront(e T) error {
	idx, err := l.newNode(e)
	if err != nil {
		return err
	}

	l.nodes.At(idx).next = l.head

	if l.head != arena.Nil {
		l.nodes.At(l.head).prev = idx
	}

	l.head = idx
	l.count++

	return nil
}

// InsertSorted inserts a copy of e keeping the list ascending. An element
// that compares <= the head becomes the new head; otherwise it is spliced
// before the first node it does not compare greater than.
func (l *List[T]) InsertSorted(e T) error {
	if l.head == arena.Nil || l.desc.Compare(e, l.nodes.At(l.head).data) <= 0 {
		return l.InsertFront(e)
	}

	idx, err := l.newNode(e)
	if err != nil {
		return err
	}

	prev, cur := arena.Nil, l.head
	for cur != arena.Nil && l.desc.Compare(e, l.nodes.At(cur).data) > 0 {
		prev, cur = cur, l.nodes.At(cur).next
	}

	fresh := l.nodes.At(idx)
	fresh.prev = prev
	fresh.next = cur

	// prev is never nil here: the head compared less than e.
	l.nodes.At(prev).next = idx

	if cur != arena.Nil {
		l.nodes.At(cur).prev = idx
	}

	l.count++

	return nil
}

// PopFront unlinks and releases the head, returning its element.
// It is a no-op on an empty list.
func (l *List[T]) PopFront() (T, bool) {
	if l.head == arena.Nil {
		var zero T

		return zero, false
	}

	head := l.head
	data := l.nodes.At(head).data
	second := l.nodes.At(head).next

	l.nodes.Free(head)

	if second != arena.Nil {
		l.nodes.At(second).prev = arena.Nil
	}

	l.head = second
	l.count--

	return data, true
}

// ForEach calls action on every element from head to tail and stops at the
// first failure, returned wrapped in elem.ErrActionFailure.
func (l *List[T]) ForEach(action func(T) error) error {
	for idx := l.head; idx != arena.Nil; {
		n := l.nodes.At(idx)
		next := n.next

		if err := action(n.data); err != nil {
			return elem.ActionFailed(err)
		}

		idx = next
	}

	return nil
}

// Teardown releases every node from head to tail and leaves an empty list.
func (l *List[T]) Teardown() {
	for idx := l.head; idx != arena.Nil; {
		next := l.nodes.At(idx).next
		l.nodes.Free(idx)
		idx = next
	}

	l.head = arena.Nil
	l.count = 0
}

func (l *List[T]) newNode(e T) (uint32, error) {
	data, err := l.desc.Clone(e)
	if err != nil {
		return arena.Nil, err
	}

	idx, err := l.nodes.Alloc()
	if err != nil {
		return arena.Nil, fmt.Errorf("%w: %w", elem.ErrAllocation, err)
	}

	l.nodes.At(idx).data = data

	return idx, nil
}
