// Package array provides index-addressed access, in-place sorting and binary
// search over a contiguous sequence of elements ordered by an
// [elem.Descriptor].
//
// Sorting is not stable: equal elements may be reordered by both BubbleSort
// and QuickSort. The search functions require the array to be sorted
// ascending by the same comparator.
package array

import (
	"fmt"

	"github.com/Sumatoshi-tech/algo/pkg/alg/elem"
)

// Array is a contiguous sequence of elements owned by the array value.
type Array[T any] struct {
	desc  elem.Descriptor[T]
	items []T
}

// New creates an array that takes ownership of items.
// It panics when desc has no comparator.
func New[T any](desc elem.Descriptor[T], items []T) *Array[T] {
	desc.MustValidate()

	return &Array[T]{desc: desc, items: items}
}

// Make creates an array of n zero elements.
func Make[T any](desc elem.Descriptor[T], n int) *Array[T] {
	return New(desc, make([]T, n))
}

// Empty creates an array with no storage, ready for Allocate.
func Empty[T any](desc elem.Descriptor[T]) *Array[T] {
	return New[T](desc, nil)
}

// Descriptor returns the descriptor the array was built with.
func (a *Array[T]) Descriptor() elem.Descriptor[T] {
	return a.desc
}

// Len returns the number of elements.
func (a *Array[T]) Len() int {
	return len(a.items)
}

// Items exposes the backing slice. Writes through it bypass the descriptor.
func (a *Array[T]) Items() []T {
	return a.items
}

// Populated reports whether the array owns storage.
func (a *Array[T]) Populated() bool {
	return a.items != nil
}

// Allocate gives an unpopulated array storage for n zero elements.
func (a *Array[T]) Allocate(n int) error {
	if a.Populated() {
		return fmt.Errorf("%w: array already holds %d elements", elem.ErrInvalidState, len(a.items))
	}

	if n < 0 {
		return fmt.Errorf("%w: negative element count %d", elem.ErrInvalidState, n)
	}

	a.items = make([]T, n)

	return nil
}

// Release drops the storage and resets the count to zero.
func (a *Array[T]) Release() {
	a.items = nil
}

// At returns the element at index i.
func (a *Array[T]) At(i int) (T, error) {
	if i < 0 || i >= len(a.items) {
		var zero T

		return zero, elem.OutOfRange(i, len(a.items))
	}

	return a.items[i], nil
}

// Set stores a copy of v at index i, made through the descriptor.
func (a *Array[T]) Set(i int, v T) error {
	if i < 0 || i >= len(a.items) {
		return elem.OutOfRange(i, len(a.items))
	}

	cp, err := a.desc.Clone(v)
	if err != nil {
		return err
	}

	a.items[i] = cp

	return nil
}

// ForEach calls action for every element in index order and stops at the
// first failure, which is returned wrapped in elem.ErrActionFailure.
func (a *Array[T]) ForEach(action func(T) error) error {
	for _, item := range a.items {
		if err := action(item); err != nil {
			return elem.ActionFailed(err)
		}
	}

	return nil
}

// IsSorted reports whether the elements are in ascending order.
func (a *Array[T]) IsSorted() bool {
	for i := 1; i < len(a.items); i++ {
		if a.desc.Compare(a.items[i-1], a.items[i]) > 0 {
			return false
		}
	}

	return true
}
