// Package elem defines the element descriptor shared by the array, list and
// tree containers of pkg/alg.
//
// A Descriptor bundles the total order over elements with the optional swap
// and copy operations used by algorithms that relocate or duplicate elements.
// Containers never look inside an element: everything they know about T goes
// through the descriptor they were built with. The stride of an element is
// the byte size of T and is therefore identical for every element a
// container holds.
package elem

import (
	"cmp"
	"fmt"
	"reflect"
)

// CompareFunc returns a negative number when a sorts before b, zero when they
// are equivalent and a positive number when a sorts after b.
type CompareFunc[T any] func(a, b T) int

// SwapFunc exchanges two elements in place.
type SwapFunc[T any] func(a, b *T)

// CopyFunc writes a private copy of src into dst. A non-nil error means the
// copy could not be made and is reported as ErrAllocation.
type CopyFunc[T any] func(dst *T, src T) error

// Descriptor parameterizes every container operation over the element type.
// Compare is required; Swap and Copy fall back to plain value semantics.
//
// Compare must stay the same for the lifetime of a structure: changing it
// invalidates the sortedness of lists and the balance of trees built with it.
type Descriptor[T any] struct {
	Compare CompareFunc[T]
	Swap    SwapFunc[T]
	Copy    CopyFunc[T]
}

// Ordered returns a descriptor over a naturally ordered type.
func Ordered[T cmp.Ordered]() Descriptor[T] {
	return Descriptor[T]{Compare: cmp.Compare[T]}
}

// Validate reports ErrInvalidState when the descriptor cannot order elements.
func (d Descriptor[T]) Validate() error {
	if d.Compare == nil {
		return fmt.Errorf("%w: descriptor has no comparator", ErrInvalidState)
	}

	return nil
}

// MustValidate panics when Validate fails. Container constructors use it:
// a missing comparator is a programming error, not a runtime condition.
func (d Descriptor[T]) MustValidate() {
	if err := d.Validate(); err != nil {
		panic("elem: " + err.Error())
	}
}

// Stride returns the fixed byte size of one element.
func (d Descriptor[T]) Stride() int {
	return int(reflect.TypeFor[T]().Size())
}

// Footprint returns the number of bytes occupied by n elements.
func (d Descriptor[T]) Footprint(n int) uint64 {
	if n <= 0 {
		return 0
	}

	return uint64(n) * uint64(d.Stride())
}

// Exchange swaps *a and *b using Swap when set.
func (d Descriptor[T]) Exchange(a, b *T) {
	if d.Swap != nil {
		d.Swap(a, b)

		return
	}

	*a, *b = *b, *a
}

// Clone returns a private copy of src made through Copy when set.
func (d Descriptor[T]) Clone(src T) (T, error) {
	if d.Copy == nil {
		return src, nil
	}

	var dst T

	err := d.Copy(&dst, src)
	if err != nil {
		var zero T

		return zero, fmt.Errorf("%w: %w", ErrAllocation, err)
	}

	return dst, nil
}

// Reverse returns a descriptor ordering elements in descending order.
func (d Descriptor[T]) Reverse() Descriptor[T] {
	compare := d.Compare

	return Descriptor[T]{
		Compare: func(a, b T) int { return compare(b, a) },
		Swap:    d.Swap,
		Copy:    d.Copy,
	}
}
