// Package convert moves elements between the array, list and tree
// containers, either by copying them or by transferring them and releasing
// the source.
//
// Conversions stop at the first failure and do not roll back: after an error
// the destination may be partly filled and, in Replace mode, the source
// partly drained. Callers should discard both sides.
package convert

import (
	"fmt"

	"github.com/Sumatoshi-tech/algo/pkg/alg/array"
	"github.com/Sumatoshi-tech/algo/pkg/alg/avl"
	"github.com/Sumatoshi-tech/algo/pkg/alg/dlist"
)

// Mode selects what happens to the source of a conversion.
type Mode int

const (
	// Copy leaves the source untouched.
	Copy Mode = iota
	// Replace empties the source as its elements move over.
	Replace
)

// String implements fmt.Stringer.
func (m Mode) String() string {
	switch m {
	case Copy:
		return "copy"
	case Replace:
		return "replace"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// ListToArray fills the unpopulated dst with the list elements in list
// order. In Replace mode each source node is popped once it is copied.
func ListToArray[T any](src *dlist.List[T], dst *array.Array[T], mode Mode) error {
	if err := dst.Allocate(src.Len()); err != nil {
		return fmt.Errorf("list to array: %w", err)
	}

	if mode == Replace {
		for i := 0; !src.Empty(); i++ {
			v, _ := src.Front()
			if err := dst.Set(i, v); err != nil {
				return fmt.Errorf("list to array: %w", err)
			}

			src.PopFront()
		}

		return nil
	}

	i := 0

	err := src.ForEach(func(v T) error {
		if err := dst.Set(i, v); err != nil {
			return err
		}

		i++

		return nil
	})
	if err != nil {
		return fmt.Errorf("list to array: %w", err)
	}

	return nil
}

// ArrayToList inserts every array element into dst in sorted position. In
// Replace mode the source storage is released afterwards.
func ArrayToList[T any](src *array.Array[T], dst *dlist.List[T], mode Mode) error {
	for _, v := range src.Items() {
		if err := dst.InsertSorted(v); err != nil {
			return fmt.Errorf("array to list: %w", err)
		}
	}

	if mode == Replace {
		src.Release()
	}

	return nil
}

// ArrayToTree inserts every array element into dst. Elements equal to one
// already in the tree are dropped. In Replace mode the source storage is
// released afterwards.
func ArrayToTree[T any](src *array.Array[T], dst *avl.Tree[T], mode Mode) error {
	for _, v := range src.Items() {
		if err := dst.Insert(v); err != nil {
			return fmt.Errorf("array to tree: %w", err)
		}
	}

	if mode == Replace {
		src.Release()
	}

	return nil
}

// TreeToArray fills the unpopulated dst with the tree elements in ascending
// order. In Replace mode the tree is cleared afterwards.
func TreeToArray[T any](src *avl.Tree[T], dst *array.Array[T], mode Mode) error {
	if err := dst.Allocate(src.Len()); err != nil {
		return fmt.Errorf("tree to array: %w", err)
	}

	i := 0

	err := src.ForEachInOrder(func(v T) error {
		if err := dst.Set(i, v); err != nil {
			return err
		}

		i++

		return nil
	})
	if err != nil {
		return fmt.Errorf("tree to array: %w", err)
	}

	if mode == Replace {
		src.Clear()
	}

	return nil
}
