package array

import (
	"fmt"

	"github.com/Sumatoshi-tech/algo/pkg/alg/elem"
)

// BubbleSort sorts the array ascending by repeatedly exchanging adjacent
// out-of-order elements. It stops after a pass without exchanges, or after
// Len()-1 passes. Elements of zero stride cannot be exchanged.
func (a *Array[T]) BubbleSort() error {
	if a.desc.Stride() <= 0 {
		return fmt.Errorf("%w: bubble sort needs a positive element stride", elem.ErrInvalidState)
	}

	n := len(a.items)

	for pass := range max(n-1, 0) {
		swapped := false

		for j := range n - pass - 1 {
			if a.desc.Compare(a.items[j], a.items[j+1]) > 0 {
				a.desc.Exchange(&a.items[j], &a.items[j+1])
				swapped = true
			}
		}

		if !swapped {
			break
		}
	}

	return nil
}

// Partition reorders [low, high] around the element at high (Lomuto scheme)
// and returns the pivot's final index p: elements in [low, p) compare <= the
// pivot and elements in (p, high] compare > the pivot.
func (a *Array[T]) Partition(low, high int) (int, error) {
	if low < 0 || low > high || high >= len(a.items) {
		return 0, rangeError(low, high, len(a.items))
	}

	i := low - 1

	for j := low; j < high; j++ {
		if a.desc.Compare(a.items[j], a.items[high]) <= 0 {
			i++

			if i != j {
				a.desc.Exchange(&a.items[i], &a.items[j])
			}
		}
	}

	pivot := i + 1
	if pivot != high {
		a.desc.Exchange(&a.items[pivot], &a.items[high])
	}

	return pivot, nil
}

// QuickSort sorts [low, high] in place. It recurses into the smaller
// partition and loops over the larger one, bounding the stack at O(log n).
func (a *Array[T]) QuickSort(low, high int) error {
	for low < high {
		if low < 0 || high >= len(a.items) {
			return rangeError(low, high, len(a.items))
		}

		pivot, err := a.Partition(low, high)
		if err != nil {
			return err
		}

		if pivot-low < high-pivot {
			if err = a.QuickSort(low, pivot-1); err != nil {
				return err
			}

			low = pivot + 1
		} else {
			if err = a.QuickSort(pivot+1, high); err != nil {
				return err
			}

			high = pivot - 1
		}
	}

	return nil
}

// Sort quick-sorts the whole array.
func (a *Array[T]) Sort() error {
	return a.QuickSort(0, len(a.items)-1)
}

func rangeError(low, high, count int) error {
	return fmt.Errorf("%w: [%d, %d] of %d elements", elem.ErrOutOfRange, low, high, count)
}
