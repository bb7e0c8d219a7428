package array

// NotFound is the index returned alongside false by the search functions.
const NotFound = -1

// BinarySearch looks key up in the sorted array and returns the index of
// some matching element, not necessarily the first.
func (a *Array[T]) BinarySearch(key T) (int, bool) {
	return BinarySearchBy(a, key, a.desc.Compare)
}

// BinarySearchFirst returns the index of the first element equal to key.
func (a *Array[T]) BinarySearchFirst(key T) (int, bool) {
	return BinarySearchFirstBy(a, key, a.desc.Compare)
}

// BinarySearchBy searches with a comparator between elements and a key of a
// different type. cmp must order keys consistently with the array's order.
func BinarySearchBy[T, K any](a *Array[T], key K, cmp func(T, K) int) (int, bool) {
	lo, hi := 0, len(a.items)-1

	for lo <= hi {
		mid := int(uint(lo+hi) >> 1)

		switch c := cmp(a.items[mid], key); {
		case c < 0:
			lo = mid + 1
		case c > 0:
			hi = mid - 1
		default:
			return mid, true
		}
	}

	return NotFound, false
}

// BinarySearchFirstBy finds any match with BinarySearchBy, then walks back
// while the preceding element still compares >= key. Equal keys must form a
// contiguous run, which holds whenever the array is sorted by cmp's order.
func BinarySearchFirstBy[T, K any](a *Array[T], key K, cmp func(T, K) int) (int, bool) {
	i, ok := BinarySearchBy(a, key, cmp)
	if !ok {
		return NotFound, false
	}

	for i > 0 && cmp(a.items[i-1], key) >= 0 {
		i--
	}

	return i, true
}
