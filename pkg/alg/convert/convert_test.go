package convert_test

import (
	"errors"
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sumatoshi-tech/algo/pkg/alg/array"
	"github.com/Sumatoshi-tech/algo/pkg/alg/avl"
	"github.com/Sumatoshi-tech/algo/pkg/alg/convert"
	"github.com/Sumatoshi-tech/algo/pkg/alg/dlist"
	"github.com/Sumatoshi-tech/algo/pkg/alg/elem"
)

const (
	testSeed       = 20191120
	testRandomLen  = 120
	testRandomMax  = 60
	testIterations = 15
	testRefuse     = 3
)

var errRefused = errors.New("refused")

// refusing copies every value except testRefuse.
func refusing() elem.Descriptor[int] {
	return elem.Descriptor[int]{
		Compare: elem.Ordered[int]().Compare,
		Copy: func(dst *int, src int) error {
			if src == testRefuse {
				return errRefused
			}

			*dst = src

			return nil
		},
	}
}

func listOf(t *testing.T, values ...int) *dlist.List[int] {
	t.Helper()

	l := dlist.New(elem.Ordered[int]())
	for _, v := range slices.Backward(values) {
		require.NoError(t, l.InsertFront(v))
	}

	return l
}

func TestMode_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "copy", convert.Copy.String())
	assert.Equal(t, "replace", convert.Replace.String())
	assert.Equal(t, "mode(7)", convert.Mode(7).String())
}

func TestListToArray_Copy(t *testing.T) {
	t.Parallel()

	l := listOf(t, 4, 1, 3)
	dst := array.Empty(elem.Ordered[int]())

	require.NoError(t, convert.ListToArray(l, dst, convert.Copy))

	assert.Equal(t, []int{4, 1, 3}, dst.Items())
	assert.Equal(t, []int{4, 1, 3}, l.Values())
}

func TestListToArray_Replace(t *testing.T) {
	t.Parallel()

	l := listOf(t, 4, 1, 3)
	dst := array.Empty(elem.Ordered[int]())

	require.NoError(t, convert.ListToArray(l, dst, convert.Replace))

	assert.Equal(t, []int{4, 1, 3}, dst.Items())
	assert.True(t, l.Empty())
	assert.Zero(t, l.Len())
}

func TestListToArray_EmptyList(t *testing.T) {
	t.Parallel()

	dst := array.Empty(elem.Ordered[int]())

	require.NoError(t, convert.ListToArray(dlist.New(elem.Ordered[int]()), dst, convert.Copy))
	assert.True(t, dst.Populated())
	assert.Zero(t, dst.Len())
}

func TestListToArray_PopulatedDestination(t *testing.T) {
	t.Parallel()

	l := listOf(t, 1)
	dst := array.New(elem.Ordered[int](), []int{9})

	err := convert.ListToArray(l, dst, convert.Copy)
	require.ErrorIs(t, err, elem.ErrInvalidState)
	assert.Equal(t, []int{9}, dst.Items())
	assert.Equal(t, 1, l.Len())
}

func TestListToArray_CopyFailureStops(t *testing.T) {
	t.Parallel()

	for _, mode := range []convert.Mode{convert.Copy, convert.Replace} {
		l := listOf(t, 1, 2, testRefuse, 4)
		dst := array.Empty(refusing())

		err := convert.ListToArray(l, dst, mode)
		require.ErrorIs(t, err, elem.ErrAllocation, mode.String())
		require.ErrorIs(t, err, errRefused, mode.String())
		assert.Equal(t, []int{1, 2, 0, 0}, dst.Items(), mode.String())
	}
}

func TestArrayToList(t *testing.T) {
	t.Parallel()

	src := array.New(elem.Ordered[int](), []int{5, 3, 5, 1, 4})
	dst := dlist.New(elem.Ordered[int]())

	require.NoError(t, convert.ArrayToList(src, dst, convert.Copy))

	assert.Equal(t, []int{1, 3, 4, 5, 5}, dst.Values())
	assert.Equal(t, []int{5, 3, 5, 1, 4}, src.Items())
}

func TestArrayToList_Replace(t *testing.T) {
	t.Parallel()

	src := array.New(elem.Ordered[int](), []int{2, 1})
	dst := dlist.New(elem.Ordered[int]())

	require.NoError(t, convert.ArrayToList(src, dst, convert.Replace))

	assert.Equal(t, []int{1, 2}, dst.Values())
	assert.False(t, src.Populated())
	assert.Zero(t, src.Len())
}

func TestArrayToList_FailureKeepsSource(t *testing.T) {
	t.Parallel()

	src := array.New(elem.Ordered[int](), []int{1, testRefuse, 2})
	dst := dlist.New(refusing())

	err := convert.ArrayToList(src, dst, convert.Replace)
	require.ErrorIs(t, err, elem.ErrAllocation)
	assert.Equal(t, []int{1}, dst.Values())
	assert.True(t, src.Populated())
}

func TestRoundTrip(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewPCG(testSeed, 1))

	for range testIterations {
		input := make([]int, rng.IntN(testRandomLen))
		for i := range input {
			input[i] = rng.IntN(testRandomMax)
		}

		src := array.New(elem.Ordered[int](), slices.Clone(input))
		l := dlist.New(elem.Ordered[int]())
		out := array.Empty(elem.Ordered[int]())

		require.NoError(t, convert.ArrayToList(src, l, convert.Copy))
		require.NoError(t, convert.ListToArray(l, out, convert.Copy))

		assert.Equal(t, slices.Sorted(slices.Values(input)), out.Items())
		assert.Equal(t, input, src.Items())
	}
}

func TestArrayToTree(t *testing.T) {
	t.Parallel()

	src := array.New(elem.Ordered[int](), []int{10, 20, 30, 40, 50, 25, 30})
	tree := avl.New(elem.Ordered[int]())

	require.NoError(t, convert.ArrayToTree(src, tree, convert.Copy))

	root, ok := tree.Root()
	require.True(t, ok)
	assert.Equal(t, 30, root)
	assert.Equal(t, 6, tree.Len())
	assert.Equal(t, 7, src.Len())
}

func TestArrayToTree_Replace(t *testing.T) {
	t.Parallel()

	src := array.New(elem.Ordered[int](), []int{3, 1, 2})
	tree := avl.New(elem.Ordered[int]())

	require.NoError(t, convert.ArrayToTree(src, tree, convert.Replace))

	assert.Equal(t, []int{1, 2, 3}, tree.Values())
	assert.False(t, src.Populated())
}

func TestTreeToArray(t *testing.T) {
	t.Parallel()

	tree := avl.New(elem.Ordered[int]())
	for _, v := range []int{8, 2, 5, 2} {
		require.NoError(t, tree.Insert(v))
	}

	dst := array.Empty(elem.Ordered[int]())
	require.NoError(t, convert.TreeToArray(tree, dst, convert.Copy))

	assert.Equal(t, []int{2, 5, 8}, dst.Items())
	assert.Equal(t, 3, tree.Len())

	moved := array.Empty(elem.Ordered[int]())
	require.NoError(t, convert.TreeToArray(tree, moved, convert.Replace))

	assert.Equal(t, []int{2, 5, 8}, moved.Items())
	assert.Zero(t, tree.Len())
}

func TestTreeToArray_PopulatedDestination(t *testing.T) {
	t.Parallel()

	tree := avl.New(elem.Ordered[int]())
	require.NoError(t, tree.Insert(1))

	err := convert.TreeToArray(tree, array.Make(elem.Ordered[int](), 1), convert.Copy)
	require.ErrorIs(t, err, elem.ErrInvalidState)
}
