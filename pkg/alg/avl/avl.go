// Package avl provides a height-balanced binary search tree of element
// copies ordered by an [elem.Descriptor].
//
// Nodes are kept in an [arena.Arena] and reference their children by slot
// index. Insertion rebalances with single and double rotations so that the
// heights of sibling subtrees never differ by more than one. Keys are
// unique: inserting an element that compares equal to a stored one leaves
// the tree unchanged and is not an error.
package avl

import (
	"fmt"
	"reflect"

	"github.com/Sumatoshi-tech/algo/pkg/alg/arena"
	"github.com/Sumatoshi-tech/algo/pkg/alg/elem"
)

// Balance bound between sibling subtree heights.
const maxImbalance = 1

// Tree is an AVL tree. The zero value is not usable; call New.
type Tree[T any] struct {
	desc  elem.Descriptor[T]
	nodes *arena.Arena[node[T]]
	root  uint32
	size  int
}

// node is a tree slot. A leaf has height 1; an empty subtree counts as 0.
type node[T any] struct {
	data   T
	left   uint32
	right  uint32
	height int32
}

// NodeSize returns the arena footprint in bytes of one tree node holding a T.
func NodeSize[T any]() uint64 {
	return uint64(reflect.TypeFor[node[T]]().Size())
}

// New creates an empty tree.
// It panics when desc has no comparator.
func New[T any](desc elem.Descriptor[T], opts ...arena.Option) *Tree[T] {
	desc.MustValidate()

	return &Tree[T]{
		desc:  desc,
		nodes: arena.New[node[T]](opts...),
		root:  arena.Nil,
	}
}

// Descriptor returns the descriptor the tree was built with.
func (t *Tree[T]) Descriptor() elem.Descriptor[T] {
	return t.desc
}

// Len returns the number of stored elements.
func (t *Tree[T]) Len() int {
	return t.size
}

// Height returns the height of the whole tree, 0 when empty.
func (t *Tree[T]) Height() int {
	return int(t.height(t.root))
}

// Root returns the element at the root.
func (t *Tree[T]) Root() (T, bool) {
	if t.root == arena.Nil {
		var zero T

		return zero, false
	}

	return t.nodes.At(t.root).data, true
}

// Clear releases every node.
func (t *Tree[T]) Clear() {
	t.nodes.Reset()
	t.root = arena.Nil
	t.size = 0
}

// Insert adds a copy of e. A key already present is left as is.
func (t *Tree[T]) Insert(e T) error {
	root, err := t.insert(t.root, e)
	if err != nil {
		return err
	}

	t.root = root

	return nil
}

// Search returns the stored element comparing equal to key.
func (t *Tree[T]) Search(key T) (T, bool) {
	idx := t.root

	for idx != arena.Nil {
		n := t.nodes.At(idx)

		switch c := t.desc.Compare(n.data, key); {
		case c > 0:
			idx = n.left
		case c < 0:
			idx = n.right
		default:
			return n.data, true
		}
	}

	var zero T

	return zero, false
}

// insert places e below root and returns the root of the rebalanced
// subtree. Node pointers are re-fetched after recursion because a new leaf
// may grow the arena.
func (t *Tree[T]) insert(root uint32, e T) (uint32, error) {
	if root == arena.Nil {
		return t.newLeaf(e)
	}

	switch c := t.desc.Compare(t.nodes.At(root).data, e); {
	case c > 0:
		left, err := t.insert(t.nodes.At(root).left, e)
		if err != nil {
			return root, err
		}

		t.nodes.At(root).left = left
	case c < 0:
		right, err := t.insert(t.nodes.At(root).right, e)
		if err != nil {
			return root, err
		}

		t.nodes.At(root).right = right
	default:
		return root, nil
	}

	return t.rebalance(root, e), nil
}

// rebalance restores the height bound at root after e was inserted below it.
func (t *Tree[T]) rebalance(root uint32, e T) uint32 {
	t.updateHeight(root)

	switch balance := t.balance(root); {
	case balance < -maxImbalance:
		right := t.nodes.At(root).right
		if t.desc.Compare(t.nodes.At(right).data, e) >= 0 {
			t.nodes.At(root).right = t.rotateRight(right)
		}

		return t.rotateLeft(root)
	case balance > maxImbalance:
		left := t.nodes.At(root).left
		if t.desc.Compare(t.nodes.At(left).data, e) <= 0 {
			t.nodes.At(root).left = t.rotateLeft(left)
		}

		return t.rotateRight(root)
	}

	return root
}

// rotateLeft lifts the right child of root into its place.
func (t *Tree[T]) rotateLeft(root uint32) uint32 {
	n := t.nodes.At(root)
	pivot := n.right
	p := t.nodes.At(pivot)

	n.right = p.left
	p.left = root

	t.updateHeight(root)
	t.updateHeight(pivot)

	return pivot
}

// rotateRight lifts the left child of root into its place.
func (t *Tree[T]) rotateRight(root uint32) uint32 {
	n := t.nodes.At(root)
	pivot := n.left
	p := t.nodes.At(pivot)

	n.left = p.right
	p.right = root

	t.updateHeight(root)
	t.updateHeight(pivot)

	return pivot
}

func (t *Tree[T]) newLeaf(e T) (uint32, error) {
	data, err := t.desc.Clone(e)
	if err != nil {
		return arena.Nil, err
	}

	idx, err := t.nodes.Alloc()
	if err != nil {
		return arena.Nil, fmt.Errorf("%w: %w", elem.ErrAllocation, err)
	}

	leaf := t.nodes.At(idx)
	leaf.data = data
	leaf.height = 1

	t.size++

	return idx, nil
}

func (t *Tree[T]) height(idx uint32) int32 {
	if idx == arena.Nil {
		return 0
	}

	return t.nodes.At(idx).height
}

func (t *Tree[T]) balance(idx uint32) int32 {
	n := t.nodes.At(idx)

	return t.height(n.left) - t.height(n.right)
}

func (t *Tree[T]) updateHeight(idx uint32) {
	n := t.nodes.At(idx)
	n.height = 1 + max(t.height(n.left), t.height(n.right))
}
