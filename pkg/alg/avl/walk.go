package avl

import (
	"fmt"
	"io"

	"github.com/Sumatoshi-tech/algo/pkg/alg/arena"
	"github.com/Sumatoshi-tech/algo/pkg/alg/elem"
)

// Indentation per tree level in Print output.
const printIndent = 3

// ForEachInOrder calls action on every element in ascending order. The walk
// stops at the first failure, returned wrapped in elem.ErrActionFailure.
func (t *Tree[T]) ForEachInOrder(action func(T) error) error {
	return t.inOrder(t.root, action)
}

// Values returns the elements in ascending order.
func (t *Tree[T]) Values() []T {
	out := make([]T, 0, t.size)

	_ = t.inOrder(t.root, func(v T) error {
		out = append(out, v)

		return nil
	})

	return out
}

func (t *Tree[T]) inOrder(idx uint32, action func(T) error) error {
	if idx == arena.Nil {
		return nil
	}

	n := t.nodes.At(idx)

	if err := t.inOrder(n.left, action); err != nil {
		return err
	}

	if err := action(n.data); err != nil {
		return elem.ActionFailed(err)
	}

	return t.inOrder(n.right, action)
}

// Print writes the tree sideways, one node per line in key order. Each line
// is indented by depth and tagged with the node's side relative to its
// parent (T for the root) and its height.
func (t *Tree[T]) Print(w io.Writer, label func(T) string) error {
	return t.print(w, label, t.root, 0, 'T')
}

func (t *Tree[T]) print(w io.Writer, label func(T) string, idx uint32, depth int, side byte) error {
	if idx == arena.Nil {
		return nil
	}

	n := t.nodes.At(idx)

	if err := t.print(w, label, n.left, depth+1, 'L'); err != nil {
		return err
	}

	_, err := fmt.Fprintf(w, "%*s%c %s h=%d\n", depth*printIndent, "", side, label(n.data), n.height)
	if err != nil {
		return fmt.Errorf("print node: %w", err)
	}

	return t.print(w, label, n.right, depth+1, 'R')
}
