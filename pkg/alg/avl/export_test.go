package avl

import (
	"fmt"

	"github.com/Sumatoshi-tech/algo/pkg/alg/arena"
)

// CheckBalance verifies the stored heights and the balance bound of every
// node, and that the node count matches Len.
func CheckBalance[T any](t *Tree[T]) error {
	nodes := 0

	if _, err := checkNode(t, t.root, &nodes); err != nil {
		return err
	}

	if nodes != t.size {
		return fmt.Errorf("tree holds %d nodes, size %d", nodes, t.size)
	}

	return nil
}

func checkNode[T any](t *Tree[T], idx uint32, nodes *int) (int32, error) {
	if idx == arena.Nil {
		return 0, nil
	}

	*nodes++
	n := t.nodes.At(idx)

	left, err := checkNode(t, n.left, nodes)
	if err != nil {
		return 0, err
	}

	right, err := checkNode(t, n.right, nodes)
	if err != nil {
		return 0, err
	}

	if want := 1 + max(left, right); n.height != want {
		return 0, fmt.Errorf("node %d: height %d, want %d", idx, n.height, want)
	}

	if diff := left - right; diff > maxImbalance || diff < -maxImbalance {
		return 0, fmt.Errorf("node %d: balance %d", idx, diff)
	}

	return n.height, nil
}
