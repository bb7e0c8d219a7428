package config

import (
	"fmt"
	"math"

	"github.com/dustin/go-humanize"
)

// Budget parses MemoryBudget. An empty budget yields 0, meaning unbounded.
func (a ArenaConfig) Budget() (uint64, error) {
	if a.MemoryBudget == "" {
		return 0, nil
	}

	budget, err := humanize.ParseBytes(a.MemoryBudget)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidMemoryBudget, err)
	}

	return budget, nil
}

// NodeLimit converts the memory budget into a node count for nodes of
// nodeSize bytes and combines it with MaxNodes; the tighter bound wins.
// Zero means unbounded.
func (a ArenaConfig) NodeLimit(nodeSize uint64) (int, error) {
	budget, err := a.Budget()
	if err != nil {
		return 0, err
	}

	limit := a.MaxNodes

	if budget > 0 {
		byBudget := budget / max(nodeSize, 1)
		if byBudget == 0 {
			return 0, fmt.Errorf("%w: %s holds no node of %s",
				ErrInvalidMemoryBudget, a.MemoryBudget, humanize.IBytes(nodeSize))
		}

		byBudget = min(byBudget, math.MaxInt32)

		if limit == 0 || int(byBudget) < limit {
			limit = int(byBudget)
		}
	}

	return limit, nil
}
