package commands

import (
	"context"
	"fmt"
	"math/rand/v2"

	"github.com/spf13/cobra"

	"github.com/Sumatoshi-tech/algo/internal/dataset"
	"github.com/Sumatoshi-tech/algo/pkg/alg/arena"
	"github.com/Sumatoshi-tech/algo/pkg/alg/elem"
)

const (
	flagCount = "count"
	flagSeed  = "seed"
	flagInput = "input"
)

// datasetFlags are the record source flags shared by every data command.
type datasetFlags struct {
	input string
	seed  uint64
	count int
}

func (f *datasetFlags) register(cmd *cobra.Command) {
	cmd.Flags().IntVar(&f.count, flagCount, 0, "number of records to generate")
	cmd.Flags().Uint64Var(&f.seed, flagSeed, 0, "random seed for generated records")
	cmd.Flags().StringVar(&f.input, flagInput, "", "YAML file of records instead of generated ones")
}

// apply overrides the loaded configuration with the flags that were set.
func (f *datasetFlags) apply(cmd *cobra.Command, a *app) error {
	if cmd.Flags().Changed(flagCount) {
		a.cfg.Dataset.Count = f.count
	}

	if cmd.Flags().Changed(flagSeed) {
		a.cfg.Dataset.Seed = f.seed
	}

	if cmd.Flags().Changed(flagInput) {
		a.cfg.Dataset.Input = f.input
	}

	err := a.cfg.Validate()
	if err != nil {
		return fmt.Errorf("invalid flags: %w", err)
	}

	return nil
}

// records loads the input file when one is configured, otherwise generates
// a seeded dataset.
func (a *app) records(ctx context.Context) ([]dataset.Record, error) {
	ds := a.cfg.Dataset

	if ds.Input != "" {
		records, err := dataset.Load(ds.Input)
		if err != nil {
			return nil, err
		}

		a.logger.DebugContext(ctx, "records loaded", "count", len(records))

		return records, nil
	}

	rng := rand.New(rand.NewPCG(ds.Seed, ds.Seed)) //nolint:gosec // sample data, not secrets.
	records := dataset.Generate(rng, ds.Count)

	a.logger.DebugContext(ctx, "records generated", "count", len(records), "seed", ds.Seed)

	return records, nil
}

// arenaOptions bounds node storage by the configured budget for nodes of
// nodeSize bytes.
func (a *app) arenaOptions(nodeSize uint64) ([]arena.Option, error) {
	limit, err := a.cfg.Arena.NodeLimit(nodeSize)
	if err != nil {
		return nil, err
	}

	if limit == 0 {
		return nil, nil
	}

	return []arena.Option{arena.WithLimit(limit)}, nil
}

// instrumented returns the record descriptor wrapped with counters.
func instrumented(stats *elem.Stats) elem.Descriptor[dataset.Record] {
	return elem.Instrument(dataset.Descriptor(), stats)
}

// recordCounts publishes the counters gathered during op.
func (a *app) recordCounts(ctx context.Context, op string, stats *elem.Stats) {
	counts := stats.Snapshot()

	if a.providers.Metrics != nil {
		a.providers.Metrics.RecordCounts(ctx, op, counts)
	}

	a.logger.DebugContext(ctx, "element operations",
		"compares", counts.Compares, "swaps", counts.Swaps, "copies", counts.Copies)
}
