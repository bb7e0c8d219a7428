package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/Sumatoshi-tech/algo/internal/dataset"
	"github.com/Sumatoshi-tech/algo/pkg/alg/array"
	"github.com/Sumatoshi-tech/algo/pkg/alg/elem"
	"github.com/Sumatoshi-tech/algo/pkg/config"
)

const flagAlgorithm = "algorithm"

func newSortCommand(a *app) *cobra.Command {
	var (
		data      datasetFlags
		algorithm string
		output    string
	)

	cmd := &cobra.Command{
		Use:   "sort",
		Short: "Sort records by id with quick or bubble sort",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Flags().Changed(flagAlgorithm) {
				a.cfg.Sort.Algorithm = algorithm
			}

			err := data.apply(cmd, a)
			if err != nil {
				return err
			}

			return a.runSort(cmd, output)
		},
	}

	data.register(cmd)
	cmd.Flags().StringVar(&algorithm, flagAlgorithm, config.AlgorithmQuick, "sort algorithm: quick or bubble")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write the sorted records to a YAML file")

	return cmd
}

func (a *app) runSort(cmd *cobra.Command, output string) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	records, err := a.records(ctx)
	if err != nil {
		return err
	}

	var stats elem.Stats

	arr := array.New(instrumented(&stats), records)
	algorithm := a.cfg.Sort.Algorithm
	start := time.Now()

	err = a.providers.Track(ctx, "array.sort."+algorithm, func(context.Context) error {
		return sortArray(arr, algorithm)
	})
	if err != nil {
		return fmt.Errorf("sort: %w", err)
	}

	elapsed := time.Since(start)
	a.recordCounts(ctx, "array.sort."+algorithm, &stats)

	renderRecords(out, "Sorted by id", arr.Items())
	renderSummary(out, [][2]string{
		{"algorithm", algorithm},
		{"payload", footprint(arr.Len())},
		countsRow(&stats),
		elapsedRow(elapsed),
	})

	if output != "" {
		err = dataset.Save(output, arr.Items())
		if err != nil {
			return err
		}
	}

	statusOK(out, "sorted %d records with %s sort", arr.Len(), algorithm)

	return nil
}

func sortArray[T any](arr *array.Array[T], algorithm string) error {
	if algorithm == config.AlgorithmBubble {
		return arr.BubbleSort()
	}

	return arr.Sort()
}
