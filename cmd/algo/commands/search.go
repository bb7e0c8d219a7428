package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Sumatoshi-tech/algo/internal/dataset"
	"github.com/Sumatoshi-tech/algo/pkg/alg/array"
	"github.com/Sumatoshi-tech/algo/pkg/alg/elem"
)

const flagID = "id"

// ErrRecordNotFound is returned when no record carries the searched id.
var ErrRecordNotFound = errors.New("record not found")

func newSearchCommand(a *app) *cobra.Command {
	var (
		data datasetFlags
		id   int32
	)

	cmd := &cobra.Command{
		Use:   "search",
		Short: "Sort records then find the first one with an id",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			err := data.apply(cmd, a)
			if err != nil {
				return err
			}

			return a.runSearch(cmd, id)
		},
	}

	data.register(cmd)
	cmd.Flags().Int32Var(&id, flagID, 0, "record id to look up")
	_ = cmd.MarkFlagRequired(flagID)

	return cmd
}

func (a *app) runSearch(cmd *cobra.Command, id int32) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	records, err := a.records(ctx)
	if err != nil {
		return err
	}

	var stats elem.Stats

	arr := array.New(instrumented(&stats), records)

	err = a.providers.Track(ctx, "array.sort.quick", func(context.Context) error {
		return arr.Sort()
	})
	if err != nil {
		return fmt.Errorf("search: %w", err)
	}

	stats.Reset()

	var (
		first int
		found bool
	)

	_ = a.providers.Track(ctx, "array.search", func(context.Context) error {
		first, found = array.BinarySearchFirstBy(arr, id, dataset.CompareID)

		return nil
	})

	if !found {
		return fmt.Errorf("%w: id %d among %d records", ErrRecordNotFound, id, arr.Len())
	}

	items := arr.Items()
	last := first
	for last+1 < len(items) && items[last+1].ID == id {
		last++
	}

	renderRecords(out, fmt.Sprintf("Records with id %d", id), items[first:last+1])
	renderSummary(out, [][2]string{
		{"first index", fmt.Sprint(first)},
		{"matches", fmt.Sprint(last - first + 1)},
	})
	statusOK(out, "found id %d at index %d", id, first)

	return nil
}
