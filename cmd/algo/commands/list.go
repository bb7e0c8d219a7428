package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/Sumatoshi-tech/algo/internal/dataset"
	"github.com/Sumatoshi-tech/algo/pkg/alg/dlist"
	"github.com/Sumatoshi-tech/algo/pkg/alg/elem"
)

func newListCommand(a *app) *cobra.Command {
	var (
		data   datasetFlags
		bubble bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Build a doubly-linked list of records ordered by id",
		Long: `Build a doubly-linked list of records ordered by id.

By default every record is inserted in sorted position. With --bubble the
records are pushed at the head and the list is then sorted by relinking.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			err := data.apply(cmd, a)
			if err != nil {
				return err
			}

			return a.runList(cmd, bubble)
		},
	}

	data.register(cmd)
	cmd.Flags().BoolVar(&bubble, "bubble", false, "insert at the head then bubble sort the list")

	return cmd
}

func (a *app) runList(cmd *cobra.Command, bubble bool) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	records, err := a.records(ctx)
	if err != nil {
		return err
	}

	opts, err := a.arenaOptions(dlist.NodeSize[dataset.Record]())
	if err != nil {
		return err
	}

	var stats elem.Stats

	list := dlist.New(instrumented(&stats), opts...)
	defer list.Teardown()

	op := "list.insert_sorted"
	if bubble {
		op = "list.bubble_sort"
	}

	start := time.Now()

	err = a.providers.Track(ctx, op, func(ctx context.Context) error {
		return buildList(ctx, a, list, records, bubble)
	})
	if err != nil {
		return fmt.Errorf("list: %w", err)
	}

	elapsed := time.Since(start)
	a.recordCounts(ctx, op, &stats)

	rt := newRecordTable("List head to tail")

	err = list.ForEach(rt.add)
	if err != nil {
		return fmt.Errorf("list: %w", err)
	}

	rt.render(out)

	head, _ := list.Front()
	renderSummary(out, [][2]string{
		{"strategy", op},
		{"nodes", fmt.Sprint(list.Len())},
		{"head", head.String()},
		countsRow(&stats),
		elapsedRow(elapsed),
	})
	statusOK(out, "linked %d records", list.Len())

	return nil
}

func buildList(ctx context.Context, a *app, list *dlist.List[dataset.Record], records []dataset.Record, bubble bool) error {
	insert := list.InsertSorted
	if bubble {
		insert = list.InsertFront
	}

	for i, r := range records {
		err := insert(r)
		if err != nil {
			a.logger.WarnContext(ctx, "insert failed", "index", i, "id", r.ID, "error", err)

			return err
		}
	}

	if bubble {
		return list.BubbleSort()
	}

	return nil
}
