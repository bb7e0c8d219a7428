package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/Sumatoshi-tech/algo/internal/dataset"
	"github.com/Sumatoshi-tech/algo/pkg/alg/avl"
	"github.com/Sumatoshi-tech/algo/pkg/alg/elem"
)

func newAVLCommand(a *app) *cobra.Command {
	var (
		data   datasetFlags
		drawIt bool
	)

	cmd := &cobra.Command{
		Use:   "avl",
		Short: "Build an AVL tree of records keyed by id",
		Long: `Build an AVL tree of records keyed by id.

Records whose id is already in the tree are dropped. With --tree the tree is
drawn sideways instead of listed in order.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			err := data.apply(cmd, a)
			if err != nil {
				return err
			}

			return a.runAVL(cmd, drawIt)
		},
	}

	data.register(cmd)
	cmd.Flags().BoolVar(&drawIt, "tree", false, "draw the tree instead of listing it")

	return cmd
}

func (a *app) runAVL(cmd *cobra.Command, drawIt bool) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	records, err := a.records(ctx)
	if err != nil {
		return err
	}

	opts, err := a.arenaOptions(avl.NodeSize[dataset.Record]())
	if err != nil {
		return err
	}

	var stats elem.Stats

	tree := avl.New(instrumented(&stats), opts...)
	defer tree.Clear()

	start := time.Now()

	err = a.providers.Track(ctx, "avl.insert", func(context.Context) error {
		for _, r := range records {
			insertErr := tree.Insert(r)
			if insertErr != nil {
				return insertErr
			}
		}

		return nil
	})
	if err != nil {
		return fmt.Errorf("avl: %w", err)
	}

	elapsed := time.Since(start)
	a.recordCounts(ctx, "avl.insert", &stats)

	if drawIt {
		err = tree.Print(out, dataset.Label)
		if err != nil {
			return fmt.Errorf("avl: %w", err)
		}
	} else {
		rt := newRecordTable("Tree in order")

		err = tree.ForEachInOrder(rt.add)
		if err != nil {
			return fmt.Errorf("avl: %w", err)
		}

		rt.render(out)
	}

	root, _ := tree.Root()
	renderSummary(out, [][2]string{
		{"nodes", fmt.Sprint(tree.Len())},
		{"height", fmt.Sprint(tree.Height())},
		{"root", root.String()},
		countsRow(&stats),
		elapsedRow(elapsed),
	})

	if dropped := len(records) - tree.Len(); dropped > 0 {
		statusWarn(out, "dropped %d duplicate ids", dropped)
	}

	statusOK(out, "balanced tree of %d records, height %d", tree.Len(), tree.Height())

	return nil
}
