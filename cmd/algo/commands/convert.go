package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Sumatoshi-tech/algo/internal/dataset"
	"github.com/Sumatoshi-tech/algo/pkg/alg/array"
	"github.com/Sumatoshi-tech/algo/pkg/alg/avl"
	"github.com/Sumatoshi-tech/algo/pkg/alg/convert"
	"github.com/Sumatoshi-tech/algo/pkg/alg/dlist"
)

func newConvertCommand(a *app) *cobra.Command {
	var (
		data    datasetFlags
		replace bool
	)

	cmd := &cobra.Command{
		Use:   "convert",
		Short: "Move records array -> list -> array -> tree -> array",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			err := data.apply(cmd, a)
			if err != nil {
				return err
			}

			mode := convert.Copy
			if replace {
				mode = convert.Replace
			}

			return a.runConvert(cmd, mode)
		},
	}

	data.register(cmd)
	cmd.Flags().BoolVar(&replace, "replace", false, "drain each source instead of copying it")

	return cmd
}

// convertStage is one hop of the conversion chain.
type convertStage struct {
	run  func() error
	name string
	src  func() int
	dst  func() int
}

func (a *app) runConvert(cmd *cobra.Command, mode convert.Mode) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	records, err := a.records(ctx)
	if err != nil {
		return err
	}

	listOpts, err := a.arenaOptions(dlist.NodeSize[dataset.Record]())
	if err != nil {
		return err
	}

	treeOpts, err := a.arenaOptions(avl.NodeSize[dataset.Record]())
	if err != nil {
		return err
	}

	desc := dataset.Descriptor()
	source := array.New(desc, records)
	list := dlist.New(desc, listOpts...)
	sorted := array.Empty(desc)
	tree := avl.New(desc, treeOpts...)
	unique := array.Empty(desc)

	stages := []convertStage{
		{
			name: "array to list",
			run:  func() error { return convert.ArrayToList(source, list, mode) },
			src:  source.Len, dst: list.Len,
		},
		{
			name: "list to array",
			run:  func() error { return convert.ListToArray(list, sorted, mode) },
			src:  list.Len, dst: sorted.Len,
		},
		{
			name: "array to tree",
			run:  func() error { return convert.ArrayToTree(sorted, tree, mode) },
			src:  sorted.Len, dst: tree.Len,
		},
		{
			name: "tree to array",
			run:  func() error { return convert.TreeToArray(tree, unique, mode) },
			src:  tree.Len, dst: unique.Len,
		},
	}

	summary := make([][2]string, 0, len(stages)+1)
	summary = append(summary, [2]string{"mode", mode.String()})

	for _, stage := range stages {
		err = a.providers.Track(ctx, "convert", func(context.Context) error {
			return stage.run()
		})
		if err != nil {
			return fmt.Errorf("%s: %w", stage.name, err)
		}

		summary = append(summary, [2]string{
			stage.name,
			fmt.Sprintf("source %d, destination %d", stage.src(), stage.dst()),
		})
	}

	renderRecords(out, "Unique records", unique.Items())
	renderSummary(out, summary)
	statusOK(out, "converted %d records into %d unique ids", len(records), unique.Len())

	return nil
}
