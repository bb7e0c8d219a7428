package commands

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/Sumatoshi-tech/algo/internal/dataset"
	"github.com/Sumatoshi-tech/algo/pkg/alg/elem"
)

// maxRenderedRows caps record tables; the footer reports the full count.
const maxRenderedRows = 50

// recordTable accumulates records into a go-pretty table.
type recordTable struct {
	tbl   table.Writer
	shown int
	total int
}

func newRecordTable(title string) *recordTable {
	tbl := table.NewWriter()
	tbl.SetStyle(table.StyleLight)
	tbl.SetTitle(title)
	tbl.AppendHeader(table.Row{"#", "ID", "Type", "Price"})

	return &recordTable{tbl: tbl}
}

// add appends one record. It never fails so it can serve as a traversal
// action.
func (rt *recordTable) add(r dataset.Record) error {
	rt.total++

	if rt.shown < maxRenderedRows {
		rt.tbl.AppendRow(table.Row{rt.total, r.ID, r.Type, strconv.FormatFloat(float64(r.Price), 'f', 4, 32)})
		rt.shown++
	}

	return nil
}

func (rt *recordTable) render(w io.Writer) {
	footer := fmt.Sprintf("%d records", rt.total)
	if rt.shown < rt.total {
		footer = fmt.Sprintf("showing %d of %d records", rt.shown, rt.total)
	}

	rt.tbl.AppendFooter(table.Row{"", "", footer, ""})
	fmt.Fprintln(w, rt.tbl.Render())
}

func renderRecords(w io.Writer, title string, records []dataset.Record) {
	rt := newRecordTable(title)
	for _, r := range records {
		_ = rt.add(r)
	}

	rt.render(w)
}

// renderSummary prints key/value facts about a run.
func renderSummary(w io.Writer, rows [][2]string) {
	tbl := table.NewWriter()
	tbl.SetStyle(table.StyleLight)
	tbl.Style().Options.DrawBorder = false
	tbl.Style().Options.SeparateColumns = false

	for _, row := range rows {
		tbl.AppendRow(table.Row{row[0], row[1]})
	}

	fmt.Fprintln(w, tbl.Render())
}

func statusOK(w io.Writer, format string, args ...any) {
	color.New(color.FgGreen).Fprintf(w, format+"\n", args...)
}

func statusWarn(w io.Writer, format string, args ...any) {
	color.New(color.FgYellow).Fprintf(w, format+"\n", args...)
}

// footprint renders the payload bytes of n records.
func footprint(n int) string {
	return humanize.IBytes(dataset.Descriptor().Footprint(n))
}

func countsRow(stats *elem.Stats) [2]string {
	c := stats.Snapshot()

	return [2]string{"element ops", fmt.Sprintf("%s compares, %s swaps, %s copies",
		humanize.Comma(c.Compares), humanize.Comma(c.Swaps), humanize.Comma(c.Copies))}
}

func elapsedRow(d time.Duration) [2]string {
	return [2]string{"elapsed", d.Round(time.Microsecond).String()}
}
