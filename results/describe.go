package results

import (
	"fmt"
	"math"

	"github.com/colorfulnotion/hashchart/common"
	"github.com/xlab/treeprint"
)

// Describe renders t as a tree: one branch per series with its point count
// and time range, plus any skipped rows.
func Describe(name string, t *Table, color bool) string {
	tree := treeprint.NewWithRoot(common.Colorize(color, common.ColorBlue, name))
	tree.AddNode(common.Colorize(color, common.ColorGray, fmt.Sprintf("x: %s, rows: %d", t.XLabel, len(t.Rows))))

	series := tree.AddBranch(common.Colorize(color, common.ColorGreen, "series"))
	for i, s := range t.Series {
		lo, hi := math.Inf(1), math.Inf(-1)
		for _, r := range t.Rows {
			lo = math.Min(lo, r.Values[i])
			hi = math.Max(hi, r.Values[i])
		}
		if len(t.Rows) == 0 {
			series.AddNode(fmt.Sprintf("%s: no points", s))
			continue
		}
		series.AddNode(fmt.Sprintf("%s: %d points, %s..%s s", s, len(t.Rows), FormatSeconds(lo), FormatSeconds(hi)))
	}

	if len(t.Skipped) > 0 {
		skipped := tree.AddBranch(common.Colorize(color, common.ColorYellow, fmt.Sprintf("skipped (%d)", len(t.Skipped))))
		for _, e := range t.Skipped {
			skipped.AddNode(common.Colorize(color, common.ColorRed, e.Error()))
		}
	}
	return tree.String()
}
