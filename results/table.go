package results

import (
	"fmt"
	"strings"

	"github.com/colorfulnotion/hashchart/charterrors"
)

// Format selects the schema of a results file.
type Format int

const (
	// WithHeaderMultiSeries: a header row names the line count column and
	// one series per further column.
	WithHeaderMultiSeries Format = iota
	// HeaderlessSingleSeries: two unnamed columns, line count and time.
	HeaderlessSingleSeries
)

// Names used for the single series and x column of a headerless file.
const (
	HeaderlessXLabel      = "line count"
	HeaderlessSeriesLabel = "time"
)

func (f Format) String() string {
	switch f {
	case WithHeaderMultiSeries:
		return "header"
	case HeaderlessSingleSeries:
		return "headerless"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// ParseFormat accepts header/a/multi and headerless/b/single.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "header", "a", "multi":
		return WithHeaderMultiSeries, nil
	case "headerless", "b", "single":
		return HeaderlessSingleSeries, nil
	default:
		return 0, fmt.Errorf("%q: %w", s, charterrors.ErrUnknownVariant)
	}
}

// Row is one data line: the line count and one value per series.
type Row struct {
	Line      int // 1-based line number in the source, 0 when built in memory
	LineCount int64
	Values    []float64
}

// Table is a results file held in memory. Rows keep file order; duplicate or
// decreasing line counts are kept as read.
type Table struct {
	XLabel  string
	Series  []string
	Rows    []Row
	Skipped []*ParseError
}

// NewTable returns an empty table with the given column names.
func NewTable(xLabel string, series ...string) *Table {
	return &Table{XLabel: xLabel, Series: append([]string(nil), series...)}
}

// Append adds a row; values must line up with t.Series.
func (t *Table) Append(lineCount int64, values ...float64) error {
	if len(values) != len(t.Series) {
		return fmt.Errorf("append %d values to %d series: %w", len(values), len(t.Series), charterrors.ErrMalformedRow)
	}
	t.Rows = append(t.Rows, Row{LineCount: lineCount, Values: append([]float64(nil), values...)})
	return nil
}

// Point is a single (line count, seconds) sample.
type Point struct {
	X float64
	Y float64
}

// Points returns series i in file order.
func (t *Table) Points(i int) []Point {
	pts := make([]Point, len(t.Rows))
	for j, r := range t.Rows {
		pts[j] = Point{X: float64(r.LineCount), Y: r.Values[i]}
	}
	return pts
}
