package results

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/colorfulnotion/hashchart/charterrors"
	"github.com/colorfulnotion/hashchart/common"
	"github.com/colorfulnotion/hashchart/log"
)

// FormatSeconds renders a duration in seconds with 17 fractional digits.
func FormatSeconds(v float64) string {
	return strconv.FormatFloat(v, 'f', 17, 64)
}

// Write serialises t in format f; Parse(Write(t)) yields the same rows.
func Write(w io.Writer, t *Table, f Format) error {
	bw := bufio.NewWriter(w)
	switch f {
	case WithHeaderMultiSeries:
		if t.XLabel == "" || len(t.Series) == 0 || strings.ContainsAny(t.XLabel, " \t\n") {
			return fmt.Errorf("x label %q with %d series: %w", t.XLabel, len(t.Series), charterrors.ErrBadHeader)
		}
		for _, s := range t.Series {
			if s == "" || strings.ContainsAny(s, " \t\n") {
				return fmt.Errorf("series name %q: %w", s, charterrors.ErrBadHeader)
			}
		}
		fmt.Fprintf(bw, "%s %s\n", t.XLabel, strings.Join(t.Series, " "))
	case HeaderlessSingleSeries:
		if len(t.Series) != 1 {
			return fmt.Errorf("headerless file holds one series, table has %d: %w", len(t.Series), charterrors.ErrBadHeader)
		}
	default:
		return fmt.Errorf("%v: %w", f, charterrors.ErrUnknownVariant)
	}

	for _, r := range t.Rows {
		if len(r.Values) != len(t.Series) {
			return fmt.Errorf("row %d has %d values for %d series: %w", r.LineCount, len(r.Values), len(t.Series), charterrors.ErrMalformedRow)
		}
		bw.WriteString(strconv.FormatInt(r.LineCount, 10))
		for _, v := range r.Values {
			bw.WriteByte(' ')
			bw.WriteString(FormatSeconds(v))
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

// Save writes t to path atomically, creating parent directories.
func Save(path string, t *Table, f Format) error {
	err := common.WriteFileAtomic(path, func(w io.Writer) error {
		return Write(w, t, f)
	})
	if err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	log.Debug(log.ResultsModule, "Saved results", "path", path, "format", f, "rows", len(t.Rows))
	return nil
}
