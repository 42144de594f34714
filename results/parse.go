package results

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/colorfulnotion/hashchart/charterrors"
	"github.com/colorfulnotion/hashchart/log"
)

const maxLineSize = 1 << 20

// ParseOptions controls how a results file is read.
type ParseOptions struct {
	Format Format
	// SkipMalformed records bad data rows in Table.Skipped instead of failing.
	// A bad header always fails.
	SkipMalformed bool
}

// ParseError reports why a line of a results file was rejected.
type ParseError struct {
	Line   int // 1-based
	Reason string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Reason)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Load reads the results file at path. A missing file yields an error
// wrapping charterrors.ErrMissingInput.
func Load(path string, opts ParseOptions) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%s: %w", path, charterrors.ErrMissingInput)
		}
		return nil, err
	}
	defer f.Close()

	t, err := Parse(f, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	log.Debug(log.ResultsModule, "Loaded results", "path", path, "format", opts.Format, "series", len(t.Series), "rows", len(t.Rows), "skipped", len(t.Skipped))
	return t, nil
}

// Parse reads whitespace separated columns from r. Blank lines are ignored.
func Parse(r io.Reader, opts ParseOptions) (*Table, error) {
	var t *Table
	switch opts.Format {
	case WithHeaderMultiSeries:
	case HeaderlessSingleSeries:
		t = NewTable(HeaderlessXLabel, HeaderlessSeriesLabel)
	default:
		return nil, fmt.Errorf("%v: %w", opts.Format, charterrors.ErrUnknownVariant)
	}

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}

		if t == nil {
			if len(fields) < 2 {
				return nil, &ParseError{Line: lineNo, Reason: fmt.Sprintf("header has %d column(s), need at least 2", len(fields)), Err: charterrors.ErrBadHeader}
			}
			t = NewTable(fields[0], fields[1:]...)
			continue
		}

		row, perr := parseRow(fields, len(t.Series)+1, lineNo)
		if perr != nil {
			if !opts.SkipMalformed {
				return nil, perr
			}
			log.Warn(log.ResultsModule, "Skipping malformed row", "line", perr.Line, "reason", perr.Reason)
			t.Skipped = append(t.Skipped, perr)
			continue
		}
		t.Rows = append(t.Rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, &ParseError{Line: lineNo + 1, Reason: err.Error(), Err: charterrors.ErrMalformedRow}
	}
	if t == nil {
		return nil, fmt.Errorf("no header line: %w", charterrors.ErrEmptyTable)
	}
	// a header alone is a valid, empty multi series table
	if opts.Format == HeaderlessSingleSeries && len(t.Rows) == 0 {
		return nil, fmt.Errorf("no data rows: %w", charterrors.ErrEmptyTable)
	}
	return t, nil
}

func parseRow(fields []string, want int, lineNo int) (Row, *ParseError) {
	if len(fields) != want {
		return Row{}, &ParseError{Line: lineNo, Reason: fmt.Sprintf("expected %d columns, got %d", want, len(fields)), Err: charterrors.ErrMalformedRow}
	}
	lineCount, err := strconv.ParseInt(fields[0], 10, 64)
	if err != nil {
		return Row{}, &ParseError{Line: lineNo, Reason: fmt.Sprintf("line count %q is not an integer", fields[0]), Err: charterrors.ErrMalformedRow}
	}
	values := make([]float64, len(fields)-1)
	for i, tok := range fields[1:] {
		v, err := strconv.ParseFloat(tok, 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			return Row{}, &ParseError{Line: lineNo, Reason: fmt.Sprintf("column %d value %q is not a finite number", i+2, tok), Err: charterrors.ErrMalformedRow}
		}
		values[i] = v
	}
	return Row{Line: lineNo, LineCount: lineCount, Values: values}, nil
}
