package bench

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/colorfulnotion/hashchart/charterrors"
	"github.com/colorfulnotion/hashchart/log"
	"github.com/colorfulnotion/hashchart/results"
)

// DefaultRuns is how many passes are averaged per line count.
const DefaultRuns = 5

// XLabel heads the line count column of produced results files.
const XLabel = "Lines"

// Timing is the mean time to hash the first LineCount corpus lines, with
// the median and spread of the individual passes.
type Timing struct {
	LineCount int
	Seconds   float64
	P50, P95  time.Duration
	Max       time.Duration
}

// ReadCorpus reads path line by line; every line keeps its trailing newline.
func ReadCorpus(path string) ([][]byte, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if !info.Mode().IsRegular() {
		return nil, fmt.Errorf("%s: %w", path, charterrors.ErrNotRegularFile)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var lines [][]byte
	sc := bufio.NewScanner(bytes.NewReader(data))
	sc.Buffer(make([]byte, 0, 64*1024), len(data)+1)
	for sc.Scan() {
		line := make([]byte, 0, len(sc.Bytes())+1)
		line = append(line, sc.Bytes()...)
		lines = append(lines, append(line, '\n'))
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, fmt.Errorf("%s: %w", path, charterrors.ErrEmptyCorpus)
	}
	return lines, nil
}

// Measure hashes growing prefixes of lines: 1, 2, 4, ... lines and finally
// the whole corpus, runs times each, and returns the mean per line count in
// ascending order.
func Measure(ctx context.Context, h Hasher, lines [][]byte, runs int) ([]Timing, error) {
	if len(lines) == 0 {
		return nil, charterrors.ErrEmptyCorpus
	}
	if runs < 1 {
		runs = 1
	}
	total := len(lines)
	rec := NewRecorder()
	buf := make([]byte, 0, total*64)
	h.Sum(nil)

	timeOne := func(limit int) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		buf = buf[:0]
		for _, l := range lines[:limit] {
			buf = append(buf, l...)
		}
		done := rec.Start(limit)
		h.Sum(buf)
		done()
		return nil
	}

	for run := 0; run < runs; run++ {
		for block := 1; block <= total; block *= 2 {
			if err := timeOne(block); err != nil {
				return nil, err
			}
		}
		// a power-of-two corpus was already timed in full above
		if total&(total-1) != 0 {
			if err := timeOne(total); err != nil {
				return nil, err
			}
		}
		log.Trace(log.BenchModule, "Finished run", "hasher", h.Name(), "run", run+1, "of", runs)
	}

	samples := rec.Snapshot()
	timings := make([]Timing, len(samples))
	for i, s := range samples {
		timings[i] = Timing{LineCount: s.LineCount, Seconds: s.Mean(), P50: s.P50, P95: s.P95, Max: s.Max}
	}
	return timings, nil
}

// Options selects what Run measures and how the table is shaped.
type Options struct {
	Corpus  string
	Hashers []string
	Runs    int
	Format  results.Format
}

// Run measures every selected hasher over the corpus and returns the results
// table: one series per hasher, or a single series for a headerless file.
func Run(ctx context.Context, opts Options) (*results.Table, error) {
	hashers, err := Hashers(opts.Hashers...)
	if err != nil {
		return nil, err
	}
	if opts.Format == results.HeaderlessSingleSeries && len(hashers) != 1 {
		return nil, fmt.Errorf("headerless results hold one hasher, got %d: %w", len(hashers), charterrors.ErrBadHeader)
	}
	runs := opts.Runs
	if runs <= 0 {
		runs = DefaultRuns
	}

	lines, err := ReadCorpus(opts.Corpus)
	if err != nil {
		return nil, err
	}
	log.Info(log.BenchModule, "Starting konstitucija benchmark", "corpus", opts.Corpus, "lines", len(lines), "runs", runs, "hashers", len(hashers))

	byLines := make(map[int][]float64)
	names := make([]string, len(hashers))
	for i, h := range hashers {
		names[i] = h.Name()
		timings, err := Measure(ctx, h, lines, runs)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", h.Name(), err)
		}
		for _, tm := range timings {
			row, ok := byLines[tm.LineCount]
			if !ok {
				row = make([]float64, len(hashers))
				byLines[tm.LineCount] = row
			}
			row[i] = tm.Seconds
			log.Debug(log.BenchModule, "Timing", "hasher", h.Name(), "lines", tm.LineCount, "time", results.FormatSeconds(tm.Seconds), "p50", tm.P50, "p95", tm.P95, "max", tm.Max)
		}
	}

	xLabel := XLabel
	if opts.Format == results.HeaderlessSingleSeries {
		xLabel = results.HeaderlessXLabel
	}
	t := results.NewTable(xLabel, names...)
	counts := make([]int, 0, len(byLines))
	for lc := range byLines {
		counts = append(counts, lc)
	}
	sort.Ints(counts)
	for _, lc := range counts {
		if err := t.Append(int64(lc), byLines[lc]...); err != nil {
			return nil, err
		}
	}
	return t, nil
}
