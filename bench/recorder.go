package bench

import (
	"sort"
	"time"
)

// Recorder collects hash durations per line count.
type Recorder struct {
	data map[int][]time.Duration
}

func NewRecorder() *Recorder { return &Recorder{data: make(map[int][]time.Duration)} }

func (r *Recorder) Add(lineCount int, d time.Duration) {
	r.data[lineCount] = append(r.data[lineCount], d)
}

// Start returns a func that records the time elapsed since Start.
func (r *Recorder) Start(lineCount int) func() {
	start := time.Now()
	return func() { r.Add(lineCount, time.Since(start)) }
}

// Sample summarises the durations recorded for one line count.
type Sample struct {
	LineCount int
	Count     int
	Total     time.Duration
	P50, P95  time.Duration
	Max       time.Duration
}

// Mean is Total/Count in seconds, without rounding to whole nanoseconds.
func (s Sample) Mean() float64 {
	if s.Count == 0 {
		return 0
	}
	return s.Total.Seconds() / float64(s.Count)
}

// Snapshot returns one Sample per line count, ascending.
func (r *Recorder) Snapshot() []Sample {
	out := make([]Sample, 0, len(r.data))
	for lc, list := range r.data {
		if len(list) == 0 {
			continue
		}
		s := append([]time.Duration(nil), list...)
		sort.Slice(s, func(i, j int) bool { return s[i] < s[j] })

		var total time.Duration
		for _, d := range s {
			total += d
		}
		p95Index := int(float64(len(s))*0.95) - 1
		if p95Index < 0 {
			p95Index = 0
		}
		out = append(out, Sample{
			LineCount: lc,
			Count:     len(s),
			Total:     total,
			P50:       s[len(s)/2],
			P95:       s[p95Index],
			Max:       s[len(s)-1],
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].LineCount < out[j].LineCount })
	return out
}
