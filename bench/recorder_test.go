package bench

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecorderSnapshot(t *testing.T) {
	r := NewRecorder()
	for _, ms := range []int{4, 1, 3, 2} {
		r.Add(8, time.Duration(ms)*time.Millisecond)
	}
	r.Add(1, time.Millisecond)

	snap := r.Snapshot()
	require.Len(t, snap, 2)
	assert.Equal(t, 1, snap[0].LineCount)
	assert.Equal(t, 1, snap[0].Count)
	assert.Equal(t, time.Millisecond, snap[0].P95)

	s := snap[1]
	assert.Equal(t, 8, s.LineCount)
	assert.Equal(t, 4, s.Count)
	assert.Equal(t, 10*time.Millisecond, s.Total)
	assert.Equal(t, 3*time.Millisecond, s.P50)
	assert.Equal(t, 3*time.Millisecond, s.P95)
	assert.Equal(t, 4*time.Millisecond, s.Max)
	assert.InDelta(t, 0.0025, s.Mean(), 1e-12)
}

func TestRecorderStart(t *testing.T) {
	r := NewRecorder()
	done := r.Start(2)
	done()
	snap := r.Snapshot()
	require.Len(t, snap, 1)
	assert.Equal(t, 2, snap[0].LineCount)
	assert.Equal(t, 0.0, Sample{}.Mean())
}
