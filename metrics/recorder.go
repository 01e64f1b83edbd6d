// Package metrics provides latency recording for dispatched requests using
// HDR histograms for accurate percentile calculation.
package metrics

import (
	"sync"
	"time"

	"github.com/HdrHistogram/hdrhistogram-go"
)

// Histogram bounds: 1 microsecond to 1 hour, 3 significant figures.
const (
	histogramMin     = 1
	histogramMax     = int64(time.Hour / time.Microsecond)
	histogramSigFigs = 3
)

// Recorder aggregates per-dispatch latencies. It is safe for concurrent use.
type Recorder struct {
	mu       sync.Mutex
	hist     *hdrhistogram.Histogram
	count    int64
	failures int64
}

// NewRecorder creates an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{
		hist: hdrhistogram.New(histogramMin, histogramMax, histogramSigFigs),
	}
}

// Record adds one dispatch observation. Failed dispatches count toward the
// failure total but still contribute their latency.
func (r *Recorder) Record(d time.Duration, success bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.count++
	if !success {
		r.failures++
	}
	// Out-of-range values are clamped by the histogram bounds; an error here
	// only means the observation exceeded an hour.
	_ = r.hist.RecordValue(d.Microseconds())
}

// Snapshot is an immutable view of the recorded latencies.
type Snapshot struct {
	Count    int64
	Failures int64

	Min  time.Duration
	Mean time.Duration
	Max  time.Duration
	P50  time.Duration
	P90  time.Duration
	P95  time.Duration
	P99  time.Duration
}

// Snapshot returns the current aggregate view.
func (r *Recorder) Snapshot() Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.count == 0 {
		return Snapshot{}
	}
	return Snapshot{
		Count:    r.count,
		Failures: r.failures,
		Min:      time.Duration(r.hist.Min()) * time.Microsecond,
		Mean:     time.Duration(r.hist.Mean() * float64(time.Microsecond)),
		Max:      time.Duration(r.hist.Max()) * time.Microsecond,
		P50:      time.Duration(r.hist.ValueAtQuantile(50)) * time.Microsecond,
		P90:      time.Duration(r.hist.ValueAtQuantile(90)) * time.Microsecond,
		P95:      time.Duration(r.hist.ValueAtQuantile(95)) * time.Microsecond,
		P99:      time.Duration(r.hist.ValueAtQuantile(99)) * time.Microsecond,
	}
}

// Reset discards all recorded observations.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.hist.Reset()
	r.count = 0
	r.failures = 0
}
