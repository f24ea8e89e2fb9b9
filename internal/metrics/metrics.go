// internal/metrics/metrics.go
package metrics

import (
	"io"
	"sync"
	"sync/atomic"
	"time"

	"github.com/uber-go/tally"
)

// Run aggregates counters for one generation pass on a tally scope.
// Counter deltas surface through the in-process reporter on the reporting
// interval and at close; exact totals are tracked alongside so the
// completion summary of a short run never loses the final partial interval.
type Run struct {
	scope  tally.Scope
	closer io.Closer

	valuesC tally.Counter
	bytesC  tally.Counter

	values atomic.Int64
	bytes  atomic.Int64

	reporter *snapshotReporter
}

// NewRun builds the root scope and counters for a single run.
func NewRun() *Run {
	rep := newSnapshotReporter()
	scope, closer := tally.NewRootScope(tally.ScopeOptions{
		Prefix:   "dicgen",
		Reporter: rep,
	}, time.Second)
	sub := scope.SubScope("run")
	return &Run{
		scope:    scope,
		closer:   closer,
		valuesC:  sub.Counter("values_emitted"),
		bytesC:   sub.Counter("bytes_written"),
		reporter: rep,
	}
}

// AddValues records n emitted values.
func (r *Run) AddValues(n int64) {
	r.valuesC.Inc(n)
	r.values.Add(n)
}

// AddBytes records n bytes written to the destination.
func (r *Run) AddBytes(n int64) {
	r.bytesC.Inc(n)
	r.bytes.Add(n)
}

// Totals stops reporting and returns the summed values/bytes counters.
func (r *Run) Totals() (values, bytes int64) {
	_ = r.closer.Close()
	return r.values.Load(), r.bytes.Load()
}

// Reported returns the counter total that reached the reporter under the
// fully qualified name, e.g. "dicgen.run.values_emitted".
func (r *Run) Reported(name string) int64 { return r.reporter.total(name) }

// snapshotReporter keeps reported counter totals in process. dicgen is a
// one-shot CLI, so there is no external metrics sink to push to.
type snapshotReporter struct {
	mu     sync.Mutex
	counts map[string]int64
}

func newSnapshotReporter() *snapshotReporter {
	return &snapshotReporter{counts: make(map[string]int64)}
}

func (s *snapshotReporter) total(name string) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.counts[name]
}

func (s *snapshotReporter) ReportCounter(name string, _ map[string]string, value int64) {
	s.mu.Lock()
	s.counts[name] += value
	s.mu.Unlock()
}

func (s *snapshotReporter) ReportGauge(string, map[string]string, float64) {}

func (s *snapshotReporter) ReportTimer(string, map[string]string, time.Duration) {}

func (s *snapshotReporter) ReportHistogramValueSamples(string, map[string]string, tally.Buckets, float64, float64, int64) {
}

func (s *snapshotReporter) ReportHistogramDurationSamples(string, map[string]string, tally.Buckets, time.Duration, time.Duration, int64) {
}

func (s *snapshotReporter) Capabilities() tally.Capabilities { return s }
func (s *snapshotReporter) Reporting() bool                  { return true }
func (s *snapshotReporter) Tagging() bool                    { return false }
func (s *snapshotReporter) Flush()                           {}
