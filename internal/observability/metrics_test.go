package observability

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordStatsCacheLookup(t *testing.T) {
	hits := testutil.ToFloat64(statsCacheLookups.WithLabelValues("journal", "hit"))
	misses := testutil.ToFloat64(statsCacheLookups.WithLabelValues("journal", "miss"))

	RecordStatsCacheLookup("journal", true)
	RecordStatsCacheLookup("journal", false)
	RecordStatsCacheLookup("journal", false)

	assert.Equal(t, hits+1, testutil.ToFloat64(statsCacheLookups.WithLabelValues("journal", "hit")))
	assert.Equal(t, misses+2, testutil.ToFloat64(statsCacheLookups.WithLabelValues("journal", "miss")))
}

func TestObserveStatsComputation(t *testing.T) {
	ObserveStatsComputation("mood", 12, 3*time.Millisecond)

	assert.Equal(t, 1, testutil.CollectAndCount(statsComputeDuration, "parenting_journal_stats_compute_duration_seconds"))
}
