package observability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMetrics_Snapshot(t *testing.T) {
	m := NewMetrics()
	m.RecordRequest("/feed", "GET", 200, 10*time.Millisecond)
	m.RecordRequest("/feed", "GET", 200, 30*time.Millisecond)
	m.RecordError("/tickets/:id", "DELETE", "NOT_FOUND")

	snap := m.Snapshot()

	assert.Equal(t, int64(2), snap.Requests["/feed|GET|200"])
	assert.Equal(t, int64(20), snap.AvgLatencyMilli["/feed|GET|200"])
	assert.Equal(t, int64(1), snap.Errors["/tickets/:id|DELETE|NOT_FOUND"])
}

func TestMetrics_NilReceiver(t *testing.T) {
	var m *Metrics
	m.RecordRequest("/feed", "GET", 200, time.Millisecond)
	m.RecordError("/feed", "GET", "INTERNAL_ERROR")

	snap := m.Snapshot()
	assert.Empty(t, snap.Requests)
	assert.Empty(t, snap.Errors)
}
