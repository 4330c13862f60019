package debugui_test

import (
	"testing"

	"github.com/plus3/blockfall/debugui"
	"github.com/stretchr/testify/assert"
)

func TestPerformanceStatsAverage(t *testing.T) {
	ps := debugui.NewPerformanceStats(4)
	assert.Equal(t, float32(0), ps.AverageFrameTime())

	ps.Record(0.010)
	ps.Record(0.030)
	assert.InDelta(t, 10.0, ps.AverageFrameTime(), 0.001)

	// the history wraps around
	for range 4 {
		ps.Record(0.016)
	}
	assert.InDelta(t, 16.0, ps.AverageFrameTime(), 0.001)
}
