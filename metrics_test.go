package bigseq

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBasicMetricsCollector(t *testing.T) {
	mc := &BasicMetricsCollector{}

	mc.RecordSwitch(10*time.Microsecond, nil)
	mc.RecordSwitch(30*time.Microsecond, errors.New("boom"))
	mc.RecordFlush(64, time.Microsecond, nil)
	mc.RecordFlush(64, time.Microsecond, errors.New("boom"))
	mc.RecordLoad(64, true, time.Microsecond, nil)
	mc.RecordLoad(64, false, time.Microsecond, nil)
	mc.RecordLoad(64, false, time.Microsecond, errors.New("boom"))
	mc.RecordShift(opInsert, 7)
	mc.RecordShift(opRemove, 3)
	mc.RecordShift(opRemove, 2)

	stats := mc.GetStats()
	assert.Equal(t, int64(2), stats.SwitchCount)
	assert.Equal(t, int64(1), stats.SwitchErrors)
	assert.Equal(t, int64(20*time.Microsecond), stats.SwitchAvgNanos)
	assert.Equal(t, int64(2), stats.FlushCount)
	assert.Equal(t, int64(1), stats.FlushErrors)
	assert.Equal(t, int64(64), stats.FlushBytes)
	assert.Equal(t, int64(3), stats.LoadCount)
	assert.Equal(t, int64(1), stats.LoadMisses)
	assert.Equal(t, int64(1), stats.LoadErrors)
	assert.Equal(t, int64(64), stats.LoadBytes)
	assert.Equal(t, int64(1), stats.InsertCount)
	assert.Equal(t, int64(7), stats.InsertMoved)
	assert.Equal(t, int64(2), stats.RemoveCount)
	assert.Equal(t, int64(5), stats.RemoveMoved)

	mc.Reset()
	assert.Equal(t, MetricsStats{}, mc.GetStats())
}

func TestNoopMetricsCollector(t *testing.T) {
	var mc MetricsCollector = NoopMetricsCollector{}

	assert.NotPanics(t, func() {
		mc.RecordSwitch(time.Second, nil)
		mc.RecordFlush(1, time.Second, nil)
		mc.RecordLoad(1, true, time.Second, nil)
		mc.RecordShift(opInsert, 1)
	})
}
