package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFrameSchedulerRunsInOrder(t *testing.T) {
	f := NewFrameScheduler()
	var got []int
	f.RequestFrame(func(float64) { got = append(got, 1) })
	f.RequestFrame(func(float64) { got = append(got, 2) })

	f.Fire(0)

	assert.Equal(t, []int{1, 2}, got)
	assert.Zero(t, f.Pending())
}

func TestFrameSchedulerDefersNestedRequests(t *testing.T) {
	f := NewFrameScheduler()
	calls := 0
	var loop FrameFunc
	loop = func(float64) {
		calls++
		f.RequestFrame(loop)
	}
	f.RequestFrame(loop)

	f.Fire(0)
	assert.Equal(t, 1, calls)
	assert.Equal(t, 1, f.Pending())

	f.Fire(16)
	assert.Equal(t, 2, calls)
}

func TestFrameSchedulerCancel(t *testing.T) {
	f := NewFrameScheduler()
	fired := false
	h := f.RequestFrame(func(float64) { fired = true })
	other := f.RequestFrame(func(float64) {})

	f.CancelFrame(h)
	f.CancelFrame(h)
	f.CancelFrame(0)
	assert.Equal(t, 1, f.Pending())

	f.Fire(0)
	assert.False(t, fired)
	assert.NotEqual(t, h, other)
}

func TestFrameSchedulerPassesTimestamp(t *testing.T) {
	f := NewFrameScheduler()
	var ts float64
	f.RequestFrame(func(t float64) { ts = t })
	f.Fire(4242.5)
	assert.Equal(t, 4242.5, ts)
}
