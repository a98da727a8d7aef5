package rounds

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// TestScheduledTask_CancelPreventsFiring tests that a cancelled task never
// runs its callback.
func TestScheduledTask_CancelPreventsFiring(t *testing.T) {
	var fired atomic.Int32
	var task ScheduledTask
	task.Schedule(30*time.Millisecond, func() { fired.Add(1) })
	task.Cancel()

	time.Sleep(100 * time.Millisecond)
	assert.Equal(t, int32(0), fired.Load())
}

// TestScheduledTask_RescheduleSupersedes tests that scheduling again replaces
// the pending callback instead of stacking a second one.
func TestScheduledTask_RescheduleSupersedes(t *testing.T) {
	var first, second atomic.Int32
	var task ScheduledTask
	task.Schedule(30*time.Millisecond, func() { first.Add(1) })
	task.Schedule(30*time.Millisecond, func() { second.Add(1) })

	time.Sleep(150 * time.Millisecond)
	assert.Equal(t, int32(0), first.Load())
	assert.Equal(t, int32(1), second.Load())
}
