package rounds

import (
	"sync"
	"time"
)

// ScheduledTask is a single cancellable timer. At most one schedule is live
// at a time: scheduling always cancels the prior one first.
//
// Cancellation alone cannot stop a callback that already started running, so
// callers must re-validate their own state under their own lock inside the
// callback. The tracker does this with the iteration number: a stale timeout
// firing after a reset observes a newer iteration and returns without effect.
type ScheduledTask struct {
	mutex      sync.Mutex
	generation uint64
	timer      *time.Timer
}

// Schedule arms the task to run fn after d, cancelling any prior schedule.
func (s *ScheduledTask) Schedule(d time.Duration, fn func()) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.generation++
	generation := s.generation
	if s.timer != nil {
		s.timer.Stop()
	}
	s.timer = time.AfterFunc(d, func() {
		s.mutex.Lock()
		stale := s.generation != generation
		s.mutex.Unlock()
		if stale {
			return
		}
		fn()
	})
}

// Cancel stops the pending schedule. A callback that has not yet started
// will never run after Cancel returns.
func (s *ScheduledTask) Cancel() {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.generation++
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}
