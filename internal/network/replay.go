package network

import (
	"bytes"
	"fmt"
	"sync"
)

// ReplayEntry records one processed message: the original bytes, the final
// (possibly mutated) bytes, and the action taken.
type ReplayEntry struct {
	Initial []byte
	Final   []byte
	Action  uint32
}

// ReplayBuffer is a bounded FIFO of the last capacity entries for one
// (sender, receiver) pair. Safe for concurrent use; each cell carries its own
// lock since cross-cell ordering is never required.
type ReplayBuffer struct {
	mutex    sync.Mutex
	capacity int
	entries  []ReplayEntry
}

// CreateReplayBuffer creates a replay buffer holding at most capacity entries.
func CreateReplayBuffer(capacity int) (*ReplayBuffer, error) {
	if capacity < 1 {
		return nil, fmt.Errorf("replay buffer capacity must be at least 1, got %d", capacity)
	}
	return &ReplayBuffer{capacity: capacity}, nil
}

// Record appends an entry, evicting the oldest when the buffer is full.
func (b *ReplayBuffer) Record(initial, final []byte, action uint32) {
	b.mutex.Lock()
	defer b.mutex.Unlock()

	for len(b.entries) >= b.capacity {
		copy(b.entries, b.entries[1:])
		b.entries = b.entries[:len(b.entries)-1]
	}
	b.entries = append(b.entries, ReplayEntry{Initial: initial, Final: final, Action: action})
}

// Match scans for an entry whose initial bytes equal message. The scan is
// linear on purpose: history length is capacity-bounded and the comparison
// keys on raw bytes either way. Returns the recorded final bytes and action
// on a hit; ok is false on a miss.
func (b *ReplayBuffer) Match(message []byte) (final []byte, action uint32, ok bool) {
	b.mutex.Lock()
	defer b.mutex.Unlock()

	for _, entry := range b.entries {
		if bytes.Equal(message, entry.Initial) {
			return entry.Final, entry.Action, true
		}
	}
	return message, 0, false
}

// Len returns the number of stored entries.
func (b *ReplayBuffer) Len() int {
	b.mutex.Lock()
	defer b.mutex.Unlock()
	return len(b.entries)
}
