package network

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestReplayBuffer_RejectsInvalidCapacity tests the capacity lower bound.
func TestReplayBuffer_RejectsInvalidCapacity(t *testing.T) {
	_, err := CreateReplayBuffer(0)
	assert.Error(t, err)
}

// TestReplayBuffer_Determinism tests that a recorded decision is returned for
// the identical message and nothing else.
func TestReplayBuffer_Determinism(t *testing.T) {
	buffer, err := CreateReplayBuffer(4)
	require.NoError(t, err)

	initial := []byte("original bytes")
	mutated := []byte("mutated bytes")
	buffer.Record(initial, mutated, 42)

	final, action, ok := buffer.Match(initial)
	require.True(t, ok)
	assert.Equal(t, mutated, final)
	assert.Equal(t, uint32(42), action)

	other := []byte("different bytes")
	final, action, ok = buffer.Match(other)
	assert.False(t, ok)
	assert.Equal(t, other, final)
	assert.Equal(t, uint32(0), action)
}

// TestReplayBuffer_Bound tests that the oldest entry falls out once the
// capacity is exceeded.
func TestReplayBuffer_Bound(t *testing.T) {
	capacity := 3
	buffer, err := CreateReplayBuffer(capacity)
	require.NoError(t, err)

	messages := [][]byte{
		[]byte("first"), []byte("second"), []byte("third"), []byte("fourth"),
	}
	for i, message := range messages {
		buffer.Record(message, message, uint32(i))
	}

	assert.Equal(t, capacity, buffer.Len())
	_, _, ok := buffer.Match([]byte("first"))
	assert.False(t, ok, "oldest entry should have been evicted")
	for _, message := range messages[1:] {
		_, _, ok := buffer.Match(message)
		assert.True(t, ok)
	}
}
