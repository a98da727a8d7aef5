package network

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestManager_IdenticalReplay tests the literal per-pair replay path.
func TestManager_IdenticalReplay(t *testing.T) {
	manager := CreateManager(true, false)
	require.NoError(t, manager.UpdateNodes(testNodes(3)))

	message := []byte("broadcast payload")
	require.NoError(t, manager.RecordAction(0, 1, message, message, 7))

	final, action, ok, err := manager.MatchIdentical(0, 1, message)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, message, final)
	assert.Equal(t, uint32(7), action)

	// Same message towards another receiver is a different cell.
	_, _, ok, err = manager.MatchIdentical(0, 2, message)
	require.NoError(t, err)
	assert.False(t, ok)
}

// TestManager_SubsetReplaySharesDecision tests that a decision made for one
// receiver in a subset is reused for the others and recorded retroactively.
func TestManager_SubsetReplaySharesDecision(t *testing.T) {
	manager := CreateManager(true, true)
	require.NoError(t, manager.UpdateNodes(testNodes(3)))
	require.NoError(t, manager.SetSubsets(0, SubsetSpec{Peers: []int{1, 2}}))

	message := []byte("broadcast payload")
	mutated := []byte("mutated payload")
	require.NoError(t, manager.RecordAction(0, 1, message, mutated, 99))

	final, action, ok, err := manager.MatchSubsets(0, 2, message)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, mutated, final)
	assert.Equal(t, uint32(99), action)

	// The hit must now also be a direct match for (0, 2).
	final, action, ok, err = manager.MatchIdentical(0, 2, message)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, mutated, final)
	assert.Equal(t, uint32(99), action)
}

// TestManager_SubsetLiteralHitNotRerecorded tests that a subset scan landing
// on the literal (from, to) cell does not duplicate the entry it found there.
func TestManager_SubsetLiteralHitNotRerecorded(t *testing.T) {
	manager := CreateManager(true, true)
	require.NoError(t, manager.UpdateNodes(testNodes(3)))
	require.NoError(t, manager.SetSubsets(0, SubsetSpec{Peers: []int{1, 2}}))

	message := []byte("broadcast payload")
	require.NoError(t, manager.RecordAction(0, 1, message, message, 7))

	_, action, ok, err := manager.MatchSubsets(0, 1, message)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, uint32(7), action)

	buffer, err := manager.cell(0, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, buffer.Len())
}

// TestManager_SubsetGroups tests that grouped subsets are matched
// independently.
func TestManager_SubsetGroups(t *testing.T) {
	manager := CreateManager(true, true)
	require.NoError(t, manager.UpdateNodes(testNodes(4)))
	require.NoError(t, manager.SetSubsets(0, SubsetSpec{Groups: [][]int{{1, 2}, {3}}}))

	message := []byte("payload")
	require.NoError(t, manager.RecordAction(0, 1, message, message, 5))

	_, _, ok, err := manager.MatchSubsets(0, 2, message)
	require.NoError(t, err)
	assert.True(t, ok, "receiver 2 shares a group with 1")

	_, _, ok, err = manager.MatchSubsets(0, 3, message)
	require.NoError(t, err)
	assert.False(t, ok, "receiver 3 is in a separate group")
}

// TestManager_ResetReplayClearsHistory tests the per-iteration reset.
func TestManager_ResetReplayClearsHistory(t *testing.T) {
	manager := CreateManager(true, false)
	require.NoError(t, manager.UpdateNodes(testNodes(2)))

	message := []byte("payload")
	require.NoError(t, manager.RecordAction(0, 1, message, message, 1))
	require.NoError(t, manager.ResetReplay())

	_, _, ok, err := manager.MatchIdentical(0, 1, message)
	require.NoError(t, err)
	assert.False(t, ok)
}

// TestManager_DisabledReplayRejectsRecording tests that recording without any
// replay mode enabled is a usage error.
func TestManager_DisabledReplayRejectsRecording(t *testing.T) {
	manager := CreateManager(false, false)
	require.NoError(t, manager.UpdateNodes(testNodes(2)))

	assert.Error(t, manager.RecordAction(0, 1, []byte("x"), []byte("x"), 0))
	_, _, _, err := manager.MatchIdentical(0, 1, []byte("x"))
	assert.Error(t, err)
}
