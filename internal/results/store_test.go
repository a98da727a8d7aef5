package results

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestStore_LogAndReadBack tests that records come back in insertion order.
func TestStore_LogAndReadBack(t *testing.T) {
	store, err := CreateStore(filepath.Join(t.TempDir(), "results.db"), "")
	require.NoError(t, err)
	defer store.Close()

	require.NoError(t, store.StartIteration(1))
	require.NoError(t, store.LogLedger(1, 0, 2, 1500*time.Millisecond))
	require.NoError(t, store.LogLedger(1, 1, 2, 2*time.Second))

	records, err := store.Iteration(1)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, 0, records[0].NodeID)
	assert.Equal(t, uint32(2), records[0].LedgerSeq)
	assert.Equal(t, int64(1500), records[0].ValidationMs)
	assert.Equal(t, 1, records[1].NodeID)
	assert.Equal(t, int64(2000), records[1].ValidationMs)
}

// TestStore_ReadBackOrderPastTenRecords tests that insertion order survives
// the bucket key rolling past one digit.
func TestStore_ReadBackOrderPastTenRecords(t *testing.T) {
	store, err := CreateStore(filepath.Join(t.TempDir(), "results.db"), "")
	require.NoError(t, err)
	defer store.Close()

	require.NoError(t, store.StartIteration(1))
	for seq := uint32(1); seq <= 12; seq++ {
		require.NoError(t, store.LogLedger(1, int(seq%3), seq, time.Second))
	}

	records, err := store.Iteration(1)
	require.NoError(t, err)
	require.Len(t, records, 12)
	for i, record := range records {
		assert.Equal(t, uint32(i+1), record.LedgerSeq)
	}
}

// TestStore_LogWithoutIterationFails tests that starting the iteration is
// mandatory before logging into it.
func TestStore_LogWithoutIterationFails(t *testing.T) {
	store, err := CreateStore(filepath.Join(t.TempDir(), "results.db"), "")
	require.NoError(t, err)
	defer store.Close()

	assert.Error(t, store.LogLedger(3, 0, 2, time.Second))
}

// TestStore_CSVExportOnClose tests the CSV written when the store closes.
func TestStore_CSVExportOnClose(t *testing.T) {
	dir := t.TempDir()
	csvPath := filepath.Join(dir, "ledger_results.csv")
	store, err := CreateStore(filepath.Join(dir, "results.db"), csvPath)
	require.NoError(t, err)

	require.NoError(t, store.StartIteration(1))
	require.NoError(t, store.LogLedger(1, 0, 2, time.Second))
	require.NoError(t, store.StartIteration(2))
	require.NoError(t, store.LogLedger(2, 1, 3, 2*time.Second))
	require.NoError(t, store.Close())

	file, err := os.Open(csvPath)
	require.NoError(t, err)
	defer file.Close()

	rows, err := csv.NewReader(file).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"iteration", "node_id", "ledger_seq", "validation_ms", "timestamp"}, rows[0])
	assert.Equal(t, "1", rows[1][0])
	assert.Equal(t, "0", rows[1][1])
	assert.Equal(t, "2", rows[1][2])
	assert.Equal(t, "2", rows[2][0])
	assert.Equal(t, "1", rows[2][1])
	assert.Equal(t, "3", rows[2][2])
}
