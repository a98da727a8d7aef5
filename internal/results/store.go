// Package results persists per-ledger validation events. Records go into a
// bbolt file with one bucket per test iteration and can be exported as CSV
// afterwards.
package results

import (
	"encoding/binary"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"time"

	"go.etcd.io/bbolt"
)

// LedgerRecord is one validated-ledger observation.
type LedgerRecord struct {
	NodeID       int    `json:"node_id"`
	LedgerSeq    uint32 `json:"ledger_seq"`
	ValidationMs int64  `json:"validation_ms"`
	Timestamp    string `json:"timestamp"`
}

// Store writes test results. It implements the tracker's result sink.
type Store struct {
	db      *bbolt.DB
	csvPath string
}

// CreateStore opens the result database at the given path, creating it if
// needed. A non-empty csvPath makes Close export all records as CSV first.
func CreateStore(dbPath, csvPath string) (*Store, error) {
	db, err := bbolt.Open(dbPath, 0600, nil)
	if err != nil {
		return nil, fmt.Errorf("open result store %q: %w", dbPath, err)
	}
	return &Store{db: db, csvPath: csvPath}, nil
}

func iterationBucket(iteration int) []byte {
	return []byte("iteration-" + strconv.Itoa(iteration))
}

// StartIteration creates the bucket holding the iteration's records.
func (s *Store) StartIteration(iteration int) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(iterationBucket(iteration))
		return err
	})
}

// LogLedger appends one validated-ledger record to the iteration's bucket.
func (s *Store) LogLedger(iteration, nodeID int, seq uint32, validationTime time.Duration) error {
	record := LedgerRecord{
		NodeID:       nodeID,
		LedgerSeq:    seq,
		ValidationMs: validationTime.Milliseconds(),
		Timestamp:    time.Now().UTC().Format(time.RFC3339Nano),
	}
	value, err := json.Marshal(record)
	if err != nil {
		return err
	}
	return s.db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket(iterationBucket(iteration))
		if b == nil {
			return fmt.Errorf("iteration %d was never started", iteration)
		}
		seq, err := b.NextSequence()
		if err != nil {
			return err
		}
		// Fixed-width keys keep bbolt's lexicographic order equal to
		// insertion order.
		key := make([]byte, 8)
		binary.BigEndian.PutUint64(key, seq)
		return b.Put(key, value)
	})
}

// Iteration reads back all records of one iteration in insertion order.
func (s *Store) Iteration(iteration int) ([]LedgerRecord, error) {
	var records []LedgerRecord
	err := s.db.View(func(tx *bbolt.Tx) error {
		b := tx.Bucket(iterationBucket(iteration))
		if b == nil {
			return fmt.Errorf("iteration %d was never started", iteration)
		}
		return b.ForEach(func(_, v []byte) error {
			var record LedgerRecord
			if err := json.Unmarshal(v, &record); err != nil {
				return err
			}
			records = append(records, record)
			return nil
		})
	})
	return records, err
}

// ExportCSV writes every recorded iteration to a CSV file.
func (s *Store) ExportCSV(path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv export %q: %w", path, err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.Write([]string{"iteration", "node_id", "ledger_seq", "validation_ms", "timestamp"}); err != nil {
		return err
	}
	err = s.db.View(func(tx *bbolt.Tx) error {
		for iteration := 1; ; iteration++ {
			b := tx.Bucket(iterationBucket(iteration))
			if b == nil {
				return nil
			}
			err := b.ForEach(func(_, v []byte) error {
				var record LedgerRecord
				if err := json.Unmarshal(v, &record); err != nil {
					return err
				}
				return writer.Write([]string{
					strconv.Itoa(iteration),
					strconv.Itoa(record.NodeID),
					strconv.FormatUint(uint64(record.LedgerSeq), 10),
					strconv.FormatInt(record.ValidationMs, 10),
					record.Timestamp,
				})
			})
			if err != nil {
				return err
			}
		}
	})
	if err != nil {
		return err
	}
	writer.Flush()
	return writer.Error()
}

// Close exports the configured CSV file and closes the database.
func (s *Store) Close() error {
	if s.csvPath != "" {
		if err := s.ExportCSV(s.csvPath); err != nil {
			s.db.Close()
			return err
		}
	}
	return s.db.Close()
}
