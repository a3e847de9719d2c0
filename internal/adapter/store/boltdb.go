package store

import (
	"encoding/binary"
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"

	"asvsearch/internal/domain"
	"asvsearch/internal/port"
)

var _ port.ReferenceStore = (*BoltStore)(nil)

var (
	bucketRecords = []byte("records")
	bucketMeta    = []byte("meta")
	keyKmerSize   = []byte("kmer_size")
)

// BoltStore persists a built reference database - records plus their
// precomputed vectors - so serving processes can load vectors instead of
// re-vectorizing every reference sequence at startup. Records are keyed by a
// big-endian insertion index, so LoadRecords returns them in build order and
// ranking tie-breaks survive a round trip through the store.
type BoltStore struct {
	db *bbolt.DB
}

type storedRecord struct {
	SampleID   string                 `json:"sample_id"`
	SequenceID string                 `json:"sequence_id"`
	Sequence   string                 `json:"sequence"`
	Taxonomy   string                 `json:"taxonomy,omitempty"`
	Vector     domain.FrequencyVector `json:"vector"`
}

// NewBoltStore opens (or creates) the reference database file at path.
func NewBoltStore(path string) (*BoltStore, error) {
	db, err := bbolt.Open(path, 0600, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open reference db: %w", err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		for _, b := range [][]byte{bucketRecords, bucketMeta} {
			if _, err := tx.CreateBucketIfNotExists(b); err != nil {
				return fmt.Errorf("failed to create bucket %s: %w", b, err)
			}
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	return &BoltStore{db: db}, nil
}

// PutRecords replaces the stored record set with records, preserving slice
// order.
func (s *BoltStore) PutRecords(records []domain.ReferenceRecord) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		if err := tx.DeleteBucket(bucketRecords); err != nil {
			return err
		}
		b, err := tx.CreateBucket(bucketRecords)
		if err != nil {
			return err
		}

		for i, rec := range records {
			data, err := json.Marshal(storedRecord{
				SampleID:   rec.SampleID,
				SequenceID: rec.SequenceID,
				Sequence:   rec.Sequence,
				Taxonomy:   rec.Taxonomy,
				Vector:     rec.Vector,
			})
			if err != nil {
				return err
			}

			key := make([]byte, 8)
			binary.BigEndian.PutUint64(key, uint64(i))
			if err := b.Put(key, data); err != nil {
				return err
			}
		}
		return nil
	})
}

// LoadRecords returns all stored records in insertion order.
func (s *BoltStore) LoadRecords() ([]domain.ReferenceRecord, error) {
	var records []domain.ReferenceRecord
	err := s.db.View(func(tx *bbolt.Tx) error {
		b := tx.Bucket(bucketRecords)
		if b == nil {
			return nil
		}
		return b.ForEach(func(k, v []byte) error {
			var stored storedRecord
			if err := json.Unmarshal(v, &stored); err != nil {
				return fmt.Errorf("corrupt record %x: %w", k, err)
			}
			records = append(records, domain.ReferenceRecord{
				SampleID:   stored.SampleID,
				SequenceID: stored.SequenceID,
				Sequence:   stored.Sequence,
				Taxonomy:   stored.Taxonomy,
				Vector:     stored.Vector,
			})
			return nil
		})
	})
	return records, err
}

// Count returns the number of stored records.
func (s *BoltStore) Count() (int, error) {
	var count int
	err := s.db.View(func(tx *bbolt.Tx) error {
		if b := tx.Bucket(bucketRecords); b != nil {
			count = b.Stats().KeyN
		}
		return nil
	})
	return count, err
}

// PutKmerSize stores the k-mer size the records were vectorized with.
func (s *BoltStore) PutKmerSize(k int) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		key := make([]byte, 8)
		binary.BigEndian.PutUint64(key, uint64(k))
		return tx.Bucket(bucketMeta).Put(keyKmerSize, key)
	})
}

// KmerSize returns the stored k-mer size, or 0 when none was recorded.
func (s *BoltStore) KmerSize() (int, error) {
	var k int
	err := s.db.View(func(tx *bbolt.Tx) error {
		if v := tx.Bucket(bucketMeta).Get(keyKmerSize); v != nil {
			k = int(binary.BigEndian.Uint64(v))
		}
		return nil
	})
	return k, err
}

// Close closes the underlying database file.
func (s *BoltStore) Close() error {
	return s.db.Close()
}
