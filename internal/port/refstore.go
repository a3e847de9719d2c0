package port

import "asvsearch/internal/domain"

// ReferenceStore persists a built reference database so later processes can
// reload precomputed vectors instead of re-vectorizing at startup.
type ReferenceStore interface {
	PutRecords(records []domain.ReferenceRecord) error

	// LoadRecords returns the stored records in insertion order.
	LoadRecords() ([]domain.ReferenceRecord, error)

	Count() (int, error)

	Close() error
}
