package refdb

import (
	"fmt"
	"sort"

	"asvsearch/internal/domain"
	"asvsearch/internal/port"
)

// SampleRecord is the input form of one reference entry: a labeled sequence
// without a precomputed vector.
type SampleRecord struct {
	SampleID   string
	SequenceID string
	Sequence   string
	Taxonomy   string
}

// Database is the static in-memory reference set. Every sequence is run
// through the vectorizer exactly once at construction; records are read-only
// afterwards, so concurrent readers need no locking.
type Database struct {
	records  []domain.ReferenceRecord
	kmerSize int
}

// New builds a database from samples, vectorizing each sequence with v.
// The slice order becomes the database insertion order, which the ranker
// uses as its tie-break key.
func New(v port.Vectorizer, samples []SampleRecord) (*Database, error) {
	return NewWithProgress(v, samples, nil)
}

// NewWithProgress builds a database and reports progress after each
// vectorized record. progress may be nil.
func NewWithProgress(v port.Vectorizer, samples []SampleRecord, progress func(done, total int)) (*Database, error) {
	records := make([]domain.ReferenceRecord, 0, len(samples))
	for i, s := range samples {
		vec, err := v.Vectorize(s.Sequence)
		if err != nil {
			return nil, fmt.Errorf("reference %s/%s: %w", s.SampleID, s.SequenceID, err)
		}
		records = append(records, domain.ReferenceRecord{
			SampleID:   s.SampleID,
			SequenceID: s.SequenceID,
			Sequence:   s.Sequence,
			Taxonomy:   s.Taxonomy,
			Vector:     vec,
		})
		if progress != nil {
			progress(i+1, len(samples))
		}
	}
	return &Database{records: records, kmerSize: v.KmerSize()}, nil
}

// FromRecords wraps already-vectorized records (e.g. loaded from the
// reference store) without re-vectorizing.
func FromRecords(records []domain.ReferenceRecord, kmerSize int) *Database {
	return &Database{records: records, kmerSize: kmerSize}
}

// Records returns the records in insertion order. Callers must not mutate
// the returned slice or its vectors.
func (d *Database) Records() []domain.ReferenceRecord {
	return d.records
}

// Len returns the number of reference records.
func (d *Database) Len() int {
	return len(d.records)
}

// Info summarizes the database: record and sample counts, the distinct taxa,
// the k-mer size and the observed vector dimensionality (distinct k-mers
// across all records, not the theoretical 4^k space).
func (d *Database) Info() domain.DatabaseInfo {
	samples := make(map[string]struct{})
	taxa := make(map[string]struct{})
	kmers := make(map[string]struct{})

	for _, rec := range d.records {
		samples[rec.SampleID] = struct{}{}
		if rec.Taxonomy != "" {
			taxa[rec.Taxonomy] = struct{}{}
		}
		for kmer := range rec.Vector {
			kmers[kmer] = struct{}{}
		}
	}

	sampleIDs := make([]string, 0, len(samples))
	for id := range samples {
		sampleIDs = append(sampleIDs, id)
	}
	sort.Strings(sampleIDs)

	taxaList := make([]string, 0, len(taxa))
	for tax := range taxa {
		taxaList = append(taxaList, tax)
	}
	sort.Strings(taxaList)

	return domain.DatabaseInfo{
		TotalSequences:  len(d.records),
		UniqueSamples:   len(samples),
		SampleIDs:       sampleIDs,
		DistinctTaxa:    len(taxa),
		Taxa:            taxaList,
		KmerSize:        d.kmerSize,
		VectorDimension: len(kmers),
	}
}
