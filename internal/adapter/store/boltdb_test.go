package store

import (
	"math"
	"path/filepath"
	"testing"

	"asvsearch/internal/adapter/analyzer"
	"asvsearch/internal/adapter/refdb"
	"asvsearch/internal/adapter/search"
)

func openTestStore(t *testing.T) *BoltStore {
	t.Helper()
	st, err := NewBoltStore(filepath.Join(t.TempDir(), "reference.db"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { st.Close() })
	return st
}

func TestBoltStore_RoundTrip(t *testing.T) {
	st := openTestStore(t)

	db, err := refdb.New(analyzer.NewKmerVectorizer(6), refdb.BuiltinSamples())
	if err != nil {
		t.Fatal(err)
	}

	if err := st.PutRecords(db.Records()); err != nil {
		t.Fatalf("PutRecords: %v", err)
	}

	loaded, err := st.LoadRecords()
	if err != nil {
		t.Fatalf("LoadRecords: %v", err)
	}
	if len(loaded) != db.Len() {
		t.Fatalf("expected %d records, got %d", db.Len(), len(loaded))
	}

	for i, rec := range db.Records() {
		got := loaded[i]
		if got.SampleID != rec.SampleID || got.SequenceID != rec.SequenceID {
			t.Errorf("record %d: order not preserved: got %s/%s", i, got.SampleID, got.SequenceID)
		}
		if got.Taxonomy != rec.Taxonomy {
			t.Errorf("record %d: taxonomy mismatch", i)
		}
		if len(got.Vector) != len(rec.Vector) {
			t.Fatalf("record %d: vector size mismatch: %d vs %d", i, len(got.Vector), len(rec.Vector))
		}
		for kmer, f := range rec.Vector {
			if math.Abs(got.Vector[kmer]-f) > 1e-12 {
				t.Errorf("record %d entry %s changed across round trip", i, kmer)
			}
		}
	}
}

func TestBoltStore_RoundTripPreservesRanking(t *testing.T) {
	st := openTestStore(t)
	v := analyzer.NewKmerVectorizer(6)

	db, err := refdb.New(v, refdb.BuiltinSamples())
	if err != nil {
		t.Fatal(err)
	}
	if err := st.PutRecords(db.Records()); err != nil {
		t.Fatal(err)
	}

	loaded, err := st.LoadRecords()
	if err != nil {
		t.Fatal(err)
	}

	query, err := v.Vectorize(refdb.BuiltinSamples()[0].Sequence)
	if err != nil {
		t.Fatal(err)
	}

	ranker := search.NewCosineRanker(10)
	before := ranker.Rank(query, db.Records(), 4)
	after := ranker.Rank(query, loaded, 4)

	if len(before) != len(after) {
		t.Fatalf("result counts differ: %d vs %d", len(before), len(after))
	}
	for i := range before {
		if before[i].SampleID != after[i].SampleID || before[i].SequenceID != after[i].SequenceID {
			t.Errorf("rank %d differs after round trip: %s/%s vs %s/%s", i,
				before[i].SampleID, before[i].SequenceID, after[i].SampleID, after[i].SequenceID)
		}
		if math.Abs(before[i].SimilarityScore-after[i].SimilarityScore) > 1e-12 {
			t.Errorf("rank %d score differs after round trip", i)
		}
	}
}

func TestBoltStore_PutReplacesExisting(t *testing.T) {
	st := openTestStore(t)

	db, err := refdb.New(analyzer.NewKmerVectorizer(6), refdb.BuiltinSamples())
	if err != nil {
		t.Fatal(err)
	}

	if err := st.PutRecords(db.Records()); err != nil {
		t.Fatal(err)
	}
	if err := st.PutRecords(db.Records()[:2]); err != nil {
		t.Fatal(err)
	}

	count, err := st.Count()
	if err != nil {
		t.Fatal(err)
	}
	if count != 2 {
		t.Errorf("expected 2 records after replace, got %d", count)
	}
}

func TestBoltStore_KmerSize(t *testing.T) {
	st := openTestStore(t)

	k, err := st.KmerSize()
	if err != nil {
		t.Fatal(err)
	}
	if k != 0 {
		t.Errorf("expected 0 for unset k-mer size, got %d", k)
	}

	if err := st.PutKmerSize(6); err != nil {
		t.Fatal(err)
	}
	k, err = st.KmerSize()
	if err != nil {
		t.Fatal(err)
	}
	if k != 6 {
		t.Errorf("expected 6, got %d", k)
	}
}

func TestBoltStore_EmptyLoad(t *testing.T) {
	st := openTestStore(t)

	records, err := st.LoadRecords()
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 0 {
		t.Errorf("expected no records in fresh store, got %d", len(records))
	}
}
