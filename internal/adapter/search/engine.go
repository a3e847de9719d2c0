package search

import (
	"sort"

	"asvsearch/internal/domain"
)

// CosineRanker scores reference records against a query vector with cosine
// similarity and returns a stable top-k ranking.
type CosineRanker struct {
	maxTopK int
}

// NewCosineRanker creates a ranker. Requested k values are clamped to
// [1, maxTopK]; maxTopK <= 0 disables the upper bound.
func NewCosineRanker(maxTopK int) *CosineRanker {
	return &CosineRanker{maxTopK: maxTopK}
}

// Rank computes the similarity of query against every record and returns the
// top-k results sorted by descending score. Ties keep database insertion
// order, so repeated calls over the same record set are deterministic.
func (r *CosineRanker) Rank(query domain.FrequencyVector, records []domain.ReferenceRecord, k int) []domain.SimilarityResult {
	if k < 1 {
		k = 1
	}
	if r.maxTopK > 0 && k > r.maxTopK {
		k = r.maxTopK
	}

	results := make([]domain.SimilarityResult, 0, len(records))
	for _, rec := range records {
		results = append(results, domain.SimilarityResult{
			SampleID:        rec.SampleID,
			SequenceID:      rec.SequenceID,
			SimilarityScore: Cosine(query, rec.Vector),
			Taxonomy:        rec.Taxonomy,
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].SimilarityScore > results[j].SimilarityScore
	})

	if len(results) > k {
		results = results[:k]
	}
	return results
}

// Cosine returns the cosine similarity of two unit-normalized sparse vectors:
// just their dot product, accumulated over the smaller vector's keys since
// only shared k-mers contribute. Zero overlap yields 0.0.
func Cosine(a, b domain.FrequencyVector) float64 {
	if len(b) < len(a) {
		a, b = b, a
	}

	var dot float64
	for kmer, fa := range a {
		if fb, ok := b[kmer]; ok {
			dot += fa * fb
		}
	}
	return dot
}
