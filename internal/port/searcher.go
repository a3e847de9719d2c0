package port

import "asvsearch/internal/domain"

// Searcher ranks reference records against a query vector.
type Searcher interface {
	// Rank scores every record against the query vector and returns the
	// top-k results sorted by descending similarity.
	Rank(query domain.FrequencyVector, records []domain.ReferenceRecord, k int) []domain.SimilarityResult
}
