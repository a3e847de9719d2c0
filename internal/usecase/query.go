package usecase

import (
	"fmt"

	"asvsearch/internal/adapter/refdb"
	"asvsearch/internal/domain"
	"asvsearch/internal/port"
)

// QueryUseCase orchestrates a sequence query end to end: vectorize the query,
// rank it against the reference database, and shape the response. All state
// it touches is either immutable (the database) or per-call, so a single
// instance is safe for concurrent requests.
type QueryUseCase struct {
	db                *refdb.Database
	vectorizer        port.Vectorizer
	searcher          port.Searcher
	defaultTopK       int
	minScoreThreshold float64 // Filter results below this score (0 = disabled)
}

// NewQueryUseCase creates a query use case. topK <= 0 on a query falls back
// to defaultTopK.
func NewQueryUseCase(
	db *refdb.Database,
	vectorizer port.Vectorizer,
	searcher port.Searcher,
	defaultTopK int,
	minScoreThreshold float64,
) *QueryUseCase {
	return &QueryUseCase{
		db:                db,
		vectorizer:        vectorizer,
		searcher:          searcher,
		defaultTopK:       defaultTopK,
		minScoreThreshold: minScoreThreshold,
	}
}

// Query compares a single sequence against the reference database and
// returns the top-k matches. Returns *domain.InvalidSequenceError for
// sequences shorter than the k-mer size and domain.ErrEmptyDatabase when no
// references are loaded.
func (u *QueryUseCase) Query(sequence string, topK int) (domain.QueryResult, error) {
	if u.db.Len() == 0 {
		return domain.QueryResult{}, domain.ErrEmptyDatabase
	}
	if topK <= 0 {
		topK = u.defaultTopK
	}

	queryVector, err := u.vectorizer.Vectorize(sequence)
	if err != nil {
		return domain.QueryResult{}, err
	}

	results := u.searcher.Rank(queryVector, u.db.Records(), topK)
	if u.minScoreThreshold > 0 {
		results = u.filterByThreshold(results)
	}

	return domain.QueryResult{
		QuerySequence: sequence,
		QueryLength:   len(sequence),
		MatchesFound:  len(results),
		Results:       results,
	}, nil
}

// QueryBatch runs an independent query for every FASTA record. No state is
// shared between entries beyond the immutable database.
func (u *QueryUseCase) QueryBatch(records []domain.FastaRecord, topK int) (domain.BatchResult, error) {
	if u.db.Len() == 0 {
		return domain.BatchResult{}, domain.ErrEmptyDatabase
	}

	entries := make([]domain.BatchEntry, 0, len(records))
	for _, rec := range records {
		result, err := u.Query(rec.Sequence, topK)
		if err != nil {
			return domain.BatchResult{}, fmt.Errorf("sequence %q: %w", rec.ID, err)
		}
		entries = append(entries, domain.BatchEntry{
			QuerySequenceID: rec.ID,
			QueryLength:     result.QueryLength,
			Matches:         result.Results,
		})
	}

	return domain.BatchResult{
		TotalSequences: len(entries),
		Results:        entries,
	}, nil
}

// Info returns the reference database summary.
func (u *QueryUseCase) Info() domain.DatabaseInfo {
	return u.db.Info()
}

// ReferenceCount returns the number of loaded reference records.
func (u *QueryUseCase) ReferenceCount() int {
	return u.db.Len()
}

func (u *QueryUseCase) filterByThreshold(results []domain.SimilarityResult) []domain.SimilarityResult {
	filtered := make([]domain.SimilarityResult, 0, len(results))
	for _, r := range results {
		if r.SimilarityScore >= u.minScoreThreshold {
			filtered = append(filtered, r)
		}
	}
	return filtered
}
