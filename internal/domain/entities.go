package domain

// FrequencyVector is a sparse k-mer frequency vector, mapping each observed
// k-mer to its L2-normalized frequency. Most of the 4^k possible k-mers never
// occur in a real sequence, so only observed entries are stored.
type FrequencyVector map[string]float64

// ReferenceRecord is one labeled sequence in the reference database.
// Records are immutable after database construction.
type ReferenceRecord struct {
	SampleID   string
	SequenceID string
	Sequence   string
	Taxonomy   string
	Vector     FrequencyVector
}

// SimilarityResult is one ranked match for a query sequence.
type SimilarityResult struct {
	SampleID        string  `json:"sample_id"`
	SequenceID      string  `json:"sequence_id"`
	SimilarityScore float64 `json:"similarity_score"`
	Taxonomy        string  `json:"taxonomy,omitempty"`
}

// QueryResult holds the ranked matches for a single query sequence.
type QueryResult struct {
	QuerySequence string             `json:"query_sequence"`
	QueryLength   int                `json:"query_length"`
	MatchesFound  int                `json:"matches_found"`
	Results       []SimilarityResult `json:"results"`
}

// BatchEntry holds the matches for one sequence of a FASTA batch query.
type BatchEntry struct {
	QuerySequenceID string             `json:"query_sequence_id"`
	QueryLength     int                `json:"query_length"`
	Matches         []SimilarityResult `json:"matches"`
}

// BatchResult holds the results for every sequence in a FASTA batch.
type BatchResult struct {
	TotalSequences int          `json:"total_sequences"`
	Results        []BatchEntry `json:"results"`
}

// FastaRecord is one identifier/sequence pair parsed from FASTA input.
type FastaRecord struct {
	ID       string
	Sequence string
}

// DatabaseInfo summarizes the reference database for introspection.
type DatabaseInfo struct {
	TotalSequences  int      `json:"total_sequences"`
	UniqueSamples   int      `json:"unique_samples"`
	SampleIDs       []string `json:"sample_ids"`
	DistinctTaxa    int      `json:"distinct_taxa"`
	Taxa            []string `json:"taxa"`
	KmerSize        int      `json:"k_mer_size"`
	VectorDimension int      `json:"vector_dimension"`
}
