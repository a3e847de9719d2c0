package port

import "asvsearch/internal/domain"

// Vectorizer converts a raw nucleotide sequence into a unit-length k-mer
// frequency vector. The same vectorizer must be used for query and reference
// sequences; any asymmetry invalidates the similarity comparison.
type Vectorizer interface {
	// Vectorize normalizes, tokenizes and counts the sequence.
	// Returns *domain.InvalidSequenceError when the normalized sequence is
	// shorter than the k-mer size.
	Vectorize(sequence string) (domain.FrequencyVector, error)

	// KmerSize returns the window width k.
	KmerSize() int
}
