package analyzer

import (
	"math"

	"asvsearch/internal/domain"
)

// KmerVectorizer turns a raw sequence into a unit-length sparse frequency
// vector: normalize, tokenize, count, then divide by the L2 norm so the dot
// product of two vectors equals their cosine similarity.
type KmerVectorizer struct {
	normalizer *Normalizer
	tokenizer  *KmerTokenizer
}

// NewKmerVectorizer creates a vectorizer for k-mers of width k.
func NewKmerVectorizer(k int) *KmerVectorizer {
	return &KmerVectorizer{
		normalizer: NewNormalizer(k),
		tokenizer:  NewKmerTokenizer(k),
	}
}

// Vectorize converts sequence into an L2-normalized frequency vector.
// Returns *domain.InvalidSequenceError when the normalized sequence is
// shorter than k.
func (v *KmerVectorizer) Vectorize(sequence string) (domain.FrequencyVector, error) {
	normalized, err := v.normalizer.Normalize(sequence)
	if err != nil {
		return nil, err
	}

	kmers := v.tokenizer.Tokenize(normalized)

	counts := make(domain.FrequencyVector, len(kmers))
	for _, kmer := range kmers {
		counts[kmer]++
	}

	var sumSquares float64
	for _, c := range counts {
		sumSquares += c * c
	}
	// len(normalized) >= k guarantees at least one k-mer, so the norm is
	// always positive here.
	norm := math.Sqrt(sumSquares)
	for kmer := range counts {
		counts[kmer] /= norm
	}

	return counts, nil
}

// KmerSize returns the window width k.
func (v *KmerVectorizer) KmerSize() int {
	return v.tokenizer.K()
}
