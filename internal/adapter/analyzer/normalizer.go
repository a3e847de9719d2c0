package analyzer

import "asvsearch/internal/domain"

// Normalizer cleans raw nucleotide strings before tokenization.
// Every byte outside {A,C,G,T} (ambiguity codes, gaps, stray symbols) is
// mapped to 'A'. That follows the upstream pipeline this database is built
// against; forcing 'N' to a concrete base loses information and is a known
// approximation, kept so query and reference profiles stay comparable.
type Normalizer struct {
	minLength int
}

// NewNormalizer creates a Normalizer that rejects sequences shorter than
// minLength bases after cleaning.
func NewNormalizer(minLength int) *Normalizer {
	return &Normalizer{minLength: minLength}
}

// Normalize uppercases the sequence, substitutes ambiguous bases and
// validates the length. Returns *domain.InvalidSequenceError when the result
// is shorter than the minimum length.
func (n *Normalizer) Normalize(sequence string) (string, error) {
	buf := make([]byte, len(sequence))
	for i := 0; i < len(sequence); i++ {
		c := sequence[i]
		if c >= 'a' && c <= 'z' {
			c -= 'a' - 'A'
		}
		switch c {
		case 'A', 'C', 'G', 'T':
		default:
			c = 'A'
		}
		buf[i] = c
	}

	if len(buf) < n.minLength {
		return "", &domain.InvalidSequenceError{Length: len(buf), MinimumLength: n.minLength}
	}
	return string(buf), nil
}
