package analyzer

// KmerTokenizer slides a fixed-width window over a normalized sequence and
// emits every overlapping k-mer.
type KmerTokenizer struct {
	k int
}

// NewKmerTokenizer creates a tokenizer with window width k.
func NewKmerTokenizer(k int) *KmerTokenizer {
	return &KmerTokenizer{k: k}
}

// Tokenize returns all contiguous length-k substrings of sequence, one per
// starting position. A sequence of length L yields exactly L-k+1 tokens;
// shorter sequences yield none.
func (t *KmerTokenizer) Tokenize(sequence string) []string {
	if len(sequence) < t.k {
		return nil
	}
	kmers := make([]string, 0, len(sequence)-t.k+1)
	for i := 0; i+t.k <= len(sequence); i++ {
		kmers = append(kmers, sequence[i:i+t.k])
	}
	return kmers
}

// K returns the window width.
func (t *KmerTokenizer) K() int {
	return t.k
}
