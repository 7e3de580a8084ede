package vigenere

const (
	// Repeated-substring window per Kasiski's method. Shorter repeats are
	// dominated by coincidence, longer ones are too rare to vote.
	kasiskiMinSeq = 3
	kasiskiMaxSeq = 5
)

// kasiskiExamination finds repeated substrings in the alphabetic ciphertext
// and votes for every divisor (2..maxLen) of the spacings between their
// occurrences. A repeating key turns repeated plaintext into repeated
// ciphertext at spacings that are multiples of the key length, so the true
// length collects votes from every such repeat. The result is ranked by
// support; a text too short to repeat yields an empty list.
func kasiskiExamination(alpha string, maxLen int) []KeyLengthCandidate {
	support := make(map[int]int)
	for seqLen := kasiskiMinSeq; seqLen <= kasiskiMaxSeq; seqLen++ {
		lastSeen := make(map[string]int)
		for i := 0; i+seqLen <= len(alpha); i++ {
			seq := alpha[i : i+seqLen]
			if prev, ok := lastSeen[seq]; ok {
				spacing := i - prev
				for f := 2; f <= maxLen; f++ {
					if spacing%f == 0 {
						support[f]++
					}
				}
			}
			lastSeen[seq] = i
		}
	}

	cands := make([]KeyLengthCandidate, 0, len(support))
	for length, n := range support {
		cands = append(cands, KeyLengthCandidate{Length: length, Support: n, Source: EstimatorKasiski})
	}
	sortCandidates(cands)
	return cands
}
