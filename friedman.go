package vigenere

import "math"

const (
	icEnglish = 0.065
	icRandom  = 0.0385
)

// friedmanEstimate derives a key length from the index of coincidence of the
// whole ciphertext: polyalphabetic encryption flattens the IC from English's
// 0.065 toward the uniform 0.0385, and the amount of flattening encodes the
// key length. Returns ok=false when the text is too short or the IC is
// degenerate, so the caller can fall back to Kasiski alone.
func friedmanEstimate(alpha string) (KeyLengthCandidate, bool) {
	counts, total := letterCounts(alpha)
	if total < 2 {
		return KeyLengthCandidate{}, false
	}
	ic := indexOfCoincidence(counts, total)

	n := float64(total)
	denom := (icEnglish - ic) + n*(ic-icRandom)
	if math.Abs(denom) < 1e-9 {
		return KeyLengthCandidate{}, false
	}

	est := int(math.Round((icEnglish - icRandom) * n / denom))
	if est < 1 {
		est = 1
	}
	if est > total {
		return KeyLengthCandidate{}, false
	}
	return KeyLengthCandidate{Length: est, Support: 1, Source: EstimatorFriedman}, true
}
