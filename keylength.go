package vigenere

import "golang.org/x/exp/slices"

// Estimator tags which analysis produced a key-length candidate.
type Estimator int

const (
	EstimatorKasiski Estimator = iota
	EstimatorFriedman
)

func (e Estimator) String() string {
	switch e {
	case EstimatorKasiski:
		return "kasiski"
	case EstimatorFriedman:
		return "friedman"
	}
	return "unknown"
}

// KeyLengthCandidate is a plausible key length with the number of
// observations backing it.
type KeyLengthCandidate struct {
	Length  int
	Support int
	Source  Estimator
}

// friedmanBoost is the extra support a Kasiski candidate earns when the
// Friedman estimate lands on the same length.
const friedmanBoost = 2

// sortCandidates orders by support descending, shorter length on ties. The
// tie-break keeps AutoDecrypt reproducible.
func sortCandidates(cands []KeyLengthCandidate) {
	slices.SortFunc(cands, func(a, b KeyLengthCandidate) bool {
		if a.Support != b.Support {
			return a.Support > b.Support
		}
		return a.Length < b.Length
	})
}

// reconcileKeyLengths merges the ranked Kasiski list with the Friedman
// estimate into a shortlist of at most limit lengths. A Kasiski candidate
// confirmed by Friedman is boosted; a Friedman estimate Kasiski never saw is
// kept as a single-vote candidate, so a repeat-free ciphertext still gets a
// shot.
func reconcileKeyLengths(kasiski []KeyLengthCandidate, friedman KeyLengthCandidate, hasFriedman bool, limit int) []KeyLengthCandidate {
	merged := make([]KeyLengthCandidate, len(kasiski))
	copy(merged, kasiski)

	if hasFriedman {
		confirmed := false
		for i := range merged {
			if merged[i].Length == friedman.Length {
				merged[i].Support += friedmanBoost
				confirmed = true
				break
			}
		}
		if !confirmed {
			merged = append(merged, friedman)
		}
	}

	sortCandidates(merged)
	if len(merged) > limit {
		merged = merged[:limit]
	}
	return merged
}
